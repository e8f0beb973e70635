package transport

import (
	"github.com/Skotchmaster/mock_ecom/internal/models"
	"github.com/Skotchmaster/mock_ecom/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    service.PublicUser `json:"user"`
}

// ProductView duplicates Name as Title for the storefront client.
type ProductView struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type ProductPageResponse struct {
	Page          int           `json:"page"`
	Limit         int           `json:"limit"`
	TotalProducts int64         `json:"totalProducts"`
	TotalPages    int64         `json:"totalPages"`
	Products      []ProductView `json:"products"`
}

func NewProductPageResponse(p *service.ProductPage) ProductPageResponse {
	views := make([]ProductView, 0, len(p.Products))
	for _, prod := range p.Products {
		views = append(views, NewProductView(prod))
	}
	return ProductPageResponse{
		Page:          p.Page,
		Limit:         p.Limit,
		TotalProducts: p.TotalProducts,
		TotalPages:    p.TotalPages,
		Products:      views,
	}
}

func NewProductView(p models.Product) ProductView {
	return ProductView{ID: p.ID, Name: p.Name, Title: p.Name, Price: p.Price, Image: p.Image}
}

type AddToCartRequest struct {
	ProductID uint `json:"productId"`
	Qty       int  `json:"qty"`
}

type AddToCartResponse struct {
	ID        uint `json:"id"`
	ProductID uint `json:"productId"`
	Qty       int  `json:"qty"`
}

type UpdateQuantityRequest struct {
	Qty int `json:"qty"`
}

type CheckoutItem struct {
	ID       uint `json:"id"`
	Quantity int  `json:"quantity"`
}

// CheckoutRequest.CartItems stays nil when the field is absent or null.
type CheckoutRequest struct {
	CartItems []CheckoutItem `json:"cartItems"`
}

func (r CheckoutRequest) Snapshot() []service.SnapshotItem {
	out := make([]service.SnapshotItem, 0, len(r.CartItems))
	for _, it := range r.CartItems {
		out = append(out, service.SnapshotItem{ID: it.ID, Quantity: it.Quantity})
	}
	return out
}
