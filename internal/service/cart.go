package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/Skotchmaster/mock_ecom/internal/models"
	"github.com/Skotchmaster/mock_ecom/internal/mykafka"
	"github.com/Skotchmaster/mock_ecom/internal/repo"
)

type CartService struct {
	Repo    repo.CartRepo
	Catalog repo.CatalogRepo
	Events  mykafka.Publisher
}

type CartView struct {
	Items []models.CartLine `json:"items"`
	Total string            `json:"total"`
}

func FormatTotal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func cartTotal(lines []models.CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// AddItem always appends a new line; repeated adds of one product are not merged.
func (s *CartService) AddItem(ctx context.Context, id Identity, productID uint, qty int) (*models.CartItem, error) {
	if productID == 0 || qty <= 0 {
		return nil, fail(ErrValidation, "productId and qty are required")
	}
	if _, err := s.Catalog.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fail(ErrValidation, "Product not found")
		}
		return nil, err
	}

	item := &models.CartItem{UserID: id.UserID, ProductID: productID, Quantity: qty}
	if err := s.Repo.AddLine(ctx, item); err != nil {
		return nil, err
	}

	publish(ctx, s.Events, mykafka.TopicCartEvents, strconv.FormatUint(uint64(id.UserID), 10),
		mykafka.NewEvent("cart.item_added", id.UserID, item))
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, id Identity, lineID uint) error {
	if err := s.Repo.DeleteLine(ctx, id.UserID, lineID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return fail(ErrNotFound, "Item not found")
		}
		return err
	}
	publish(ctx, s.Events, mykafka.TopicCartEvents, strconv.FormatUint(uint64(id.UserID), 10),
		mykafka.NewEvent("cart.item_removed", id.UserID, map[string]uint{"id": lineID}))
	return nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, id Identity, lineID uint, qty int) error {
	if qty < 1 {
		return fail(ErrValidation, "qty must be at least 1")
	}
	if err := s.Repo.UpdateQuantity(ctx, id.UserID, lineID, qty); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return fail(ErrNotFound, "Item not found")
		}
		return err
	}
	return nil
}

func (s *CartService) GetCart(ctx context.Context, id Identity) (*CartView, error) {
	lines, err := s.Repo.GetCart(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	return &CartView{Items: lines, Total: FormatTotal(cartTotal(lines))}, nil
}
