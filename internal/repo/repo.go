package repo

import (
	"context"
	"errors"

	"github.com/Skotchmaster/mock_ecom/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

type UserRepo interface {
	CreateUserIfNotExists(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uint) (*models.User, error)
}

type CatalogRepo interface {
	CountProducts(ctx context.Context) (int64, error)
	GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []uint) (map[uint]models.Product, error)
	CreateProducts(ctx context.Context, products []models.Product) error
}

type CartRepo interface {
	AddLine(ctx context.Context, item *models.CartItem) error
	GetCart(ctx context.Context, userID uint) ([]models.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, lineID uint, qty int) error
	DeleteLine(ctx context.Context, userID, lineID uint) error
	ClearAll(ctx context.Context) error
	ClearUser(ctx context.Context, userID uint) error
}

// Store is a complete persistence backend.
type Store interface {
	UserRepo
	CatalogRepo
	CartRepo
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
