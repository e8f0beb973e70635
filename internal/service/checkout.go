package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Skotchmaster/mock_ecom/internal/mykafka"
	"github.com/Skotchmaster/mock_ecom/internal/repo"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
)

var ErrProductNotFound = &Error{Msg: "Product not found"}

type CheckoutService struct {
	Catalog repo.CatalogRepo
	Cart    repo.CartRepo
	Events  mykafka.Publisher
	Now     func() time.Time
}

// SnapshotItem is one client-submitted cart entry. ID is a product id; a zero
// Quantity means the client omitted it.
type SnapshotItem struct {
	ID       uint
	Quantity int
}

type ReceiptItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Receipt struct {
	OrderID   string        `json:"orderId"`
	Status    OrderStatus   `json:"status"`
	Total     string        `json:"total"`
	Timestamp string        `json:"timestamp"`
	Items     []ReceiptItem `json:"items"`
}

func (s *CheckoutService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Checkout prices a client snapshot and then clears every cart in the store.
func (s *CheckoutService) Checkout(ctx context.Context, snapshot []SnapshotItem) (*Receipt, error) {
	receipt, err := s.price(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	if err := s.Cart.ClearAll(ctx); err != nil {
		// the receipt stands even when the clear fails
		logging.FromContext(ctx).Error("checkout_clear_error", "scope", "all", "error", err)
	}
	s.confirmed(ctx, 0, receipt)
	return receipt, nil
}

// CheckoutForUser re-reads the caller's cart and clears only that cart.
func (s *CheckoutService) CheckoutForUser(ctx context.Context, id Identity) (*Receipt, error) {
	lines, err := s.Cart.GetCart(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fail(ErrValidation, "cart is empty")
	}
	snapshot := make([]SnapshotItem, 0, len(lines))
	for _, l := range lines {
		snapshot = append(snapshot, SnapshotItem{ID: l.ProductID, Quantity: l.Quantity})
	}

	receipt, err := s.price(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	if err := s.Cart.ClearUser(ctx, id.UserID); err != nil {
		logging.FromContext(ctx).Error("checkout_clear_error", "scope", "user", "user_id", id.UserID, "error", err)
	}
	s.confirmed(ctx, id.UserID, receipt)
	return receipt, nil
}

func (s *CheckoutService) price(ctx context.Context, snapshot []SnapshotItem) (*Receipt, error) {
	ids := make([]uint, 0, len(snapshot))
	for _, it := range snapshot {
		if it.Quantity < 0 {
			return nil, fail(ErrValidation, "quantity must be positive")
		}
		ids = append(ids, it.ID)
	}

	products, err := s.Catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]ReceiptItem, 0, len(snapshot))
	var total float64
	for _, it := range snapshot {
		p, ok := products[it.ID]
		if !ok {
			return nil, ErrProductNotFound
		}
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		total += p.Price * float64(qty)
		items = append(items, ReceiptItem{ID: p.ID, Name: p.Name, Price: p.Price, Quantity: qty})
	}

	status, err := Next(StatusCartSubmitted, StatusOrderConfirmed)
	if err != nil {
		return nil, err
	}
	return &Receipt{
		OrderID:   "ord_" + uuid.NewString(),
		Status:    status,
		Total:     FormatTotal(total),
		Timestamp: s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Items:     items,
	}, nil
}

func (s *CheckoutService) confirmed(ctx context.Context, userID uint, r *Receipt) {
	publish(ctx, s.Events, mykafka.TopicOrderEvents, r.OrderID,
		mykafka.NewEvent("order.confirmed", userID, r))
}
