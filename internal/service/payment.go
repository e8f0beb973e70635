package service

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Skotchmaster/mock_ecom/internal/mykafka"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
)

var acceptedTestCards = []string{"4242424242424242", "4000000000000002"}

var whitespace = regexp.MustCompile(`\s+`)

type Card struct {
	Number string `json:"number"`
	CVV    string `json:"cvv"`
	Expiry string `json:"expiry"`
	Name   string `json:"name"`
}

type PaymentRequest struct {
	OrderID any   `json:"orderId"`
	Amount  any   `json:"amount"`
	Card    *Card `json:"card"`
}

type PaymentResult struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	PaymentID string      `json:"paymentId"`
	OrderID   any         `json:"orderId"`
	Amount    any         `json:"amount"`
	Status    OrderStatus `json:"status"`
}

type PaymentService struct {
	Events mykafka.Publisher
	Now    func() time.Time
}

func (s *PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func validExpiry(expiry string) bool {
	mm, yy, ok := strings.Cut(expiry, "/")
	if !ok || mm == "" || yy == "" {
		return false
	}
	month, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return false
	}
	return month >= 1 && month <= 12
}

func last4(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}

func emptyOrderID(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	}
	return false
}

// ProcessPayment simulates a card charge against a fixed set of test cards.
func (s *PaymentService) ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	l := logging.FromContext(ctx).With("svc", "payment.process")

	card := req.Card
	if card == nil || card.Number == "" || card.CVV == "" || card.Expiry == "" {
		return nil, fail(ErrValidation, "Invalid payment data")
	}

	status, err := Next(StatusOrderConfirmed, StatusPaymentPending)
	if err != nil {
		return nil, err
	}

	normalized := whitespace.ReplaceAllString(card.Number, "")
	if !slices.Contains(acceptedTestCards, normalized) {
		if _, err := Next(status, StatusDeclined); err != nil {
			return nil, err
		}
		l.Info("payment_declined", "order_id", req.OrderID, "card_last4", last4(normalized))
		publish(ctx, s.Events, mykafka.TopicOrderEvents, fmt.Sprint(req.OrderID),
			mykafka.NewEvent("payment.declined", 0, map[string]any{"orderId": req.OrderID}))
		return nil, fail(ErrPaymentDeclined, "Payment declined (mock)")
	}

	if !validExpiry(card.Expiry) {
		return nil, fail(ErrValidation, "Invalid expiry date")
	}

	status, err = Next(status, StatusPaid)
	if err != nil {
		return nil, err
	}

	orderID := req.OrderID
	if emptyOrderID(orderID) {
		orderID = nil
	}
	res := &PaymentResult{
		Success:   true,
		Message:   "Payment processed (mock)",
		PaymentID: fmt.Sprintf("pay_%d", s.now().UnixMilli()),
		OrderID:   orderID,
		Amount:    req.Amount,
		Status:    status,
	}

	l.Info("payment_processed", "order_id", req.OrderID, "amount", req.Amount, "card_last4", last4(normalized))
	publish(ctx, s.Events, mykafka.TopicOrderEvents, res.PaymentID,
		mykafka.NewEvent("payment.processed", 0, res))
	return res, nil
}
