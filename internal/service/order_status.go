package service

import (
	"errors"
	"fmt"
)

type OrderStatus string

const (
	StatusCartSubmitted  OrderStatus = "CART_SUBMITTED"
	StatusOrderConfirmed OrderStatus = "ORDER_CONFIRMED"
	StatusPaymentPending OrderStatus = "PAYMENT_PENDING"
	StatusPaid           OrderStatus = "PAID"
	StatusDeclined       OrderStatus = "DECLINED"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

var transitions = map[OrderStatus][]OrderStatus{
	StatusCartSubmitted:  {StatusOrderConfirmed},
	StatusOrderConfirmed: {StatusPaymentPending},
	StatusPaymentPending: {StatusPaid, StatusDeclined},
}

// Next moves from one status to the next; PAID and DECLINED are terminal.
func Next(from, to OrderStatus) (OrderStatus, error) {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return to, nil
		}
	}
	return from, fmt.Errorf("%s -> %s: %w", from, to, ErrInvalidTransition)
}
