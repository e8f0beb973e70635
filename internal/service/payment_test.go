package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPayment_Success(t *testing.T) {
	events := &recordingPublisher{}
	fixed := time.UnixMilli(1700000000123)
	svc := &PaymentService{Events: events, Now: func() time.Time { return fixed }}

	res, err := svc.ProcessPayment(context.Background(), PaymentRequest{
		OrderID: "ord_1",
		Amount:  12.5,
		Card:    &Card{Number: "4242 4242 4242 4242", CVV: "123", Expiry: "12/30"},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Payment processed (mock)", res.Message)
	assert.Equal(t, "pay_1700000000123", res.PaymentID)
	assert.Equal(t, "ord_1", res.OrderID)
	assert.Equal(t, 12.5, res.Amount)
	assert.Equal(t, StatusPaid, res.Status)
	assert.Equal(t, []string{"payment.processed"}, events.types())
}

func TestProcessPayment_NullOrderID(t *testing.T) {
	svc := &PaymentService{}
	res, err := svc.ProcessPayment(context.Background(), PaymentRequest{
		Card: &Card{Number: "4000000000000002", CVV: "1", Expiry: "01/27"},
	})
	require.NoError(t, err)
	assert.Nil(t, res.OrderID)
}

func TestProcessPayment_Failures(t *testing.T) {
	cases := []struct {
		name string
		card *Card
		kind error
		msg  string
	}{
		{"no card", nil, ErrValidation, "Invalid payment data"},
		{"no cvv", &Card{Number: "4242424242424242", Expiry: "12/30"}, ErrValidation, "Invalid payment data"},
		{"declined", &Card{Number: "1111111111111111", CVV: "123", Expiry: "12/30"}, ErrPaymentDeclined, "Payment declined (mock)"},
		{"month 13", &Card{Number: "4242424242424242", CVV: "123", Expiry: "13/30"}, ErrValidation, "Invalid expiry date"},
		{"no slash", &Card{Number: "4242424242424242", CVV: "123", Expiry: "1230"}, ErrValidation, "Invalid expiry date"},
		{"no year", &Card{Number: "4242424242424242", CVV: "123", Expiry: "12/"}, ErrValidation, "Invalid expiry date"},
	}
	svc := &PaymentService{}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.ProcessPayment(context.Background(), PaymentRequest{OrderID: "o", Amount: 1, Card: c.card})
			require.ErrorIs(t, err, c.kind)
			assert.Equal(t, c.msg, err.Error())
		})
	}
}

func TestLast4(t *testing.T) {
	assert.Equal(t, "4242", last4("4242424242424242"))
	assert.Equal(t, "12", last4("12"))
}
