package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	s, err := Next(StatusCartSubmitted, StatusOrderConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusOrderConfirmed, s)

	_, err = Next(StatusPaymentPending, StatusDeclined)
	require.NoError(t, err)

	for _, bad := range [][2]OrderStatus{
		{StatusCartSubmitted, StatusPaid},
		{StatusOrderConfirmed, StatusCartSubmitted},
		{StatusPaid, StatusDeclined},
		{StatusDeclined, StatusPaymentPending},
	} {
		_, err := Next(bad[0], bad[1])
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", bad[0], bad[1])
	}
}

func TestCheckout_PricesSnapshotAndClearsAllCarts(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, true)
	events := &recordingPublisher{}
	cart := newCart(store, nil)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := &CheckoutService{Catalog: store, Cart: store, Events: events, Now: func() time.Time { return fixed }}

	_, err := cart.AddItem(ctx, Identity{UserID: 1}, 1, 1)
	require.NoError(t, err)
	_, err = cart.AddItem(ctx, Identity{UserID: 2}, 2, 1)
	require.NoError(t, err)

	receipt, err := svc.Checkout(ctx, []SnapshotItem{{ID: 1, Quantity: 2}, {ID: 7}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receipt.OrderID, "ord_"))
	assert.Equal(t, StatusOrderConfirmed, receipt.Status)
	assert.Equal(t, "2029.97", receipt.Total)
	assert.Equal(t, "2026-01-02T03:04:05.000Z", receipt.Timestamp)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, "Mouse", receipt.Items[1].Name)
	assert.Equal(t, 1, receipt.Items[1].Quantity)

	for _, uid := range []uint{1, 2} {
		view, err := cart.GetCart(ctx, Identity{UserID: uid})
		require.NoError(t, err)
		assert.Empty(t, view.Items)
	}
	assert.Equal(t, []string{"order.confirmed"}, events.types())
}

func TestCheckout_UnknownProductLeavesCart(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, true)
	cart := newCart(store, nil)
	svc := &CheckoutService{Catalog: store, Cart: store}

	_, err := cart.AddItem(ctx, Identity{UserID: 1}, 1, 1)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, []SnapshotItem{{ID: 1, Quantity: 1}, {ID: 999, Quantity: 1}})
	require.ErrorIs(t, err, ErrProductNotFound)
	assert.Equal(t, "Product not found", err.Error())

	view, err := cart.GetCart(ctx, Identity{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestCheckout_NegativeQuantity(t *testing.T) {
	store := newStore(t, true)
	svc := &CheckoutService{Catalog: store, Cart: store}

	_, err := svc.Checkout(context.Background(), []SnapshotItem{{ID: 1, Quantity: -1}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckoutForUser_ClearsOnlyCaller(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, true)
	cart := newCart(store, nil)
	svc := &CheckoutService{Catalog: store, Cart: store}
	me, other := Identity{UserID: 1}, Identity{UserID: 2}

	_, err := svc.CheckoutForUser(ctx, me)
	require.ErrorIs(t, err, ErrValidation)

	_, err = cart.AddItem(ctx, me, 6, 2)
	require.NoError(t, err)
	_, err = cart.AddItem(ctx, other, 6, 1)
	require.NoError(t, err)

	receipt, err := svc.CheckoutForUser(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, "159.98", receipt.Total)

	view, err := cart.GetCart(ctx, me)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	view, err = cart.GetCart(ctx, other)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}
