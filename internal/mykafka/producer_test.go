package mykafka

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_RequiresBrokers(t *testing.T) {
	_, err := NewProducer(nil)
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.PublishEvent(context.Background(), TopicCartEvents, "1", NewEvent("cart.item_added", 1, nil)))
}

func TestNewEvent(t *testing.T) {
	ev := NewEvent("user.signed_up", 3, map[string]string{"email": "a@b.c"})
	assert.Equal(t, "user.signed_up", ev.Type)
	assert.EqualValues(t, 3, ev.UserID)
	assert.False(t, ev.OccurredAt.IsZero())
}

func TestProducer_Publish(t *testing.T) {
	brokers := os.Getenv("KAFKA_TEST_BROKERS")
	if brokers == "" {
		t.Skip("KAFKA_TEST_BROKERS not set")
	}
	p, err := NewProducer(strings.Split(brokers, ","))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	require.NoError(t, p.PublishEvent(context.Background(), TopicOrderEvents, "ord_test", NewEvent("order.confirmed", 0, nil)))
}
