package service

import (
	"context"

	"github.com/Skotchmaster/mock_ecom/internal/mykafka"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
)

// publish is best effort; failures are only logged.
func publish(ctx context.Context, p mykafka.Publisher, topic, key string, ev mykafka.Event) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, ev); err != nil {
		logging.FromContext(ctx).Warn("publish_event_failed", "topic", topic, "type", ev.Type, "error", err)
	}
}
