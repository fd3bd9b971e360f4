package kafka

import (
	"context"

	"logistics/internal/core/ports"
)

var _ ports.DeliveryEventPublisher = NoopPublisher{}

// NoopPublisher discards every event. Used for local runs without a broker.
type NoopPublisher struct{}

func (NoopPublisher) PublishStatusChanged(_ context.Context, _ ports.DeliveryStatusEvent) error {
	return nil
}
