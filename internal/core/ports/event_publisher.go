package ports

import (
	"context"
	"time"
)

// DeliveryStatusEvent is published whenever a delivery changes status.
// Downstream consumers (notifications, analytics) react to these instead of
// polling the API.
type DeliveryStatusEvent struct {
	DeliveryID string    `json:"deliveryId"`
	Status     string    `json:"status"`
	WithinCity bool      `json:"withinCity"`
	RiderID    string    `json:"riderId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// DeliveryEventPublisher publishes delivery lifecycle events to the message
// broker. Publishing happens after the database transaction commits; a
// publish failure is logged and never rolls the state change back.
type DeliveryEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event DeliveryStatusEvent) error
}
