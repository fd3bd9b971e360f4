package ports

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// When called inside a transaction the row is locked for update, so
	// concurrent status webhooks for the same delivery serialize instead of
	// racing.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllUnassigned retrieves paid, non-terminal deliveries that have no
	// rider yet. Used by the dispatch sweep to find work for matching.
	GetAllUnassigned(ctx context.Context) ([]*delivery.Delivery, error)
}
