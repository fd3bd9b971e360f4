// Package ports defines the interfaces between the logistics core and its
// infrastructure adapters. These contracts keep the domain layer free of
// persistence and messaging concerns and make the use cases testable.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
// Aggregates are stored with their full state, including the append-only
// earnings and rating ledgers.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	// The rider must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	// Ledger rows are append-only: Update inserts new earning and rating
	// records but never modifies or removes existing ones.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider aggregate by its unique identifier.
	// When called inside a transaction the row is locked for update, so a
	// concurrent dispatch serializes on the same rider and the loser sees
	// the updated availability.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetByDeliveryID retrieves the rider currently assigned to a delivery.
	// Locks the row the same way Get does; used by terminal settlement,
	// which runs while the rider still holds the delivery.
	GetByDeliveryID(ctx context.Context, deliveryID kernel.UUID) (*rider.Rider, error)

	// GetAvailableInDistrict retrieves the verified, available riders whose
	// home address matches the given division and district. The result is a
	// candidate snapshot for matching; it may already be stale by the time a
	// candidate is assigned.
	GetAvailableInDistrict(ctx context.Context, division, district string) ([]*rider.Rider, error)
}
