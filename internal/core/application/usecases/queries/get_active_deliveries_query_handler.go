package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves in-flight deliveries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal deliveries.
// Results are sorted by creation time so the oldest booking appears first.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			within_city,
			pickup_district,
			dropoff_district,
			charge,
			rider_id,
			due_at
		FROM deliveries
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, delivery.StatusDelivered.String(), delivery.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id uuid.UUID
		var riderID *uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Status,
			&resp.WithinCity,
			&resp.PickupDistrict,
			&resp.DropoffDistrict,
			&resp.Charge,
			&riderID,
			&resp.DueAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID

		if riderID != nil {
			rID, ridErr := kernel.UUIDFromBytes((*riderID)[:])
			if ridErr != nil {
				return nil, ridErr
			}
			resp.RiderID = &rID
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
