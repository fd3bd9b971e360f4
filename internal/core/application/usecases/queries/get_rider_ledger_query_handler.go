package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRiderLedgerQueryHandler retrieves a rider's ledger from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// The summary rating is computed in SQL from the rating ledger, matching how
// the domain recomputes it on restore.
type GetRiderLedgerQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderLedgerQueryHandler creates a handler for rider ledger queries.
// Requires a GORM database connection for query execution.
func NewGetRiderLedgerQueryHandler(db *gorm.DB) GetRiderLedgerQueryHandler {
	return GetRiderLedgerQueryHandler{db: db}
}

// Handle executes the query to retrieve the rider's summary and both ledgers.
// Ledger rows come back in insertion order, which is append order.
func (h GetRiderLedgerQueryHandler) Handle(
	ctx context.Context,
	query GetRiderLedgerQuery,
) (GetRiderLedgerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRiderLedgerQueryResponse{}, err
	}

	resp, err := h.loadSummary(ctx, query.RiderID())
	if err != nil {
		return GetRiderLedgerQueryResponse{}, err
	}

	if resp.Earnings, err = h.loadEarnings(ctx, query.RiderID()); err != nil {
		return GetRiderLedgerQueryResponse{}, err
	}

	if resp.Ratings, err = h.loadRatings(ctx, query.RiderID()); err != nil {
		return GetRiderLedgerQueryResponse{}, err
	}

	return resp, nil
}

func (h GetRiderLedgerQueryHandler) loadSummary(ctx context.Context, riderID kernel.UUID) (GetRiderLedgerQueryResponse, error) {
	var resp GetRiderLedgerQueryResponse
	var rating sql.NullFloat64
	var totalEarnings sql.NullFloat64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			r.name,
			r.rating_count,
			r.completed_deliveries,
			r.on_time_deliveries,
			r.late_deliveries,
			r.cancelled_deliveries,
			(SELECT AVG(score) FROM rider_ratings WHERE rider_id = r.id),
			(SELECT SUM(amount) FROM rider_earnings WHERE rider_id = r.id)
		FROM riders r
		WHERE r.id = ?
	`, riderID.Bytes()).Row()

	err := row.Scan(
		&resp.Name,
		&resp.RatingCount,
		&resp.CompletedDeliveries,
		&resp.OnTimeDeliveries,
		&resp.LateDeliveries,
		&resp.CancelledDeliveries,
		&rating,
		&totalEarnings,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, errs.NewObjectNotFoundError("rider", riderID.String())
	}
	if err != nil {
		return resp, err
	}

	resp.RiderID = riderID
	// riders with no feedback yet carry the default rating
	resp.Rating = 5.0
	if rating.Valid {
		resp.Rating = rating.Float64
	}
	if totalEarnings.Valid {
		resp.TotalEarnings = totalEarnings.Float64
	}

	return resp, nil
}

func (h GetRiderLedgerQueryHandler) loadEarnings(ctx context.Context, riderID kernel.UUID) ([]EarningEntry, error) {
	entries := make([]EarningEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			delivery_id,
			amount,
			status,
			occurred_at
		FROM rider_earnings
		WHERE rider_id = ?
		ORDER BY id
	`, riderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry EarningEntry
		var deliveryID uuid.UUID

		if err = rows.Scan(&deliveryID, &entry.Amount, &entry.Status, &entry.OccurredAt); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(deliveryID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.DeliveryID = id
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h GetRiderLedgerQueryHandler) loadRatings(ctx context.Context, riderID kernel.UUID) ([]RatingEntry, error) {
	entries := make([]RatingEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			delivery_id,
			customer_id,
			score,
			comment,
			occurred_at
		FROM rider_ratings
		WHERE rider_id = ?
		ORDER BY id
	`, riderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry RatingEntry
		var deliveryID uuid.UUID

		if err = rows.Scan(&deliveryID, &entry.CustomerID, &entry.Score, &entry.Comment, &entry.OccurredAt); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(deliveryID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.DeliveryID = id
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
