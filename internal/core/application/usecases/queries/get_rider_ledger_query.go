package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetRiderLedgerQueryIsNotConstructed = errors.New(
	"GetRiderLedgerQuery must be created via NewGetRiderLedgerQuery constructor",
)

// GetRiderLedgerQuery retrieves a rider's earnings and rating history with a
// performance summary. Riders use it to reconcile their payouts; support uses
// it to investigate rating disputes.
//
// Example:
//
//	query, err := NewGetRiderLedgerQuery(riderID)
//	if err != nil {
//	    return err
//	}
//	ledger, err := NewGetRiderLedgerQueryHandler(db).Handle(ctx, query)
type GetRiderLedgerQuery struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderLedgerQuery creates a ledger query for the given rider.
func NewGetRiderLedgerQuery(riderID kernel.UUID) (GetRiderLedgerQuery, error) {
	q := GetRiderLedgerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setRiderID(riderID); err != nil {
		return GetRiderLedgerQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRiderLedgerQueryIsNotConstructed if validation fails.
func (q GetRiderLedgerQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderLedgerQueryIsNotConstructed)
}

// RiderID returns the rider whose ledger is requested.
func (q GetRiderLedgerQuery) RiderID() kernel.UUID {
	return q.riderID
}

func (q *GetRiderLedgerQuery) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	q.riderID = riderID
	return nil
}

// GetRiderLedgerQueryResponse is the rider's full ledger read model: a
// performance summary plus both histories in chronological order.
type GetRiderLedgerQueryResponse struct {
	RiderID             kernel.UUID
	Name                string
	Rating              float64
	RatingCount         int
	CompletedDeliveries int
	OnTimeDeliveries    int
	LateDeliveries      int
	CancelledDeliveries int
	TotalEarnings       float64
	Earnings            []EarningEntry
	Ratings             []RatingEntry
}

// EarningEntry is one row of the earnings history.
type EarningEntry struct {
	DeliveryID kernel.UUID
	Amount     float64
	Status     string
	OccurredAt time.Time
}

// RatingEntry is one row of the rating history.
type RatingEntry struct {
	DeliveryID kernel.UUID
	CustomerID string
	Score      int
	Comment    string
	OccurredAt time.Time
}
