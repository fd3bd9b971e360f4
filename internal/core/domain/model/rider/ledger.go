package rider

import (
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Rating bounds for customer feedback scores.
const (
	MinRating = 1
	MaxRating = 5
)

// EarningStatus is the settlement state of one earning record.
type EarningStatus int

const (
	// EarningStatusUnknown represents an invalid or undefined earning status.
	EarningStatusUnknown EarningStatus = iota

	// EarningStatusPending is an earning awaiting settlement.
	EarningStatusPending

	// EarningStatusCompleted is a settled earning, credited on delivery completion.
	EarningStatusCompleted

	// EarningStatusWithdrawn is an earning the rider has withdrawn.
	EarningStatusWithdrawn
)

// getEarningStatusStrings returns the wire representations of all earning statuses.
func getEarningStatusStrings() map[EarningStatus]string {
	return map[EarningStatus]string{
		EarningStatusUnknown:   "unknown",
		EarningStatusPending:   "pending",
		EarningStatusCompleted: "completed",
		EarningStatusWithdrawn: "withdrawn",
	}
}

// EarningStatusFromString parses the wire representation of an earning status.
func EarningStatusFromString(s string) (EarningStatus, error) {
	for status, str := range getEarningStatusStrings() {
		if status != EarningStatusUnknown && str == s {
			return status, nil
		}
	}
	return EarningStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"earning status is invalid",
		fmt.Errorf("%q is not a valid earning status", s),
	)
}

// String returns the wire representation of the earning status.
func (s EarningStatus) String() string {
	if str, ok := getEarningStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the EarningStatus is one of the defined states.
func (s EarningStatus) Validate() error {
	if _, ok := getEarningStatusStrings()[s]; !ok || s == EarningStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"earning status is invalid",
			fmt.Errorf("%d is not a valid earning status", s),
		)
	}
	return nil
}

// EarningRecord is one immutable entry in a rider's earnings ledger.
// Records are append-only: corrections are new records, never edits.
type EarningRecord struct {
	deliveryID kernel.UUID
	amount     float64
	occurredAt time.Time
	status     EarningStatus
}

// NewEarningRecord creates an earning ledger entry.
// The amount must be non-negative and the status valid.
func NewEarningRecord(deliveryID kernel.UUID, amount float64, occurredAt time.Time, status EarningStatus) (EarningRecord, error) {
	if err := deliveryID.Validate(); err != nil {
		return EarningRecord{}, err
	}
	if amount < 0 {
		return EarningRecord{}, errs.NewValueIsInvalidError("earning amount")
	}
	if err := status.Validate(); err != nil {
		return EarningRecord{}, err
	}

	return EarningRecord{
		deliveryID: deliveryID,
		amount:     amount,
		occurredAt: occurredAt,
		status:     status,
	}, nil
}

// DeliveryID returns the delivery this earning settles.
func (e EarningRecord) DeliveryID() kernel.UUID {
	return e.deliveryID
}

// Amount returns the credited amount.
func (e EarningRecord) Amount() float64 {
	return e.amount
}

// OccurredAt returns when the earning was recorded.
func (e EarningRecord) OccurredAt() time.Time {
	return e.occurredAt
}

// Status returns the settlement state of the earning.
func (e EarningRecord) Status() EarningStatus {
	return e.status
}

// RatingRecord is one immutable entry in a rider's rating ledger.
// A later rating revision is a new record; the aggregate rating is always
// the mean over all records including revisions.
type RatingRecord struct {
	deliveryID kernel.UUID
	customerID string
	score      int
	comment    string
	occurredAt time.Time
}

// NewRatingRecord creates a rating ledger entry.
// The score must lie within [MinRating, MaxRating].
func NewRatingRecord(deliveryID kernel.UUID, customerID string, score int, comment string, occurredAt time.Time) (RatingRecord, error) {
	if err := deliveryID.Validate(); err != nil {
		return RatingRecord{}, err
	}
	if customerID == "" {
		return RatingRecord{}, errs.NewValueIsRequiredError("customerID")
	}
	if score < MinRating || score > MaxRating {
		return RatingRecord{}, fmt.Errorf("%w: score is %d", ErrInvalidRating, score)
	}

	return RatingRecord{
		deliveryID: deliveryID,
		customerID: customerID,
		score:      score,
		comment:    comment,
		occurredAt: occurredAt,
	}, nil
}

// DeliveryID returns the rated delivery.
func (r RatingRecord) DeliveryID() kernel.UUID {
	return r.deliveryID
}

// CustomerID returns the opaque identity of the rating customer.
func (r RatingRecord) CustomerID() string {
	return r.customerID
}

// Score returns the rating score (1-5).
func (r RatingRecord) Score() int {
	return r.score
}

// Comment returns the free-form feedback text.
func (r RatingRecord) Comment() string {
	return r.comment
}

// OccurredAt returns when the rating was submitted.
func (r RatingRecord) OccurredAt() time.Time {
	return r.occurredAt
}
