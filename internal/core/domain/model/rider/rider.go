package rider

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// defaultRating is the aggregate rating of a rider with no feedback yet.
const defaultRating = 5.0

// Domain errors for rider operations.
var (
	// ErrRiderUnavailable is returned when assigning a delivery to a rider who
	// already carries one. Expected under concurrent dispatch attempts; the
	// caller picks another candidate or retries matching.
	ErrRiderUnavailable = errors.New("rider is unavailable")
	// ErrRiderNotVerified is returned when assigning a delivery to a rider
	// whose credentials have not been verified.
	ErrRiderNotVerified = errors.New("rider is not verified")
	// ErrInvalidRating is returned for feedback scores outside 1-5.
	ErrInvalidRating = errors.New("rating is out of range")
	// ErrNameIsRequired is returned when creating a rider without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrUserIDIsRequired is returned when creating a rider without an external user identity.
	ErrUserIDIsRequired = errs.NewValueIsRequiredError("userID")
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
)

// Credentials holds the documents a rider registers with.
// National ID, license, and vehicle details are captured at onboarding and
// checked by an administrator before the rider becomes matchable.
type Credentials struct {
	nationalID    string
	licenseNumber string
	vehicleType   string
	vehicleNumber string
}

// NewCredentials creates rider credentials.
// National ID, license number, and vehicle type are required.
func NewCredentials(nationalID, licenseNumber, vehicleType, vehicleNumber string) (Credentials, error) {
	if nationalID == "" {
		return Credentials{}, errs.NewValueIsRequiredError("nationalID")
	}
	if licenseNumber == "" {
		return Credentials{}, errs.NewValueIsRequiredError("licenseNumber")
	}
	if vehicleType == "" {
		return Credentials{}, errs.NewValueIsRequiredError("vehicleType")
	}

	return Credentials{
		nationalID:    nationalID,
		licenseNumber: licenseNumber,
		vehicleType:   vehicleType,
		vehicleNumber: vehicleNumber,
	}, nil
}

// NationalID returns the rider's national identity number.
func (c Credentials) NationalID() string { return c.nationalID }

// LicenseNumber returns the rider's driving license number.
func (c Credentials) LicenseNumber() string { return c.licenseNumber }

// VehicleType returns the rider's vehicle type.
func (c Credentials) VehicleType() string { return c.vehicleType }

// VehicleNumber returns the rider's vehicle registration number.
func (c Credentials) VehicleNumber() string { return c.vehicleNumber }

// Validate checks that the Credentials carry the required documents.
func (c Credentials) Validate() error {
	if c.nationalID == "" || c.licenseNumber == "" || c.vehicleType == "" {
		return errs.NewValueIsRequiredError("credentials")
	}
	return nil
}

// Rider represents a delivery rider in the system.
// It is an aggregate root that manages the rider's identity, availability,
// and the append-only earnings and rating ledgers.
//
// Key invariants:
//   - a rider with a current delivery is never available; the two fields are
//     always updated together through Assign and Release
//   - the aggregate rating is always the arithmetic mean of all rating
//     records (5.0 with no records) and is recomputed, never set directly
//   - ledger slices are append-only; no record is edited or removed
//
// One rider serves one active delivery at a time.
type Rider struct {
	// id uniquely identifies the rider
	id kernel.UUID
	// userID is the opaque external authentication identity
	userID string
	// name is the rider's display name
	name string
	// email is the rider's contact email
	email string
	// phone is the rider's contact phone number
	phone string
	// credentials are the documents registered at onboarding
	credentials Credentials
	// isVerified is set once an administrator approves the credentials
	isVerified bool
	// isAvailable reports whether the rider can take a new delivery
	isAvailable bool
	// currentDeliveryID references the active delivery, nil when idle
	currentDeliveryID *kernel.UUID
	// address is the rider's administrative home location, used for matching
	address kernel.Address
	// rating is the mean of all rating records
	rating float64
	// ratingCount is the number of rating records
	ratingCount int

	// delivery outcome counters
	completedDeliveries int
	onTimeDeliveries    int
	lateDeliveries      int
	cancelledDeliveries int

	// earnings is the append-only earnings ledger
	earnings []EarningRecord
	// ratings is the append-only rating ledger
	ratings []RatingRecord

	// guard ensures the rider was properly constructed
	guard guard.ConstructorGuard
}

// NewRider creates a rider at onboarding time.
// New riders start unverified, available, idle, and with the default 5.0
// rating and empty ledgers. They cannot be matched until verified.
func NewRider(
	id kernel.UUID,
	userID string,
	name string,
	email string,
	phone string,
	credentials Credentials,
	address kernel.Address,
) (*Rider, error) {
	r := &Rider{
		isAvailable: true,
		rating:      defaultRating,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setUserID(userID),
		r.setName(name),
		r.setCredentials(credentials),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	r.email = email
	r.phone = phone
	return r, nil
}

// RestoreRiderParams carries the persisted state needed to reconstruct a
// Rider aggregate from storage.
type RestoreRiderParams struct {
	ID                  kernel.UUID
	UserID              string
	Name                string
	Email               string
	Phone               string
	Credentials         Credentials
	IsVerified          bool
	IsAvailable         bool
	CurrentDeliveryID   *kernel.UUID
	Address             kernel.Address
	RatingCount         int
	CompletedDeliveries int
	OnTimeDeliveries    int
	LateDeliveries      int
	CancelledDeliveries int
	Earnings            []EarningRecord
	Ratings             []RatingRecord
}

// RestoreRider reconstructs a Rider aggregate from persistent storage.
// The aggregate rating is recomputed from the restored rating ledger rather
// than trusted from a stored column, preserving the mean invariant.
func RestoreRider(p RestoreRiderParams) (*Rider, error) {
	r := &Rider{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(p.ID),
		r.setUserID(p.UserID),
		r.setName(p.Name),
		r.setCredentials(p.Credentials),
		r.setAddress(p.Address),
	); err != nil {
		return nil, err
	}

	// Availability mirrors the current delivery: a rider is unavailable
	// exactly while holding one. A row that breaks this either way is
	// corrupt and must not restore.
	if p.CurrentDeliveryID != nil {
		if err := p.CurrentDeliveryID.Validate(); err != nil {
			return nil, err
		}
		id := *p.CurrentDeliveryID
		r.currentDeliveryID = &id
		if p.IsAvailable {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"availability is invalid",
				errors.New("rider with a current delivery cannot be available"),
			)
		}
	} else if !p.IsAvailable {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"availability is invalid",
			errors.New("rider without a current delivery cannot be unavailable"),
		)
	}

	r.email = p.Email
	r.phone = p.Phone
	r.isVerified = p.IsVerified
	r.isAvailable = p.IsAvailable
	r.ratingCount = p.RatingCount
	r.completedDeliveries = p.CompletedDeliveries
	r.onTimeDeliveries = p.OnTimeDeliveries
	r.lateDeliveries = p.LateDeliveries
	r.cancelledDeliveries = p.CancelledDeliveries

	r.earnings = make([]EarningRecord, len(p.Earnings))
	copy(r.earnings, p.Earnings)
	r.ratings = make([]RatingRecord, len(p.Ratings))
	copy(r.ratings, p.Ratings)

	r.recomputeRating()
	return r, nil
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// Validate checks that the Rider was created via NewRider or RestoreRider.
// The zero value is invalid.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// UserID returns the rider's external authentication identity.
func (r *Rider) UserID() string {
	return r.userID
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Email returns the rider's contact email.
func (r *Rider) Email() string {
	return r.email
}

// Phone returns the rider's contact phone number.
func (r *Rider) Phone() string {
	return r.phone
}

// Credentials returns the rider's registered documents.
func (r *Rider) Credentials() Credentials {
	return r.credentials
}

// IsVerified reports whether an administrator approved the rider's credentials.
func (r *Rider) IsVerified() bool {
	return r.isVerified
}

// IsAvailable reports whether the rider can take a new delivery.
func (r *Rider) IsAvailable() bool {
	return r.isAvailable
}

// CurrentDeliveryID returns the active delivery reference, nil when idle.
func (r *Rider) CurrentDeliveryID() *kernel.UUID {
	return r.currentDeliveryID
}

// Address returns the rider's administrative home location.
func (r *Rider) Address() kernel.Address {
	return r.address
}

// Rating returns the aggregate rating: the mean of all rating records,
// 5.0 when no feedback exists yet.
func (r *Rider) Rating() float64 {
	return r.rating
}

// RatingCount returns the number of rating records.
func (r *Rider) RatingCount() int {
	return r.ratingCount
}

// CompletedDeliveries returns the number of deliveries the rider completed.
func (r *Rider) CompletedDeliveries() int {
	return r.completedDeliveries
}

// OnTimeDeliveries returns the number of completions within SLA.
func (r *Rider) OnTimeDeliveries() int {
	return r.onTimeDeliveries
}

// LateDeliveries returns the number of completions past SLA.
func (r *Rider) LateDeliveries() int {
	return r.lateDeliveries
}

// CancelledDeliveries returns the number of deliveries cancelled while
// assigned to the rider.
func (r *Rider) CancelledDeliveries() int {
	return r.cancelledDeliveries
}

// Earnings returns a copy of the earnings ledger in append order.
func (r *Rider) Earnings() []EarningRecord {
	out := make([]EarningRecord, len(r.earnings))
	copy(out, r.earnings)
	return out
}

// Ratings returns a copy of the rating ledger in append order.
func (r *Rider) Ratings() []RatingRecord {
	out := make([]RatingRecord, len(r.ratings))
	copy(out, r.ratings)
	return out
}

// Verify marks the rider's credentials as approved, making them matchable.
func (r *Rider) Verify() {
	r.isVerified = true
}

// Assign gives the rider a delivery to execute.
// Fails with ErrRiderUnavailable when the rider already carries a delivery
// (the losing side of a dispatch race) and ErrRiderNotVerified when the
// rider's credentials are not approved. On success the current delivery
// reference and the availability flag are flipped together.
func (r *Rider) Assign(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	if !r.isVerified {
		return fmt.Errorf("%w: rider %s", ErrRiderNotVerified, r.id)
	}
	if !r.isAvailable {
		return fmt.Errorf("%w: rider %s already has a delivery", ErrRiderUnavailable, r.id)
	}

	id := deliveryID
	r.currentDeliveryID = &id
	r.isAvailable = false
	return nil
}

// Release returns the rider to the available pool.
// Used on successful completion, on cancellation, and on reassignment.
// Releasing an idle rider is a no-op.
func (r *Rider) Release() {
	r.currentDeliveryID = nil
	r.isAvailable = true
}

// RecordEarning appends a completed earning to the ledger.
// Invoked once per delivery, at the moment the delivery is completed; the
// ledger is never edited afterwards.
func (r *Rider) RecordEarning(deliveryID kernel.UUID, amount float64, occurredAt time.Time) error {
	record, err := NewEarningRecord(deliveryID, amount, occurredAt, EarningStatusCompleted)
	if err != nil {
		return err
	}

	r.earnings = append(r.earnings, record)
	return nil
}

// RecordRating appends a customer rating and recomputes the aggregate rating
// as the mean of all records. Scores outside 1-5 fail with ErrInvalidRating.
// A revision of an earlier rating is a new record; the mean simply includes it.
func (r *Rider) RecordRating(deliveryID kernel.UUID, customerID string, score int, comment string, occurredAt time.Time) error {
	record, err := NewRatingRecord(deliveryID, customerID, score, comment, occurredAt)
	if err != nil {
		return err
	}

	r.ratings = append(r.ratings, record)
	r.ratingCount = len(r.ratings)
	r.recomputeRating()
	return nil
}

// RecordDeliveryOutcome counts a completed delivery as on-time or late.
// Called once per delivery completion, never for cancellations.
func (r *Rider) RecordDeliveryOutcome(onTime bool) {
	r.completedDeliveries++
	if onTime {
		r.onTimeDeliveries++
	} else {
		r.lateDeliveries++
	}
}

// RecordCancellation counts a delivery cancelled while assigned to the rider.
// Cancellations never touch the earnings ledger or the completion counters.
func (r *Rider) RecordCancellation() {
	r.cancelledDeliveries++
}

// recomputeRating rederives the aggregate rating from the rating ledger.
func (r *Rider) recomputeRating() {
	if len(r.ratings) == 0 {
		r.rating = defaultRating
		return
	}

	sum := 0
	for _, record := range r.ratings {
		sum += record.Score()
	}
	r.rating = float64(sum) / float64(len(r.ratings))
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Rider) setUserID(userID string) error {
	if userID == "" {
		return ErrUserIDIsRequired
	}

	r.userID = userID
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	r.name = name
	return nil
}

func (r *Rider) setCredentials(credentials Credentials) error {
	if err := credentials.Validate(); err != nil {
		return err
	}

	r.credentials = credentials
	return nil
}

func (r *Rider) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	r.address = address
	return nil
}
