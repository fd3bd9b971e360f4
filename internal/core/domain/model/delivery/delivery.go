package delivery

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Delivery SLAs by route class, measured from creation time. Used to judge
// whether a completed delivery was on time.
const (
	withinCitySLA    = 24 * time.Hour
	crossDistrictSLA = 72 * time.Hour
)

// Domain errors for delivery operations.
var (
	// ErrInvalidTransition is returned when a status change is not the next
	// step of the delivery's fixed path and is not an allowed cancellation.
	// Expected under concurrent status webhooks; callers re-query and retry.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrCommissionExceedsCharge is returned when a delivery is created with
	// a rider commission larger than the delivery charge.
	ErrCommissionExceedsCharge = errors.New("rider commission exceeds delivery charge")
	// ErrChargeIsInvalid is returned for negative monetary amounts.
	ErrChargeIsInvalid = errs.NewValueIsInvalidError("charge")
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery represents one parcel delivery from pickup to destination.
// It is an aggregate root that owns the delivery's status lifecycle and the
// monetary amounts computed for it at creation time.
//
// Key invariants:
//   - withinCity is fixed at creation and never changes; a different route
//     requires a new delivery record, never a mutation of an in-flight one
//   - riderCommission never exceeds deliveryCharge
//   - status only moves along the fixed path for the delivery's route class,
//     or to CANCELLED from any non-terminal state
//   - the aggregate is immutable once a terminal status is reached
//
// Example usage:
//
//	d, err := NewDelivery(kernel.NewUUID(), pickup, dropoff, product, 150, 90, false, time.Now())
//	if err != nil {
//	    // handle construction error
//	}
//	changed, err := d.AdvanceTo(StatusPaid)
type Delivery struct {
	// id uniquely identifies the delivery
	id kernel.UUID
	// pickup is the origin address
	pickup kernel.Address
	// dropoff is the destination address
	dropoff kernel.Address
	// product describes the parcel contents for pricing
	product Product
	// charge is the total delivery charge billed to the customer
	charge float64
	// commission is the portion of the charge paid to the assigned rider
	commission float64
	// withinCity is the route class, fixed at creation
	withinCity bool
	// status is the current lifecycle state
	status Status
	// riderID references the assigned rider, nil until matched
	riderID *kernel.UUID
	// createdAt is the creation timestamp
	createdAt time.Time
	// dueAt is the SLA deadline used to judge on-time completion
	dueAt time.Time
	// guard ensures the delivery was properly constructed
	guard guard.ConstructorGuard
}

// NewDelivery creates a new Delivery in the UNPAID status with no rider assigned.
// The route class (withinCity) and the SLA deadline are fixed here and never
// change afterwards.
//
// Parameters:
//   - id: unique delivery identifier
//   - pickup, dropoff: validated administrative addresses
//   - product: parcel descriptor used for pricing
//   - charge, commission: amounts computed by the pricing rules; commission
//     must not exceed charge and neither may be negative
//   - withinCity: route class produced by the route classifier
//   - now: creation time, anchoring the SLA deadline
func NewDelivery(
	id kernel.UUID,
	pickup kernel.Address,
	dropoff kernel.Address,
	product Product,
	charge float64,
	commission float64,
	withinCity bool,
	now time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:     StatusUnpaid,
		withinCity: withinCity,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setPickup(pickup),
		d.setDropoff(dropoff),
		d.setProduct(product),
		d.setAmounts(charge, commission),
	); err != nil {
		return nil, err
	}

	d.createdAt = now
	d.dueAt = now.Add(slaFor(withinCity))
	return d, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage.
// Unlike NewDelivery, the status, rider assignment, and timestamps are taken
// from the persisted state rather than initialized.
func RestoreDelivery(
	id kernel.UUID,
	pickup kernel.Address,
	dropoff kernel.Address,
	product Product,
	charge float64,
	commission float64,
	withinCity bool,
	status Status,
	riderID *kernel.UUID,
	createdAt time.Time,
	dueAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		withinCity: withinCity,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setPickup(pickup),
		d.setDropoff(dropoff),
		d.setProduct(product),
		d.setAmounts(charge, commission),
		d.setStatus(status),
		d.setRiderID(riderID),
	); err != nil {
		return nil, err
	}

	d.createdAt = createdAt
	d.dueAt = dueAt
	return d, nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// Validate checks that the Delivery was created via NewDelivery or RestoreDelivery.
// The zero value is invalid.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Pickup returns the origin address.
func (d *Delivery) Pickup() kernel.Address {
	return d.pickup
}

// Dropoff returns the destination address.
func (d *Delivery) Dropoff() kernel.Address {
	return d.dropoff
}

// Product returns the parcel descriptor.
func (d *Delivery) Product() Product {
	return d.product
}

// Charge returns the total delivery charge.
func (d *Delivery) Charge() float64 {
	return d.charge
}

// Commission returns the rider's share of the charge.
func (d *Delivery) Commission() float64 {
	return d.commission
}

// WithinCity reports the route class fixed at creation.
func (d *Delivery) WithinCity() bool {
	return d.withinCity
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// RiderID returns the assigned rider's ID, or nil when unmatched.
func (d *Delivery) RiderID() *kernel.UUID {
	return d.riderID
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// DueAt returns the SLA deadline for on-time completion.
func (d *Delivery) DueAt() time.Time {
	return d.dueAt
}

// IsTerminal reports whether the delivery has reached DELIVERED or CANCELLED.
func (d *Delivery) IsTerminal() bool {
	return d.status.IsTerminal()
}

// AdvanceTo applies a status transition following the state machine rules.
//
// Returns:
//   - (true, nil) when the status changed
//   - (false, nil) when target equals the current status; duplicate
//     status-update calls from unreliable upstream signals are tolerated as
//     successful no-ops
//   - (false, ErrInvalidTransition) for any other target; the status is left
//     unchanged
//
// Accepted transitions:
//   - the next status on the delivery's fixed path (route class selected at
//     creation); transitioning into DELIVERED additionally requires an
//     assigned rider
//   - CANCELLED from any non-terminal status
func (d *Delivery) AdvanceTo(target Status) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}

	if target == d.status {
		return false, nil
	}

	if d.status.IsTerminal() {
		return false, fmt.Errorf("%w: delivery is already %s", ErrInvalidTransition, d.status)
	}

	if target == StatusCancelled {
		d.status = StatusCancelled
		return true, nil
	}

	if next := d.status.nextOnPath(d.withinCity); target != next {
		return false, fmt.Errorf("%w: %s -> %s is not on the %s path",
			ErrInvalidTransition, d.status, target, d.routeClassName())
	}

	if target == StatusDelivered && d.riderID == nil {
		return false, fmt.Errorf("%w: cannot deliver without an assigned rider", ErrInvalidTransition)
	}

	d.status = target
	return true, nil
}

// AssignRider records the rider selected for this delivery.
// Allowed on any non-terminal delivery; assigning again replaces the previous
// rider (reassignment after a release).
func (d *Delivery) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	if d.status.IsTerminal() {
		return fmt.Errorf("%w: cannot assign rider to a %s delivery", ErrInvalidTransition, d.status)
	}

	id := riderID
	d.riderID = &id
	return nil
}

// CompletedOnTime reports whether a completion at the given moment meets the
// delivery's SLA deadline.
func (d *Delivery) CompletedOnTime(completedAt time.Time) bool {
	return !completedAt.After(d.dueAt)
}

// routeClassName names the delivery's path for error messages.
func (d *Delivery) routeClassName() string {
	if d.withinCity {
		return "within-city"
	}
	return "cross-district"
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Delivery) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	d.pickup = pickup
	return nil
}

func (d *Delivery) setDropoff(dropoff kernel.Address) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}

	d.dropoff = dropoff
	return nil
}

func (d *Delivery) setProduct(product Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	d.product = product
	return nil
}

func (d *Delivery) setAmounts(charge, commission float64) error {
	if charge < 0 || commission < 0 {
		return ErrChargeIsInvalid
	}
	if commission > charge {
		return ErrCommissionExceedsCharge
	}

	d.charge = charge
	d.commission = commission
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	return nil
}

func (d *Delivery) setRiderID(riderID *kernel.UUID) error {
	if riderID == nil {
		d.riderID = nil
		return nil
	}
	if err := riderID.Validate(); err != nil {
		return err
	}

	id := *riderID
	d.riderID = &id
	return nil
}

// slaFor returns the completion SLA for a route class.
func slaFor(withinCity bool) time.Duration {
	if withinCity {
		return withinCitySLA
	}
	return crossDistrictSLA
}
