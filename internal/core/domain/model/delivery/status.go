package delivery

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with two fixed paths selected once, at
// delivery creation, by the route class:
//
//	within-city (6 states):
//	  UNPAID → PAID → READY_TO_PICKUP → IN_TRANSIT → READY_FOR_DELIVERY → DELIVERED
//
//	cross-district (8 states):
//	  UNPAID → PAID → READY_TO_PICKUP → IN_TRANSIT → REACHED_WAREHOUSE →
//	  SHIPPED → READY_FOR_DELIVERY → DELIVERED
//
// CANCELLED is reachable from any non-terminal state on either path.
// DELIVERED and CANCELLED are terminal; no transition leaves them.
//
// Both paths are slices over one shared table so the two variants cannot
// silently diverge under maintenance.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusUnpaid is the initial status of every delivery.
	StatusUnpaid

	// StatusPaid indicates payment has been confirmed by the order subsystem.
	StatusPaid

	// StatusReadyToPickup indicates the parcel is waiting for rider pickup.
	StatusReadyToPickup

	// StatusInTransit indicates the rider has collected the parcel.
	StatusInTransit

	// StatusReachedWarehouse indicates a cross-district parcel arrived at the
	// relay warehouse. Not part of the within-city path.
	StatusReachedWarehouse

	// StatusShipped indicates a cross-district parcel left the warehouse for
	// the destination district. Not part of the within-city path.
	StatusShipped

	// StatusReadyForDelivery indicates the parcel is out for final delivery.
	StatusReadyForDelivery

	// StatusDelivered is the successful terminal status.
	StatusDelivered

	// StatusCancelled is the terminal status for abandoned deliveries.
	// Reachable from any non-terminal status.
	StatusCancelled
)

// withinCityPath is the fixed status sequence for same-district deliveries.
var withinCityPath = []Status{
	StatusUnpaid,
	StatusPaid,
	StatusReadyToPickup,
	StatusInTransit,
	StatusReadyForDelivery,
	StatusDelivered,
}

// crossDistrictPath is the fixed status sequence for deliveries relayed
// through the warehouse hub.
var crossDistrictPath = []Status{
	StatusUnpaid,
	StatusPaid,
	StatusReadyToPickup,
	StatusInTransit,
	StatusReachedWarehouse,
	StatusShipped,
	StatusReadyForDelivery,
	StatusDelivered,
}

// StatusPath returns the fixed status sequence for the given route class.
// The returned slice is a copy and may be modified by the caller.
func StatusPath(withinCity bool) []Status {
	src := crossDistrictPath
	if withinCity {
		src = withinCityPath
	}
	path := make([]Status, len(src))
	copy(path, src)
	return path
}

// getStatusStrings returns the wire representations of all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "unknown",
		StatusUnpaid:           "unpaid",
		StatusPaid:             "paid",
		StatusReadyToPickup:    "ready_to_pickup",
		StatusInTransit:        "in_transit",
		StatusReachedWarehouse: "reached_warehouse",
		StatusShipped:          "shipped",
		StatusReadyForDelivery: "ready_for_delivery",
		StatusDelivered:        "delivered",
		StatusCancelled:        "cancelled",
	}
}

// getValidStatusStrings returns only valid Status values.
func getValidStatusStrings() map[Status]string {
	valid := getStatusStrings()
	delete(valid, StatusUnknown)
	return valid
}

// StatusFromString parses the wire representation of a status.
// Used when accepting status-update calls from upstream systems.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// nextOnPath returns the status following s on the path for the given route
// class, or StatusUnknown when s is terminal or not on that path.
func (s Status) nextOnPath(withinCity bool) Status {
	path := crossDistrictPath
	if withinCity {
		path = withinCityPath
	}
	for i, st := range path {
		if st == s && i+1 < len(path) {
			return path[i+1]
		}
	}
	return StatusUnknown
}
