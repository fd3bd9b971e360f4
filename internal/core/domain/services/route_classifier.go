package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncompleteAddress is returned when a route cannot be classified because
// a district is missing on either side of the pickup/delivery pair.
var ErrIncompleteAddress = errors.New("incomplete address")

// ClassifyRoute labels a pickup/delivery district pair as within-city or
// cross-district. Two addresses are within-city if and only if they share
// the same administrative district; sharing a division is not sufficient.
//
// Comparison is case-insensitive on trimmed values. The classification is
// made once, at delivery creation, and fixes the delivery's status path.
func ClassifyRoute(pickupDistrict, deliveryDistrict string) (bool, error) {
	pickup := strings.TrimSpace(pickupDistrict)
	dropoff := strings.TrimSpace(deliveryDistrict)

	if pickup == "" {
		return false, fmt.Errorf("%w: pickup district is required", ErrIncompleteAddress)
	}
	if dropoff == "" {
		return false, fmt.Errorf("%w: delivery district is required", ErrIncompleteAddress)
	}

	return strings.EqualFold(pickup, dropoff), nil
}
