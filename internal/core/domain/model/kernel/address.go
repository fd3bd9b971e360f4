package kernel

import (
	"strings"

	"logistics/internal/pkg/errs"
)

// Validation errors for address construction.
var (
	// ErrDivisionIsRequired is returned when an address is created without a division.
	ErrDivisionIsRequired = errs.NewValueIsRequiredError("division")
	// ErrDistrictIsRequired is returned when an address is created without a district.
	ErrDistrictIsRequired = errs.NewValueIsRequiredError("district")
)

// Address is a value object representing an administrative postal location.
// Location granularity is administrative (division/district/area/street),
// not coordinate-based: routing decisions in the system compare district
// fields, never geographic distance.
//
// Address is immutable once constructed. Division and district are required;
// area and street are optional free-form refinements. All fields are stored
// trimmed so comparisons are never sensitive to surrounding whitespace.
//
// Example usage:
//
//	pickup, err := kernel.NewAddress("Dhaka", "Dhaka", "Banani", "Road 11")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct {
	division string
	district string
	area     string
	street   string
}

// NewAddress creates an Address from its administrative components.
// Division and district must be non-empty after trimming; area and street
// may be empty.
func NewAddress(division, district, area, street string) (Address, error) {
	division = strings.TrimSpace(division)
	district = strings.TrimSpace(district)

	if division == "" {
		return Address{}, ErrDivisionIsRequired
	}
	if district == "" {
		return Address{}, ErrDistrictIsRequired
	}

	return Address{
		division: division,
		district: district,
		area:     strings.TrimSpace(area),
		street:   strings.TrimSpace(street),
	}, nil
}

// Division returns the top-level administrative division.
func (a Address) Division() string {
	return a.division
}

// District returns the administrative district used for route classification.
func (a Address) District() string {
	return a.district
}

// Area returns the area or city refinement within the district.
func (a Address) Area() string {
	return a.area
}

// Street returns the street-level detail of the address.
func (a Address) Street() string {
	return a.street
}

// InDistrict reports whether the address lies in the given division and
// district. Comparison is case-insensitive on trimmed values.
func (a Address) InDistrict(division, district string) bool {
	return strings.EqualFold(a.division, strings.TrimSpace(division)) &&
		strings.EqualFold(a.district, strings.TrimSpace(district))
}

// IsEqual compares two addresses field by field, case-insensitively.
func (a Address) IsEqual(other Address) bool {
	return strings.EqualFold(a.division, other.division) &&
		strings.EqualFold(a.district, other.district) &&
		strings.EqualFold(a.area, other.area) &&
		strings.EqualFold(a.street, other.street)
}

// Validate checks that the Address was properly constructed.
// The zero value is invalid because division and district are required.
func (a Address) Validate() error {
	if a.division == "" {
		return ErrDivisionIsRequired
	}
	if a.district == "" {
		return ErrDistrictIsRequired
	}
	return nil
}
