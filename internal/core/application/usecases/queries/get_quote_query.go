// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/guard"
)

var ErrGetQuoteQueryIsNotConstructed = errors.New(
	"GetQuoteQuery must be created via NewGetQuoteQuery constructor",
)

// GetQuoteQuery asks for the price of a hypothetical delivery without
// creating anything. Customers use it to preview the charge before booking.
//
// Example:
//
//	query, err := NewGetQuoteQuery(delivery.ProductTypeNonDocument, 4.5, "Dhaka", "Gazipur")
//	if err != nil {
//	    return err
//	}
//	quote, err := NewGetQuoteQueryHandler().Handle(ctx, query)
type GetQuoteQuery struct { //nolint:recvcheck //using for validation
	productType      delivery.ProductType
	weightKg         float64
	pickupDistrict   string
	deliveryDistrict string

	guard guard.ConstructorGuard
}

// NewGetQuoteQuery creates a quote query from the pricing inputs.
// District emptiness and weight validity are checked by the pricing rules in
// the handler, so the quote endpoint reports the same errors a booking would.
func NewGetQuoteQuery(
	productType delivery.ProductType,
	weightKg float64,
	pickupDistrict string,
	deliveryDistrict string,
) (GetQuoteQuery, error) {
	if err := productType.Validate(); err != nil {
		return GetQuoteQuery{}, err
	}

	return GetQuoteQuery{
		productType:      productType,
		weightKg:         weightKg,
		pickupDistrict:   pickupDistrict,
		deliveryDistrict: deliveryDistrict,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetQuoteQueryIsNotConstructed if validation fails.
func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

// ProductType returns the parcel type being quoted.
func (q GetQuoteQuery) ProductType() delivery.ProductType {
	return q.productType
}

// WeightKg returns the parcel weight in kilograms.
func (q GetQuoteQuery) WeightKg() float64 {
	return q.weightKg
}

// PickupDistrict returns the origin district.
func (q GetQuoteQuery) PickupDistrict() string {
	return q.pickupDistrict
}

// DeliveryDistrict returns the destination district.
func (q GetQuoteQuery) DeliveryDistrict() string {
	return q.deliveryDistrict
}

// GetQuoteQueryResponse is the quoted price for a hypothetical delivery.
type GetQuoteQueryResponse struct {
	WithinCity bool
	Charge     float64
	Commission float64
}
