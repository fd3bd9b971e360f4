package queries

import (
	"context"

	"logistics/internal/core/domain/services"
)

// GetQuoteQueryHandler computes delivery quotes.
// Unlike the other query handlers it needs no database: a quote is a pure
// function of the pricing rules and route classification, and running those
// rules here guarantees the quote matches the charge a booking would freeze.
type GetQuoteQueryHandler struct{}

// NewGetQuoteQueryHandler creates a handler for quote queries.
func NewGetQuoteQueryHandler() GetQuoteQueryHandler {
	return GetQuoteQueryHandler{}
}

// Handle computes the quote for the given pricing inputs.
// Returns services.ErrIncompleteAddress for missing districts and
// services.ErrInvalidPricingInput for unpriceable parcels.
func (h GetQuoteQueryHandler) Handle(_ context.Context, query GetQuoteQuery) (GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteQueryResponse{}, err
	}

	withinCity, err := services.ClassifyRoute(query.PickupDistrict(), query.DeliveryDistrict())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	charge, err := services.ComputeCharge(query.ProductType(), query.WeightKg(), withinCity)
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	commission, err := services.ComputeCommission(charge, withinCity)
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	return GetQuoteQueryResponse{
		WithinCity: withinCity,
		Charge:     charge,
		Commission: commission,
	}, nil
}
