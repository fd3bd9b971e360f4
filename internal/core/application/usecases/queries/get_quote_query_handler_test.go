package queries_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteFor(t *testing.T, productType delivery.ProductType, weightKg float64,
	pickupDistrict, deliveryDistrict string,
) queries.GetQuoteQueryResponse {
	t.Helper()

	query, err := queries.NewGetQuoteQuery(productType, weightKg, pickupDistrict, deliveryDistrict)
	require.NoError(t, err)

	quote, err := queries.NewGetQuoteQueryHandler().Handle(context.Background(), query)
	require.NoError(t, err)
	return quote
}

func TestGetQuoteQueryHandler_DocumentFlatRate(t *testing.T) {
	quote := quoteFor(t, delivery.ProductTypeDocument, 12.0, "Dhaka", "Dhaka")

	assert.True(t, quote.WithinCity)
	assert.InDelta(t, 60.0, quote.Charge, 0.001)
	assert.InDelta(t, 48.0, quote.Commission, 0.001)
}

func TestGetQuoteQueryHandler_WithinCityWeightSurcharge(t *testing.T) {
	quote := quoteFor(t, delivery.ProductTypeNonDocument, 4.5, "Dhaka", "Dhaka")

	assert.True(t, quote.WithinCity)
	assert.InDelta(t, 170.0, quote.Charge, 0.001)
	assert.InDelta(t, 136.0, quote.Commission, 0.001)
}

func TestGetQuoteQueryHandler_CrossDistrictAddsWarehouseSurcharge(t *testing.T) {
	quote := quoteFor(t, delivery.ProductTypeNonDocument, 8.0, "Dhaka", "Gazipur")

	assert.False(t, quote.WithinCity)
	assert.InDelta(t, 360.0, quote.Charge, 0.001)
	assert.InDelta(t, 216.0, quote.Commission, 0.001)
}

func TestGetQuoteQueryHandler_DistrictComparisonIsCaseInsensitive(t *testing.T) {
	quote := quoteFor(t, delivery.ProductTypeNonDocument, 2.0, "dhaka", "DHAKA")

	assert.True(t, quote.WithinCity)
	assert.InDelta(t, 110.0, quote.Charge, 0.001)
}

func TestGetQuoteQueryHandler_MatchesBookingPricing(t *testing.T) {
	quote := quoteFor(t, delivery.ProductTypeNonDocument, 2.0, "Dhaka", "Gazipur")

	charge, err := services.ComputeCharge(delivery.ProductTypeNonDocument, 2.0, false)
	require.NoError(t, err)
	commission, err := services.ComputeCommission(charge, false)
	require.NoError(t, err)

	assert.InDelta(t, charge, quote.Charge, 0.001)
	assert.InDelta(t, commission, quote.Commission, 0.001)
}

func TestGetQuoteQueryHandler_MissingDistrict(t *testing.T) {
	query, err := queries.NewGetQuoteQuery(delivery.ProductTypeNonDocument, 2.0, "Dhaka", "   ")
	require.NoError(t, err)

	_, err = queries.NewGetQuoteQueryHandler().Handle(context.Background(), query)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrIncompleteAddress)
}

func TestGetQuoteQueryHandler_NegativeWeight(t *testing.T) {
	query, err := queries.NewGetQuoteQuery(delivery.ProductTypeNonDocument, -1.0, "Dhaka", "Dhaka")
	require.NoError(t, err)

	_, err = queries.NewGetQuoteQueryHandler().Handle(context.Background(), query)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidPricingInput)
}

func TestGetQuoteQueryHandler_InvalidQuery(t *testing.T) {
	_, err := queries.NewGetQuoteQueryHandler().Handle(context.Background(), queries.GetQuoteQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetQuoteQueryIsNotConstructed)
}
