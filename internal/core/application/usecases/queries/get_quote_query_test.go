package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetQuoteQuery_Valid(t *testing.T) {
	query, err := queries.NewGetQuoteQuery(delivery.ProductTypeNonDocument, 2.5, "Dhaka", "Gazipur")
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, delivery.ProductTypeNonDocument, query.ProductType())
	assert.InDelta(t, 2.5, query.WeightKg(), 0.0001)
	assert.Equal(t, "Dhaka", query.PickupDistrict())
	assert.Equal(t, "Gazipur", query.DeliveryDistrict())
}

func TestNewGetQuoteQuery_InvalidProductType(t *testing.T) {
	_, err := queries.NewGetQuoteQuery(delivery.ProductTypeUnknown, 2.5, "Dhaka", "Gazipur")
	require.Error(t, err)
}

func TestGetQuoteQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetQuoteQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetQuoteQueryIsNotConstructed)
}
