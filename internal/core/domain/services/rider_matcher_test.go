package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/rider"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dhakaAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Dhaka", "Dhaka", "Banani", "Road 11")
	require.NoError(t, err)
	return address
}

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	dropoff, err := kernel.NewAddress("Dhaka", "Dhaka", "Gulshan", "Road 32")
	require.NoError(t, err)
	product, err := delivery.NewProduct(delivery.ProductTypeDocument, 0.2)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(kernel.NewUUID(), dhakaAddress(t), dropoff, product, 60, 48, true, time.Now())
	require.NoError(t, err)
	return d
}

func newVerifiedRider(t *testing.T, address kernel.Address) *rider.Rider {
	t.Helper()

	credentials, err := rider.NewCredentials("NID-100200", "DL-445566", "motorbike", "DHK-METRO-11-2233")
	require.NoError(t, err)

	r, err := rider.NewRider(kernel.NewUUID(), "auth0|"+kernel.NewUUID().String(), "Kamal Hossain",
		"kamal@example.com", "+8801711000000", credentials, address)
	require.NoError(t, err)

	r.Verify()
	return r
}

func riderWithHistory(t *testing.T, address kernel.Address, completed int, scores ...int) *rider.Rider {
	t.Helper()

	r := newVerifiedRider(t, address)
	for i := 0; i < completed; i++ {
		r.RecordDeliveryOutcome(true)
	}
	for _, score := range scores {
		err := r.RecordRating(kernel.NewUUID(), "customer-1", score, "", time.Now())
		require.NoError(t, err)
	}
	return r
}

func TestRiderMatcher_RankCandidates(t *testing.T) {
	matcher := services.NewRiderMatcher()
	pickup := dhakaAddress(t)

	t.Run("orders by rating descending", func(t *testing.T) {
		low := riderWithHistory(t, pickup, 5, 3, 3)
		high := riderWithHistory(t, pickup, 5, 5, 5)

		ranked := matcher.RankCandidates(pickup, []*rider.Rider{low, high})

		require.Len(t, ranked, 2)
		assert.True(t, ranked[0].IsEqual(high))
		assert.True(t, ranked[1].IsEqual(low))
	})

	t.Run("breaks rating ties by completed deliveries", func(t *testing.T) {
		rookie := riderWithHistory(t, pickup, 1, 5)
		veteran := riderWithHistory(t, pickup, 40, 5)

		ranked := matcher.RankCandidates(pickup, []*rider.Rider{rookie, veteran})

		require.Len(t, ranked, 2)
		assert.True(t, ranked[0].IsEqual(veteran))
	})

	t.Run("zero-history rider ranks below experienced rider at the default rating", func(t *testing.T) {
		fresh := newVerifiedRider(t, pickup)
		experienced := riderWithHistory(t, pickup, 12, 5, 5)

		ranked := matcher.RankCandidates(pickup, []*rider.Rider{fresh, experienced})

		require.Len(t, ranked, 2)
		assert.True(t, ranked[0].IsEqual(experienced))
		assert.True(t, ranked[1].IsEqual(fresh))
	})

	t.Run("filters unverified, busy, and out-of-district riders", func(t *testing.T) {
		unverifiedCredentials, err := rider.NewCredentials("NID-1", "DL-1", "bicycle", "")
		require.NoError(t, err)
		unverified, err := rider.NewRider(kernel.NewUUID(), "auth0|u1", "Rafiq", "", "", unverifiedCredentials, pickup)
		require.NoError(t, err)

		busy := newVerifiedRider(t, pickup)
		require.NoError(t, busy.Assign(kernel.NewUUID()))

		elsewhere, err := kernel.NewAddress("Chattogram", "Chattogram", "Agrabad", "")
		require.NoError(t, err)
		outOfDistrict := newVerifiedRider(t, elsewhere)

		eligible := newVerifiedRider(t, pickup)

		ranked := matcher.RankCandidates(pickup, []*rider.Rider{unverified, busy, outOfDistrict, nil, eligible})

		require.Len(t, ranked, 1)
		assert.True(t, ranked[0].IsEqual(eligible))
	})
}

func TestRiderMatcher_Match(t *testing.T) {
	matcher := services.NewRiderMatcher()

	t.Run("assigns the best candidate on both sides", func(t *testing.T) {
		d := newTestDelivery(t)
		best := riderWithHistory(t, dhakaAddress(t), 20, 5)
		other := riderWithHistory(t, dhakaAddress(t), 2, 3)

		assigned, err := matcher.Match(d, []*rider.Rider{other, best})

		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(best))
		assert.False(t, best.IsAvailable())
		require.NotNil(t, best.CurrentDeliveryID())
		assert.True(t, best.CurrentDeliveryID().IsEqual(d.ID()))
		require.NotNil(t, d.RiderID())
		assert.True(t, d.RiderID().IsEqual(best.ID()))
	})

	t.Run("skips a candidate taken by a concurrent dispatch", func(t *testing.T) {
		d := newTestDelivery(t)
		taken := riderWithHistory(t, dhakaAddress(t), 30, 5)
		require.NoError(t, taken.Assign(kernel.NewUUID()))
		taken.Verify()
		fallback := riderWithHistory(t, dhakaAddress(t), 3, 4)

		assigned, err := matcher.Match(d, []*rider.Rider{fallback, taken})

		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(fallback))
	})

	t.Run("empty pool fails with ErrNoCandidateAvailable", func(t *testing.T) {
		d := newTestDelivery(t)

		_, err := matcher.Match(d, nil)

		require.ErrorIs(t, err, services.ErrNoCandidateAvailable)
	})

	t.Run("pool with no eligible rider fails with ErrNoCandidateAvailable", func(t *testing.T) {
		d := newTestDelivery(t)
		elsewhere, err := kernel.NewAddress("Sylhet", "Sylhet", "Zindabazar", "")
		require.NoError(t, err)
		outOfDistrict := newVerifiedRider(t, elsewhere)

		_, err = matcher.Match(d, []*rider.Rider{outOfDistrict})

		require.ErrorIs(t, err, services.ErrNoCandidateAvailable)
	})
}
