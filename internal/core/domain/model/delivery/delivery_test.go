package delivery_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T, district string) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("Dhaka", district, "Center", "Main Road")
	require.NoError(t, err)
	return addr
}

func testProduct(t *testing.T) delivery.Product {
	t.Helper()
	product, err := delivery.NewProduct(delivery.ProductTypeNonDocument, 2)
	require.NoError(t, err)
	return product
}

func newTestDelivery(t *testing.T, withinCity bool) *delivery.Delivery {
	t.Helper()
	dropoffDistrict := "Gazipur"
	if withinCity {
		dropoffDistrict = "Dhaka"
	}

	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		testAddress(t, "Dhaka"),
		testAddress(t, dropoffDistrict),
		testProduct(t),
		110.0,
		88.0,
		withinCity,
		time.Now(),
	)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("should start unpaid and unassigned", func(t *testing.T) {
		d := newTestDelivery(t, true)

		assert.Equal(t, delivery.StatusUnpaid, d.Status())
		assert.Nil(t, d.RiderID())
		assert.True(t, d.WithinCity())
		assert.False(t, d.IsTerminal())
	})

	t.Run("should fix SLA deadline by route class", func(t *testing.T) {
		now := time.Now()
		within := newTestDelivery(t, true)
		cross := newTestDelivery(t, false)

		assert.WithinDuration(t, now.Add(24*time.Hour), within.DueAt(), time.Minute)
		assert.WithinDuration(t, now.Add(72*time.Hour), cross.DueAt(), time.Minute)
	})

	t.Run("should reject commission above charge", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(),
			testAddress(t, "Dhaka"),
			testAddress(t, "Dhaka"),
			testProduct(t),
			100.0,
			100.01,
			true,
			time.Now(),
		)

		require.ErrorIs(t, err, delivery.ErrCommissionExceedsCharge)
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(),
			testAddress(t, "Dhaka"),
			testAddress(t, "Dhaka"),
			testProduct(t),
			-1.0,
			-2.0,
			true,
			time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should reject invalid addresses", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(),
			kernel.Address{},
			testAddress(t, "Dhaka"),
			testProduct(t),
			100.0,
			80.0,
			true,
			time.Now(),
		)

		require.Error(t, err)
	})
}

func TestDelivery_AdvanceTo_FollowsFixedPath(t *testing.T) {
	for _, withinCity := range []bool{true, false} {
		name := "cross-district"
		if withinCity {
			name = "within-city"
		}

		t.Run(name, func(t *testing.T) {
			d := newTestDelivery(t, withinCity)
			require.NoError(t, d.AssignRider(kernel.NewUUID()))

			path := delivery.StatusPath(withinCity)
			for _, target := range path[1:] {
				changed, err := d.AdvanceTo(target)

				require.NoError(t, err, "advancing to %s", target)
				assert.True(t, changed)
				assert.Equal(t, target, d.Status())
			}

			assert.True(t, d.IsTerminal())
		})
	}
}

func TestDelivery_AdvanceTo_RejectsSkips(t *testing.T) {
	t.Run("cannot skip a path step", func(t *testing.T) {
		d := newTestDelivery(t, true)

		changed, err := d.AdvanceTo(delivery.StatusReadyToPickup)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.False(t, changed)
		assert.Equal(t, delivery.StatusUnpaid, d.Status())
	})

	t.Run("within-city delivery never reaches warehouse", func(t *testing.T) {
		d := newTestDelivery(t, true)
		mustAdvance(t, d, delivery.StatusPaid, delivery.StatusReadyToPickup, delivery.StatusInTransit)

		_, err := d.AdvanceTo(delivery.StatusReachedWarehouse)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.Equal(t, delivery.StatusInTransit, d.Status())
	})

	t.Run("cross-district delivery cannot bypass warehouse", func(t *testing.T) {
		d := newTestDelivery(t, false)
		mustAdvance(t, d, delivery.StatusPaid, delivery.StatusReadyToPickup, delivery.StatusInTransit)

		_, err := d.AdvanceTo(delivery.StatusReadyForDelivery)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})

	t.Run("cannot move backwards", func(t *testing.T) {
		d := newTestDelivery(t, true)
		mustAdvance(t, d, delivery.StatusPaid)

		_, err := d.AdvanceTo(delivery.StatusUnpaid)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})

	t.Run("cannot deliver without an assigned rider", func(t *testing.T) {
		d := newTestDelivery(t, true)
		mustAdvance(t, d, delivery.StatusPaid, delivery.StatusReadyToPickup,
			delivery.StatusInTransit, delivery.StatusReadyForDelivery)

		changed, err := d.AdvanceTo(delivery.StatusDelivered)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.False(t, changed)
		assert.Equal(t, delivery.StatusReadyForDelivery, d.Status())
	})
}

func TestDelivery_AdvanceTo_Idempotent(t *testing.T) {
	t.Run("re-entrant transition is a successful no-op", func(t *testing.T) {
		d := newTestDelivery(t, true)
		mustAdvance(t, d, delivery.StatusPaid)

		changed, err := d.AdvanceTo(delivery.StatusPaid)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, delivery.StatusPaid, d.Status())
	})

	t.Run("duplicate delivered call is a no-op", func(t *testing.T) {
		d := newTestDelivery(t, true)
		require.NoError(t, d.AssignRider(kernel.NewUUID()))
		mustAdvance(t, d, delivery.StatusPaid, delivery.StatusReadyToPickup,
			delivery.StatusInTransit, delivery.StatusReadyForDelivery, delivery.StatusDelivered)

		changed, err := d.AdvanceTo(delivery.StatusDelivered)

		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestDelivery_Cancellation(t *testing.T) {
	t.Run("cancellable from every non-terminal state", func(t *testing.T) {
		path := delivery.StatusPath(false)
		for i, status := range path[:len(path)-1] {
			d := newTestDelivery(t, false)
			require.NoError(t, d.AssignRider(kernel.NewUUID()))
			mustAdvance(t, d, path[1:i+1]...)
			require.Equal(t, status, d.Status())

			changed, err := d.AdvanceTo(delivery.StatusCancelled)

			require.NoError(t, err, "cancelling from %s", status)
			assert.True(t, changed)
			assert.Equal(t, delivery.StatusCancelled, d.Status())
		}
	})

	t.Run("cancelled is final", func(t *testing.T) {
		d := newTestDelivery(t, true)
		mustAdvance(t, d, delivery.StatusCancelled)

		_, err := d.AdvanceTo(delivery.StatusPaid)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})

	t.Run("delivered cannot be cancelled", func(t *testing.T) {
		d := newTestDelivery(t, true)
		require.NoError(t, d.AssignRider(kernel.NewUUID()))
		mustAdvance(t, d, delivery.StatusPaid, delivery.StatusReadyToPickup,
			delivery.StatusInTransit, delivery.StatusReadyForDelivery, delivery.StatusDelivered)

		_, err := d.AdvanceTo(delivery.StatusCancelled)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

func TestDelivery_AssignRider(t *testing.T) {
	t.Run("should assign to active delivery", func(t *testing.T) {
		d := newTestDelivery(t, true)
		riderID := kernel.NewUUID()

		require.NoError(t, d.AssignRider(riderID))

		require.NotNil(t, d.RiderID())
		assert.True(t, riderID.IsEqual(*d.RiderID()))
	})

	t.Run("reassignment replaces the previous rider", func(t *testing.T) {
		d := newTestDelivery(t, true)
		require.NoError(t, d.AssignRider(kernel.NewUUID()))
		replacement := kernel.NewUUID()

		require.NoError(t, d.AssignRider(replacement))

		assert.True(t, replacement.IsEqual(*d.RiderID()))
	})

	t.Run("cannot assign to terminal delivery", func(t *testing.T) {
		d := newTestDelivery(t, true)
		mustAdvance(t, d, delivery.StatusCancelled)

		err := d.AssignRider(kernel.NewUUID())

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})

	t.Run("rejects zero-value rider id", func(t *testing.T) {
		d := newTestDelivery(t, true)

		require.Error(t, d.AssignRider(kernel.UUID{}))
	})
}

func TestDelivery_CompletedOnTime(t *testing.T) {
	d := newTestDelivery(t, true)

	t.Run("before deadline is on time", func(t *testing.T) {
		assert.True(t, d.CompletedOnTime(d.DueAt().Add(-time.Hour)))
	})

	t.Run("at deadline is on time", func(t *testing.T) {
		assert.True(t, d.CompletedOnTime(d.DueAt()))
	})

	t.Run("after deadline is late", func(t *testing.T) {
		assert.False(t, d.CompletedOnTime(d.DueAt().Add(time.Minute)))
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		riderID := kernel.NewUUID()
		createdAt := time.Now().Add(-time.Hour)
		dueAt := createdAt.Add(72 * time.Hour)

		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(),
			testAddress(t, "Dhaka"),
			testAddress(t, "Gazipur"),
			testProduct(t),
			200.0,
			120.0,
			false,
			delivery.StatusInTransit,
			&riderID,
			createdAt,
			dueAt,
		)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusInTransit, d.Status())
		require.NotNil(t, d.RiderID())
		assert.True(t, riderID.IsEqual(*d.RiderID()))
		assert.Equal(t, dueAt, d.DueAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(),
			testAddress(t, "Dhaka"),
			testAddress(t, "Gazipur"),
			testProduct(t),
			200.0,
			120.0,
			false,
			delivery.StatusUnknown,
			nil,
			time.Now(),
			time.Now(),
		)

		require.Error(t, err)
	})
}

func TestDelivery_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var d delivery.Delivery

		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})

	t.Run("nil delivery is not constructed", func(t *testing.T) {
		var d *delivery.Delivery

		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})
}

// mustAdvance walks the delivery through the given targets, failing the test
// on any rejected transition.
func mustAdvance(t *testing.T, d *delivery.Delivery, targets ...delivery.Status) {
	t.Helper()
	for _, target := range targets {
		_, err := d.AdvanceTo(target)
		require.NoError(t, err, "advancing to %s", target)
	}
}
