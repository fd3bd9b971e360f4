package delivery_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusPath(t *testing.T) {
	t.Run("within-city path has 6 states", func(t *testing.T) {
		path := delivery.StatusPath(true)

		assert.Equal(t, []delivery.Status{
			delivery.StatusUnpaid,
			delivery.StatusPaid,
			delivery.StatusReadyToPickup,
			delivery.StatusInTransit,
			delivery.StatusReadyForDelivery,
			delivery.StatusDelivered,
		}, path)
	})

	t.Run("cross-district path has 8 states", func(t *testing.T) {
		path := delivery.StatusPath(false)

		assert.Equal(t, []delivery.Status{
			delivery.StatusUnpaid,
			delivery.StatusPaid,
			delivery.StatusReadyToPickup,
			delivery.StatusInTransit,
			delivery.StatusReachedWarehouse,
			delivery.StatusShipped,
			delivery.StatusReadyForDelivery,
			delivery.StatusDelivered,
		}, path)
	})

	t.Run("both paths start unpaid and end delivered", func(t *testing.T) {
		for _, withinCity := range []bool{true, false} {
			path := delivery.StatusPath(withinCity)
			assert.Equal(t, delivery.StatusUnpaid, path[0])
			assert.Equal(t, delivery.StatusDelivered, path[len(path)-1])
		}
	})

	t.Run("returned path is a copy", func(t *testing.T) {
		path := delivery.StatusPath(true)
		path[0] = delivery.StatusCancelled

		assert.Equal(t, delivery.StatusUnpaid, delivery.StatusPath(true)[0])
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all lifecycle statuses", func(t *testing.T) {
		validStatuses := []delivery.Status{
			delivery.StatusUnpaid,
			delivery.StatusPaid,
			delivery.StatusReadyToPickup,
			delivery.StatusInTransit,
			delivery.StatusReachedWarehouse,
			delivery.StatusShipped,
			delivery.StatusReadyForDelivery,
			delivery.StatusDelivered,
			delivery.StatusCancelled,
		}

		for _, status := range validStatuses {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := delivery.StatusUnknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject out-of-range values", func(t *testing.T) {
		for _, status := range []delivery.Status{delivery.Status(-1), delivery.Status(100)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				require.Error(t, status.Validate())
			})
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip all valid statuses", func(t *testing.T) {
		for _, status := range delivery.StatusPath(false) {
			parsed, err := delivery.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should parse cancelled", func(t *testing.T) {
		parsed, err := delivery.StatusFromString("cancelled")

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusCancelled, parsed)
	})

	t.Run("should reject unknown token", func(t *testing.T) {
		_, err := delivery.StatusFromString("teleported")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject the unknown token itself", func(t *testing.T) {
		_, err := delivery.StatusFromString("unknown")

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("delivered and cancelled are terminal", func(t *testing.T) {
		assert.True(t, delivery.StatusDelivered.IsTerminal())
		assert.True(t, delivery.StatusCancelled.IsTerminal())
	})

	t.Run("path statuses before delivered are not terminal", func(t *testing.T) {
		path := delivery.StatusPath(false)
		for _, status := range path[:len(path)-1] {
			assert.False(t, status.IsTerminal(), "status %s", status)
		}
	})
}
