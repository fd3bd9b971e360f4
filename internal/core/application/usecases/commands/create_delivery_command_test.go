package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDeliveryCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	pickup := testAddress(t, "Dhaka")
	dropoff := testAddress(t, "Gazipur")
	product := testProduct(t)

	cmd, err := commands.NewCreateDeliveryCommand(id, pickup, dropoff, product)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.DeliveryID())
	assert.True(t, cmd.Pickup().IsEqual(pickup))
	assert.True(t, cmd.Dropoff().IsEqual(dropoff))
	assert.Equal(t, product, cmd.Product())
}

func TestNewCreateDeliveryCommand_InvalidDeliveryID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateDeliveryCommand(invalidID, testAddress(t, "Dhaka"), testAddress(t, "Dhaka"), testProduct(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateDeliveryCommand_UnconstructedAddress(t *testing.T) {
	_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.Address{}, testAddress(t, "Dhaka"), testProduct(t))
	require.Error(t, err)
}

func TestCreateDeliveryCommand_ZeroValueIsInvalid(t *testing.T) {
	cmd := commands.CreateDeliveryCommand{}
	require.Error(t, cmd.Validate())
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateDeliveryCommandIsNotConstructed)
}
