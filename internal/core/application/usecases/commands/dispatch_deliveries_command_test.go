package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatchDeliveriesCommand(t *testing.T) {
	cmd := commands.NewDispatchDeliveriesCommand()
	require.NoError(t, cmd.Validate())
}

func TestDispatchDeliveriesCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.DispatchDeliveriesCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrDispatchDeliveriesCommandIsNotConstructed)
}
