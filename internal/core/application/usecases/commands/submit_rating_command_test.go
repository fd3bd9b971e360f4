package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitRatingCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewSubmitRatingCommand(id, "customer-7", 4, "quick and careful")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.DeliveryID())
	assert.Equal(t, "customer-7", cmd.CustomerID())
	assert.Equal(t, 4, cmd.Score())
	assert.Equal(t, "quick and careful", cmd.Comment())
}

func TestNewSubmitRatingCommand_EmptyCustomerID(t *testing.T) {
	_, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), "", 4, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerIDIsRequired)
}

func TestNewSubmitRatingCommand_ScoreOutOfRange(t *testing.T) {
	for _, score := range []int{0, -1, 6} {
		_, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), "customer-7", score, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, rider.ErrInvalidRating)
	}
}

func TestNewSubmitRatingCommand_EmptyCommentIsAllowed(t *testing.T) {
	_, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), "customer-7", 5, "")
	require.NoError(t, err)
}
