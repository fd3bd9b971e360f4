package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrMatchRiderCommandIsNotConstructed = errors.New(
	"MatchRiderCommand must be created via NewMatchRiderCommand constructor",
)

// MatchRiderCommand represents a request to assign a rider to a delivery.
type MatchRiderCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMatchRiderCommand creates a command to match a rider to the given delivery.
func NewMatchRiderCommand(deliveryID kernel.UUID) (MatchRiderCommand, error) {
	cmd := MatchRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return MatchRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMatchRiderCommandIsNotConstructed if validation fails.
func (c MatchRiderCommand) Validate() error {
	return c.guard.Validate(ErrMatchRiderCommandIsNotConstructed)
}

// DeliveryID returns the delivery to match a rider for.
func (c MatchRiderCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *MatchRiderCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
