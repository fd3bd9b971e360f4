package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrVerifyRiderCommandIsNotConstructed = errors.New(
	"VerifyRiderCommand must be created via NewVerifyRiderCommand constructor",
)

// VerifyRiderCommand represents an administrator approving a rider's
// credentials, making the rider eligible for matching.
type VerifyRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifyRiderCommand creates a command to verify the given rider.
func NewVerifyRiderCommand(riderID kernel.UUID) (VerifyRiderCommand, error) {
	cmd := VerifyRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRiderID(riderID); err != nil {
		return VerifyRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVerifyRiderCommandIsNotConstructed if validation fails.
func (c VerifyRiderCommand) Validate() error {
	return c.guard.Validate(ErrVerifyRiderCommandIsNotConstructed)
}

// RiderID returns the rider to verify.
func (c VerifyRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *VerifyRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
