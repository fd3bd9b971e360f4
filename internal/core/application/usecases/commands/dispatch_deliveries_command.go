package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrDispatchDeliveriesCommandIsNotConstructed = errors.New(
	"DispatchDeliveriesCommand must be created via NewDispatchDeliveriesCommand constructor",
)

// DispatchDeliveriesCommand triggers a sweep over deliveries waiting for a
// rider. Each paid, unassigned delivery gets one matching attempt; deliveries
// nobody can take stay in the pool for the next sweep.
//
// Example:
//
//	cmd := NewDispatchDeliveriesCommand()
//	handler := NewDispatchDeliveriesCommandHandler(uowFactory, matchHandler, logger)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Dispatch sweep failed: %v", err)
//	}
type DispatchDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchDeliveriesCommand creates a new command to trigger a dispatch sweep.
// This is a parameterless command that initiates the delivery-rider matching process.
func NewDispatchDeliveriesCommand() DispatchDeliveriesCommand {
	return DispatchDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchDeliveriesCommandIsNotConstructed if validation fails.
func (c *DispatchDeliveriesCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchDeliveriesCommandIsNotConstructed,
	)
}
