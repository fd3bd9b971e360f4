package commands

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAdvanceDeliveryStatusCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryStatusCommand must be created via NewAdvanceDeliveryStatusCommand constructor",
)

// AdvanceDeliveryStatusCommand represents a request to move a delivery to a
// target status. The target must be the next step of the delivery's route
// path, or the cancelled status; anything else is rejected by the aggregate.
//
// Example:
//
//	cmd, err := NewAdvanceDeliveryStatusCommand(deliveryID, delivery.StatusPaid)
//	if err != nil {
//	    return err
//	}
//	handler := NewAdvanceDeliveryStatusCommandHandler(uowFactory, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type AdvanceDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryStatusCommand creates a command to advance a delivery's status.
// Validates that the delivery ID is constructed and the target status is a
// caller-visible value.
func NewAdvanceDeliveryStatusCommand(deliveryID kernel.UUID, target delivery.Status) (AdvanceDeliveryStatusCommand, error) {
	cmd := AdvanceDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceDeliveryStatusCommandIsNotConstructed if validation fails.
func (c AdvanceDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery to advance.
func (c AdvanceDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the requested status.
func (c AdvanceDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

func (c *AdvanceDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AdvanceDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
