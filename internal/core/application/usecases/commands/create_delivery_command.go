package commands

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to book a new parcel delivery.
// Carries the validated pickup and dropoff addresses and the parcel
// description; the charge, commission, and route class are derived by the
// handler, never supplied by the caller.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(deliveryID, pickup, dropoff, product)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	pickup     kernel.Address
	dropoff    kernel.Address
	product    delivery.Product

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to book a new delivery.
// Validates that the delivery ID, both addresses, and the product are
// properly constructed value objects.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	pickup kernel.Address,
	dropoff kernel.Address,
	product delivery.Product,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setPickup(pickup),
		cmd.setDropoff(dropoff),
		cmd.setProduct(product),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Pickup returns the origin address.
func (c CreateDeliveryCommand) Pickup() kernel.Address {
	return c.pickup
}

// Dropoff returns the destination address.
func (c CreateDeliveryCommand) Dropoff() kernel.Address {
	return c.dropoff
}

// Product returns the parcel descriptor used for pricing.
func (c CreateDeliveryCommand) Product() delivery.Product {
	return c.product
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *CreateDeliveryCommand) setDropoff(dropoff kernel.Address) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}

	c.dropoff = dropoff
	return nil
}

func (c *CreateDeliveryCommand) setProduct(product delivery.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	c.product = product
	return nil
}
