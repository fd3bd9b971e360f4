package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/services"
)

// CreateDeliveryCommandHandler handles the business logic for booking a delivery.
// Classifies the route from the pickup and dropoff districts, prices the
// parcel, and persists the new delivery in the unpaid status.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewCreateDeliveryCommand(kernel.NewUUID(), pickup, dropoff, product)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery creation failed: %w", err)
//	}
//	// Delivery is booked and waiting for payment
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery booking operations.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery booking command.
// The route class and both monetary amounts are computed here, once, and
// frozen on the aggregate; a later address correction requires a new booking.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	withinCity, err := services.ClassifyRoute(cmd.Pickup().District(), cmd.Dropoff().District())
	if err != nil {
		return err
	}

	charge, err := services.ComputeCharge(cmd.Product().Type(), cmd.Product().WeightKg(), withinCity)
	if err != nil {
		return err
	}

	commission, err := services.ComputeCommission(charge, withinCity)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.Pickup(), cmd.Dropoff(), cmd.Product(),
		charge, commission, withinCity, time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
