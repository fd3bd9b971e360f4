package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/ports"
)

// AdvanceDeliveryStatusCommandHandler handles delivery status transitions.
// Loads the delivery under a row lock, asks the aggregate to advance, and on
// the terminal transitions settles the assigned rider: a delivery completion
// credits the commission to the rider's earnings ledger and records the
// on-time outcome; a cancellation records the cancellation. Both paths return
// the rider to the available pool. All of it commits in one transaction.
//
// A status event is published after the commit; a publish failure is logged
// and never rolls the state change back.
type AdvanceDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.DeliveryEventPublisher
	logger     *slog.Logger
}

// NewAdvanceDeliveryStatusCommandHandler creates a handler for status transitions.
// Requires a UoWFactory for coordinating delivery and rider updates, and a
// publisher for the post-commit status event.
func NewAdvanceDeliveryStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.DeliveryEventPublisher,
	logger *slog.Logger,
) AdvanceDeliveryStatusCommandHandler {
	return AdvanceDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "advance_delivery_status"),
	}
}

// Handle processes the status transition command.
// A transition to the delivery's current status is a no-op: nothing is
// written and no event is published, so redelivered webhooks are harmless.
func (h AdvanceDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	changed, err := aggregate.AdvanceTo(cmd.Target())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	now := time.Now().UTC()
	if err = h.settleRider(ctx, uow, aggregate, now); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publishStatusChanged(ctx, aggregate, now)
	return nil
}

// settleRider applies the rider-side effects of a terminal transition.
// Non-terminal transitions and unassigned deliveries settle nothing.
func (h AdvanceDeliveryStatusCommandHandler) settleRider(
	ctx context.Context,
	uow UoW,
	aggregate *delivery.Delivery,
	now time.Time,
) error {
	if !aggregate.IsTerminal() || aggregate.RiderID() == nil {
		return nil
	}

	riderRepo := uow.RiderRepository()
	assignee, err := riderRepo.GetByDeliveryID(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	switch aggregate.Status() {
	case delivery.StatusDelivered:
		if err = assignee.RecordEarning(aggregate.ID(), aggregate.Commission(), now); err != nil {
			return err
		}
		assignee.RecordDeliveryOutcome(aggregate.CompletedOnTime(now))
	case delivery.StatusCancelled:
		assignee.RecordCancellation()
	default:
		return nil
	}

	assignee.Release()
	return riderRepo.Update(ctx, assignee)
}

func (h AdvanceDeliveryStatusCommandHandler) publishStatusChanged(
	ctx context.Context,
	aggregate *delivery.Delivery,
	occurredAt time.Time,
) {
	event := ports.DeliveryStatusEvent{
		DeliveryID: aggregate.ID().String(),
		Status:     aggregate.Status().String(),
		WithinCity: aggregate.WithinCity(),
		OccurredAt: occurredAt,
	}
	if aggregate.RiderID() != nil {
		event.RiderID = aggregate.RiderID().String()
	}

	if err := h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish delivery status event",
			"delivery_id", event.DeliveryID, "status", event.Status, "error", err)
	}
}
