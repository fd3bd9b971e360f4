package commands

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/rider"
	"logistics/internal/core/domain/services"
)

// DispatchDeliveriesCommandHandler sweeps the pool of paid, unassigned
// deliveries and attempts one rider match per delivery. Each match runs in
// its own transaction, so one contested delivery never blocks the rest of
// the sweep.
type DispatchDeliveriesCommandHandler struct {
	uowFactory   DeliveryUoWFactory
	matchHandler MatchRiderCommandHandler
	logger       *slog.Logger
}

// NewDispatchDeliveriesCommandHandler creates a handler for dispatch sweeps.
// Requires a DeliveryUoWFactory to list the waiting deliveries and a
// MatchRiderCommandHandler to attempt each assignment.
func NewDispatchDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory,
	matchHandler MatchRiderCommandHandler,
	logger *slog.Logger,
) DispatchDeliveriesCommandHandler {
	return DispatchDeliveriesCommandHandler{
		uowFactory:   uowFactory,
		matchHandler: matchHandler,
		logger:       logger.With("component", "dispatch_deliveries"),
	}
}

// Handle runs one dispatch sweep. Deliveries that cannot be matched right
// now (no candidate, rider taken meanwhile, delivery advanced meanwhile) are
// skipped and retried on the next sweep; only unexpected failures are
// reported.
func (h DispatchDeliveriesCommandHandler) Handle(ctx context.Context, cmd DispatchDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	waiting, err := h.listWaitingDeliveryIDs(ctx)
	if err != nil {
		return err
	}

	for _, deliveryID := range waiting {
		matchCmd, cmdErr := NewMatchRiderCommand(deliveryID)
		if cmdErr != nil {
			return cmdErr
		}

		riderID, matchErr := h.matchHandler.Handle(ctx, matchCmd)
		switch {
		case matchErr == nil:
			h.logger.InfoContext(ctx, "Delivery dispatched",
				"delivery_id", deliveryID.String(), "rider_id", riderID.String())
		case errors.Is(matchErr, services.ErrNoCandidateAvailable),
			errors.Is(matchErr, rider.ErrRiderUnavailable),
			errors.Is(matchErr, ErrDeliveryNotAssignable):
			// expected contention, the delivery stays in the pool
			h.logger.DebugContext(ctx, "Delivery not matched",
				"delivery_id", deliveryID.String(), "reason", matchErr.Error())
		default:
			h.logger.ErrorContext(ctx, "Dispatch attempt failed",
				"delivery_id", deliveryID.String(), "error", matchErr)
		}
	}

	return nil
}

func (h DispatchDeliveriesCommandHandler) listWaitingDeliveryIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveries, err := uow.DeliveryRepository().GetAllUnassigned(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, len(deliveries))
	for i, d := range deliveries {
		ids[i] = d.ID()
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}
