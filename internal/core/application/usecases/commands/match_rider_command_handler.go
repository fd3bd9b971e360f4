package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
)

// ErrDeliveryNotAssignable is returned when the delivery is not in a state
// that accepts a rider: it is terminal, or it is not paid yet.
var ErrDeliveryNotAssignable = errors.New("delivery is not assignable")

// MatchRiderCommandHandler orchestrates the rider assignment process.
// Loads the delivery under a row lock, lists the verified available riders
// in the pickup district, and lets the matcher pick the best one. Both sides
// of the assignment are updated within a single transaction.
//
// Example:
//
//	handler := NewMatchRiderCommandHandler(uowFactory)
//	cmd, _ := NewMatchRiderCommand(deliveryID)
//	riderID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoCandidateAvailable):
//	    log.Println("No rider available, will retry on the next sweep")
//	case err != nil:
//	    log.Printf("Matching failed: %v", err)
//	default:
//	    log.Printf("Assigned rider %s", riderID)
//	}
type MatchRiderCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.RiderMatcher
}

// NewMatchRiderCommandHandler creates a handler for rider matching operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewMatchRiderCommandHandler(uowFactory UoWFactory) MatchRiderCommandHandler {
	return MatchRiderCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewRiderMatcher(),
	}
}

// Handle processes the rider matching command and returns the assigned rider's ID.
// Returns services.ErrNoCandidateAvailable when no eligible rider exists in
// the pickup district; the engine never queues, the caller retries.
func (h MatchRiderCommandHandler) Handle(ctx context.Context, cmd MatchRiderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if aggregate.IsTerminal() || aggregate.Status() == delivery.StatusUnpaid {
		return kernel.UUID{}, ErrDeliveryNotAssignable
	}

	riderRepo := uow.RiderRepository()
	candidates, err := riderRepo.GetAvailableInDistrict(
		ctx, aggregate.Pickup().Division(), aggregate.Pickup().District())
	if err != nil {
		return kernel.UUID{}, err
	}

	assigned, err := h.matcher.Match(aggregate, candidates)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = riderRepo.Update(ctx, assigned); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return assigned.ID(), nil
}
