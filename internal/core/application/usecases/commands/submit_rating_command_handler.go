package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/delivery"
)

// ErrDeliveryHasNoRider is returned when a rating targets a delivery that
// never had a rider assigned.
var ErrDeliveryHasNoRider = errors.New("delivery has no assigned rider")

// ErrDeliveryNotRatable is returned when a rating targets a delivery that
// has not been delivered. Only completed deliveries can be rated.
var ErrDeliveryNotRatable = errors.New("delivery has not been delivered")

// SubmitRatingCommandHandler handles customer ratings.
// Resolves the delivery to its assigned rider, appends the rating record to
// the rider's ledger, and recomputes the aggregate rating, all in one
// transaction.
type SubmitRatingCommandHandler struct {
	uowFactory UoWFactory
}

// NewSubmitRatingCommandHandler creates a handler for rating submissions.
// Requires a UoWFactory because the rating is addressed by delivery but
// recorded on the rider.
func NewSubmitRatingCommandHandler(uowFactory UoWFactory) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating submission command.
// The delivery must be delivered and have an assigned rider; ratings on
// in-flight or cancelled deliveries are rejected with ErrDeliveryNotRatable.
func (h SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) error {
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

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if aggregate.RiderID() == nil {
		return ErrDeliveryHasNoRider
	}
	if aggregate.Status() != delivery.StatusDelivered {
		return ErrDeliveryNotRatable
	}

	riderRepo := uow.RiderRepository()
	assignee, err := riderRepo.Get(ctx, *aggregate.RiderID())
	if err != nil {
		return err
	}

	if err = assignee.RecordRating(
		cmd.DeliveryID(), cmd.CustomerID(), cmd.Score(), cmd.Comment(), time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, assignee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
