package commands

import (
	"context"
)

// VerifyRiderCommandHandler handles rider credential approval.
// Verification is idempotent: verifying an already-verified rider simply
// persists the same state again.
type VerifyRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewVerifyRiderCommandHandler creates a handler for rider verification operations.
// Requires a RiderUoWFactory for transactional persistence.
func NewVerifyRiderCommandHandler(uowFactory RiderUoWFactory) VerifyRiderCommandHandler {
	return VerifyRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider verification command.
func (h VerifyRiderCommandHandler) Handle(ctx context.Context, cmd VerifyRiderCommand) error {
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

	riderRepo := uow.RiderRepository()
	aggregate, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	aggregate.Verify()

	if err = riderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
