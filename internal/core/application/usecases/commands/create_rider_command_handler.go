package commands

import (
	"context"

	"logistics/internal/core/domain/model/rider"
)

// CreateRiderCommandHandler handles the business logic for rider onboarding.
type CreateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCreateRiderCommandHandler creates a handler for rider onboarding operations.
// Requires a RiderUoWFactory for transactional persistence.
func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider onboarding command.
// The new rider is persisted unverified, with empty ledgers and the default
// rating.
func (h CreateRiderCommandHandler) Handle(ctx context.Context, cmd CreateRiderCommand) error {
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

	aggregate, err := rider.NewRider(
		cmd.RiderID(), cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(),
		cmd.Credentials(), cmd.Address(),
	)
	if err != nil {
		return err
	}

	if err = uow.RiderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
