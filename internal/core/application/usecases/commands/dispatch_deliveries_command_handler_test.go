package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/rider"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDispatchHandler(
	listFactory *MockDeliveryUoWFactory, matchFactory *MockUoWFactory,
) commands.DispatchDeliveriesCommandHandler {
	return commands.NewDispatchDeliveriesCommandHandler(
		listFactory,
		commands.NewMatchRiderCommandHandler(matchFactory),
		discardLogger(),
	)
}

func TestDispatchDeliveriesCommandHandler_Handle_MatchesWaitingDelivery(t *testing.T) {
	ctx := t.Context()
	aggregate := testDeliveryInStatus(t, delivery.StatusPaid, nil)
	candidate := testVerifiedRider(t)

	listRepo := new(MockDeliveryRepository)
	listRepo.On("GetAllUnassigned", mock.Anything).
		Return([]*delivery.Delivery{aggregate}, nil).Once()
	listUoW := new(MockUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("DeliveryRepository").Return(listRepo).Once()
	listUoW.On("Commit", ctx).Return(nil).Once()
	listUoW.On("Rollback", ctx).Return(nil).Once()
	listFactory := new(MockDeliveryUoWFactory)
	listFactory.On("Create").Return(listUoW).Once()

	matchDeliveryRepo := new(MockDeliveryRepository)
	matchRiderRepo := new(MockRiderRepository)
	matchUoW := new(MockUoW)
	matchUoW.On("Begin", ctx).Return(nil).Once()
	matchUoW.On("DeliveryRepository").Return(matchDeliveryRepo).Once()
	matchUoW.On("RiderRepository").Return(matchRiderRepo).Once()
	matchDeliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	matchRiderRepo.On("GetAvailableInDistrict", mock.Anything, "Dhaka", "Dhaka").
		Return([]*rider.Rider{candidate}, nil).Once()
	matchDeliveryRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	matchRiderRepo.On("Update", mock.Anything, candidate).Return(nil).Once()
	matchUoW.On("Commit", ctx).Return(nil).Once()
	matchUoW.On("Rollback", ctx).Return(nil).Once()
	matchFactory := new(MockUoWFactory)
	matchFactory.On("Create").Return(matchUoW).Once()

	h := newDispatchHandler(listFactory, matchFactory)
	err := h.Handle(ctx, commands.NewDispatchDeliveriesCommand())
	require.NoError(t, err)
	require.NotNil(t, aggregate.RiderID())
	require.False(t, candidate.IsAvailable())
	listUoW.AssertExpectations(t)
	matchUoW.AssertExpectations(t)
	matchDeliveryRepo.AssertExpectations(t)
	matchRiderRepo.AssertExpectations(t)
}

func TestDispatchDeliveriesCommandHandler_Handle_NoCandidateKeepsSweepGoing(t *testing.T) {
	ctx := t.Context()
	aggregate := testDeliveryInStatus(t, delivery.StatusPaid, nil)

	listRepo := new(MockDeliveryRepository)
	listRepo.On("GetAllUnassigned", mock.Anything).
		Return([]*delivery.Delivery{aggregate}, nil).Once()
	listUoW := new(MockUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("DeliveryRepository").Return(listRepo).Once()
	listUoW.On("Commit", ctx).Return(nil).Once()
	listUoW.On("Rollback", ctx).Return(nil).Once()
	listFactory := new(MockDeliveryUoWFactory)
	listFactory.On("Create").Return(listUoW).Once()

	matchDeliveryRepo := new(MockDeliveryRepository)
	matchRiderRepo := new(MockRiderRepository)
	matchUoW := new(MockUoW)
	matchUoW.On("Begin", ctx).Return(nil).Once()
	matchUoW.On("DeliveryRepository").Return(matchDeliveryRepo).Once()
	matchUoW.On("RiderRepository").Return(matchRiderRepo).Once()
	matchDeliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	matchRiderRepo.On("GetAvailableInDistrict", mock.Anything, "Dhaka", "Dhaka").
		Return([]*rider.Rider{}, nil).Once()
	matchUoW.On("Rollback", ctx).Return(nil).Once()
	matchFactory := new(MockUoWFactory)
	matchFactory.On("Create").Return(matchUoW).Once()

	h := newDispatchHandler(listFactory, matchFactory)
	err := h.Handle(ctx, commands.NewDispatchDeliveriesCommand())
	require.NoError(t, err)
	require.Nil(t, aggregate.RiderID())
	matchDeliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDispatchDeliveriesCommandHandler_Handle_EmptyPool(t *testing.T) {
	ctx := t.Context()

	listRepo := new(MockDeliveryRepository)
	listRepo.On("GetAllUnassigned", mock.Anything).
		Return([]*delivery.Delivery{}, nil).Once()
	listUoW := new(MockUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("DeliveryRepository").Return(listRepo).Once()
	listUoW.On("Commit", ctx).Return(nil).Once()
	listUoW.On("Rollback", ctx).Return(nil).Once()
	listFactory := new(MockDeliveryUoWFactory)
	listFactory.On("Create").Return(listUoW).Once()

	matchFactory := new(MockUoWFactory)

	h := newDispatchHandler(listFactory, matchFactory)
	err := h.Handle(ctx, commands.NewDispatchDeliveriesCommand())
	require.NoError(t, err)
	matchFactory.AssertNotCalled(t, "Create")
}

func TestDispatchDeliveriesCommandHandler_Handle_ListFailure(t *testing.T) {
	ctx := t.Context()
	listErr := errors.New("connection reset")

	listRepo := new(MockDeliveryRepository)
	listRepo.On("GetAllUnassigned", mock.Anything).Return(nil, listErr).Once()
	listUoW := new(MockUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("DeliveryRepository").Return(listRepo).Once()
	listUoW.On("Rollback", ctx).Return(nil).Once()
	listFactory := new(MockDeliveryUoWFactory)
	listFactory.On("Create").Return(listUoW).Once()

	h := newDispatchHandler(listFactory, new(MockUoWFactory))
	err := h.Handle(ctx, commands.NewDispatchDeliveriesCommand())
	require.ErrorIs(t, err, listErr)
}

func TestDispatchDeliveriesCommandHandler_Handle_InvalidCommand(t *testing.T) {
	h := newDispatchHandler(new(MockDeliveryUoWFactory), new(MockUoWFactory))
	err := h.Handle(t.Context(), commands.DispatchDeliveriesCommand{})
	require.ErrorIs(t, err, commands.ErrDispatchDeliveriesCommandIsNotConstructed)
}
