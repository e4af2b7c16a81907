package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemStatusCommand_RejectsNonCookTargets(t *testing.T) {
	_, err := commands.NewUpdateItemStatusCommand(kernel.NewUUID(), kernel.NewUUID(), order.ItemServed)
	require.Error(t, err)

	_, err = commands.NewUpdateItemStatusCommand(kernel.NewUUID(), kernel.NewUUID(), order.ItemCancelled)
	require.Error(t, err)
}

func TestUpdateItemStatusCommandHandler_Handle_Start(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, "Burger")
	testOrder := newTestOrder(t, item)
	fireTestOrder(t, testOrder)

	cmd, err := commands.NewUpdateItemStatusCommand(testOrder.ID(), item.ID(), order.ItemPreparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		publisher.On("PublishItemStatusChanged", ctx, mock.AnythingOfType("ports.ItemStatusChangedEvent")).
			Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateItemStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ItemPreparing, item.Status())
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateItemStatusCommandHandler_Handle_ReadyFlipsOrder(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, "Burger")
	testOrder := newTestOrder(t, item)
	fireTestOrder(t, testOrder)

	cmd, err := commands.NewUpdateItemStatusCommand(testOrder.ID(), item.ID(), order.ItemReady)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		publisher.On("PublishItemStatusChanged", ctx, mock.AnythingOfType("ports.ItemStatusChangedEvent")).
			Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateItemStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	// The only item going ready makes the whole order ready
	require.NoError(t, err)
	assert.Equal(t, order.ItemReady, item.Status())
	assert.Equal(t, order.Ready, testOrder.Status())
}
