package commands_test

import (
	"testing"
	"time"

	"dinepos/internal/core/application/usecases/commands"
	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/order"
	"dinepos/internal/pkg/errs"
	"dinepos/internal/pkg/locks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkItemsSentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewID()
	cmd, _ := commands.NewMarkItemsSentCommand(id)

	existing, err := order.NewTableOrder(id, "Table 1",
		[]order.LineItem{mustLineItem(t, "espresso", 2), mustLineItem(t, "latte", 1)},
		time.Now().UTC())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockDiningUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTableID", mock.Anything, id).Return(existing, nil).Once(),
		orderRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDiningUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkItemsSentCommandHandler(factory, locks.NewKeyedMutex())
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	for _, item := range got.Items() {
		assert.True(t, item.SentToKitchen())
	}
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkItemsSentCommandHandler_Handle_NoActiveOrder(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewID()
	cmd, _ := commands.NewMarkItemsSentCommand(id)

	orderRepo := new(MockOrderRepository)
	uow := new(MockDiningUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTableID", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDiningUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkItemsSentCommandHandler(factory, locks.NewKeyedMutex())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
