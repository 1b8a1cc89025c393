package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/event"
	"orders/internal/core/domain/model/identity"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateHandler(repo *MockOrderRepository, users *MockUserDirectory, events *MockEventLog) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(repo, users, events, fixedClock, discardLogger)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(identity.New("u-1", nil), []commands.ItemInput{
		{Product: "book", Quantity: 2, Price: 10.5},
		{Product: "pen", Quantity: 1, Price: 1.25},
	})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	users := new(MockUserDirectory)
	events := new(MockEventLog)
	mock.InOrder(
		users.On("Verify", ctx, "u-1").Return(nil).Once(),
		repo.On("Put", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		events.On("Emit", ctx, event.TypeOrderCreated, mock.AnythingOfType("event.OrderCreated")).Once(),
	)

	created, err := newCreateHandler(repo, users, events).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "u-1", created.UserID())
	assert.Equal(t, order.Created, created.Status())
	assert.True(t, decimal.RequireFromString("22.25").Equal(created.Total()))
	assert.Equal(t, now, created.CreatedAt())

	payload, ok := events.Calls[0].Arguments.Get(2).(event.OrderCreated)
	require.True(t, ok)
	assert.Equal(t, created.ID().String(), payload.OrderID)
	assert.InDelta(t, 22.25, payload.Total, 1e-9)
	assert.Len(t, payload.Items, 2)

	repo.AssertExpectations(t)
	users.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	repo := new(MockOrderRepository)
	users := new(MockUserDirectory)
	events := new(MockEventLog)

	_, err := newCreateHandler(repo, users, events).Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	users.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_UnknownUser(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(identity.New("ghost", nil), []commands.ItemInput{{Product: "x", Quantity: 1, Price: 1}})

	repo := new(MockOrderRepository)
	users := new(MockUserDirectory)
	events := new(MockEventLog)
	users.On("Verify", ctx, "ghost").Return(errs.NewObjectNotFoundError("user", "ghost")).Once()

	_, err := newCreateHandler(repo, users, events).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, errs.CodeUserNotFound, errs.Classify(err).Code)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	events.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_UserCheckPrecedesItemValidation(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(identity.New("u-1", nil), nil)

	repo := new(MockOrderRepository)
	users := new(MockUserDirectory)
	events := new(MockEventLog)
	users.On("Verify", ctx, "u-1").Return(errs.NewUpstreamErrorWithCause("users", errors.New("timeout"))).Once()

	_, err := newCreateHandler(repo, users, events).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUpstream)
	assert.Equal(t, errs.CodeUserNotFound, errs.Classify(err).Code)
}

func TestCreateOrderCommandHandler_Handle_InvalidItems(t *testing.T) {
	testCases := []struct {
		name  string
		items []commands.ItemInput
		param string
	}{
		{"no items", nil, "items"},
		{"empty product", []commands.ItemInput{{Product: "", Quantity: 1, Price: 1}}, "product"},
		{"zero quantity", []commands.ItemInput{{Product: "a", Quantity: 0, Price: 1}}, "quantity"},
		{"fractional quantity", []commands.ItemInput{{Product: "a", Quantity: 1.5, Price: 1}}, "quantity"},
		{"negative price", []commands.ItemInput{{Product: "a", Quantity: 1, Price: -3}}, "price"},
		{"second item invalid", []commands.ItemInput{
			{Product: "a", Quantity: 1, Price: 1},
			{Product: "b", Quantity: 1, Price: 0},
		}, "items[1]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewCreateOrderCommand(identity.New("u-1", nil), tc.items)

			repo := new(MockOrderRepository)
			users := new(MockUserDirectory)
			events := new(MockEventLog)
			users.On("Verify", ctx, "u-1").Return(nil).Once()

			_, err := newCreateHandler(repo, users, events).Handle(ctx, cmd)

			require.Error(t, err)
			assert.Equal(t, errs.KindValidation, errs.Classify(err).Kind)
			assert.Contains(t, err.Error(), tc.param)
			repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateOrderCommandHandler_Handle_PutError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(identity.New("u-1", nil), []commands.ItemInput{{Product: "x", Quantity: 1, Price: 1}})

	repo := new(MockOrderRepository)
	users := new(MockUserDirectory)
	events := new(MockEventLog)
	users.On("Verify", ctx, "u-1").Return(nil).Once()
	repo.On("Put", ctx, mock.Anything).Return(errors.New("put error")).Once()

	_, err := newCreateHandler(repo, users, events).Handle(ctx, cmd)

	require.EqualError(t, err, "put error")
	events.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything)
}
