package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/errs"
)

type captureNotifier struct {
	orderID uint
	number  string
	amount  int64
	calls   int
}

func (n *captureNotifier) NotifyNewOrder(orderID uint, number string, amount int64) {
	n.orderID, n.number, n.amount = orderID, number, amount
	n.calls++
}

func TestOrderSubmitClearsCart(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)

	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{DishID: dish.ID}))
	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{DishID: dish.ID}))

	order, err := e.orders.Submit(ctx, customer, &SubmitOrderIn{
		Address: "1 Main St", Phone: "5550100",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.EqualValues(t, 3000, order.Amount)
	require.Len(t, order.Details, 1)
	assert.Equal(t, 2, order.Details[0].Number)
	assert.Equal(t, "Kung Pao Chicken", order.Details[0].Name)

	lines, err := e.cart.List(ctx, customer)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestOrderSubmitEmptyCart(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.orders.Submit(context.Background(), customer, &SubmitOrderIn{
		Address: "1 Main St", Phone: "5550100",
	})
	assert.True(t, errs.IsPreconditionFailed(err))
}

func TestOrderSubmitNotifies(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	notifier := &captureNotifier{}
	e.orders.Notifier = notifier

	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)
	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{DishID: dish.ID}))

	order, err := e.orders.Submit(ctx, customer, &SubmitOrderIn{
		Address: "1 Main St", Phone: "5550100",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, order.ID, notifier.orderID)
	assert.Equal(t, order.Number, notifier.number)
	assert.EqualValues(t, 1500, notifier.amount)
}

func TestOrderStatusTransitions(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)
	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{DishID: dish.ID}))
	order, err := e.orders.Submit(ctx, customer, &SubmitOrderIn{Address: "1 Main St", Phone: "5550100"})
	require.NoError(t, err)

	// completing a pending order skips confirmation and is refused
	err = e.orders.SetStatus(ctx, order.ID, entity.OrderStatusCompleted)
	assert.True(t, errs.IsPreconditionFailed(err))

	require.NoError(t, e.orders.SetStatus(ctx, order.ID, entity.OrderStatusConfirmed))
	require.NoError(t, e.orders.SetStatus(ctx, order.ID, entity.OrderStatusCompleted))

	// completed orders cannot be cancelled
	err = e.orders.SetStatus(ctx, order.ID, entity.OrderStatusCancelled)
	assert.True(t, errs.IsPreconditionFailed(err))

	assert.True(t, errs.IsInvalidArgument(e.orders.SetStatus(ctx, order.ID, 42)))
	assert.True(t, errs.IsNotFound(e.orders.SetStatus(ctx, 9999, entity.OrderStatusConfirmed)))
}

func TestOrderListMine(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)

	other := uint(2)
	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{DishID: dish.ID}))
	_, err := e.orders.Submit(ctx, customer, &SubmitOrderIn{Address: "1 Main St", Phone: "5550100"})
	require.NoError(t, err)
	require.NoError(t, e.cart.Add(ctx, other, &CartItemIn{DishID: dish.ID}))
	_, err = e.orders.Submit(ctx, other, &SubmitOrderIn{Address: "2 Side St", Phone: "5550101"})
	require.NoError(t, err)

	mine, err := e.orders.ListMine(ctx, customer)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, customer, mine[0].UserID)
}
