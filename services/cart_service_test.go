package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/errs"
)

const customer = uint(1)

func TestCartAddMergesSameKey(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)

	in := &CartItemIn{DishID: dish.ID, Flavor: "spicy"}
	require.NoError(t, e.cart.Add(ctx, customer, in))
	require.NoError(t, e.cart.Add(ctx, customer, in))

	lines, err := e.cart.List(ctx, customer)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Number)
	assert.EqualValues(t, 1500, lines[0].Amount)
	assert.Equal(t, "Kung Pao Chicken", lines[0].Name)
}

func TestCartAddDistinguishesFlavors(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)

	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{DishID: dish.ID, Flavor: "spicy"}))
	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{DishID: dish.ID, Flavor: "mild"}))

	lines, err := e.cart.List(ctx, customer)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

// A dish line and a setmeal line must never merge, even when the two
// products happen to share an id.
func TestCartAddDoesNotMergeAcrossProductTypes(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	smCat := e.seedCategory(t, entity.CategoryKindSetmeal, "Combos")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)
	sm := e.seedSetmeal(t, smCat.ID, "Combo A", entity.StatusOnSale, dish.ID)

	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{SetmealID: sm.ID}))
	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{DishID: dish.ID, Flavor: "spicy"}))
	require.NoError(t, e.cart.Subtract(ctx, customer, &CartItemIn{SetmealID: sm.ID}))

	lines, err := e.cart.List(ctx, customer)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, dish.ID, lines[0].DishID)
	assert.Zero(t, lines[0].SetmealID)
	assert.Equal(t, 1, lines[0].Number)
}

func TestCartSubtractToZeroRemovesRow(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)

	in := &CartItemIn{DishID: dish.ID, Flavor: "spicy"}
	require.NoError(t, e.cart.Add(ctx, customer, in))
	require.NoError(t, e.cart.Subtract(ctx, customer, in))

	lines, err := e.cart.List(ctx, customer)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartSubtractDecrements(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)

	in := &CartItemIn{DishID: dish.ID}
	require.NoError(t, e.cart.Add(ctx, customer, in))
	require.NoError(t, e.cart.Add(ctx, customer, in))
	require.NoError(t, e.cart.Add(ctx, customer, in))
	require.NoError(t, e.cart.Subtract(ctx, customer, in))

	lines, err := e.cart.List(ctx, customer)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Number)
}

func TestCartSubtractMissIsNoop(t *testing.T) {
	e := newTestEnv(t)
	assert.NoError(t, e.cart.Subtract(context.Background(), customer, &CartItemIn{DishID: 42}))
}

func TestCartAddValidatesDiscriminator(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	err := e.cart.Add(ctx, customer, &CartItemIn{})
	assert.True(t, errs.IsInvalidArgument(err))

	err = e.cart.Add(ctx, customer, &CartItemIn{DishID: 1, SetmealID: 2})
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestCartAddUnknownProduct(t *testing.T) {
	e := newTestEnv(t)
	err := e.cart.Add(context.Background(), customer, &CartItemIn{DishID: 12345})
	assert.True(t, errs.IsNotFound(err))
}

func TestCartPriceIsSnapshotAtAddTime(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)

	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{DishID: dish.ID}))
	require.NoError(t, e.db.Model(&entity.Dish{}).Where("id = ?", dish.ID).
		Update("price", 9900).Error)
	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{DishID: dish.ID}))

	lines, err := e.cart.List(ctx, customer)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.EqualValues(t, 1500, lines[0].Amount)
}

func TestCartClearAndIsolationBetweenCustomers(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)

	other := uint(2)
	require.NoError(t, e.cart.Add(ctx, customer, &CartItemIn{DishID: dish.ID}))
	require.NoError(t, e.cart.Add(ctx, other, &CartItemIn{DishID: dish.ID}))

	require.NoError(t, e.cart.Clear(ctx, customer))

	mine, err := e.cart.List(ctx, customer)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := e.cart.List(ctx, other)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}
