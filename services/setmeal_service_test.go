package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/errs"
)

func TestSetmealEnableRequiresAllMembersOnSale(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	smCat := e.seedCategory(t, entity.CategoryKindSetmeal, "Combos")

	onSale := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)
	offSale := e.seedDish(t, dishCat.ID, "Fried Rice", entity.StatusOffSale)
	sm := e.seedSetmeal(t, smCat.ID, "Combo A", entity.StatusOffSale, onSale.ID, offSale.ID)

	err := e.setmeals.SetSaleState(ctx, sm.ID, entity.StatusOnSale)
	assert.True(t, errs.IsPreconditionFailed(err))
	assert.Equal(t, entity.StatusOffSale, e.setmealStatus(t, sm.ID))

	// once every member is on sale, enabling succeeds
	require.NoError(t, e.dishes.SetSaleState(ctx, offSale.ID, entity.StatusOnSale))
	require.NoError(t, e.setmeals.SetSaleState(ctx, sm.ID, entity.StatusOnSale))
	assert.Equal(t, entity.StatusOnSale, e.setmealStatus(t, sm.ID))
}

// The full lifecycle: enable succeeds while the member is on sale, the
// member's disable cascades, and re-enabling the setmeal is then refused.
func TestSetmealEnableDisableLifecycle(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	smCat := e.seedCategory(t, entity.CategoryKindSetmeal, "Combos")

	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)
	sm := e.seedSetmeal(t, smCat.ID, "Combo A", entity.StatusOffSale, dish.ID)

	require.NoError(t, e.setmeals.SetSaleState(ctx, sm.ID, entity.StatusOnSale))
	assert.Equal(t, entity.StatusOnSale, e.setmealStatus(t, sm.ID))

	require.NoError(t, e.dishes.SetSaleState(ctx, dish.ID, entity.StatusOffSale))
	assert.Equal(t, entity.StatusOffSale, e.setmealStatus(t, sm.ID))

	err := e.setmeals.SetSaleState(ctx, sm.ID, entity.StatusOnSale)
	assert.True(t, errs.IsPreconditionFailed(err))
}

func TestSetmealDisableIsUnconditional(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	smCat := e.seedCategory(t, entity.CategoryKindSetmeal, "Combos")

	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)
	sm := e.seedSetmeal(t, smCat.ID, "Combo A", entity.StatusOnSale, dish.ID)

	require.NoError(t, e.setmeals.SetSaleState(ctx, sm.ID, entity.StatusOffSale))
	assert.Equal(t, entity.StatusOffSale, e.setmealStatus(t, sm.ID))

	err := e.setmeals.SetSaleState(ctx, 9999, entity.StatusOffSale)
	assert.True(t, errs.IsNotFound(err))
}

func TestSetmealDeleteBatchVetoesOnSale(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	smCat := e.seedCategory(t, entity.CategoryKindSetmeal, "Combos")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)

	onSale := e.seedSetmeal(t, smCat.ID, "Combo A", entity.StatusOnSale, dish.ID)
	offSale := e.seedSetmeal(t, smCat.ID, "Combo B", entity.StatusOffSale, dish.ID)

	err := e.setmeals.DeleteBatch(ctx, []uint{onSale.ID, offSale.ID})
	assert.True(t, errs.IsPreconditionFailed(err))

	var n int64
	require.NoError(t, e.db.Model(&entity.Setmeal{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestSetmealDeleteBatchRemovesMemberships(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	smCat := e.seedCategory(t, entity.CategoryKindSetmeal, "Combos")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)
	sm := e.seedSetmeal(t, smCat.ID, "Combo A", entity.StatusOffSale, dish.ID)

	require.NoError(t, e.setmeals.DeleteBatch(ctx, []uint{sm.ID}))

	var memberships, setmeals int64
	require.NoError(t, e.db.Model(&entity.SetmealDish{}).Count(&memberships).Error)
	require.NoError(t, e.db.Model(&entity.Setmeal{}).Count(&setmeals).Error)
	assert.Zero(t, memberships)
	assert.Zero(t, setmeals)

	// the dish is untouched and deletable again
	require.NoError(t, e.dishes.SetSaleState(ctx, dish.ID, entity.StatusOffSale))
	assert.NoError(t, e.dishes.DeleteBatch(ctx, []uint{dish.ID}))
}

func TestSetmealCreateCapturesMemberNameAndPrice(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	dishCat := e.seedCategory(t, entity.CategoryKindDish, "Mains")
	smCat := e.seedCategory(t, entity.CategoryKindSetmeal, "Combos")
	dish := e.seedDish(t, dishCat.ID, "Kung Pao Chicken", entity.StatusOnSale)

	sm, err := e.setmeals.Create(ctx, &SetmealIn{
		CategoryID: smCat.ID,
		Name:       "Combo A",
		Price:      4200,
		Dishes:     []SetmealDishIn{{DishID: dish.ID, Copies: 2}},
	})
	require.NoError(t, err)

	rows, err := e.setmeals.DishesOf(ctx, sm.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Kung Pao Chicken", rows[0].Name)
	assert.EqualValues(t, 1500, rows[0].Price)
	assert.Equal(t, 2, rows[0].Copies)

	// the snapshot survives a later dish edit
	require.NoError(t, e.db.Model(&entity.Dish{}).Where("id = ?", dish.ID).
		Update("price", 9900).Error)
	rows, err = e.setmeals.DishesOf(ctx, sm.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1500, rows[0].Price)
}

func TestSetmealCreateRejectsMissingMember(t *testing.T) {
	e := newTestEnv(t)
	smCat := e.seedCategory(t, entity.CategoryKindSetmeal, "Combos")

	_, err := e.setmeals.Create(context.Background(), &SetmealIn{
		CategoryID: smCat.ID,
		Name:       "Combo A",
		Price:      4200,
		Dishes:     []SetmealDishIn{{DishID: 12345}},
	})
	assert.True(t, errs.IsNotFound(err))
}
