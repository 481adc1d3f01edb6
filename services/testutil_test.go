package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/audit"
	"github.com/NecoOcean/sky-take-out/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entity.Employee{}, &entity.User{},
		&entity.Category{},
		&entity.Dish{}, &entity.DishFlavor{},
		&entity.Setmeal{}, &entity.SetmealDish{},
		&entity.ShoppingCart{},
		&entity.Order{}, &entity.OrderDetail{},
	))
	return db
}

type testEnv struct {
	db         *gorm.DB
	categories *CategoryService
	dishes     *DishService
	setmeals   *SetmealService
	cart       *CartService
	orders     *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	log := zap.NewNop()
	categoryRepo := repository.NewCategoryRepository(db)
	dishRepo := repository.NewDishRepository(db)
	setmealRepo := repository.NewSetmealRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	return &testEnv{
		db:         db,
		categories: NewCategoryService(db, categoryRepo, dishRepo, setmealRepo, log),
		dishes:     NewDishService(db, dishRepo, categoryRepo, setmealRepo, log),
		setmeals:   NewSetmealService(db, setmealRepo, dishRepo, categoryRepo, log),
		cart:       NewCartService(db, cartRepo, dishRepo, setmealRepo, log),
		orders:     NewOrderService(db, orderRepo, cartRepo, nil, log),
	}
}

func actorCtx(id uint) context.Context {
	return audit.WithActor(context.Background(), id)
}

func (e *testEnv) seedCategory(t *testing.T, kind int, name string) *entity.Category {
	t.Helper()
	cat := &entity.Category{Kind: kind, Name: name, Status: entity.StatusOnSale}
	require.NoError(t, e.db.Create(cat).Error)
	return cat
}

func (e *testEnv) seedDish(t *testing.T, categoryID uint, name string, status int) *entity.Dish {
	t.Helper()
	dish := &entity.Dish{CategoryID: categoryID, Name: name, Price: 1500, Status: status}
	require.NoError(t, e.db.Create(dish).Error)
	return dish
}

func (e *testEnv) seedSetmeal(t *testing.T, categoryID uint, name string, status int, dishIDs ...uint) *entity.Setmeal {
	t.Helper()
	sm := &entity.Setmeal{CategoryID: categoryID, Name: name, Price: 4200, Status: status}
	for _, id := range dishIDs {
		sm.SetmealDishes = append(sm.SetmealDishes, entity.SetmealDish{DishID: id, Copies: 1})
	}
	require.NoError(t, e.db.Create(sm).Error)
	return sm
}

func (e *testEnv) dishStatus(t *testing.T, id uint) int {
	t.Helper()
	var dish entity.Dish
	require.NoError(t, e.db.First(&dish, id).Error)
	return dish.Status
}

func (e *testEnv) setmealStatus(t *testing.T, id uint) int {
	t.Helper()
	var sm entity.Setmeal
	require.NoError(t, e.db.First(&sm, id).Error)
	return sm.Status
}
