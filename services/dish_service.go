package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/errs"
	"github.com/NecoOcean/sky-take-out/repository"
)

type DishService struct {
	DB           *gorm.DB
	Repo         *repository.DishRepository
	CategoryRepo *repository.CategoryRepository
	SetmealRepo  *repository.SetmealRepository
	Log          *zap.Logger
}

func NewDishService(db *gorm.DB, dr *repository.DishRepository, cr *repository.CategoryRepository, sr *repository.SetmealRepository, log *zap.Logger) *DishService {
	return &DishService{DB: db, Repo: dr, CategoryRepo: cr, SetmealRepo: sr, Log: log}
}

type FlavorIn struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

type DishIn struct {
	CategoryID  uint       `json:"categoryId" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Price       int64      `json:"price" binding:"required,gt=0"`
	Image       string     `json:"image"`
	Description string     `json:"description"`
	Flavors     []FlavorIn `json:"flavors"`
}

func (s *DishService) checkCategory(ctx context.Context, id uint) error {
	cat, err := s.CategoryRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "category not found")
	}
	if cat.Kind != entity.CategoryKindDish {
		return errs.InvalidArgument("category is not a dish category")
	}
	return nil
}

// Create inserts the dish and its flavors in one transaction. New dishes
// start off sale.
func (s *DishService) Create(ctx context.Context, in *DishIn) (*entity.Dish, error) {
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	dish := &entity.Dish{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Price:       in.Price,
		Image:       in.Image,
		Description: in.Description,
		Status:      entity.StatusOffSale,
		Flavors:     flavorRows(0, in.Flavors),
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, dish)
	})
	if err != nil {
		return nil, storeErr(err)
	}
	s.Log.Info("dish created", zap.Uint("id", dish.ID), zap.String("name", dish.Name))
	return dish, nil
}

// Update rewrites the dish row and replaces its flavors wholesale, in one
// transaction.
func (s *DishService) Update(ctx context.Context, id uint, in *DishIn) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "dish not found")
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return err
	}
	dish := &entity.Dish{
		Model:       entity.Model{ID: id},
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Price:       in.Price,
		Image:       in.Image,
		Description: in.Description,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, dish); err != nil {
			return err
		}
		return s.Repo.ReplaceFlavors(tx, id, flavorRows(id, in.Flavors))
	})
	return storeErr(err)
}

// DeleteBatch removes dishes and their flavors. The whole batch is vetoed if
// any dish is still on sale or referenced by a setmeal; an empty batch is a
// no-op.
func (s *DishService) DeleteBatch(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		onSale, err := s.Repo.CountOnSaleByIDs(tx, ids)
		if err != nil {
			return err
		}
		if onSale > 0 {
			return errs.PreconditionFailed("on-sale dish cannot be deleted")
		}
		setmealIDs, err := s.SetmealRepo.SetmealIDsByDishIDs(tx, ids)
		if err != nil {
			return err
		}
		if len(setmealIDs) > 0 {
			return errs.PreconditionFailed("dish is referenced by a setmeal")
		}
		if err := s.Repo.DeleteFlavorsByDishIDs(tx, ids); err != nil {
			return err
		}
		return s.Repo.DeleteByIDs(tx, ids)
	})
	if err != nil {
		return storeErr(err)
	}
	s.Log.Info("dishes deleted", zap.Uints("ids", ids))
	return nil
}

// SetSaleState flips the dish sale state. Taking a dish off sale forces
// every setmeal containing it off sale in the same transaction; putting it
// back on sale never re-enables those setmeals. Writing the current state
// again is a no-op.
func (s *DishService) SetSaleState(ctx context.Context, id uint, status int) error {
	if status != entity.StatusOnSale && status != entity.StatusOffSale {
		return errs.InvalidArgument("status must be 0 or 1")
	}
	dish, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "dish not found")
	}
	if dish.Status == status {
		return nil
	}

	actor := actorOf(ctx)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateStatus(tx, id, status, actor); err != nil {
			return err
		}
		if status != entity.StatusOffSale {
			return nil
		}
		setmealIDs, err := s.SetmealRepo.SetmealIDsByDishIDs(tx, []uint{id})
		if err != nil {
			return err
		}
		if len(setmealIDs) == 0 {
			return nil
		}
		return s.SetmealRepo.DisableByIDs(tx, setmealIDs, actor)
	})
	if err != nil {
		return storeErr(err)
	}
	s.Log.Info("dish sale state changed", zap.Uint("id", id), zap.Int("status", status))
	return nil
}

func (s *DishService) GetWithFlavors(ctx context.Context, id uint) (*entity.Dish, error) {
	dish, err := s.Repo.FindByIDWithFlavors(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "dish not found")
	}
	return dish, nil
}

// ListOnSaleByCategory backs the customer menu: on-sale dishes of one
// category, flavors included.
func (s *DishService) ListOnSaleByCategory(ctx context.Context, categoryID uint) ([]entity.Dish, error) {
	dishes, err := s.Repo.ListOnSaleByCategory(ctx, categoryID)
	return dishes, storeErr(err)
}

func (s *DishService) Page(ctx context.Context, q repository.DishQuery) (*PageResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	dishes, total, err := s.Repo.Page(ctx, q)
	if err != nil {
		return nil, storeErr(err)
	}
	return &PageResult{Total: total, Records: dishes}, nil
}

func flavorRows(dishID uint, in []FlavorIn) []entity.DishFlavor {
	rows := make([]entity.DishFlavor, 0, len(in))
	for _, f := range in {
		rows = append(rows, entity.DishFlavor{DishID: dishID, Name: f.Name, Value: f.Value})
	}
	return rows
}
