package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/errs"
	"github.com/NecoOcean/sky-take-out/repository"
)

type SetmealService struct {
	DB           *gorm.DB
	Repo         *repository.SetmealRepository
	DishRepo     *repository.DishRepository
	CategoryRepo *repository.CategoryRepository
	Log          *zap.Logger
}

func NewSetmealService(db *gorm.DB, sr *repository.SetmealRepository, dr *repository.DishRepository, cr *repository.CategoryRepository, log *zap.Logger) *SetmealService {
	return &SetmealService{DB: db, Repo: sr, DishRepo: dr, CategoryRepo: cr, Log: log}
}

type SetmealDishIn struct {
	DishID uint `json:"dishId" binding:"required"`
	Copies int  `json:"copies" binding:"min=1"`
}

type SetmealIn struct {
	CategoryID  uint            `json:"categoryId" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Price       int64           `json:"price" binding:"required,gt=0"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Dishes      []SetmealDishIn `json:"dishes" binding:"required,min=1,dive"`
}

func (s *SetmealService) checkCategory(ctx context.Context, id uint) error {
	cat, err := s.CategoryRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "category not found")
	}
	if cat.Kind != entity.CategoryKindSetmeal {
		return errs.InvalidArgument("category is not a setmeal category")
	}
	return nil
}

// memberRows resolves each member dish and captures its name and price at
// composition time.
func (s *SetmealService) memberRows(ctx context.Context, in []SetmealDishIn) ([]entity.SetmealDish, error) {
	rows := make([]entity.SetmealDish, 0, len(in))
	for _, m := range in {
		dish, err := s.DishRepo.FindByID(ctx, m.DishID)
		if err != nil {
			return nil, notFoundOr(err, "member dish not found")
		}
		copies := m.Copies
		if copies < 1 {
			copies = 1
		}
		rows = append(rows, entity.SetmealDish{
			DishID: dish.ID,
			Name:   dish.Name,
			Price:  dish.Price,
			Copies: copies,
		})
	}
	return rows, nil
}

// Create inserts the setmeal and its membership rows in one transaction.
// New setmeals start off sale.
func (s *SetmealService) Create(ctx context.Context, in *SetmealIn) (*entity.Setmeal, error) {
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	rows, err := s.memberRows(ctx, in.Dishes)
	if err != nil {
		return nil, err
	}
	sm := &entity.Setmeal{
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Price:         in.Price,
		Image:         in.Image,
		Description:   in.Description,
		Status:        entity.StatusOffSale,
		SetmealDishes: rows,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, sm)
	})
	if err != nil {
		return nil, storeErr(err)
	}
	s.Log.Info("setmeal created", zap.Uint("id", sm.ID), zap.String("name", sm.Name))
	return sm, nil
}

// Update rewrites the setmeal row and replaces its membership rows, in one
// transaction.
func (s *SetmealService) Update(ctx context.Context, id uint, in *SetmealIn) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "setmeal not found")
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return err
	}
	rows, err := s.memberRows(ctx, in.Dishes)
	if err != nil {
		return err
	}
	sm := &entity.Setmeal{
		Model:       entity.Model{ID: id},
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Price:       in.Price,
		Image:       in.Image,
		Description: in.Description,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, sm); err != nil {
			return err
		}
		return s.Repo.ReplaceMemberships(tx, id, rows)
	})
	return storeErr(err)
}

// DeleteBatch removes setmeals and their membership rows. The whole batch is
// vetoed if any setmeal is still on sale; an empty batch is a no-op.
func (s *SetmealService) DeleteBatch(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		onSale, err := s.Repo.CountOnSaleByIDs(tx, ids)
		if err != nil {
			return err
		}
		if onSale > 0 {
			return errs.PreconditionFailed("on-sale setmeal cannot be deleted")
		}
		if err := s.Repo.DeleteMembershipsBySetmealIDs(tx, ids); err != nil {
			return err
		}
		return s.Repo.DeleteByIDs(tx, ids)
	})
	if err != nil {
		return storeErr(err)
	}
	s.Log.Info("setmeals deleted", zap.Uints("ids", ids))
	return nil
}

// SetSaleState flips the setmeal sale state. Enabling is refused while any
// member dish is off sale; disabling is unconditional. Writing the current
// state again is a no-op.
func (s *SetmealService) SetSaleState(ctx context.Context, id uint, status int) error {
	if status != entity.StatusOnSale && status != entity.StatusOffSale {
		return errs.InvalidArgument("status must be 0 or 1")
	}
	sm, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "setmeal not found")
	}
	if sm.Status == status {
		return nil
	}

	actor := actorOf(ctx)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if status == entity.StatusOnSale {
			offSale, err := s.DishRepo.CountOffSaleMembers(tx, id)
			if err != nil {
				return err
			}
			if offSale > 0 {
				return errs.PreconditionFailed("setmeal contains an off-sale dish")
			}
		}
		return s.Repo.UpdateStatus(tx, id, status, actor)
	})
	if err != nil {
		return storeErr(err)
	}
	s.Log.Info("setmeal sale state changed", zap.Uint("id", id), zap.Int("status", status))
	return nil
}

func (s *SetmealService) GetWithDishes(ctx context.Context, id uint) (*entity.Setmeal, error) {
	sm, err := s.Repo.FindByIDWithDishes(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "setmeal not found")
	}
	return sm, nil
}

func (s *SetmealService) ListOnSaleByCategory(ctx context.Context, categoryID uint) ([]entity.Setmeal, error) {
	sms, err := s.Repo.ListOnSaleByCategory(ctx, categoryID)
	return sms, storeErr(err)
}

// DishesOf lists the membership rows of one setmeal for the customer detail
// view.
func (s *SetmealService) DishesOf(ctx context.Context, id uint) ([]entity.SetmealDish, error) {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return nil, notFoundOr(err, "setmeal not found")
	}
	rows, err := s.Repo.MembershipsBySetmealID(ctx, id)
	return rows, storeErr(err)
}

func (s *SetmealService) Page(ctx context.Context, q repository.SetmealQuery) (*PageResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	sms, total, err := s.Repo.Page(ctx, q)
	if err != nil {
		return nil, storeErr(err)
	}
	return &PageResult{Total: total, Records: sms}, nil
}
