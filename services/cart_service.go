package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/errs"
	"github.com/NecoOcean/sky-take-out/repository"
)

type CartService struct {
	DB          *gorm.DB
	Repo        *repository.CartRepository
	DishRepo    *repository.DishRepository
	SetmealRepo *repository.SetmealRepository
	Log         *zap.Logger
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, dr *repository.DishRepository, sr *repository.SetmealRepository, log *zap.Logger) *CartService {
	return &CartService{DB: db, Repo: cr, DishRepo: dr, SetmealRepo: sr, Log: log}
}

// CartItemIn addresses one product+flavor combination. Exactly one of
// DishID/SetmealID must be set; Flavor only applies to dishes.
type CartItemIn struct {
	DishID    uint   `json:"dishId"`
	SetmealID uint   `json:"setmealId"`
	Flavor    string `json:"flavor"`
}

func (in *CartItemIn) validate() error {
	if (in.DishID == 0) == (in.SetmealID == 0) {
		return errs.InvalidArgument("exactly one of dishId and setmealId is required")
	}
	if in.SetmealID != 0 {
		in.Flavor = ""
	}
	return nil
}

// Add merges into an existing line for the same (user, product, flavor) key
// or inserts a new line with quantity 1 and the product's current name,
// image and price. Later catalog edits do not touch the captured price.
func (s *CartService) Add(ctx context.Context, userID uint, in *CartItemIn) error {
	if err := in.validate(); err != nil {
		return err
	}
	fresh := &entity.ShoppingCart{
		UserID:    userID,
		DishID:    in.DishID,
		SetmealID: in.SetmealID,
		Flavor:    in.Flavor,
		Number:    1,
	}
	if in.DishID != 0 {
		dish, err := s.DishRepo.FindByID(ctx, in.DishID)
		if err != nil {
			return notFoundOr(err, "dish not found")
		}
		fresh.Name, fresh.Image, fresh.Amount = dish.Name, dish.Image, dish.Price
	} else {
		sm, err := s.SetmealRepo.FindByID(ctx, in.SetmealID)
		if err != nil {
			return notFoundOr(err, "setmeal not found")
		}
		fresh.Name, fresh.Image, fresh.Amount = sm.Name, sm.Image, sm.Price
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		line, err := s.Repo.FindLine(tx, userID, in.DishID, in.SetmealID, in.Flavor)
		if err != nil {
			return err
		}
		if line != nil {
			return s.Repo.UpdateNumber(tx, line.ID, line.Number+1)
		}
		return s.Repo.Create(tx, fresh)
	})
	return storeErr(err)
}

// Subtract decrements the matching line, deleting it at quantity 1. A miss
// is a no-op, never an error.
func (s *CartService) Subtract(ctx context.Context, userID uint, in *CartItemIn) error {
	if err := in.validate(); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		line, err := s.Repo.FindLine(tx, userID, in.DishID, in.SetmealID, in.Flavor)
		if err != nil {
			return err
		}
		if line == nil {
			return nil
		}
		if line.Number <= 1 {
			return s.Repo.DeleteByID(tx, line.ID)
		}
		return s.Repo.UpdateNumber(tx, line.ID, line.Number-1)
	})
	return storeErr(err)
}

func (s *CartService) List(ctx context.Context, userID uint) ([]entity.ShoppingCart, error) {
	lines, err := s.Repo.ListByUser(ctx, userID)
	return lines, storeErr(err)
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Repo.ClearByUser(tx, userID)
	})
	return storeErr(err)
}
