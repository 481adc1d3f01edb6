package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/errs"
	"github.com/NecoOcean/sky-take-out/repository"
)

type CategoryService struct {
	DB          *gorm.DB
	Repo        *repository.CategoryRepository
	DishRepo    *repository.DishRepository
	SetmealRepo *repository.SetmealRepository
	Log         *zap.Logger
}

func NewCategoryService(db *gorm.DB, cr *repository.CategoryRepository, dr *repository.DishRepository, sr *repository.SetmealRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{DB: db, Repo: cr, DishRepo: dr, SetmealRepo: sr, Log: log}
}

type CategoryIn struct {
	Kind int    `json:"kind" binding:"required,oneof=1 2"`
	Name string `json:"name" binding:"required"`
	Sort int    `json:"sort" binding:"min=0"`
}

func (s *CategoryService) Create(ctx context.Context, in *CategoryIn) (*entity.Category, error) {
	cat := &entity.Category{Kind: in.Kind, Name: in.Name, Sort: in.Sort, Status: entity.StatusOnSale}
	if err := s.Repo.Create(ctx, cat); err != nil {
		return nil, storeErr(err)
	}
	s.Log.Info("category created", zap.Uint("id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, in *CategoryIn) error {
	cat, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "category not found")
	}
	cat.Name = in.Name
	cat.Sort = in.Sort
	return storeErr(s.Repo.Update(ctx, cat))
}

// Delete vetoes the removal of a category that any dish or setmeal still
// references, reporting every applicable reason at once.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "category not found")
	}

	dishes, err := s.DishRepo.CountByCategory(ctx, id)
	if err != nil {
		return storeErr(err)
	}
	setmeals, err := s.SetmealRepo.CountByCategory(ctx, id)
	if err != nil {
		return storeErr(err)
	}
	switch {
	case dishes > 0 && setmeals > 0:
		return errs.PreconditionFailed("category is referenced by dishes and setmeals")
	case dishes > 0:
		return errs.PreconditionFailed("category is referenced by dishes")
	case setmeals > 0:
		return errs.PreconditionFailed("category is referenced by setmeals")
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	s.Log.Info("category deleted", zap.Uint("id", id))
	return nil
}

func (s *CategoryService) SetStatus(ctx context.Context, id uint, status int) error {
	if status != entity.StatusOnSale && status != entity.StatusOffSale {
		return errs.InvalidArgument("status must be 0 or 1")
	}
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "category not found")
	}
	return storeErr(s.Repo.UpdateStatus(ctx, id, status, actorOf(ctx)))
}

func (s *CategoryService) ListByKind(ctx context.Context, kind int) ([]entity.Category, error) {
	cats, err := s.Repo.ListByKind(ctx, kind)
	return cats, storeErr(err)
}

func (s *CategoryService) Page(ctx context.Context, q repository.CategoryQuery) (*PageResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	cats, total, err := s.Repo.Page(ctx, q)
	if err != nil {
		return nil, storeErr(err)
	}
	return &PageResult{Total: total, Records: cats}, nil
}
