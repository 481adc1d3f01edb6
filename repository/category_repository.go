package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

// CategoryQuery carries the optional admin list filters. Nil/zero fields are
// not applied.
type CategoryQuery struct {
	Name     string
	Kind     *int
	Status   *int
	Page     int
	PageSize int
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(ctx context.Context, cat *entity.Category) error {
	return r.DB.WithContext(ctx).Create(cat).Error
}

func (r *CategoryRepository) Update(ctx context.Context, cat *entity.Category) error {
	return r.DB.WithContext(ctx).Save(cat).Error
}

func (r *CategoryRepository) UpdateStatus(ctx context.Context, id uint, status int, updatedBy uint) error {
	return r.DB.WithContext(ctx).Model(&entity.Category{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_by": updatedBy}).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&entity.Category{}, id).Error
}

func (r *CategoryRepository) ListByKind(ctx context.Context, kind int) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.WithContext(ctx).
		Where("kind = ? AND status = ?", kind, entity.StatusOnSale).
		Order("sort asc").Order("updated_at desc").
		Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) Page(ctx context.Context, q CategoryQuery) ([]entity.Category, int64, error) {
	tx := r.DB.WithContext(ctx).Model(&entity.Category{})
	if q.Name != "" {
		tx = tx.Where("name LIKE ?", "%"+q.Name+"%")
	}
	if q.Kind != nil {
		tx = tx.Where("kind = ?", *q.Kind)
	}
	if q.Status != nil {
		tx = tx.Where("status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var cats []entity.Category
	err := tx.Order("sort asc").Order("updated_at desc").
		Offset((q.Page - 1) * q.PageSize).Limit(q.PageSize).
		Find(&cats).Error
	return cats, total, err
}
