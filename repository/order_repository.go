package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// Create inserts the order row together with its detail rows.
func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).Preload("Details").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.WithContext(ctx).Preload("Details").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status int, updatedBy uint) error {
	return r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_by": updatedBy}).Error
}

func (r *OrderRepository) Page(ctx context.Context, status *int, page, pageSize int) ([]entity.Order, int64, error) {
	tx := r.DB.WithContext(ctx).Model(&entity.Order{})
	if status != nil {
		tx = tx.Where("status = ?", *status)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []entity.Order
	err := tx.Preload("Details").Order("created_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&orders).Error
	return orders, total, err
}
