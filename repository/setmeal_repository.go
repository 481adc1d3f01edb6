package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
)

type SetmealRepository struct{ DB *gorm.DB }

func NewSetmealRepository(db *gorm.DB) *SetmealRepository { return &SetmealRepository{DB: db} }

type SetmealQuery struct {
	Name       string
	CategoryID *uint
	Status     *int
	Page       int
	PageSize   int
}

func (r *SetmealRepository) FindByID(ctx context.Context, id uint) (*entity.Setmeal, error) {
	var sm entity.Setmeal
	if err := r.DB.WithContext(ctx).First(&sm, id).Error; err != nil {
		return nil, err
	}
	return &sm, nil
}

func (r *SetmealRepository) FindByIDWithDishes(ctx context.Context, id uint) (*entity.Setmeal, error) {
	var sm entity.Setmeal
	if err := r.DB.WithContext(ctx).Preload("SetmealDishes").First(&sm, id).Error; err != nil {
		return nil, err
	}
	return &sm, nil
}

func (r *SetmealRepository) Create(tx *gorm.DB, sm *entity.Setmeal) error {
	return tx.Create(sm).Error
}

func (r *SetmealRepository) Update(tx *gorm.DB, sm *entity.Setmeal) error {
	return tx.Model(sm).
		Select("category_id", "name", "price", "image", "description", "updated_by").
		Updates(sm).Error
}

func (r *SetmealRepository) UpdateStatus(tx *gorm.DB, id uint, status int, updatedBy uint) error {
	return tx.Model(&entity.Setmeal{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_by": updatedBy}).Error
}

// DisableByIDs forces OFF_SALE on every listed setmeal. Used by the
// dish-disable cascade, inside that cascade's transaction.
func (r *SetmealRepository) DisableByIDs(tx *gorm.DB, ids []uint, updatedBy uint) error {
	return tx.Model(&entity.Setmeal{}).
		Where("id IN ?", ids).
		Updates(map[string]any{"status": entity.StatusOffSale, "updated_by": updatedBy}).Error
}

func (r *SetmealRepository) DeleteByIDs(tx *gorm.DB, ids []uint) error {
	return tx.Where("id IN ?", ids).Delete(&entity.Setmeal{}).Error
}

// SetmealIDsByDishIDs returns the ids of setmeals containing any of the
// given dishes. Takes a handle so it can run inside the cascade transaction.
func (r *SetmealRepository) SetmealIDsByDishIDs(tx *gorm.DB, dishIDs []uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&entity.SetmealDish{}).
		Distinct("setmeal_id").
		Where("dish_id IN ?", dishIDs).
		Pluck("setmeal_id", &ids).Error
	return ids, err
}

func (r *SetmealRepository) ReplaceMemberships(tx *gorm.DB, setmealID uint, rows []entity.SetmealDish) error {
	if err := tx.Where("setmeal_id = ?", setmealID).Delete(&entity.SetmealDish{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].ID = 0
		rows[i].SetmealID = setmealID
	}
	return tx.Create(&rows).Error
}

func (r *SetmealRepository) DeleteMembershipsBySetmealIDs(tx *gorm.DB, setmealIDs []uint) error {
	return tx.Where("setmeal_id IN ?", setmealIDs).Delete(&entity.SetmealDish{}).Error
}

func (r *SetmealRepository) MembershipsBySetmealID(ctx context.Context, setmealID uint) ([]entity.SetmealDish, error) {
	var rows []entity.SetmealDish
	err := r.DB.WithContext(ctx).Where("setmeal_id = ?", setmealID).Find(&rows).Error
	return rows, err
}

func (r *SetmealRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.Setmeal{}).
		Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}

func (r *SetmealRepository) CountOnSaleByIDs(tx *gorm.DB, ids []uint) (int64, error) {
	var n int64
	err := tx.Model(&entity.Setmeal{}).
		Where("id IN ? AND status = ?", ids, entity.StatusOnSale).Count(&n).Error
	return n, err
}

func (r *SetmealRepository) ListOnSaleByCategory(ctx context.Context, categoryID uint) ([]entity.Setmeal, error) {
	var sms []entity.Setmeal
	err := r.DB.WithContext(ctx).
		Where("category_id = ? AND status = ?", categoryID, entity.StatusOnSale).
		Find(&sms).Error
	return sms, err
}

func (r *SetmealRepository) Page(ctx context.Context, q SetmealQuery) ([]entity.Setmeal, int64, error) {
	tx := r.DB.WithContext(ctx).Model(&entity.Setmeal{})
	if q.Name != "" {
		tx = tx.Where("name LIKE ?", "%"+q.Name+"%")
	}
	if q.CategoryID != nil {
		tx = tx.Where("category_id = ?", *q.CategoryID)
	}
	if q.Status != nil {
		tx = tx.Where("status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var sms []entity.Setmeal
	err := tx.Preload("Category").Order("updated_at desc").
		Offset((q.Page - 1) * q.PageSize).Limit(q.PageSize).
		Find(&sms).Error
	return sms, total, err
}
