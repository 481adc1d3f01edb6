package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

type DishQuery struct {
	Name       string
	CategoryID *uint
	Status     *int
	Page       int
	PageSize   int
}

func (r *DishRepository) FindByID(ctx context.Context, id uint) (*entity.Dish, error) {
	var dish entity.Dish
	if err := r.DB.WithContext(ctx).First(&dish, id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) FindByIDWithFlavors(ctx context.Context, id uint) (*entity.Dish, error) {
	var dish entity.Dish
	if err := r.DB.WithContext(ctx).Preload("Flavors").First(&dish, id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&dishes).Error
	return dishes, err
}

// Create inserts the dish row; flavors attached to the struct are inserted
// with it.
func (r *DishRepository) Create(tx *gorm.DB, dish *entity.Dish) error {
	return tx.Create(dish).Error
}

func (r *DishRepository) Update(tx *gorm.DB, dish *entity.Dish) error {
	return tx.Model(dish).
		Select("category_id", "name", "price", "image", "description", "updated_by").
		Updates(dish).Error
}

func (r *DishRepository) UpdateStatus(tx *gorm.DB, id uint, status int, updatedBy uint) error {
	return tx.Model(&entity.Dish{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_by": updatedBy}).Error
}

// ReplaceFlavors deletes the dish's flavor rows and inserts the new set.
// Runs inside the caller's transaction.
func (r *DishRepository) ReplaceFlavors(tx *gorm.DB, dishID uint, flavors []entity.DishFlavor) error {
	if err := tx.Where("dish_id = ?", dishID).Delete(&entity.DishFlavor{}).Error; err != nil {
		return err
	}
	if len(flavors) == 0 {
		return nil
	}
	for i := range flavors {
		flavors[i].ID = 0
		flavors[i].DishID = dishID
	}
	return tx.Create(&flavors).Error
}

func (r *DishRepository) DeleteFlavorsByDishIDs(tx *gorm.DB, dishIDs []uint) error {
	return tx.Where("dish_id IN ?", dishIDs).Delete(&entity.DishFlavor{}).Error
}

func (r *DishRepository) DeleteByIDs(tx *gorm.DB, ids []uint) error {
	return tx.Where("id IN ?", ids).Delete(&entity.Dish{}).Error
}

func (r *DishRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.Dish{}).
		Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}

func (r *DishRepository) CountOnSaleByIDs(tx *gorm.DB, ids []uint) (int64, error) {
	var n int64
	err := tx.Model(&entity.Dish{}).
		Where("id IN ? AND status = ?", ids, entity.StatusOnSale).Count(&n).Error
	return n, err
}

// CountOffSaleMembers counts off-sale dishes that belong to the setmeal.
// Used as the enable precondition, inside the enable transaction.
func (r *DishRepository) CountOffSaleMembers(tx *gorm.DB, setmealID uint) (int64, error) {
	var n int64
	err := tx.Model(&entity.Dish{}).
		Where("status = ?", entity.StatusOffSale).
		Where("id IN (?)", tx.Session(&gorm.Session{NewDB: true}).Model(&entity.SetmealDish{}).
			Select("dish_id").Where("setmeal_id = ?", setmealID)).
		Count(&n).Error
	return n, err
}

func (r *DishRepository) ListOnSaleByCategory(ctx context.Context, categoryID uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.WithContext(ctx).Preload("Flavors").
		Where("category_id = ? AND status = ?", categoryID, entity.StatusOnSale).
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) Page(ctx context.Context, q DishQuery) ([]entity.Dish, int64, error) {
	tx := r.DB.WithContext(ctx).Model(&entity.Dish{})
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
	var dishes []entity.Dish
	err := tx.Preload("Category").Order("updated_at desc").
		Offset((q.Page - 1) * q.PageSize).Limit(q.PageSize).
		Find(&dishes).Error
	return dishes, total, err
}
