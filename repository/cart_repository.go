package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// FindLine matches on the full merge key: user, dish id, setmeal id and
// flavor, all by exact equality (zero meaning "not this product type"). A
// dish line can therefore never merge with a setmeal line. Returns nil when
// no row matches.
func (r *CartRepository) FindLine(tx *gorm.DB, userID, dishID, setmealID uint, flavor string) (*entity.ShoppingCart, error) {
	var line entity.ShoppingCart
	err := tx.Where("user_id = ? AND dish_id = ? AND setmeal_id = ? AND flavor = ?",
		userID, dishID, setmealID, flavor).
		First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) Create(tx *gorm.DB, line *entity.ShoppingCart) error {
	return tx.Create(line).Error
}

func (r *CartRepository) UpdateNumber(tx *gorm.DB, id uint, number int) error {
	return tx.Model(&entity.ShoppingCart{}).Where("id = ?", id).
		Update("number", number).Error
}

func (r *CartRepository) DeleteByID(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.ShoppingCart{}, id).Error
}

func (r *CartRepository) ListByUser(ctx context.Context, userID uint) ([]entity.ShoppingCart, error) {
	var lines []entity.ShoppingCart
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&lines).Error
	return lines, err
}

func (r *CartRepository) ClearByUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.ShoppingCart{}).Error
}
