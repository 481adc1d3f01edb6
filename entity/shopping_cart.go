package entity

import "time"

// ShoppingCart is one line of a customer's cart. Exactly one of DishID /
// SetmealID is non-zero; together with UserID and Flavor it forms the merge
// key, so the same product+flavor never occupies two rows. Name, image and
// amount are snapshots taken at add time.
type ShoppingCart struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	DishID    uint      `gorm:"not null;default:0" json:"dishId"`
	SetmealID uint      `gorm:"not null;default:0" json:"setmealId"`
	Flavor    string    `gorm:"size:100;not null;default:''" json:"flavor"`
	Number    int       `gorm:"not null" json:"number"`
	Amount    int64     `gorm:"not null" json:"amount"` // unit price at add time
	Name      string    `gorm:"size:100" json:"name"`
	Image     string    `gorm:"size:255" json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}
