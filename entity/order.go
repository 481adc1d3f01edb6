package entity

import "time"

// Order lifecycle.
const (
	OrderStatusPending   = 1 // submitted, waiting for the shop to confirm
	OrderStatusConfirmed = 2
	OrderStatusCompleted = 3
	OrderStatusCancelled = 4
)

type Order struct {
	Model
	Number       string    `gorm:"size:50;uniqueIndex;not null" json:"number"`
	UserID       uint      `gorm:"index;not null" json:"userId"`
	Status       int       `gorm:"not null;default:1" json:"status"`
	Amount       int64     `gorm:"not null" json:"amount"`
	Address      string    `gorm:"size:255" json:"address"`
	Phone        string    `gorm:"size:20" json:"phone"`
	Remark       string    `gorm:"size:255" json:"remark"`
	CheckoutTime time.Time `json:"checkoutTime"`

	Details []OrderDetail `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"details"`
}
