package entity

// OrderDetail is a snapshot of one cart line at checkout.
type OrderDetail struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	OrderID   uint   `gorm:"index;not null" json:"orderId"`
	DishID    uint   `gorm:"not null;default:0" json:"dishId"`
	SetmealID uint   `gorm:"not null;default:0" json:"setmealId"`
	Flavor    string `gorm:"size:100" json:"flavor"`
	Name      string `gorm:"size:100" json:"name"`
	Image     string `gorm:"size:255" json:"image"`
	Number    int    `gorm:"not null" json:"number"`
	Amount    int64  `gorm:"not null" json:"amount"`
}
