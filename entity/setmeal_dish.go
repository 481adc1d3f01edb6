package entity

// SetmealDish links a setmeal to one constituent dish. Name and price are
// captured at composition time so the setmeal detail keeps showing what was
// composed even if the dish is edited later.
type SetmealDish struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	SetmealID uint   `gorm:"index;not null" json:"setmealId"`
	DishID    uint   `gorm:"index;not null" json:"dishId"`
	Name      string `gorm:"size:100" json:"name"`
	Price     int64  `json:"price"`
	Copies    int    `gorm:"not null;default:1" json:"copies"`
}
