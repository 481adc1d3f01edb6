package entity

type Setmeal struct {
	Model
	CategoryID  uint     `gorm:"index;not null" json:"categoryId"`
	Category    Category `json:"-"`
	Name        string   `gorm:"size:100;not null" json:"name"`
	Price       int64    `gorm:"not null" json:"price"`
	Image       string   `gorm:"size:255" json:"image"`
	Description string   `gorm:"size:255" json:"description"`
	Status      int      `gorm:"not null;default:0" json:"status"`

	SetmealDishes []SetmealDish `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"setmealDishes"`
}
