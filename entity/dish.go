package entity

type Dish struct {
	Model
	CategoryID  uint     `gorm:"index;not null" json:"categoryId"`
	Category    Category `json:"-"` // preload only when the admin list needs names
	Name        string   `gorm:"size:100;not null" json:"name"`
	Price       int64    `gorm:"not null" json:"price"` // minor units
	Image       string   `gorm:"size:255" json:"image"`
	Description string   `gorm:"size:255" json:"description"`
	Status      int      `gorm:"not null;default:0" json:"status"` // StatusOnSale / StatusOffSale

	Flavors []DishFlavor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"flavors"`
}
