package entity

// DishFlavor is owned by its dish: rows are replaced wholesale whenever the
// dish is updated and removed when the dish is deleted.
type DishFlavor struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	DishID uint   `gorm:"index;not null" json:"dishId"`
	Name   string `gorm:"size:50" json:"name"`
	Value  string `gorm:"size:500" json:"value"` // JSON array of allowed values
}
