package entity

type Category struct {
	Model
	Kind   int    `gorm:"not null;uniqueIndex:idx_category_kind_name" json:"kind"` // CategoryKindDish or CategoryKindSetmeal
	Name   string `gorm:"size:100;not null;uniqueIndex:idx_category_kind_name" json:"name"`
	Sort   int    `gorm:"not null;default:0" json:"sort"`
	Status int    `gorm:"not null;default:1" json:"status"`
}
