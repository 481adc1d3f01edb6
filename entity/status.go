package entity

// Sale/enabled state shared by categories, dishes and setmeals.
const (
	StatusOffSale = 0
	StatusOnSale  = 1
)

// Category kinds. A category groups either dishes or setmeals, never both.
const (
	CategoryKindDish    = 1
	CategoryKindSetmeal = 2
)
