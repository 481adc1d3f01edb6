package entity

// User is a customer account for the ordering app.
type User struct {
	Model
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `gorm:"size:50" json:"name"`
	Phone    string `gorm:"size:20" json:"phone"`
}
