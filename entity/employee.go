package entity

// Employee is a staff account for the admin console.
type Employee struct {
	Model
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Password string `json:"-"`
	Phone    string `gorm:"size:20" json:"phone"`
	Status   int    `gorm:"not null;default:1" json:"status"` // disabled employees cannot log in
}
