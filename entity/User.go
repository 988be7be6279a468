package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `gorm:"index" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"is_admin"`

	// Role membership lives in user_groups; preload only where roles matter.
	Groups []Group `gorm:"many2many:user_groups;" json:"-"`
	Orders []Order `json:"-"`
}

// Group is a named role set. Rows are seeded at startup and looked up by Role.
type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}
