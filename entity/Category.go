package entity

import "time"

// Category is hard-deleted so its unique title and slug can be reused.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title string `gorm:"uniqueIndex;not null" json:"title"`
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`

	// Soft-deleted items keep no link to a removed category.
	MenuItems []MenuItem `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
