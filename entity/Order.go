package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `json:"-"`

	DeliveryCrewID *uint `gorm:"index" json:"delivery_crew_id"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	// Status is true once delivered.
	Status bool            `gorm:"index;not null;default:false" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"total"`
	Date   time.Time       `gorm:"index;not null" json:"date"`

	OrderItems []OrderItem `json:"items,omitempty"`
}
