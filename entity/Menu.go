package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title    string          `gorm:"index;not null" json:"title"`
	Price    decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	Featured bool            `gorm:"index;not null;default:false" json:"featured"`

	CategoryID uint     `gorm:"index" json:"category_id"`
	Category   Category `json:"category"`
}
