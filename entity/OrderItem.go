package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is the snapshot of a cart line taken at checkout. Never updated.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	OrderID uint  `gorm:"not null;uniqueIndex:idx_order_menu_item" json:"order_id"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_order_menu_item" json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"unit_price"`
	Price     decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
}
