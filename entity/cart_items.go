package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one staged line of a user's cart. Hard-deleted, so the
// (user, menu item) unique index stays usable after checkout.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"not null;uniqueIndex:idx_cart_user_menu_item" json:"user_id"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_cart_user_menu_item" json:"menu_item_id"`
	MenuItem   MenuItem `json:"menu_item"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"unit_price"`
	Price     decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
}
