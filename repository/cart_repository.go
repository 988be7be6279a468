package repository

import (
	"github.com/alexlopesbr/little-lemon-api/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListForUser returns the user's lines with their menu items, oldest first.
func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id ASC").
		Find(&lines).Error
	return lines, err
}

// LinesForCheckout reads the user's lines inside tx. lock adds FOR UPDATE
// on dialects that support row locks.
func (r *CartRepository) LinesForCheckout(tx *gorm.DB, userID uint, lock bool) ([]entity.CartItem, error) {
	q := tx.Where("user_id = ?", userID).Order("id ASC")
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var lines []entity.CartItem
	err := q.Find(&lines).Error
	return lines, err
}

func (r *CartRepository) FindLine(tx *gorm.DB, userID, menuItemID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) CreateLine(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Omit("User", "MenuItem").Create(line).Error
}

func (r *CartRepository) SaveLine(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Omit("User", "MenuItem").Save(line).Error
}

// RemoveLine deletes one line and reports whether it existed.
func (r *CartRepository) RemoveLine(tx *gorm.DB, userID, menuItemID uint) (bool, error) {
	res := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).Delete(&entity.CartItem{})
	return res.RowsAffected > 0, res.Error
}

// ClearCart deletes every line of the user and returns how many went.
func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) (int64, error) {
	res := tx.Where("user_id = ?", userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}
