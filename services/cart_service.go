package services

import (
	"errors"
	"fmt"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
	"github.com/alexlopesbr/little-lemon-api/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	Log      *logrus.Logger
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, log *logrus.Logger) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, Log: log}
}

// maxLineQuantity caps a merged cart line.
const maxLineQuantity = 1000

type AddToCartIn struct {
	MenuItemID uint `json:"menu_item" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1,max=1000"`
}

// Get returns the user's lines and their subtotal.
func (s *CartService) Get(userID uint) ([]entity.CartItem, decimal.Decimal, error) {
	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Price)
	}
	return lines, subtotal, nil
}

// Add stages quantity units of a menu item. An existing line for the same
// item is merged: quantity grows, unit price is refreshed, price recomputed.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartItem, error) {
	if in.Quantity <= 0 {
		return nil, apperr.Invalid("quantity", "must be at least 1")
	}

	var out *entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		m, err := s.MenuRepo.GetBasics(tx, in.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("menu item %d not found", in.MenuItemID)
			}
			return err
		}

		line, err := s.CartRepo.FindLine(tx, userID, m.ID)
		switch {
		case err == nil:
			qty := line.Quantity + in.Quantity
			if qty > maxLineQuantity {
				return apperr.Invalid("quantity", fmt.Sprintf("at most %d per item, %d already in the cart", maxLineQuantity, line.Quantity))
			}
			price, err := linePrice(m.Price, qty)
			if err != nil {
				return err
			}
			line.Quantity = qty
			line.UnitPrice = m.Price
			line.Price = price
			if err := s.CartRepo.SaveLine(tx, line); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if in.Quantity > maxLineQuantity {
				return apperr.Invalid("quantity", fmt.Sprintf("at most %d per item", maxLineQuantity))
			}
			price, err := linePrice(m.Price, in.Quantity)
			if err != nil {
				return err
			}
			line = &entity.CartItem{
				UserID:     userID,
				MenuItemID: m.ID,
				Quantity:   in.Quantity,
				UnitPrice:  m.Price,
				Price:      price,
			}
			if err := s.CartRepo.CreateLine(tx, line); err != nil {
				return err
			}
		default:
			return err
		}
		line.MenuItem = *m
		out = line
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Retry("cart changed concurrently, retry", err)
		}
		return nil, err
	}
	return out, nil
}

// linePrice must fit the price column.
func linePrice(unit decimal.Decimal, qty int) (decimal.Decimal, error) {
	price := unit.Mul(decimal.NewFromInt(int64(qty)))
	if price.GreaterThan(maxPrice) {
		return decimal.Zero, apperr.Invalid("quantity", "line total exceeds "+maxPrice.StringFixed(2))
	}
	return price, nil
}

// Remove deletes the line for one menu item.
func (s *CartService) Remove(userID, menuItemID uint) error {
	ok, err := s.CartRepo.RemoveLine(s.DB, userID, menuItemID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("menu item %d is not in the cart", menuItemID)
	}
	return nil
}

// Clear empties the cart. Clearing an empty cart is not an error.
func (s *CartService) Clear(userID uint) error {
	n, err := s.CartRepo.ClearCart(s.DB, userID)
	if err != nil {
		return err
	}
	s.Log.WithFields(logrus.Fields{"userId": userID, "lines": n}).Debug("cart cleared")
	return nil
}
