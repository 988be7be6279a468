package services

import (
	"errors"
	"strings"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
	"github.com/alexlopesbr/little-lemon-api/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxPrice is the largest value a decimal(8,2) column holds.
var maxPrice = decimal.RequireFromString("999999.99")

type MenuService struct {
	Repo       *repository.MenuRepository
	Categories *repository.CategoryRepository
}

func NewMenuService(repo *repository.MenuRepository, categories *repository.CategoryRepository) *MenuService {
	return &MenuService{Repo: repo, Categories: categories}
}

// MenuItemIn carries create and update input. Nil fields are left untouched
// on PATCH and rejected on POST/PUT.
type MenuItemIn struct {
	Title      *string          `json:"title"`
	Price      *decimal.Decimal `json:"price"`
	CategoryID *uint            `json:"category_id"`
	Featured   *bool            `json:"featured"`
}

func (s *MenuService) List(f repository.MenuFilter) ([]entity.MenuItem, int64, error) {
	if !repository.ValidMenuOrdering(f.Ordering) {
		return nil, 0, apperr.Invalid("ordering", "use price, -price, title or -title")
	}
	return s.Repo.List(f)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item %d not found", id)
		}
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	m := &entity.MenuItem{}
	if err := s.apply(m, in, true); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return s.Get(m.ID)
}

// Update applies in; full marks a PUT where every field is required.
func (s *MenuService) Update(id uint, in *MenuItemIn, full bool) (*entity.MenuItem, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(m, in, full); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(m); err != nil {
		return nil, err
	}
	return s.Get(m.ID)
}

func (s *MenuService) Delete(id uint) error {
	ok, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("menu item %d not found", id)
	}
	return nil
}

// ValidatePrice accepts positive amounts with at most two fraction digits.
func ValidatePrice(p decimal.Decimal) error {
	switch {
	case !p.IsPositive():
		return apperr.Invalid("price", "must be greater than zero")
	case !p.Equal(p.Truncate(2)):
		return apperr.Invalid("price", "at most two decimal places")
	case p.GreaterThan(maxPrice):
		return apperr.Invalid("price", "too large")
	}
	return nil
}

func (s *MenuService) apply(m *entity.MenuItem, in *MenuItemIn, full bool) error {
	if full {
		switch {
		case in.Title == nil:
			return apperr.Invalid("title", "required")
		case in.Price == nil:
			return apperr.Invalid("price", "required")
		case in.CategoryID == nil:
			return apperr.Invalid("category_id", "required")
		}
	}

	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return apperr.Invalid("title", "must not be blank")
		}
		m.Title = t
	}
	if in.Price != nil {
		if err := ValidatePrice(*in.Price); err != nil {
			return err
		}
		m.Price = *in.Price
	}
	if in.CategoryID != nil {
		ok, err := s.Categories.Exists(*in.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Invalid("category_id", "category does not exist")
		}
		m.CategoryID = *in.CategoryID
		m.Category = entity.Category{}
	}
	if in.Featured != nil {
		m.Featured = *in.Featured
	}
	return nil
}
