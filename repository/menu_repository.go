package repository

import (
	"strings"

	"github.com/alexlopesbr/little-lemon-api/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuFilter narrows the menu listing. Search matches the item title or the
// category title, case-insensitively.
type MenuFilter struct {
	Search       string
	CategorySlug string
	Featured     *bool
	Ordering     string
	Paging
}

var menuOrderings = map[string]string{
	"price":  "menu_items.price ASC, menu_items.id ASC",
	"-price": "menu_items.price DESC, menu_items.id ASC",
	"title":  "menu_items.title ASC, menu_items.id ASC",
	"-title": "menu_items.title DESC, menu_items.id ASC",
}

// ValidMenuOrdering reports whether key is an accepted ordering.
func ValidMenuOrdering(key string) bool {
	_, ok := menuOrderings[key]
	return ok || key == ""
}

func (r *MenuRepository) List(f MenuFilter) ([]entity.MenuItem, int64, error) {
	q := r.DB.Model(&entity.MenuItem{}).
		Joins("LEFT JOIN categories ON categories.id = menu_items.category_id")

	if s := strings.TrimSpace(f.Search); s != "" {
		pat := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(menu_items.title) LIKE ? OR LOWER(categories.title) LIKE ?", pat, pat)
	}
	if f.CategorySlug != "" {
		q = q.Where("categories.slug = ?", f.CategorySlug)
	}
	if f.Featured != nil {
		q = q.Where("menu_items.featured = ?", *f.Featured)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := menuOrderings[f.Ordering]
	if !ok {
		order = "menu_items.id ASC"
	}
	var items []entity.MenuItem
	err := f.Paging.apply(q).
		Preload("Category").
		Order(order).
		Find(&items).Error
	return items, total, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetBasics loads only what pricing needs.
func (r *MenuRepository) GetBasics(tx *gorm.DB, id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := tx.Select("id, title, price").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Omit("Category").Create(m).Error
}

func (r *MenuRepository) Update(m *entity.MenuItem) error {
	return r.DB.Omit("Category").Save(m).Error
}

func (r *MenuRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected > 0, res.Error
}
