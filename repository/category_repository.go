package repository

import (
	"github.com/alexlopesbr/little-lemon-api/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List(p Paging) ([]entity.Category, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.Category
	err := p.apply(r.DB).Order("id ASC").Find(&out).Error
	return out, total, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CountByTitleOrSlug counts other categories using either value.
func (r *CategoryRepository) CountByTitleOrSlug(title, slug string, exceptID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Category{}).
		Where("(title = ? OR slug = ?) AND id <> ?", title, slug, exceptID).
		Count(&cnt).Error
	return cnt, err
}

func (r *CategoryRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CategoryRepository) Update(c *entity.Category) error {
	return r.DB.Save(c).Error
}

// CountMenuItems counts live menu items filed under the category.
func (r *CategoryRepository) CountMenuItems(id uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.MenuItem{}).Where("category_id = ?", id).Count(&cnt).Error
	return cnt, err
}

// Delete removes the row for good and reports whether one existed.
func (r *CategoryRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.Category{}, id)
	return res.RowsAffected > 0, res.Error
}
