package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
	"github.com/alexlopesbr/little-lemon-api/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CategoryIn struct {
	Title *string `json:"title"`
	Slug  *string `json:"slug"`
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and joins its alphanumeric runs with '-'.
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func (s *CategoryService) List(p repository.Paging) ([]entity.Category, int64, error) {
	return s.Repo.List(p)
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	c, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category %d not found", id)
		}
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Create(in *CategoryIn) (*entity.Category, error) {
	c := &entity.Category{}
	if err := s.apply(c, in, true); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, s.translate(err)
	}
	return c, nil
}

// Update changes the given fields; full marks a PUT, where title is required.
func (s *CategoryService) Update(id uint, in *CategoryIn, full bool) (*entity.Category, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(c, in, full); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(c); err != nil {
		return nil, s.translate(err)
	}
	return c, nil
}

// Delete refuses while menu items still use the category.
func (s *CategoryService) Delete(id uint) error {
	n, err := s.Repo.CountMenuItems(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("category still has menu items", nil)
	}
	ok, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("category %d not found", id)
	}
	return nil
}

func (s *CategoryService) apply(c *entity.Category, in *CategoryIn, requireTitle bool) error {
	if in.Title != nil {
		c.Title = strings.TrimSpace(*in.Title)
	}
	if requireTitle && (in.Title == nil || c.Title == "") {
		return apperr.Invalid("title", "required")
	}
	if c.Title == "" {
		return apperr.Invalid("title", "must not be blank")
	}
	if in.Slug != nil {
		c.Slug = Slugify(*in.Slug)
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Title)
	}
	if c.Slug == "" {
		return apperr.Invalid("slug", "must contain letters or digits")
	}

	n, err := s.Repo.CountByTitleOrSlug(c.Title, c.Slug, c.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("category title or slug already exists", nil)
	}
	return nil
}

func (s *CategoryService) translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("category title or slug already exists", err)
	}
	return err
}
