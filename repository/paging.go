package repository

import "gorm.io/gorm"

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// Paging is a 1-based page request.
type Paging struct {
	Page    int
	PerPage int
}

func (p Paging) Normalize() Paging {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	return p
}

func (p Paging) apply(db *gorm.DB) *gorm.DB {
	p = p.Normalize()
	return db.Limit(p.PerPage).Offset((p.Page - 1) * p.PerPage)
}
