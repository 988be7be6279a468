package services

import (
	"testing"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
	"github.com/alexlopesbr/little-lemon-api/repository"
)

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"0.01", true},
		{"12.5", true},
		{"999999.99", true},
		{"0", false},
		{"-3.00", false},
		{"1.999", false},
		{"1000000.00", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidatePrice(money(tt.in))
			if (err == nil) != tt.ok {
				t.Fatalf("ValidatePrice(%s) = %v, want ok=%v", tt.in, err, tt.ok)
			}
		})
	}
}

func TestMenuCreateAndUpdate(t *testing.T) {
	f := newFixture(t)
	title, price, cat := "Grilled Fish", money("20.00"), f.category.ID

	m, err := f.menu.Create(&MenuItemIn{Title: &title, Price: &price, CategoryID: &cat})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.Category.Slug != "mains" {
		t.Fatalf("category not loaded: %+v", m.Category)
	}

	// PATCH touches only featured
	featured := true
	m, err = f.menu.Update(m.ID, &MenuItemIn{Featured: &featured}, false)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if !m.Featured || m.Title != title || !m.Price.Equal(price) {
		t.Fatalf("patch result = %+v", m)
	}

	// PUT needs every field
	if _, err := f.menu.Update(m.ID, &MenuItemIn{Title: &title}, true); !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("partial put err = %v, want invalid input", err)
	}

	missing := cat + 99
	if _, err := f.menu.Update(m.ID, &MenuItemIn{CategoryID: &missing}, false); !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("unknown category err = %v, want invalid input", err)
	}

	if err := f.menu.Delete(m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.menu.Get(m.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("get deleted err = %v, want not found", err)
	}
}

func TestMenuList_SearchFilterOrder(t *testing.T) {
	f := newFixture(t)
	salads := entity.Category{Title: "Salads", Slug: "salads"}
	if err := f.db.Create(&salads).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	greek := f.menuItem(t, "Greek Salad", "12.50")
	lemon := f.menuItem(t, "Lemon Dessert", "6.00")
	caprese := &entity.MenuItem{Title: "Caprese", Price: money("9.00"), CategoryID: salads.ID, Featured: true}
	if err := f.menuRepo.Create(caprese); err != nil {
		t.Fatalf("create caprese: %v", err)
	}
	yes := true

	tests := []struct {
		name   string
		filter repository.MenuFilter
		want   []uint
	}{
		{"all by id", repository.MenuFilter{}, []uint{greek.ID, lemon.ID, caprese.ID}},
		{"search title or category", repository.MenuFilter{Search: "SALAD"}, []uint{greek.ID, caprese.ID}},
		{"category slug", repository.MenuFilter{CategorySlug: "salads"}, []uint{caprese.ID}},
		{"featured", repository.MenuFilter{Featured: &yes}, []uint{caprese.ID}},
		{"price ascending", repository.MenuFilter{Ordering: "price"}, []uint{lemon.ID, caprese.ID, greek.ID}},
		{"price descending", repository.MenuFilter{Ordering: "-price"}, []uint{greek.ID, caprese.ID, lemon.ID}},
		{"paged", repository.MenuFilter{Ordering: "title", Paging: repository.Paging{Page: 2, PerPage: 2}}, []uint{lemon.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := f.menu.List(tt.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if tt.filter.Page == 0 && int(total) != len(tt.want) {
				t.Fatalf("total = %d, want %d", total, len(tt.want))
			}
			if len(items) != len(tt.want) {
				t.Fatalf("got %d items, want %d", len(items), len(tt.want))
			}
			for i, m := range items {
				if m.ID != tt.want[i] {
					t.Fatalf("item[%d] = %d (%s), want %d", i, m.ID, m.Title, tt.want[i])
				}
			}
		})
	}

	if _, _, err := f.menu.List(repository.MenuFilter{Ordering: "calories"}); !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("bad ordering err = %v, want invalid input", err)
	}
}
