package services

import (
	"errors"
	"testing"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
)

func TestCartAdd_NewLine(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, "alice")
	m := f.menuItem(t, "Greek Salad", "4.50")

	line := f.addToCart(t, p, m, 3)

	if line.Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", line.Quantity)
	}
	if !line.UnitPrice.Equal(money("4.50")) {
		t.Fatalf("unit price = %s, want 4.50", line.UnitPrice)
	}
	if !line.Price.Equal(money("13.50")) {
		t.Fatalf("price = %s, want 13.50", line.Price)
	}
}

func TestCartAdd_MergesSameItem(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, "alice")
	m := f.menuItem(t, "Bruschetta", "5.00")

	f.addToCart(t, p, m, 2)

	// price change between adds: the merged line is repriced
	if err := f.db.Model(&entity.MenuItem{}).Where("id = ?", m.ID).Update("price", money("6.00")).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}
	line := f.addToCart(t, p, m, 3)

	if got := f.count(t, &entity.CartItem{}); got != 1 {
		t.Fatalf("cart lines = %d, want 1", got)
	}
	if line.Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", line.Quantity)
	}
	if !line.UnitPrice.Equal(money("6.00")) || !line.Price.Equal(money("30.00")) {
		t.Fatalf("unit/price = %s/%s, want 6.00/30.00", line.UnitPrice, line.Price)
	}
}

func TestCartAdd_Rejects(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, "alice")
	m := f.menuItem(t, "Pasta", "9.00")

	tests := []struct {
		name string
		in   AddToCartIn
		kind apperr.Kind
	}{
		{"zero quantity", AddToCartIn{MenuItemID: m.ID, Quantity: 0}, apperr.KindInvalidInput},
		{"negative quantity", AddToCartIn{MenuItemID: m.ID, Quantity: -2}, apperr.KindInvalidInput},
		{"unknown item", AddToCartIn{MenuItemID: m.ID + 100, Quantity: 1}, apperr.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			_, err := f.cart.Add(p.UserID, &in)
			if !apperr.Is(err, tt.kind) {
				t.Fatalf("err = %v, want kind %s", err, tt.kind)
			}
		})
	}
	if got := f.count(t, &entity.CartItem{}); got != 0 {
		t.Fatalf("cart lines = %d, want 0", got)
	}
}

func TestCartGet_Subtotal(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, "alice")
	other := f.user(t, "bob")
	x := f.menuItem(t, "X", "10.00")
	y := f.menuItem(t, "Y", "5.00")

	f.addToCart(t, p, x, 2)
	f.addToCart(t, p, y, 1)
	f.addToCart(t, other, x, 7)

	lines, subtotal, err := f.cart.Get(p.UserID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0].MenuItem.Title != "X" {
		t.Fatalf("first line title = %q, want X", lines[0].MenuItem.Title)
	}
	if !subtotal.Equal(money("25.00")) {
		t.Fatalf("subtotal = %s, want 25.00", subtotal)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, "alice")
	x := f.menuItem(t, "X", "10.00")
	y := f.menuItem(t, "Y", "5.00")
	f.addToCart(t, p, x, 1)
	f.addToCart(t, p, y, 1)

	if err := f.cart.Remove(p.UserID, x.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := f.cart.Remove(p.UserID, x.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("second remove err = %v, want not found", err)
	}
	if got := f.count(t, &entity.CartItem{}); got != 1 {
		t.Fatalf("cart lines = %d, want 1", got)
	}

	if err := f.cart.Clear(p.UserID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := f.cart.Clear(p.UserID); err != nil {
		t.Fatalf("clear empty cart: %v", err)
	}
	if got := f.count(t, &entity.CartItem{}); got != 0 {
		t.Fatalf("cart lines = %d, want 0", got)
	}
}

func TestCartAdd_BoundsMergedLine(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, "alice")
	soup := f.menuItem(t, "Soup", "2.00")
	caviar := f.menuItem(t, "Caviar", "999999.99")

	f.addToCart(t, p, soup, 600)
	_, err := f.cart.Add(p.UserID, &AddToCartIn{MenuItemID: soup.ID, Quantity: 600})
	if !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("merge past cap err = %v, want invalid_input", err)
	}
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Fields["quantity"] == "" {
		t.Fatalf("want a quantity field error, got %v", err)
	}
	if ae.Retryable {
		t.Fatal("bounded quantity must not be retryable")
	}

	line := f.addToCart(t, p, soup, 400)
	if line.Quantity != 1000 {
		t.Fatalf("quantity = %d, want 1000", line.Quantity)
	}

	f.addToCart(t, p, caviar, 1)
	_, err = f.cart.Add(p.UserID, &AddToCartIn{MenuItemID: caviar.ID, Quantity: 1})
	if !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("line total overflow err = %v, want invalid_input", err)
	}

	lines, _, err := f.cart.Get(p.UserID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	for _, l := range lines {
		if l.MenuItemID == caviar.ID && l.Quantity != 1 {
			t.Fatalf("rejected add changed the line: quantity %d", l.Quantity)
		}
	}
}
