package controllers

import (
	"time"

	"github.com/alexlopesbr/little-lemon-api/entity"
)

type categoryOut struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type menuItemOut struct {
	ID       uint         `json:"id"`
	Title    string       `json:"title"`
	Price    string       `json:"price"`
	Featured bool         `json:"featured"`
	Category *categoryOut `json:"category,omitempty"`
}

type cartLineOut struct {
	ID        uint   `json:"id"`
	MenuItem  uint   `json:"menu_item"`
	Title     string `json:"title,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Price     string `json:"price"`
}

type orderItemOut struct {
	MenuItem  uint   `json:"menu_item"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Price     string `json:"price"`
}

type orderOut struct {
	ID           uint           `json:"id"`
	User         uint           `json:"user"`
	DeliveryCrew *uint          `json:"delivery_crew"`
	Status       bool           `json:"status"`
	Total        string         `json:"total"`
	Date         time.Time      `json:"date"`
	Items        []orderItemOut `json:"items"`
}

type userOut struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func toCategory(c *entity.Category) categoryOut {
	return categoryOut{ID: c.ID, Title: c.Title, Slug: c.Slug}
}

func toMenuItem(m *entity.MenuItem) menuItemOut {
	out := menuItemOut{ID: m.ID, Title: m.Title, Price: m.Price.StringFixed(2), Featured: m.Featured}
	if m.Category.ID != 0 {
		c := toCategory(&m.Category)
		out.Category = &c
	}
	return out
}

func toCartLine(l *entity.CartItem) cartLineOut {
	return cartLineOut{
		ID:        l.ID,
		MenuItem:  l.MenuItemID,
		Title:     l.MenuItem.Title,
		Quantity:  l.Quantity,
		UnitPrice: l.UnitPrice.StringFixed(2),
		Price:     l.Price.StringFixed(2),
	}
}

func toOrder(o *entity.Order) orderOut {
	out := orderOut{
		ID:           o.ID,
		User:         o.UserID,
		DeliveryCrew: o.DeliveryCrewID,
		Status:       o.Status,
		Total:        o.Total.StringFixed(2),
		Date:         o.Date,
		Items:        make([]orderItemOut, 0, len(o.OrderItems)),
	}
	for _, it := range o.OrderItems {
		out.Items = append(out.Items, orderItemOut{
			MenuItem:  it.MenuItemID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Price:     it.Price.StringFixed(2),
		})
	}
	return out
}

func toUser(u *entity.User) userOut {
	return userOut{ID: u.ID, Username: u.Username, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}
