package repository

import (
	"github.com/alexlopesbr/little-lemon-api/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// OrderScope restricts which orders a query can reach. The zero value
// reaches nothing. With both UserID and DeliveryCrewID set, an order in
// either matches.
type OrderScope struct {
	All            bool
	UserID         uint
	DeliveryCrewID uint
}

func (s OrderScope) apply(db *gorm.DB) *gorm.DB {
	switch {
	case s.All:
		return db
	case s.UserID != 0 && s.DeliveryCrewID != 0:
		return db.Where("(orders.user_id = ? OR orders.delivery_crew_id = ?)", s.UserID, s.DeliveryCrewID)
	case s.DeliveryCrewID != 0:
		return db.Where("orders.delivery_crew_id = ?", s.DeliveryCrewID)
	case s.UserID != 0:
		return db.Where("orders.user_id = ?", s.UserID)
	default:
		return db.Where("1 = 0")
	}
}

type OrderFilter struct {
	Status   *bool
	Ordering string
	Paging
}

var orderOrderings = map[string]string{
	"date":   "orders.date ASC, orders.id ASC",
	"-date":  "orders.date DESC, orders.id DESC",
	"total":  "orders.total ASC, orders.id ASC",
	"-total": "orders.total DESC, orders.id DESC",
}

func ValidOrderOrdering(key string) bool {
	_, ok := orderOrderings[key]
	return ok || key == ""
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Omit("User", "DeliveryCrew", "OrderItems").Create(o).Error
}

func (r *OrderRepository) List(scope OrderScope, f OrderFilter) ([]entity.Order, int64, error) {
	q := scope.apply(r.DB.Model(&entity.Order{}))
	if f.Status != nil {
		q = q.Where("orders.status = ?", *f.Status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := orderOrderings[f.Ordering]
	if !ok {
		order = orderOrderings["-date"]
	}
	var out []entity.Order
	err := f.Paging.apply(q).
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Order(order).
		Find(&out).Error
	return out, total, err
}

// FindScoped loads one order with its items, only if the scope reaches it.
func (r *OrderRepository) FindScoped(scope OrderScope, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := scope.apply(r.DB.Model(&entity.Order{})).
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Where("orders.id = ?", orderID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateFields writes the given columns of one order.
func (r *OrderRepository) UpdateFields(orderID uint, fields map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

func (r *OrderRepository) Delete(orderID uint) error {
	return r.DB.Delete(&entity.Order{}, orderID).Error
}

// ---------------- Order Items ----------------

// CreateOrderItems inserts all snapshot rows in one statement.
func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Omit("Order", "MenuItem").Create(&items).Error
}
