package services

import (
	"errors"
	"time"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
	"github.com/alexlopesbr/little-lemon-api/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Roles    *RoleService
	Log      *logrus.Logger

	// Now stamps new orders.
	Now func() time.Time

	lockCart bool
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	roles *RoleService,
	log *logrus.Logger,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, Roles: roles, Log: log,
		Now: time.Now,
		// SQLite has no row locks; its write lock already serializes checkouts.
		lockCart: db.Dialector.Name() == "postgres",
	}
}

// OrderUpdate is a partial update. SetDeliveryCrew distinguishes "absent"
// from an explicit null (DeliveryCrewID == nil unassigns).
type OrderUpdate struct {
	Status          *bool
	SetDeliveryCrew bool
	DeliveryCrewID  *uint
}

func (u OrderUpdate) empty() bool { return u.Status == nil && !u.SetDeliveryCrew }

// Scope is the order visibility of a caller, read from its current roles.
func Scope(p entity.Principal) repository.OrderScope {
	switch {
	case p.CanManage():
		return repository.OrderScope{All: true}
	case p.Role() == entity.RoleDeliveryCrew:
		// crew also place orders of their own
		return repository.OrderScope{UserID: p.UserID, DeliveryCrewID: p.UserID}
	default:
		return repository.OrderScope{UserID: p.UserID}
	}
}

// ----- Checkout -----

// Checkout turns the caller's cart into an order. Order, items and cart
// deletion commit together or not at all.
func (s *OrderService) Checkout(p entity.Principal) (*entity.Order, error) {
	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.LinesForCheckout(tx, p.UserID, s.lockCart)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.InvalidState("cart is empty")
		}

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Price)
		}
		if total.GreaterThan(maxPrice) {
			return apperr.InvalidState("order total exceeds " + maxPrice.StringFixed(2) + ", split the cart")
		}

		order = entity.Order{
			UserID: p.UserID,
			Total:  total,
			Date:   s.Now().UTC(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		items := make([]entity.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			})
		}
		if err := s.Repo.CreateOrderItems(tx, items); err != nil {
			return err
		}

		n, err := s.CartRepo.ClearCart(tx, p.UserID)
		if err != nil {
			return err
		}
		if n != int64(len(lines)) {
			return apperr.Retry("cart changed during checkout", nil)
		}
		order.OrderItems = items
		return nil
	})
	if err != nil {
		if apperr.Is(err, apperr.KindInvalidState) || apperr.Is(err, apperr.KindConflict) {
			return nil, err
		}
		s.Log.WithError(err).WithField("userId", p.UserID).Warn("checkout rolled back")
		return nil, apperr.Retry("checkout failed, please retry", err)
	}

	s.Log.WithFields(logrus.Fields{
		"userId":  p.UserID,
		"orderId": order.ID,
		"items":   len(order.OrderItems),
		"total":   order.Total.StringFixed(2),
	}).Info("order placed")
	return &order, nil
}

// ----- List & Detail -----

func (s *OrderService) List(p entity.Principal, f repository.OrderFilter) ([]entity.Order, int64, error) {
	if !repository.ValidOrderOrdering(f.Ordering) {
		return nil, 0, apperr.Invalid("ordering", "use date, -date, total or -total")
	}
	return s.Repo.List(Scope(p), f)
}

// Get returns the order if the caller may see it. Orders out of scope are
// reported as not found.
func (s *OrderService) Get(p entity.Principal, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.FindScoped(Scope(p), orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order %d not found", orderID)
		}
		return nil, err
	}
	return o, nil
}

// ----- Update & Delete -----

// Update applies u under the role rules: managers set status and delivery
// crew; delivery crew set status on their own assignments; customers change nothing.
func (s *OrderService) Update(p entity.Principal, orderID uint, u OrderUpdate) (*entity.Order, error) {
	o, err := s.Get(p, orderID)
	if err != nil {
		return nil, err
	}
	if u.empty() {
		return o, nil
	}

	switch {
	case p.CanManage():
	case p.Role() == entity.RoleDeliveryCrew:
		if u.SetDeliveryCrew {
			return nil, apperr.Forbidden("only managers assign delivery crew")
		}
		if o.DeliveryCrewID == nil || *o.DeliveryCrewID != p.UserID {
			return nil, apperr.Forbidden("order is not assigned to you")
		}
	default:
		return nil, apperr.Forbidden("customers cannot change order status or delivery crew")
	}

	fields := map[string]any{}
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	if u.SetDeliveryCrew {
		if u.DeliveryCrewID != nil {
			ok, err := s.Roles.IsMember(entity.RoleDeliveryCrew, *u.DeliveryCrewID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, apperr.Invalid("delivery_crew", "user is not in the delivery crew")
			}
			fields["delivery_crew_id"] = *u.DeliveryCrewID
		} else {
			fields["delivery_crew_id"] = nil
		}
	}

	if err := s.Repo.UpdateFields(o.ID, fields); err != nil {
		return nil, err
	}
	s.Log.WithFields(logrus.Fields{"orderId": o.ID, "by": p.UserID, "fields": len(fields)}).Info("order updated")

	return s.Get(p, o.ID)
}

// Delete removes an order. Managers delete any order, customers their own;
// delivery crew may not delete.
func (s *OrderService) Delete(p entity.Principal, orderID uint) error {
	o, err := s.Get(p, orderID)
	if err != nil {
		return err
	}
	if !p.CanManage() && p.Role() == entity.RoleDeliveryCrew {
		return apperr.Forbidden("delivery crew cannot delete orders")
	}
	if err := s.Repo.Delete(o.ID); err != nil {
		return err
	}
	s.Log.WithFields(logrus.Fields{"orderId": o.ID, "by": p.UserID}).Info("order deleted")
	return nil
}
