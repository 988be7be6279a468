package services

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexlopesbr/little-lemon-api/configs"
	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	users    *repository.UserRepository
	menuRepo *repository.MenuRepository
	cartRepo *repository.CartRepository
	category entity.Category

	roles  *RoleService
	auth   *AuthService
	menu   *MenuService
	cart   *CartService
	orders *OrderService
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newFixture opens a migrated, seeded SQLite database in a temp dir.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := quietLogger()
	cfg := &configs.Config{DBDriver: "sqlite", DBSource: filepath.Join(t.TempDir(), "test.db")}

	db, err := configs.ConnectionDB(cfg, log)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedGroups(db); err != nil {
		t.Fatalf("seed groups: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	f := &fixture{
		db:       db,
		users:    repository.NewUserRepository(db),
		menuRepo: repository.NewMenuRepository(db),
		cartRepo: repository.NewCartRepository(db),
	}
	f.roles, err = NewRoleService(repository.NewGroupRepository(db), f.users, log)
	if err != nil {
		t.Fatalf("role service: %v", err)
	}
	bl := NewDBBlacklist(repository.NewTokenRepository(db))
	f.auth = NewAuthService(f.users, f.roles, bl, log, "test-secret", time.Minute, time.Hour)
	categories := repository.NewCategoryRepository(db)
	f.menu = NewMenuService(f.menuRepo, categories)
	f.cart = NewCartService(db, f.cartRepo, f.menuRepo, log)
	f.orders = NewOrderService(db, repository.NewOrderRepository(db), f.cartRepo, f.roles, log)

	f.category = entity.Category{Title: "Mains", Slug: "mains"}
	if err := categories.Create(&f.category); err != nil {
		t.Fatalf("create category: %v", err)
	}
	return f
}

// user creates an account, adds it to the given roles and returns its principal.
func (f *fixture) user(t *testing.T, username string, roles ...entity.Role) entity.Principal {
	t.Helper()
	u := &entity.User{Username: username, Password: "x"}
	if err := f.users.Create(u); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	for _, r := range roles {
		if _, err := f.roles.Assign(r, username); err != nil {
			t.Fatalf("assign %s to %s: %v", r, username, err)
		}
	}
	p, err := f.roles.Principal(u.ID)
	if err != nil {
		t.Fatalf("principal %s: %v", username, err)
	}
	return p
}

func (f *fixture) menuItem(t *testing.T, title, price string) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Title: title, Price: decimal.RequireFromString(price), CategoryID: f.category.ID}
	if err := f.menuRepo.Create(m); err != nil {
		t.Fatalf("create menu item %s: %v", title, err)
	}
	return m
}

func (f *fixture) addToCart(t *testing.T, p entity.Principal, m *entity.MenuItem, qty int) *entity.CartItem {
	t.Helper()
	line, err := f.cart.Add(p.UserID, &AddToCartIn{MenuItemID: m.ID, Quantity: qty})
	if err != nil {
		t.Fatalf("add %s x%d: %v", m.Title, qty, err)
	}
	return line
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }
