package routes

import (
	"net/http"

	"github.com/alexlopesbr/little-lemon-api/configs"
	"github.com/alexlopesbr/little-lemon-api/controllers"
	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/middlewares"
	"github.com/alexlopesbr/little-lemon-api/repository"
	"github.com/alexlopesbr/little-lemon-api/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto r.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *logrus.Logger, bl services.TokenBlacklist) error {
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	roleSvc, err := services.NewRoleService(groupRepo, userRepo, log)
	if err != nil {
		return err
	}
	authSvc := services.NewAuthService(userRepo, roleSvc, bl, log, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	categorySvc := services.NewCategoryService(categoryRepo)
	menuSvc := services.NewMenuService(menuRepo, categoryRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, log)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, roleSvc, log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerCtrl := controllers.NewGroupController(roleSvc, entity.RoleManager)
	crewCtrl := controllers.NewGroupController(roleSvc, entity.RoleDeliveryCrew)

	anonLimit := middlewares.NewRateLimiter(cfg.AnonRate)
	userLimit := middlewares.NewRateLimiter(cfg.UserRate)
	orderLimit := middlewares.NewRateLimiter(cfg.OrdersRate)

	auth := middlewares.AuthMiddleware(authSvc)
	throttle := middlewares.Throttle(anonLimit, userLimit)
	manager := middlewares.RequireManager()

	// Users & tokens
	r.POST("/users", authCtrl.Register)
	r.GET("/users/me", auth, authCtrl.Me)
	tok := r.Group("/token")
	{
		tok.POST("", authCtrl.Token)
		tok.POST("/refresh", authCtrl.Refresh)
		tok.POST("/blacklist", authCtrl.Blacklist)
	}

	// Menu items: reads are public, writes need a manager.
	menu := r.Group("/menu-items")
	{
		read := []gin.HandlerFunc{middlewares.OptionalAuth(authSvc), throttle}
		write := []gin.HandlerFunc{auth, throttle, manager}

		menu.GET("", append(read, menuCtrl.List)...)
		menu.GET("/:id", append(read, menuCtrl.Get)...)
		menu.POST("", append(write, menuCtrl.Create)...)
		menu.PUT("/:id", append(write, menuCtrl.Update)...)
		menu.PATCH("/:id", append(write, menuCtrl.Update)...)
		menu.DELETE("/:id", append(write, menuCtrl.Delete)...)
	}

	// Categories
	cat := r.Group("/category")
	{
		cat.GET("", categoryCtrl.List)
		cat.POST("", categoryCtrl.Create)
		cat.GET("/:id", categoryCtrl.Get)
		cat.PUT("/:id", categoryCtrl.Update)
		cat.PATCH("/:id", categoryCtrl.Update)
		cat.DELETE("/:id", categoryCtrl.Delete)
	}

	// Cart
	cart := r.Group("/cart/menu-items", auth, throttle)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("", cartCtrl.Add)
		cart.DELETE("", cartCtrl.Clear)
		cart.DELETE("/:menuItemId", cartCtrl.RemoveItem)
	}

	// Orders
	orders := r.Group("/orders", auth, throttle, middlewares.Throttle(orderLimit, orderLimit))
	{
		for _, path := range []string{"", "/"} {
			orders.GET(path, orderCtrl.List)
			orders.POST(path, orderCtrl.Create)
		}
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id", orderCtrl.Update)
		orders.PATCH("/:id", orderCtrl.Update)
		orders.DELETE("/:id", orderCtrl.Delete)
	}

	// Role groups (admin or manager)
	groups := r.Group("/groups", auth, manager)
	for path, ctl := range map[string]*controllers.GroupController{
		"/manager/users":       managerCtrl,
		"/delivery-crew/users": crewCtrl,
	} {
		groups.GET(path, ctl.List)
		groups.POST(path, ctl.Assign)
		groups.GET(path+"/:id", ctl.Get)
		groups.DELETE(path+"/:id", ctl.Remove)
	}
	return nil
}
