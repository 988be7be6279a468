package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexlopesbr/little-lemon-api/configs"
	"github.com/alexlopesbr/little-lemon-api/middlewares"
	"github.com/alexlopesbr/little-lemon-api/repository"
	"github.com/alexlopesbr/little-lemon-api/routes"
	"github.com/alexlopesbr/little-lemon-api/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	cfg := configs.LoadConfig()
	log := configs.NewLogger(cfg)
	gin.SetMode(cfg.GinMode)

	// DB
	db, err := configs.ConnectionDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("connect database")
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.WithError(err).Fatal("migrate database")
	}
	if err := configs.SeedGroups(db); err != nil {
		log.WithError(err).Fatal("seed groups")
	}
	if err := configs.SeedAdmin(db, cfg, log); err != nil {
		log.WithError(err).Fatal("seed admin")
	}

	bl, closeBL := newBlacklist(cfg, db, log)
	defer closeBL()

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log), middlewares.CORSMiddleware(cfg.CORSOrigins))
	if err := routes.RegisterRoutes(r, db, cfg, log, bl); err != nil {
		log.WithError(err).Fatal("register routes")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithField("addr", srv.Addr).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}

// newBlacklist stores revoked refresh tokens in Redis when REDIS_ADDR is set,
// otherwise in the revoked_tokens table.
func newBlacklist(cfg *configs.Config, db *gorm.DB, log *logrus.Logger) (services.TokenBlacklist, func()) {
	if cfg.RedisAddr == "" {
		return services.NewDBBlacklist(repository.NewTokenRepository(db)), func() {}
	}
	conn := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := conn.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatal("connect redis")
	}
	log.WithField("addr", cfg.RedisAddr).Info("token blacklist on redis")
	return services.NewRedisBlacklist(conn), func() { _ = conn.Close() }
}
