package configs

import (
	"errors"

	"github.com/alexlopesbr/little-lemon-api/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedGroups makes sure every role-backed group exists.
func SeedGroups(db *gorm.DB) error {
	for _, name := range entity.GroupRoles {
		g := entity.Group{}
		if err := db.Where(entity.Group{Name: name}).FirstOrCreate(&g).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the first admin account from ADMIN_USERNAME/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, cfg *Config, log *logrus.Logger) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Warn("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var exist entity.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&exist).Error
	if err == nil {
		log.WithField("username", cfg.AdminUsername).Info("admin already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:  cfg.AdminUsername,
		Password:  string(hash),
		FirstName: "Admin",
		IsAdmin:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.WithField("username", admin.Username).Info("admin seeded")
	return nil
}
