package repository

import (
	"time"

	"github.com/alexlopesbr/little-lemon-api/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenRepository struct {
	DB *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

// Revoke records jti as blacklisted. Revoking twice is a no-op.
func (r *TokenRepository) Revoke(jti string, userID uint, expiresAt time.Time) error {
	row := entity.RevokedToken{JTI: jti, UserID: userID, ExpiresAt: expiresAt}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

func (r *TokenRepository) IsRevoked(jti string) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.RevokedToken{}).Where("jti = ?", jti).Count(&cnt).Error
	return cnt > 0, err
}

// PurgeExpired drops rows whose token can no longer be presented.
func (r *TokenRepository) PurgeExpired(now time.Time) (int64, error) {
	res := r.DB.Where("expires_at < ?", now).Delete(&entity.RevokedToken{})
	return res.RowsAffected, res.Error
}
