package services

import (
	"context"
	"errors"
	"time"

	"github.com/alexlopesbr/little-lemon-api/repository"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist stores revoked refresh-token ids until they expire.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, userID uint, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// DBBlacklist keeps revoked ids in the revoked_tokens table.
type DBBlacklist struct {
	Repo *repository.TokenRepository
}

func NewDBBlacklist(repo *repository.TokenRepository) *DBBlacklist {
	return &DBBlacklist{Repo: repo}
}

func (b *DBBlacklist) Revoke(_ context.Context, jti string, userID uint, expiresAt time.Time) error {
	if _, err := b.Repo.PurgeExpired(time.Now()); err != nil {
		return err
	}
	return b.Repo.Revoke(jti, userID, expiresAt)
}

func (b *DBBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	return b.Repo.IsRevoked(jti)
}

const redisBlacklistPrefix = "auth:blacklist:"

// RedisBlacklist keeps one key per revoked id; the key TTL is the token's remaining life.
type RedisBlacklist struct {
	Conn *redis.Client
}

func NewRedisBlacklist(conn *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{Conn: conn}
}

func (b *RedisBlacklist) Revoke(ctx context.Context, jti string, _ uint, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return b.Conn.Set(ctx, redisBlacklistPrefix+jti, "1", ttl).Err()
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := b.Conn.Get(ctx, redisBlacklistPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
