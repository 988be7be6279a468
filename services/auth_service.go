package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
	"github.com/alexlopesbr/little-lemon-api/repository"
	"github.com/alexlopesbr/little-lemon-api/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, credentials and the JWT lifecycle.
type AuthService struct {
	Users     *repository.UserRepository
	Roles     *RoleService
	Blacklist TokenBlacklist
	Log       *logrus.Logger

	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(users *repository.UserRepository, roles *RoleService, bl TokenBlacklist, log *logrus.Logger,
	secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		Users:      users,
		Roles:      roles,
		Blacklist:  bl,
		Log:        log,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

type RegisterIn struct {
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Register creates a plain customer account.
func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, apperr.Invalid("username", "required")
	}
	count, err := s.Users.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("username already taken", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:  username,
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  string(hashed),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
	}
	if err := s.Users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("username already taken", err)
		}
		return nil, err
	}
	s.Log.WithField("userId", user.ID).Info("user registered")
	return user, nil
}

// Login checks the password and issues an access/refresh pair.
func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	user, err := s.Users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	access, _, err := utils.GenerateToken(user.ID, utils.TokenAccess, s.secret, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, _, err := utils.GenerateToken(user.ID, utils.TokenRefresh, s.secret, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *AuthService) parseRefresh(ctx context.Context, token string) (*utils.Claims, error) {
	claims, err := utils.ParseToken(token, s.secret, utils.TokenRefresh)
	if err != nil {
		return nil, apperr.Unauthorized("token is invalid or expired")
	}
	revoked, err := s.Blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperr.Unauthorized("token is blacklisted")
	}
	return claims, nil
}

// Refresh issues a new access token from a live refresh token.
func (s *AuthService) Refresh(ctx context.Context, refresh string) (string, error) {
	claims, err := s.parseRefresh(ctx, refresh)
	if err != nil {
		return "", err
	}
	if _, err := s.Users.FindByID(claims.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.Unauthorized("user no longer exists")
		}
		return "", err
	}
	access, _, err := utils.GenerateToken(claims.UserID, utils.TokenAccess, s.secret, s.accessTTL)
	return access, err
}

// BlacklistToken revokes a refresh token until its expiry.
func (s *AuthService) BlacklistToken(ctx context.Context, refresh string) error {
	claims, err := s.parseRefresh(ctx, refresh)
	if err != nil {
		return err
	}
	if err := s.Blacklist.Revoke(ctx, claims.ID, claims.UserID, claims.ExpiresAt.Time); err != nil {
		return err
	}
	s.Log.WithField("userId", claims.UserID).Info("refresh token blacklisted")
	return nil
}

// Authenticate turns an access token into a Principal with roles read now.
func (s *AuthService) Authenticate(access string) (entity.Principal, error) {
	claims, err := utils.ParseToken(access, s.secret, utils.TokenAccess)
	if err != nil {
		return entity.Principal{}, apperr.Unauthorized("invalid token")
	}
	return s.Roles.Principal(claims.UserID)
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	u, err := s.Users.FindWithGroups(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}
