package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/config"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/repository"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

// AuthService coordinates registration, login and profile flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account. Duplicate emails conflict; the email
// is normalized to lowercase before any lookup or write.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)

	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" || input.Phone == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("all fields are required")
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already in use")
	} else if err != pgx.ErrNoRows {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password fail with the identical message so the response leaks
// nothing about which check tripped.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// GetByID returns the account for profile retrieval.
func (s *AuthService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware
// wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
