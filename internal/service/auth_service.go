package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/rma-service/internal/auth"
	"github.com/spec-kit/rma-service/internal/config"
	"github.com/spec-kit/rma-service/internal/domain"
	"github.com/spec-kit/rma-service/internal/repository"
	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

// AuthService coordinates login and staff account management.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login verifies basic credentials and mints an access token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized("could not verify")
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("could not verify")
	}
	return s.tokenMgr.GenerateToken(user.PublicID)
}

// UserCreateInput describes a new staff account.
type UserCreateInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      domain.Role
}

// UserUpdateInput carries partial edits; nil means leave the field alone.
type UserUpdateInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
	Role      *domain.Role
}

// CreateUser registers a staff account with a fresh public id.
func (s *AuthService) CreateUser(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleStaff
	}
	if role != domain.RoleAdmin && role != domain.RoleStaff {
		return nil, apperrors.NewValidationError("role must be admin or staff", map[string]any{"field": "role"})
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		PublicID:     uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("user already exists", nil)
		}
		return nil, err
	}
	return user, nil
}

// GetUser fetches a user by public id.
func (s *AuthService) GetUser(ctx context.Context, publicID string) (*domain.User, error) {
	user, err := s.users.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns every staff account.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// UpdateUser applies partial edits to an account.
func (s *AuthService) UpdateUser(ctx context.Context, publicID string, input UserUpdateInput) (*domain.User, error) {
	user, err := s.GetUser(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Role != nil {
		if *input.Role != domain.RoleAdmin && *input.Role != domain.RoleStaff {
			return nil, apperrors.NewValidationError("role must be admin or staff", map[string]any{"field": "role"})
		}
		user.Role = *input.Role
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("user already exists", nil)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account; deleting an absent one is an error, not a
// silent success.
func (s *AuthService) DeleteUser(ctx context.Context, publicID string) error {
	if err := s.users.Delete(ctx, publicID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	return nil
}
