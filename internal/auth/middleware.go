package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/rma-service/internal/domain"
	"github.com/spec-kit/rma-service/internal/repository"
	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

const principalKey = "auth_principal"

// AuthMiddleware validates access tokens and loads the calling user.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. The token travels in
// the legacy X-Access-Token header or an Authorization: Bearer header.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := extractToken(c)
	if token == "" {
		return apperrors.NewUnauthorized("token is missing")
	}

	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return apperrors.NewUnauthorized("token is invalid")
	}

	user, err := m.users.GetByPublicID(c.Context(), claims.PublicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("token is invalid")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, user)
	return c.Next()
}

func extractToken(c *fiber.Ctx) string {
	if token := c.Get("X-Access-Token"); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// CurrentUser retrieves the authenticated user placed by Handle.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
