package handlers

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rma-service/internal/service"
	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

// AuthHandler exchanges basic credentials for an access token.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles GET /api/auth. Desk clients send HTTP Basic credentials and
// hold on to the returned token for 24 hours.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username, password, ok := basicCredentials(c)
	if !ok {
		c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Login Required"`)
		return apperrors.NewUnauthorized("could not verify")
	}

	token, expiresAt, err := h.auth.Login(c.Context(), username, password)
	if err != nil {
		c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Login Required"`)
		return err
	}

	return c.JSON(fiber.Map{
		"message":    "authenticated",
		"token":      token,
		"expires_at": expiresAt,
	})
}

func basicCredentials(c *fiber.Ctx) (string, string, bool) {
	const prefix = "Basic "
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok || username == "" || password == "" {
		return "", "", false
	}
	return username, password, true
}
