package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rma-service/internal/api/dto"
	"github.com/spec-kit/rma-service/internal/domain"
	"github.com/spec-kit/rma-service/internal/service"
	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

// UsersHandler exposes admin-only staff account management.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// List handles GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "ok",
		"users":   dto.NewUserResponses(users),
	})
}

// Create handles POST /api/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	user, err := h.auth.CreateUser(c.Context(), service.UserCreateInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "new user created",
		"user":    dto.NewUserResponse(user),
	})
}

// Get handles GET /api/users/:public_id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.auth.GetUser(c.Context(), c.Params("public_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "ok",
		"user":    dto.NewUserResponse(user),
	})
}

// Update handles PUT /api/users/:public_id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	input := service.UserUpdateInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.auth.UpdateUser(c.Context(), c.Params("public_id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "user modified successfully",
		"user":    dto.NewUserResponse(user),
	})
}

// Delete handles DELETE /api/users/:public_id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.auth.DeleteUser(c.Context(), c.Params("public_id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "user deleted successfully"})
}
