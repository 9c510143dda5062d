package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rma-service/internal/persistence"
)

// HealthHandler reports process and dependency health.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
}

// NewHealthHandler constructs handler.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		postgres:    postgres,
		redis:       redis,
	}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready handles GET /health/ready, pinging each dependency. Redis is a best
// effort cache so its failure degrades the report without failing it.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	checks := fiber.Map{}
	status := fiber.StatusOK

	if err := h.postgres.Ping(c.Context()); err != nil {
		checks["postgres"] = err.Error()
		status = fiber.StatusServiceUnavailable
	} else {
		checks["postgres"] = "ok"
	}

	if err := h.redis.Ping(c.Context()); err != nil {
		checks["redis"] = "degraded: " + err.Error()
	} else {
		checks["redis"] = "ok"
	}

	body := fiber.Map{
		"status":  "ok",
		"service": h.serviceName,
		"version": h.version,
		"checks":  checks,
	}
	if status != fiber.StatusOK {
		body["status"] = "unavailable"
	}
	return c.Status(status).JSON(body)
}
