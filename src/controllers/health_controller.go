package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger is satisfied by *database.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController รายงานสถานะของ API และ MongoDB
type HealthController struct {
	DB Pinger
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthController) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "mongo": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
