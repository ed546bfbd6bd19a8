package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/botivate/troubleshoot/pkg/health"
)

// HealthHandler serves liveness and per-dependency readiness.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Ready reports every dependency check; any failure makes the service unready.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} health.Report
// @Failure 503 {object} health.Report
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	rep := h.svc.Report(ctx)
	status := fiber.StatusOK
	if !rep.Ready {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(rep)
}
