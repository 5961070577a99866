package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nnreact/job-portal/api/http/presenter"
	"github.com/nnreact/job-portal/pkg/health"
)

const readyTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc     health.ReadinessUseCase
	started time.Time
}

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler {
	return &HealthHandler{svc: svc, started: time.Now()}
}

// Health godoc
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready godoc
// @Summary     Readiness probe
// @Description Pings postgres, redis and the scorer binary when they are configured.
// @Tags        health
// @Produce     json
// @Success     200 {object} health.Report
// @Failure     503 {object} health.Report
// @Router      /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()

	report, _ := h.svc.Ready(ctx)
	status := fiber.StatusOK
	if !report.Ready {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(report)
}
