package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nnreact/job-portal/api/http/presenter"
	"github.com/nnreact/job-portal/pkg/application"
	"github.com/nnreact/job-portal/pkg/security/jwt"
)

// ApplicationHandler serves the application workflow.
type ApplicationHandler struct {
	svc application.UseCase
	log zerolog.Logger
}

func NewApplicationHandler(svc application.UseCase, log zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: log}
}

type updateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Scores the caller's profile against the job skills and stores a pending application.
// @Tags         application
// @Produce      json
// @Param        id path string true "Job id"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} presenter.ErrorResponse
// @Failure      401 {object} presenter.ErrorResponse
// @Failure      404 {object} presenter.ErrorResponse
// @Router       /application/apply/{id} [post]
// @Security     CookieAuth
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	res, err := h.svc.Apply(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return respond(c, h.log, err)
	}
	body := fiber.Map{
		"message":     "Job applied successfully.",
		"application": res.Application,
	}
	if res.Note != "" {
		body["note"] = res.Note
	}
	return presenter.JSON(c, fiber.StatusCreated, body)
}

// Applied godoc
// @Summary  Applications of the caller, newest first
// @Tags     application
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /application/applied [get]
// @Security CookieAuth
func (h *ApplicationHandler) Applied(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, fiber.StatusUnauthorized, "User not authenticated")
	}
	apps, err := h.svc.ListApplied(c.UserContext(), userID)
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"application": apps})
}

// Applicants godoc
// @Summary      Applicants of a job
// @Description  Each application carries the applicant and their skills match percentage.
// @Tags         application
// @Produce      json
// @Param        id path string true "Job id"
// @Success      200 {object} map[string]interface{}
// @Failure      403 {object} presenter.ErrorResponse
// @Failure      404 {object} presenter.ErrorResponse
// @Router       /application/applicants/{id} [get]
// @Security     CookieAuth
func (h *ApplicationHandler) Applicants(c *fiber.Ctx) error {
	ja, err := h.svc.ListApplicants(c.UserContext(), c.Params("id"))
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"job": ja})
}

// UpdateStatus godoc
// @Summary  Move an application to accepted or rejected
// @Tags     application
// @Accept   json
// @Produce  json
// @Param    id   path string              true "Application id"
// @Param    body body updateStatusRequest true "New status"
// @Success  200 {object} presenter.MessageResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /application/status/{id}/update [post]
// @Security CookieAuth
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, fiber.StatusBadRequest, "Invalid request body.")
		}
	}
	if _, err := h.svc.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return respond(c, h.log, err)
	}
	return presenter.Message(c, fiber.StatusOK, "Status updated successfully.")
}
