package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nnreact/job-portal/api/http/presenter"
	"github.com/nnreact/job-portal/pkg/job"
	"github.com/nnreact/job-portal/pkg/security/jwt"
)

type JobHandler struct {
	svc job.UseCase
	log zerolog.Logger
}

func NewJobHandler(svc job.UseCase, log zerolog.Logger) *JobHandler {
	return &JobHandler{svc: svc, log: log}
}

// number accepts both 42 and "42", as form-backed clients send strings.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = number(v)
	return nil
}

type postJobRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Requirements    string `json:"requirements"`
	Skills          string `json:"skills"`
	Salary          number `json:"salary" swaggertype:"number"`
	Location        string `json:"location"`
	JobType         string `json:"jobType"`
	ExperienceLevel number `json:"experience" swaggertype:"integer"`
	Position        number `json:"position" swaggertype:"integer"`
	CompanyID       string `json:"companyId"`
}

// Post godoc
// @Summary  Post a job
// @Tags     job
// @Accept   json
// @Produce  json
// @Param    body body postJobRequest true "Job"
// @Success  201 {object} map[string]interface{}
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /job/post [post]
// @Security CookieAuth
func (h *JobHandler) Post(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, fiber.StatusUnauthorized, "User not authenticated")
	}
	var req postJobRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return presenter.Error(c, fiber.StatusBadRequest, "Something is missing.")
	}

	j, err := h.svc.Post(c.UserContext(), userID, job.PostInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Skills:          req.Skills,
		Salary:          float64(req.Salary),
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: int(req.ExperienceLevel),
		Position:        int(req.Position),
		CompanyID:       req.CompanyID,
	})
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.JSON(c, fiber.StatusCreated, fiber.Map{
		"message": "New job created successfully.",
		"job":     j,
	})
}

// List godoc
// @Summary  Search jobs
// @Tags     job
// @Produce  json
// @Param    keyword query string false "Matches title or description"
// @Success  200 {object} map[string]interface{}
// @Router   /job/get [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.svc.List(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"jobs": jobs})
}

// Get godoc
// @Summary  Job by id
// @Tags     job
// @Produce  json
// @Param    id path string true "Job id"
// @Success  200 {object} map[string]interface{}
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /job/get/{id} [get]
func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respond(c, h.log, job.ErrJobNotFound)
	}
	j, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"job": j})
}

// ListAdmin godoc
// @Summary  Jobs posted by the caller
// @Tags     job
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Router   /job/getadminjobs [get]
// @Security CookieAuth
func (h *JobHandler) ListAdmin(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, fiber.StatusUnauthorized, "User not authenticated")
	}
	jobs, err := h.svc.ListByCreator(c.UserContext(), userID)
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"jobs": jobs})
}
