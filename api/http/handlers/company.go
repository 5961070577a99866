package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nnreact/job-portal/api/http/presenter"
	"github.com/nnreact/job-portal/pkg/company"
	"github.com/nnreact/job-portal/pkg/security/jwt"
)

type CompanyHandler struct {
	svc       company.UseCase
	log       zerolog.Logger
	maxUpload int64
}

func NewCompanyHandler(svc company.UseCase, log zerolog.Logger, maxUpload int64) *CompanyHandler {
	return &CompanyHandler{svc: svc, log: log, maxUpload: maxUpload}
}

type registerCompanyRequest struct {
	CompanyName string `json:"companyName" form:"companyName"`
}

type updateCompanyRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Website     string `json:"website" form:"website"`
	Location    string `json:"location" form:"location"`
}

// Register godoc
// @Summary  Register a company owned by the caller
// @Tags     company
// @Accept   json
// @Produce  json
// @Param    body body registerCompanyRequest true "Company name"
// @Success  201 {object} map[string]interface{}
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Router   /company/register [post]
// @Security CookieAuth
func (h *CompanyHandler) Register(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, fiber.StatusUnauthorized, "User not authenticated")
	}
	var req registerCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, fiber.StatusBadRequest, "Company name is required.")
	}

	co, err := h.svc.Register(c.UserContext(), userID, req.CompanyName)
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.JSON(c, fiber.StatusCreated, fiber.Map{
		"message": "Company registered successfully.",
		"company": co,
	})
}

// List godoc
// @Summary  Companies owned by the caller
// @Tags     company
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Router   /company/get [get]
// @Security CookieAuth
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, fiber.StatusUnauthorized, "User not authenticated")
	}
	companies, err := h.svc.List(c.UserContext(), userID)
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"companies": companies})
}

// Get godoc
// @Summary  Company by id
// @Tags     company
// @Produce  json
// @Param    id path string true "Company id"
// @Success  200 {object} map[string]interface{}
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /company/get/{id} [get]
// @Security CookieAuth
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respond(c, h.log, company.ErrCompanyNotFound)
	}
	co, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"company": co})
}

// Update godoc
// @Summary  Update a company owned by the caller
// @Tags     company
// @Accept   multipart/form-data
// @Produce  json
// @Param    id          path     string true  "Company id"
// @Param    name        formData string false "Name"
// @Param    description formData string false "Description"
// @Param    website     formData string false "Website URL"
// @Param    location    formData string false "Location"
// @Param    file        formData file   false "Logo image"
// @Success  200 {object} map[string]interface{}
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /company/update/{id} [put]
// @Security CookieAuth
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, fiber.StatusUnauthorized, "User not authenticated")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respond(c, h.log, company.ErrCompanyNotFound)
	}
	var req updateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	logo, err := formFile(c, "file", h.maxUpload)
	if err != nil {
		return respond(c, h.log, err)
	}

	co, err := h.svc.Update(c.UserContext(), userID, id, company.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		Logo:        logo,
	})
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Company information updated.",
		"company": co,
	})
}
