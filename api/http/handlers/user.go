package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nnreact/job-portal/api/http/presenter"
	"github.com/nnreact/job-portal/pkg/auth"
	"github.com/nnreact/job-portal/pkg/security/jwt"
)

// UserHandler serves account endpoints.
type UserHandler struct {
	svc          auth.UseCase
	log          zerolog.Logger
	cookieSecure bool
	maxUpload    int64
}

func NewUserHandler(svc auth.UseCase, log zerolog.Logger, cookieSecure bool, maxUpload int64) *UserHandler {
	return &UserHandler{svc: svc, log: log, cookieSecure: cookieSecure, maxUpload: maxUpload}
}

type registerRequest struct {
	Fullname    string `json:"fullname" form:"fullname"`
	Email       string `json:"email" form:"email"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	Password    string `json:"password" form:"password"`
	Role        string `json:"role" form:"role"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

type profileRequest struct {
	Fullname    string `json:"fullname" form:"fullname"`
	Email       string `json:"email" form:"email"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	Bio         string `json:"bio" form:"bio"`
	Skills      string `json:"skills" form:"skills"`
}

// Register godoc
// @Summary  Create an account
// @Tags     user
// @Accept   multipart/form-data
// @Produce  json
// @Param    fullname    formData string true  "Full name"
// @Param    email       formData string true  "Email"
// @Param    phoneNumber formData string true  "Phone number"
// @Param    password    formData string true  "Password"
// @Param    role        formData string true  "student or recruiter"
// @Param    file        formData file   false "Profile photo"
// @Success  201 {object} presenter.MessageResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /user/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, fiber.StatusBadRequest, "Something is missing")
	}
	photo, err := formFile(c, "file", h.maxUpload)
	if err != nil {
		return respond(c, h.log, err)
	}

	_, err = h.svc.Register(c.UserContext(), auth.RegisterInput{
		Fullname:    req.Fullname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        auth.Role(req.Role),
		Photo:       photo,
	})
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.Message(c, fiber.StatusCreated, "Account created successfully.")
}

// Login godoc
// @Summary  Log in and receive the auth cookie
// @Tags     user
// @Accept   json
// @Produce  json
// @Param    body body loginRequest true "Credentials"
// @Success  200 {object} map[string]interface{}
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /user/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, fiber.StatusBadRequest, "Something is missing")
	}

	sess, err := h.svc.Login(c.UserContext(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     auth.Role(req.Role),
	})
	if err != nil {
		return respond(c, h.log, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     jwt.CookieName,
		Value:    sess.Token.Value,
		Expires:  sess.Token.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Welcome back " + sess.User.Fullname,
		"user":    sess.User,
		"token":   sess.Token.Value,
	})
}

// Logout godoc
// @Summary  Clear the auth cookie and revoke the token
// @Tags     user
// @Produce  json
// @Success  200 {object} presenter.MessageResponse
// @Router   /user/logout [get]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	if token := jwt.TokenFromRequest(c); token != "" {
		if err := h.svc.Logout(c.UserContext(), token); err != nil {
			// the cookie is cleared regardless
			h.log.Warn().Err(err).Msg("token revocation failed")
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     jwt.CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return presenter.Message(c, fiber.StatusOK, "Logged out successfully.")
}

// UpdateProfile godoc
// @Summary  Update the caller's profile
// @Tags     user
// @Accept   multipart/form-data
// @Produce  json
// @Param    fullname    formData string false "Full name"
// @Param    email       formData string false "Email"
// @Param    phoneNumber formData string false "Phone number"
// @Param    bio         formData string false "Bio"
// @Param    skills      formData string false "Comma separated skills"
// @Param    file        formData file   false "Resume (pdf, docx) or photo"
// @Success  200 {object} map[string]interface{}
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /user/profile/update [post]
// @Security CookieAuth
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, fiber.StatusUnauthorized, "User not authenticated")
	}
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	file, err := formFile(c, "file", h.maxUpload)
	if err != nil {
		return respond(c, h.log, err)
	}

	user, err := h.svc.UpdateProfile(c.UserContext(), userID, auth.ProfileUpdate{
		Fullname:    req.Fullname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		Skills:      req.Skills,
		File:        file,
	})
	if err != nil {
		return respond(c, h.log, err)
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Profile updated successfully.",
		"user":    user,
	})
}
