package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nnreact/job-portal/api/http/presenter"
	"github.com/nnreact/job-portal/pkg/application"
	"github.com/nnreact/job-portal/pkg/auth"
	"github.com/nnreact/job-portal/pkg/company"
	"github.com/nnreact/job-portal/pkg/job"
	"github.com/nnreact/job-portal/pkg/media"
	"github.com/nnreact/job-portal/pkg/validation"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

// Order matters: wrapped errors match the first entry they satisfy.
var errorMappings = []errorMapping{
	{application.ErrJobIDRequired, http.StatusBadRequest, "Job id is required."},
	{application.ErrAlreadyApplied, http.StatusBadRequest, "You have already applied for this job"},
	{application.ErrProfileIncomplete, http.StatusBadRequest, "Please complete your profile with resume and skills before applying"},
	{application.ErrStatusRequired, http.StatusBadRequest, "status is required"},
	{application.ErrInvalidStatus, http.StatusBadRequest, "Invalid status. Allowed: pending, accepted, rejected."},
	{application.ErrInvalidTransition, http.StatusBadRequest, "Status can only change from pending to accepted or rejected."},
	{application.ErrApplicationNotFound, http.StatusNotFound, "Application not found."},
	{job.ErrJobNotFound, http.StatusNotFound, "Job not found."},
	{job.ErrMissingFields, http.StatusBadRequest, "Something is missing."},
	{auth.ErrUserNotFound, http.StatusNotFound, "User not found."},
	{auth.ErrMissingFields, http.StatusBadRequest, "Something is missing"},
	{auth.ErrUserAlreadyExists, http.StatusBadRequest, "User already exist with this email."},
	{auth.ErrInvalidCredentials, http.StatusBadRequest, "Incorrect email or password."},
	{auth.ErrRoleMismatch, http.StatusBadRequest, "Account doesn't exist with current role."},
	{auth.ErrUploadFailed, http.StatusBadRequest, "File upload failed"},
	{company.ErrCompanyExists, http.StatusBadRequest, "You can't register same company."},
	{company.ErrNameRequired, http.StatusBadRequest, "Company name is required."},
	{company.ErrCompanyNotFound, http.StatusNotFound, "Company not found."},
	{media.ErrUnsupportedType, http.StatusBadRequest, "Unsupported file type."},
	{media.ErrEmptyFile, http.StatusBadRequest, "File is empty."},
}

// respond writes the error response for err. Unknown errors are logged and
// reported as a generic 500.
func respond(c *fiber.Ctx, log zerolog.Logger, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return presenter.Error(c, m.status, m.message)
		}
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return presenter.ValidationError(c, "Invalid input.", verrs)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return presenter.Error(c, fe.Code, fe.Message)
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Interface("request_id", c.Locals("requestid")).
		Msg("unhandled error")
	return presenter.Error(c, http.StatusInternalServerError, "Internal server error")
}

// ErrorHandler is the fiber.Config ErrorHandler: errors returned by handlers
// and middleware, including recovered panics, get the common body shape.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return respond(c, log, err)
	}
}
