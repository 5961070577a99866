package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/nnreact/job-portal/api/http/handlers"
	"github.com/nnreact/job-portal/pkg/auth"
	"github.com/nnreact/job-portal/pkg/media"
	"github.com/nnreact/job-portal/pkg/security/jwt"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	User        *handlers.UserHandler
	Company     *handlers.CompanyHandler
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler
	Health      *handlers.HealthHandler
}

// Register wires all HTTP routes onto given Fiber app. authn rejects
// unauthenticated requests; uploadDir is served under media.RoutePrefix.
func Register(app *fiber.App, h Handlers, authn fiber.Handler, uploadDir string) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	if uploadDir != "" {
		app.Static(media.RoutePrefix, uploadDir, fiber.Static{Browse: false})
	}

	v1 := app.Group("/api").Group("/v1")
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	recruiter := jwt.RequireRole(auth.RoleRecruiter)

	u := v1.Group("/user")
	u.Post("/register", h.User.Register)
	u.Post("/login", h.User.Login)
	u.Get("/logout", h.User.Logout)
	u.Post("/profile/update", authn, h.User.UpdateProfile)

	co := v1.Group("/company", authn)
	co.Post("/register", recruiter, h.Company.Register)
	co.Get("/get", h.Company.List)
	co.Get("/get/:id", h.Company.Get)
	co.Put("/update/:id", recruiter, h.Company.Update)

	j := v1.Group("/job")
	j.Post("/post", authn, recruiter, h.Job.Post)
	j.Get("/get", h.Job.List)
	j.Get("/get/:id", h.Job.Get)
	j.Get("/getadminjobs", authn, recruiter, h.Job.ListAdmin)

	a := v1.Group("/application", authn)
	a.Post("/apply/:id?", h.Application.Apply)
	a.Get("/applied", h.Application.Applied)
	a.Get("/applicants/:id", recruiter, h.Application.Applicants)
	a.Post("/status/:id/update", recruiter, h.Application.UpdateStatus)
}
