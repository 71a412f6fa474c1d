package v1

import (
	"jobboard/internal/access"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func RegisterEmployer(r fiber.Router, profileHandler *handler.ProfileHandler, jobsHandler *handler.EmployerJobsHandler, policy access.Policy) {
	if r == nil {
		return
	}

	if profileHandler != nil {
		profileHandler.RegisterEmployerRoutes(r.Group("/profile", middleware.RequireCapability(policy, access.ManageEmployerProfile)))
	}
	if jobsHandler != nil {
		jobsHandler.RegisterRoutes(r.Group("/jobs", middleware.RequireCapability(policy, access.PostJobs)))
	}
}
