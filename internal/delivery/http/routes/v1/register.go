package v1

import (
	"jobboard/internal/access"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups everything mounted under /api/v1.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Profile      *handler.ProfileHandler
	Jobs         *handler.JobsHandler
	Skills       *handler.SkillsHandler
	EmployerJobs *handler.EmployerJobsHandler
	Dashboard    *handler.DashboardHandler

	// AuthLimiter throttles the unauthenticated /auth endpoints; nil disables it.
	AuthLimiter *middleware.RateLimiter
}

func Register(r fiber.Router, h Handlers, authMw *middleware.AuthMiddleware, policy access.Policy) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth", h.AuthLimiter.Middleware()))
	}
	RegisterJobs(r.Group("/jobs"), h.Jobs)
	if h.Skills != nil {
		h.Skills.RegisterRoutes(r.Group("/skills"))
	}

	protected := r.Group("", authMw.Middleware())
	if h.User != nil {
		h.User.RegisterRoutes(protected.Group("/users"))
	}

	RegisterSeeker(protected.Group("/seeker"), h.Profile, h.Dashboard, policy)
	RegisterEmployer(protected.Group("/employer"), h.Profile, h.EmployerJobs, policy)
}
