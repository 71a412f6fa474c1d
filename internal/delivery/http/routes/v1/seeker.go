package v1

import (
	"jobboard/internal/access"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func RegisterSeeker(r fiber.Router, profileHandler *handler.ProfileHandler, dashboardHandler *handler.DashboardHandler, policy access.Policy) {
	if r == nil {
		return
	}

	if profileHandler != nil {
		profileHandler.RegisterSeekerRoutes(r.Group("/profile", middleware.RequireCapability(policy, access.ManageSeekerProfile)))
	}
	if dashboardHandler != nil {
		dashboardHandler.RegisterRoutes(r.Group("", middleware.RequireCapability(policy, access.ViewRecommendations)))
	}
}
