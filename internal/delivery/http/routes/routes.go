package routes

import (
	"net/http"

	"jobboard/internal/access"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	health  *handler.HealthHandler
	metrics http.Handler
	ws      *ws.Handler
	v1      v1.Handlers
	authMw  *middleware.AuthMiddleware
	policy  access.Policy
}

func NewRegistry(health *handler.HealthHandler, metrics http.Handler, wsHandler *ws.Handler, api v1.Handlers, authMw *middleware.AuthMiddleware, policy access.Policy) *Registry {
	return &Registry{health: health, metrics: metrics, ws: wsHandler, v1: api, authMw: authMw, policy: policy}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerMetrics(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerMetrics(app *fiber.App) {
	if r.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.metrics))
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws != nil {
		r.ws.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.v1, r.authMw, r.policy)
}
