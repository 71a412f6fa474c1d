package app

import (
	"context"
	"fmt"
	"strings"

	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New wires the HTTP surface over an already built container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and the app and starts the websocket hub.
// The returned cleanup stops the hub and releases connections.
func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	app := New(c)

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	// Access log wraps the error middleware so it sees the final status.
	accessLog := middleware.NewAccessLogMiddleware(c.Logger, c.Metrics)
	app.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware(c.Logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	api := v1.Handlers{
		Auth:         handler.NewAuthHandler(c.Auth),
		User:         handler.NewUserHandler(c.User),
		Profile:      handler.NewProfileHandler(c.Profile),
		Jobs:         handler.NewJobsHandler(c.Catalog),
		Skills:       handler.NewSkillsHandler(c.SkillSuggest),
		EmployerJobs: handler.NewEmployerJobsHandler(c.Postings),
		Dashboard:    handler.NewDashboardHandler(c.Dashboard),
		AuthLimiter:  middleware.NewRateLimiter(c.Config.RateLimit.AuthPerMinute, c.Config.RateLimit.AuthBurst, c.Logger),
	}

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		c.Metrics.Handler(),
		ws.NewHandler(c.Hub, c.Logger),
		api,
		middleware.NewAuthMiddleware(c.JWT),
		c.Policy,
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
