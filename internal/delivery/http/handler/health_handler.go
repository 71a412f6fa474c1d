package handler

import (
	"context"
	"time"

	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and, on /ready, whether the database answers.
// The cache is reported but never fails readiness since it is optional.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{"status": "up"})
}

func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := map[string]string{"database": "up", "cache": "up"}
	status, msg := fiber.StatusOK, response.MessageOK

	if h.db == nil || h.db.Ping(ctx) != nil {
		data["database"] = "down"
		status, msg = fiber.StatusServiceUnavailable, "not ready"
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		data["cache"] = "down"
	}

	return response.Success(c, status, msg, data)
}
