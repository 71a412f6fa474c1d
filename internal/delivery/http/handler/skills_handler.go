package handler

import (
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillsHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillsHandler(uc usecase.SkillUsecase) *SkillsHandler {
	return &SkillsHandler{uc: uc}
}

func (h *SkillsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Suggest)
}

// Suggest serves GET /skills?prefix=py&limit=10 for skill autocompletion.
func (h *SkillsHandler) Suggest(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 10)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	names, err := h.uc.Suggest(c.Context(), c.Query("prefix"), limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.List(c, names, len(names), limit)
}
