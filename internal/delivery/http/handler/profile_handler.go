package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterSeekerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetSeekerProfile)
	r.Put("/", h.PutSeekerProfile)
}

func (h *ProfileHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetEmployerProfile)
	r.Put("/", h.PutEmployerProfile)
}

func (h *ProfileHandler) GetSeekerProfile(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	p, ok, err := h.uc.SeekerProfileFor(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Seeker profile not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSeekerProfileResponse(p))
}

func (h *ProfileHandler) PutSeekerProfile(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.SeekerProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.UpsertSeekerProfile(c.Context(), userID, usecase.SeekerProfileInput{
		Phone:    req.Phone,
		Location: req.Location,
		Bio:      req.Bio,
		Skills:   req.Skills,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSeekerProfileResponse(p))
}

func (h *ProfileHandler) GetEmployerProfile(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	p, ok, err := h.uc.EmployerProfileFor(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Employer profile not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEmployerProfileResponse(p))
}

func (h *ProfileHandler) PutEmployerProfile(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.EmployerProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.UpsertEmployerProfile(c.Context(), userID, usecase.EmployerProfileInput{
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Website:     req.Website,
		Description: req.Description,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEmployerProfileResponse(p))
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
