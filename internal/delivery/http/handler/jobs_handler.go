package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"
	ucjob "jobboard/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
)

const (
	defaultJobListLimit = 20
	maxJobListLimit     = 100
)

// JobsHandler serves the public listing of open postings.
type JobsHandler struct {
	catalog usecase.JobCatalogUsecase
}

func NewJobsHandler(catalog usecase.JobCatalogUsecase) *JobsHandler {
	return &JobsHandler{catalog: catalog}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListJobs)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", defaultJobListLimit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if limit <= 0 || limit > maxJobListLimit {
		return middleware.NewAppError(fiber.StatusBadRequest, "limit must be between 1 and 100", nil, nil)
	}

	var jobs []job.Job
	if q := c.Query("q"); q != "" {
		jobs, err = h.catalog.Search(c.Context(), q, limit)
	} else {
		jobs, err = h.catalog.Recent(c.Context(), limit)
	}
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.List(c, dto.NewJobResponses(jobs), len(jobs), limit)
}

// EmployerJobsHandler serves an employer's own postings.
type EmployerJobsHandler struct {
	uc usecase.JobPostingUsecase
}

func NewEmployerJobsHandler(uc usecase.JobPostingUsecase) *EmployerJobsHandler {
	return &EmployerJobsHandler{uc: uc}
}

func (h *EmployerJobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListOwn)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Deactivate)
}

func (h *EmployerJobsHandler) ListOwn(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	jobs, err := h.uc.ListOwn(c.Context(), userID)
	if err != nil {
		return mapJobPostingError(err)
	}
	return response.List(c, dto.NewJobResponses(jobs), len(jobs), 0)
}

func (h *EmployerJobsHandler) Create(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.uc.Create(c.Context(), userID, postingInput(req))
	if err != nil {
		return mapJobPostingError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobResponse(j))
}

func (h *EmployerJobsHandler) Update(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.uc.Update(c.Context(), userID, jobID, postingInput(req))
	if err != nil {
		return mapJobPostingError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *EmployerJobsHandler) Deactivate(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Deactivate(c.Context(), userID, jobID); err != nil {
		return mapJobPostingError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func postingInput(req dto.JobRequest) ucjob.PostingInput {
	return ucjob.PostingInput{
		Title:          req.Title,
		Description:    req.Description,
		SkillsRequired: req.SkillsRequired,
		Location:       req.Location,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		JobType:        req.JobType,
		ExpiryDate:     req.ExpiryDate,
		IsActive:       req.IsActive,
	}
}

func mapJobPostingError(err error) error {
	var fieldErr *ucjob.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", map[string]string{fieldErr.Field: fieldErr.Reason}, err)
	case errors.Is(err, usecase.ErrEmployerProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employer profile not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
