package dto

import (
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type JobRequest struct {
	Title          string `json:"title" validate:"required,max=200"`
	Description    string `json:"description" validate:"max=10000"`
	SkillsRequired string `json:"skills_required" validate:"max=2000"`
	Location       string `json:"location" validate:"max=128"`
	SalaryMin      int    `json:"salary_min" validate:"gte=0"`
	SalaryMax      int    `json:"salary_max" validate:"gte=0,gtefield=SalaryMin"`
	JobType        string `json:"job_type" validate:"required,oneof=full part remote intern"`
	ExpiryDate     string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	IsActive       *bool  `json:"is_active"`
}

type JobResponse struct {
	ID             uuid.UUID `json:"id"`
	EmployerID     uuid.UUID `json:"employer_id"`
	CompanyName    string    `json:"company_name"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	SkillsRequired string    `json:"skills_required"`
	Location       string    `json:"location"`
	SalaryMin      int       `json:"salary_min"`
	SalaryMax      int       `json:"salary_max"`
	JobType        string    `json:"job_type"`
	ExpiryDate     string    `json:"expiry_date"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		EmployerID:     j.EmployerID,
		CompanyName:    j.CompanyName,
		Title:          j.Title,
		Description:    j.Description,
		SkillsRequired: j.SkillsRequired,
		Location:       j.Location,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		JobType:        string(j.JobType),
		ExpiryDate:     j.ExpiryDate.UTC().Format(dateLayout),
		IsActive:       j.IsActive,
		CreatedAt:      j.CreatedAt,
	}
}

func NewJobResponses(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
