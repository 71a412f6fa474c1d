package job

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jobdomain "jobboard/internal/domain/job"

	"github.com/google/uuid"
)

// DateLayout is the wire format of expiry dates.
const DateLayout = "2006-01-02"

var ErrInvalidPosting = errors.New("invalid job posting")

// FieldError names the posting field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidPosting
}

type PostingInput struct {
	Title          string
	Description    string
	SkillsRequired string
	Location       string
	SalaryMin      int
	SalaryMax      int
	JobType        string
	ExpiryDate     string
	IsActive       *bool
}

// Build validates in and produces a posting owned by employerID. A non-nil
// base is the stored posting being edited; its identity and creation time are
// kept. New postings may not expire before today.
func Build(employerID uuid.UUID, base *jobdomain.Job, in PostingInput, now time.Time) (jobdomain.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return jobdomain.Job{}, &FieldError{Field: "title", Reason: "required"}
	}

	jobType, ok := jobdomain.ParseType(in.JobType)
	if !ok {
		return jobdomain.Job{}, &FieldError{Field: "job_type", Reason: "must be one of full, part, remote, intern"}
	}

	if in.SalaryMin < 0 || in.SalaryMax < 0 {
		return jobdomain.Job{}, &FieldError{Field: "salary_min", Reason: "must not be negative"}
	}
	if in.SalaryMin > in.SalaryMax {
		return jobdomain.Job{}, &FieldError{Field: "salary_max", Reason: "must be greater than or equal to salary_min"}
	}

	expiry, err := time.Parse(DateLayout, strings.TrimSpace(in.ExpiryDate))
	if err != nil {
		return jobdomain.Job{}, &FieldError{Field: "expiry_date", Reason: "must be a YYYY-MM-DD date"}
	}

	out := jobdomain.Job{
		EmployerID:     employerID,
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		SkillsRequired: strings.TrimSpace(in.SkillsRequired),
		Location:       strings.TrimSpace(in.Location),
		SalaryMin:      in.SalaryMin,
		SalaryMax:      in.SalaryMax,
		JobType:        jobType,
		ExpiryDate:     expiry,
		IsActive:       true,
	}
	if in.IsActive != nil {
		out.IsActive = *in.IsActive
	}

	if base != nil {
		out.ID = base.ID
		out.CompanyName = base.CompanyName
		out.CreatedAt = base.CreatedAt
		return out, nil
	}

	y, m, d := now.UTC().Date()
	if expiry.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return jobdomain.Job{}, &FieldError{Field: "expiry_date", Reason: "must not be in the past"}
	}
	out.ID = uuid.New()
	return out, nil
}
