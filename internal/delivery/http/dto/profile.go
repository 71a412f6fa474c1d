package dto

import (
	"time"

	"jobboard/internal/domain/profile"

	"github.com/google/uuid"
)

type SeekerProfileRequest struct {
	Phone    string `json:"phone" validate:"max=32"`
	Location string `json:"location" validate:"max=128"`
	Bio      string `json:"bio" validate:"max=4000"`
	// Skills is comma separated free text, e.g. "Python, React, SQL".
	Skills string `json:"skills" validate:"max=2000"`
}

type SeekerProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Bio       string    `json:"bio"`
	Skills    []string  `json:"skills"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSeekerProfileResponse(p profile.Seeker) SeekerProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return SeekerProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Phone:     p.Phone,
		Location:  p.Location,
		Bio:       p.Bio,
		Skills:    skills,
		UpdatedAt: p.UpdatedAt,
	}
}

type EmployerProfileRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Industry    string `json:"industry" validate:"max=100"`
	Website     string `json:"website" validate:"omitempty,url,max=255"`
	Description string `json:"description" validate:"max=4000"`
}

type EmployerProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewEmployerProfileResponse(p profile.Employer) EmployerProfileResponse {
	return EmployerProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		Industry:    p.Industry,
		Website:     p.Website,
		Description: p.Description,
		UpdatedAt:   p.UpdatedAt,
	}
}
