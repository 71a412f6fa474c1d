package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"jobboard/internal/domain/profile"
	"jobboard/internal/domain/recommend"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type SeekerProfileInput struct {
	Phone    string
	Location string
	Bio      string
	// Skills is free text such as "Python, React, SQL".
	Skills string
}

type EmployerProfileInput struct {
	CompanyName string
	Industry    string
	Website     string
	Description string
}

type ProfileUsecase interface {
	SeekerProfileFor(ctx context.Context, userID uuid.UUID) (profile.Seeker, bool, error)
	UpsertSeekerProfile(ctx context.Context, userID uuid.UUID, in SeekerProfileInput) (profile.Seeker, error)
	EmployerProfileFor(ctx context.Context, userID uuid.UUID) (profile.Employer, bool, error)
	UpsertEmployerProfile(ctx context.Context, userID uuid.UUID, in EmployerProfileInput) (profile.Employer, error)
}

type catalogInvalidator interface {
	Invalidate(ctx context.Context)
}

type Profile struct {
	seekers   repository.SeekerProfileRepository
	employers repository.EmployerProfileRepository
	catalog   catalogInvalidator
	logger    *log.Logger
}

func NewProfileUsecase(seekers repository.SeekerProfileRepository, employers repository.EmployerProfileRepository, catalog catalogInvalidator, logger *log.Logger) *Profile {
	return &Profile{seekers: seekers, employers: employers, catalog: catalog, logger: logger}
}

func (u *Profile) SeekerProfileFor(ctx context.Context, userID uuid.UUID) (profile.Seeker, bool, error) {
	p, err := u.seekers.FindSeekerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Seeker{}, false, nil
		}
		return profile.Seeker{}, false, ErrInternal
	}
	return p, true, nil
}

// UpsertSeekerProfile stores the profile and replaces the seeker's skills with
// the normalized, deduplicated tokens of in.Skills.
func (u *Profile) UpsertSeekerProfile(ctx context.Context, userID uuid.UUID, in SeekerProfileInput) (profile.Seeker, error) {
	if userID == uuid.Nil {
		return profile.Seeker{}, ErrUnauthorized
	}

	skills := recommend.ParseSkills(in.Skills).Sorted()
	p := profile.Seeker{
		UserID:   userID,
		Phone:    strings.TrimSpace(in.Phone),
		Location: strings.TrimSpace(in.Location),
		Bio:      strings.TrimSpace(in.Bio),
	}

	saved, err := u.seekers.UpsertSeeker(ctx, p, skills)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Profile] seeker upsert failed user_id=%s err=%v", userID, err)
		}
		return profile.Seeker{}, ErrInternal
	}
	return saved, nil
}

func (u *Profile) EmployerProfileFor(ctx context.Context, userID uuid.UUID) (profile.Employer, bool, error) {
	p, err := u.employers.FindEmployerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Employer{}, false, nil
		}
		return profile.Employer{}, false, ErrInternal
	}
	return p, true, nil
}

func (u *Profile) UpsertEmployerProfile(ctx context.Context, userID uuid.UUID, in EmployerProfileInput) (profile.Employer, error) {
	if userID == uuid.Nil {
		return profile.Employer{}, ErrUnauthorized
	}
	company := strings.TrimSpace(in.CompanyName)
	if company == "" {
		return profile.Employer{}, ErrInvalidInput
	}

	saved, err := u.employers.UpsertEmployer(ctx, profile.Employer{
		UserID:      userID,
		CompanyName: company,
		Industry:    strings.TrimSpace(in.Industry),
		Website:     strings.TrimSpace(in.Website),
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Profile] employer upsert failed user_id=%s err=%v", userID, err)
		}
		return profile.Employer{}, ErrInternal
	}

	// Cached postings carry the company name.
	if u.catalog != nil {
		u.catalog.Invalidate(ctx)
	}
	return saved, nil
}
