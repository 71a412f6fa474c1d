package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"
	ucjob "jobboard/internal/usecase/job"

	"github.com/google/uuid"
)

type JobPostingUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, in ucjob.PostingInput) (job.Job, error)
	Update(ctx context.Context, userID, jobID uuid.UUID, in ucjob.PostingInput) (job.Job, error)
	Deactivate(ctx context.Context, userID, jobID uuid.UUID) error
	ListOwn(ctx context.Context, userID uuid.UUID) ([]job.Job, error)
}

// JobEventNotifier pushes posting changes to connected clients.
type JobEventNotifier interface {
	NotifyJobPosted(j job.Job)
	NotifyJobUpdated(j job.Job)
}

type JobPosting struct {
	jobs      repository.JobRepository
	employers repository.EmployerProfileRepository
	catalog   catalogInvalidator
	notifier  JobEventNotifier
	logger    *log.Logger

	now func() time.Time
}

func NewJobPostingUsecase(jobs repository.JobRepository, employers repository.EmployerProfileRepository, catalog catalogInvalidator, notifier JobEventNotifier, logger *log.Logger) *JobPosting {
	return &JobPosting{jobs: jobs, employers: employers, catalog: catalog, notifier: notifier, logger: logger, now: time.Now}
}

func (u *JobPosting) Create(ctx context.Context, userID uuid.UUID, in ucjob.PostingInput) (job.Job, error) {
	emp, err := u.employerFor(ctx, userID)
	if err != nil {
		return job.Job{}, err
	}

	j, err := ucjob.Build(emp.ID, nil, in, u.now())
	if err != nil {
		return job.Job{}, err
	}
	j.CompanyName = emp.CompanyName

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		u.logf("[Jobs] create failed employer_id=%s err=%v", emp.ID, err)
		return job.Job{}, ErrInternal
	}
	created.CompanyName = emp.CompanyName

	u.changed(ctx)
	if u.notifier != nil {
		u.notifier.NotifyJobPosted(created)
	}
	u.logf("[Jobs] created job_id=%s employer_id=%s", created.ID, emp.ID)
	return created, nil
}

func (u *JobPosting) Update(ctx context.Context, userID, jobID uuid.UUID, in ucjob.PostingInput) (job.Job, error) {
	emp, err := u.employerFor(ctx, userID)
	if err != nil {
		return job.Job{}, err
	}

	existing, err := u.ownedJob(ctx, emp.ID, jobID)
	if err != nil {
		return job.Job{}, err
	}

	j, err := ucjob.Build(emp.ID, &existing, in, u.now())
	if err != nil {
		return job.Job{}, err
	}

	updated, err := u.jobs.Update(ctx, j)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		u.logf("[Jobs] update failed job_id=%s err=%v", jobID, err)
		return job.Job{}, ErrInternal
	}
	updated.CompanyName = emp.CompanyName

	u.changed(ctx)
	if u.notifier != nil {
		u.notifier.NotifyJobUpdated(updated)
	}
	return updated, nil
}

func (u *JobPosting) Deactivate(ctx context.Context, userID, jobID uuid.UUID) error {
	emp, err := u.employerFor(ctx, userID)
	if err != nil {
		return err
	}

	if err := u.jobs.Deactivate(ctx, jobID, emp.ID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		u.logf("[Jobs] deactivate failed job_id=%s err=%v", jobID, err)
		return ErrInternal
	}

	u.changed(ctx)
	if u.notifier != nil {
		u.notifier.NotifyJobUpdated(job.Job{ID: jobID, EmployerID: emp.ID, CompanyName: emp.CompanyName})
	}
	return nil
}

func (u *JobPosting) ListOwn(ctx context.Context, userID uuid.UUID) ([]job.Job, error) {
	emp, err := u.employerFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	jobs, err := u.jobs.ListByEmployer(ctx, emp.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *JobPosting) employerFor(ctx context.Context, userID uuid.UUID) (employer, error) {
	p, err := u.employers.FindEmployerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return employer{}, ErrEmployerProfileNotFound
		}
		return employer{}, ErrInternal
	}
	return employer{ID: p.ID, CompanyName: p.CompanyName}, nil
}

// ownedJob hides postings of other employers behind ErrJobNotFound.
func (u *JobPosting) ownedJob(ctx context.Context, employerID, jobID uuid.UUID) (job.Job, error) {
	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.EmployerID != employerID {
		return job.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobPosting) changed(ctx context.Context) {
	if u.catalog != nil {
		u.catalog.Invalidate(ctx)
	}
}

func (u *JobPosting) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

type employer struct {
	ID          uuid.UUID
	CompanyName string
}
