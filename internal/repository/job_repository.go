package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type JobRepository interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	Update(ctx context.Context, j job.Job) (job.Job, error)
	Deactivate(ctx context.Context, id, employerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]job.Job, error)
	// ListActive returns open postings, most recent first.
	ListActive(ctx context.Context, limit int) ([]job.Job, error)
}

const jobSelect = `SELECT j.id, j.employer_id, e.company_name, j.title, j.description, j.skills_required,
	j.location, j.salary_min, j.salary_max, j.job_type, j.created_at, j.expiry_date, j.is_active
	FROM jobs j
	JOIN employer_profiles e ON e.id = j.employer_id`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, employer_id, title, description, skills_required, location,
		                   salary_min, salary_max, job_type, expiry_date, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at`,
		j.ID, j.EmployerID, j.Title, j.Description, j.SkillsRequired, j.Location,
		j.SalaryMin, j.SalaryMax, string(j.JobType), j.ExpiryDate, j.IsActive,
	)
	if err := row.Scan(&j.CreatedAt); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs
		 SET title = $3, description = $4, skills_required = $5, location = $6,
		     salary_min = $7, salary_max = $8, job_type = $9, expiry_date = $10, is_active = $11
		 WHERE id = $1 AND employer_id = $2
		 RETURNING created_at`,
		j.ID, j.EmployerID, j.Title, j.Description, j.SkillsRequired, j.Location,
		j.SalaryMin, j.SalaryMax, string(j.JobType), j.ExpiryDate, j.IsActive,
	)
	if err := row.Scan(&j.CreatedAt); err != nil {
		if isNoRows(err) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Deactivate(ctx context.Context, id, employerID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `UPDATE jobs SET is_active = false WHERE id = $1 AND employer_id = $2`, id, employerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := scanJob(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, jobSelect+` WHERE j.employer_id = $1 ORDER BY j.created_at DESC, j.id ASC`, employerID)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, limit int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx,
		jobSelect+` WHERE j.is_active AND j.expiry_date >= CURRENT_DATE
		ORDER BY j.created_at DESC, j.id ASC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var jobType string
	if err := row.Scan(
		&j.ID, &j.EmployerID, &j.CompanyName, &j.Title, &j.Description, &j.SkillsRequired,
		&j.Location, &j.SalaryMin, &j.SalaryMax, &jobType, &j.CreatedAt, &j.ExpiryDate, &j.IsActive,
	); err != nil {
		return job.Job{}, err
	}
	j.JobType = job.Type(jobType)
	return j, nil
}
