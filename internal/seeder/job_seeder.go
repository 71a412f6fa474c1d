package seeder

import (
	"context"
	"fmt"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/repository"
	ucjob "jobboard/internal/usecase/job"

	"github.com/google/uuid"
)

type demoJob struct {
	EmployerEmail  string
	Title          string
	Description    string
	SkillsRequired string
	Location       string
	SalaryMin      int
	SalaryMax      int
	JobType        string
}

var demoJobs = []demoJob{
	{
		EmployerEmail:  "hiring@acme.example",
		Title:          "Backend Engineer (Go)",
		Description:    "Build and maintain Go services, REST APIs and PostgreSQL-backed systems.",
		SkillsRequired: "Go, PostgreSQL, REST, Docker",
		Location:       "Jakarta, ID",
		SalaryMin:      15000000,
		SalaryMax:      25000000,
		JobType:        "full",
	},
	{
		EmployerEmail:  "hiring@acme.example",
		Title:          "Fullstack Engineer (React + Go)",
		Description:    "Develop web apps with React and TypeScript on top of Go services.",
		SkillsRequired: "React, TypeScript, Go, SQL",
		Location:       "Bandung, ID",
		SalaryMin:      14000000,
		SalaryMax:      22000000,
		JobType:        "full",
	},
	{
		EmployerEmail:  "hiring@acme.example",
		Title:          "Frontend Intern",
		Description:    "Ship UI components with mentoring from senior engineers.",
		SkillsRequired: "HTML, CSS, JavaScript",
		Location:       "Jakarta, ID",
		SalaryMin:      3000000,
		SalaryMax:      4500000,
		JobType:        "intern",
	},
	{
		EmployerEmail:  "jobs@cloudkita.example",
		Title:          "DevOps Engineer",
		Description:    "Operate CI/CD, Docker, Kubernetes and cloud infrastructure for production workloads.",
		SkillsRequired: "Docker, Kubernetes, Terraform, Linux, CI/CD",
		Location:       "Remote",
		SalaryMin:      18000000,
		SalaryMax:      30000000,
		JobType:        "remote",
	},
	{
		EmployerEmail:  "jobs@cloudkita.example",
		Title:          "Site Reliability Engineer",
		Description:    "Own observability and incident response for the managed platform.",
		SkillsRequired: "Go, Prometheus, Kubernetes, Linux",
		Location:       "Remote",
		SalaryMin:      20000000,
		SalaryMax:      32000000,
		JobType:        "remote",
	},
	{
		EmployerEmail:  "talent@insightworks.example",
		Title:          "Data Engineer",
		Description:    "Build data pipelines, manage warehouses and tune PostgreSQL for analytics.",
		SkillsRequired: "Python, SQL, Airflow, PostgreSQL",
		Location:       "Surabaya, ID",
		SalaryMin:      16000000,
		SalaryMax:      26000000,
		JobType:        "full",
	},
	{
		EmployerEmail:  "talent@insightworks.example",
		Title:          "Part-time Data Analyst",
		Description:    "Prepare weekly dashboards and ad hoc SQL reports.",
		SkillsRequired: "SQL, Excel, Tableau",
		Location:       "Surabaya, ID",
		SalaryMin:      5000000,
		SalaryMax:      8000000,
		JobType:        "part",
	},
}

// demoJobLifetime is how long seeded postings stay open.
const demoJobLifetime = 30 * 24 * time.Hour

type JobSeeder struct{}

func (JobSeeder) Name() string { return "jobs" }

func (JobSeeder) Run(ctx context.Context, db database.DB) error {
	if err := ensureTableColumns(ctx, db, "jobs",
		"id",
		"employer_id",
		"title",
		"description",
		"skills_required",
		"location",
		"salary_min",
		"salary_max",
		"job_type",
		"expiry_date",
		"is_active",
		"created_at",
	); err != nil {
		return err
	}

	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	now := time.Now().UTC()

	employers := map[string]uuid.UUID{}
	for _, item := range demoJobs {
		employerID, ok := employers[item.EmployerEmail]
		if !ok {
			u, err := users.GetUserByEmail(ctx, item.EmployerEmail)
			if err != nil {
				return fmt.Errorf("employer %s: %w", item.EmployerEmail, err)
			}
			p, err := profiles.FindEmployerByUserID(ctx, u.ID)
			if err != nil {
				return fmt.Errorf("employer profile %s: %w", item.EmployerEmail, err)
			}
			employerID = p.ID
			employers[item.EmployerEmail] = employerID
		}

		_, exists, err := findJobIDByTitle(ctx, db, employerID, item.Title)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		j, err := ucjob.Build(employerID, nil, item.postingInput(now), now)
		if err != nil {
			return fmt.Errorf("job %q: %w", item.Title, err)
		}
		if _, err := jobs.Create(ctx, j); err != nil {
			return err
		}
	}
	return nil
}

func (d demoJob) postingInput(now time.Time) ucjob.PostingInput {
	return ucjob.PostingInput{
		Title:          d.Title,
		Description:    d.Description,
		SkillsRequired: d.SkillsRequired,
		Location:       d.Location,
		SalaryMin:      d.SalaryMin,
		SalaryMax:      d.SalaryMax,
		JobType:        d.JobType,
		ExpiryDate:     now.Add(demoJobLifetime).Format(ucjob.DateLayout),
	}
}

func findJobIDByTitle(ctx context.Context, db database.DB, employerID uuid.UUID, title string) (uuid.UUID, bool, error) {
	rows, err := db.Query(ctx, `SELECT id FROM jobs WHERE employer_id = $1 AND title = $2 LIMIT 1`, employerID, title)
	if err != nil {
		return uuid.Nil, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return uuid.Nil, false, rows.Err()
	}
	var id uuid.UUID
	if err := rows.Scan(&id); err != nil {
		return uuid.Nil, false, err
	}
	return id, true, nil
}
