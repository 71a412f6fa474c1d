package seeder

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/profile"
	"jobboard/internal/domain/user"
	"jobboard/internal/repository"
)

type demoEmployer struct {
	Email       string
	CompanyName string
	Industry    string
	Website     string
	Description string
}

var demoEmployers = []demoEmployer{
	{
		Email:       "hiring@acme.example",
		CompanyName: "Acme Software",
		Industry:    "Software",
		Website:     "https://acme.example",
		Description: "Product studio building APIs and web apps for logistics companies.",
	},
	{
		Email:       "jobs@cloudkita.example",
		CompanyName: "CloudKita",
		Industry:    "Cloud Infrastructure",
		Website:     "https://cloudkita.example",
		Description: "Managed Kubernetes and CI/CD platform for regional startups.",
	},
	{
		Email:       "talent@insightworks.example",
		CompanyName: "InsightWorks",
		Industry:    "Data & Analytics",
		Website:     "https://insightworks.example",
		Description: "Analytics consultancy running data pipelines for retail.",
	},
}

type EmployerSeeder struct{}

func (EmployerSeeder) Name() string { return "employers" }

func (EmployerSeeder) Run(ctx context.Context, db database.DB) error {
	if err := ensureTableColumns(ctx, db, "users", "id", "email", "password_hash", "role"); err != nil {
		return err
	}
	if err := ensureTableColumns(ctx, db, "employer_profiles", "id", "user_id", "company_name", "industry", "website", "description"); err != nil {
		return err
	}

	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)

	for _, e := range demoEmployers {
		userID, err := ensureUser(ctx, users, e.Email, user.RoleEmployer)
		if err != nil {
			return err
		}
		if _, err := profiles.UpsertEmployer(ctx, profile.Employer{
			UserID:      userID,
			CompanyName: e.CompanyName,
			Industry:    e.Industry,
			Website:     e.Website,
			Description: e.Description,
		}); err != nil {
			return err
		}
	}
	return nil
}
