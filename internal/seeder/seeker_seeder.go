package seeder

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/profile"
	"jobboard/internal/domain/recommend"
	"jobboard/internal/domain/user"
	"jobboard/internal/repository"
)

type demoSeeker struct {
	Email    string
	Location string
	Bio      string
	Skills   string
}

var demoSeekers = []demoSeeker{
	{
		Email:    "dina@seeker.example",
		Location: "Jakarta, ID",
		Bio:      "Backend developer, three years with Go and PostgreSQL.",
		Skills:   "Go, SQL, Docker, REST",
	},
	{
		Email:    "raka@seeker.example",
		Location: "Remote",
		Bio:      "Ops engineer moving into platform work.",
		Skills:   "Linux, Docker, Kubernetes, Prometheus",
	},
}

type SeekerSeeder struct{}

func (SeekerSeeder) Name() string { return "seekers" }

func (SeekerSeeder) Run(ctx context.Context, db database.DB) error {
	if err := ensureTableColumns(ctx, db, "seeker_profiles", "id", "user_id", "phone", "location", "bio"); err != nil {
		return err
	}
	if err := ensureTableColumns(ctx, db, "seeker_skills", "seeker_id", "skill_id"); err != nil {
		return err
	}

	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)

	for _, s := range demoSeekers {
		userID, err := ensureUser(ctx, users, s.Email, user.RoleSeeker)
		if err != nil {
			return err
		}
		p := profile.Seeker{UserID: userID, Location: s.Location, Bio: s.Bio}
		if _, err := profiles.UpsertSeeker(ctx, p, recommend.ParseSkills(s.Skills).Sorted()); err != nil {
			return err
		}
	}
	return nil
}
