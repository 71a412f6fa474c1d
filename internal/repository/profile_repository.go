package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/profile"

	"github.com/google/uuid"
)

type SeekerProfileRepository interface {
	FindSeekerByUserID(ctx context.Context, userID uuid.UUID) (profile.Seeker, error)
	// UpsertSeeker stores the profile and replaces its skill associations with
	// skills, which must already be normalized.
	UpsertSeeker(ctx context.Context, p profile.Seeker, skills []string) (profile.Seeker, error)
}

type EmployerProfileRepository interface {
	FindEmployerByUserID(ctx context.Context, userID uuid.UUID) (profile.Employer, error)
	UpsertEmployer(ctx context.Context, p profile.Employer) (profile.Employer, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindSeekerByUserID(ctx context.Context, userID uuid.UUID) (profile.Seeker, error) {
	var p profile.Seeker
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, phone, location, bio, updated_at
		 FROM seeker_profiles
		 WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Phone, &p.Location, &p.Bio, &p.UpdatedAt); err != nil {
		if isNoRows(err) {
			return profile.Seeker{}, ErrProfileNotFound
		}
		return profile.Seeker{}, err
	}

	skills, err := listSeekerSkills(ctx, r.db, p.ID)
	if err != nil {
		return profile.Seeker{}, err
	}
	p.Skills = skills
	return p, nil
}

func (r *PostgresProfileRepository) UpsertSeeker(ctx context.Context, p profile.Seeker, skills []string) (profile.Seeker, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		row := tx.QueryRow(ctx,
			`INSERT INTO seeker_profiles (id, user_id, phone, location, bio, updated_at)
			 VALUES ($1, $2, $3, $4, $5, now())
			 ON CONFLICT (user_id) DO UPDATE
			 SET phone = EXCLUDED.phone, location = EXCLUDED.location, bio = EXCLUDED.bio, updated_at = now()
			 RETURNING id, updated_at`,
			p.ID, p.UserID, p.Phone, p.Location, p.Bio,
		)
		if err := row.Scan(&p.ID, &p.UpdatedAt); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM seeker_skills WHERE seeker_id = $1`, p.ID); err != nil {
			return err
		}
		if len(skills) == 0 {
			return nil
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO skills (name) SELECT unnest($1::text[]) ON CONFLICT (name) DO NOTHING`,
			skills,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO seeker_skills (seeker_id, skill_id)
			 SELECT $1, s.id FROM skills s WHERE s.name = ANY($2::text[])
			 ON CONFLICT DO NOTHING`,
			p.ID, skills,
		)
		return err
	})
	if err != nil {
		return profile.Seeker{}, err
	}

	p.Skills = append([]string(nil), skills...)
	return p, nil
}

func (r *PostgresProfileRepository) FindEmployerByUserID(ctx context.Context, userID uuid.UUID) (profile.Employer, error) {
	var p profile.Employer
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, company_name, industry, website, description, updated_at
		 FROM employer_profiles
		 WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.CompanyName, &p.Industry, &p.Website, &p.Description, &p.UpdatedAt); err != nil {
		if isNoRows(err) {
			return profile.Employer{}, ErrProfileNotFound
		}
		return profile.Employer{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) UpsertEmployer(ctx context.Context, p profile.Employer) (profile.Employer, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO employer_profiles (id, user_id, company_name, industry, website, description, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())
		 ON CONFLICT (user_id) DO UPDATE
		 SET company_name = EXCLUDED.company_name, industry = EXCLUDED.industry,
		     website = EXCLUDED.website, description = EXCLUDED.description, updated_at = now()
		 RETURNING id, updated_at`,
		p.ID, p.UserID, p.CompanyName, p.Industry, p.Website, p.Description,
	)
	if err := row.Scan(&p.ID, &p.UpdatedAt); err != nil {
		return profile.Employer{}, err
	}
	return p, nil
}

type querier interface {
	Query(ctx context.Context, query string, args ...any) (database.Rows, error)
}

func listSeekerSkills(ctx context.Context, q querier, seekerID uuid.UUID) ([]string, error) {
	rows, err := q.Query(ctx,
		`SELECT s.name
		 FROM seeker_skills ss
		 JOIN skills s ON s.id = ss.skill_id
		 WHERE ss.seeker_id = $1
		 ORDER BY s.name ASC`,
		seekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
