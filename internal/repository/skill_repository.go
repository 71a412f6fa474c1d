package repository

import (
	"context"
	"strings"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

// SeekerSkillRepository supplies the skill names a seeker has declared. Names
// come back exactly as stored, which is already normalized.
type SeekerSkillRepository interface {
	FindSkillNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type SkillCatalogRepository interface {
	ListSkillNames(ctx context.Context, prefix string, limit int) ([]string, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) FindSkillNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var seekerID uuid.UUID
	if err := r.db.QueryRow(ctx, `SELECT id FROM seeker_profiles WHERE user_id = $1`, userID).Scan(&seekerID); err != nil {
		if isNoRows(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return listSeekerSkills(ctx, r.db, seekerID)
}

func (r *PostgresSkillRepository) ListSkillNames(ctx context.Context, prefix string, limit int) ([]string, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT name FROM skills WHERE name LIKE $1 || '%' ORDER BY name ASC LIMIT $2`,
		escapeLike(prefix), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
