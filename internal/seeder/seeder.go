package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/user"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Default returns the demo seeders in dependency order.
func Default() []Seeder {
	return []Seeder{EmployerSeeder{}, JobSeeder{}, SeekerSeeder{}}
}

// RunAll runs each seeder in order and stops at the first failure. Seeders
// are idempotent, so a rerun only fills what is missing.
func RunAll(ctx context.Context, db database.DB, logger *log.Logger, seeders ...Seeder) error {
	for _, s := range seeders {
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
		if logger != nil {
			logger.Printf("[Seeder] %s done in %s", s.Name(), time.Since(start).Round(time.Millisecond))
		}
	}
	return nil
}

// ensureUser returns the id of the account with email, creating it with the
// demo password when missing.
func ensureUser(ctx context.Context, users *repository.PostgresUserRepository, email string, role user.Role) (uuid.UUID, error) {
	existing, err := users.GetUserByEmail(ctx, email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return uuid.Nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}
	now := time.Now().UTC()
	u := user.User{
		ID:              uuid.New(),
		Email:           email,
		PasswordHash:    string(hash),
		Role:            role,
		IsEmailVerified: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := users.CreateUser(ctx, u); err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

func ensureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	missing := make([]string, 0)
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s missing columns: %s (run migrations first)", table, strings.Join(missing, ", "))
	}
	return nil
}
