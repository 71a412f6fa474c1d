package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"jobboard/internal/app"
	"jobboard/internal/config"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/migrations"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	AccessToken string `json:"access_token"`
}

type jobData struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type recommendedData struct {
	ID            uuid.UUID `json:"id"`
	Score         string    `json:"score"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
}

type dashboardData struct {
	Recommended []recommendedData `json:"recommended"`
	RecentJobs  []jobData         `json:"recent_jobs"`
}

// TestIntegration_SeekerDashboard drives the whole HTTP surface against a real
// Postgres: register both roles, create profiles and postings, then read the
// seeker dashboard. Skill names carry a per-run prefix so rows left by other
// runs never match.
func TestIntegration_SeekerDashboard(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg := testConfig(t)
	runMigrations(t, ctx, cfg.Database)

	c, err := app.NewContainer(cfg)
	require.NoError(t, err)
	a, cleanup, err := app.Bootstrap(c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	run := strings.ReplaceAll(uuid.NewString()[:8], "-", "")
	skill := func(name string) string { return "it" + run + "-" + name }
	employerEmail := "employer-" + run + "@it.example"
	seekerEmail := "seeker-" + run + "@it.example"
	t.Cleanup(func() { cleanupRun(t, cfg.Database, run, employerEmail, seekerEmail) })

	employerToken := register(t, a.Fiber, employerEmail, "employer")
	seekerToken := register(t, a.Fiber, seekerEmail, "seeker")

	expiry := time.Now().UTC().AddDate(0, 0, 14).Format("2006-01-02")
	status, _ := call(t, a.Fiber, http.MethodPost, "/api/v1/employer/jobs", employerToken, map[string]any{
		"title": "Too early", "skills_required": skill("alpha"), "job_type": "full", "expiry_date": expiry,
	})
	assert.Equal(t, http.StatusNotFound, status, "posting requires an employer profile")

	status, _ = call(t, a.Fiber, http.MethodPut, "/api/v1/employer/profile", employerToken, map[string]any{
		"company_name": "Integration Co",
	})
	require.Equal(t, http.StatusOK, status)

	jobA := postJob(t, a.Fiber, employerToken, "Alpha Beta Gamma", strings.Join([]string{skill("alpha"), skill("beta"), skill("gamma")}, ", "), expiry)
	jobB := postJob(t, a.Fiber, employerToken, "Alpha Delta", skill("alpha")+","+skill("delta"), expiry)
	postJob(t, a.Fiber, employerToken, "Zeta Only", skill("zeta"), expiry)

	status, env := call(t, a.Fiber, http.MethodGet, "/api/v1/seeker/dashboard", seekerToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Seeker profile not found", env.Message)

	status, _ = call(t, a.Fiber, http.MethodPut, "/api/v1/seeker/profile", seekerToken, map[string]any{
		"skills": " " + strings.ToUpper(skill("alpha")) + " ,, " + skill("beta") + ", " + skill("alpha"),
	})
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, a.Fiber, http.MethodGet, "/api/v1/seeker/dashboard", seekerToken, nil)
	require.Equal(t, http.StatusOK, status)

	var dash dashboardData
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	require.Len(t, dash.Recommended, 2)

	assert.Equal(t, jobA, dash.Recommended[0].ID)
	assert.Equal(t, "66.7", dash.Recommended[0].Score)
	assert.ElementsMatch(t, []string{skill("alpha"), skill("beta")}, dash.Recommended[0].MatchedSkills)
	assert.ElementsMatch(t, []string{skill("gamma")}, dash.Recommended[0].MissingSkills)

	assert.Equal(t, jobB, dash.Recommended[1].ID)
	assert.Equal(t, "50.0", dash.Recommended[1].Score)
	assert.NotEmpty(t, dash.RecentJobs)

	// The employer's recommendation view is guarded by role.
	status, _ = call(t, a.Fiber, http.MethodGet, "/api/v1/seeker/dashboard", employerToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	// Deactivating a posting drops it from the next dashboard read.
	status, _ = call(t, a.Fiber, http.MethodDelete, "/api/v1/employer/jobs/"+jobA.String(), employerToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, a.Fiber, http.MethodGet, "/api/v1/seeker/dashboard", seekerToken, nil)
	require.Equal(t, http.StatusOK, status)
	dash = dashboardData{}
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	require.Len(t, dash.Recommended, 1)
	assert.Equal(t, jobB, dash.Recommended[0].ID)

	status, env = call(t, a.Fiber, http.MethodGet, "/api/v1/skills?prefix="+skill(""), "", nil)
	require.Equal(t, http.StatusOK, status)
	var names []string
	require.NoError(t, json.Unmarshal(env.Data, &names))
	assert.Contains(t, names, skill("alpha"))
}

func testConfig(t *testing.T) config.Config {
	t.Helper()

	host := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set JOBBOARD_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	return config.Config{
		App: config.AppConfig{AppName: "jobboard-it", Environment: "test", HTTPPort: "0"},
		Database: config.DatabaseConfig{
			DBHost:         host,
			DBPort:         port,
			DBName:         name,
			DBUser:         user,
			DBPassword:     pass,
			DBSSLMode:      ssl,
			ConnectTimeout: 5 * time.Second,
		},
		JWT: config.JWTConfig{
			AccessSecret:     "it-access-secret",
			RefreshSecret:    "it-refresh-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: time.Hour,
		},
		Redis: config.RedisConfig{
			Host: os.Getenv("REDIS_HOST"),
			Port: stringsOrDefault(os.Getenv("REDIS_PORT"), "6379"),
			TTL:  time.Minute,
		},
		Recommend: config.RecommendConfig{
			Limit:             10,
			CandidatePoolSize: 500,
			CatalogCacheTTL:   30 * time.Second,
		},
	}
}

func runMigrations(t *testing.T, ctx context.Context, dbcfg config.DatabaseConfig) {
	t.Helper()

	db, err := dbpostgres.Connect(ctx, dbcfg)
	require.NoError(t, err, "connect db")
	defer db.Close()

	r := migration.Runner{FS: migrations.FS}
	_, err = r.Run(ctx, db.SQLDB())
	require.NoError(t, err, "run migrations")
}

func cleanupRun(t *testing.T, dbcfg config.DatabaseConfig, run string, emails ...string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, dbcfg)
	if err != nil {
		t.Logf("cleanup connect: %v", err)
		return
	}
	defer db.Close()

	if _, err := db.Exec(ctx, `DELETE FROM users WHERE email = ANY($1)`, emails); err != nil {
		t.Logf("cleanup users: %v", err)
	}
	if _, err := db.Exec(ctx, `DELETE FROM skills WHERE name LIKE $1`, "it"+run+"-%"); err != nil {
		t.Logf("cleanup skills: %v", err)
	}
}

func register(t *testing.T, app *fiber.App, email, role string) string {
	t.Helper()

	status, env := call(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email": email, "password": "password123", "role": role,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	var data authData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func postJob(t *testing.T, app *fiber.App, token, title, skills, expiry string) uuid.UUID {
	t.Helper()

	status, env := call(t, app, http.MethodPost, "/api/v1/employer/jobs", token, map[string]any{
		"title":           title,
		"skills_required": skills,
		"job_type":        "full",
		"salary_min":      1000,
		"salary_max":      2000,
		"expiry_date":     expiry,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	var data jobData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.ID
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (int, semanticResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env semanticResponse
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func stringsOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
