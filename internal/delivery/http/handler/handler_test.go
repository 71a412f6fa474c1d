package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/recommend"
	"jobboard/internal/domain/user"
	"jobboard/internal/usecase"
	ucjob "jobboard/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Count int `json:"count"`
		Limit int `json:"limit"`
	} `json:"meta"`
}

func newTestApp(userID uuid.UUID, role user.Role) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	app.Use(func(c fiber.Ctx) error {
		if userID != uuid.Nil {
			c.Locals(middleware.CtxUserIDKey, userID)
			c.Locals(middleware.CtxRoleKey, role)
		}
		return c.Next()
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

type stubDashboard struct {
	d   usecase.Dashboard
	err error
}

func (s stubDashboard) SeekerDashboard(context.Context, uuid.UUID) (usecase.Dashboard, error) {
	return s.d, s.err
}

func (s stubDashboard) RecommendForSkills(context.Context, recommend.SkillSet, int) ([]usecase.RecommendedJob, error) {
	return s.d.Recommended, s.err
}

func TestDashboardHandler_RendersScores(t *testing.T) {
	j := job.Job{
		ID:             uuid.New(),
		Title:          "Frontend Dev",
		CompanyName:    "Acme",
		SkillsRequired: "Python, React, Docker",
		JobType:        job.TypeRemote,
		ExpiryDate:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		IsActive:       true,
	}
	uc := stubDashboard{d: usecase.Dashboard{
		Recommended: []usecase.RecommendedJob{{
			Job:     j,
			Score:   recommend.ComputeScore(2, 3),
			Matched: []string{"python", "react"},
			Missing: []string{"docker"},
		}},
		RecentJobs: []job.Job{j},
	}}

	app := newTestApp(uuid.New(), user.RoleSeeker)
	NewDashboardHandler(uc).RegisterRoutes(app.Group("/seeker"))

	status, env := do(t, app, http.MethodGet, "/seeker/dashboard", "")
	require.Equal(t, http.StatusOK, status)

	var body struct {
		Recommended []struct {
			ID            uuid.UUID `json:"id"`
			Score         string    `json:"score"`
			MatchedSkills []string  `json:"matched_skills"`
			MissingSkills []string  `json:"missing_skills"`
			ExpiryDate    string    `json:"expiry_date"`
		} `json:"recommended"`
		RecentJobs []json.RawMessage `json:"recent_jobs"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Recommended, 1)
	assert.Equal(t, j.ID, body.Recommended[0].ID)
	assert.Equal(t, "66.7", body.Recommended[0].Score)
	assert.Equal(t, []string{"python", "react"}, body.Recommended[0].MatchedSkills)
	assert.Equal(t, []string{"docker"}, body.Recommended[0].MissingSkills)
	assert.Equal(t, "2026-12-31", body.Recommended[0].ExpiryDate)
	assert.Len(t, body.RecentJobs, 1)
}

func TestDashboardHandler_Errors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"no profile", usecase.ErrSeekerProfileNotFound, http.StatusNotFound, "Seeker profile not found"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(uuid.New(), user.RoleSeeker)
			NewDashboardHandler(stubDashboard{err: tc.err}).RegisterRoutes(app.Group("/seeker"))

			status, env := do(t, app, http.MethodGet, "/seeker/dashboard", "")
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, env.Message)
		})
	}
}

func TestDashboardHandler_Unauthenticated(t *testing.T) {
	app := newTestApp(uuid.Nil, "")
	NewDashboardHandler(stubDashboard{}).RegisterRoutes(app.Group("/seeker"))

	status, _ := do(t, app, http.MethodGet, "/seeker/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

type stubPostings struct {
	created ucjob.PostingInput
	err     error
}

func (s *stubPostings) Create(_ context.Context, _ uuid.UUID, in ucjob.PostingInput) (job.Job, error) {
	s.created = in
	if s.err != nil {
		return job.Job{}, s.err
	}
	return job.Job{ID: uuid.New(), Title: in.Title, JobType: job.TypeFullTime}, nil
}

func (s *stubPostings) Update(context.Context, uuid.UUID, uuid.UUID, ucjob.PostingInput) (job.Job, error) {
	return job.Job{}, s.err
}

func (s *stubPostings) Deactivate(context.Context, uuid.UUID, uuid.UUID) error {
	return s.err
}

func (s *stubPostings) ListOwn(context.Context, uuid.UUID) ([]job.Job, error) {
	return []job.Job{}, s.err
}

func TestEmployerJobsHandler_Create(t *testing.T) {
	uc := &stubPostings{}
	app := newTestApp(uuid.New(), user.RoleEmployer)
	NewEmployerJobsHandler(uc).RegisterRoutes(app.Group("/employer/jobs"))

	status, env := do(t, app, http.MethodPost, "/employer/jobs",
		`{"title":"Go Dev","skills_required":"Go, SQL","salary_min":1,"salary_max":2,"job_type":"full","expiry_date":"2030-01-01"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "created", env.Message)
	assert.Equal(t, "Go, SQL", uc.created.SkillsRequired)
}

func TestEmployerJobsHandler_ValidationErrors(t *testing.T) {
	app := newTestApp(uuid.New(), user.RoleEmployer)
	NewEmployerJobsHandler(&stubPostings{}).RegisterRoutes(app.Group("/employer/jobs"))

	status, env := do(t, app, http.MethodPost, "/employer/jobs",
		`{"title":"","salary_min":5,"salary_max":1,"job_type":"gig","expiry_date":"tomorrow"}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", env.Message)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "salary_max")
	assert.Contains(t, fields, "job_type")
	assert.Contains(t, fields, "expiry_date")
}

func TestEmployerJobsHandler_MapsUsecaseErrors(t *testing.T) {
	body := `{"title":"Go Dev","salary_min":1,"salary_max":2,"job_type":"full","expiry_date":"2030-01-01"}`

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"no employer profile", usecase.ErrEmployerProfileNotFound, http.StatusNotFound},
		{"field error", &ucjob.FieldError{Field: "expiry_date", Reason: "must not be in the past"}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(uuid.New(), user.RoleEmployer)
			NewEmployerJobsHandler(&stubPostings{err: tc.err}).RegisterRoutes(app.Group("/employer/jobs"))

			status, _ := do(t, app, http.MethodPost, "/employer/jobs", body)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestEmployerJobsHandler_BadID(t *testing.T) {
	app := newTestApp(uuid.New(), user.RoleEmployer)
	NewEmployerJobsHandler(&stubPostings{}).RegisterRoutes(app.Group("/employer/jobs"))

	status, _ := do(t, app, http.MethodDelete, "/employer/jobs/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

type stubCatalog struct {
	jobs []job.Job
}

func (s stubCatalog) Active(context.Context) ([]job.Job, error) { return s.jobs, nil }

func (s stubCatalog) Recent(_ context.Context, limit int) ([]job.Job, error) {
	if len(s.jobs) > limit {
		return s.jobs[:limit], nil
	}
	return s.jobs, nil
}

func (s stubCatalog) Search(_ context.Context, query string, limit int) ([]job.Job, error) {
	out := make([]job.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if j.Title == query {
			out = append(out, j)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s stubCatalog) Invalidate(context.Context) {}

func TestJobsHandler_List(t *testing.T) {
	jobs := []job.Job{{ID: uuid.New()}, {ID: uuid.New(), Title: "Designer"}, {ID: uuid.New()}}
	app := newTestApp(uuid.Nil, "")
	NewJobsHandler(stubCatalog{jobs: jobs}).RegisterRoutes(app.Group("/jobs"))

	status, env := do(t, app, http.MethodGet, "/jobs?limit=2", "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.Count)
	assert.Equal(t, 2, env.Meta.Limit)

	status, env = do(t, app, http.MethodGet, "/jobs?q=Designer", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, env.Meta.Count)

	status, _ = do(t, app, http.MethodGet, "/jobs?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = do(t, app, http.MethodGet, "/jobs?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Ready(t *testing.T) {
	app := newTestApp(uuid.Nil, "")
	NewHealthHandler(stubPinger{}, stubPinger{err: errors.New("no redis")}).RegisterRoutes(app)

	status, env := do(t, app, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"database":"up","cache":"down"}`, string(env.Data))

	app = newTestApp(uuid.Nil, "")
	NewHealthHandler(stubPinger{err: errors.New("no db")}, stubPinger{}).RegisterRoutes(app)
	status, _ = do(t, app, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

type stubSkills struct{ names []string }

func (s stubSkills) Suggest(_ context.Context, prefix string, limit int) ([]string, error) {
	out := make([]string, 0, len(s.names))
	for _, n := range s.names {
		if len(out) < limit && strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out, nil
}

func TestSkillsHandler_Suggest(t *testing.T) {
	app := newTestApp(uuid.Nil, "")
	NewSkillsHandler(stubSkills{names: []string{"go", "graphql", "python"}}).RegisterRoutes(app.Group("/skills"))

	status, env := do(t, app, http.MethodGet, "/skills?prefix=g", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `["go","graphql"]`, string(env.Data))

	status, _ = do(t, app, http.MethodGet, "/skills?limit=x", "")
	assert.Equal(t, http.StatusBadRequest, status)
}
