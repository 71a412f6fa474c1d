package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/recommend"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	OutcomeOK        = "ok"
	OutcomeNoProfile = "no_profile"
	OutcomeError     = "error"
)

type RecommendedJob struct {
	Job     job.Job
	Score   recommend.Score
	Matched []string
	Missing []string
}

type Dashboard struct {
	Recommended []RecommendedJob
	RecentJobs  []job.Job
}

type DashboardUsecase interface {
	SeekerDashboard(ctx context.Context, userID uuid.UUID) (Dashboard, error)
	RecommendForSkills(ctx context.Context, skills recommend.SkillSet, limit int) ([]RecommendedJob, error)
}

// RecommendationObserver records how recommendation requests went.
type RecommendationObserver interface {
	ObserveRecommendation(outcome string, took time.Duration, results int)
}

type activeJobSource interface {
	Active(ctx context.Context) ([]job.Job, error)
}

type SeekerDashboard struct {
	skills   repository.SeekerSkillRepository
	catalog  activeJobSource
	observer RecommendationObserver
	limit    int
	logger   *log.Logger
}

func NewDashboardUsecase(skills repository.SeekerSkillRepository, catalog activeJobSource, observer RecommendationObserver, limit int, logger *log.Logger) *SeekerDashboard {
	if limit <= 0 {
		limit = recommend.DefaultLimit
	}
	return &SeekerDashboard{skills: skills, catalog: catalog, observer: observer, limit: limit, logger: logger}
}

// SeekerDashboard loads the seeker's current skills and the open postings
// concurrently and ranks the postings. Skills are always read fresh.
func (u *SeekerDashboard) SeekerDashboard(ctx context.Context, userID uuid.UUID) (Dashboard, error) {
	start := time.Now()

	var (
		names   []string
		catalog []job.Job
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		names, err = u.skills.FindSkillNamesByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = u.catalog.Active(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			u.observe(OutcomeNoProfile, start, 0)
			return Dashboard{}, ErrSeekerProfileNotFound
		}
		u.observe(OutcomeError, start, 0)
		if u.logger != nil {
			u.logger.Printf("[Dashboard] load failed user_id=%s err=%v", userID, err)
		}
		return Dashboard{}, ErrInternal
	}

	recommended := rank(recommend.NewSkillSet(names...), catalog, u.limit)

	recent := catalog
	if len(recent) > u.limit {
		recent = recent[:u.limit]
	}

	u.observe(OutcomeOK, start, len(recommended))
	return Dashboard{Recommended: recommended, RecentJobs: recent}, nil
}

// RecommendForSkills ranks the open postings against an ad hoc skill set.
func (u *SeekerDashboard) RecommendForSkills(ctx context.Context, skills recommend.SkillSet, limit int) ([]RecommendedJob, error) {
	start := time.Now()
	if limit <= 0 {
		limit = u.limit
	}

	catalog, err := u.catalog.Active(ctx)
	if err != nil {
		u.observe(OutcomeError, start, 0)
		return nil, ErrInternal
	}

	out := rank(skills, catalog, limit)
	u.observe(OutcomeOK, start, len(out))
	return out, nil
}

func rank(skills recommend.SkillSet, catalog []job.Job, limit int) []RecommendedJob {
	byID := make(map[uuid.UUID]job.Job, len(catalog))
	candidates := make([]recommend.Candidate, 0, len(catalog))
	for _, j := range catalog {
		byID[j.ID] = j
		candidates = append(candidates, recommend.Candidate{
			ID:             j.ID,
			SkillsRequired: j.SkillsRequired,
			CreatedAt:      j.CreatedAt,
		})
	}

	matches := recommend.Recommend(skills, candidates, limit)
	out := make([]RecommendedJob, 0, len(matches))
	for _, m := range matches {
		out = append(out, RecommendedJob{
			Job:     byID[m.JobID],
			Score:   m.Score,
			Matched: m.Matched,
			Missing: m.Missing,
		})
	}
	return out
}

func (u *SeekerDashboard) observe(outcome string, start time.Time, results int) {
	if u.observer == nil {
		return
	}
	u.observer.ObserveRecommendation(outcome, time.Since(start), results)
}
