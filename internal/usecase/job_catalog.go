package usecase

import (
	"context"
	"log"
	"strconv"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"
	"jobboard/internal/search"
)

const (
	catalogKeyPrefix  = "jobs:catalog:"
	catalogLockSuffix = ":lock"
	catalogLockTTL    = 10 * time.Second
)

type CatalogCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

type JobCatalogUsecase interface {
	Active(ctx context.Context) ([]job.Job, error)
	Recent(ctx context.Context, limit int) ([]job.Job, error)
	Search(ctx context.Context, query string, limit int) ([]job.Job, error)
	Invalidate(ctx context.Context)
}

// JobCatalog serves the pool of open postings, most recent first. The pool is
// cached for a short TTL and dropped whenever a posting changes.
type JobCatalog struct {
	jobs     repository.JobRepository
	cache    CatalogCache
	poolSize int
	ttl      time.Duration
	logger   *log.Logger

	now func() time.Time
}

func NewJobCatalog(jobs repository.JobRepository, cache CatalogCache, poolSize int, ttl time.Duration, logger *log.Logger) *JobCatalog {
	if poolSize <= 0 {
		poolSize = 500
	}
	return &JobCatalog{jobs: jobs, cache: cache, poolSize: poolSize, ttl: ttl, logger: logger, now: time.Now}
}

func (c *JobCatalog) key() string {
	return catalogKeyPrefix + "active:" + strconv.Itoa(c.poolSize)
}

// Active returns the open postings. Entries that expired while cached are
// filtered out.
func (c *JobCatalog) Active(ctx context.Context) ([]job.Job, error) {
	key := c.key()

	if c.cache != nil {
		var cached []job.Job
		hit, err := c.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			c.logf("[Catalog] Cache HIT: %s", key)
			return c.open(cached), nil
		}
		c.logf("[Catalog] Cache MISS: %s", key)
	}

	lockKey := key + catalogLockSuffix
	lockAcquired := false
	if c.cache != nil {
		ok, err := c.cache.SetIfNotExists(ctx, lockKey, "1", catalogLockTTL)
		lockAcquired = err == nil && ok
	}

	rows, err := c.jobs.ListActive(ctx, c.poolSize)
	if err != nil {
		if lockAcquired {
			_ = c.cache.Delete(ctx, lockKey)
		}
		c.logf("[Catalog] load failed err=%v", err)
		return nil, ErrInternal
	}

	// Concurrent misses all read the database; only the lock holder fills the cache.
	if lockAcquired {
		if err := c.cache.SetJSON(ctx, key, rows, c.ttl); err == nil {
			c.logf("[Catalog] Cache SET: %s size=%d", key, len(rows))
		}
		_ = c.cache.Delete(ctx, lockKey)
	}
	return c.open(rows), nil
}

// Recent returns up to limit open postings, most recent first.
func (c *JobCatalog) Recent(ctx context.Context, limit int) ([]job.Job, error) {
	all, err := c.Active(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// Search ranks the open postings against a keyword query. A query with no
// usable characters falls back to Recent.
func (c *JobCatalog) Search(ctx context.Context, query string, limit int) ([]job.Job, error) {
	q := search.ProcessQuery(query)
	if q.Normalized == "" {
		return c.Recent(ctx, limit)
	}

	all, err := c.Active(ctx)
	if err != nil {
		return nil, err
	}
	ranked := search.Rank(all, q.Variants, c.now())
	c.logf("[Catalog] search q=%q variants=%d hits=%d", q.Normalized, len(q.Variants), len(ranked))
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (c *JobCatalog) Invalidate(ctx context.Context) {
	if c == nil || c.cache == nil {
		return
	}
	if err := c.cache.DeleteByPattern(ctx, catalogKeyPrefix+"*"); err != nil {
		c.logf("[Catalog] invalidate failed err=%v", err)
		return
	}
	c.logf("[Catalog] invalidated")
}

func (c *JobCatalog) open(jobs []job.Job) []job.Job {
	now := c.now()
	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.IsOpen(now) {
			out = append(out, j)
		}
	}
	return out
}

func (c *JobCatalog) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
