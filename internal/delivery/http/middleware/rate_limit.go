package middleware

import (
	"log"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/time/rate"
)

const limiterIdleEviction = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client key. Idle buckets are swept
// on access, so there is no background goroutine to stop.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	rate      rate.Limit
	burst     int
	perMinute int
	lastSweep time.Time
	logger    *log.Logger

	now func() time.Time
}

// NewRateLimiter returns nil when perMinute is not positive; a nil limiter's
// middleware lets everything through.
func NewRateLimiter(perMinute, burst int, logger *log.Logger) *RateLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters:  make(map[string]*limiterEntry),
		rate:      rate.Limit(float64(perMinute) / 60.0),
		burst:     burst,
		perMinute: perMinute,
		logger:    logger,
		now:       time.Now,
	}
}

func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	e, ok := l.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < limiterIdleEviction {
		return
	}
	for k, e := range l.limiters {
		if now.Sub(e.lastSeen) > limiterIdleEviction {
			delete(l.limiters, k)
		}
	}
	l.lastSweep = now
}

func (l *RateLimiter) Middleware() fiber.Handler {
	if l == nil {
		return func(c fiber.Ctx) error { return c.Next() }
	}

	retryAfter := strconv.Itoa(int(math.Ceil(60.0 / float64(l.perMinute))))
	return func(c fiber.Ctx) error {
		ip := c.IP()
		if l.Allow("ip:" + ip) {
			return c.Next()
		}
		if l.logger != nil {
			l.logger.Printf("[RateLimit] rejected | ip=%s path=%s", ip, c.Path())
		}
		c.Set(fiber.HeaderRetryAfter, retryAfter)
		return NewAppError(fiber.StatusTooManyRequests, "Too many requests", nil, nil)
	}
}
