// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// The rate limiter below keeps one golang.org/x/time/rate token bucket per
// client identity in process memory. Identities are the client IP, optionally
// narrowed to the platform named in the route, so a burst of reviews for one
// platform does not starve reads of another. Idle buckets are swept
// opportunistically.
package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyFunc selects the identity used to key a rate-limit bucket.
type KeyFunc func(*gin.Context) string

// KeyByIP keys buckets by client IP ("ip:203.0.113.7").
func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	}
}

// KeyByIPAndPlatform keys buckets by client IP and the :name route parameter.
// Routes without the parameter fall back to KeyByIP.
func KeyByIPAndPlatform() KeyFunc {
	return func(c *gin.Context) string {
		if name := c.Param("name"); name != "" {
			return "ip:" + c.ClientIP() + "|platform:" + name
		}
		return "ip:" + c.ClientIP()
	}
}

// RateLimitOptions configures NewRateLimiter. Zero values get defaults.
type RateLimitOptions struct {
	RPS   float64 // tokens per second; 0 allows only the initial burst
	Burst int     // bucket size; < 1 means 1
	Key   KeyFunc // default KeyByIP

	// Exempt lists request paths that are never limited (health checks, scrapes).
	Exempt []string

	IdleTTL    time.Duration // default 10m
	SweepEvery int           // lookups between sweeps, default 5000

	Now func() time.Time
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-key token-bucket limiter. Safe for concurrent use.
type RateLimiter struct {
	opts   RateLimitOptions
	exempt map[string]struct{}

	mu      sync.Mutex
	buckets map[string]*bucket
	lookups int
}

// NewRateLimiter builds a limiter; install it with Handler().
func NewRateLimiter(opts RateLimitOptions) *RateLimiter {
	if opts.Burst < 1 {
		opts.Burst = 1
	}
	if opts.RPS < 0 {
		opts.RPS = 0
	}
	if opts.Key == nil {
		opts.Key = KeyByIP()
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 10 * time.Minute
	}
	if opts.SweepEvery <= 0 {
		opts.SweepEvery = 5000
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	ex := make(map[string]struct{}, len(opts.Exempt))
	for _, p := range opts.Exempt {
		ex[p] = struct{}{}
	}
	return &RateLimiter{
		opts:    opts,
		exempt:  ex,
		buckets: make(map[string]*bucket),
	}
}

// limiter returns the bucket for key, creating it on first use. The sweep
// runs before the lookup so an expired bucket is replaced, not refreshed.
func (rl *RateLimiter) limiter(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lookups++
	if rl.lookups >= rl.opts.SweepEvery {
		for k, b := range rl.buckets {
			if now.Sub(b.lastSeen) >= rl.opts.IdleTTL {
				delete(rl.buckets, k)
			}
		}
		rl.lookups = 0
	}

	if b, ok := rl.buckets[key]; ok {
		b.lastSeen = now
		return b.lim
	}
	lim := rate.NewLimiter(rate.Limit(rl.opts.RPS), rl.opts.Burst)
	rl.buckets[key] = &bucket{lim: lim, lastSeen: now}
	return lim
}

// size reports the number of live buckets.
func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

// IsRateBypass reports whether IdempotencyValidator marked this request as a
// replay that should not consume tokens.
func IsRateBypass(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyRateBypass)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// retryAfter is the whole number of seconds until the next token, at least 1.
func retryAfter(d time.Duration) string {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		s = 1
	}
	return strconv.Itoa(s)
}

// Handler enforces the limits. Denied requests get 429, a Retry-After header
// derived from the bucket's refill time and the standard error envelope.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := rl.exempt[c.Request.URL.Path]; ok || IsRateBypass(c) {
			c.Next()
			return
		}

		now := rl.opts.Now()
		res := rl.limiter(rl.opts.Key(c), now).ReserveN(now, 1)
		if res.OK() {
			delay := res.DelayFrom(now)
			if delay == 0 {
				c.Next()
				return
			}
			res.CancelAt(now)
			c.Header("Retry-After", retryAfter(delay))
		} else {
			c.Header("Retry-After", "60")
		}

		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get("X-Request-ID"),
			"code":       "rate_limited",
			"message":    "rate limit exceeded",
		})
	}
}
