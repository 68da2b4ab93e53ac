// Package ratelimit throttles operator API calls per client address.
package ratelimit

import (
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	dErrors "contactcentre/pkg/domain-errors"
	"contactcentre/pkg/platform/httputil"
	"contactcentre/pkg/requestcontext"
)

const defaultIdleTTL = 10 * time.Minute

// Limiter hands out one token bucket per client IP. Buckets idle for longer
// than the idle TTL are dropped by a sweep that runs at most once per TTL.
type Limiter struct {
	clients   sync.Map // client IP -> *client
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep atomic.Int64
	now       func() time.Time
	logger    *slog.Logger
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

type Option func(*Limiter)

// WithIdleTTL sets how long a silent client keeps its bucket. Default is 10m.
func WithIdleTTL(d time.Duration) Option {
	return func(l *Limiter) {
		if d > 0 {
			l.idleTTL = d
		}
	}
}

// WithClock replaces time.Now (for testing).
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a limiter allowing rps requests per second with the given burst per client.
// A non-positive rps disables limiting.
func New(rps float64, burst int, logger *slog.Logger, opts ...Option) *Limiter {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Limiter{
		rate:    rate.Limit(rps),
		burst:   burst,
		idleTTL: defaultIdleTTL,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Limiter) limiterFor(key string) *rate.Limiter {
	now := l.now()
	l.sweep(now)
	v, ok := l.clients.Load(key)
	if !ok {
		fresh := &client{limiter: rate.NewLimiter(l.rate, l.burst)}
		fresh.lastSeen.Store(now.UnixNano())
		v, _ = l.clients.LoadOrStore(key, fresh)
	}
	c := v.(*client)
	c.lastSeen.Store(now.UnixNano())
	return c.limiter
}

func (l *Limiter) sweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(l.idleTTL) || !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	cutoff := now.Add(-l.idleTTL).UnixNano()
	l.clients.Range(func(k, v any) bool {
		if v.(*client).lastSeen.Load() < cutoff {
			l.clients.Delete(k)
		}
		return true
	})
}

// Middleware rejects requests over the limit with 429. It expects the ClientIP
// middleware to have run first.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	if l.rate <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)
		if !l.limiterFor(ip).Allow() {
			l.logger.WarnContext(ctx, "rate limit exceeded",
				"path", r.URL.Path,
				"request_id", requestcontext.RequestID(ctx),
			)
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
