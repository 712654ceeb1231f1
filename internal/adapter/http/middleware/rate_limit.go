package middleware

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"budget_service/internal/infrastructure/metrics"
	"budget_service/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// UserIDHeader identifies the caller. Authentication happens upstream.
const UserIDHeader = "X-User-ID"

const limiterIdleTTL = 10 * time.Minute

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)

// KeyLimiter applies a token bucket per caller key and evicts idle entries.
type KeyLimiter struct {
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
	byKey   map[string]*limiterEntry
	hits    uint64
	idleTTL time.Duration
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyLimiter returns nil when rps is not positive, which disables limiting.
func NewKeyLimiter(rps float64, burst int) *KeyLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	return &KeyLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		byKey:   make(map[string]*limiterEntry),
		idleTTL: limiterIdleTTL,
	}
}

func (l *KeyLimiter) Allow(key string, now time.Time) bool {
	if l == nil {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.byKey[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byKey[key] = e
	}
	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%512 == 0 {
		cutoff := now.Add(-l.idleTTL)
		for k, v := range l.byKey {
			if v.lastSeen.Before(cutoff) {
				delete(l.byKey, k)
			}
		}
	}
	return allowed
}

// RateLimit rejects callers over their budget with 429. The caller is the
// X-User-ID header when present, the client IP otherwise.
func RateLimit(l *KeyLimiter, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		if !l.Allow(key, time.Now()) {
			if m != nil {
				m.RateLimited.Inc()
			}
			log.Printf("[budget][middleware] rate limited key=%s path=%s", key, c.Request.URL.Path)
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
