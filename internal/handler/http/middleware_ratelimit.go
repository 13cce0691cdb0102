package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/utils"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client's bucket is kept after its last request.
const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// ipRateLimiter keeps one token bucket per client IP. Idle buckets are swept
// on access, at most once per limiterIdleTTL.
type ipRateLimiter struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	lastSweep time.Time

	now func() time.Time
}

// newIPRateLimiter returns nil when rps is not positive, which disables
// limiting. A non-positive burst defaults to rps rounded up.
func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = int(math.Ceil(rps))
	}

	return &ipRateLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: make(map[string]*clientLimiter),
		now:      time.Now,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for key, cl := range l.limiters {
			if now.Sub(cl.lastAccess) > limiterIdleTTL {
				delete(l.limiters, key)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.limiters[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = cl
	}
	cl.lastAccess = now

	return cl.limiter.AllowN(now, 1)
}

func (l *ipRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// retryAfter is the number of whole seconds until one token is refilled.
func (l *ipRateLimiter) retryAfter() int {
	seconds := int(math.Ceil(1.0 / float64(l.limit)))
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

// withRateLimit rejects clients that exceed their token bucket with
// 429 Too Many Requests and a Retry-After header.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !h.limiter.allow(ip) {
			logger.FromRequest(r).Warn().Str("ip", ip).Msg("rate limit exceeded")
			h.collector.RecordRateLimited()

			w.Header().Set("Retry-After", strconv.Itoa(h.limiter.retryAfter()))
			utils.WriteJSONError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr, or RemoteAddr itself when it
// has no port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
