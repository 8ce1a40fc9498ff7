package middlewares

import (
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const minVisitorIdleTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles the auth mutations per client IP and blocks clients
// that exceed the burst for blockTime. Visitors idle for longer than idleTTL
// are evicted.
type RateLimiter struct {
	limiters  map[string]*visitor
	blocked   map[string]time.Time
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	blockTime time.Duration
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
	log       *zap.Logger
}

func NewRateLimiter(perSecond float64, burst int, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	idleTTL := blockTime
	if idleTTL < minVisitorIdleTTL {
		idleTTL = minVisitorIdleTTL
	}
	return &RateLimiter{
		limiters:  make(map[string]*visitor),
		blocked:   make(map[string]time.Time),
		limit:     rate.Limit(perSecond),
		burst:     burst,
		blockTime: blockTime,
		idleTTL:   idleTTL,
		now:       time.Now,
		log:       logger,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if retryAfter, ok := r.allow(ip); !ok {
			r.log.Warn("RateLimiter.Limit blocked client",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(req.Context())),
				zap.String(constvars.LoggingRemoteAddrKey, ip),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())+1))
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return blockedUntil.Sub(now), false
		}
		delete(r.blocked, ip)
	}

	v, exists := r.limiters[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.limiters[ip] = v
	}
	v.lastSeen = now

	if !v.limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return r.blockTime, false
	}
	return 0, true
}

// sweep drops idle visitors and expired blocks. It runs at most once per
// idleTTL and must be called with mu held.
func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.idleTTL {
		return
	}
	r.lastSweep = now

	for ip, blockedUntil := range r.blocked {
		if !now.Before(blockedUntil) {
			delete(r.blocked, ip)
		}
	}
	for ip, v := range r.limiters {
		if _, isBlocked := r.blocked[ip]; isBlocked {
			continue
		}
		if now.Sub(v.lastSeen) > r.idleTTL {
			delete(r.limiters, ip)
		}
	}
}
