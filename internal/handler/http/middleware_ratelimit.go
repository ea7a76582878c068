// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/app"
	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/utils"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an unused bucket is kept. A bucket that has
// been idle longer than its refill time is full, so dropping it changes
// nothing for the user.
const (
	limiterIdleTTL = 10 * time.Minute
	maxLimiterIdle = 24 * time.Hour
)

type userLimiter struct {
	*rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore keeps one token bucket per active user and drops idle
// ones on access.
type rateLimiterStore struct {
	mu        sync.Mutex
	limiters  map[int64]*userLimiter
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	clock     clock.Clock
	lastSweep time.Time
}

func newRateLimiterStore(limit rate.Limit, burst int, c clock.Clock) *rateLimiterStore {
	idleTTL := limiterIdleTTL
	if limit > 0 {
		refill := float64(burst) / float64(limit)
		idleTTL = max(idleTTL, time.Duration(min(refill, maxLimiterIdle.Seconds())*float64(time.Second)))
	}
	return &rateLimiterStore{
		limiters:  make(map[int64]*userLimiter),
		limit:     limit,
		burst:     burst,
		idleTTL:   idleTTL,
		clock:     c,
		lastSweep: c.Now(),
	}
}

func (s *rateLimiterStore) get(userID int64) *rate.Limiter {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= s.idleTTL {
		s.sweep(now)
	}

	limiter, ok := s.limiters[userID]
	if !ok {
		limiter = &userLimiter{Limiter: rate.NewLimiter(s.limit, s.burst)}
		s.limiters[userID] = limiter
	}
	limiter.lastSeen = now
	return limiter.Limiter
}

func (s *rateLimiterStore) sweep(now time.Time) {
	for id, l := range s.limiters {
		if now.Sub(l.lastSeen) >= s.idleTTL {
			delete(s.limiters, id)
		}
	}
	s.lastSweep = now
}

func (s *rateLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// withRateLimit throttles authenticated requests per user. It must run
// after auth. The client treats 429 as a retryable network error.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := utils.UserIDFromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		reservation := h.limiter.get(userID).Reserve()
		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()

			logger.FromRequest(r).Warn().Dur("retry_after", delay).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			http.Error(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
