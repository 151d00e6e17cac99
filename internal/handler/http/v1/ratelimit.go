package v1

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// callerLimiter хранит token bucket на каждого клиента
type callerLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newCallerLimiter(rps float64, burst int) *callerLimiter {
	if burst < 1 {
		burst = 1
	}
	return &callerLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *callerLimiter) get(caller string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[caller]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[caller] = limiter
	}
	return limiter
}

// RateLimitMiddleware ограничивает частоту запросов каждого клиента.
// rps <= 0 отключает ограничение. Должен стоять после APIKeyAuthMiddleware.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := newCallerLimiter(rps, burst)

	return func(c *gin.Context) {
		if !limiter.get(callerID(c)).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
