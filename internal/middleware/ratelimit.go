package middleware

import (
	"golang.org/x/time/rate"

	"github.com/gin-gonic/gin"

	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/response"
)

// RateLimit enforces a per-client request budget. Clients are keyed by the
// acting-user header when present, falling back to the remote IP; limiters
// live in a TTL-bounded LRU so idle clients age out.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.config.RateLimit.PerMin
	burst := m.config.RateLimit.Burst
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = perMin
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderSharerUserID)
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(perMin)/60.0), burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			response.Error(c, pkgErrors.NewHTTPError(429, "rate limit exceeded"))
			c.Abort()
			return
		}

		c.Next()
	}
}
