package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"missionmind/pkg/response"
)

// clientLimiters keeps one token bucket per client key. Buckets expire after
// five idle minutes so one-off clients do not accumulate.
type clientLimiters struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newClientLimiters(requestsPerMin int) *clientLimiters {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &clientLimiters{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (cl *clientLimiters) allow(key string) bool {
	limiter, ok := cl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(cl.rate, cl.burst)
		cl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects requests over the configured per-IP budget with 429.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	if mw.cfg.RateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiters := newClientLimiters(mw.cfg.RateLimitPerMin)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiters.allow(ip) {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit client %s over limit", ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
