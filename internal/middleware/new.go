package middleware

import (
	"missionmind/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers applied by the HTTP
// server: request logging and per-client rate limiting.
type Middleware struct {
	l   log.Logger
	cfg Config
}

type Config struct {
	// RateLimitPerMin caps requests per client IP per minute. Zero or
	// negative disables the limiter.
	RateLimitPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
