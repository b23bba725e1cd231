package middleware

import (
	"daily-task-manager/pkg/log"
)

// Config holds the tunables shared by the middlewares.
type Config struct {
	RateLimitPerMin int
	CronSecret      string
}

type Middleware struct {
	l           log.Logger
	cronSecret  string
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:           l,
		cronSecret:  cfg.CronSecret,
		rateLimiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
