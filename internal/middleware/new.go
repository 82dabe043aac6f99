package middleware

import (
	"product-catalog/pkg/log"
)

// Config carries the knobs the middlewares read at construction time.
type Config struct {
	SupportedVersions []string
	RateLimit         RateLimitConfig
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type Middleware struct {
	l        log.Logger
	versions map[string]struct{}
	limiter  *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	versions := make(map[string]struct{}, len(cfg.SupportedVersions))
	for _, v := range cfg.SupportedVersions {
		versions[NormalizeVersion(v)] = struct{}{}
	}

	var limiter *rateLimiter
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin > 0 {
		limiter = newRateLimiter(cfg.RateLimit.RequestsPerMin)
	}

	return Middleware{
		l:        l,
		versions: versions,
		limiter:  limiter,
	}
}
