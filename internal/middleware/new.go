package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"shareit/config"
	userRepo "shareit/internal/user/repository"
	"shareit/pkg/log"
)

// Middleware bundles the cross-cutting HTTP middlewares: acting-user
// identification, request ids, and per-client rate limiting.
type Middleware struct {
	l        log.Logger
	users    userRepo.Repository
	config   *config.Config
	userIDs  *expirable.LRU[int64, struct{}]
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, users userRepo.Repository, cfg *config.Config) Middleware {
	return Middleware{
		l:      l,
		users:  users,
		config: cfg,
		userIDs: expirable.NewLRU[int64, struct{}](
			cfg.Cache.UserSize, nil, time.Duration(cfg.Cache.UserTTLSeconds)*time.Second,
		),
		limiters: expirable.NewLRU[string, *rate.Limiter](
			cfg.RateLimit.ClientSize, nil, time.Duration(cfg.RateLimit.ClientTTLSeconds)*time.Second,
		),
	}
}
