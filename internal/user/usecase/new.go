package usecase

import (
	"shareit/internal/user/repository"
	"shareit/pkg/log"
)

// IdentityCache invalidates cached identity checks when a user is removed.
type IdentityCache interface {
	ForgetUser(id int64)
}

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo  repository.Repository
	cache IdentityCache
	l     log.Logger
}

// New creates a new user UseCase implementation. cache may be nil when no
// identity cache sits in front of the store.
func New(repo repository.Repository, cache IdentityCache, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
