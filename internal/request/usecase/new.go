package usecase

import (
	"shareit/internal/request/repository"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of request.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new item-request UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
