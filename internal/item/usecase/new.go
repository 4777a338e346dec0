package usecase

import (
	itemRepo "shareit/internal/item/repository"
	requestRepo "shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo        itemRepo.Repository
	userRepo    userRepo.Repository
	requestRepo requestRepo.Repository
	l           log.Logger
}

// New creates a new item UseCase implementation.
func New(repo itemRepo.Repository, users userRepo.Repository, requests requestRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		userRepo:    users,
		requestRepo: requests,
		l:           l,
	}
}
