package usecase

import (
	bookingRepo "shareit/internal/booking/repository"
	itemRepo "shareit/internal/item/repository"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	repo     bookingRepo.Repository
	itemRepo itemRepo.Repository
	l        log.Logger
}

// New creates a new booking UseCase implementation.
func New(repo bookingRepo.Repository, items itemRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		itemRepo: items,
		l:        l,
	}
}
