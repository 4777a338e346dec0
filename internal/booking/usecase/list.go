package usecase

import (
	"context"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
)

// ListForBooker returns the user's own bookings, start-descending,
// narrowed by the state filter.
func (uc *implUseCase) ListForBooker(ctx context.Context, input booking.ListInput) (booking.ListOutput, error) {
	records, err := uc.repo.ListByBooker(ctx, listOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListForBooker ListByBooker: %v", err)
		return booking.ListOutput{}, err
	}
	return booking.ListOutput{Views: viewsFromRecords(records)}, nil
}

// ListForOwner returns bookings of all items the user owns,
// start-descending, narrowed by the state filter.
func (uc *implUseCase) ListForOwner(ctx context.Context, input booking.ListInput) (booking.ListOutput, error) {
	records, err := uc.repo.ListByOwner(ctx, listOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListForOwner ListByOwner: %v", err)
		return booking.ListOutput{}, err
	}
	return booking.ListOutput{Views: viewsFromRecords(records)}, nil
}

func listOptions(input booking.ListInput) repo.ListBookingsOptions {
	return repo.ListBookingsOptions{
		UserID: input.UserID,
		State:  input.State,
		Now:    time.Now(),
		Limit:  input.Size,
		Offset: input.From,
	}
}
