package usecase

import (
	"context"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	itemRepo "shareit/internal/item/repository"
)

// Create opens a booking in the WAITING state. The item must exist, be
// available, and not belong to the booker; the period must be non-empty and
// must not overlap an APPROVED booking of the same item.
func (uc *implUseCase) Create(ctx context.Context, input booking.CreateInput) (booking.CreateOutput, error) {
	if !input.Start.Before(input.End) {
		return booking.CreateOutput{}, booking.ErrInvalidPeriod
	}

	item, err := uc.itemRepo.GetOneItem(ctx, itemRepo.GetOneItemOptions{ID: input.ItemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
		return booking.CreateOutput{}, err
	}
	if item.ID == 0 {
		return booking.CreateOutput{}, booking.ErrItemNotFound
	}
	if item.OwnerID == input.BookerID {
		return booking.CreateOutput{}, booking.ErrSelfBooking
	}
	if !item.Available {
		return booking.CreateOutput{}, booking.ErrItemUnavailable
	}

	created, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
		ItemID:   input.ItemID,
		BookerID: input.BookerID,
		Start:    input.Start,
		End:      input.End,
	})
	if err != nil {
		if err != booking.ErrOverlap && err != booking.ErrItemNotFound {
			uc.l.Errorf(ctx, "uc.Create CreateBooking: %v", err)
		}
		return booking.CreateOutput{}, err
	}

	rec, err := uc.repo.GetOneBooking(ctx, created.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneBooking: %v", err)
		return booking.CreateOutput{}, err
	}

	return booking.CreateOutput{View: viewFromRecord(rec)}, nil
}
