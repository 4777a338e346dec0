package usecase

import (
	"context"

	"shareit/internal/booking"
)

// Detail returns a booking to its booker or to the owner of the booked
// item. Anyone else sees it as absent.
func (uc *implUseCase) Detail(ctx context.Context, userID, bookingID int64) (booking.DetailOutput, error) {
	rec, err := uc.repo.GetOneBooking(ctx, bookingID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneBooking: %v", err)
		return booking.DetailOutput{}, err
	}
	if rec.Booking.ID == 0 {
		return booking.DetailOutput{}, booking.ErrBookingNotFound
	}
	if rec.Booking.BookerID != userID && rec.ItemOwnerID != userID {
		return booking.DetailOutput{}, booking.ErrBookingNotFound
	}
	return booking.DetailOutput{View: viewFromRecord(rec)}, nil
}
