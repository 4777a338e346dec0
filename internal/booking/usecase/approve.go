package usecase

import (
	"context"
	"errors"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// Approve moves a WAITING booking to APPROVED or REJECTED. Only the owner
// of the booked item may decide, and only once: the repository's conditional
// update makes sure a concurrent second caller loses and gets a conflict.
// An approval whose period collides with a booking approved in the meantime
// fails with ErrOverlap.
func (uc *implUseCase) Approve(ctx context.Context, input booking.ApproveInput) (booking.ApproveOutput, error) {
	rec, err := uc.repo.GetOneBooking(ctx, input.BookingID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Approve GetOneBooking: %v", err)
		return booking.ApproveOutput{}, err
	}
	if rec.Booking.ID == 0 {
		return booking.ApproveOutput{}, booking.ErrBookingNotFound
	}
	if rec.ItemOwnerID != input.OwnerID {
		return booking.ApproveOutput{}, booking.ErrNotOwner
	}
	if rec.Booking.Status != model.BookingStatusWaiting {
		return booking.ApproveOutput{}, booking.ErrAlreadyDecided
	}

	status := model.BookingStatusRejected
	if input.Approved {
		status = model.BookingStatusApproved
	}

	decided, ok, err := uc.repo.DecideBooking(ctx, repo.DecideBookingOptions{
		ID:     input.BookingID,
		Status: status,
	})
	if err != nil {
		if errors.Is(err, booking.ErrOverlap) {
			return booking.ApproveOutput{}, booking.ErrOverlap
		}
		uc.l.Errorf(ctx, "uc.Approve DecideBooking: %v", err)
		return booking.ApproveOutput{}, err
	}
	if !ok {
		// Lost the race: someone else already decided this booking.
		return booking.ApproveOutput{}, booking.ErrAlreadyDecided
	}

	rec.Booking = decided
	return booking.ApproveOutput{View: viewFromRecord(rec)}, nil
}
