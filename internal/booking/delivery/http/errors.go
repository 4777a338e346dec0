package http

import (
	"errors"

	"shareit/internal/booking"
	pkgErrors "shareit/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var stateErr *booking.UnsupportedStateError
	if errors.As(err, &stateErr) {
		return pkgErrors.NewHTTPErrorf(400, "Unknown state: %s", stateErr.Value)
	}

	switch err {
	case booking.ErrBookingNotFound:
		return pkgErrors.NewHTTPError(404, "booking not found")
	case booking.ErrItemNotFound, booking.ErrSelfBooking:
		// A self-booked item is reported as absent, same as a missing one.
		return pkgErrors.NewHTTPError(404, "item not found")
	case booking.ErrItemUnavailable:
		return pkgErrors.NewHTTPError(400, "item is not available for booking")
	case booking.ErrInvalidPeriod:
		return pkgErrors.NewHTTPError(400, "booking start must be before end")
	case booking.ErrNotOwner:
		return pkgErrors.NewHTTPError(403, "only the item owner can decide a booking")
	case booking.ErrAlreadyDecided:
		return pkgErrors.NewHTTPError(409, "booking already left the waiting state")
	case booking.ErrOverlap:
		return pkgErrors.NewHTTPError(409, "item already booked for an overlapping period")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
