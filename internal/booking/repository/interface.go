package repository

import (
	"context"

	"shareit/internal/model"
)

// Record is a booking row joined with the booked item and the booker.
// ItemOwnerID carries the owner for authorization checks.
type Record struct {
	Booking     model.Booking
	ItemName    string
	ItemOwnerID int64
	BookerName  string
}

// Repository is the interface for booking data access operations.
//
// CreateBooking runs the overlap check and the insert inside one transaction
// holding a row lock on the booked item; it returns booking.ErrOverlap when
// the period collides with an APPROVED booking of the same item.
//
// DecideBooking performs the WAITING→terminal transition inside one
// transaction holding the same item row lock, so an approval re-checks the
// period against APPROVED bookings that landed after the request was created
// and fails with booking.ErrOverlap on a collision. Decided reports false
// when no WAITING row matched, meaning a concurrent caller already decided
// the booking.
type Repository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (model.Booking, error)
	GetOneBooking(ctx context.Context, id int64) (Record, error)
	DecideBooking(ctx context.Context, opt DecideBookingOptions) (model.Booking, bool, error)
	ListByBooker(ctx context.Context, opt ListBookingsOptions) ([]Record, error)
	ListByOwner(ctx context.Context, opt ListBookingsOptions) ([]Record, error)
}
