package repository

import (
	"time"

	"shareit/internal/booking"
	"shareit/internal/model"
)

// CreateBookingOptions holds the parameters for inserting a booking.
type CreateBookingOptions struct {
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

// DecideBookingOptions carries the terminal status for a WAITING booking.
type DecideBookingOptions struct {
	ID     int64
	Status model.BookingStatus
}

// ListBookingsOptions filters bookings for one side of the marketplace.
// UserID is the booker for ListByBooker and the item owner for ListByOwner.
// Now anchors the CURRENT/PAST/FUTURE time-window states.
type ListBookingsOptions struct {
	UserID int64
	State  booking.State
	Now    time.Time
	Limit  int
	Offset int
}
