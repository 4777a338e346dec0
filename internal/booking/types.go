package booking

import (
	"time"

	"shareit/internal/model"
)

// View is a booking enriched with display fields joined from related rows.
type View struct {
	Booking    model.Booking
	ItemName   string
	BookerName string
}

// --- UseCase Inputs ---

type CreateInput struct {
	BookerID int64
	ItemID   int64
	Start    time.Time
	End      time.Time
}

type ApproveInput struct {
	OwnerID   int64
	BookingID int64
	Approved  bool
}

// ListInput lists bookings for a booker or an item owner.
type ListInput struct {
	UserID int64
	State  State
	From   int
	Size   int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	View View
}

type ApproveOutput struct {
	View View
}

type DetailOutput struct {
	View View
}

type ListOutput struct {
	Views []View
}
