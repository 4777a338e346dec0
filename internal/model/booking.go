package model

import "time"

// BookingStatus is the approval status of a booking.
// WAITING is initial; APPROVED and REJECTED are terminal.
type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// Booking is a request by a booker to use an item over [Start, End).
type Booking struct {
	ID       int64
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
	Status   BookingStatus
}
