package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrItemUnavailable = errors.New("item is not available for booking")
	ErrInvalidPeriod   = errors.New("booking start must be before end")
	// ErrSelfBooking: an owner booking their own item sees the item as absent.
	ErrSelfBooking    = errors.New("owner cannot book own item")
	ErrNotOwner       = errors.New("only the item owner can decide a booking")
	ErrAlreadyDecided = errors.New("booking already left the waiting state")
	ErrOverlap        = errors.New("item already booked for an overlapping period")
)
