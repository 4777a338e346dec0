package item

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrOwnerNotFound   = errors.New("owner not found")
	ErrRequestNotFound = errors.New("item request not found")
	ErrNotOwner        = errors.New("only the owner can edit an item")
	// Binding catches absent fields; these catch whitespace-only values.
	ErrBlankName        = errors.New("item name must not be blank")
	ErrBlankDescription = errors.New("item description must not be blank")
	ErrBlankComment     = errors.New("comment text must not be blank")
	// ErrNoCompletedBooking gates comments on a finished booking of the item.
	ErrNoCompletedBooking = errors.New("commenting requires a completed booking of the item")
)
