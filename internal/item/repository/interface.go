package repository

import (
	"context"

	"shareit/internal/model"
)

// BookingEdges holds the most recently started past-or-current booking and
// the next upcoming booking of an item, either may be nil.
type BookingEdges struct {
	Last *model.Booking
	Next *model.Booking
}

// Repository is the interface for item and comment data access operations.
// GetOneItem returns the zero Item (ID == 0) when no row matches.
type Repository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	ListByOwner(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	SearchItems(ctx context.Context, opt SearchItemsOptions) ([]model.Item, error)

	// Comments
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	ListComments(ctx context.Context, opt ListCommentsOptions) ([]model.Comment, error)
	// HasFinishedBooking reports whether the author completed an APPROVED
	// booking of the item that ended before the given instant.
	HasFinishedBooking(ctx context.Context, opt HasFinishedBookingOptions) (bool, error)

	// BookingEdges returns last/next bookings per item id for owner views.
	BookingEdges(ctx context.Context, opt BookingEdgesOptions) (map[int64]BookingEdges, error)
}
