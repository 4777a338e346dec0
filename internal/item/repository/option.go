package repository

import "time"

// CreateItemOptions holds the parameters for inserting an item.
type CreateItemOptions struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// GetOneItemOptions selects a single item by ID.
type GetOneItemOptions struct {
	ID int64
}

// UpdateItemOptions holds the full post-patch state of an item.
type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
	Available   bool
}

// ListItemsOptions pages through one owner's items ordered by id.
type ListItemsOptions struct {
	OwnerID int64
	Limit   int
	Offset  int
}

// SearchItemsOptions matches available items by substring over name and
// description, case-insensitively.
type SearchItemsOptions struct {
	Text   string
	Limit  int
	Offset int
}

// CreateCommentOptions holds the parameters for inserting a comment.
type CreateCommentOptions struct {
	ItemID   int64
	AuthorID int64
	Text     string
	Created  time.Time
}

// ListCommentsOptions fetches comments for a set of items at once.
type ListCommentsOptions struct {
	ItemIDs []int64
}

// HasFinishedBookingOptions describes the comment-gating check.
type HasFinishedBookingOptions struct {
	ItemID   int64
	AuthorID int64
	Before   time.Time
}

// BookingEdgesOptions anchors last/next booking lookups at an instant.
type BookingEdgesOptions struct {
	ItemIDs []int64
	At      time.Time
}
