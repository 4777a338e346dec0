package item

import "shareit/internal/model"

// View is an item enriched for presentation: its comments always, and the
// last/next bookings when the viewer owns the item.
type View struct {
	Item        model.Item
	Comments    []model.Comment
	LastBooking *model.Booking
	NextBooking *model.Booking
}

// --- UseCase Inputs ---

type CreateInput struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateInput carries a partial patch; zero fields are left untouched.
// Available is a pointer so "set to false" and "not provided" differ.
type UpdateInput struct {
	OwnerID     int64
	ItemID      int64
	Name        string
	Description string
	Available   *bool
}

type ListInput struct {
	OwnerID int64
	From    int
	Size    int
}

type SearchInput struct {
	Text string
	From int
	Size int
}

type AddCommentInput struct {
	AuthorID int64
	ItemID   int64
	Text     string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Item model.Item
}

type UpdateOutput struct {
	Item model.Item
}

type DetailOutput struct {
	View View
}

type ListOutput struct {
	Views []View
}

type SearchOutput struct {
	Items []model.Item
}

type AddCommentOutput struct {
	Comment model.Comment
}
