package request

import "shareit/internal/model"

// View is an item request together with the items created to answer it.
type View struct {
	Request model.ItemRequest
	Items   []model.Item
}

// --- UseCase Inputs ---

type CreateInput struct {
	AuthorID    int64
	Description string
}

// ListOthersInput pages through requests posted by everyone but the caller.
type ListOthersInput struct {
	AuthorID int64
	From     int
	Size     int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Request model.ItemRequest
}

type ListOutput struct {
	Views []View
}

type DetailOutput struct {
	View View
}
