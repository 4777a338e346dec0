package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the interface for item-request data access operations.
// GetOneRequest returns the zero ItemRequest (ID == 0) when no row matches.
type Repository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (model.ItemRequest, error)
	GetOneRequest(ctx context.Context, opt GetOneRequestOptions) (model.ItemRequest, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]model.ItemRequest, error)
	ListOthers(ctx context.Context, opt ListOthersOptions) ([]model.ItemRequest, error)
	// ListAnswers returns the items created to answer the given requests,
	// keyed by request id.
	ListAnswers(ctx context.Context, requestIDs []int64) (map[int64][]model.Item, error)
}
