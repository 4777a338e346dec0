package request

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	// ListMine returns the author's own requests, newest first.
	ListMine(ctx context.Context, authorID int64) (ListOutput, error)
	// ListOthers pages through other users' requests, newest first.
	ListOthers(ctx context.Context, input ListOthersInput) (ListOutput, error)
	Detail(ctx context.Context, requestID int64) (DetailOutput, error)
}
