package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	// Detail returns the item with comments; booking edges only for the owner.
	Detail(ctx context.Context, userID, itemID int64) (DetailOutput, error)
	ListByOwner(ctx context.Context, input ListInput) (ListOutput, error)
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
	AddComment(ctx context.Context, input AddCommentInput) (AddCommentOutput, error)
}
