package booking

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Approve(ctx context.Context, input ApproveInput) (ApproveOutput, error)
	// Detail returns a booking to its booker or the owner of the booked item.
	Detail(ctx context.Context, userID, bookingID int64) (DetailOutput, error)
	ListForBooker(ctx context.Context, input ListInput) (ListOutput, error)
	ListForOwner(ctx context.Context, input ListInput) (ListOutput, error)
}
