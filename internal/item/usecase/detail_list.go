package usecase

import (
	"context"
	"time"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Detail returns the item with its comments. The last/next booking edges
// are visible to the owner only.
func (uc *implUseCase) Detail(ctx context.Context, userID, itemID int64) (item.DetailOutput, error) {
	found, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: itemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailOutput{}, err
	}
	if found.ID == 0 {
		return item.DetailOutput{}, item.ErrItemNotFound
	}

	comments, err := uc.repo.ListComments(ctx, repo.ListCommentsOptions{ItemIDs: []int64{itemID}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListComments: %v", err)
		return item.DetailOutput{}, err
	}

	view := item.View{Item: found, Comments: comments}

	if found.OwnerID == userID {
		edges, err := uc.repo.BookingEdges(ctx, repo.BookingEdgesOptions{
			ItemIDs: []int64{itemID},
			At:      time.Now(),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Detail BookingEdges: %v", err)
			return item.DetailOutput{}, err
		}
		if e, ok := edges[itemID]; ok {
			view.LastBooking = e.Last
			view.NextBooking = e.Next
		}
	}

	return item.DetailOutput{View: view}, nil
}

// ListByOwner pages through the owner's items, each with comments and
// booking edges.
func (uc *implUseCase) ListByOwner(ctx context.Context, input item.ListInput) (item.ListOutput, error) {
	items, err := uc.repo.ListByOwner(ctx, repo.ListItemsOptions{
		OwnerID: input.OwnerID,
		Limit:   input.Size,
		Offset:  input.From,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByOwner ListByOwner: %v", err)
		return item.ListOutput{}, err
	}
	if len(items) == 0 {
		return item.ListOutput{}, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	comments, err := uc.repo.ListComments(ctx, repo.ListCommentsOptions{ItemIDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByOwner ListComments: %v", err)
		return item.ListOutput{}, err
	}
	byItem := make(map[int64][]model.Comment)
	for _, cm := range comments {
		byItem[cm.ItemID] = append(byItem[cm.ItemID], cm)
	}

	edges, err := uc.repo.BookingEdges(ctx, repo.BookingEdgesOptions{
		ItemIDs: ids,
		At:      time.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByOwner BookingEdges: %v", err)
		return item.ListOutput{}, err
	}

	views := make([]item.View, len(items))
	for i, it := range items {
		view := item.View{Item: it, Comments: byItem[it.ID]}
		if e, ok := edges[it.ID]; ok {
			view.LastBooking = e.Last
			view.NextBooking = e.Next
		}
		views[i] = view
	}

	return item.ListOutput{Views: views}, nil
}
