package usecase

import (
	"context"
	"strings"
	"time"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	userRepo "shareit/internal/user/repository"
)

// AddComment attaches a comment to an item. The author must have an
// APPROVED booking of the item that already ended.
func (uc *implUseCase) AddComment(ctx context.Context, input item.AddCommentInput) (item.AddCommentOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return item.AddCommentOutput{}, item.ErrBlankComment
	}

	found, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ItemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment GetOneItem: %v", err)
		return item.AddCommentOutput{}, err
	}
	if found.ID == 0 {
		return item.AddCommentOutput{}, item.ErrItemNotFound
	}

	now := time.Now()
	allowed, err := uc.repo.HasFinishedBooking(ctx, repo.HasFinishedBookingOptions{
		ItemID:   input.ItemID,
		AuthorID: input.AuthorID,
		Before:   now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment HasFinishedBooking: %v", err)
		return item.AddCommentOutput{}, err
	}
	if !allowed {
		return item.AddCommentOutput{}, item.ErrNoCompletedBooking
	}

	created, err := uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
		ItemID:   input.ItemID,
		AuthorID: input.AuthorID,
		Text:     input.Text,
		Created:  now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment CreateComment: %v", err)
		return item.AddCommentOutput{}, err
	}

	// Echo the author name without another round trip.
	author, err := uc.userRepo.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: input.AuthorID})
	if err == nil && author.ID != 0 {
		created.AuthorName = author.Name
	}

	return item.AddCommentOutput{Comment: created}, nil
}
