package usecase

import (
	"context"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
)

// Update applies a partial patch to an item. Only the owner may edit.
// An omitted field keeps its value; a provided one must not be blank.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateInput) (item.UpdateOutput, error) {
	if input.Name != "" && strings.TrimSpace(input.Name) == "" {
		return item.UpdateOutput{}, item.ErrBlankName
	}
	if input.Description != "" && strings.TrimSpace(input.Description) == "" {
		return item.UpdateOutput{}, item.ErrBlankDescription
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ItemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return item.UpdateOutput{}, err
	}
	if existing.ID == 0 {
		return item.UpdateOutput{}, item.ErrItemNotFound
	}
	if existing.OwnerID != input.OwnerID {
		return item.UpdateOutput{}, item.ErrNotOwner
	}

	available := existing.Available
	if input.Available != nil {
		available = *input.Available
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ItemID,
		Name:        uc.coalesce(input.Name, existing.Name),
		Description: uc.coalesce(input.Description, existing.Description),
		Available:   available,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateOutput{}, err
	}
	return item.UpdateOutput{Item: updated}, nil
}
