package usecase

import (
	"context"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	requestRepo "shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
)

// Create lists a new item. The owner must exist, and when the item answers
// an item request, that request must exist too.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateInput) (item.CreateOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return item.CreateOutput{}, item.ErrBlankName
	}
	if strings.TrimSpace(input.Description) == "" {
		return item.CreateOutput{}, item.ErrBlankDescription
	}

	owner, err := uc.userRepo.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneUser: %v", err)
		return item.CreateOutput{}, err
	}
	if owner.ID == 0 {
		return item.CreateOutput{}, item.ErrOwnerNotFound
	}

	if input.RequestID != nil {
		req, err := uc.requestRepo.GetOneRequest(ctx, requestRepo.GetOneRequestOptions{ID: *input.RequestID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneRequest: %v", err)
			return item.CreateOutput{}, err
		}
		if req.ID == 0 {
			return item.CreateOutput{}, item.ErrRequestNotFound
		}
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
		Available:   input.Available,
		RequestID:   input.RequestID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateOutput{}, err
	}

	return item.CreateOutput{Item: created}, nil
}
