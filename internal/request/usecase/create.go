package usecase

import (
	"context"
	"strings"
	"time"

	"shareit/internal/request"
	repo "shareit/internal/request/repository"
)

// Create posts an item request with the creation instant stamped.
func (uc *implUseCase) Create(ctx context.Context, input request.CreateInput) (request.CreateOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return request.CreateOutput{}, request.ErrBlankDescription
	}

	created, err := uc.repo.CreateRequest(ctx, repo.CreateRequestOptions{
		AuthorID:    input.AuthorID,
		Description: input.Description,
		Created:     time.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRequest: %v", err)
		return request.CreateOutput{}, err
	}

	return request.CreateOutput{Request: created}, nil
}
