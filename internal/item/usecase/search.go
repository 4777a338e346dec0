package usecase

import (
	"context"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
)

// Search matches available items by substring over name and description.
// A blank query is an empty result, not an error.
func (uc *implUseCase) Search(ctx context.Context, input item.SearchInput) (item.SearchOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return item.SearchOutput{}, nil
	}

	items, err := uc.repo.SearchItems(ctx, repo.SearchItemsOptions{
		Text:   text,
		Limit:  input.Size,
		Offset: input.From,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search SearchItems: %v", err)
		return item.SearchOutput{}, err
	}

	return item.SearchOutput{Items: items}, nil
}
