package usecase

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
)

// ListMine returns the author's own requests, newest first, with answers.
func (uc *implUseCase) ListMine(ctx context.Context, authorID int64) (request.ListOutput, error) {
	requests, err := uc.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMine ListByAuthor: %v", err)
		return request.ListOutput{}, err
	}
	return uc.withAnswers(ctx, requests)
}

// ListOthers pages through requests posted by everyone but the caller,
// newest first, with answers.
func (uc *implUseCase) ListOthers(ctx context.Context, input request.ListOthersInput) (request.ListOutput, error) {
	requests, err := uc.repo.ListOthers(ctx, repo.ListOthersOptions{
		ExcludeAuthorID: input.AuthorID,
		Limit:           input.Size,
		Offset:          input.From,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOthers ListOthers: %v", err)
		return request.ListOutput{}, err
	}
	return uc.withAnswers(ctx, requests)
}

// Detail returns a single request with the items answering it.
func (uc *implUseCase) Detail(ctx context.Context, requestID int64) (request.DetailOutput, error) {
	found, err := uc.repo.GetOneRequest(ctx, repo.GetOneRequestOptions{ID: requestID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneRequest: %v", err)
		return request.DetailOutput{}, err
	}
	if found.ID == 0 {
		return request.DetailOutput{}, request.ErrRequestNotFound
	}

	answers, err := uc.repo.ListAnswers(ctx, []int64{requestID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListAnswers: %v", err)
		return request.DetailOutput{}, err
	}

	return request.DetailOutput{View: request.View{
		Request: found,
		Items:   answers[requestID],
	}}, nil
}

func (uc *implUseCase) withAnswers(ctx context.Context, requests []model.ItemRequest) (request.ListOutput, error) {
	if len(requests) == 0 {
		return request.ListOutput{}, nil
	}

	ids := make([]int64, len(requests))
	for i, req := range requests {
		ids[i] = req.ID
	}

	answers, err := uc.repo.ListAnswers(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "uc.withAnswers ListAnswers: %v", err)
		return request.ListOutput{}, err
	}

	views := make([]request.View, len(requests))
	for i, req := range requests {
		views[i] = request.View{Request: req, Items: answers[req.ID]}
	}
	return request.ListOutput{Views: views}, nil
}
