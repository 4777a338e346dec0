package usecase

import (
	"context"
	"net/mail"

	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Create registers a new user after checking email syntax and uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (user.CreateOutput, error) {
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return user.CreateOutput{}, user.ErrInvalidEmail
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneUser: %v", err)
		return user.CreateOutput{}, err
	}
	if existing.ID != 0 {
		return user.CreateOutput{}, user.ErrDuplicateEmail
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
		return user.CreateOutput{}, err
	}

	return user.CreateOutput{User: created}, nil
}
