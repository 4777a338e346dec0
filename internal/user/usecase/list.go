package usecase

import (
	"context"

	"shareit/internal/user"
)

// List returns all registered users ordered by id.
func (uc *implUseCase) List(ctx context.Context) (user.ListOutput, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return user.ListOutput{}, err
	}
	return user.ListOutput{Users: users}, nil
}
