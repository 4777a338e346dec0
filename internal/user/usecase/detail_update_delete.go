package usecase

import (
	"context"
	"net/mail"

	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Detail retrieves a single user by ID. Returns ErrUserNotFound when absent.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (user.DetailOutput, error) {
	found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailOutput{}, err
	}
	if found.ID == 0 {
		return user.DetailOutput{}, user.ErrUserNotFound
	}
	return user.DetailOutput{User: found}, nil
}

// Update applies a partial patch. Empty fields keep their current values;
// a changed email must remain unique across users.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateInput) (user.UpdateOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneUser: %v", err)
		return user.UpdateOutput{}, err
	}
	if existing.ID == 0 {
		return user.UpdateOutput{}, user.ErrUserNotFound
	}

	if input.Email != "" && input.Email != existing.Email {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			return user.UpdateOutput{}, user.ErrInvalidEmail
		}
		other, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneUser by email: %v", err)
			return user.UpdateOutput{}, err
		}
		if other.ID != 0 && other.ID != input.ID {
			return user.UpdateOutput{}, user.ErrDuplicateEmail
		}
	}

	updated, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:    input.ID,
		Name:  uc.coalesce(input.Name, existing.Name),
		Email: uc.coalesce(input.Email, existing.Email),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateUser: %v", err)
		return user.UpdateOutput{}, err
	}
	return user.UpdateOutput{User: updated}, nil
}

// Delete removes a user by ID. Returns ErrUserNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneUser: %v", err)
		return err
	}
	if existing.ID == 0 {
		return user.ErrUserNotFound
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}
	if uc.cache != nil {
		uc.cache.ForgetUser(id)
	}
	return nil
}
