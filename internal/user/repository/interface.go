package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the interface for user data access operations.
// GetOneUser returns the zero User (ID == 0) when no row matches.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
