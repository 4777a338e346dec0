package repository

// CreateUserOptions holds the parameters for inserting a user.
type CreateUserOptions struct {
	Name  string
	Email string
}

// GetOneUserOptions selects a single user by ID or by Email.
type GetOneUserOptions struct {
	ID    int64
	Email string
}

// UpdateUserOptions holds the full post-patch state of a user.
type UpdateUserOptions struct {
	ID    int64
	Name  string
	Email string
}
