package repository

import "time"

// CreateRequestOptions holds the parameters for inserting an item request.
type CreateRequestOptions struct {
	AuthorID    int64
	Description string
	Created     time.Time
}

// GetOneRequestOptions selects a single request by ID.
type GetOneRequestOptions struct {
	ID int64
}

// ListOthersOptions pages through requests excluding the given author.
type ListOthersOptions struct {
	ExcludeAuthorID int64
	Limit           int
	Offset          int
}
