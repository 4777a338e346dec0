package model

import "time"

// ItemRequest is a post by a user seeking an item not currently listed.
// Other users answer it by creating items referencing the request.
type ItemRequest struct {
	ID          int64
	AuthorID    int64
	Description string
	Created     time.Time
}
