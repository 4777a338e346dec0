package model

import "time"

// Comment is feedback left on an item by a user who completed a booking of it.
// AuthorName is populated by repositories joining the users table.
type Comment struct {
	ID         int64
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Text       string
	Created    time.Time
}
