package model

// Item is a listing offered for sharing by its owner. RequestID links the
// item to the item request it was created to answer, when there is one.
type Item struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}
