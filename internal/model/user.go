package model

// User is a registered member of the marketplace. Every other entity holds
// a non-owning reference to the user that created it.
type User struct {
	ID    int64
	Name  string
	Email string
}
