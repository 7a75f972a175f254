package models

// User is the authenticated demo identity of the current session.
type User struct {
	ID    string
	Token string
}
