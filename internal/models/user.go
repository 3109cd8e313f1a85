package models

// UserID identifies a User.
type UserID string

// User represents a person who can pay for or share expenses.
// Users are created on demand and never mutated or deleted afterwards.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID UserID `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`
}

// UnknownUserName is shown for ids that do not resolve to a user.
const UnknownUserName = "Unknown"

// UserName returns the display name for id, or UnknownUserName.
func UserName(users []User, id UserID) string {
	for _, u := range users {
		if u.ID == id {
			return u.Name
		}
	}
	return UnknownUserName
}
