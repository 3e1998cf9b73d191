package models

import "time"

// User represents a registered buyer account.
// The identifier is immutable once assigned; Login is the unique identity
// checked on signup.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Login is the unique user identity checked on signup.
	Login string `json:"login"`

	// Name is the display name of the user. Must be non-empty.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// Links holds the hypermedia next-action links for this user.
	Links []Link `json:"links,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
