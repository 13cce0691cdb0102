package models

import "time"

// User represents an account record held by the credential store.
// The core reads it during login and never mutates it.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the login identifier. Lookups are exact and case-sensitive.
	Email string `json:"email"`

	// Password stores the credential value. Depending on the configured
	// password scheme this is an encoded argon2id/bcrypt hash or, for the
	// legacy plain scheme, the raw value.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
