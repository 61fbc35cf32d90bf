package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique user identity used during authentication.
	// It is stored lowercase; Normalize must be applied before any
	// repository call so that uniqueness is case-insensitive.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext. It is excluded from
	// JSON so that no response can carry it to a caller.
	PasswordHash string `json:"-"`

	// Password carries the plaintext password of an inbound registration
	// or login request. It exists only for the duration of that call:
	// the service hashes it and clears it before the user value travels
	// any further. Never persisted, never logged.
	Password string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Normalize lowercases and trims the email so that lookups and the
// unique index operate on a canonical form.
func (u *User) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

// Public returns a copy of the user that is safe to hand to callers:
// all credential fields are zeroed out.
func (u User) Public() User {
	u.PasswordHash = ""
	u.Password = ""
	return u
}
