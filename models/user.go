package models

import "time"

// User represents an account record owned by the user directory.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user, generated at
	// creation time and never reassigned.
	ID string `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique e-mail address of the user.
	// No two records may share an Email value at any point in time.
	Email string `json:"email"`

	// PasswordHash stores the user's credential digest.
	// This value MUST be a derived value (hash output), never plaintext.
	// It is never exposed via JSON and is used only for authentication.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the most recent mutation.
	// It equals CreatedAt until the record is first updated.
	UpdatedAt time.Time `json:"updated_at"`
}
