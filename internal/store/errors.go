package store

import "errors"

// Sentinel errors returned by directory methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a create or update would leave
	// two records sharing the same email value. The comparison is exact
	// byte equality, no case folding.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup, update, delete, or
	// authentication attempt targets a record that does not exist. For
	// authentication it also covers the wrong-digest case so that callers
	// cannot tell the two apart.
	ErrUserNotFound = errors.New("no user was found")

	// ErrSamePassword is returned by update when the new credential digest
	// equals the stored one. The comparison is on digests, not plaintexts:
	// two different secrets that hash identically are rejected as "same",
	// an accepted limitation of content-addressed comparison.
	ErrSamePassword = errors.New("the new password must be different from the old one")
)
