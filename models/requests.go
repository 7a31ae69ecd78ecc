package models

// CreateUserRequest is the transient payload of the signup and update
// endpoints. It is validated before any of its values reach a [User]
// record and is never persisted as-is.
type CreateUserRequest struct {
	// Name is the desired display name. Required.
	Name string `json:"name"`

	// Email is the desired e-mail address. Required, must be well-formed.
	Email string `json:"email"`

	// Password is the plaintext secret supplied by the caller. Required.
	// It is hashed before storage and never retained.
	Password string `json:"password"`
}

// LoginRequest is the transient payload of the login endpoint. The
// password is consumed only for comparison against a stored digest.
type LoginRequest struct {
	// Email identifies the account to authenticate. Required.
	Email string `json:"email"`

	// Password is the plaintext secret to verify. Required.
	Password string `json:"password"`
}
