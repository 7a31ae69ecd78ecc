package service

//go:generate mockgen -source=interfaces.go -destination=../mock/user_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

// UserService is the application-level facade over the user directory.
// It validates transient request payloads, derives credential digests,
// and delegates record ownership to the directory. Handlers depend on
// this interface, never on the directory itself.
type UserService interface {
	// ListUsers returns every account in insertion order.
	ListUsers(ctx context.Context) []models.User

	// GetUserByID returns the account with the given identifier or a
	// store.ErrUserNotFound-wrapping error.
	GetUserByID(ctx context.Context, id string) (models.User, error)

	// GetUserByEmail returns the account whose email matches exactly.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// SearchUsers returns accounts whose name contains namePart,
	// case-insensitively.
	SearchUsers(ctx context.Context, namePart string) []models.User

	// SignUp validates the payload, hashes the password, and creates a
	// new account.
	SignUp(ctx context.Context, request models.CreateUserRequest) (models.User, error)

	// UpdateUser validates the payload, hashes the password, and
	// overwrites the account with the given id.
	UpdateUser(ctx context.Context, id string, request models.CreateUserRequest) (models.User, error)

	// DeleteUser removes the account with the given id.
	DeleteUser(ctx context.Context, id string) error

	// Login validates the payload and authenticates the account. Every
	// authentication failure surfaces as ErrWrongCredentials with no
	// distinction between an unknown email and a wrong password.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
}
