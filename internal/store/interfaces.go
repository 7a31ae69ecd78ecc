package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_directory_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

// UserDirectory is the in-memory collection of user records and the
// operations defined over it. The directory exclusively owns the
// collection; callers never retain references to its internal state
// beyond a single request.
//
// Implementations must be safe for concurrent use: every mutation together
// with its preceding uniqueness check is one atomic unit.
type UserDirectory interface {
	// List returns all records in insertion order.
	List(ctx context.Context) []models.User

	// GetByID returns the record with the given identifier or
	// ErrUserNotFound.
	GetByID(ctx context.Context, id string) (models.User, error)

	// GetByEmail returns the record whose email exactly matches the given
	// value (no case folding) or ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (models.User, error)

	// Search returns all records whose name contains namePart,
	// case-insensitively. An empty result is a valid outcome.
	Search(ctx context.Context, namePart string) []models.User

	// Create allocates an identifier, stamps both timestamps, and inserts
	// a new record. Fails with ErrEmailAlreadyExists if any existing
	// record holds the same email.
	Create(ctx context.Context, name, email, digest string) (models.User, error)

	// Update overwrites name, email, and digest of the record with the
	// given id and advances its updated timestamp. Fails with
	// ErrUserNotFound, ErrEmailAlreadyExists (another record holds the
	// target email), or ErrSamePassword (new digest equals stored digest).
	Update(ctx context.Context, id, name, email, digest string) (models.User, error)

	// Delete removes the record with the given id or returns
	// ErrUserNotFound.
	Delete(ctx context.Context, id string) error

	// Authenticate returns the record only if a user with that email
	// exists AND its stored digest equals the supplied digest; otherwise
	// ErrUserNotFound. The two failure modes are indistinguishable.
	Authenticate(ctx context.Context, email, digest string) (models.User, error)
}
