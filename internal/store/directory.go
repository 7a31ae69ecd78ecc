package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

// userDirectory is the in-memory implementation of [UserDirectory].
//
// Records live in a slice so that List returns them in insertion order.
// A sync.RWMutex guards the slice: read operations take the read lock,
// and every mutation holds the write lock across its uniqueness check and
// the mutation itself, so two concurrent signups with the same email
// cannot both pass the duplicate check.
type userDirectory struct {
	mu    sync.RWMutex
	users []models.User

	ids    *utils.UUIDGenerator
	logger *logger.Logger

	// now is the clock used for timestamp stamping. Overridable in tests.
	now func() time.Time
}

// NewUserDirectory constructs an empty [UserDirectory] backed by
// process-local memory.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserDirectory(logger *logger.Logger) UserDirectory {
	logger.Debug().Msg("creating user directory")
	return &userDirectory{
		users:  make([]models.User, 0),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
		now:    time.Now,
	}
}

func (d *userDirectory) List(ctx context.Context) []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	// return a copy so callers cannot mutate the owned collection
	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}

func (d *userDirectory) GetByID(ctx context.Context, id string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if i := d.indexByID(id); i >= 0 {
		return d.users[i], nil
	}

	return models.User{}, ErrUserNotFound
}

func (d *userDirectory) GetByEmail(ctx context.Context, email string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	// exact match, no case folding
	for _, u := range d.users {
		if u.Email == email {
			return u, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (d *userDirectory) Search(ctx context.Context, namePart string) []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	needle := strings.ToLower(namePart)

	matched := make([]models.User, 0)
	for _, u := range d.users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			matched = append(matched, u)
		}
	}

	return matched
}

func (d *userDirectory) Create(ctx context.Context, name, email, digest string) (models.User, error) {
	log := logger.FromContext(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Email == email {
			log.Err(ErrEmailAlreadyExists).Str("email", email).Msg("user creation rejected")
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	now := d.now()
	user := models.User{
		ID:           d.ids.Generate(),
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	d.users = append(d.users, user)

	log.Debug().Str("id", user.ID).Msg("user created")
	return user, nil
}

func (d *userDirectory) Update(ctx context.Context, id, name, email, digest string) (models.User, error) {
	log := logger.FromContext(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexByID(id)
	if i < 0 {
		log.Err(ErrUserNotFound).Str("id", id).Msg("user update rejected")
		return models.User{}, ErrUserNotFound
	}

	for _, u := range d.users {
		if u.Email == email && u.ID != id {
			log.Err(ErrEmailAlreadyExists).Str("email", email).Msg("user update rejected")
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	if d.users[i].PasswordHash == digest {
		log.Err(ErrSamePassword).Str("id", id).Msg("user update rejected")
		return models.User{}, ErrSamePassword
	}

	d.users[i].Name = name
	d.users[i].Email = email
	d.users[i].PasswordHash = digest
	d.users[i].UpdatedAt = d.now()

	log.Debug().Str("id", id).Msg("user updated")
	return d.users[i], nil
}

func (d *userDirectory) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexByID(id)
	if i < 0 {
		log.Err(ErrUserNotFound).Str("id", id).Msg("user deletion rejected")
		return ErrUserNotFound
	}

	d.users = append(d.users[:i], d.users[i+1:]...)

	log.Debug().Str("id", id).Msg("user deleted")
	return nil
}

func (d *userDirectory) Authenticate(ctx context.Context, email, digest string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	// single combined check: an unknown email and a wrong digest are
	// indistinguishable to the caller
	for _, u := range d.users {
		if u.Email == email && u.PasswordHash == digest {
			return u, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// indexByID returns the slice index of the record with the given id, or -1.
// Callers must hold d.mu.
func (d *userDirectory) indexByID(id string) int {
	for i, u := range d.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
