package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
)

// userService is the concrete implementation of UserService.
// It validates request payloads, hashes plaintext secrets with the
// configured HMAC key, and delegates record ownership to the directory.
type userService struct {
	// directory is the in-memory collection that owns every user record.
	directory store.UserDirectory

	// validator enforces the shape of transient request payloads before
	// any value reaches the directory.
	validator validators.Validator

	// hashKey is the HMAC secret used when hashing user passwords before
	// storage or comparison. Must match the value used at signup time.
	hashKey string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given directory and
// validator and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(directory store.UserDirectory, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		directory: directory,
		validator: validator,
		hashKey:   cfg.HashKey,
		logger:    logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) []models.User {
	return s.directory.List(ctx)
}

func (s *userService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.directory.GetByID(ctx, id)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.directory.GetByEmail(ctx, email)
}

func (s *userService) SearchUsers(ctx context.Context, namePart string) []models.User {
	return s.directory.Search(ctx, namePart)
}

// SignUp creates a new account.
//
// The payload is validated first; a [validators.Violations] error is
// returned untouched so that the transport layer can render the full list.
// The plaintext password never reaches the directory: only its digest is
// stored.
//
// Returns the created record or:
//   - validators.Violations if any field is missing or malformed.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (s *userService) SignUp(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("signup payload failed validation")
		return models.User{}, err
	}

	user, err := s.directory.Create(ctx, request.Name, request.Email, s.hashPassword(request.Password))
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// UpdateUser overwrites the account with the given id.
//
// Returns the updated record or:
//   - validators.Violations if any field is missing or malformed.
//   - store.ErrUserNotFound (wrapped) if id is unknown.
//   - store.ErrEmailAlreadyExists (wrapped) if another account holds the email.
//   - store.ErrSamePassword (wrapped) if the new digest equals the stored one.
func (s *userService) UpdateUser(ctx context.Context, id string, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("id", id).Msg("update payload failed validation")
		return models.User{}, err
	}

	user, err := s.directory.Update(ctx, id, request.Name, request.Email, s.hashPassword(request.Password))
	if err != nil {
		log.Err(err).Str("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	return s.directory.Delete(ctx, id)
}

// Login authenticates an existing account.
//
// The supplied password is hashed and compared against the stored digest
// by the directory in one combined lookup, so the caller cannot tell an
// unknown email from a wrong password: both produce ErrWrongCredentials.
//
// Returns the authenticated record or:
//   - validators.Violations if the payload is missing or malformed.
//   - ErrWrongCredentials on any authentication failure.
func (s *userService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("login payload failed validation")
		return models.User{}, err
	}

	user, err := s.directory.Authenticate(ctx, request.Email, s.hashPassword(request.Password))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Msg("login rejected")
			return models.User{}, ErrWrongCredentials
		}

		log.Err(err).Msg("unexpected error occurred during login")
		return models.User{}, fmt.Errorf("login ended with error: %w", err)
	}

	return user, nil
}

// hashPassword derives the storable digest of a plaintext secret using the
// service's HMAC key.
func (s *userService) hashPassword(password string) string {
	return utils.HashString(password, s.hashKey)
}
