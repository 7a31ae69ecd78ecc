package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/go-user-directory/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping). They double as the wire names
// reported in [Violation.Field].
const (
	// FieldName targets the display name of a signup/update request.
	FieldName = "name"

	// FieldEmail targets the e-mail address of a request.
	FieldEmail = "email"

	// FieldPassword targets the plaintext secret of a request.
	FieldPassword = "password"
)

// Validation failure messages reported per field.
const (
	msgNameRequired     = "The name field is required."
	msgEmailRequired    = "The email field is required."
	msgEmailMalformed   = "The email field is not a valid e-mail address."
	msgPasswordRequired = "The password field is required."
)

// UserValidator implements the Validator interface for the account DTOs:
// CreateUserRequest and LoginRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
// All failures of a single Validate call are collected into one
// [Violations] error.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.CreateUserRequest / *models.CreateUserRequest
//   - models.LoginRequest / *models.LoginRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the request is validated.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateCreateUserRequest(ctx, value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUserRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isWellFormedEmail reports whether s parses as a single RFC 5322 address
// without a display name (e.g. "ann@x.com").
func isWellFormedEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validateCreateUserRequest validates a signup/update payload.
//
// Default validated fields (when none specified): Name, Email, Password.
// Name and Password must be non-empty; Email must be non-empty and
// well-formed. Empty-but-whitespace values are not trimmed; the directory
// stores names verbatim.
//
// Returns a [Violations] error listing every failed field, or nil.
func (v *UserValidator) validateCreateUserRequest(ctx context.Context, request models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	var violations Violations
	for _, f := range fields {
		switch f {
		case FieldName:
			if request.Name == "" {
				violations = append(violations, Violation{Field: FieldName, Message: msgNameRequired})
			}
		case FieldEmail:
			if request.Email == "" {
				violations = append(violations, Violation{Field: FieldEmail, Message: msgEmailRequired})
			} else if !isWellFormedEmail(request.Email) {
				violations = append(violations, Violation{Field: FieldEmail, Message: msgEmailMalformed})
			}
		case FieldPassword:
			if request.Password == "" {
				violations = append(violations, Violation{Field: FieldPassword, Message: msgPasswordRequired})
			}
		default:
			return ErrUnknownField
		}
	}

	if len(violations) > 0 {
		return violations
	}

	return nil
}

// validateLoginRequest validates a login payload.
//
// Default validated fields: Email, Password. Same per-field rules as
// validateCreateUserRequest.
func (v *UserValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var violations Violations
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				violations = append(violations, Violation{Field: FieldEmail, Message: msgEmailRequired})
			} else if !isWellFormedEmail(request.Email) {
				violations = append(violations, Violation{Field: FieldEmail, Message: msgEmailMalformed})
			}
		case FieldPassword:
			if request.Password == "" {
				violations = append(violations, Violation{Field: FieldPassword, Message: msgPasswordRequired})
			}
		default:
			return ErrUnknownField
		}
	}

	if len(violations) > 0 {
		return violations
	}

	return nil
}
