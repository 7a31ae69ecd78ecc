package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Violation describes a single validation failure of one input field.
// The JSON shape is rendered directly into 400 responses.
type Violation struct {
	// Field is the wire name of the offending field (e.g. "email").
	Field string `json:"field"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// Violations is the error type returned when one or more fields of a DTO
// fail validation. It collects every failure, not just the first, so that
// the caller can report all of them in a single response.
type Violations []Violation

// Error implements the error interface by joining all messages.
func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Field + ": " + violation.Message
	}
	return strings.Join(msgs, "; ")
}

// AsViolations extracts a [Violations] value from err, unwrapping as needed.
// The second return value reports whether the extraction succeeded.
func AsViolations(err error) (Violations, bool) {
	var v Violations
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
