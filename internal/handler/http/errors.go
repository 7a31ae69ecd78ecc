// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidOrMissingToken is logged by the auth gate when the
	// "Authorization" header of a non-GET request is absent or does not
	// exactly match the configured bearer credential.
	ErrInvalidOrMissingToken = errors.New("invalid or missing token in `Authorization` header")
)

// Response body texts. The wording is part of the public API surface and
// must not drift.
const (
	greetingBody     = "Hello, I am the root."
	unauthorizedBody = "Unauthorized: Invalid or missing token."

	msgInvalidJSON      = "Invalid JSON was passed"
	msgEmailExists      = "Email already exists."
	msgSamePassword     = "The new password must be different from the old one."
	msgWrongCredentials = "Email or password is incorrect. Please try again."
)
