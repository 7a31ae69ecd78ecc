package config

import "errors"

var (
	// ErrInvalidServerConfigs is returned by validation when the merged
	// configuration ends up without an HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configs: empty HTTP address")

	// ErrInvalidAppConfigs is returned by validation when the merged
	// configuration ends up without an auth token for the gate.
	ErrInvalidAppConfigs = errors.New("invalid app configs: empty auth token")
)
