package service

import "errors"

var (
	// ErrWrongCredentials is returned by Login for every authentication
	// failure. Unknown email and wrong password are deliberately collapsed
	// into one error so that the response cannot be used for account
	// enumeration.
	ErrWrongCredentials = errors.New("email or password is incorrect")
)
