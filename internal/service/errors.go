package service

import "errors"

var (
	// ErrMissingCredentials is returned by Login when the phone number or
	// the password is empty.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrInvalidCredentials is returned by Login for both an unknown phone
	// number and a wrong password; the two cases are deliberately
	// indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed wraps JWT generation failures.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
