package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// "Authorization" header is absent from the request.
	ErrEmptyAuthorizationHeader = errors.New("empty Authorization header")

	// ErrInvalidPatientID is returned when the "id" query parameter is
	// present but is not a positive integer.
	ErrInvalidPatientID = errors.New("invalid patient id")
)
