package utils

import "errors"

// Token validation sentinels returned by [ValidateAndParseJWTToken].
// Callers should use [errors.Is] to match against these values; the auth
// middleware maps all of them to 403 while logging which one occurred.
var (
	// ErrTokenMalformed is returned when the token cannot be parsed at all,
	// uses a disallowed signing method, fails the issuer check, or carries a
	// missing/unusable subject claim.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrBadSignature is returned when the token parses but its signature
	// does not verify with the server's sign key.
	ErrBadSignature = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the token's exp claim has passed.
	ErrTokenExpired = errors.New("token is expired")
)
