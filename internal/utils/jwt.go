package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/medidesk/clinic-backend/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the patient ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Parameters:
//
//	issuer        - identifier of the token issuer (e.g. service name)
//	patientID     - ID of the patient the token is issued for
//	tokenDuration - how long the token remains valid
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Token - contains the signed token string and the jwt.Token object
//	error        - non-nil if parameters are invalid or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("clinic-backend", 42, time.Hour, "secret")
func GenerateJWTToken(issuer string, patientID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(patientID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, PatientID: patientID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method restricted to HMAC-SHA256
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to an int64 PatientID
//
// Failures are classified into the package sentinels so callers can map them
// without inspecting low-level JWT errors:
//   - [ErrTokenExpired]   - the exp claim has passed
//   - [ErrBadSignature]   - signature verification failed
//   - [ErrTokenMalformed] - anything else (unparseable token, wrong issuer,
//     missing or non-numeric subject, disallowed signing method)
//
// Returns a models.Token carrying the parsed jwt.Token and the extracted
// PatientID on success.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, fmt.Errorf("%w: %w", ErrBadSignature, err)
		default:
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		}
	}

	patientIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: error getting subject from token: %w", ErrTokenMalformed, err)
	}
	if patientIDStr == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrTokenMalformed)
	}

	patientID, err := strconv.ParseInt(patientIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: error converting subject to PatientID: %w", ErrTokenMalformed, err)
	}

	return models.Token{Token: token, PatientID: patientID}, nil
}
