package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medidesk/clinic-backend/internal/config"
	"github.com/medidesk/clinic-backend/internal/logger"
	"github.com/medidesk/clinic-backend/internal/store"
	"github.com/medidesk/clinic-backend/internal/utils"
	"github.com/medidesk/clinic-backend/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification and JWT token lifecycle using a
// PatientRepository for persistence and bcrypt for password comparison.
type authService struct {
	// patientRepository is the data-access layer used to look up patients.
	patientRepository store.PatientRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// PatientRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(patientRepository store.PatientRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		patientRepository: patientRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Login authenticates a patient by phone number and password.
//
// The flow is: validate inputs, look up the account by phone (parameterized,
// never interpolated), then compare the submitted password against the
// stored bcrypt hash.
//
// Both "phone not registered" and "wrong password" collapse into
// [ErrInvalidCredentials] so the caller cannot distinguish them; the
// underlying reason is logged server-side only.
//
// Returns:
//   - [ErrMissingCredentials] if phone or password is empty.
//   - [ErrInvalidCredentials] if the account does not exist or the password
//     does not match.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Login(ctx context.Context, phone, password string) (models.Patient, error) {
	log := logger.FromContext(ctx)

	if phone == "" || password == "" {
		log.Error().Msg("login request with missing credentials")
		return models.Patient{}, ErrMissingCredentials
	}

	foundPatient, err := a.patientRepository.FindPatientByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, store.ErrPatientNotFound) {
			log.Warn().Msg("login attempt for unknown phone number")
			return models.Patient{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("patient lookup by phone failed")
		return models.Patient{}, fmt.Errorf("patient lookup by phone failed: %w", err)
	}

	if !verifyPassword(foundPatient.PasswordHash, password) {
		log.Warn().Int64("patient_id", foundPatient.PatientID).Msg("wrong password")
		return models.Patient{}, ErrInvalidCredentials
	}

	return foundPatient, nil
}

// CreateToken issues a signed JWT for the given patient.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, patient models.Patient) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, patient.PatientID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry. Validation failures keep their
// classification ([utils.ErrTokenMalformed], [utils.ErrBadSignature],
// [utils.ErrTokenExpired]) so the transport layer can log the exact cause
// while mapping all of them to the same rejection.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, err
	}

	return token, nil
}

// verifyPassword compares a submitted password against a stored bcrypt hash.
// Fails closed: any comparison error, including a malformed stored hash,
// counts as a non-match. The password itself is never logged.
func verifyPassword(storedHash, password string) bool {
	if storedHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
