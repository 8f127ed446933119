package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "clinic-backend-test"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestJWTToken_RoundTrip(t *testing.T) {
	for _, patientID := range []int64{1, 7, 42, 9999999999} {
		token, err := GenerateJWTToken(testIssuer, patientID, time.Hour, testSignKey)
		require.NoError(t, err)
		require.NotEmpty(t, token.SignedString)

		parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
		require.NoError(t, err)
		assert.Equal(t, patientID, parsed.PatientID)
	}
}

func TestValidateAndParseJWTToken_TamperedSignature(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	require.NoError(t, err)

	signed := token.SignedString
	// flip the last character of the signature segment
	last := signed[len(signed)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	tampered := signed[:len(signed)-1] + string(replacement)

	_, err = ValidateAndParseJWTToken(tampered, testSignKey, testIssuer)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadSignature), "expected ErrBadSignature, got %v", err)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "another-key", testIssuer)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadSignature))
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenExpired))
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("another-service", 42, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenMalformed))
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	for _, garbage := range []string{"", "not-a-token", "a.b", strings.Repeat("x", 300)} {
		_, err := ValidateAndParseJWTToken(garbage, testSignKey, testIssuer)
		require.Error(t, err, "input %q", garbage)
		assert.True(t, errors.Is(err, ErrTokenMalformed), "input %q: got %v", garbage, err)
	}
}
