// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, and JWT token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PatientIDCtxKey is the key used to store the authenticated patient
// identifier in the context. Used together with GetPatientIDFromContext for
// type-safe retrieval of the patient ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.PatientIDCtxKey, int64(42))
var PatientIDCtxKey = contextKey("patientID")

// GetPatientIDFromContext retrieves the patient identifier from the context.
//
// Returns the patient ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	patientID, ok := utils.GetPatientIDFromContext(ctx)
//	if !ok {
//	    // handle missing patient in context
//	}
func GetPatientIDFromContext(ctx context.Context) (int64, bool) {
	patientID, ok := ctx.Value(PatientIDCtxKey).(int64)
	return patientID, ok
}
