// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, tracing, and logging concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/medidesk/clinic-backend/internal/logger"
	"github.com/medidesk/clinic-backend/internal/utils"
	"github.com/medidesk/clinic-backend/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the incoming "Authorization" header, which carries the raw token
// string with no scheme prefix, validates it via
// [service.AuthService.ParseToken], and — on success — stores the
// authenticated patient's ID in the request context under
// [utils.PatientIDCtxKey] before delegating to the next handler.
//
// The middleware rejects requests in two distinct ways:
//   - HTTP 401 Unauthorized when the "Authorization" header is absent.
//   - HTTP 403 Forbidden when a token is present but fails validation for
//     any reason (malformed, bad signature, expired).
//
// The validation failure cause is logged using the context-scoped logger but
// never echoed back to the client.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: "Unauthorized"}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)

		if err != nil {
			switch {
			case errors.Is(err, utils.ErrTokenExpired):
				log.Err(err).Msg("token expired")
			case errors.Is(err, utils.ErrBadSignature):
				log.Err(err).Msg("token signature verification failed")
			default:
				log.Err(err).Msg("error occurred during parsing token")
			}

			utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid token"}, http.StatusForbidden)
			return
		}

		// Store the authenticated patient's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.PatientIDCtxKey, token.PatientID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
