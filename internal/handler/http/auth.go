package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/medidesk/clinic-backend/internal/logger"
	"github.com/medidesk/clinic-backend/internal/service"
	"github.com/medidesk/clinic-backend/internal/utils"
	"github.com/medidesk/clinic-backend/models"
)

// login authenticates a patient by phone number and password and, on
// success, responds with the patient profile and a freshly issued session
// token.
//
// Rejections are deliberately uniform: an unknown phone number and a wrong
// password both produce the same 401 body, so the endpoint cannot be used to
// probe which phone numbers are registered.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var loginRequest models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundPatient, err := h.services.AuthService.Login(ctx, loginRequest.PhoneNumber, loginRequest.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials) || errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("login rejected")
			utils.WriteJSON(w, models.LoginResponse{
				IsAuthenticated: false,
				Message:         "invalid credentials",
			}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during patient login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("patient_id", foundPatient.PatientID).Msg("patient successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundPatient)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		IsAuthenticated: true,
		Data:            &foundPatient,
		JWTToken:        token.SignedString,
	}, http.StatusOK)
}

// protected is a minimal authenticated endpoint used to verify a session
// token without touching any clinic resource.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	patientID, ok := utils.GetPatientIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no patient id in context of authenticated request")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("patient_id", patientID).Msg("protected endpoint accessed")
	utils.WriteJSON(w, map[string]string{"message": "Access granted"}, http.StatusOK)
}
