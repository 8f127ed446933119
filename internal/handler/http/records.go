package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/medidesk/clinic-backend/internal/logger"
	"github.com/medidesk/clinic-backend/internal/utils"
	"github.com/medidesk/clinic-backend/models"
)

// patientIDFromQuery resolves the optional "id" query parameter.
//
// An absent parameter means "no filter" and yields a nil pointer, which the
// service layer turns into an unscoped query. A present parameter must be a
// positive integer; anything else, including SQL fragments, is rejected
// with [ErrInvalidPatientID] before reaching the storage layer.
//
// The query string is parsed strictly. r.URL.Query() drops pairs containing
// an unencoded semicolon, which would turn an id like "1;DROP TABLE x;--"
// into the unfiltered all-patients mode; unfiltered mode must only ever be
// the result of the parameter being absent.
func patientIDFromQuery(r *http.Request) (*int64, error) {
	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, ErrInvalidPatientID
	}

	rawID := values.Get("id")
	if rawID == "" {
		return nil, nil
	}

	patientID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || patientID <= 0 {
		return nil, ErrInvalidPatientID
	}

	return &patientID, nil
}

func (h *Handler) appointments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	patientID, err := patientIDFromQuery(r)
	if err != nil {
		log.Err(err).Str("query", r.URL.RawQuery).Msg("bad appointments request")
		utils.WriteJSON(w, models.ErrorResponse{Error: ErrInvalidPatientID.Error()}, http.StatusBadRequest)
		return
	}

	appointments, err := h.services.RecordsService.Appointments(ctx, patientID)
	if err != nil {
		log.Err(err).Msg("error fetching appointments")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Error fetching appointments"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, appointments, http.StatusOK)
}

func (h *Handler) latestAppointments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	patientID, err := patientIDFromQuery(r)
	if err != nil {
		log.Err(err).Str("query", r.URL.RawQuery).Msg("bad latest appointments request")
		utils.WriteJSON(w, models.ErrorResponse{Error: ErrInvalidPatientID.Error()}, http.StatusBadRequest)
		return
	}

	appointments, err := h.services.RecordsService.LatestAppointments(ctx, patientID)
	if err != nil {
		log.Err(err).Msg("error fetching latest appointments")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Error fetching latest appointments"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, appointments, http.StatusOK)
}

// bills responds with a single-element array holding the aggregated bill
// totals, preserving the rows-shaped payload its consumers expect.
func (h *Handler) bills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	patientID, err := patientIDFromQuery(r)
	if err != nil {
		log.Err(err).Str("query", r.URL.RawQuery).Msg("bad bills request")
		utils.WriteJSON(w, models.ErrorResponse{Error: ErrInvalidPatientID.Error()}, http.StatusBadRequest)
		return
	}

	totals, err := h.services.RecordsService.BillTotals(ctx, patientID)
	if err != nil {
		log.Err(err).Msg("error fetching bills")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Error fetching bills"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, []models.BillTotals{totals}, http.StatusOK)
}

func (h *Handler) ticket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	patientID, err := patientIDFromQuery(r)
	if err != nil {
		log.Err(err).Str("query", r.URL.RawQuery).Msg("bad ticket request")
		utils.WriteJSON(w, models.ErrorResponse{Error: ErrInvalidPatientID.Error()}, http.StatusBadRequest)
		return
	}

	tickets, err := h.services.RecordsService.Ticket(ctx, patientID)
	if err != nil {
		log.Err(err).Msg("error fetching ticket")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Error fetching ticket"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, tickets, http.StatusOK)
}

func (h *Handler) payments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	patientID, err := patientIDFromQuery(r)
	if err != nil {
		log.Err(err).Str("query", r.URL.RawQuery).Msg("bad payments request")
		utils.WriteJSON(w, models.ErrorResponse{Error: ErrInvalidPatientID.Error()}, http.StatusBadRequest)
		return
	}

	total, err := h.services.RecordsService.PaymentTotal(ctx, patientID)
	if err != nil {
		log.Err(err).Msg("error fetching payments")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Error fetching payments"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, total, http.StatusOK)
}

func (h *Handler) discounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	patientID, err := patientIDFromQuery(r)
	if err != nil {
		log.Err(err).Str("query", r.URL.RawQuery).Msg("bad discounts request")
		utils.WriteJSON(w, models.ErrorResponse{Error: ErrInvalidPatientID.Error()}, http.StatusBadRequest)
		return
	}

	total, err := h.services.RecordsService.DiscountTotal(ctx, patientID)
	if err != nil {
		log.Err(err).Msg("error fetching discounts")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Error fetching discounts"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, total, http.StatusOK)
}
