package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/medidesk/clinic-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentsHandler_FilteredByPatientID(t *testing.T) {
	h := newTestHandler(nil, &mockRecordsService{
		appointmentsFn: func(ctx context.Context, patientID *int64) ([]models.Appointment, error) {
			require.NotNil(t, patientID)
			assert.Equal(t, int64(7), *patientID)
			return []models.Appointment{
				{AppointmentID: 1, Reason: "checkup", PatientName: "Alice Smith", StaffName: "Dr. Lee"},
			}, nil
		},
	})

	request := httptest.NewRequest(http.MethodGet, "/appointments?id=7", nil)
	recorder := httptest.NewRecorder()
	h.appointments(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var appointments []models.Appointment
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &appointments))
	require.Len(t, appointments, 1)
	assert.Equal(t, "checkup", appointments[0].Reason)
}

func TestAppointmentsHandler_NoFilterPassesNil(t *testing.T) {
	h := newTestHandler(nil, &mockRecordsService{
		appointmentsFn: func(ctx context.Context, patientID *int64) ([]models.Appointment, error) {
			assert.Nil(t, patientID)
			return []models.Appointment{}, nil
		},
	})

	request := httptest.NewRequest(http.MethodGet, "/appointments", nil)
	recorder := httptest.NewRecorder()
	h.appointments(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestRecordsHandlers_RejectNonNumericID(t *testing.T) {
	records := &mockRecordsService{
		appointmentsFn: func(ctx context.Context, patientID *int64) ([]models.Appointment, error) {
			t.Fatal("service must not be called for an invalid id")
			return nil, nil
		},
		latestAppointmentsFn: func(ctx context.Context, patientID *int64) ([]models.Appointment, error) {
			t.Fatal("service must not be called for an invalid id")
			return nil, nil
		},
		billTotalsFn: func(ctx context.Context, patientID *int64) (models.BillTotals, error) {
			t.Fatal("service must not be called for an invalid id")
			return models.BillTotals{}, nil
		},
		ticketFn: func(ctx context.Context, patientID *int64) ([]models.Ticket, error) {
			t.Fatal("service must not be called for an invalid id")
			return nil, nil
		},
		paymentTotalFn: func(ctx context.Context, patientID *int64) (models.PaymentTotal, error) {
			t.Fatal("service must not be called for an invalid id")
			return models.PaymentTotal{}, nil
		},
		discountTotalFn: func(ctx context.Context, patientID *int64) (models.DiscountTotal, error) {
			t.Fatal("service must not be called for an invalid id")
			return models.DiscountTotal{}, nil
		},
	}
	h := newTestHandler(nil, records)

	handlers := map[string]http.HandlerFunc{
		"/appointments":       h.appointments,
		"/latestappointments": h.latestAppointments,
		"/bills":              h.bills,
		"/ticket":             h.ticket,
		"/payments":           h.payments,
		"/discounts":          h.discounts,
	}

	badIDs := []string{"abc", "1;DROP TABLE appointment;--", "1 OR 1=1", "0", "-5", "7.5"}

	for path, handlerFunc := range handlers {
		for _, badID := range badIDs {
			target := path + "?id=" + url.QueryEscape(badID)
			request := httptest.NewRequest(http.MethodGet, target, nil)
			recorder := httptest.NewRecorder()
			handlerFunc(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code, "%s with id=%q", path, badID)
		}
	}

	// unencoded semicolons must not drop the id pair and fall through to the
	// unfiltered all-patients mode
	for path, handlerFunc := range handlers {
		target := path + "?id=1;DROP+TABLE+x;--"
		request := httptest.NewRequest(http.MethodGet, target, nil)
		recorder := httptest.NewRecorder()
		handlerFunc(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "%s with raw-semicolon id", path)
	}
}

func TestLatestAppointmentsHandler_ReturnsServiceResult(t *testing.T) {
	h := newTestHandler(nil, &mockRecordsService{
		latestAppointmentsFn: func(ctx context.Context, patientID *int64) ([]models.Appointment, error) {
			return []models.Appointment{
				{AppointmentID: 12, Date: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)},
				{AppointmentID: 11, Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	})

	request := httptest.NewRequest(http.MethodGet, "/latestappointments?id=7", nil)
	recorder := httptest.NewRecorder()
	h.latestAppointments(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var appointments []models.Appointment
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &appointments))
	assert.Len(t, appointments, 2)
}

func TestBillsHandler_WrapsTotalsInArray(t *testing.T) {
	h := newTestHandler(nil, &mockRecordsService{
		billTotalsFn: func(ctx context.Context, patientID *int64) (models.BillTotals, error) {
			return models.BillTotals{PrescriptionSum: 120.50, TreatmentSum: 300}, nil
		},
	})

	request := httptest.NewRequest(http.MethodGet, "/bills?id=7", nil)
	recorder := httptest.NewRecorder()
	h.bills(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var totals []models.BillTotals
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &totals))
	require.Len(t, totals, 1)
	assert.InDelta(t, 120.50, totals[0].PrescriptionSum, 0.001)
	assert.InDelta(t, 300, totals[0].TreatmentSum, 0.001)
}

func TestPaymentsHandler_ReturnsSingleObject(t *testing.T) {
	h := newTestHandler(nil, &mockRecordsService{
		paymentTotalFn: func(ctx context.Context, patientID *int64) (models.PaymentTotal, error) {
			return models.PaymentTotal{PaidSum: 450.75}, nil
		},
	})

	request := httptest.NewRequest(http.MethodGet, "/payments?id=7", nil)
	recorder := httptest.NewRecorder()
	h.payments(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var total models.PaymentTotal
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &total))
	assert.InDelta(t, 450.75, total.PaidSum, 0.001)
}

func TestRecordsHandlers_ServiceErrorIsGeneric500(t *testing.T) {
	dbErr := errors.New("pq: relation does not exist")

	h := newTestHandler(nil, &mockRecordsService{
		ticketFn: func(ctx context.Context, patientID *int64) ([]models.Ticket, error) {
			return nil, dbErr
		},
	})

	request := httptest.NewRequest(http.MethodGet, "/ticket?id=7", nil)
	recorder := httptest.NewRecorder()
	h.ticket(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Error fetching ticket", body.Error)
	// the database error text never reaches the client
	assert.NotContains(t, recorder.Body.String(), "relation")
}

func TestDiscountsHandler_ReturnsSingleObject(t *testing.T) {
	h := newTestHandler(nil, &mockRecordsService{
		discountTotalFn: func(ctx context.Context, patientID *int64) (models.DiscountTotal, error) {
			return models.DiscountTotal{DiscountSum: 35}, nil
		},
	})

	request := httptest.NewRequest(http.MethodGet, "/discounts", nil)
	recorder := httptest.NewRecorder()
	h.discounts(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var total models.DiscountTotal
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &total))
	assert.InDelta(t, 35, total.DiscountSum, 0.001)
}
