package http

import (
	"context"

	"github.com/medidesk/clinic-backend/internal/logger"
	"github.com/medidesk/clinic-backend/internal/service"
	"github.com/medidesk/clinic-backend/models"
)

// mockAuthService implements service.AuthService with overridable
// per-method functions.
type mockAuthService struct {
	loginFn       func(ctx context.Context, phone, password string) (models.Patient, error)
	createTokenFn func(ctx context.Context, patient models.Patient) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, phone, password string) (models.Patient, error) {
	return m.loginFn(ctx, phone, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, patient models.Patient) (models.Token, error) {
	return m.createTokenFn(ctx, patient)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockRecordsService implements service.RecordsService with overridable
// per-method functions.
type mockRecordsService struct {
	appointmentsFn       func(ctx context.Context, patientID *int64) ([]models.Appointment, error)
	latestAppointmentsFn func(ctx context.Context, patientID *int64) ([]models.Appointment, error)
	billTotalsFn         func(ctx context.Context, patientID *int64) (models.BillTotals, error)
	ticketFn             func(ctx context.Context, patientID *int64) ([]models.Ticket, error)
	paymentTotalFn       func(ctx context.Context, patientID *int64) (models.PaymentTotal, error)
	discountTotalFn      func(ctx context.Context, patientID *int64) (models.DiscountTotal, error)
}

func (m *mockRecordsService) Appointments(ctx context.Context, patientID *int64) ([]models.Appointment, error) {
	return m.appointmentsFn(ctx, patientID)
}

func (m *mockRecordsService) LatestAppointments(ctx context.Context, patientID *int64) ([]models.Appointment, error) {
	return m.latestAppointmentsFn(ctx, patientID)
}

func (m *mockRecordsService) BillTotals(ctx context.Context, patientID *int64) (models.BillTotals, error) {
	return m.billTotalsFn(ctx, patientID)
}

func (m *mockRecordsService) Ticket(ctx context.Context, patientID *int64) ([]models.Ticket, error) {
	return m.ticketFn(ctx, patientID)
}

func (m *mockRecordsService) PaymentTotal(ctx context.Context, patientID *int64) (models.PaymentTotal, error) {
	return m.paymentTotalFn(ctx, patientID)
}

func (m *mockRecordsService) DiscountTotal(ctx context.Context, patientID *int64) (models.DiscountTotal, error) {
	return m.discountTotalFn(ctx, patientID)
}

func newTestHandler(auth *mockAuthService, records *mockRecordsService) *Handler {
	services := &service.Services{}
	if auth != nil {
		services.AuthService = auth
	}
	if records != nil {
		services.RecordsService = records
	}

	return NewHandler(services, logger.Nop())
}
