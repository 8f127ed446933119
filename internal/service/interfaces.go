package service

import (
	"context"

	"github.com/medidesk/clinic-backend/models"
)

// AuthService covers the full session lifecycle: credential verification at
// login, token issuance, and token validation on every protected request.
type AuthService interface {
	// Login authenticates a patient by phone and password. Unknown phone and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, phone, password string) (models.Patient, error)

	// CreateToken issues a signed session token bound to the patient.
	CreateToken(ctx context.Context, patient models.Patient) (models.Token, error)

	// ParseToken validates a raw token string and returns the bound patient
	// identity, or a classified token error.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecordsService provides read access to the clinic-management resources,
// each optionally filtered by a patient identifier. All methods enforce the
// configured per-query deadline.
type RecordsService interface {
	Appointments(ctx context.Context, patientID *int64) ([]models.Appointment, error)
	LatestAppointments(ctx context.Context, patientID *int64) ([]models.Appointment, error)
	BillTotals(ctx context.Context, patientID *int64) (models.BillTotals, error)
	Ticket(ctx context.Context, patientID *int64) ([]models.Ticket, error)
	PaymentTotal(ctx context.Context, patientID *int64) (models.PaymentTotal, error)
	DiscountTotal(ctx context.Context, patientID *int64) (models.DiscountTotal, error)
}
