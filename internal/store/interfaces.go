package store

import (
	"context"

	"github.com/medidesk/clinic-backend/models"
)

// PatientRepository provides read access to patient account records for the
// login flow.
type PatientRepository interface {
	// FindPatientByPhone returns the patient registered with the given phone
	// number, or [ErrPatientNotFound] if none exists.
	FindPatientByPhone(ctx context.Context, phone string) (models.Patient, error)
}

// RecordsRepository provides read access to clinic-management resources.
//
// Every method accepts an optional patient identifier: nil runs the
// unfiltered all-patients query, non-nil narrows the result to that patient
// with the id bound as a query parameter.
type RecordsRepository interface {
	Appointments(ctx context.Context, patientID *int64) ([]models.Appointment, error)
	LatestAppointments(ctx context.Context, patientID *int64) ([]models.Appointment, error)
	BillTotals(ctx context.Context, patientID *int64) (models.BillTotals, error)
	Ticket(ctx context.Context, patientID *int64) ([]models.Ticket, error)
	PaymentTotal(ctx context.Context, patientID *int64) (models.PaymentTotal, error)
	DiscountTotal(ctx context.Context, patientID *int64) (models.DiscountTotal, error)
}
