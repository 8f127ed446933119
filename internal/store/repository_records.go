package store

import (
	"context"
	"fmt"

	"github.com/medidesk/clinic-backend/internal/logger"
	"github.com/medidesk/clinic-backend/models"
)

// recordsRepository is the PostgreSQL-backed implementation of
// [RecordsRepository]. It executes the per-resource read queries built in
// sql_queries.go and maps result rows to models.
//
// Every method follows the same contract: a nil patientID runs the
// unfiltered all-patients query, a non-nil one binds the id as a parameter.
type recordsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecordsRepository constructs a [RecordsRepository] backed by the
// provided database connection and logger.
func NewRecordsRepository(db *DB, logger *logger.Logger) RecordsRepository {
	logger.Debug().Msg("creating records repository")
	return &recordsRepository{
		db:     db,
		logger: logger,
	}
}

// Appointments returns the appointment listing joined with patient and staff
// names, most recent first when filtered by patient.
func (r *recordsRepository) Appointments(ctx context.Context, patientID *int64) ([]models.Appointment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAppointmentsQuery(patientID)
	if err != nil {
		log.Err(err).Str("func", "*recordsRepository.Appointments").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordsRepository.Appointments").Str("pg_code", postgresError(err)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.Status, &a.AppointmentID, &a.Reason, &a.Time, &a.Date, &a.PatientName, &a.StaffName); err != nil {
			log.Err(err).Str("func", "*recordsRepository.Appointments").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*recordsRepository.Appointments").Msg("row iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return appointments, nil
}

// LatestAppointments returns the most recent two appointments for a patient
// (or the unfiltered listing when patientID is nil). Status is not part of
// this projection.
func (r *recordsRepository) LatestAppointments(ctx context.Context, patientID *int64) ([]models.Appointment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLatestAppointmentsQuery(patientID)
	if err != nil {
		log.Err(err).Str("func", "*recordsRepository.LatestAppointments").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordsRepository.LatestAppointments").Str("pg_code", postgresError(err)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0, 2)
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.AppointmentID, &a.Reason, &a.Time, &a.Date, &a.PatientName, &a.StaffName); err != nil {
			log.Err(err).Str("func", "*recordsRepository.LatestAppointments").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*recordsRepository.LatestAppointments").Msg("row iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return appointments, nil
}

// BillTotals returns the summed bill amounts split by type. An empty result
// set yields zero sums, not an error.
func (r *recordsRepository) BillTotals(ctx context.Context, patientID *int64) (models.BillTotals, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBillTotalsQuery(patientID)
	if err != nil {
		log.Err(err).Str("func", "*recordsRepository.BillTotals").Msg("failed to build query")
		return models.BillTotals{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var totals models.BillTotals
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&totals.PrescriptionSum, &totals.TreatmentSum); err != nil {
		log.Err(err).Str("func", "*recordsRepository.BillTotals").Str("pg_code", postgresError(err)).Msg("failed to scan totals")
		return models.BillTotals{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return totals, nil
}

// Ticket returns queue-ticket rows joined with patient and staff data; at
// most one row in filtered mode.
func (r *recordsRepository) Ticket(ctx context.Context, patientID *int64) ([]models.Ticket, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTicketQuery(patientID)
	if err != nil {
		log.Err(err).Str("func", "*recordsRepository.Ticket").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordsRepository.Ticket").Str("pg_code", postgresError(err)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tickets := make([]models.Ticket, 0, 1)
	for rows.Next() {
		var tk models.Ticket
		if err := rows.Scan(&tk.PatientID, &tk.Date, &tk.Time, &tk.TicketNumber, &tk.PatientName, &tk.Phone, &tk.StaffName); err != nil {
			log.Err(err).Str("func", "*recordsRepository.Ticket").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tickets = append(tickets, tk)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*recordsRepository.Ticket").Msg("row iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tickets, nil
}

// PaymentTotal returns the summed paid amount, zero when nothing matches.
func (r *recordsRepository) PaymentTotal(ctx context.Context, patientID *int64) (models.PaymentTotal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPaymentTotalQuery(patientID)
	if err != nil {
		log.Err(err).Str("func", "*recordsRepository.PaymentTotal").Msg("failed to build query")
		return models.PaymentTotal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total models.PaymentTotal
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&total.PaidSum); err != nil {
		log.Err(err).Str("func", "*recordsRepository.PaymentTotal").Str("pg_code", postgresError(err)).Msg("failed to scan total")
		return models.PaymentTotal{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}

// DiscountTotal returns the summed discount amount, zero when nothing matches.
func (r *recordsRepository) DiscountTotal(ctx context.Context, patientID *int64) (models.DiscountTotal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDiscountTotalQuery(patientID)
	if err != nil {
		log.Err(err).Str("func", "*recordsRepository.DiscountTotal").Msg("failed to build query")
		return models.DiscountTotal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total models.DiscountTotal
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&total.DiscountSum); err != nil {
		log.Err(err).Str("func", "*recordsRepository.DiscountTotal").Str("pg_code", postgresError(err)).Msg("failed to scan total")
		return models.DiscountTotal{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}
