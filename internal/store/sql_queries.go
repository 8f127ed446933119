package store

import (
	"github.com/Masterminds/squirrel"
)

// psql is the shared squirrel builder configured for PostgreSQL $n
// placeholders. Every caller-influenced value goes through it as a bound
// parameter; query text is never assembled from request input.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const findPatientByPhone = `SELECT patient_id, patient_name, phone, password
    FROM patient
    WHERE phone = $1;`

// buildAppointmentsQuery builds the full appointments listing: appointment
// rows joined with the patient and the attending staff member.
//
// When patientID is non-nil the listing is narrowed to that patient and
// ordered most-recent-first. When nil, the unfiltered all-patients query is
// returned; that mode still sits behind the auth middleware.
func buildAppointmentsQuery(patientID *int64) (string, []any, error) {
	query := psql.
		Select("a.status", "a.appointment_id", "a.app_reason", "a.appointment_time", "a.appointment_date", "b.patient_name", "c.staff_name").
		From("appointment AS a").
		InnerJoin("patient AS b ON a.patient_id = b.patient_id").
		InnerJoin("staff AS c ON a.doctor_id = c.staff_id")

	if patientID != nil {
		query = query.
			Where(squirrel.Eq{"a.patient_id": *patientID}).
			OrderBy("a.appointment_date DESC")
	}

	return query.ToSql()
}

// buildLatestAppointmentsQuery builds the "most recent two" appointments
// projection. It selects the same joins as the full listing minus the status
// column; the LIMIT applies only in filtered mode, mirroring the listing
// contract.
func buildLatestAppointmentsQuery(patientID *int64) (string, []any, error) {
	query := psql.
		Select("a.appointment_id", "a.app_reason", "a.appointment_time", "a.appointment_date", "b.patient_name", "c.staff_name").
		From("appointment AS a").
		InnerJoin("patient AS b ON a.patient_id = b.patient_id").
		InnerJoin("staff AS c ON a.doctor_id = c.staff_id")

	if patientID != nil {
		query = query.
			Where(squirrel.Eq{"a.patient_id": *patientID}).
			OrderBy("a.appointment_date DESC").
			Limit(2)
	}

	return query.ToSql()
}

// buildBillTotalsQuery builds the bill aggregation, split by the bill type
// discriminator into prescription and treatment sums. COALESCE turns an
// empty result set into zeros instead of NULLs.
func buildBillTotalsQuery(patientID *int64) (string, []any, error) {
	query := psql.
		Select(
			"COALESCE(SUM(CASE WHEN type = 'prescription' THEN bill_amount ELSE 0 END), 0) AS prescription_sum",
			"COALESCE(SUM(CASE WHEN type = 'treatment' THEN bill_amount ELSE 0 END), 0) AS treatment_sum",
		).
		From("bill").
		Where(squirrel.Or{
			squirrel.Eq{"type": "prescription"},
			squirrel.Eq{"type": "treatment"},
		})

	if patientID != nil {
		query = query.Where(squirrel.Eq{"patient_id": *patientID})
	}

	return query.ToSql()
}

// buildTicketQuery builds the queue-ticket lookup joined with patient and
// staff data. Filtered mode returns the single oldest ticket (ascending
// ticket id, limit one).
func buildTicketQuery(patientID *int64) (string, []any, error) {
	query := psql.
		Select("a.patient_id", "a.ticket_date", "a.ticket_time", "a.ticket_number", "b.patient_name", "b.phone", "c.staff_name").
		From("ticket AS a").
		InnerJoin("patient AS b ON a.patient_id = b.patient_id").
		InnerJoin("staff AS c ON a.doctor_id = c.staff_id")

	if patientID != nil {
		query = query.
			Where(squirrel.Eq{"a.patient_id": *patientID}).
			OrderBy("a.ticket_id").
			Limit(1)
	}

	return query.ToSql()
}

// buildPaymentTotalQuery builds the paid-amount aggregation over payments.
func buildPaymentTotalQuery(patientID *int64) (string, []any, error) {
	query := psql.
		Select("COALESCE(SUM(paid_amount), 0) AS paid_sum").
		From("payment")

	if patientID != nil {
		query = query.Where(squirrel.Eq{"patient_id": *patientID})
	}

	return query.ToSql()
}

// buildDiscountTotalQuery builds the discount-amount aggregation.
func buildDiscountTotalQuery(patientID *int64) (string, []any, error) {
	query := psql.
		Select("COALESCE(SUM(discount_amount), 0) AS discount_sum").
		From("discount")

	if patientID != nil {
		query = query.Where(squirrel.Eq{"patient_id": *patientID})
	}

	return query.ToSql()
}
