package models

import "time"

// Appointment is a single row of the appointments listing: the appointment
// record joined with the patient and the attending staff member.
//
// Status is empty for the "latest appointments" projection, which does not
// select it; omitempty keeps those responses free of a misleading zero value.
type Appointment struct {
	Status        string    `json:"status,omitempty"`
	AppointmentID int64     `json:"appointment_id"`
	Reason        string    `json:"app_reason"`
	Time          string    `json:"appointment_time"`
	Date          time.Time `json:"appointment_date"`
	PatientName   string    `json:"patient_name"`
	StaffName     string    `json:"staff_name"`
}
