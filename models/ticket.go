package models

import "time"

// Ticket is a queue-ticket row joined with the patient and the staff member
// the ticket was issued for.
type Ticket struct {
	PatientID    int64     `json:"patient_id"`
	Date         time.Time `json:"ticket_date"`
	Time         string    `json:"ticket_time"`
	TicketNumber int64     `json:"ticket_number"`
	PatientName  string    `json:"patient_name"`
	Phone        string    `json:"phone"`
	StaffName    string    `json:"staff_name"`
}
