package models

// Patient represents a registered patient account.
//
// PasswordHash holds the bcrypt hash stored in the "password" column. It is
// excluded from JSON serialization so a Patient value can be embedded in API
// responses without leaking credential material.
type Patient struct {
	PatientID    int64  `json:"patient_id"`
	Name         string `json:"patient_name"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table backing Patient.
func (p Patient) TableName() string {
	return "patient"
}
