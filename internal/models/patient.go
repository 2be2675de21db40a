package models

// Patient represents a patient whose record is subject to consent checks.
// DOB is stored as free text; the anonymizer generalizes it to a year on export.
type Patient struct {
	ID       int64  `db:"ID" json:"id"`
	Name     string `db:"NAME" json:"name"`
	DOB      string `db:"DOB" json:"dob"`
	RecordID string `db:"RECORD_ID" json:"record_id"`
}

// PatientCreateRequest represents the payload for patient registration
type PatientCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	DOB      string `json:"dob" binding:"required"`
	RecordID string `json:"record_id" binding:"required"`
}
