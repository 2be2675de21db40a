package models

import "time"

// Consent represents a grant allowing a user to view and/or edit a patient's
// record. Grants are append-only; when duplicates exist for the same
// (user, patient) pair, the most recently created row wins.
type Consent struct {
	ID        int64     `db:"ID" json:"id"`
	UserID    int64     `db:"USER_ID" json:"user_id"`
	PatientID int64     `db:"PATIENT_ID" json:"patient_id"`
	CanView   bool      `db:"CAN_VIEW" json:"can_view"`
	CanEdit   bool      `db:"CAN_EDIT" json:"can_edit"`
	CreatedAt time.Time `db:"CREATED_AT" json:"created_at"`
}

// ConsentCreateRequest represents the payload for creating a consent grant
type ConsentCreateRequest struct {
	UserID    int64 `json:"user_id" binding:"required"`
	PatientID int64 `json:"patient_id" binding:"required"`
	CanView   bool  `json:"can_view"`
	CanEdit   bool  `json:"can_edit"`
}
