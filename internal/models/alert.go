package models

import "time"

// Alert represents a persisted record of a privacy breach. Reason keeps the
// denial reason as its own column so display code never has to recover it from
// the message text. Alerts created manually may carry an empty reason.
type Alert struct {
	ID        int64     `db:"ID" json:"id"`
	UserID    int64     `db:"USER_ID" json:"user_id"`
	PatientID int64     `db:"PATIENT_ID" json:"patient_id"`
	Message   string    `db:"MESSAGE" json:"message"`
	Reason    string    `db:"REASON" json:"reason,omitempty"`
	CreatedAt time.Time `db:"CREATED_AT" json:"created_at"`
	Resolved  bool      `db:"RESOLVED" json:"resolved"`
}

// AlertCreateRequest represents the payload for manual alert creation
type AlertCreateRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	PatientID int64  `json:"patient_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// IncidentSummary correlates an alert with its likely originating access attempt
type IncidentSummary struct {
	CreatedAt time.Time `json:"created_at"`
	Summary   string    `json:"summary"`
	Resolved  bool      `json:"resolved"`
}
