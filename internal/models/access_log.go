package models

import "time"

// AccessLog represents one entry in the append-only audit trail. Every access
// attempt is recorded, whether it was authorized or not.
type AccessLog struct {
	ID           int64     `db:"ID" json:"id"`
	UserID       int64     `db:"USER_ID" json:"user_id"`
	PatientID    int64     `db:"PATIENT_ID" json:"patient_id"`
	Action       string    `db:"ACTION" json:"action"`
	Timestamp    time.Time `db:"TIMESTAMP" json:"timestamp"`
	IsAuthorized bool      `db:"IS_AUTHORIZED" json:"is_authorized"`
}

// AccessRequest represents the payload for an access evaluation
type AccessRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	PatientID int64  `json:"patient_id" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

// AccessResult is the outcome of evaluating an access request
type AccessResult struct {
	Authorized bool   `json:"authorized"`
	Reason     string `json:"reason,omitempty"`
}

// AccessLogFilter narrows audit trail queries
type AccessLogFilter struct {
	UserID    *int64
	PatientID *int64
	Action    string
	Since     time.Time
	Limit     int
}
