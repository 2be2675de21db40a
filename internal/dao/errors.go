package dao

import "errors"

// Sentinel errors surfaced to handlers for status-code mapping
var (
	ErrAlertNotFound  = errors.New("alert not found")
	ErrDuplicateEmail = errors.New("user with this email already exists")
)
