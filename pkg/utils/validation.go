package utils

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError marks a rejected request payload so handlers can map it to
// a 400 response with errors.As instead of inspecting message text.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	if email == "" {
		return validationErrorf("email cannot be empty")
	}

	if !emailRegex.MatchString(email) {
		return validationErrorf("invalid email format")
	}

	return nil
}

// ValidateID validates a numeric entity identifier
func ValidateID(name string, id int64) error {
	if id <= 0 {
		return validationErrorf("%s must be a positive integer", name)
	}
	return nil
}

// ValidateRequired validates that a required string field is present
func ValidateRequired(name, value string) error {
	if value == "" {
		return validationErrorf("%s is required", name)
	}
	return nil
}
