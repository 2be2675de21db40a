package utils

import (
	"github.com/google/uuid"
)

// GenerateCorrelationID generates a new request correlation ID
func GenerateCorrelationID() string {
	return uuid.New().String()
}

// IsValidUUID checks if a string is a valid UUID
func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
