package models

// User represents a registered staff member who may request patient records.
// Users are immutable after registration.
type User struct {
	ID    int64  `db:"ID" json:"id"`
	Name  string `db:"NAME" json:"name"`
	Role  string `db:"ROLE" json:"role"`
	Email string `db:"EMAIL" json:"email"`
}

// UserCreateRequest represents the payload for user registration
type UserCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Email string `json:"email" binding:"required"`
}
