package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in storage
type UserDB struct {
	UserID        uuid.UUID `json:"id" db:"user_id"`                   // Primary key
	Username      string    `json:"username" db:"username"`            // Unique username
	Email         string    `json:"email" db:"email"`                  // Unique lowercased email
	PasswordHash  string    `json:"-" db:"password_hash"`              // Hashed password, never serialized
	MonthlySalary float64   `json:"monthlySalary" db:"monthly_salary"` // Monthly salary, 0 when unset
	CreatedAt     time.Time `json:"created_at" db:"created_at"`        // Creation timestamp
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`        // Last update timestamp
}

// User is the API representation of a user account
// swagger:model User
type User struct {
	// User identifier
	// example: 7b8f1c2e-1a2b-4c3d-9e8f-0a1b2c3d4e5f
	ID uuid.UUID `json:"id"`

	// Username
	// example: john_doe
	Username string `json:"username"`

	// Email
	// example: john@example.com
	Email string `json:"email"`

	// Monthly salary
	// example: 2500.0
	MonthlySalary float64 `json:"monthlySalary"`
}

// API converts a storage record to its API representation.
func (u *UserDB) API() User {
	return User{
		ID:            u.UserID,
		Username:      u.Username,
		Email:         u.Email,
		MonthlySalary: u.MonthlySalary,
	}
}
