package models

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseDB represents an expense record in storage.
// Date is the effective date the expense is attributed to, distinct
// from CreatedAt.
type ExpenseDB struct {
	ExpenseID   uuid.UUID `json:"id" db:"expense_id"`          // Primary key
	UserID      uuid.UUID `json:"userId" db:"user_id"`         // Owner, all access is scoped to this value
	Description string    `json:"description" db:"description"`
	Amount      float64   `json:"amount" db:"amount"`
	Category    Category  `json:"category" db:"category"`
	Date        time.Time `json:"date" db:"date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
