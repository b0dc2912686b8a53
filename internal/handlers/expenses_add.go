package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/finance-tracker/internal/logger"
	"github.com/sbilibin2017/finance-tracker/internal/middlewares"
	"github.com/sbilibin2017/finance-tracker/internal/models"
	"github.com/sbilibin2017/finance-tracker/internal/services"
)

// ExpenseAdder defines the interface that the expense service must implement.
type ExpenseAdder interface {
	Add(ctx context.Context, userID uuid.UUID, description string, amount float64, category string, date time.Time) (*models.ExpenseDB, error)
}

// AddExpenseRequest represents the JSON body for creating an expense
// swagger:model AddExpenseRequest
type AddExpenseRequest struct {
	// Description, 1-200 characters
	// required: true
	// default: Coffee
	Description string `json:"description"`

	// Amount, must be non-negative
	// required: true
	// default: 3.5
	Amount float64 `json:"amount"`

	// Category, one of Food, Transportation, Entertainment, Utilities, Healthcare, Shopping, Other
	// required: true
	// default: Food
	Category string `json:"category"`

	// Effective date, ISO date or RFC 3339
	// required: true
	// default: 2024-03-01
	Date string `json:"date"`
}

// NewExpensesAddHandler returns an HTTP handler creating an expense.
// @Summary Add expense
// @Description Records a new expense for the authenticated user.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param addExpenseRequest body handlers.AddExpenseRequest true "Expense to create"
// @Success 201 {object} models.ExpenseDB "Created expense"
// @Failure 400 {object} handlers.ExpensesErrorResponse "Missing or malformed field"
// @Failure 401 "Missing token"
// @Failure 403 "Invalid or expired token"
// @Router /api/expenses [post]
func NewExpensesAddHandler(svc ExpenseAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req AddExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExpensesErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		date, err := parseExpenseDate(req.Date)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExpensesErrorResponse{
				Error: "invalid date",
			})
			return
		}

		expense, err := svc.Add(r.Context(), claims.UserID, req.Description, req.Amount, req.Category, date)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExpensesErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ExpensesErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(expense)
	}
}

// parseExpenseDate accepts a plain ISO date or a full RFC 3339 timestamp.
func parseExpenseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
