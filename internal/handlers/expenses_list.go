package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/finance-tracker/internal/logger"
	"github.com/sbilibin2017/finance-tracker/internal/middlewares"
	"github.com/sbilibin2017/finance-tracker/internal/models"
)

// ExpenseLister defines the interface that the expense service must implement.
type ExpenseLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.ExpenseDB, error)
}

// ExpensesErrorResponse represents an error response for the expense endpoints
// swagger:model ExpensesErrorResponse
type ExpensesErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewExpensesListHandler returns an HTTP handler listing the caller's expenses.
// @Summary List expenses
// @Description Returns the authenticated user's expenses ordered by effective date descending.
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ExpenseDB "Expenses, most recent first"
// @Failure 401 "Missing token"
// @Failure 403 "Invalid or expired token"
// @Router /api/expenses [get]
func NewExpensesListHandler(svc ExpenseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		expenses, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ExpensesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(expenses)
	}
}
