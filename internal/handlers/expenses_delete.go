package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/finance-tracker/internal/logger"
	"github.com/sbilibin2017/finance-tracker/internal/middlewares"
	"github.com/sbilibin2017/finance-tracker/internal/services"
)

// ExpenseDeleter defines the interface that the expense service must implement.
type ExpenseDeleter interface {
	Delete(ctx context.Context, userID, expenseID uuid.UUID) error
}

// DeleteExpenseResponse represents a successful deletion response
// swagger:model DeleteExpenseResponse
type DeleteExpenseResponse struct {
	// Confirmation message
	// default: Expense deleted successfully
	Message string `json:"message"`
}

// NewExpensesDeleteHandler returns an HTTP handler deleting an expense by id.
// An expense owned by another user is reported as not found, the two
// cases are indistinguishable to the caller.
// @Summary Delete expense
// @Description Deletes one of the authenticated user's expenses by id.
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense id"
// @Success 200 {object} handlers.DeleteExpenseResponse "Expense deleted"
// @Failure 401 "Missing token"
// @Failure 403 "Invalid or expired token"
// @Failure 404 {object} handlers.ExpensesErrorResponse "Expense not found or not owned"
// @Router /api/expenses/{id} [delete]
func NewExpensesDeleteHandler(svc ExpenseDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		expenseID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ExpensesErrorResponse{
				Error: "Expense not found",
			})
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, expenseID); err != nil {
			switch {
			case errors.Is(err, services.ErrExpenseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ExpensesErrorResponse{
					Error: "Expense not found",
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteExpenseResponse{
			Message: "Expense deleted successfully",
		})
	}
}
