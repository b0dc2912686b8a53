package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/finance-tracker/internal/logger"
	"github.com/sbilibin2017/finance-tracker/internal/middlewares"
	"github.com/sbilibin2017/finance-tracker/internal/models"
	"github.com/sbilibin2017/finance-tracker/internal/services"
)

// SalaryUpdater defines the interface that the salary service must implement.
type SalaryUpdater interface {
	UpdateSalary(ctx context.Context, userID uuid.UUID, salary float64) (*models.UserDB, error)
}

// SalaryRequest represents the JSON body for updating the monthly salary
// swagger:model SalaryRequest
type SalaryRequest struct {
	// Monthly salary, must be non-negative
	// required: true
	// default: 2500.0
	MonthlySalary *float64 `json:"monthlySalary"`
}

// SalaryErrorResponse represents an error response for the salary endpoint
// swagger:model SalaryErrorResponse
type SalaryErrorResponse struct {
	// Error message
	// default: Monthly salary must be a non-negative number
	Error string `json:"error"`
}

// NewSalaryHandler returns an HTTP handler for updating the monthly salary.
// @Summary Update monthly salary
// @Description Sets the authenticated user's monthly salary and returns the updated profile.
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param salaryRequest body handlers.SalaryRequest true "Salary update request"
// @Success 200 {object} models.User "Updated user profile"
// @Failure 400 {object} handlers.SalaryErrorResponse "Invalid salary value"
// @Failure 401 "Missing token"
// @Failure 403 "Invalid or expired token"
// @Failure 404 {object} handlers.SalaryErrorResponse "User not found"
// @Router /api/salary [put]
func NewSalaryHandler(svc SalaryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req SalaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MonthlySalary == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SalaryErrorResponse{
				Error: "Monthly salary must be a non-negative number",
			})
			return
		}

		user, err := svc.UpdateSalary(r.Context(), claims.UserID, *req.MonthlySalary)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SalaryErrorResponse{
					Error: "Monthly salary must be a non-negative number",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SalaryErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SalaryErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user.API())
	}
}
