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
	"github.com/sbilibin2017/finance-tracker/internal/services"
)

// Summarizer defines the interface that the summary service must implement.
type Summarizer interface {
	GetSummary(ctx context.Context, userID uuid.UUID, now time.Time) (*services.Summary, error)
}

// SummaryErrorResponse represents an error response for the summary endpoint
// swagger:model SummaryErrorResponse
type SummaryErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewSummaryHandler returns an HTTP handler computing the caller's
// aggregated expense views.
// @Summary Get expense summary
// @Description Returns totals, per-month and per-category breakdowns, the five most recent expenses, a 7-day daily series, and budget figures for the authenticated user.
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Summary "Aggregated views"
// @Failure 401 "Missing token"
// @Failure 403 "Invalid or expired token"
// @Failure 404 {object} handlers.SummaryErrorResponse "User not found"
// @Router /api/summary [get]
func NewSummaryHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		summary, err := svc.GetSummary(r.Context(), claims.UserID, time.Now())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SummaryErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SummaryErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summary)
	}
}
