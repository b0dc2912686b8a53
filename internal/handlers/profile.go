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

// Profiler defines the interface that the profile service must implement.
type Profiler interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileErrorResponse represents an error response for the profile endpoint
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get profile
// @Description Returns the authenticated user's profile including the monthly salary.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "User profile"
// @Failure 401 "Missing token"
// @Failure 403 "Invalid or expired token"
// @Failure 404 {object} handlers.ProfileErrorResponse "User not found"
// @Router /api/profile [get]
func NewProfileHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		user, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user.API())
	}
}
