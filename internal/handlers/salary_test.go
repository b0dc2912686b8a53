package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/finance-tracker/internal/jwt"
	"github.com/sbilibin2017/finance-tracker/internal/models"
	"github.com/sbilibin2017/finance-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSalaryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSalaryUpdater(ctrl)
	handler := NewSalaryHandler(mockSvc)

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Username: "alice"}

	tests := []struct {
		name       string
		claims     *jwt.Claims
		body       string
		svcSalary  float64
		svcUser    *models.UserDB
		svcErr     error
		svcCalled  bool
		wantStatus int
		wantError  string
	}{
		{
			name:       "successful update",
			claims:     claims,
			body:       `{"monthlySalary":2500}`,
			svcSalary:  2500,
			svcUser:    &models.UserDB{UserID: userID, Username: "alice", MonthlySalary: 2500},
			svcCalled:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero salary",
			claims:     claims,
			body:       `{"monthlySalary":0}`,
			svcSalary:  0,
			svcUser:    &models.UserDB{UserID: userID, Username: "alice"},
			svcCalled:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unauthenticated",
			claims:     nil,
			body:       `{"monthlySalary":2500}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing field",
			claims:     claims,
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Monthly salary must be a non-negative number",
		},
		{
			name:       "malformed body",
			claims:     claims,
			body:       `{"monthlySalary":"much"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Monthly salary must be a non-negative number",
		},
		{
			name:       "negative salary",
			claims:     claims,
			body:       `{"monthlySalary":-100}`,
			svcSalary:  -100,
			svcErr:     fmt.Errorf("%w: monthly salary must be a non-negative number", services.ErrValidation),
			svcCalled:  true,
			wantStatus: http.StatusBadRequest,
			wantError:  "Monthly salary must be a non-negative number",
		},
		{
			name:       "user not found",
			claims:     claims,
			body:       `{"monthlySalary":2500}`,
			svcSalary:  2500,
			svcErr:     services.ErrUserNotFound,
			svcCalled:  true,
			wantStatus: http.StatusNotFound,
			wantError:  "User not found",
		},
		{
			name:       "internal error",
			claims:     claims,
			body:       `{"monthlySalary":2500}`,
			svcSalary:  2500,
			svcErr:     errors.New("db error"),
			svcCalled:  true,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.svcCalled {
				mockSvc.EXPECT().
					UpdateSalary(gomock.Any(), userID, tt.svcSalary).
					Return(tt.svcUser, tt.svcErr)
			}

			req := authedRequest(http.MethodPut, "/api/salary", strings.NewReader(tt.body), tt.claims)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantError != "" {
				var resp SalaryErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantError, resp.Error)
				return
			}

			if tt.wantStatus == http.StatusOK {
				var resp models.User
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.svcSalary, resp.MonthlySalary)
			}
		})
	}
}
