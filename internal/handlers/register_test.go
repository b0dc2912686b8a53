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
	"github.com/sbilibin2017/finance-tracker/internal/models"
	"github.com/sbilibin2017/finance-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	handler := NewRegisterHandler(mockSvc)

	userID := uuid.New()
	user := &models.UserDB{
		UserID:   userID,
		Username: "alice",
		Email:    "alice@example.com",
	}

	tests := []struct {
		name       string
		body       string
		svcUser    *models.UserDB
		svcToken   string
		svcErr     error
		svcCalled  bool
		wantStatus int
		wantError  string
	}{
		{
			name:       "successful registration",
			body:       `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
			svcUser:    user,
			svcToken:   "token123",
			svcCalled:  true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "duplicate user",
			body:       `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
			svcErr:     services.ErrUserAlreadyExists,
			svcCalled:  true,
			wantStatus: http.StatusBadRequest,
			wantError:  "Username or email already exists",
		},
		{
			name:       "validation error",
			body:       `{"username":"al","email":"al@example.com","password":"secret1"}`,
			svcErr:     fmt.Errorf("%w: username must be between 3 and 30 characters", services.ErrValidation),
			svcCalled:  true,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid input: username must be between 3 and 30 characters",
		},
		{
			name:       "malformed body",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
		{
			name:       "internal error",
			body:       `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
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
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.svcUser, tt.svcToken, tt.svcErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantError != "" {
				var resp RegisterErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantError, resp.Error)
				return
			}

			var resp RegisterResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "token123", resp.Token)
			assert.Equal(t, userID, resp.User.ID)
			assert.Equal(t, "alice", resp.User.Username)
		})
	}
}

// The password hash must never appear in the response body.
func TestRegisterHandler_NoPasswordInResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	handler := NewRegisterHandler(mockSvc)

	mockSvc.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: "bcrypt-hash"}, "t", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"alice","email":"a@example.com","password":"secret1"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "bcrypt-hash")
	assert.NotContains(t, rec.Body.String(), "password")
}
