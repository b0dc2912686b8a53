package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/finance-tracker/internal/models"
	"github.com/sbilibin2017/finance-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		skipLookup   bool // validation fails before the reader is consulted
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
			password: "pass123",
		},
		{
			name:         "duplicate email different username",
			username:     "bob",
			email:        "alice@example.com",
			existingUser: &models.UserDB{UserID: uuid.New(), Email: "alice@example.com"},
			password:     "pass123",
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:         "duplicate username different email",
			username:     "alice",
			email:        "other@example.com",
			existingUser: &models.UserDB{UserID: uuid.New(), Username: "alice"},
			password:     "pass123",
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:       "username too short",
			username:   "al",
			email:      "al@example.com",
			password:   "pass123",
			skipLookup: true,
			wantErr:    services.ErrValidation,
		},
		{
			name:       "username too long",
			username:   "a-username-way-beyond-thirty-characters",
			email:      "long@example.com",
			password:   "pass123",
			skipLookup: true,
			wantErr:    services.ErrValidation,
		},
		{
			name:       "invalid email",
			username:   "carol",
			email:      "not-an-email",
			password:   "pass123",
			skipLookup: true,
			wantErr:    services.ErrValidation,
		},
		{
			name:       "password too short",
			username:   "carol",
			email:      "carol@example.com",
			password:   "short",
			skipLookup: true,
			wantErr:    services.ErrValidation,
		},
		{
			name:       "missing fields",
			username:   "",
			email:      "",
			password:   "",
			skipLookup: true,
			wantErr:    services.ErrValidation,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "dave",
			email:     "dave@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.skipLookup {
				mockReader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
					Return(tt.existingUser, tt.readerErr)
			}

			if !tt.skipLookup && tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
				if tt.writerErr == nil {
					mockJWT.EXPECT().
						Generate(gomock.Any(), gomock.Any(), tt.username).
						Return("token123", nil)
				}
			}

			user, token, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, services.ErrValidation) || errors.Is(tt.wantErr, services.ErrUserAlreadyExists) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", token)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEqual(t, uuid.Nil, user.UserID)
				// Stored hash verifies against the original password
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}
		})
	}
}

func TestAuthService_Register_LowercasesEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	username := "alice"
	email := "alice@example.com"
	mockReader.EXPECT().
		GetByUsernameOrEmail(gomock.Any(), &username, &email).
		Return(nil, nil)
	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any(), "alice").Return("t", nil)

	user, _, err := svc.Register(context.Background(), "alice", "Alice@Example.com", "pass123")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret1"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name       string
		email      string
		loginPass  string
		user       *models.UserDB
		readerErr  error
		jwtErr     error
		skipLookup bool
		wantErr    error
		expectJWT  string
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Username: "alice", Email: "alice@example.com", PasswordHash: string(hashed)},
			expectJWT: "token123",
		},
		{
			name:      "unknown email",
			email:     "ghost@example.com",
			loginPass: password,
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			email:     "alice@example.com",
			loginPass: "wrong-password",
			user:      &models.UserDB{UserID: userID, Username: "alice", Email: "alice@example.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:       "missing fields",
			email:      "",
			loginPass:  "",
			skipLookup: true,
			wantErr:    services.ErrValidation,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt error",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Username: "alice", Email: "alice@example.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.skipLookup {
				mockReader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), nil, &tt.email).
					Return(tt.user, tt.readerErr)
			}
			if tt.user != nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID, tt.user.Username).
					Return(tt.expectJWT, tt.jwtErr)
			}

			user, token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, services.ErrValidation) || errors.Is(tt.wantErr, services.ErrInvalidCredentials) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}

// Unknown email and wrong password must be indistinguishable.
func TestAuthService_Login_UniformError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	known := "known@example.com"
	unknown := "unknown@example.com"

	mockReader.EXPECT().
		GetByUsernameOrEmail(gomock.Any(), nil, &unknown).
		Return(nil, nil)
	_, _, errUnknown := svc.Login(context.Background(), unknown, "whatever")

	mockReader.EXPECT().
		GetByUsernameOrEmail(gomock.Any(), nil, &known).
		Return(&models.UserDB{UserID: uuid.New(), Email: known, PasswordHash: string(hashed)}, nil)
	_, _, errWrongPass := svc.Login(context.Background(), known, "wrong")

	assert.Equal(t, errUnknown, errWrongPass)
}
