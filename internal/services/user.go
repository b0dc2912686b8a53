package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/finance-tracker/internal/logger"
	"github.com/sbilibin2017/finance-tracker/internal/models"
)

// ErrUserNotFound is returned when a profile lookup misses.
var ErrUserNotFound = errors.New("user not found")

// UserService handles profile reads and salary updates.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// GetProfile returns the user record for the given id.
func (svc *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateSalary sets the user's monthly salary. The salary lives solely
// on the user record and is never copied onto expenses.
func (svc *UserService) UpdateSalary(ctx context.Context, userID uuid.UUID, salary float64) (*models.UserDB, error) {
	if salary < 0 {
		return nil, fmt.Errorf("%w: monthly salary must be a non-negative number", ErrValidation)
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := svc.writer.UpdateSalary(ctx, userID, salary); err != nil {
		logger.Log.Errorw("failed to update salary", "user_id", userID, "err", err)
		return nil, err
	}

	updated := *user
	updated.MonthlySalary = salary
	return &updated, nil
}
