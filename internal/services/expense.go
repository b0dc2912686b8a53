package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/finance-tracker/internal/logger"
	"github.com/sbilibin2017/finance-tracker/internal/models"
)

// ErrExpenseNotFound is returned when an expense is absent or owned by
// another user. The two causes are indistinguishable to the caller.
var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseReader defines read-only operations for expenses.
type ExpenseReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ExpenseDB, error)
}

// ExpenseWriter defines write operations for expenses.
type ExpenseWriter interface {
	Save(ctx context.Context, expense models.ExpenseDB) error
	Delete(ctx context.Context, userID, expenseID uuid.UUID) (bool, error)
}

// ExpenseService handles expense CRUD scoped to a single owner.
type ExpenseService struct {
	reader ExpenseReader
	writer ExpenseWriter
}

// NewExpenseService creates a new ExpenseService instance.
func NewExpenseService(reader ExpenseReader, writer ExpenseWriter) *ExpenseService {
	return &ExpenseService{
		reader: reader,
		writer: writer,
	}
}

// List returns the owner's expenses ordered by effective date descending.
func (svc *ExpenseService) List(ctx context.Context, userID uuid.UUID) ([]models.ExpenseDB, error) {
	expenses, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list expenses", "user_id", userID, "err", err)
		return nil, err
	}
	return expenses, nil
}

// Add validates and persists a new expense for the owner.
func (svc *ExpenseService) Add(ctx context.Context, userID uuid.UUID, description string, amount float64, category string, date time.Time) (*models.ExpenseDB, error) {
	description = strings.TrimSpace(description)
	if description == "" || len(description) > 200 {
		return nil, fmt.Errorf("%w: description must be between 1 and 200 characters", ErrValidation)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount must be a non-negative number", ErrValidation)
	}
	cat, err := models.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	expense := models.ExpenseDB{
		ExpenseID:   uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Category:    cat,
		Date:        date,
		CreatedAt:   time.Now(),
	}

	if err := svc.writer.Save(ctx, expense); err != nil {
		logger.Log.Errorw("failed to save expense", "user_id", userID, "err", err)
		return nil, err
	}

	return &expense, nil
}

// Delete removes the owner's expense by id.
func (svc *ExpenseService) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	deleted, err := svc.writer.Delete(ctx, userID, expenseID)
	if err != nil {
		logger.Log.Errorw("failed to delete expense", "user_id", userID, "expense_id", expenseID, "err", err)
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}
