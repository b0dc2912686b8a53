package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/finance-tracker/internal/logger"
	"github.com/sbilibin2017/finance-tracker/internal/models"
)

type ExpenseReadRepository struct {
	db *sqlx.DB
}

func NewExpenseReadRepository(db *sqlx.DB) *ExpenseReadRepository {
	return &ExpenseReadRepository{db: db}
}

// ListByUserID returns the owner's expenses ordered by effective date
// descending, creation time breaking ties.
func (r *ExpenseReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ExpenseDB, error) {
	const query = `
		SELECT expense_id, user_id, description, amount, category, date, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`

	expenses := []models.ExpenseDB{}
	err := r.db.SelectContext(ctx, &expenses, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(expenses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return expenses, nil
}

type ExpenseWriteRepository struct {
	db *sqlx.DB
}

func NewExpenseWriteRepository(db *sqlx.DB) *ExpenseWriteRepository {
	return &ExpenseWriteRepository{db: db}
}

func (r *ExpenseWriteRepository) Save(ctx context.Context, expense models.ExpenseDB) error {
	const query = `
		INSERT INTO expenses (expense_id, user_id, description, amount, category, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	args := []any{expense.ExpenseID, expense.UserID, expense.Description, expense.Amount, expense.Category, expense.Date, expense.CreatedAt}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{expense.ExpenseID, expense.UserID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the expense only when it belongs to userID. Returns
// whether a row was deleted.
func (r *ExpenseWriteRepository) Delete(ctx context.Context, userID, expenseID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM expenses
		WHERE expense_id = $1 AND user_id = $2
	`
	args := []any{expenseID, userID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
