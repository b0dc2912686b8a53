package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/finance-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func newTestFileStorage(t *testing.T) *FileStorage {
	t.Helper()

	s, err := NewFileStorage(filepath.Join(t.TempDir(), "finance.json"))
	assert.NoError(t, err)
	return s
}

func TestFileStorage_MissingFileStartsEmpty(t *testing.T) {
	s := newTestFileStorage(t)

	users := NewFileUserRepository(s)
	got, err := users.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.json")
	ctx := context.Background()

	s, err := NewFileStorage(path)
	assert.NoError(t, err)

	user := models.UserDB{UserID: uuid.New(), Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	assert.NoError(t, NewFileUserRepository(s).Save(ctx, user))

	expense := models.ExpenseDB{
		ExpenseID:   uuid.New(),
		UserID:      user.UserID,
		Description: "groceries",
		Amount:      42.5,
		Category:    models.CategoryFood,
		Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now().UTC(),
	}
	assert.NoError(t, NewFileExpenseRepository(s).Save(ctx, expense))

	reopened, err := NewFileStorage(path)
	assert.NoError(t, err)

	got, err := NewFileUserRepository(reopened).GetByID(ctx, user.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)

	expenses, err := NewFileExpenseRepository(reopened).ListByUserID(ctx, user.UserID)
	assert.NoError(t, err)
	assert.Len(t, expenses, 1)
	assert.Equal(t, "groceries", expenses[0].Description)
}

func TestFileStorage_CorruptFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := NewFileStorage(path)
	assert.Error(t, err)
	assert.Nil(t, s)
}

// The API model strips the password hash from JSON, but the store has
// its own on-disk shape, so credentials must survive a restart.
func TestFileStorage_PasswordHashSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.json")
	ctx := context.Background()

	s, err := NewFileStorage(path)
	assert.NoError(t, err)

	user := models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: "bcrypt-hash"}
	assert.NoError(t, NewFileUserRepository(s).Save(ctx, user))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "bcrypt-hash")

	reopened, err := NewFileStorage(path)
	assert.NoError(t, err)

	got, err := NewFileUserRepository(reopened).GetByID(ctx, user.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "bcrypt-hash", got.PasswordHash)
}

// A failed flush must not leave the rejected mutation visible in memory.
func TestFileStorage_FlushErrorRollsBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	assert.NoError(t, os.Mkdir(dir, 0o700))
	path := filepath.Join(dir, "finance.json")
	ctx := context.Background()

	s, err := NewFileStorage(path)
	assert.NoError(t, err)

	users := NewFileUserRepository(s)
	expenses := NewFileExpenseRepository(s)

	first := models.UserDB{UserID: uuid.New(), Username: "alice", MonthlySalary: 1000}
	assert.NoError(t, users.Save(ctx, first))

	kept := models.ExpenseDB{ExpenseID: uuid.New(), UserID: first.UserID, Description: "kept"}
	assert.NoError(t, expenses.Save(ctx, kept))

	// Removing the directory makes every subsequent flush fail
	assert.NoError(t, os.RemoveAll(dir))

	second := models.UserDB{UserID: uuid.New(), Username: "bob"}
	assert.Error(t, users.Save(ctx, second))
	got, err := users.GetByID(ctx, second.UserID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.Error(t, users.UpdateSalary(ctx, first.UserID, 9999))
	got, err = users.GetByID(ctx, first.UserID)
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, got.MonthlySalary)

	assert.Error(t, expenses.Save(ctx, models.ExpenseDB{ExpenseID: uuid.New(), UserID: first.UserID, Description: "lost"}))

	deleted, err := expenses.Delete(ctx, first.UserID, kept.ExpenseID)
	assert.Error(t, err)
	assert.False(t, deleted)

	list, err := expenses.ListByUserID(ctx, first.UserID)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "kept", list[0].Description)
}

func TestFileUserRepository_GetByUsernameOrEmail(t *testing.T) {
	s := newTestFileStorage(t)
	repo := NewFileUserRepository(s)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, models.UserDB{UserID: uuid.New(), Username: "charlie", Email: "charlie@example.com"}))
	assert.NoError(t, repo.Save(ctx, models.UserDB{UserID: uuid.New(), Username: "dave", Email: "dave@example.com"}))

	t.Run("ByUsername", func(t *testing.T) {
		username := "charlie"
		user, err := repo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("ByEmail", func(t *testing.T) {
		email := "dave@example.com"
		user, err := repo.GetByUsernameOrEmail(ctx, nil, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		username := "nonexistent"
		user, err := repo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestFileUserRepository_UpdateSalary(t *testing.T) {
	s := newTestFileStorage(t)
	repo := NewFileUserRepository(s)
	ctx := context.Background()

	userID := uuid.New()
	assert.NoError(t, repo.Save(ctx, models.UserDB{UserID: userID, Username: "alice"}))

	assert.NoError(t, repo.UpdateSalary(ctx, userID, 2500))

	got, err := repo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 2500.0, got.MonthlySalary)
}

func TestFileUserRepository_UpdateSalary_MissingUser(t *testing.T) {
	s := newTestFileStorage(t)
	repo := NewFileUserRepository(s)

	err := repo.UpdateSalary(context.Background(), uuid.New(), 2500)
	assert.Error(t, err)
}

func TestFileExpenseRepository_ListByUserID_Ordering(t *testing.T) {
	s := newTestFileStorage(t)
	repo := NewFileExpenseRepository(s)
	ctx := context.Background()

	userID := uuid.New()
	otherID := uuid.New()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	older := models.ExpenseDB{ExpenseID: uuid.New(), UserID: userID, Description: "older", Date: base, CreatedAt: base}
	newer := models.ExpenseDB{ExpenseID: uuid.New(), UserID: userID, Description: "newer", Date: base.AddDate(0, 0, 3), CreatedAt: base}
	sameDayLater := models.ExpenseDB{ExpenseID: uuid.New(), UserID: userID, Description: "same day, created later", Date: base, CreatedAt: base.Add(time.Hour)}
	foreign := models.ExpenseDB{ExpenseID: uuid.New(), UserID: otherID, Description: "foreign", Date: base.AddDate(0, 0, 5), CreatedAt: base}

	for _, e := range []models.ExpenseDB{older, newer, sameDayLater, foreign} {
		assert.NoError(t, repo.Save(ctx, e))
	}

	got, err := repo.ListByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "newer", got[0].Description)
	assert.Equal(t, "same day, created later", got[1].Description)
	assert.Equal(t, "older", got[2].Description)
}

func TestFileExpenseRepository_Delete(t *testing.T) {
	s := newTestFileStorage(t)
	repo := NewFileExpenseRepository(s)
	ctx := context.Background()

	userID := uuid.New()
	expenseID := uuid.New()
	assert.NoError(t, repo.Save(ctx, models.ExpenseDB{ExpenseID: expenseID, UserID: userID}))

	t.Run("OwnedRowDeleted", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, userID, expenseID)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("RepeatDeleteMisses", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, userID, expenseID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("NotOwnedMisses", func(t *testing.T) {
		otherExpense := uuid.New()
		assert.NoError(t, repo.Save(ctx, models.ExpenseDB{ExpenseID: otherExpense, UserID: userID}))

		deleted, err := repo.Delete(ctx, uuid.New(), otherExpense)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
