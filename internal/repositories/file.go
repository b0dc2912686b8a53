package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/finance-tracker/internal/models"
)

// fileUser is the on-disk shape of a user record. The API model hides
// the password hash from JSON, the store must keep it.
type fileUser struct {
	UserID        uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password_hash"`
	MonthlySalary float64   `json:"monthlySalary"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toFileUser(u models.UserDB) fileUser {
	return fileUser{
		UserID:        u.UserID,
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		MonthlySalary: u.MonthlySalary,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (fu fileUser) model() models.UserDB {
	return models.UserDB{
		UserID:        fu.UserID,
		Username:      fu.Username,
		Email:         fu.Email,
		PasswordHash:  fu.PasswordHash,
		MonthlySalary: fu.MonthlySalary,
		CreatedAt:     fu.CreatedAt,
		UpdatedAt:     fu.UpdatedAt,
	}
}

// fileData is the on-disk document holding every record.
type fileData struct {
	Users    []fileUser         `json:"users"`
	Expenses []models.ExpenseDB `json:"expenses"`
}

// FileStorage keeps all records in a single JSON document on disk.
// Writes go through a temp file followed by a rename, so a record
// update is either fully visible or not at all. Access is serialized
// with a mutex, which is enough at personal-finance scale.
type FileStorage struct {
	path string
	mu   sync.Mutex
	data fileData
}

// NewFileStorage opens or creates the JSON document at path.
func NewFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("parse storage file: %w", err)
		}
	}
	return s, nil
}

// flush writes the whole document atomically. Callers hold s.mu and
// roll their in-memory mutation back when flush fails, so memory never
// claims a state disk refused.
func (s *FileStorage) flush() error {
	raw, err := json.MarshalIndent(&s.data, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".finance-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// FileUserRepository reads and writes users in a FileStorage.
type FileUserRepository struct {
	s *FileStorage
}

func NewFileUserRepository(s *FileStorage) *FileUserRepository {
	return &FileUserRepository{s: s}
}

func (r *FileUserRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.data.Users {
		if username != nil && u.Username == *username {
			user := u.model()
			return &user, nil
		}
		if email != nil && u.Email == *email {
			user := u.model()
			return &user, nil
		}
	}
	return nil, nil
}

func (r *FileUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.data.Users {
		if u.UserID == userID {
			user := u.model()
			return &user, nil
		}
	}
	return nil, nil
}

func (r *FileUserRepository) Save(ctx context.Context, user models.UserDB) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.data.Users = append(r.s.data.Users, toFileUser(user))
	if err := r.s.flush(); err != nil {
		r.s.data.Users = r.s.data.Users[:len(r.s.data.Users)-1]
		return err
	}
	return nil
}

func (r *FileUserRepository) UpdateSalary(ctx context.Context, userID uuid.UUID, salary float64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.data.Users {
		if r.s.data.Users[i].UserID == userID {
			prev := r.s.data.Users[i]
			r.s.data.Users[i].MonthlySalary = salary
			r.s.data.Users[i].UpdatedAt = time.Now()
			if err := r.s.flush(); err != nil {
				r.s.data.Users[i] = prev
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("user %s not found", userID)
}

// FileExpenseRepository reads and writes expenses in a FileStorage.
type FileExpenseRepository struct {
	s *FileStorage
}

func NewFileExpenseRepository(s *FileStorage) *FileExpenseRepository {
	return &FileExpenseRepository{s: s}
}

// ListByUserID returns the owner's expenses ordered by effective date
// descending, creation time breaking ties.
func (r *FileExpenseRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ExpenseDB, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []models.ExpenseDB{}
	for _, e := range r.s.data.Expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *FileExpenseRepository) Save(ctx context.Context, expense models.ExpenseDB) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.data.Expenses = append(r.s.data.Expenses, expense)
	if err := r.s.flush(); err != nil {
		r.s.data.Expenses = r.s.data.Expenses[:len(r.s.data.Expenses)-1]
		return err
	}
	return nil
}

func (r *FileExpenseRepository) Delete(ctx context.Context, userID, expenseID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, e := range r.s.data.Expenses {
		if e.ExpenseID == expenseID && e.UserID == userID {
			prev := r.s.data.Expenses
			next := make([]models.ExpenseDB, 0, len(prev)-1)
			next = append(next, prev[:i]...)
			next = append(next, prev[i+1:]...)
			r.s.data.Expenses = next
			if err := r.s.flush(); err != nil {
				r.s.data.Expenses = prev
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
