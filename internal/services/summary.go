package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/finance-tracker/internal/aggregate"
	"github.com/sbilibin2017/finance-tracker/internal/logger"
	"github.com/sbilibin2017/finance-tracker/internal/models"
)

// Number of entries in the recent-expenses and daily-series views.
const (
	recentCount    = 5
	dailySeriesLen = 7
)

// Summary is the full set of derived views over one user's expenses.
type Summary struct {
	Total             float64                    `json:"total"`
	ByMonth           []aggregate.MonthAmount    `json:"byMonth"`
	ByCategory        []aggregate.CategoryAmount `json:"byCategory"`
	Recent            []models.ExpenseDB         `json:"recent"`
	DailySeries       []aggregate.DayAmount      `json:"dailySeries"`
	CurrentMonthTotal float64                    `json:"currentMonthTotal"`
	MonthlySalary     float64                    `json:"monthlySalary"`
	Remaining         float64                    `json:"remaining"`
	PercentUsed       float64                    `json:"percentUsed"`
	TopCategory       models.Category            `json:"topCategory,omitempty"`
}

// SummaryService recomputes aggregate views per request.
type SummaryService struct {
	users    UserReader
	expenses ExpenseReader
}

// NewSummaryService creates a new SummaryService instance.
func NewSummaryService(users UserReader, expenses ExpenseReader) *SummaryService {
	return &SummaryService{
		users:    users,
		expenses: expenses,
	}
}

// GetSummary builds the summary for the given user as of now.
func (svc *SummaryService) GetSummary(ctx context.Context, userID uuid.UUID, now time.Time) (*Summary, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	expenses, err := svc.expenses.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list expenses", "user_id", userID, "err", err)
		return nil, err
	}

	byCategory := aggregate.ByCategory(expenses)
	currentMonth := aggregate.CurrentMonthTotal(expenses, now)

	s := &Summary{
		Total:             aggregate.Total(expenses),
		ByMonth:           aggregate.ByMonth(expenses),
		ByCategory:        byCategory,
		Recent:            aggregate.Recent(expenses, recentCount),
		DailySeries:       aggregate.DailySeries(expenses, dailySeriesLen, now),
		CurrentMonthTotal: currentMonth,
		MonthlySalary:     user.MonthlySalary,
		Remaining:         aggregate.Remaining(user.MonthlySalary, currentMonth),
		PercentUsed:       aggregate.PercentUsed(user.MonthlySalary, currentMonth),
	}
	if top, ok := aggregate.TopCategory(byCategory); ok {
		s.TopCategory = top
	}
	return s, nil
}
