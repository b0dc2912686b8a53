// Package aggregate derives summary figures from a raw expense
// collection. All functions are pure: they never touch storage and never
// mutate their input, so results are safe to recompute on every request.
package aggregate

import (
	"sort"
	"time"

	"github.com/sbilibin2017/finance-tracker/internal/models"
)

// MonthAmount is a total for one calendar month.
type MonthAmount struct {
	// Month label, e.g. "March 2024"
	Month string `json:"month"`
	// Summed amount for that month
	Amount float64 `json:"amount"`
}

// CategoryAmount is a total for one expense category.
type CategoryAmount struct {
	Category models.Category `json:"category"`
	Amount   float64         `json:"amount"`
}

// DayAmount is a total for one calendar day.
type DayAmount struct {
	// Short weekday label, e.g. "Mon"
	Label string `json:"label"`
	// ISO date, e.g. "2024-03-01"
	Date string `json:"date"`
	// Summed amount for that day
	Amount float64 `json:"amount"`
}

const monthLabelLayout = "January 2006"

// Total sums all expense amounts. Zero for empty input.
func Total(expenses []models.ExpenseDB) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// ByMonth groups expenses by the calendar month of their effective date
// and sums amounts per group. Groups appear in order of first occurrence
// in the input.
func ByMonth(expenses []models.ExpenseDB) []MonthAmount {
	idx := make(map[string]int, len(expenses))
	var out []MonthAmount
	for _, e := range expenses {
		label := e.Date.Format(monthLabelLayout)
		i, ok := idx[label]
		if !ok {
			i = len(out)
			idx[label] = i
			out = append(out, MonthAmount{Month: label})
		}
		out[i].Amount += e.Amount
	}
	return out
}

// ByCategory groups expenses by category and sums amounts per group.
// Only categories present in the input appear, in order of first
// occurrence.
func ByCategory(expenses []models.ExpenseDB) []CategoryAmount {
	idx := make(map[models.Category]int, len(expenses))
	var out []CategoryAmount
	for _, e := range expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, CategoryAmount{Category: e.Category})
		}
		out[i].Amount += e.Amount
	}
	return out
}

// Recent returns at most n expenses ordered by effective date
// descending. The sort is stable: expenses sharing a date keep their
// original relative order. The input slice is left untouched.
func Recent(expenses []models.ExpenseDB, n int) []models.ExpenseDB {
	sorted := make([]models.ExpenseDB, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// DailySeries sums expenses per calendar day for the last days calendar
// days ending at now inclusive. Days with no expenses report amount 0,
// so the result always has exactly days entries.
func DailySeries(expenses []models.ExpenseDB, days int, now time.Time) []DayAmount {
	out := make([]DayAmount, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		entry := DayAmount{
			Label: day.Format("Mon"),
			Date:  day.Format("2006-01-02"),
		}
		for _, e := range expenses {
			if sameDay(e.Date, day) {
				entry.Amount += e.Amount
			}
		}
		out = append(out, entry)
	}
	return out
}

// CurrentMonthTotal sums expenses whose effective date falls in the
// same calendar month as now.
func CurrentMonthTotal(expenses []models.ExpenseDB, now time.Time) float64 {
	var total float64
	for _, e := range expenses {
		if e.Date.Year() == now.Year() && e.Date.Month() == now.Month() {
			total += e.Amount
		}
	}
	return total
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
