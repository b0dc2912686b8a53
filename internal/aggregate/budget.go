package aggregate

import (
	"math"

	"github.com/sbilibin2017/finance-tracker/internal/models"
)

// Remaining returns the budget left after the current month's spending.
// Negative when spending exceeds the salary.
func Remaining(salary, currentMonthTotal float64) float64 {
	return salary - currentMonthTotal
}

// PercentUsed returns the share of the salary spent this month as a
// percentage rounded to one decimal. Zero salary yields 0, not an error.
func PercentUsed(salary, currentMonthTotal float64) float64 {
	if salary == 0 {
		return 0
	}
	return math.Round(currentMonthTotal/salary*1000) / 10
}

// TopCategory returns the category with the largest summed amount.
// Ties keep the earlier entry. The second return is false for empty
// input.
func TopCategory(totals []CategoryAmount) (models.Category, bool) {
	if len(totals) == 0 {
		return "", false
	}
	top := totals[0]
	for _, t := range totals[1:] {
		if t.Amount > top.Amount {
			top = t
		}
	}
	return top.Category, true
}
