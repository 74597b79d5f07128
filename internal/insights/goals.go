package insights

import (
	"time"

	"spendlens/internal/models"
)

// buildGoals compares the current month (the month of the most recent
// record) against the configured budgets. Only called when budgets are
// configured.
func (e *Engine) buildGoals(rows []row) *models.GoalProgress {
	last := rows[len(rows)-1].date
	currentMonth := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)

	var monthTotal float64
	categorySpent := make(map[models.Category]float64)
	for _, r := range rows {
		month := time.Date(r.date.Year(), r.date.Month(), 1, 0, 0, 0, 0, time.UTC)
		if !month.Equal(currentMonth) {
			continue
		}
		monthTotal += r.amount
		categorySpent[r.category] += r.amount
	}

	goals := &models.GoalProgress{}

	if e.budgets.MonthlyTotal > 0 {
		usage := monthTotal / e.budgets.MonthlyTotal * 100
		status := "on_track"
		if usage > 80 {
			status = "over_budget"
		}
		goals.MonthlyBudget = &models.BudgetProgress{
			Target:         e.budgets.MonthlyTotal,
			Current:        round2(monthTotal),
			PercentageUsed: round2(usage),
			Status:         status,
		}
	}

	if len(e.budgets.CategoryLimits) > 0 {
		limits := make(map[models.Category]models.LimitProgress, len(e.budgets.CategoryLimits))
		for category, limit := range e.budgets.CategoryLimits {
			if limit <= 0 {
				continue
			}
			spent := categorySpent[category]
			usage := spent / limit * 100
			status := "within_limit"
			if usage > 100 {
				status = "exceeded"
			}
			limits[category] = models.LimitProgress{
				Limit:          limit,
				Spent:          round2(spent),
				PercentageUsed: round2(usage),
				Remaining:      round2(limit - spent),
				Status:         status,
			}
		}
		if len(limits) > 0 {
			goals.CategoryLimits = limits
		}
	}

	return goals
}
