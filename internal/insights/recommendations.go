package insights

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"spendlens/internal/models"
)

// priorityRank orders recommendations from most to least urgent.
var priorityRank = map[string]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

// buildRecommendations derives ranked advisory items from the spending
// patterns. When nothing needs flagging a single positive item is returned.
func (e *Engine) buildRecommendations(rows []row, days []dayTotal, categories *models.CategoryInsights) []models.Recommendation {
	var recs []models.Recommendation

	daily := dailyValues(days)
	dailyAvg := mean(daily)

	if rec, ok := e.recentIncreaseWarning(rows, dailyAvg); ok {
		recs = append(recs, rec)
	}
	if rec, ok := dominantCategoryAdvice(categories); ok {
		recs = append(recs, rec)
	}
	if rec, ok := weekendPatternTip(rows); ok {
		recs = append(recs, rec)
	}
	if rec, ok := frequencyTip(rows, days); ok {
		recs = append(recs, rec)
	}

	if len(recs) == 0 {
		recs = append(recs, models.Recommendation{
			ID:       uuid.New().String(),
			Type:     "success",
			Priority: models.PriorityLow,
			Title:    "Good Spending Habits",
			Message:  "Your spending patterns look healthy and consistent.",
			Action:   "Consider setting up automated savings for surplus funds",
			Insight:  "positive_feedback",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
	})
	return recs
}

// recentIncreaseWarning fires when the trailing window's daily average is
// well above the overall daily average.
func (e *Engine) recentIncreaseWarning(rows []row, dailyAvg float64) (models.Recommendation, bool) {
	if dailyAvg <= 0 {
		return models.Recommendation{}, false
	}

	cutoff := rows[len(rows)-1].date.AddDate(0, 0, -e.recentWindowDays)
	var recent []row
	for _, r := range rows {
		if !r.date.Before(cutoff) {
			recent = append(recent, r)
		}
	}
	recentAvg := mean(dailyValues(dailyTotals(recent)))

	if recentAvg <= dailyAvg*1.2 {
		return models.Recommendation{}, false
	}

	increase := (recentAvg/dailyAvg - 1) * 100
	return models.Recommendation{
		ID:               uuid.New().String(),
		Type:             "warning",
		Priority:         models.PriorityHigh,
		Title:            "Spending Increase Detected",
		Message:          fmt.Sprintf("Your spending has increased by %.0f%% this week.", increase),
		Action:           "Review recent transactions and consider setting daily limits",
		PotentialSavings: round2((recentAvg - dailyAvg) * 7),
	}, true
}

// dominantCategoryAdvice fires when one category dominates total spending.
func dominantCategoryAdvice(categories *models.CategoryInsights) (models.Recommendation, bool) {
	if len(categories.TopCategories) == 0 {
		return models.Recommendation{}, false
	}
	top := categories.TopCategories[0]
	stats := categories.Detailed[top.Category]
	if stats.PercentageOfTotal <= 40 {
		return models.Recommendation{}, false
	}

	return models.Recommendation{
		ID:       uuid.New().String(),
		Type:     "info",
		Priority: models.PriorityMedium,
		Title:    fmt.Sprintf("%s Dominates Spending", top.Category),
		Message:  fmt.Sprintf("%s accounts for %.0f%% of your expenses.", top.Category, stats.PercentageOfTotal),
		Action:   fmt.Sprintf("Consider budgeting specifically for %s expenses", top.Category),
		Insight:  "focus_area",
	}, true
}

// weekendPatternTip fires when weekend transactions run well above weekday
// ones. The savings figure assumes eight weekend days per month.
func weekendPatternTip(rows []row) (models.Recommendation, bool) {
	var weekendSum, weekdaySum float64
	var weekendCount, weekdayCount int
	for _, r := range rows {
		if isWeekend(r.date) {
			weekendSum += r.amount
			weekendCount++
		} else {
			weekdaySum += r.amount
			weekdayCount++
		}
	}
	if weekendCount == 0 || weekdayCount == 0 {
		return models.Recommendation{}, false
	}

	weekendAvg := weekendSum / float64(weekendCount)
	weekdayAvg := weekdaySum / float64(weekdayCount)
	if weekdayAvg <= 0 || weekendAvg <= weekdayAvg*1.5 {
		return models.Recommendation{}, false
	}

	increase := (weekendAvg/weekdayAvg - 1) * 100
	return models.Recommendation{
		ID:               uuid.New().String(),
		Type:             "tip",
		Priority:         models.PriorityLow,
		Title:            "Weekend Spending Pattern",
		Message:          fmt.Sprintf("You spend %.0f%% more on weekends.", increase),
		Action:           "Plan weekend activities within budget",
		PotentialSavings: round2((weekendAvg - weekdayAvg) * 8),
	}, true
}

// frequencyTip fires when the average number of transactions per spending
// day is unusually high.
func frequencyTip(rows []row, days []dayTotal) (models.Recommendation, bool) {
	if len(days) == 0 {
		return models.Recommendation{}, false
	}
	frequency := float64(len(rows)) / float64(len(days))
	if frequency <= 5 {
		return models.Recommendation{}, false
	}

	return models.Recommendation{
		ID:       uuid.New().String(),
		Type:     "tip",
		Priority: models.PriorityLow,
		Title:    "High Transaction Frequency",
		Message:  fmt.Sprintf("You average %.1f transactions per day.", frequency),
		Action:   "Consider consolidating purchases to reduce impulse spending",
		Insight:  "behavioral_pattern",
	}, true
}
