package insights

import (
	"sort"
	"time"

	"spendlens/internal/models"
)

// topCategoryCount limits the ranked category listing.
const topCategoryCount = 3

// buildCategories breaks spending down per category: aggregate statistics,
// the top categories by total, per-category trend signals and a diversity
// score.
func buildCategories(rows []row) *models.CategoryInsights {
	amounts := make(map[models.Category][]float64)
	perDay := make(map[models.Category]map[time.Time]float64)
	var total float64

	for _, r := range rows {
		amounts[r.category] = append(amounts[r.category], r.amount)
		if perDay[r.category] == nil {
			perDay[r.category] = make(map[time.Time]float64)
		}
		perDay[r.category][r.date] += r.amount
		total += r.amount
	}

	detailed := make(map[models.Category]models.CategoryStats, len(amounts))
	totals := make([]models.CategoryTotal, 0, len(amounts))
	trends := make(map[models.Category]float64)

	for category, values := range amounts {
		catTotal := 0.0
		for _, v := range values {
			catTotal += v
		}

		consistency := 1.0
		if std := sampleStdDev(values); std > 0 {
			consistency = 1 / (1 + std)
		}

		pct := 0.0
		if total > 0 {
			pct = catTotal / total * 100
		}

		detailed[category] = models.CategoryStats{
			TotalSpent:         round2(catTotal),
			AverageTransaction: round2(mean(values)),
			TransactionCount:   len(values),
			PercentageOfTotal:  round2(pct),
			Consistency:        round2(consistency),
		}
		totals = append(totals, models.CategoryTotal{Category: category, Total: round2(catTotal)})

		if daily := categoryDailySeries(perDay[category]); len(daily) >= 3 {
			trends[category] = round2(simpleTrend(daily))
		}
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})
	if len(totals) > topCategoryCount {
		totals = totals[:topCategoryCount]
	}

	diversity := float64(len(amounts)) / float64(len(rows)) * 100

	return &models.CategoryInsights{
		Detailed:       detailed,
		TopCategories:  totals,
		CategoryTrends: trends,
		DiversityScore: round2(diversity),
	}
}

// categoryDailySeries flattens a category's per-day totals into date order.
func categoryDailySeries(byDay map[time.Time]float64) []float64 {
	dates := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	values := make([]float64, len(dates))
	for i, d := range dates {
		values[i] = byDay[d]
	}
	return values
}
