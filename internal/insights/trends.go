package insights

import (
	"math"
	"time"

	"spendlens/internal/models"
)

// buildTrends computes the overall, weekly and monthly trend views. Fewer
// than seven transactions is not enough signal for any of them.
func (e *Engine) buildTrends(rows []row, days []dayTotal) *models.SpendingTrends {
	if len(rows) < minTrendRecords {
		return &models.SpendingTrends{Status: models.StatusInsufficientData}
	}

	trends := &models.SpendingTrends{
		Overall: e.overallTrend(days),
		Weekly:  weeklyPatterns(rows),
	}
	if monthly := monthlyPatterns(rows); monthly != nil {
		trends.Monthly = monthly
	}
	return trends
}

// overallTrend fits daily totals against day index. The slope threshold
// decides between increasing, decreasing and stable.
func (e *Engine) overallTrend(days []dayTotal) *models.OverallTrend {
	daily := dailyValues(days)
	slope, _, r2 := linearFit(daily)

	direction := "stable"
	switch {
	case slope > e.trendSlopeThreshold:
		direction = "increasing"
	case slope < -e.trendSlopeThreshold:
		direction = "decreasing"
	}

	return &models.OverallTrend{
		Direction:   direction,
		Slope:       round2(slope),
		Strength:    round2(r2),
		DailyChange: round2(slope),
	}
}

// weeklyPatterns reports mean transaction amounts per weekday, the peak and
// lowest weekdays, and the weekend-versus-weekday comparison.
func weeklyPatterns(rows []row) *models.WeeklyPatterns {
	sums := make(map[time.Weekday]float64)
	counts := make(map[time.Weekday]int)
	var weekendSum, weekdaySum float64
	var weekendCount, weekdayCount int

	for _, r := range rows {
		wd := r.date.Weekday()
		sums[wd] += r.amount
		counts[wd]++
		if isWeekend(r.date) {
			weekendSum += r.amount
			weekendCount++
		} else {
			weekdaySum += r.amount
			weekdayCount++
		}
	}

	averages := make(map[string]float64, len(sums))
	peak, lowest := "", ""
	peakAvg, lowestAvg := math.Inf(-1), math.Inf(1)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if counts[wd] == 0 {
			continue
		}
		avg := sums[wd] / float64(counts[wd])
		averages[wd.String()] = round2(avg)
		if avg > peakAvg {
			peakAvg, peak = avg, wd.String()
		}
		if avg < lowestAvg {
			lowestAvg, lowest = avg, wd.String()
		}
	}

	patterns := &models.WeeklyPatterns{
		AverageByDay:      averages,
		PeakSpendingDay:   peak,
		LowestSpendingDay: lowest,
	}
	if weekendCount > 0 {
		patterns.WeekendAverage = round2(weekendSum / float64(weekendCount))
	}
	if weekdayCount > 0 {
		patterns.WeekdayAverage = round2(weekdaySum / float64(weekdayCount))
	}
	return patterns
}

// monthlyPatterns is only meaningful across more than one calendar month.
// Growth rate is the mean of month-over-month relative changes; seasonal
// variation is the coefficient of variation across monthly totals.
func monthlyPatterns(rows []row) *models.MonthlyPatterns {
	monthly := monthlyTotals(rows)
	if len(monthly) < 2 {
		return nil
	}

	var growthSum float64
	var growthCount int
	for i := 1; i < len(monthly); i++ {
		if monthly[i-1] != 0 {
			growthSum += (monthly[i] - monthly[i-1]) / monthly[i-1]
			growthCount++
		}
	}
	growth := 0.0
	if growthCount > 0 {
		growth = growthSum / float64(growthCount)
	}

	m := mean(monthly)
	variation := 0.0
	if m != 0 {
		variation = sampleStdDev(monthly) / m
	}

	return &models.MonthlyPatterns{
		AverageMonthly:    round2(m),
		GrowthRate:        round2(growth * 100),
		SeasonalVariation: round2(variation),
	}
}
