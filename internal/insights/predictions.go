package insights

import (
	"time"

	"spendlens/internal/models"
)

// minRefinedDays gates the refined 7-day forecast.
const minRefinedDays = 30

// buildPredictions produces the next-day, next-week and next-month forecasts
// plus the refined ensemble forecast when enough history exists.
func (e *Engine) buildPredictions(rows []row, days []dayTotal) *models.Predictions {
	if len(rows) < minTrendRecords {
		return &models.Predictions{Status: models.StatusInsufficientData}
	}

	daily := dailyValues(days)
	overallAvg := mean(daily)

	recentWindow := e.recentWindowDays
	if recentWindow > len(daily) {
		recentWindow = len(daily)
	}
	recentAvg := mean(daily[len(daily)-recentWindow:])

	predictions := &models.Predictions{
		NextDay: &models.NextDayPrediction{
			PredictedAmount: round2((recentAvg + overallAvg) / 2),
			Confidence:      "medium",
			Method:          "trend_average",
		},
		NextWeek: nextWeekForecast(rows, overallAvg),
	}

	if monthly := monthlyTotals(rows); len(monthly) > 1 {
		predictions.NextMonth = &models.NextMonthPrediction{
			PredictedTotal: round2(mean(monthly)),
			Confidence:     "medium",
		}
	}

	if len(daily) >= minRefinedDays {
		predictions.Refined = refinedForecast(daily)
	}

	return predictions
}

// nextWeekForecast projects each of the next seven dates from the mean
// transaction amount of its weekday, falling back to the overall daily
// average for weekdays with no history.
func nextWeekForecast(rows []row, overallAvg float64) []models.DailyPrediction {
	sums := make(map[time.Weekday]float64)
	counts := make(map[time.Weekday]int)
	for _, r := range rows {
		wd := r.date.Weekday()
		sums[wd] += r.amount
		counts[wd]++
	}

	lastDate := rows[len(rows)-1].date
	forecast := make([]models.DailyPrediction, 0, 7)
	for i := 1; i <= 7; i++ {
		date := lastDate.AddDate(0, 0, i)
		predicted := overallAvg
		if counts[date.Weekday()] > 0 {
			predicted = sums[date.Weekday()] / float64(counts[date.Weekday()])
		}
		forecast = append(forecast, models.DailyPrediction{
			Date:            date.Format(dateLayout),
			PredictedAmount: round2(predicted),
		})
	}
	return forecast
}

// refinedForecast blends two regressors over the daily series: a linear fit
// extrapolated past the end, and the mean of the trailing 7-day and 30-day
// rolling averages. Each projected day is the average of the two, floored
// at zero.
func refinedForecast(daily []float64) *models.RefinedForecast {
	slope, intercept, _ := linearFit(daily)

	roll7 := mean(daily[len(daily)-7:])
	roll30 := mean(daily[len(daily)-30:])
	rollingEstimate := (roll7 + roll30) / 2

	next := make([]float64, 0, 7)
	for i := 1; i <= 7; i++ {
		x := float64(len(daily) - 1 + i)
		fitted := intercept + slope*x
		blended := (fitted + rollingEstimate) / 2
		if blended < 0 {
			blended = 0
		}
		next = append(next, round2(blended))
	}

	return &models.RefinedForecast{
		NextSevenDays: next,
		Method:        "ensemble_regression",
	}
}
