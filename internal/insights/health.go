package insights

import (
	"math"

	"spendlens/internal/models"
)

// Health factor point budgets. The score starts at 100 and each factor can
// take away at most its budget.
const (
	consistencyPoints     = 30.0
	diversificationPoints = 20.0
	trendPoints           = 25.0
	disciplinePoints      = 25.0
)

// buildHealth scores spending health from 0 to 100 across four factors:
// daily consistency, category diversification, recent trend direction and
// outlier discipline.
func buildHealth(rows []row, days []dayTotal, categories *models.CategoryInsights) *models.FinancialHealth {
	score := 100.0
	factors := models.HealthFactors{}

	daily := dailyValues(days)

	// Consistency: penalize high day-to-day variation.
	cv := 0.0
	if m := mean(daily); m > 0 {
		cv = sampleStdDev(daily) / m
	}
	consistencyScore := math.Max(0, consistencyPoints-cv*10)
	score -= consistencyPoints - consistencyScore
	factors.SpendingConsistency = consistencyScore / consistencyPoints

	// Diversification: reward spreading spending across categories.
	diversityScore := math.Min(diversificationPoints, float64(len(categories.Detailed))*3)
	score -= diversificationPoints - diversityScore
	factors.CategoryDiversification = diversityScore / diversificationPoints

	// Trend: penalize a rising recent direction. Too little history leaves
	// the factor untouched.
	factors.SpendingTrend = 1.0
	if len(daily) >= minTrendRecords {
		recent := simpleTrend(daily[len(daily)-7:])
		var penalty float64
		switch {
		case recent > 0.1:
			penalty = 15
		case recent < -0.1:
			penalty = 0
		default:
			penalty = 5
		}
		score -= penalty
		factors.SpendingTrend = (trendPoints - penalty) / trendPoints
	}

	// Discipline: penalize transactions outside the IQR fences.
	amounts := transactionAmounts(rows)
	q1 := quantile(amounts, 0.25)
	q3 := quantile(amounts, 0.75)
	iqr := q3 - q1
	outliers := 0
	for _, a := range amounts {
		if a < q1-1.5*iqr || a > q3+1.5*iqr {
			outliers++
		}
	}
	outlierPct := float64(outliers) / float64(len(amounts)) * 100
	outlierPenalty := math.Min(disciplinePoints, outlierPct*2.5)
	score -= outlierPenalty
	factors.SpendingDiscipline = (disciplinePoints - outlierPenalty) / disciplinePoints

	score = math.Max(0, math.Min(100, score))

	status := "needs_improvement"
	switch {
	case score >= 85:
		status = "excellent"
	case score >= 70:
		status = "good"
	case score >= 55:
		status = "fair"
	}

	return &models.FinancialHealth{
		OverallScore: round2(score),
		Status:       status,
		Factors:      factors,
		Notes:        healthNotes(score, factors),
	}
}

// healthNotes turns weak factors into short advisory notes.
func healthNotes(score float64, factors models.HealthFactors) []string {
	var notes []string
	if factors.SpendingConsistency < 0.7 {
		notes = append(notes, "Work on maintaining consistent daily spending habits")
	}
	if factors.CategoryDiversification < 0.5 {
		notes = append(notes, "Consider diversifying your spending across different categories")
	}
	if factors.SpendingTrend < 0.6 {
		notes = append(notes, "Monitor your spending trend - it's been increasing lately")
	}
	if factors.SpendingDiscipline < 0.7 {
		notes = append(notes, "Try to avoid large, unexpected purchases that disrupt your budget")
	}
	if score > 85 {
		notes = append(notes, "Great job! Your spending habits are very healthy")
	}
	return notes
}
