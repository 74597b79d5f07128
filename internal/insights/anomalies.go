package insights

import (
	"math"

	"spendlens/internal/models"
)

// Anomaly gates and limits.
const (
	minAnomalyRecords    = 5
	maxListedOutliers    = 5
	maxCategoryAnomalies = 5
)

// buildAnomalies flags transactions outside the IQR fences, days far from
// the mean daily total and transactions far outside their category's range.
// Fewer than five transactions is not enough to call anything unusual.
func buildAnomalies(rows []row, days []dayTotal) *models.AnomalyReport {
	if len(rows) < minAnomalyRecords {
		return &models.AnomalyReport{Status: models.StatusInsufficientData}
	}

	return &models.AnomalyReport{
		Transactions:      transactionOutliers(rows),
		UnusualDays:       unusualSpendingDays(days),
		CategoryAnomalies: categoryAnomalies(rows),
	}
}

// transactionOutliers applies the IQR fence test to transaction amounts.
// Individual outliers are only listed when there are few enough to read.
func transactionOutliers(rows []row) *models.TransactionOutliers {
	amounts := transactionAmounts(rows)
	q1 := quantile(amounts, 0.25)
	q3 := quantile(amounts, 0.75)
	iqr := q3 - q1
	high := q3 + 1.5*iqr
	low := q1 - 1.5*iqr

	var highOutliers []models.OutlierRecord
	highCount := 0
	largest := rows[0]
	for _, r := range rows {
		if r.amount > high {
			highCount++
			highOutliers = append(highOutliers, outlierRecord(r))
		}
		if r.amount > largest.amount {
			largest = r
		}
	}
	if highCount > maxListedOutliers {
		highOutliers = nil
	}

	return &models.TransactionOutliers{
		HighValueCount: highCount,
		ThresholdHigh:  round2(high),
		ThresholdLow:   round2(low),
		Outliers:       highOutliers,
		Largest:        outlierRecord(largest),
	}
}

func outlierRecord(r row) models.OutlierRecord {
	return models.OutlierRecord{
		Date:        r.date.Format(dateLayout),
		Amount:      round2(r.amount),
		Category:    r.category,
		Description: r.description,
	}
}

// unusualSpendingDays flags days deviating more than two standard deviations
// from the mean daily total. Nil when daily totals have no variance.
func unusualSpendingDays(days []dayTotal) *models.UnusualSpendingDays {
	daily := dailyValues(days)
	m := mean(daily)
	std := sampleStdDev(daily)
	if std <= 0 {
		return nil
	}

	flagged := make(map[string]float64)
	for _, d := range days {
		if math.Abs(d.total-m) > 2*std {
			flagged[d.date.Format(dateLayout)] = round2(d.total)
		}
	}

	return &models.UnusualSpendingDays{
		Count: len(flagged),
		Days:  flagged,
	}
}

// categoryAnomalies flags transactions more than two standard deviations
// from their category's mean, capped at the first few in date order.
func categoryAnomalies(rows []row) []models.CategoryAnomaly {
	amounts := make(map[models.Category][]float64)
	for _, r := range rows {
		amounts[r.category] = append(amounts[r.category], r.amount)
	}

	means := make(map[models.Category]float64, len(amounts))
	stds := make(map[models.Category]float64, len(amounts))
	for category, values := range amounts {
		means[category] = mean(values)
		stds[category] = sampleStdDev(values)
	}

	var anomalies []models.CategoryAnomaly
	for _, r := range rows {
		std := stds[r.category]
		if std <= 0 {
			continue
		}
		m := means[r.category]
		if math.Abs(r.amount-m) > 2*std {
			anomalies = append(anomalies, models.CategoryAnomaly{
				Date:         r.date.Format(dateLayout),
				Category:     r.category,
				Amount:       round2(r.amount),
				ExpectedLow:  round2(m - std),
				ExpectedHigh: round2(m + std),
			})
		}
	}
	if len(anomalies) > maxCategoryAnomalies {
		anomalies = anomalies[:maxCategoryAnomalies]
	}
	return anomalies
}
