package insights

import "spendlens/internal/models"

// buildSummary computes the aggregate spending figures. Daily statistics are
// taken over per-calendar-day totals, transaction statistics over individual
// amounts.
func buildSummary(rows []row, days []dayTotal) *models.SpendingSummary {
	daily := dailyValues(days)
	amounts := transactionAmounts(rows)

	minDaily, maxDaily := minMax(daily)
	minTxn, maxTxn := minMax(amounts)

	var total float64
	for _, v := range daily {
		total += v
	}

	return &models.SpendingSummary{
		TotalSpending:       round2(total),
		AverageDaily:        round2(mean(daily)),
		MedianDaily:         round2(median(daily)),
		MaxDaily:            round2(maxDaily),
		MinDaily:            round2(minDaily),
		StdDaily:            round2(sampleStdDev(daily)),
		AverageTransaction:  round2(mean(amounts)),
		MedianTransaction:   round2(median(amounts)),
		LargestTransaction:  round2(maxTxn),
		SmallestTransaction: round2(minTxn),
		TotalTransactions:   len(rows),
		SpendingDays:        len(days),
	}
}
