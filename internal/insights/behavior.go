package insights

import (
	"spendlens/internal/models"
)

// buildBehavior computes the monthly cycle, burst and consistency views.
func (e *Engine) buildBehavior(rows []row, days []dayTotal) *models.BehavioralPatterns {
	return &models.BehavioralPatterns{
		MonthlyCycle: monthlyCycle(rows),
		Bursts:       e.spendingBursts(days),
		Consistency:  spendingConsistency(rows, days),
	}
}

// monthlyCycle averages transaction amounts per day-of-month and splits the
// month into early (days 1-10), mid (days 11-20) and late (days 21+)
// segments. Segments with no observed days report 0.
func monthlyCycle(rows []row) *models.MonthlyCycle {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, r := range rows {
		day := r.date.Day()
		sums[day] += r.amount
		counts[day]++
	}

	var early, mid, late []float64
	for day, sum := range sums {
		dayMean := sum / float64(counts[day])
		switch {
		case day <= 10:
			early = append(early, dayMean)
		case day <= 20:
			mid = append(mid, dayMean)
		default:
			late = append(late, dayMean)
		}
	}

	cycle := &models.MonthlyCycle{PaydayEffect: paydayEffect(rows)}
	if len(early) > 0 {
		cycle.EarlyMonthAverage = round2(mean(early))
	}
	if len(mid) > 0 {
		cycle.MidMonthAverage = round2(mean(mid))
	}
	if len(late) > 0 {
		cycle.LateMonthAverage = round2(mean(late))
	}
	return cycle
}

// paydayEffect flags elevated spending in the first five days of the month
// relative to the rest.
func paydayEffect(rows []row) *models.PaydayEffect {
	var earlySum, restSum float64
	var earlyCount, restCount int
	for _, r := range rows {
		if r.date.Day() <= 5 {
			earlySum += r.amount
			earlyCount++
		} else {
			restSum += r.amount
			restCount++
		}
	}

	if earlyCount == 0 || restCount == 0 {
		return &models.PaydayEffect{Detected: false}
	}

	early := earlySum / float64(earlyCount)
	rest := restSum / float64(restCount)
	if early <= rest*1.3 {
		return &models.PaydayEffect{Detected: false}
	}

	ratio := 0.0
	if rest > 0 {
		ratio = early / rest
	}
	return &models.PaydayEffect{
		Detected:           true,
		EarlyMonthAverage:  round2(early),
		RestOfMonthAverage: round2(rest),
		Ratio:              round2(ratio),
	}
}

// spendingBursts counts days whose totals exceed the configured quantile of
// all daily totals.
func (e *Engine) spendingBursts(days []dayTotal) *models.SpendingBursts {
	daily := dailyValues(days)
	threshold := quantile(daily, e.burstQuantile)

	var burstSum float64
	var burstCount int
	for _, v := range daily {
		if v > threshold {
			burstSum += v
			burstCount++
		}
	}

	bursts := &models.SpendingBursts{
		HighSpendingDays: burstCount,
		Threshold:        round2(threshold),
	}
	if burstCount > 0 {
		bursts.AverageBurstAmount = round2(burstSum / float64(burstCount))
	}
	if len(daily) > 0 {
		bursts.BurstFrequency = round2(float64(burstCount) / float64(len(daily)) * 100)
	}
	return bursts
}

// spendingConsistency measures daily-total variability and regularity.
// Regularity blends how many of the period's days saw spending with how
// consistent the spent amounts were; under seven spending days it is 0.
func spendingConsistency(rows []row, days []dayTotal) *models.SpendingConsistency {
	daily := dailyValues(days)
	m := mean(daily)

	cv := 0.0
	if m > 0 {
		cv = sampleStdDev(daily) / m
	}

	regularity := 0.0
	if len(days) >= minTrendRecords {
		first := rows[0].date
		last := rows[len(rows)-1].date
		spanDays := int(last.Sub(first).Hours()/24) + 1
		coverage := float64(len(days)) / float64(spanDays)
		regularity = (coverage + 1/(1+cv)) / 2
	}

	return &models.SpendingConsistency{
		CoefficientOfVariation: round2(cv),
		RegularityScore:        round2(regularity),
	}
}
