package insights

import (
	"sort"
	"time"

	"spendlens/internal/models"
)

// dateLayout is the calendar-day format used in report keys.
const dateLayout = "2006-01-02"

// row is the engine's working view of one valid expense record, with the
// amount converted to float64 and the date truncated to its calendar day.
type row struct {
	date        time.Time
	amount      float64
	category    models.Category
	description string
}

// dayTotal is one calendar day's aggregate spending.
type dayTotal struct {
	date  time.Time
	total float64
}

// calendarDay canonicalizes a timestamp to its calendar day. The wall-clock
// date is what counts; the original location is discarded so the same
// calendar day in different zones maps to one key.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// prepareRows filters out invalid records and returns the rest sorted by
// date ascending. Equal dates keep their input order.
func prepareRows(records []models.ExpenseRecord) []row {
	rows := make([]row, 0, len(records))
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		amount, _ := r.Amount.Float64()
		rows = append(rows, row{
			date:        calendarDay(r.Date),
			amount:      amount,
			category:    r.Category,
			description: r.Description,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].date.Before(rows[j].date)
	})
	return rows
}

// dailyTotals aggregates rows into per-day totals sorted by date.
func dailyTotals(rows []row) []dayTotal {
	totals := make(map[time.Time]float64)
	for _, r := range rows {
		totals[r.date] += r.amount
	}
	days := make([]dayTotal, 0, len(totals))
	for date, total := range totals {
		days = append(days, dayTotal{date: date, total: total})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].date.Before(days[j].date)
	})
	return days
}

// dailyValues extracts just the totals, preserving the date order.
func dailyValues(days []dayTotal) []float64 {
	values := make([]float64, len(days))
	for i, d := range days {
		values[i] = d.total
	}
	return values
}

// transactionAmounts extracts per-transaction amounts in date order.
func transactionAmounts(rows []row) []float64 {
	amounts := make([]float64, len(rows))
	for i, r := range rows {
		amounts[i] = r.amount
	}
	return amounts
}

// monthlyTotals aggregates rows into per-month totals, returned in
// chronological month order.
func monthlyTotals(rows []row) []float64 {
	totals := make(map[time.Time]float64)
	for _, r := range rows {
		month := time.Date(r.date.Year(), r.date.Month(), 1, 0, 0, 0, 0, time.UTC)
		totals[month] += r.amount
	}
	months := make([]time.Time, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	values := make([]float64, len(months))
	for i, m := range months {
		values[i] = totals[m]
	}
	return values
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
