package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marchRow(day int, amount float64) row {
	return row{
		date:   time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		amount: amount,
	}
}

func TestMonthlyCycle_SegmentsByDayOfMonth(t *testing.T) {
	// Spending confined to the middle and late month must not leak into
	// the early-month segment.
	var rows []row
	for day := 15; day <= 24; day++ {
		rows = append(rows, marchRow(day, 100))
	}

	cycle := monthlyCycle(rows)
	require.NotNil(t, cycle)

	assert.Equal(t, 0.0, cycle.EarlyMonthAverage)
	assert.Equal(t, 100.0, cycle.MidMonthAverage)
	assert.Equal(t, 100.0, cycle.LateMonthAverage)
}

func TestMonthlyCycle_AllSegments(t *testing.T) {
	rows := []row{
		marchRow(2, 50),
		marchRow(5, 150), // early mean: (50+150)/2 = 100
		marchRow(12, 300),
		marchRow(18, 100), // mid mean: (300+100)/2 = 200
		marchRow(25, 400), // late mean: 400
	}

	cycle := monthlyCycle(rows)
	require.NotNil(t, cycle)

	assert.Equal(t, 100.0, cycle.EarlyMonthAverage)
	assert.Equal(t, 200.0, cycle.MidMonthAverage)
	assert.Equal(t, 400.0, cycle.LateMonthAverage)
}

func TestMonthlyCycle_DayMeansNotTransactionMeans(t *testing.T) {
	// Two transactions on one day average within the day first.
	rows := []row{
		marchRow(3, 100),
		marchRow(3, 300), // day 3 mean: 200
		marchRow(8, 400), // day 8 mean: 400
	}

	cycle := monthlyCycle(rows)
	require.NotNil(t, cycle)
	assert.Equal(t, 300.0, cycle.EarlyMonthAverage)
	assert.Equal(t, 0.0, cycle.MidMonthAverage)
	assert.Equal(t, 0.0, cycle.LateMonthAverage)
}

func TestPaydayEffect(t *testing.T) {
	// Early-month transactions well above the rest trigger detection.
	rows := []row{
		marchRow(2, 500),
		marchRow(4, 700),
		marchRow(12, 100),
		marchRow(20, 100),
		marchRow(28, 100),
	}

	effect := paydayEffect(rows)
	require.NotNil(t, effect)
	assert.True(t, effect.Detected)
	assert.Equal(t, 600.0, effect.EarlyMonthAverage)
	assert.Equal(t, 100.0, effect.RestOfMonthAverage)
	assert.Equal(t, 6.0, effect.Ratio)

	// Balanced spending does not.
	flat := []row{marchRow(2, 100), marchRow(15, 100)}
	assert.False(t, paydayEffect(flat).Detected)
}
