// Package insights turns a history of expense records into a structured
// spending analysis: summary statistics, trends, category breakdowns,
// behavioral patterns, anomalies, forecasts, a health score, prioritized
// recommendations and goal tracking.
package insights

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"spendlens/internal/logging"
	"spendlens/internal/models"
)

// Default analysis parameters.
const (
	DefaultRecentWindowDays    = 7
	DefaultBurstQuantile       = 0.8
	DefaultTrendSlopeThreshold = 10.0
)

// minTrendRecords gates the trend, prediction and health computations.
const minTrendRecords = 7

// Budgets holds the optional spending targets used by goal tracking.
// A zero-value Budgets disables the goals section entirely.
type Budgets struct {
	MonthlyTotal   float64
	CategoryLimits map[models.Category]float64
}

func (b Budgets) configured() bool {
	return b.MonthlyTotal > 0 || len(b.CategoryLimits) > 0
}

// Config tunes the analysis. Zero values fall back to defaults.
type Config struct {
	// RecentWindowDays is the trailing window used for recent-versus-overall
	// comparisons in predictions and recommendations.
	RecentWindowDays int
	// BurstQuantile is the daily-total quantile above which a day counts as
	// a spending burst.
	BurstQuantile float64
	// TrendSlopeThreshold is the absolute daily-change above which the
	// overall trend is called increasing or decreasing.
	TrendSlopeThreshold float64
	// Budgets enables goal tracking when configured.
	Budgets Budgets
	// Logger receives progress output. Nil uses the package default.
	Logger logging.Logger
}

// Engine computes an InsightsReport from expense records. It holds no
// per-analysis state and is safe for concurrent use.
type Engine struct {
	recentWindowDays    int
	burstQuantile       float64
	trendSlopeThreshold float64
	budgets             Budgets
	logger              logging.Logger
}

// NewEngine creates an analysis engine from the given configuration.
func NewEngine(cfg Config) *Engine {
	if cfg.RecentWindowDays <= 0 {
		cfg.RecentWindowDays = DefaultRecentWindowDays
	}
	if cfg.BurstQuantile <= 0 || cfg.BurstQuantile >= 1 {
		cfg.BurstQuantile = DefaultBurstQuantile
	}
	if cfg.TrendSlopeThreshold <= 0 {
		cfg.TrendSlopeThreshold = DefaultTrendSlopeThreshold
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.GetLogger()
	}
	return &Engine{
		recentWindowDays:    cfg.RecentWindowDays,
		burstQuantile:       cfg.BurstQuantile,
		trendSlopeThreshold: cfg.TrendSlopeThreshold,
		budgets:             cfg.Budgets,
		logger:              cfg.Logger,
	}
}

// Analyze builds the full report for the given records. It never returns an
// error to the caller: degraded inputs produce a report with a soft status,
// and an internal fault is recovered into a status of "error".
func (e *Engine) Analyze(records []models.ExpenseRecord) (report models.InsightsReport) {
	report = models.InsightsReport{
		ReportID:     uuid.New().String(),
		AnalysisDate: time.Now(),
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.WithField(logging.FieldReportID, report.ReportID).
				Error(fmt.Sprintf("Analysis failed: %v", r))
			report = models.InsightsReport{
				ReportID:     report.ReportID,
				AnalysisDate: report.AnalysisDate,
				Status:       models.StatusError,
				Message:      fmt.Sprintf("analysis failed: %v", r),
			}
		}
	}()

	if len(records) == 0 {
		report.Status = models.StatusInsufficientData
		report.Message = "No expense data available for analysis"
		return report
	}

	rows := prepareRows(records)
	if len(rows) == 0 {
		report.Status = models.StatusNoValidData
		report.Message = "No valid expense records found"
		return report
	}

	days := dailyTotals(rows)

	report.Status = models.StatusSuccess
	report.Period = buildPeriod(rows)
	report.Summary = buildSummary(rows, days)
	report.Trends = e.buildTrends(rows, days)
	report.Categories = buildCategories(rows)
	report.Behavior = e.buildBehavior(rows, days)
	report.Anomalies = buildAnomalies(rows, days)
	report.Predictions = e.buildPredictions(rows, days)
	report.Health = buildHealth(rows, days, report.Categories)
	report.Recommendations = e.buildRecommendations(rows, days, report.Categories)
	if e.budgets.configured() {
		report.Goals = e.buildGoals(rows)
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldReportID, Value: report.ReportID},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Spending analysis completed")

	return report
}

// buildPeriod describes the date span covered by the rows.
func buildPeriod(rows []row) *models.DataPeriod {
	first := rows[0].date
	last := rows[len(rows)-1].date
	return &models.DataPeriod{
		StartDate:         first.Format(dateLayout),
		EndDate:           last.Format(dateLayout),
		TotalDays:         int(last.Sub(first).Hours()/24) + 1,
		TotalTransactions: len(rows),
	}
}
