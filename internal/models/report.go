package models

import "time"

// AnalysisStatus is the soft status of an analysis run or sub-computation.
type AnalysisStatus string

const (
	// StatusSuccess indicates the report was built from valid data.
	StatusSuccess AnalysisStatus = "success"
	// StatusInsufficientData indicates the input was empty or too small.
	StatusInsufficientData AnalysisStatus = "insufficient_data"
	// StatusNoValidData indicates filtering removed every record.
	StatusNoValidData AnalysisStatus = "no_valid_data"
	// StatusError indicates an unanticipated internal fault.
	StatusError AnalysisStatus = "error"
)

// InsightsReport is the composite value object produced by one Analyze call.
// Sub-sections that could not be computed are nil or carry their own
// insufficient_data status; the report itself never partially fails.
type InsightsReport struct {
	ReportID        string              `json:"report_id" yaml:"report_id"`
	Status          AnalysisStatus      `json:"status" yaml:"status"`
	Message         string              `json:"message,omitempty" yaml:"message,omitempty"`
	AnalysisDate    time.Time           `json:"analysis_date" yaml:"analysis_date"`
	Period          *DataPeriod         `json:"data_period,omitempty" yaml:"data_period,omitempty"`
	Summary         *SpendingSummary    `json:"spending_summary,omitempty" yaml:"spending_summary,omitempty"`
	Trends          *SpendingTrends     `json:"spending_trends,omitempty" yaml:"spending_trends,omitempty"`
	Categories      *CategoryInsights   `json:"category_insights,omitempty" yaml:"category_insights,omitempty"`
	Behavior        *BehavioralPatterns `json:"behavioral_patterns,omitempty" yaml:"behavioral_patterns,omitempty"`
	Anomalies       *AnomalyReport      `json:"anomalies,omitempty" yaml:"anomalies,omitempty"`
	Predictions     *Predictions        `json:"predictions,omitempty" yaml:"predictions,omitempty"`
	Health          *FinancialHealth    `json:"financial_health,omitempty" yaml:"financial_health,omitempty"`
	Recommendations []Recommendation    `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Goals           *GoalProgress       `json:"goals_tracking,omitempty" yaml:"goals_tracking,omitempty"`
}

// DataPeriod describes the span of dates covered by the analyzed records.
type DataPeriod struct {
	StartDate         string `json:"start_date" yaml:"start_date"`
	EndDate           string `json:"end_date" yaml:"end_date"`
	TotalDays         int    `json:"total_days" yaml:"total_days"`
	TotalTransactions int    `json:"total_transactions" yaml:"total_transactions"`
}

// SpendingSummary holds the aggregate spending statistics.
// Daily figures are statistics over per-calendar-day totals.
type SpendingSummary struct {
	TotalSpending       float64 `json:"total_spending" yaml:"total_spending"`
	AverageDaily        float64 `json:"average_daily" yaml:"average_daily"`
	MedianDaily         float64 `json:"median_daily" yaml:"median_daily"`
	MaxDaily            float64 `json:"max_daily" yaml:"max_daily"`
	MinDaily            float64 `json:"min_daily" yaml:"min_daily"`
	StdDaily            float64 `json:"std_daily" yaml:"std_daily"`
	AverageTransaction  float64 `json:"average_transaction" yaml:"average_transaction"`
	MedianTransaction   float64 `json:"median_transaction" yaml:"median_transaction"`
	LargestTransaction  float64 `json:"largest_transaction" yaml:"largest_transaction"`
	SmallestTransaction float64 `json:"smallest_transaction" yaml:"smallest_transaction"`
	TotalTransactions   int     `json:"total_transactions" yaml:"total_transactions"`
	SpendingDays        int     `json:"spending_days" yaml:"spending_days"`
}

// SpendingTrends describes how spending evolves over time.
type SpendingTrends struct {
	Status  AnalysisStatus   `json:"status,omitempty" yaml:"status,omitempty"`
	Overall *OverallTrend    `json:"overall_trend,omitempty" yaml:"overall_trend,omitempty"`
	Weekly  *WeeklyPatterns  `json:"weekly_patterns,omitempty" yaml:"weekly_patterns,omitempty"`
	Monthly *MonthlyPatterns `json:"monthly_patterns,omitempty" yaml:"monthly_patterns,omitempty"`
}

// OverallTrend is a least-squares fit of daily totals against day index.
type OverallTrend struct {
	Direction   string  `json:"direction" yaml:"direction"`
	Slope       float64 `json:"slope" yaml:"slope"`
	Strength    float64 `json:"strength" yaml:"strength"`
	DailyChange float64 `json:"daily_change" yaml:"daily_change"`
}

// WeeklyPatterns reports per-weekday spending behavior.
type WeeklyPatterns struct {
	AverageByDay      map[string]float64 `json:"average_by_day" yaml:"average_by_day"`
	PeakSpendingDay   string             `json:"peak_spending_day" yaml:"peak_spending_day"`
	LowestSpendingDay string             `json:"lowest_spending_day" yaml:"lowest_spending_day"`
	WeekendAverage    float64            `json:"weekend_avg" yaml:"weekend_avg"`
	WeekdayAverage    float64            `json:"weekday_avg" yaml:"weekday_avg"`
}

// MonthlyPatterns is only present when the data spans more than one month.
type MonthlyPatterns struct {
	AverageMonthly    float64 `json:"average_monthly" yaml:"average_monthly"`
	GrowthRate        float64 `json:"growth_rate" yaml:"growth_rate"`
	SeasonalVariation float64 `json:"seasonal_variation" yaml:"seasonal_variation"`
}

// CategoryInsights breaks spending down by category.
type CategoryInsights struct {
	Detailed       map[Category]CategoryStats `json:"detailed_analysis" yaml:"detailed_analysis"`
	TopCategories  []CategoryTotal            `json:"top_categories" yaml:"top_categories"`
	CategoryTrends map[Category]float64       `json:"category_trends,omitempty" yaml:"category_trends,omitempty"`
	DiversityScore float64                    `json:"diversity_score" yaml:"diversity_score"`
}

// CategoryStats are the per-category aggregate figures.
type CategoryStats struct {
	TotalSpent         float64 `json:"total_spent" yaml:"total_spent"`
	AverageTransaction float64 `json:"average_transaction" yaml:"average_transaction"`
	TransactionCount   int     `json:"transaction_count" yaml:"transaction_count"`
	PercentageOfTotal  float64 `json:"percentage_of_total" yaml:"percentage_of_total"`
	Consistency        float64 `json:"consistency" yaml:"consistency"`
}

// CategoryTotal pairs a category with its total, for ranked listings.
type CategoryTotal struct {
	Category Category `json:"category" yaml:"category"`
	Total    float64  `json:"total" yaml:"total"`
}

// BehavioralPatterns captures habitual spending behavior.
type BehavioralPatterns struct {
	MonthlyCycle *MonthlyCycle        `json:"monthly_cycle,omitempty" yaml:"monthly_cycle,omitempty"`
	Bursts       *SpendingBursts      `json:"spending_bursts,omitempty" yaml:"spending_bursts,omitempty"`
	Consistency  *SpendingConsistency `json:"spending_consistency,omitempty" yaml:"spending_consistency,omitempty"`
}

// MonthlyCycle splits average spending across the month.
type MonthlyCycle struct {
	EarlyMonthAverage float64       `json:"early_month_avg" yaml:"early_month_avg"`
	MidMonthAverage   float64       `json:"mid_month_avg" yaml:"mid_month_avg"`
	LateMonthAverage  float64       `json:"late_month_avg" yaml:"late_month_avg"`
	PaydayEffect      *PaydayEffect `json:"payday_effect" yaml:"payday_effect"`
}

// PaydayEffect flags elevated spending in the first days of the month.
type PaydayEffect struct {
	Detected           bool    `json:"detected" yaml:"detected"`
	EarlyMonthAverage  float64 `json:"early_month_avg,omitempty" yaml:"early_month_avg,omitempty"`
	RestOfMonthAverage float64 `json:"rest_month_avg,omitempty" yaml:"rest_month_avg,omitempty"`
	Ratio              float64 `json:"ratio,omitempty" yaml:"ratio,omitempty"`
}

// SpendingBursts reports days whose totals exceed the burst threshold.
type SpendingBursts struct {
	HighSpendingDays   int     `json:"high_spending_days_count" yaml:"high_spending_days_count"`
	AverageBurstAmount float64 `json:"average_burst_amount" yaml:"average_burst_amount"`
	BurstFrequency     float64 `json:"burst_frequency" yaml:"burst_frequency"`
	Threshold          float64 `json:"threshold" yaml:"threshold"`
}

// SpendingConsistency measures how regular daily spending is.
type SpendingConsistency struct {
	CoefficientOfVariation float64 `json:"coefficient_of_variation" yaml:"coefficient_of_variation"`
	RegularityScore        float64 `json:"regular_spender_score" yaml:"regular_spender_score"`
}

// AnomalyReport gathers the three anomaly views.
type AnomalyReport struct {
	Status            AnalysisStatus       `json:"status,omitempty" yaml:"status,omitempty"`
	Transactions      *TransactionOutliers `json:"transaction_outliers,omitempty" yaml:"transaction_outliers,omitempty"`
	UnusualDays       *UnusualSpendingDays `json:"unusual_spending_days,omitempty" yaml:"unusual_spending_days,omitempty"`
	CategoryAnomalies []CategoryAnomaly    `json:"category_anomalies,omitempty" yaml:"category_anomalies,omitempty"`
}

// TransactionOutliers are transactions outside the IQR fences.
type TransactionOutliers struct {
	HighValueCount int             `json:"high_value_transactions" yaml:"high_value_transactions"`
	ThresholdHigh  float64         `json:"threshold_high" yaml:"threshold_high"`
	ThresholdLow   float64         `json:"threshold_low" yaml:"threshold_low"`
	Outliers       []OutlierRecord `json:"unusual_high_amounts,omitempty" yaml:"unusual_high_amounts,omitempty"`
	Largest        OutlierRecord   `json:"largest_transaction" yaml:"largest_transaction"`
}

// OutlierRecord is a single flagged transaction.
type OutlierRecord struct {
	Date        string   `json:"date" yaml:"date"`
	Amount      float64  `json:"amount" yaml:"amount"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
}

// UnusualSpendingDays are days deviating more than two standard deviations
// from the mean daily total.
type UnusualSpendingDays struct {
	Count int                `json:"count" yaml:"count"`
	Days  map[string]float64 `json:"dates_and_amounts" yaml:"dates_and_amounts"`
}

// CategoryAnomaly is a transaction far outside its category's usual range.
type CategoryAnomaly struct {
	Date         string   `json:"date" yaml:"date"`
	Category     Category `json:"category" yaml:"category"`
	Amount       float64  `json:"amount" yaml:"amount"`
	ExpectedLow  float64  `json:"expected_low" yaml:"expected_low"`
	ExpectedHigh float64  `json:"expected_high" yaml:"expected_high"`
}

// Predictions holds the short-horizon spending forecasts.
type Predictions struct {
	Status    AnalysisStatus       `json:"status,omitempty" yaml:"status,omitempty"`
	NextDay   *NextDayPrediction   `json:"next_day,omitempty" yaml:"next_day,omitempty"`
	NextWeek  []DailyPrediction    `json:"next_week,omitempty" yaml:"next_week,omitempty"`
	NextMonth *NextMonthPrediction `json:"next_month,omitempty" yaml:"next_month,omitempty"`
	Refined   *RefinedForecast     `json:"refined_forecast,omitempty" yaml:"refined_forecast,omitempty"`
}

// NextDayPrediction is the average of the recent and all-time daily means.
type NextDayPrediction struct {
	PredictedAmount float64 `json:"predicted_amount" yaml:"predicted_amount"`
	Confidence      string  `json:"confidence" yaml:"confidence"`
	Method          string  `json:"method" yaml:"method"`
}

// DailyPrediction is a per-date forecast entry.
type DailyPrediction struct {
	Date            string  `json:"date" yaml:"date"`
	PredictedAmount float64 `json:"predicted_amount" yaml:"predicted_amount"`
}

// NextMonthPrediction forecasts the coming month's total.
type NextMonthPrediction struct {
	PredictedTotal float64 `json:"predicted_total" yaml:"predicted_total"`
	Confidence     string  `json:"confidence" yaml:"confidence"`
}

// RefinedForecast is the higher-order 7-day model, present only when at
// least 30 spending days of history exist.
type RefinedForecast struct {
	NextSevenDays []float64 `json:"next_7_days" yaml:"next_7_days"`
	Method        string    `json:"method" yaml:"method"`
}

// FinancialHealth is the 0-100 composite health assessment.
type FinancialHealth struct {
	OverallScore float64       `json:"overall_score" yaml:"overall_score"`
	Status       string        `json:"status" yaml:"status"`
	Factors      HealthFactors `json:"contributing_factors" yaml:"contributing_factors"`
	Notes        []string      `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// HealthFactors are the four contributing factors, each normalized to [0,1].
type HealthFactors struct {
	SpendingConsistency     float64 `json:"spending_consistency" yaml:"spending_consistency"`
	CategoryDiversification float64 `json:"category_diversification" yaml:"category_diversification"`
	SpendingTrend           float64 `json:"spending_trend" yaml:"spending_trend"`
	SpendingDiscipline      float64 `json:"spending_discipline" yaml:"spending_discipline"`
}

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is a single ranked advisory item.
type Recommendation struct {
	ID               string  `json:"id" yaml:"id"`
	Type             string  `json:"type" yaml:"type"`
	Priority         string  `json:"priority" yaml:"priority"`
	Title            string  `json:"title" yaml:"title"`
	Message          string  `json:"message" yaml:"message"`
	Action           string  `json:"action" yaml:"action"`
	PotentialSavings float64 `json:"potential_savings,omitempty" yaml:"potential_savings,omitempty"`
	Insight          string  `json:"insight,omitempty" yaml:"insight,omitempty"`
}

// GoalProgress tracks configured budgets against the current month.
type GoalProgress struct {
	MonthlyBudget  *BudgetProgress            `json:"monthly_budget,omitempty" yaml:"monthly_budget,omitempty"`
	CategoryLimits map[Category]LimitProgress `json:"category_limits,omitempty" yaml:"category_limits,omitempty"`
}

// BudgetProgress compares current-month spending against the monthly budget.
type BudgetProgress struct {
	Target         float64 `json:"target" yaml:"target"`
	Current        float64 `json:"current" yaml:"current"`
	PercentageUsed float64 `json:"percentage_used" yaml:"percentage_used"`
	Status         string  `json:"status" yaml:"status"`
}

// LimitProgress compares current-month category spending against its limit.
type LimitProgress struct {
	Limit          float64 `json:"limit" yaml:"limit"`
	Spent          float64 `json:"spent" yaml:"spent"`
	PercentageUsed float64 `json:"percentage_used" yaml:"percentage_used"`
	Remaining      float64 `json:"remaining" yaml:"remaining"`
	Status         string  `json:"status" yaml:"status"`
}
