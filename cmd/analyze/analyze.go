// Package analyze handles the spending analysis command
package analyze

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spendlens/cmd/root"
	"spendlens/internal/insights"
	"spendlens/internal/logging"
	"spendlens/internal/models"
	"spendlens/internal/report"
	"spendlens/internal/store"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze spending history from a CSV expense file",
	Long: `Analyze reads expense records from a CSV file and produces a full
spending analysis: summary statistics, trends, category breakdowns,
anomalies, forecasts, a health score and recommendations.`,
	Run: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Format, "format", "f", "json", "Report format (json or yaml)")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	if root.InputFile == "" {
		root.Log.Error("Input file is required for analysis")
		return
	}

	expenses := store.NewExpenseStore(root.Log)
	records, err := expenses.Load(root.InputFile)
	if err != nil {
		root.Log.WithError(err).Error("Failed to load expense file")
		return
	}

	rules := store.NewRuleStore("", root.Cfg.Budgets.BudgetsFile, root.Log)
	monthlyBudget, categoryLimits, err := rules.LoadBudgets()
	if err != nil {
		root.Log.WithError(err).Warn("Failed to load budgets, goal tracking disabled")
	}
	if root.Cfg.Budgets.MonthlyTotal > 0 {
		monthlyBudget = root.Cfg.Budgets.MonthlyTotal
	}
	for name, limit := range root.Cfg.Budgets.CategoryLimits {
		category, ok := models.ParseCategory(name)
		if !ok {
			continue
		}
		if categoryLimits == nil {
			categoryLimits = make(map[models.Category]float64)
		}
		categoryLimits[category] = limit
	}

	engine := insights.NewEngine(insights.Config{
		RecentWindowDays:    root.Cfg.Analysis.RecentWindowDays,
		BurstQuantile:       root.Cfg.Analysis.BurstQuantile,
		TrendSlopeThreshold: root.Cfg.Analysis.TrendSlopeThreshold,
		Budgets: insights.Budgets{
			MonthlyTotal:   monthlyBudget,
			CategoryLimits: categoryLimits,
		},
		Logger: root.Log,
	})
	result := engine.Analyze(records)

	generator := report.NewGenerator(root.Log)
	output, err := generator.Generate(&result, root.Format)
	if err != nil {
		root.Log.WithError(err).Error("Failed to render report")
		return
	}

	if root.OutputFile == "" {
		fmt.Println(string(output))
		return
	}
	if err := os.WriteFile(root.OutputFile, output, 0o644); err != nil {
		root.Log.WithError(err).Error("Failed to write report file")
		return
	}
	root.Log.WithField(logging.FieldOutputFile, root.OutputFile).Info("Report written")
}
