// Package classify handles the expense classification command
package classify

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"spendlens/cmd/root"
	"spendlens/internal/classifier"
	"spendlens/internal/models"
	"spendlens/internal/store"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify an expense description into a spending category",
	Long: `Classify assigns one of the fixed spending categories to a free-text
expense description, optionally using the amount as an extra signal.`,
	Run: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Expense description to classify")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "Expense amount (optional)")
	Cmd.Flags().IntVarP(&root.Suggest, "suggest", "s", 0, "Also show the top N category suggestions")
	_ = Cmd.MarkFlagRequired("description")
}

func classifyFunc(cmd *cobra.Command, args []string) {
	amount := decimal.Zero
	if root.Amount != "" {
		parsed, err := decimal.NewFromString(root.Amount)
		if err != nil {
			root.Log.WithError(err).Error("Invalid amount")
			return
		}
		amount = parsed
	}

	rules := store.NewRuleStore(root.Cfg.Classifier.KeywordsFile, "", root.Log)
	overrides, err := rules.LoadKeywordOverrides()
	if err != nil {
		root.Log.WithError(err).Warn("Failed to load keyword overrides")
		overrides = map[models.Category][]string{}
	}

	c := classifier.NewRuleClassifier(classifier.Options{
		KeywordThreshold: root.Cfg.Classifier.KeywordThreshold,
		PatternThreshold: root.Cfg.Classifier.PatternThreshold,
		AmountGate:       root.Cfg.Classifier.AmountGate,
		FallbackFloor:    root.Cfg.Classifier.FallbackFloor,
		ExtraKeywords:    overrides,
		Logger:           root.Log,
	})

	result := c.Classify(root.Description, amount)
	fmt.Printf("Category: %s (confidence %.2f)\n", result.Category, result.Confidence)

	if root.Suggest > 0 {
		fmt.Println("Suggestions:")
		for _, suggestion := range c.Suggestions(root.Description, amount, root.Suggest) {
			fmt.Printf("  %-15s %.2f\n", suggestion.Category, suggestion.Confidence)
		}
	}
}
