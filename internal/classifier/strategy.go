package classifier

import (
	"github.com/shopspring/decimal"

	"spendlens/internal/models"
)

// Strategy defines a method for assigning a category to an expense.
// The deterministic rule engine is the default implementation; alternative
// implementations (for example a trained statistical model) can be swapped
// in behind the same contract.
type Strategy interface {
	// Classify returns a best-guess category with a confidence in [0,1].
	// It never fails: unusable input degrades to a low-confidence Other.
	Classify(description string, amount decimal.Decimal) models.CategoryResult

	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string
}
