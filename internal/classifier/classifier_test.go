package classifier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendlens/internal/logging"
	"spendlens/internal/models"
)

func newTestClassifier() *RuleClassifier {
	opts := DefaultOptions()
	opts.Logger = logging.NewMockLogger()
	return NewRuleClassifier(opts)
}

func TestRuleClassifier_Name(t *testing.T) {
	assert.Equal(t, "Rules", newTestClassifier().Name())
}

func TestRuleClassifier_EmptyDescription(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name        string
		description string
	}{
		{"empty string", ""},
		{"whitespace only", "   \t  "},
		{"punctuation only", "!!! ... ???"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.description, decimal.NewFromInt(100))
			assert.Equal(t, models.CategoryOther, result.Category)
			assert.Equal(t, 0.1, result.Confidence)
		})
	}
}

func TestRuleClassifier_PhrasePatterns(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name        string
		description string
		amount      int64
		expected    models.Category
	}{
		{"ride booking", "Uber ride to office", 150, models.CategoryTransportation},
		{"streaming subscription", "Netflix subscription payment", 199, models.CategoryEntertainment},
		{"movie booking", "Movie ticket for the weekend", 300, models.CategoryEntertainment},
		{"utility bill", "Electricity bill for January", 1200, models.CategoryBills},
		{"clinic visit", "Doctor visit and consultation", 800, models.CategoryHealthcare},
		{"food delivery", "Ordered dinner from zomato", 450, models.CategoryFood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.description, decimal.NewFromInt(tt.amount))
			assert.Equal(t, tt.expected, result.Category)
			assert.Greater(t, result.Confidence, 0.7)
		})
	}
}

func TestRuleClassifier_KeywordStage(t *testing.T) {
	c := newTestClassifier()

	// A description hitting every keyword of a category saturates the score.
	desc := "cash atm withdrawal transfer refund salary income return unknown other miscellaneous"
	result := c.Classify(desc, decimal.Zero)
	assert.Equal(t, models.CategoryOther, result.Category)
	assert.Greater(t, result.Confidence, 0.7)
}

func TestRuleClassifier_KeywordFallback(t *testing.T) {
	c := newTestClassifier()

	// A partial keyword hit lands between the fallback floor and the
	// short-circuit threshold and survives as the final answer.
	result := c.Classify("cash atm withdrawal transfer", decimal.Zero)
	assert.Equal(t, models.CategoryOther, result.Category)
	assert.Greater(t, result.Confidence, 0.3)
	assert.LessOrEqual(t, result.Confidence, 0.7)
}

func TestRuleClassifier_KeywordConfidenceGatesAmountStage(t *testing.T) {
	c := newTestClassifier()

	// The keyword score is already above the amount gate, so the amount
	// heuristic must not override it even though 150 falls in a bucket.
	result := c.Classify("cash atm withdrawal transfer", decimal.NewFromInt(150))
	assert.Equal(t, models.CategoryOther, result.Category)
	assert.NotEqual(t, 0.6, result.Confidence)
}

func TestRuleClassifier_AmountStage(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name     string
		amount   int64
		expected models.Category
		found    bool
	}{
		{"small amount defaults to food", 50, models.CategoryFood, true},
		{"mid amount has no default", 250, models.CategoryOther, false},
		{"large amount defaults to shopping", 3000, models.CategoryShopping, true},
		{"very large amount defaults to bills", 15000, models.CategoryBills, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Description with no keyword or pattern signal at all.
			result := c.Classify("xyzzy qwerty", decimal.NewFromInt(tt.amount))
			if tt.found {
				assert.Equal(t, tt.expected, result.Category)
				assert.Equal(t, 0.6, result.Confidence)
			} else {
				assert.Equal(t, models.CategoryOther, result.Category)
				assert.Equal(t, 0.2, result.Confidence)
			}
		})
	}
}

func TestRuleClassifier_AmountStageHints(t *testing.T) {
	c := newTestClassifier()

	// "qwerty movie" has a weak keyword score for Entertainment but the
	// amount bucket hint resolves it.
	result := c.Classify("qwerty movie", decimal.NewFromInt(250))
	assert.Equal(t, models.CategoryEntertainment, result.Category)
}

func TestRuleClassifier_NonPositiveAmountSkipsAmountStage(t *testing.T) {
	c := newTestClassifier()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		result := c.Classify("xyzzy qwerty", amount)
		assert.Equal(t, models.CategoryOther, result.Category)
		assert.Equal(t, 0.2, result.Confidence)
	}
}

func TestRuleClassifier_Deterministic(t *testing.T) {
	c := newTestClassifier()

	inputs := []struct {
		description string
		amount      int64
	}{
		{"Uber ride to office", 150},
		{"xyzzy qwerty", 3000},
		{"cash atm withdrawal transfer", 0},
	}

	for _, in := range inputs {
		first := c.Classify(in.description, decimal.NewFromInt(in.amount))
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, c.Classify(in.description, decimal.NewFromInt(in.amount)))
		}
	}
}

func TestRuleClassifier_ExtraKeywords(t *testing.T) {
	opts := DefaultOptions()
	opts.Logger = logging.NewMockLogger()
	opts.ExtraKeywords = map[models.Category][]string{
		models.CategoryFood: {"  Blorptaco  "},
	}
	c := NewRuleClassifier(opts)

	suggestions := c.Suggestions("blorptaco", decimal.Zero, 1)
	require.Len(t, suggestions, 1)
	assert.Equal(t, models.CategoryFood, suggestions[0].Category)
	assert.Greater(t, suggestions[0].Confidence, 0.0)
}

func TestRuleClassifier_Suggestions(t *testing.T) {
	c := newTestClassifier()

	suggestions := c.Suggestions("movie ticket and netflix subscription", decimal.NewFromInt(500), 3)
	require.Len(t, suggestions, 3)
	assert.Equal(t, models.CategoryEntertainment, suggestions[0].Category)
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Confidence, suggestions[i].Confidence)
	}
}

func TestRuleClassifier_SuggestionsEdgeCases(t *testing.T) {
	c := newTestClassifier()

	assert.Nil(t, c.Suggestions("anything", decimal.Zero, 0))

	empty := c.Suggestions("", decimal.Zero, 3)
	require.Len(t, empty, 1)
	assert.Equal(t, models.CategoryOther, empty[0].Category)

	// Requesting more than the category count caps at the full set.
	all := c.Suggestions("coffee", decimal.Zero, 20)
	assert.Len(t, all, len(models.AllCategories()))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Uber Ride!!!", "uber ride"},
		{"  COFFEE   at  Cafe ", "coffee at cafe"},
		{"a-b_c", "a b_c"},
		{"...", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalize(tt.input), "input %q", tt.input)
	}
}

func TestAmountCategory(t *testing.T) {
	// Hint words beat the bucket default.
	category, ok := amountCategory("morning chai", 40)
	assert.True(t, ok)
	assert.Equal(t, models.CategoryFood, category)

	category, ok = amountCategory("monthly rent", 5000)
	assert.True(t, ok)
	assert.Equal(t, models.CategoryBills, category)

	// Non-positive amounts disable the stage entirely.
	_, ok = amountCategory("anything", 0)
	assert.False(t, ok)
	_, ok = amountCategory("anything", -10)
	assert.False(t, ok)
}
