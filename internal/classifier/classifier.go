// Package classifier assigns spending categories to free-text expense
// descriptions using three rule stages combined by a fixed precedence:
// 1. Weighted keyword scoring over per-category keyword tables
// 2. Regex phrase patterns
// 3. Amount-range heuristics
package classifier

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"spendlens/internal/logging"
	"spendlens/internal/models"
)

// Default stage thresholds.
const (
	DefaultKeywordThreshold = 0.7
	DefaultPatternThreshold = 0.8
	DefaultAmountGate       = 0.5
	DefaultFallbackFloor    = 0.3
)

// Confidence levels for degraded answers.
const (
	confidenceEmpty    = 0.1
	confidenceAmount   = 0.6
	confidenceFallback = 0.2
)

// Options configures a RuleClassifier.
type Options struct {
	// KeywordThreshold short-circuits the pipeline when the keyword stage
	// is confident enough on its own.
	KeywordThreshold float64
	// PatternThreshold short-circuits after the pattern stage.
	PatternThreshold float64
	// AmountGate disables the amount heuristic when the keyword stage
	// already reached this confidence.
	AmountGate float64
	// FallbackFloor is the minimum confidence a keyword or pattern
	// candidate needs to beat the (Other, 0.2) fallback.
	FallbackFloor float64
	// ExtraKeywords extends the built-in keyword tables, typically loaded
	// from the keywords YAML store.
	ExtraKeywords map[models.Category][]string
	// Logger receives per-stage debug output. Nil uses the package default.
	Logger logging.Logger
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{
		KeywordThreshold: DefaultKeywordThreshold,
		PatternThreshold: DefaultPatternThreshold,
		AmountGate:       DefaultAmountGate,
		FallbackFloor:    DefaultFallbackFloor,
	}
}

// RuleClassifier is the deterministic rule-based Strategy implementation.
// It holds immutable rule tables and is safe for concurrent use.
type RuleClassifier struct {
	keywords         KeywordTable
	order            []models.Category
	keywordThreshold float64
	patternThreshold float64
	amountGate       float64
	fallbackFloor    float64
	logger           logging.Logger
}

// NewRuleClassifier builds a classifier from the built-in rule tables plus
// any extra keywords in the options. Zero thresholds fall back to defaults.
func NewRuleClassifier(opts Options) *RuleClassifier {
	defaults := DefaultOptions()
	if opts.KeywordThreshold == 0 {
		opts.KeywordThreshold = defaults.KeywordThreshold
	}
	if opts.PatternThreshold == 0 {
		opts.PatternThreshold = defaults.PatternThreshold
	}
	if opts.AmountGate == 0 {
		opts.AmountGate = defaults.AmountGate
	}
	if opts.FallbackFloor == 0 {
		opts.FallbackFloor = defaults.FallbackFloor
	}
	if opts.Logger == nil {
		opts.Logger = logging.GetLogger()
	}

	keywords := DefaultKeywords()
	for category, extra := range opts.ExtraKeywords {
		for _, keyword := range extra {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword != "" {
				keywords[category] = append(keywords[category], keyword)
			}
		}
	}

	return &RuleClassifier{
		keywords:         keywords,
		order:            models.AllCategories(),
		keywordThreshold: opts.KeywordThreshold,
		patternThreshold: opts.PatternThreshold,
		amountGate:       opts.AmountGate,
		fallbackFloor:    opts.FallbackFloor,
		logger:           opts.Logger,
	}
}

// Name returns the name of this strategy.
func (c *RuleClassifier) Name() string {
	return "Rules"
}

// Classify assigns a category to a description/amount pair. It never fails:
// empty or unrecognizable descriptions degrade to a low-confidence Other.
func (c *RuleClassifier) Classify(description string, amount decimal.Decimal) models.CategoryResult {
	desc := normalize(description)
	if desc == "" {
		return models.CategoryResult{Category: models.CategoryOther, Confidence: confidenceEmpty}
	}

	words := wordSet(desc)

	keywordBest, _ := c.scoreKeywords(desc, words)
	if keywordBest.Confidence > c.keywordThreshold {
		c.debugStage("keyword", keywordBest)
		return keywordBest
	}

	patternBest := c.scorePatterns(desc)
	if patternBest.Confidence > c.patternThreshold {
		c.debugStage("pattern", patternBest)
		return patternBest
	}

	amountValue, _ := amount.Float64()
	if keywordBest.Confidence < c.amountGate {
		if category, ok := amountCategory(desc, amountValue); ok {
			result := models.CategoryResult{Category: category, Confidence: confidenceAmount}
			c.debugStage("amount", result)
			return result
		}
	}

	if keywordBest.Confidence > c.fallbackFloor {
		c.debugStage("keyword_fallback", keywordBest)
		return keywordBest
	}
	if patternBest.Confidence > c.fallbackFloor {
		c.debugStage("pattern_fallback", patternBest)
		return patternBest
	}

	return models.CategoryResult{Category: models.CategoryOther, Confidence: confidenceFallback}
}

// Suggestions returns the top-n categories ranked by combined keyword and
// pattern confidence. Ties keep the canonical category order.
func (c *RuleClassifier) Suggestions(description string, amount decimal.Decimal, n int) []models.CategoryResult {
	if n <= 0 {
		return nil
	}

	desc := normalize(description)
	if desc == "" {
		return []models.CategoryResult{{Category: models.CategoryOther, Confidence: confidenceEmpty}}
	}

	words := wordSet(desc)
	_, keywordScores := c.scoreKeywords(desc, words)
	patternScores := c.patternScores(desc)

	ranked := make([]models.CategoryResult, 0, len(c.order))
	for _, category := range c.order {
		confidence := keywordScores[category]
		if patternScores[category] > confidence {
			confidence = patternScores[category]
		}
		ranked = append(ranked, models.CategoryResult{Category: category, Confidence: confidence})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func (c *RuleClassifier) debugStage(stage string, result models.CategoryResult) {
	c.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: c.Name()},
		logging.Field{Key: logging.FieldStage, Value: stage},
		logging.Field{Key: logging.FieldCategory, Value: result.Category},
		logging.Field{Key: logging.FieldConfidence, Value: result.Confidence},
	).Debug("Expense classified")
}
