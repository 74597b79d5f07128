package classifier

import (
	"math"

	"spendlens/internal/models"
)

// scorePatterns runs the regex phrase stage. Each matching pattern scores
// min(1.0, 0.8 + 0.2 * occurrences); the highest score across all categories
// wins. Returns (Other, 0) when nothing matches.
func (c *RuleClassifier) scorePatterns(desc string) models.CategoryResult {
	best := models.CategoryResult{Category: models.CategoryOther}

	for _, cp := range defaultPatterns {
		for _, re := range cp.patterns {
			occurrences := len(re.FindAllString(desc, -1))
			if occurrences == 0 {
				continue
			}
			confidence := math.Min(1.0, 0.8+0.2*float64(occurrences))
			if confidence > best.Confidence {
				best = models.CategoryResult{Category: cp.category, Confidence: confidence}
			}
		}
	}

	return best
}

// patternScores returns the best pattern confidence per category, used for
// building ranked suggestions.
func (c *RuleClassifier) patternScores(desc string) map[models.Category]float64 {
	scores := make(map[models.Category]float64, len(defaultPatterns))
	for _, cp := range defaultPatterns {
		for _, re := range cp.patterns {
			occurrences := len(re.FindAllString(desc, -1))
			if occurrences == 0 {
				continue
			}
			confidence := math.Min(1.0, 0.8+0.2*float64(occurrences))
			if confidence > scores[cp.category] {
				scores[cp.category] = confidence
			}
		}
	}
	return scores
}
