package classifier

import (
	"math"
	"strings"

	"spendlens/internal/models"
)

// Keyword match weights. Multi-word phrases matched word-by-word score
// highest because they are the most specific signal.
const (
	weightExactPhrase = 2.0
	weightWholeWord   = 1.5
	weightAllWords    = 2.5
)

// scoreKeywords runs the weighted keyword stage over every category and
// returns the best candidate plus the full per-category confidence map.
// Exact confidence ties are broken by the canonical category order.
func (c *RuleClassifier) scoreKeywords(desc string, words map[string]struct{}) (models.CategoryResult, map[models.Category]float64) {
	scores := make(map[models.Category]float64, len(c.order))
	best := models.CategoryResult{Category: models.CategoryOther}

	for _, category := range c.order {
		confidence := scoreCategoryKeywords(desc, words, c.keywords[category])
		scores[category] = confidence
		if confidence > best.Confidence {
			best = models.CategoryResult{Category: category, Confidence: confidence}
		}
	}

	return best, scores
}

// scoreCategoryKeywords computes the confidence for a single category table:
// 0.5 * normalized raw score + 0.3 * matched character coverage +
// 0.2 * matched keyword fraction, clamped to [0,1].
func scoreCategoryKeywords(desc string, words map[string]struct{}, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	var (
		raw          float64
		matched      int
		matchedChars int
		totalChars   int
	)

	for _, keyword := range keywords {
		totalChars += len(keyword)

		// Exact phrase match anywhere in the description.
		if strings.Contains(desc, keyword) {
			raw += weightExactPhrase
			matched++
			matchedChars += len(keyword)
			continue
		}

		parts := strings.Fields(keyword)
		if len(parts) == 1 {
			if _, ok := words[keyword]; ok {
				raw += weightWholeWord
				matched++
				matchedChars += len(keyword)
			}
			continue
		}

		// Multi-word keyword: all constituent words present, any order.
		allPresent := true
		for _, part := range parts {
			if _, ok := words[part]; !ok {
				allPresent = false
				break
			}
		}
		if allPresent {
			raw += weightAllWords
			matched++
			matchedChars += len(keyword)
		}
	}

	if totalChars == 0 {
		return 0
	}

	n := float64(len(keywords))
	base := raw / n
	coverage := float64(matchedChars) / float64(totalChars)
	bonus := math.Min(float64(matched)/n, 1.0)

	return math.Min(base*0.5+coverage*0.3+bonus*0.2, 1.0)
}
