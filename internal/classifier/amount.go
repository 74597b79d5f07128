package classifier

import (
	"strings"

	"spendlens/internal/models"
)

// amountCategory applies the amount-bucket heuristic: the amount selects a
// bucket, then bucket-specific description substrings (or the bucket's
// default) select a category. A non-positive amount disables the stage.
func amountCategory(desc string, amount float64) (models.Category, bool) {
	if amount <= 0 {
		return "", false
	}

	for _, bucket := range amountBuckets {
		if amount < bucket.min {
			continue
		}
		if bucket.max > 0 && amount >= bucket.max {
			continue
		}

		for _, hint := range bucket.hints {
			for _, word := range hint.words {
				if strings.Contains(desc, word) {
					return hint.category, true
				}
			}
		}

		if bucket.fallback != "" {
			return bucket.fallback, true
		}
		return "", false
	}

	return "", false
}
