package classifier

import (
	"regexp"
	"strings"
)

var (
	punctuationRe = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// normalize lower-cases a description, replaces punctuation with spaces and
// collapses runs of whitespace. The result may be empty.
func normalize(description string) string {
	desc := strings.ToLower(strings.TrimSpace(description))
	desc = punctuationRe.ReplaceAllString(desc, " ")
	desc = whitespaceRe.ReplaceAllString(desc, " ")
	return strings.TrimSpace(desc)
}

// wordSet returns the set of whole words in a normalized description.
func wordSet(normalized string) map[string]struct{} {
	words := strings.Fields(normalized)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
