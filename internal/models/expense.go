// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed spending categories an expense can belong to.
type Category string

// Spending categories. The order of AllCategories is also the deterministic
// tie-break order used by the classifier.
const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryHealthcare     Category = "Healthcare"
	CategoryBills          Category = "Bills"
	CategoryEducation      Category = "Education"
	CategoryOther          Category = "Other"
)

// AllCategories returns the closed category set in its canonical order.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryBills,
		CategoryEducation,
		CategoryOther,
	}
}

// ParseCategory maps a string to a known Category.
// Unknown values map to CategoryOther with ok=false.
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, true
		}
	}
	return CategoryOther, false
}

// ExpenseRecord is a single logged expense. The record is owned by the
// expense store collaborator; the engine only reads it.
type ExpenseRecord struct {
	Date        time.Time       `json:"date" yaml:"date"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    Category        `json:"category" yaml:"category"`
	Description string          `json:"description" yaml:"description"`
	Timestamp   time.Time       `json:"timestamp" yaml:"timestamp"`
}

// Valid reports whether the record can participate in analysis.
// Records with a zero date or a non-positive amount are excluded.
func (e ExpenseRecord) Valid() bool {
	return !e.Date.IsZero() && e.Amount.IsPositive()
}

// FilterValid returns a new slice holding only the analyzable records.
// The input slice is never mutated.
func FilterValid(records []ExpenseRecord) []ExpenseRecord {
	valid := make([]ExpenseRecord, 0, len(records))
	for _, r := range records {
		if r.Valid() {
			valid = append(valid, r)
		}
	}
	return valid
}

// CategoryResult is the classifier's answer for a single description/amount
// pair: a best-guess category and a confidence in [0,1].
type CategoryResult struct {
	Category   Category `json:"category" yaml:"category"`
	Confidence float64  `json:"confidence" yaml:"confidence"`
}
