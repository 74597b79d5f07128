package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	category, ok := ParseCategory("Food")
	assert.True(t, ok)
	assert.Equal(t, CategoryFood, category)

	category, ok = ParseCategory("Gambling")
	assert.False(t, ok)
	assert.Equal(t, CategoryOther, category)

	// Matching is case sensitive.
	_, ok = ParseCategory("food")
	assert.False(t, ok)
}

func TestAllCategories(t *testing.T) {
	categories := AllCategories()
	assert.Len(t, categories, 8)
	assert.Equal(t, CategoryFood, categories[0])
	assert.Equal(t, CategoryOther, categories[len(categories)-1])
}

func TestExpenseRecord_Valid(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		record ExpenseRecord
		valid  bool
	}{
		{"valid", ExpenseRecord{Date: date, Amount: decimal.NewFromInt(100)}, true},
		{"zero date", ExpenseRecord{Amount: decimal.NewFromInt(100)}, false},
		{"zero amount", ExpenseRecord{Date: date, Amount: decimal.Zero}, false},
		{"negative amount", ExpenseRecord{Date: date, Amount: decimal.NewFromInt(-5)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.record.Valid())
		})
	}
}

func TestFilterValid(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []ExpenseRecord{
		{Date: date, Amount: decimal.NewFromInt(100), Description: "keep"},
		{Amount: decimal.NewFromInt(100), Description: "drop"},
		{Date: date, Amount: decimal.Zero, Description: "drop"},
		{Date: date, Amount: decimal.NewFromInt(50), Description: "keep"},
	}
	original := make([]ExpenseRecord, len(records))
	copy(original, records)

	valid := FilterValid(records)
	require.Len(t, valid, 2)
	assert.Equal(t, "keep", valid[0].Description)
	assert.Equal(t, "keep", valid[1].Description)

	// The input slice is untouched.
	assert.Equal(t, original, records)
}
