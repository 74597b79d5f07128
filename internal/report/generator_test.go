package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"spendlens/internal/logging"
	"spendlens/internal/models"
)

func sampleReport() *models.InsightsReport {
	return &models.InsightsReport{
		ReportID:     "test-report",
		Status:       models.StatusSuccess,
		AnalysisDate: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		Summary: &models.SpendingSummary{
			TotalSpending:     2200,
			TotalTransactions: 3,
		},
		Categories: &models.CategoryInsights{
			TopCategories: []models.CategoryTotal{
				{Category: models.CategoryShopping, Total: 1500},
			},
		},
	}
}

func TestGenerator_JSON(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	data, err := g.Generate(sampleReport(), "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "test-report", decoded["report_id"])
	assert.Equal(t, "success", decoded["status"])

	summary, ok := decoded["spending_summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 2200.0, summary["total_spending"])

	// Empty sections are omitted rather than serialized as null.
	assert.NotContains(t, decoded, "anomalies")
	assert.NotContains(t, decoded, "predictions")
}

func TestGenerator_YAML(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	data, err := g.Generate(sampleReport(), "yaml")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "test-report", decoded["report_id"])
	assert.Equal(t, "success", decoded["status"])
}

func TestGenerator_UnsupportedFormat(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	_, err := g.Generate(sampleReport(), "xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}
