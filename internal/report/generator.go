// Package report renders insights reports into serialized output formats.
package report

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"spendlens/internal/logging"
	"spendlens/internal/models"
)

// Generator renders an InsightsReport in a requested format.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report generator. A nil logger uses the package
// default.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger}
}

// Generate renders the report in the specified format (json or yaml).
// It returns the serialized report and an error if the format is
// unsupported or serialization fails.
func (g *Generator) Generate(report *models.InsightsReport, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(report)
	case "yaml":
		return g.generateYAML(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(report *models.InsightsReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateYAML(report *models.InsightsReport) ([]byte, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}
