package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"spendlens/internal/logging"
	"spendlens/internal/models"
)

// keywordsConfig is the YAML layout of the keyword override file.
type keywordsConfig struct {
	Categories []categoryKeywords `yaml:"categories"`
}

type categoryKeywords struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// budgetsConfig is the YAML layout of the budgets file.
type budgetsConfig struct {
	MonthlyBudget  float64            `yaml:"monthly_budget"`
	CategoryLimits map[string]float64 `yaml:"category_limits"`
}

// RuleStore manages loading of keyword overrides and budget targets.
type RuleStore struct {
	KeywordsFile string
	BudgetsFile  string
	log          logging.Logger
}

// NewRuleStore creates a store for rule-related data. Empty filenames fall
// back to defaults.
func NewRuleStore(keywordsFile, budgetsFile string, log logging.Logger) *RuleStore {
	if keywordsFile == "" {
		keywordsFile = "keywords.yaml"
	}
	if budgetsFile == "" {
		budgetsFile = "budgets.yaml"
	}
	if log == nil {
		log = logging.GetLogger()
	}
	return &RuleStore{KeywordsFile: keywordsFile, BudgetsFile: budgetsFile, log: log}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".spendlens", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadKeywordOverrides loads extra classifier keywords from the YAML file.
// A missing file is not an error and yields an empty map.
func (s *RuleStore) LoadKeywordOverrides() (map[models.Category][]string, error) {
	path, err := s.FindConfigFile(s.KeywordsFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.WithField(logging.FieldInputFile, s.KeywordsFile).
				Debug("Keywords file not found, using built-in rules only")
			return map[models.Category][]string{}, nil
		}
		return nil, fmt.Errorf("error resolving keywords file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading keywords file: %w", err)
	}

	var cfg keywordsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing keywords file: %w", err)
	}

	overrides := make(map[models.Category][]string)
	for _, entry := range cfg.Categories {
		category, ok := models.ParseCategory(entry.Name)
		if !ok {
			s.log.WithField(logging.FieldCategory, entry.Name).
				Warn("Ignoring keywords for unknown category")
			continue
		}
		overrides[category] = append(overrides[category], entry.Keywords...)
	}

	s.log.WithField(logging.FieldCount, len(overrides)).Debug("Loaded keyword overrides")
	return overrides, nil
}

// LoadBudgets loads budget targets from the YAML file. A missing file is not
// an error and yields zero budgets.
func (s *RuleStore) LoadBudgets() (float64, map[models.Category]float64, error) {
	path, err := s.FindConfigFile(s.BudgetsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil, nil
		}
		return 0, nil, fmt.Errorf("error resolving budgets file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading budgets file: %w", err)
	}

	var cfg budgetsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return 0, nil, fmt.Errorf("error parsing budgets file: %w", err)
	}

	limits := make(map[models.Category]float64)
	for name, limit := range cfg.CategoryLimits {
		category, ok := models.ParseCategory(name)
		if !ok {
			s.log.WithField(logging.FieldCategory, name).
				Warn("Ignoring limit for unknown category")
			continue
		}
		limits[category] = limit
	}

	return cfg.MonthlyBudget, limits, nil
}

// SaveBudgets writes budget targets to the YAML file, creating parent
// directories as needed.
func (s *RuleStore) SaveBudgets(monthlyBudget float64, limits map[models.Category]float64) error {
	cfg := budgetsConfig{
		MonthlyBudget:  monthlyBudget,
		CategoryLimits: make(map[string]float64, len(limits)),
	}
	for category, limit := range limits {
		cfg.CategoryLimits[string(category)] = limit
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling budgets: %w", err)
	}

	if dir := filepath.Dir(s.BudgetsFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating budgets directory: %w", err)
		}
	}
	if err := os.WriteFile(s.BudgetsFile, data, 0o644); err != nil {
		return fmt.Errorf("error writing budgets file: %w", err)
	}
	return nil
}
