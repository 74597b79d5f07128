// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
		DateFormat string `mapstructure:"date_format" yaml:"date_format"`
	} `mapstructure:"csv" yaml:"csv"`

	Classifier struct {
		KeywordThreshold float64 `mapstructure:"keyword_threshold" yaml:"keyword_threshold"`
		PatternThreshold float64 `mapstructure:"pattern_threshold" yaml:"pattern_threshold"`
		AmountGate       float64 `mapstructure:"amount_gate" yaml:"amount_gate"`
		FallbackFloor    float64 `mapstructure:"fallback_floor" yaml:"fallback_floor"`
		KeywordsFile     string  `mapstructure:"keywords_file" yaml:"keywords_file"`
	} `mapstructure:"classifier" yaml:"classifier"`

	Analysis struct {
		RecentWindowDays    int     `mapstructure:"recent_window_days" yaml:"recent_window_days"`
		BurstQuantile       float64 `mapstructure:"burst_quantile" yaml:"burst_quantile"`
		TrendSlopeThreshold float64 `mapstructure:"trend_slope_threshold" yaml:"trend_slope_threshold"`
	} `mapstructure:"analysis" yaml:"analysis"`

	Budgets struct {
		MonthlyTotal   float64            `mapstructure:"monthly_total" yaml:"monthly_total"`
		CategoryLimits map[string]float64 `mapstructure:"category_limits" yaml:"category_limits"`
		BudgetsFile    string             `mapstructure:"budgets_file" yaml:"budgets_file"`
	} `mapstructure:"budgets" yaml:"budgets"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then SPENDLENS_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.spendlens")
	v.AddConfigPath(".spendlens")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SPENDLENS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.date_format", "2006-01-02")

	v.SetDefault("classifier.keyword_threshold", 0.7)
	v.SetDefault("classifier.pattern_threshold", 0.8)
	v.SetDefault("classifier.amount_gate", 0.5)
	v.SetDefault("classifier.fallback_floor", 0.3)
	v.SetDefault("classifier.keywords_file", "keywords.yaml")

	v.SetDefault("analysis.recent_window_days", 7)
	v.SetDefault("analysis.burst_quantile", 0.8)
	v.SetDefault("analysis.trend_slope_threshold", 10.0)

	v.SetDefault("budgets.monthly_total", 0.0)
	v.SetDefault("budgets.budgets_file", "budgets.yaml")
}

// validateConfig validates configuration values
func validateConfig(config *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(config.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got %q", config.CSV.Delimiter)
	}

	for name, threshold := range map[string]float64{
		"classifier.keyword_threshold": config.Classifier.KeywordThreshold,
		"classifier.pattern_threshold": config.Classifier.PatternThreshold,
		"classifier.amount_gate":       config.Classifier.AmountGate,
		"classifier.fallback_floor":    config.Classifier.FallbackFloor,
	} {
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", name, threshold)
		}
	}

	if config.Analysis.BurstQuantile <= 0 || config.Analysis.BurstQuantile >= 1 {
		return fmt.Errorf("analysis.burst_quantile must be in (0,1), got %v", config.Analysis.BurstQuantile)
	}

	if config.Analysis.RecentWindowDays < 1 {
		return fmt.Errorf("analysis.recent_window_days must be positive, got %d", config.Analysis.RecentWindowDays)
	}

	if config.Budgets.MonthlyTotal < 0 {
		return fmt.Errorf("budgets.monthly_total must not be negative, got %v", config.Budgets.MonthlyTotal)
	}
	for category, limit := range config.Budgets.CategoryLimits {
		if limit < 0 {
			return fmt.Errorf("budgets.category_limits.%s must not be negative, got %v", category, limit)
		}
	}

	return nil
}
