package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestConfig() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}

func TestDefaults(t *testing.T) {
	cfg := defaultTestConfig()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 0.7, cfg.Classifier.KeywordThreshold)
	assert.Equal(t, 0.8, cfg.Classifier.PatternThreshold)
	assert.Equal(t, 0.5, cfg.Classifier.AmountGate)
	assert.Equal(t, 0.3, cfg.Classifier.FallbackFloor)
	assert.Equal(t, 7, cfg.Analysis.RecentWindowDays)
	assert.Equal(t, 0.8, cfg.Analysis.BurstQuantile)
	assert.Equal(t, 10.0, cfg.Analysis.TrendSlopeThreshold)
	assert.Zero(t, cfg.Budgets.MonthlyTotal)
	assert.Equal(t, "budgets.yaml", cfg.Budgets.BudgetsFile)
}

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(defaultTestConfig()))
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ";;" }},
		{"threshold above one", func(c *Config) { c.Classifier.KeywordThreshold = 1.5 }},
		{"negative threshold", func(c *Config) { c.Classifier.FallbackFloor = -0.1 }},
		{"quantile at bound", func(c *Config) { c.Analysis.BurstQuantile = 1.0 }},
		{"zero window", func(c *Config) { c.Analysis.RecentWindowDays = 0 }},
		{"negative budget", func(c *Config) { c.Budgets.MonthlyTotal = -100 }},
		{"negative category limit", func(c *Config) {
			c.Budgets.CategoryLimits = map[string]float64{"Food": -1}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultTestConfig()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}
