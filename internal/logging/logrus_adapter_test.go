package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{
			name:        "debug level with text format",
			level:       "debug",
			format:      "text",
			expectLevel: logrus.DebugLevel,
		},
		{
			name:        "info level with json format",
			level:       "info",
			format:      "json",
			expectLevel: logrus.InfoLevel,
		},
		{
			name:        "invalid level defaults to info",
			level:       "invalid",
			format:      "text",
			expectLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestLogrusAdapter_LogOutput(t *testing.T) {
	var buf bytes.Buffer
	underlying := logrus.New()
	underlying.SetOutput(&buf)
	underlying.SetLevel(logrus.DebugLevel)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)

	logger.Info("classification complete", Field{Key: FieldCategory, Value: "Food"})
	output := buf.String()
	assert.Contains(t, output, "classification complete")
	assert.Contains(t, output, "Food")

	buf.Reset()
	logger.WithError(errors.New("boom")).Error("analysis failed")
	output = buf.String()
	assert.Contains(t, output, "analysis failed")
	assert.Contains(t, output, "boom")
}

func TestLogrusAdapter_WithFieldsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	underlying := logrus.New()
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	parent := NewLogrusAdapterFromLogger(underlying)
	child := parent.WithField(FieldStage, "keyword")

	parent.Info("no stage here")
	assert.NotContains(t, buf.String(), "keyword")

	buf.Reset()
	child.Info("stage attached")
	assert.Contains(t, buf.String(), "keyword")
}

func TestMockLogger(t *testing.T) {
	mock := NewMockLogger()
	mock.Info("hello", Field{Key: FieldCount, Value: 3})
	mock.Warn("careful")

	assert.True(t, mock.HasEntry("INFO", "hello"))
	assert.True(t, mock.HasEntry("WARN", "careful"))
	assert.False(t, mock.HasEntry("ERROR", "hello"))
	require.Len(t, mock.Entries, 2)
	assert.Equal(t, FieldCount, mock.Entries[0].Fields[0].Key)
}

func TestSetDefaultLogger(t *testing.T) {
	original := GetLogger()
	defer SetDefaultLogger(original)

	mock := NewMockLogger()
	SetDefaultLogger(mock)
	assert.Equal(t, Logger(mock), GetLogger())

	// Nil is ignored.
	SetDefaultLogger(nil)
	assert.Equal(t, Logger(mock), GetLogger())
}
