package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func Test_LoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		expected    Config
		expectedErr error
	}{
		{
			name:     "defaults",
			env:      map[string]string{},
			expected: Config{LogLevel: slog.LevelInfo, LogFormat: logFormatText},
		},
		{
			name:     "debug_json",
			env:      map[string]string{envLogLevel: "debug", envLogFormat: "JSON"},
			expected: Config{LogLevel: slog.LevelDebug, LogFormat: logFormatJSON},
		},
		{
			name:     "upper_case_level",
			env:      map[string]string{envLogLevel: "WARN"},
			expected: Config{LogLevel: slog.LevelWarn, LogFormat: logFormatText},
		},
		{
			name:        "unknown_level",
			env:         map[string]string{envLogLevel: "verbose"},
			expectedErr: ErrInvalidLogLevel,
		},
		{
			name:        "unknown_format",
			env:         map[string]string{envLogFormat: "xml"},
			expectedErr: ErrInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(envOf(tt.env))

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func Test_Config_NewLogger_HonoursLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := Config{LogLevel: slog.LevelWarn, LogFormat: logFormatJSON}.newLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "witness", "string")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"witness":"string"`)
}
