package settings_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/settings"
)

func TestParse_Defaults(t *testing.T) {
	s, err := settings.Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "fresh.yaml", s.ConfigFile)
	assert.Equal(t, []string{"."}, s.Directories)
	assert.Equal(t, "/bin/sh", s.Shell)
	assert.Empty(t, s.CommandPrefix)
	assert.Equal(t, domain.LogLevelInfo, s.LogLevel)
	assert.False(t, s.LogJSON)
	assert.Equal(t, 200*time.Millisecond, s.WatchDebounce)
}

func TestParse_Overrides(t *testing.T) {
	s, err := settings.Parse([]string{
		"FRESH_CONFIG=build.json",
		"FRESH_DIRECTORIES=web,api",
		"FRESH_SHELL=/bin/bash",
		"FRESH_COMMAND_PREFIX=pnpm exec",
		"FRESH_LOG_LEVEL=debug",
		"FRESH_LOG_JSON=true",
		"FRESH_WATCH_DEBOUNCE=1s",
		"UNRELATED=value",
	})
	require.NoError(t, err)

	assert.Equal(t, "build.json", s.ConfigFile)
	assert.Equal(t, []string{"web", "api"}, s.Directories)
	assert.Equal(t, "/bin/bash", s.Shell)
	assert.Equal(t, "pnpm exec", s.CommandPrefix)
	assert.Equal(t, domain.LogLevelDebug, s.LogLevel)
	assert.True(t, s.LogJSON)
	assert.Equal(t, time.Second, s.WatchDebounce)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
	}{
		{"bad log level", []string{"FRESH_LOG_LEVEL=loud"}},
		{"bad duration", []string{"FRESH_WATCH_DEBOUNCE=soon"}},
		{"bad bool", []string{"FRESH_LOG_JSON=maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := settings.Parse(tt.environ)
			require.Error(t, err)
		})
	}
}
