package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ACTIVITY_LIMIT", "50")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "@every 5m", cfg.DelaySweepSchedule)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 50, cfg.ActivityLimit)
	require.InDelta(t, 97.0, cfg.SatisfactionRate, 0.001)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DELAY_SWEEP_SCHEDULE", "@every 1m")
	t.Setenv("ACTIVITY_LIMIT", "10")
	t.Setenv("SATISFACTION_RATE", "88.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, "@every 1m", cfg.DelaySweepSchedule)
	require.Equal(t, 10, cfg.ActivityLimit)
	require.InDelta(t, 88.5, cfg.SatisfactionRate, 0.001)
}

func TestLoadConfigRejectsNonPositiveActivityLimit(t *testing.T) {
	t.Setenv("ACTIVITY_LIMIT", "0")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsMalformedNumber(t *testing.T) {
	t.Setenv("ACTIVITY_LIMIT", "lots")

	_, err := LoadConfig()
	require.Error(t, err)
}
