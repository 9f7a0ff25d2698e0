package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{LogLevel: "INFO", Immediate: true, Scenario: "scenario.yaml"}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DELAY_LOG_LEVEL", "DEBUG")
	t.Setenv("DELAY_IMMEDIATE", "false")
	t.Setenv("DELAY_SCENARIO", "/tmp/s.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{LogLevel: "DEBUG", Immediate: false, Scenario: "/tmp/s.yaml"}, cfg)
}

func TestLoadRejectsBadBool(t *testing.T) {
	t.Setenv("DELAY_IMMEDIATE", "sometimes")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env")
}
