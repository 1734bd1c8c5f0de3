package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse("chess", []string{"-theme", "brown", "-labels", "-script", "e2e4, e7e5 ,", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, "brown", cfg.Theme)
	assert.True(t, cfg.Labels)
	assert.False(t, cfg.Interactive)
	assert.Equal(t, []string{"e2e4", "e7e5"}, cfg.Script)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("chess", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseUnknownFlag(t *testing.T) {
	_, err := Parse("chess", []string{"-nope"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{"bad theme", func(c *Config) { c.Theme = "neon" }, "Theme must be one of"},
		{"empty theme", func(c *Config) { c.Theme = "" }, "Theme is required"},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "LogLevel must be one of"},
		{"short step", func(c *Config) { c.Script = []string{"a1a"} }, "Script[0] must be 4 characters"},
		{"long layout", func(c *Config) { c.Layout = string(make([]byte, 101)) }, "Layout must be at most 100 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
