package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochiFnana/patternlife/rules"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	table, err := config.RuleTable()
	require.NoError(t, err)
	assert.Equal(t, rules.Reference(), table)
}

func TestValidateRejectsBadSettings(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"density above one", func(c *Config) { c.SeedDensity = 1.5 }},
		{"negative density", func(c *Config) { c.SeedDensity = -0.1 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -1 }},
		{"malformed rule pattern", func(c *Config) {
			c.Rules = append(c.Rules, RuleEntry{Pattern: "3+4", Alive: true})
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(&config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestRuleTablePreservesOrder(t *testing.T) {
	config := DefaultConfig()
	config.Rules = []RuleEntry{
		{Pattern: "1", Alive: true},
		{Pattern: "1", Alive: false},
		{Pattern: "2i", Alive: false},
	}

	table, err := config.RuleTable()
	require.NoError(t, err)
	require.Len(t, table, 3)

	// First-match lookup must see the earlier duplicate.
	assert.True(t, table.Next(rules.PatternKey{Re: 1}))
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{"width": 10, "height": 6, "seed_density": 0.5, "seed": 17}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, config.Width)
	assert.Equal(t, 6, config.Height)
	assert.Equal(t, 0.5, config.SeedDensity)
	assert.Equal(t, int64(17), config.Seed)

	// Untouched fields keep their defaults, including the reference rules.
	assert.Equal(t, DefaultConfig().FrameRate, config.FrameRate)
	assert.Equal(t, ReferenceRules(), config.Rules)
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"width": 0}`), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
