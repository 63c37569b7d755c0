package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/mochiFnana/patternlife/rules"
)

// RuleEntry is the JSON form of a single rule table row. Pattern uses the
// complex-literal key notation, e.g. "12", "2i", "1+1i".
type RuleEntry struct {
	Pattern string `json:"pattern"`
	Alive   bool   `json:"alive"`
}

// Config holds the configuration for the simulation
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	FrameRate      time.Duration `json:"frame_rate"`
	SeedDensity    float64       `json:"seed_density"`
	Seed           int64         `json:"seed"`
	MaxGenerations int           `json:"max_generations"`
	UseParallel    bool          `json:"use_parallel"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	AliveGlyph     string        `json:"alive_glyph"`
	DeadGlyph      string        `json:"dead_glyph"`
	Rules          []RuleEntry   `json:"rules"`
}

// DefaultConfig returns sensible defaults with the reference rule set
func DefaultConfig() Config {
	return Config{
		Width:          40,
		Height:         20,
		FrameRate:      150 * time.Millisecond,
		SeedDensity:    0.2,
		MaxGenerations: 0,
		UseMemoryPool:  true,
		AliveGlyph:     "0",
		DeadGlyph:      "·",
		Rules:          ReferenceRules(),
	}
}

// ReferenceRules returns the shipped rule table in config form
func ReferenceRules() []RuleEntry {
	ref := rules.Reference()
	entries := make([]RuleEntry, 0, len(ref))
	for _, r := range ref {
		entries = append(entries, RuleEntry{Pattern: r.Key.String(), Alive: r.Alive})
	}
	return entries
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the simulation cannot run with. Bad dimensions
// and malformed rule patterns are caught here, before any grid is built.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Errorf("[Validate] grid dimensions must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.SeedDensity < 0 || c.SeedDensity > 1 {
		return errors.Errorf("[Validate] seed density must be within [0, 1], got %v", c.SeedDensity)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame rate must not be negative, got %v", c.FrameRate)
	}
	if _, err := c.RuleTable(); err != nil {
		return errors.Wrap(err, "[Validate] bad rule table")
	}
	return nil
}

// RuleTable builds the rule table from the configured entries, preserving
// their order so first-match lookup behaves as written
func (c Config) RuleTable() (rules.Table, error) {
	table := make(rules.Table, 0, len(c.Rules))
	for i, entry := range c.Rules {
		key, err := rules.ParsePatternKey(entry.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "[RuleTable] rule %d has a malformed pattern", i)
		}
		table = append(table, rules.Rule{Key: key, Alive: entry.Alive})
	}
	return table, nil
}
