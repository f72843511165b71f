package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Vodeneev/sofacheck/internal/pkg/timeconv"
)

type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Inspector InspectorConfig `yaml:"inspector"`
	Validator ValidatorConfig `yaml:"validator"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// InspectorConfig bounds how much of a document analyze-json prints.
type InspectorConfig struct {
	MaxDepth       int `yaml:"max_depth"`
	MaxKeys        int `yaml:"max_keys"`
	MaxGroups      int `yaml:"max_groups"`
	MaxTournaments int `yaml:"max_tournaments"` // per group
	MaxEvents      int `yaml:"max_events"`
	MaxStatItems   int `yaml:"max_stat_items"` // per statistics group
}

type ValidatorConfig struct {
	UTCOffsetHours int      `yaml:"utc_offset_hours"`
	MaxRows        int      `yaml:"max_rows"`
	MaxFindings    int      `yaml:"max_findings"`
	Tournaments    []string `yaml:"tournaments"` // enabled slugs; empty means all
	Cases          []Case   `yaml:"cases"`
}

// Case is one fixture file replayed against a target local date.
type Case struct {
	File string `yaml:"file"`
	Date string `yaml:"date"` // YYYY-MM-DD
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Inspector: InspectorConfig{
			MaxDepth:       3,
			MaxKeys:        10,
			MaxGroups:      3,
			MaxTournaments: 2,
			MaxEvents:      3,
			MaxStatItems:   5,
		},
		Validator: ValidatorConfig{
			UTCOffsetHours: 1,
			MaxRows:        10,
			MaxFindings:    10,
			Cases: []Case{
				{File: "json/2025-12-13.json", Date: "2025-12-13"},
				{File: "json/2025-12-14.json", Date: "2025-12-14"},
				{File: "json/2025-12-15.json", Date: "2025-12-15"},
				// yesterday relative to the first fixture
				{File: "json/2025-12-13.json", Date: "2025-12-12"},
			},
		},
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

// LoadOrDefault loads configPath, or returns Default when the path is empty.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}
	return Load(configPath)
}

func (c *Config) Validate() error {
	var errs []error

	limits := []struct {
		name  string
		value int
	}{
		{"inspector.max_depth", c.Inspector.MaxDepth},
		{"inspector.max_keys", c.Inspector.MaxKeys},
		{"inspector.max_groups", c.Inspector.MaxGroups},
		{"inspector.max_tournaments", c.Inspector.MaxTournaments},
		{"inspector.max_events", c.Inspector.MaxEvents},
		{"inspector.max_stat_items", c.Inspector.MaxStatItems},
		{"validator.max_rows", c.Validator.MaxRows},
		{"validator.max_findings", c.Validator.MaxFindings},
	}
	for _, l := range limits {
		if l.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", l.name, l.value))
		}
	}

	for i, cs := range c.Validator.Cases {
		if cs.File == "" {
			errs = append(errs, fmt.Errorf("validator.cases[%d]: file is required", i))
		}
		if _, err := timeconv.ParseDate(cs.Date); err != nil {
			errs = append(errs, fmt.Errorf("validator.cases[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}
