package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/game/grid"
)

// EnvPath overrides the config file location.
const EnvPath = "SKIRMISH_CONFIG"

// DefaultPath is used when EnvPath is unset.
const DefaultPath = "config/battlesim.yaml"

// Simulator holds all configuration for the battle simulator.
type Simulator struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Grid
	TroopsPerLine int `yaml:"troops_per_line"`
	ReserveLines  int `yaml:"reserve_lines"`

	// Inputs; empty paths use the built-in data
	CatalogPath  string `yaml:"catalog_path"`
	ScenarioPath string `yaml:"scenario_path"`

	// Execution
	Workers int           `yaml:"workers"` // battles run concurrently
	Timeout time.Duration `yaml:"timeout"` // whole run deadline, 0 = none

	// Journal
	JournalEnabled bool           `yaml:"journal_enabled"`
	Database       DatabaseConfig `yaml:"database"`
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel:      "info",
		TroopsPerLine: grid.DefaultTroopsPerLine,
		ReserveLines:  1,
		Workers:       4,
		Timeout:       30 * time.Second,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "skirmish",
			Password: "skirmish",
			DBName:   "skirmish",
			SSLMode:  "disable",
		},
	}
}

// Layout returns the grid layout described by the config.
func (s Simulator) Layout() grid.Layout {
	return grid.Layout{TroopsPerLine: s.TroopsPerLine}
}

// Validate checks value ranges.
func (s Simulator) Validate() error {
	var errs []error
	if s.TroopsPerLine < 1 {
		errs = append(errs, fmt.Errorf("troops_per_line must be positive, got %d", s.TroopsPerLine))
	}
	if s.ReserveLines < 0 {
		errs = append(errs, fmt.Errorf("reserve_lines must not be negative, got %d", s.ReserveLines))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", s.Workers))
	}
	if s.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", s.Timeout))
	}
	return errors.Join(errs...)
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the config path from the environment or the default.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}
