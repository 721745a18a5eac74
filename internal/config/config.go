package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Epochs       int     `yaml:"epochs"`
	BatchSize    int     `yaml:"batch_size"`
	HiddenUnits  int     `yaml:"hidden_units"`
	LearningRate float64 `yaml:"learning_rate"`
	Seed         int64   `yaml:"seed"`
	Shuffle      bool    `yaml:"shuffle"`
	LogEvery     int     `yaml:"log_every"`
	LogLevel     string  `yaml:"log_level"`
	LogFile      string  `yaml:"log_file"`
	PeoplePath   string  `yaml:"people_path"`
	AgeMin       float64 `yaml:"age_min"`
	AgeMax       float64 `yaml:"age_max"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Epochs     int
	Seed       int64
	LogLevel   string
	PeoplePath string
}

// Default returns the configuration of the reference run.
func Default() *Config {
	return &Config{
		Epochs:       100,
		BatchSize:    32,
		HiddenUnits:  80,
		LearningRate: 0.001,
		Shuffle:      true,
		LogEvery:     10,
		LogLevel:     "INFO",
		AgeMin:       25,
		AgeMax:       40,
	}
}

// Load reads and validates a Config from YAML. Keys missing from the file
// keep their Default value; an empty path yields Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogLevel != "" {
		c.LogLevel = strings.ToUpper(o.LogLevel)
	}
	if o.PeoplePath != "" {
		c.PeoplePath = o.PeoplePath
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	if c.HiddenUnits <= 0 {
		return fmt.Errorf("hidden_units must be > 0 (got %d)", c.HiddenUnits)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be > 0 (got %g)", c.LearningRate)
	}
	if c.AgeMax <= c.AgeMin {
		return fmt.Errorf("age_max must be > age_min (got %g..%g)", c.AgeMin, c.AgeMax)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 10
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	return nil
}
