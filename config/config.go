// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

// SearchConfig is settings for the beam search itself
type SearchConfig struct {
	// the number of top-scoring partial sequences kept at each step
	BeamWidth int `mapstructure:"beam-width"`

	// goroutines used to expand and score candidates within a step,
	// 1 for fully serial evaluation
	Workers int `mapstructure:"workers"`
}

// ConstraintConfig is settings for the sequence-design constraints
type ConstraintConfig struct {
	// whether to reject candidates that repeat a 6-nt window
	UniqueSixmers bool `mapstructure:"unique-sixmers"`

	// whether to bound single-base run lengths
	Homopolymer bool `mapstructure:"homopolymer"`

	// the longest allowed run of one nucleotide
	HomopolymerMax int `mapstructure:"homopolymer-max"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line
type Config struct {
	// log extra information to stderr during a search
	Verbose bool `mapstructure:"verbose"`

	// Search settings
	Search SearchConfig `mapstructure:"search"`

	// Constraint settings
	Constraints ConstraintConfig `mapstructure:"constraints"`
}

// SetDefaults registers the default settings with Viper. Called once at
// startup, before any config file or flags are read over them.
func SetDefaults() {
	viper.SetDefault("search.beam-width", 100)
	viper.SetDefault("search.workers", runtime.NumCPU())
	viper.SetDefault("constraints.unique-sixmers", true)
	viper.SetDefault("constraints.homopolymer", true)
	viper.SetDefault("constraints.homopolymer-max", 3)
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments
func New() (*Config, error) {
	SetDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	// workers <= 0 means "use every CPU"
	if c.Search.Workers < 1 {
		c.Search.Workers = runtime.NumCPU()
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the settings an optimization run depends on.
func (c *Config) Validate() error {
	if c.Search.BeamWidth < 1 {
		return fmt.Errorf("beam-width must be a positive integer, got %d", c.Search.BeamWidth)
	}
if c.Constraints.Homopolymer && c.Constraints.HomopolymerMax < 1 {
		return fmt.Errorf("homopolymer-max must be a positive integer, got %d", c.Constraints.HomopolymerMax)
	}
	return nil
}
