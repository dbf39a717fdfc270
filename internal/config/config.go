// Package config loads the cardeval HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/cardeval/poker"
)

// DefaultFile is the config file read when no path is given.
const DefaultFile = "cardeval.hcl"

// Config is the complete configuration.
//
//	log_level = "info"
//	format    = "upper"
//
//	census {
//	  cards   = 5
//	  workers = 8
//	}
//
//	odds {
//	  iterations = 100000
//	  workers    = 4
//	}
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Format   string        `hcl:"format,optional"`
	Census   *CensusConfig `hcl:"census,block"`
	Odds     *OddsConfig   `hcl:"odds,block"`
}

// CensusConfig holds defaults for the census command.
type CensusConfig struct {
	Cards   int `hcl:"cards,optional"`
	Workers int `hcl:"workers,optional"`
}

// OddsConfig holds defaults for the odds command.
type OddsConfig struct {
	Iterations int `hcl:"iterations,optional"`
	Workers    int `hcl:"workers,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads filename. A missing file is not an error; the defaults are
// returned instead.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, fills in defaults and validates the result.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %w", diags)
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %w", diags)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Format == "" {
		c.Format = poker.UpperLetters.String()
	}
	if c.Census == nil {
		c.Census = &CensusConfig{}
	}
	if c.Census.Cards == 0 {
		c.Census.Cards = 5
	}
	if c.Odds == nil {
		c.Odds = &OddsConfig{}
	}
	if c.Odds.Iterations == 0 {
		c.Odds.Iterations = 100000
	}
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if _, err := poker.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Census.Cards != 5 && c.Census.Cards != 7 {
		return fmt.Errorf("census: cards must be 5 or 7, got %d", c.Census.Cards)
	}
	if c.Census.Workers < 0 {
		return fmt.Errorf("census: workers must not be negative")
	}
	if c.Odds.Iterations < 0 {
		return fmt.Errorf("odds: iterations must be positive")
	}
	if c.Odds.Workers < 0 {
		return fmt.Errorf("odds: workers must not be negative")
	}
	return nil
}

// CardFormat returns the configured card format.
func (c *Config) CardFormat() poker.Format {
	f, err := poker.ParseFormat(c.Format)
	if err != nil {
		return poker.UpperLetters
	}
	return f
}
