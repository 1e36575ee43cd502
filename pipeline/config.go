// Package pipeline defines the batch configuration document and its loader.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lexipath/lexipath/curator"
	"github.com/lexipath/lexipath/schedule"
)

// ErrConfig indicates an unusable pipeline configuration.
var ErrConfig = errors.New("pipeline: invalid config")

// CurationConfig mirrors curator.Config in YAML form.
type CurationConfig struct {
	MinLength       int     `yaml:"min_length"`
	MaxLength       int     `yaml:"max_length"`
	MinDegree       int     `yaml:"min_degree"`
	MinTSNEDistance float64 `yaml:"min_tsne_distance"`
	SolverBudget    int     `yaml:"solver_budget"`
}

// Config is the YAML document driving one curation run.
type Config struct {
	// Input paths. Definitions and Frequencies are optional.
	GraphPath       string `yaml:"graph"`
	DefinitionsPath string `yaml:"definitions"`
	FrequenciesPath string `yaml:"frequencies"`
	CandidatesPath  string `yaml:"candidates"`

	// Output paths. FrequencyOutputPath is optional.
	LedgerPath          string `yaml:"ledger"`
	FrequencyOutputPath string `yaml:"frequency_output"`

	// Ledger header fields.
	Version     string `yaml:"version"`
	Description string `yaml:"description"`

	// Schedule span: Count consecutive days starting at StartDate
	// (ISO calendar date).
	StartDate string `yaml:"start_date"`
	Count     int    `yaml:"count"`

	// Workers bounds the solver pool; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	Curation CurationConfig `yaml:"curation"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields and the schedule span.
func (c *Config) Validate() error {
	switch {
	case c.GraphPath == "":
		return fmt.Errorf("%w: graph path is required", ErrConfig)
	case c.CandidatesPath == "":
		return fmt.Errorf("%w: candidates path is required", ErrConfig)
	case c.LedgerPath == "":
		return fmt.Errorf("%w: ledger path is required", ErrConfig)
	case c.Count <= 0:
		return fmt.Errorf("%w: count must be positive (%d)", ErrConfig, c.Count)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrConfig, c.Workers)
	}
	if _, err := c.Start(); err != nil {
		return fmt.Errorf("%w: start_date: %v", ErrConfig, err)
	}

	return nil
}

// Start parses the configured start date.
func (c *Config) Start() (time.Time, error) {
	return time.Parse(schedule.DateFormat, c.StartDate)
}

// CuratorConfig maps the YAML block onto curator.Config, falling back to
// the curator defaults for an all-zero block.
func (c *Config) CuratorConfig() curator.Config {
	cc := c.Curation
	if cc == (CurationConfig{}) {
		return curator.DefaultConfig()
	}

	return curator.Config{
		MinLength:       cc.MinLength,
		MaxLength:       cc.MaxLength,
		MinDegree:       cc.MinDegree,
		MinTSNEDistance: cc.MinTSNEDistance,
		SolverBudget:    cc.SolverBudget,
	}
}
