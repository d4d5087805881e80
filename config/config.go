/*
File    : apscript/config/config.go
Package : config
*/

// Package config loads apscript's YAML-backed configuration: the RNG
// seed, per-session step budget, and whether CLI output is colorized.
// Grounded on the teacher's dependency closure — yaml.v3 previously only
// arrived transitively via testify; this package exercises it directly,
// the way a real CLI-config file would.
package config

import (
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Config holds the interpreter settings a host (the cli package, or an
// embedder) reads before constructing an eval.Evaluator.
type Config struct {
	// Seed fixes RANDOM's source. Zero means "leave the Evaluator's
	// own default in place" (not a literal seed of zero).
	Seed int64 `yaml:"seed"`
	// StepBudget bounds evaluation (see eval.Evaluator.MaxSteps). Zero
	// means unbounded.
	StepBudget int `yaml:"step_budget"`
	// Color enables ANSI coloring in rendered diagnostics and REPL
	// output. Defaults to true.
	Color bool `yaml:"color"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Seed: 0, StepBudget: 0, Color: true}
}

// Load reads and parses a YAML configuration file at path, starting from
// Default() so a file that only sets one field leaves the others at
// their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply pushes Color onto the package-level fatih/color switch that
// diag.Render and replpkg's coloring both read from.
func (c *Config) Apply() {
	color.NoColor = !c.Color
}
