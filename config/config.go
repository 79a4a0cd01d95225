// Package config provides configuration loading and access for the grid
// detector and the flow simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all detector and simulator configuration parameters.
type Config struct {
	Detection  DetectionConfig  `yaml:"detection"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// DetectionConfig holds the thresholds used by the grid detector, cell
// classifier and BRIEF matcher.
type DetectionConfig struct {
	DetectThreshold  int `yaml:"detect_threshold"`   // max Hamming distance accepted as an icon match
	GridSensitivity  int `yaml:"grid_sensitivity"`   // uniform grid run expansion/verification tolerance
	SpikeThreshold   int `yaml:"spike_threshold"`    // flex grid dip detection tolerance
	InitialSeekSize  int `yaml:"initial_seek_size"`  // samples required before a uniform grid candidate is considered
	WallFactorUniform int `yaml:"wall_factor_uniform"` // K factor, uniform grid wall SAD test
	WallFactorFlex   int `yaml:"wall_factor_flex"`   // K factor, flex grid wall SAD test
	PassUniformSpread int `yaml:"pass_uniform_spread"` // max-min threshold for "Pass with no mark"
	IconSpreadUniform int `yaml:"icon_spread_uniform"` // max-min threshold to attempt icon match, uniform grid
}

// SimulationConfig holds the flow stepper's tunables.
type SimulationConfig struct {
	JumpProbability    float64 `yaml:"jump_probability"`     // probability mass routed to the 2-cell jump branch
	JumpMinMoveCount   int     `yaml:"jump_min_move_count"`  // move_count at which jumpy mode activates
	EntranceAbsorbTick int     `yaml:"entrance_absorb_tick"` // move_count at which the entrance starts absorbing
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
