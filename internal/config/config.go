package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/astrosim/internal/orbit"
)

const (
	DefaultA       = 1.0
	DefaultE       = 0.5
	DefaultPeriod  = 1.0
	DefaultSteps   = 180
	DefaultFPS     = 30
	DefaultDataDir = ".astrosim"
	DefaultTheme   = "cyberpunk"
)

type Config struct {
	Body    string  `yaml:"body"`
	A       float64 `yaml:"a"`
	E       float64 `yaml:"e"`
	Period  float64 `yaml:"period"`
	Steps   int     `yaml:"steps" env:"ASTROSIM_STEPS"`
	Timing  string  `yaml:"timing" env:"ASTROSIM_TIMING"`
	Workers int     `yaml:"workers" env:"ASTROSIM_WORKERS"`
	FPS     int     `yaml:"fps" env:"ASTROSIM_FPS"`
	Theme   string  `yaml:"theme" env:"ASTROSIM_THEME"`
	DataDir string  `yaml:"data_dir" env:"ASTROSIM_DATA_DIR"`
}

// ErrInvalidBody rejects body names that are not a single path element;
// run directories are named after the body.
var ErrInvalidBody = errors.New("config: body must be a plain name without path separators")

func DefaultConfig() *Config {
	return &Config{
		Body:    "custom",
		A:       DefaultA,
		E:       DefaultE,
		Period:  DefaultPeriod,
		Steps:   DefaultSteps,
		Timing:  orbit.TimingUniform.String(),
		Workers: 1,
		FPS:     DefaultFPS,
		Theme:   DefaultTheme,
		DataDir: DefaultDataDir,
	}
}

// Load reads a yaml file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Merge(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge reads a yaml file over cfg, replacing only the keys the file sets.
func Merge(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params returns the orbital elements of the configuration.
func (c *Config) Params() orbit.Params {
	return orbit.Params{A: c.A, E: c.E, T: c.Period}
}

// Options returns the generation options, rejecting unknown timing names.
func (c *Config) Options() (orbit.Options, error) {
	timing, ok := orbit.ParseTiming(c.Timing)
	if !ok {
		return orbit.Options{}, fmt.Errorf("unknown timing: %s (available: uniform, kepler)", c.Timing)
	}
	return orbit.Options{Timing: timing, Workers: c.Workers}, nil
}

// Validate checks the orbit and the presentation settings.
func (c *Config) Validate() error {
	if err := validateBody(c.Body); err != nil {
		return err
	}
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Steps < 1 {
		return &orbit.ParamError{Field: "steps", Value: float64(c.Steps), Wrapped: orbit.ErrInvalidStepCount}
	}
	if _, err := c.Options(); err != nil {
		return err
	}
	if c.FPS < 1 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}

func validateBody(name string) error {
	if name == "" || name == "." || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidBody, name)
	}
	return nil
}
