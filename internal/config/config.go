package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pendplot/internal/render"
	"github.com/san-kum/pendplot/internal/trajectory"
)

const (
	DefaultFEPath    = "./data_fe.csv"
	DefaultMEPath    = "./data_me.csv"
	DefaultRK4Path   = "./data_rk4.csv"
	DefaultFormat    = "term"
	DefaultOutDir    = "plots"
	DefaultWidth     = 16.0
	DefaultHeight    = 5.0
	DefaultTermWidth = 80
	DefaultTermRows  = 12
	DefaultTolerance = 1e-9
	DefaultMass      = 1.0
	DefaultLength    = 1.0
	DefaultGravity   = 9.81
)

// Grid check modes.
const (
	GridWarn   = "warn"
	GridStrict = "strict"
	GridOff    = "off"
)

type Config struct {
	Inputs    InputsConfig   `yaml:"inputs"`
	Reference string         `yaml:"reference"`
	Output    OutputConfig   `yaml:"output"`
	Terminal  TerminalConfig `yaml:"terminal"`
	Grid      GridConfig     `yaml:"grid"`
	Pendulum  PendulumConfig `yaml:"pendulum"`
	Verbose   bool           `yaml:"verbose"`
}

// InputsConfig maps each method to its CSV file. An empty path skips the method.
type InputsConfig struct {
	FE  string `yaml:"fe"`
	ME  string `yaml:"me"`
	RK4 string `yaml:"rk4"`
}

// OutputConfig selects the backend. Width and Height are inches and only
// apply to file formats.
type OutputConfig struct {
	Format string  `yaml:"format"`
	Dir    string  `yaml:"dir"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type TerminalConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type GridConfig struct {
	Check     string  `yaml:"check"`
	Tolerance float64 `yaml:"tolerance"`
}

// PendulumConfig describes the simulated pendulum for energy reporting.
type PendulumConfig struct {
	Mass    float64 `yaml:"mass"`
	Length  float64 `yaml:"length"`
	Gravity float64 `yaml:"gravity"`
}

func DefaultConfig() *Config {
	return &Config{
		Inputs: InputsConfig{
			FE:  DefaultFEPath,
			ME:  DefaultMEPath,
			RK4: DefaultRK4Path,
		},
		Reference: string(trajectory.RK4),
		Output: OutputConfig{
			Format: DefaultFormat,
			Dir:    DefaultOutDir,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Terminal: TerminalConfig{
			Width:  DefaultTermWidth,
			Height: DefaultTermRows,
		},
		Grid: GridConfig{
			Check:     GridWarn,
			Tolerance: DefaultTolerance,
		},
		Pendulum: PendulumConfig{
			Mass:    DefaultMass,
			Length:  DefaultLength,
			Gravity: DefaultGravity,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Validate(cfg *Config) error {
	if len(cfg.InputList()) == 0 {
		return errors.New("inputs: at least one input file is required")
	}
	if _, err := trajectory.ParseMethod(cfg.Reference); err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	if cfg.Output.Format != "term" && !render.IsFileFormat(cfg.Output.Format) {
		return fmt.Errorf("output.format: %q is not one of term, %v", cfg.Output.Format, render.FileFormats)
	}
	if cfg.Output.Width <= 0 || cfg.Output.Height <= 0 {
		return fmt.Errorf("output: width and height must be positive, got %gx%g", cfg.Output.Width, cfg.Output.Height)
	}
	if cfg.Terminal.Width < 10 || cfg.Terminal.Height < 3 {
		return fmt.Errorf("terminal: need at least 10x3 cells, got %dx%d", cfg.Terminal.Width, cfg.Terminal.Height)
	}
	if !slices.Contains([]string{GridWarn, GridStrict, GridOff}, cfg.Grid.Check) {
		return fmt.Errorf("grid.check: %q is not one of warn, strict, off", cfg.Grid.Check)
	}
	if cfg.Grid.Tolerance < 0 {
		return fmt.Errorf("grid.tolerance: must not be negative, got %g", cfg.Grid.Tolerance)
	}
	if cfg.Pendulum.Mass <= 0 || cfg.Pendulum.Length <= 0 {
		return fmt.Errorf("pendulum: mass and length must be positive, got %g and %g", cfg.Pendulum.Mass, cfg.Pendulum.Length)
	}
	return nil
}

// InputList returns the configured inputs in FE, ME, RK4 order, skipping
// methods without a path.
func (c *Config) InputList() []trajectory.Input {
	all := []trajectory.Input{
		{Method: trajectory.FE, Path: c.Inputs.FE},
		{Method: trajectory.ME, Path: c.Inputs.ME},
		{Method: trajectory.RK4, Path: c.Inputs.RK4},
	}
	out := make([]trajectory.Input, 0, len(all))
	for _, in := range all {
		if in.Path != "" {
			out = append(out, in)
		}
	}
	return out
}

// ReferenceMethod assumes the config has been validated.
func (c *Config) ReferenceMethod() trajectory.Method {
	m, _ := trajectory.ParseMethod(c.Reference)
	return m
}

func (c *Config) IsTerminal() bool {
	return c.Output.Format == "term"
}
