package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"option-surface/internal/model"
)

// Config is the on-disk configuration shape (YAML).
//
// It carries the default scalar inputs and default heatmap axes the UI
// starts from. The pricing engine and grid builder never read it; defaults
// are resolved at the boundary and passed in as plain values, keeping the
// core stateless.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// DefaultsConfig holds the base inputs and the two default sweep axes.
type DefaultsConfig struct {
	Inputs InputsConfig `yaml:"inputs"`
	XAxis  AxisConfig   `yaml:"x_axis"`
	YAxis  AxisConfig   `yaml:"y_axis"`
}

type InputsConfig struct {
	Spot           float64 `yaml:"spot"`
	Strike         float64 `yaml:"strike"`
	TimeToMaturity float64 `yaml:"time_to_maturity"`
	RiskFreeRate   float64 `yaml:"risk_free_rate"`
	Volatility     float64 `yaml:"volatility"`
}

type AxisConfig struct {
	Parameter string  `yaml:"parameter"`
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Steps     int     `yaml:"steps"`
}

// Default returns the built-in configuration: an at-the-money one-year
// option (spot 100, strike 100, r 5%, vol 20%) swept over spot 80..120 and
// volatility 0.10..0.30 on a 10x10 grid.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Defaults: DefaultsConfig{
			Inputs: InputsConfig{
				Spot:           100,
				Strike:         100,
				TimeToMaturity: 1,
				RiskFreeRate:   0.05,
				Volatility:     0.20,
			},
			XAxis: AxisConfig{Parameter: string(model.ParameterSpot), Min: 80, Max: 120, Steps: 10},
			YAxis: AxisConfig{Parameter: string(model.ParameterVolatility), Min: 0.10, Max: 0.30, Steps: 10},
		},
	}
}

// Load reads YAML from path, overlays it onto the built-in defaults, and
// validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	c := Default()
	mergeConfig(c, &file)
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	inputs := c.Defaults.Inputs.ToModel()
	if err := inputs.Validate(); err != nil {
		return fmt.Errorf("defaults.inputs invalid: %w", err)
	}
	axisX, err := c.Defaults.XAxis.ToModel()
	if err != nil {
		return fmt.Errorf("defaults.x_axis invalid: %w", err)
	}
	axisY, err := c.Defaults.YAxis.ToModel()
	if err != nil {
		return fmt.Errorf("defaults.y_axis invalid: %w", err)
	}
	if err := axisX.Validate(); err != nil {
		return fmt.Errorf("defaults.x_axis invalid: %w", err)
	}
	if err := axisY.Validate(); err != nil {
		return fmt.Errorf("defaults.y_axis invalid: %w", err)
	}
	if axisX.Parameter == axisY.Parameter {
		return fmt.Errorf("defaults axes invalid: %w: both sweep %s", model.ErrInvalidAxisPair, axisX.Parameter)
	}
	return nil
}

func (i InputsConfig) ToModel() model.PricingInputs {
	return model.PricingInputs{
		Spot:           i.Spot,
		Strike:         i.Strike,
		TimeToMaturity: i.TimeToMaturity,
		RiskFreeRate:   i.RiskFreeRate,
		Volatility:     i.Volatility,
	}
}

func (a AxisConfig) ToModel() (model.AxisSpec, error) {
	p, err := model.ParseParameter(a.Parameter)
	if err != nil {
		return model.AxisSpec{}, err
	}
	return model.AxisSpec{Parameter: p, Min: a.Min, Max: a.Max, Steps: a.Steps}, nil
}

// mergeConfig overlays non-zero fields from override onto base.
func mergeConfig(base, override *Config) {
	if override.Server.Port != "" {
		base.Server.Port = override.Server.Port
	}
	mergeInputs(&base.Defaults.Inputs, override.Defaults.Inputs)
	mergeAxis(&base.Defaults.XAxis, override.Defaults.XAxis)
	mergeAxis(&base.Defaults.YAxis, override.Defaults.YAxis)
}

func mergeInputs(base *InputsConfig, override InputsConfig) {
	if override.Spot != 0 {
		base.Spot = override.Spot
	}
	if override.Strike != 0 {
		base.Strike = override.Strike
	}
	if override.TimeToMaturity != 0 {
		base.TimeToMaturity = override.TimeToMaturity
	}
	if override.RiskFreeRate != 0 {
		base.RiskFreeRate = override.RiskFreeRate
	}
	if override.Volatility != 0 {
		base.Volatility = override.Volatility
	}
}

func mergeAxis(base *AxisConfig, override AxisConfig) {
	if override.Parameter != "" {
		base.Parameter = override.Parameter
	}
	if override.Min != 0 {
		base.Min = override.Min
	}
	if override.Max != 0 {
		base.Max = override.Max
	}
	if override.Steps != 0 {
		base.Steps = override.Steps
	}
}
