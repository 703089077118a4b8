// SPDX-License-Identifier: MIT
// Package: rmmcurve/config
//
// config.go — YAML run configuration with defaults and validation.
//
// Load decodes over Default(), so a file only needs the keys it changes.

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rmmcurve/render"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Display mode names accepted in YAML.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// Config is the full run configuration.
type Config struct {
	OutputDir string   `yaml:"output_dir"`
	Format    string   `yaml:"format"`
	FailFast  bool     `yaml:"fail_fast"`
	Figures   []string `yaml:"figures,omitempty"`

	Display DisplayConfig `yaml:"display"`
	CSV     CSVConfig     `yaml:"csv"`
	Bridge  BridgeConfig  `yaml:"bridge"`
	GBM     GBMConfig     `yaml:"gbm"`
}

// DisplayConfig selects the page scheme.
type DisplayConfig struct {
	Mode        string `yaml:"mode"`
	Transparent bool   `yaml:"transparent"`
}

// CSVConfig names the price file of the csv-prices figure. An empty Column
// reads the first column.
type CSVConfig struct {
	Path   string `yaml:"path"`
	Column string `yaml:"column"`
}

// BridgeConfig drives the brownian-bridge figure: one path per seed.
type BridgeConfig struct {
	StartPrice float64  `yaml:"start_price"`
	EndPrice   float64  `yaml:"end_price"`
	Steps      int      `yaml:"steps"`
	Seeds      []uint64 `yaml:"seeds"`
}

// GBMConfig drives the gbm-prices figure.
type GBMConfig struct {
	StartPrice float64 `yaml:"start_price"`
	Drift      float64 `yaml:"drift"`
	Volatility float64 `yaml:"volatility"`
	Steps      int     `yaml:"steps"`
	Candle     int     `yaml:"candle"`
	Seed       uint64  `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir: "figures",
		Format:    "png",
		Display: DisplayConfig{
			Mode: ModeLight,
		},
		CSV: CSVConfig{
			Path:   "test_prices.csv",
			Column: "liquid_exchange_prices",
		},
		Bridge: BridgeConfig{
			StartPrice: 1500,
			EndPrice:   1750,
			Steps:      1000,
			Seeds:      []uint64{4, 33},
		},
		GBM: GBMConfig{
			StartPrice: 100,
			Drift:      0.05,
			Volatility: 0.4,
			Steps:      1000,
			Candle:     25,
			Seed:       7,
		},
	}
}

// Load reads path and decodes it over Default(). An empty path returns the
// defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	d, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	return Parse(d)
}

// Parse decodes YAML bytes over Default() and validates the result.
func Parse(d []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every field that has a restricted domain.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return invalid("output_dir is empty")
	}
	if _, err := render.NormalizeFormat(c.Format); err != nil {
		return invalid("format: %v", err)
	}
	if _, err := c.RenderDisplay(); err != nil {
		return err
	}
	if !positive(c.Bridge.StartPrice) || !positive(c.Bridge.EndPrice) {
		return invalid("bridge prices must be finite and > 0, got %v → %v", c.Bridge.StartPrice, c.Bridge.EndPrice)
	}
	if c.Bridge.Steps < 2 {
		return invalid("bridge.steps=%d, need >= 2", c.Bridge.Steps)
	}
	if len(c.Bridge.Seeds) == 0 {
		return invalid("bridge.seeds is empty")
	}
	if !positive(c.GBM.StartPrice) || !positive(c.GBM.Volatility) {
		return invalid("gbm start_price and volatility must be finite and > 0")
	}
	if math.IsNaN(c.GBM.Drift) || math.IsInf(c.GBM.Drift, 0) {
		return invalid("gbm.drift=%v", c.GBM.Drift)
	}
	if c.GBM.Steps < 2 || c.GBM.Candle < 1 {
		return invalid("gbm steps=%d candle=%d", c.GBM.Steps, c.GBM.Candle)
	}

	return nil
}

// RenderDisplay maps the display section onto render.Display.
func (c Config) RenderDisplay() (render.Display, error) {
	d := render.Display{Transparent: c.Display.Transparent}
	switch strings.ToLower(strings.TrimSpace(c.Display.Mode)) {
	case ModeLight, "":
		d.Mode = render.LightMode
	case ModeDark:
		d.Mode = render.DarkMode
	default:
		return render.Display{}, invalid("display.mode=%q, want %q or %q", c.Display.Mode, ModeLight, ModeDark)
	}

	return d, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}
