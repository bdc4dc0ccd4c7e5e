// Package config resolves viewer settings from defaults, environment and flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/orbital/orbital"
)

const (
	envPrefix      = "ORBITAL_"
	defaultEnvFile = ".env"
)

var ErrPanel = errors.New("unknown panel")

// Panels in viewer cycle order
var Panels = []string{"profile", "section", "projected"}

// Config holds the resolved settings
// Precedence: defaults < environment (.env file included) < flags
type Config struct {
	N, L, M int
	Density bool
	Panel   string

	Workers int
	Width   int
	Height  int

	Debug       bool
	Mute        bool
	MetricsAddr string
}

func Default() *Config {
	return &Config{
		N:       1,
		Panel:   "section",
		Width:   72,
		Height:  36,
		Workers: 0,
	}
}

// Load builds a Config for the program named name from args (without the program name)
// The .env file named by ORBITAL_ENV_FILE, or ./.env, is loaded when present;
// variables already set in the environment win over the file
func Load(name string, args []string) (*Config, error) {
	envFile := os.Getenv(envPrefix + "ENV_FILE")
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}

	cfg := Default()
	cfg.applyEnv()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.N, "n", cfg.N, "principal quantum number")
	fs.IntVar(&cfg.L, "l", cfg.L, "orbital quantum number")
	fs.IntVar(&cfg.M, "m", cfg.M, "magnetic quantum number")
	fs.BoolVar(&cfg.Density, "density", cfg.Density, "plot |Ψ|² instead of the radial probability")
	fs.StringVar(&cfg.Panel, "panel", cfg.Panel, "initial panel: profile, section, projected")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "sampling goroutines, 0 for GOMAXPROCS")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "static output width in columns")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "static output height in rows")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write logs to logs/")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable audio cues")
	fs.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "serve Prometheus metrics on this address")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// QuantumNumbers returns the configured state
func (c *Config) QuantumNumbers() (orbital.QuantumNumbers, error) {
	return orbital.NewQuantumNumbers(c.N, c.L, c.M)
}

// PanelIndex returns the position of Panel in Panels
func (c *Config) PanelIndex() int {
	for i, p := range Panels {
		if p == c.Panel {
			return i
		}
	}
	return -1
}

func (c *Config) Validate() error {
	if _, err := c.QuantumNumbers(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.PanelIndex() < 0 {
		return fmt.Errorf("config: %q: %w", c.Panel, ErrPanel)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: size %dx%d: %w", c.Width, c.Height, orbital.ErrDimensions)
	}
	if c.Workers < 0 {
		c.Workers = 0
	}
	return nil
}

// applyEnv overrides fields from ORBITAL_* variables; unparsable values are ignored
func (c *Config) applyEnv() {
	envInt(&c.N, "N")
	envInt(&c.L, "L")
	envInt(&c.M, "M")
	envBool(&c.Density, "DENSITY")
	envString(&c.Panel, "PANEL")
	envInt(&c.Workers, "WORKERS")
	envInt(&c.Width, "WIDTH")
	envInt(&c.Height, "HEIGHT")
	envBool(&c.Debug, "DEBUG")
	envBool(&c.Mute, "MUTE")
	envString(&c.MetricsAddr, "METRICS_ADDR")
}

func envInt(dst *int, key string) {
	if s := os.Getenv(envPrefix + key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			*dst = v
		}
	}
}

func envBool(dst *bool, key string) {
	if s := os.Getenv(envPrefix + key); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			*dst = v
		}
	}
}

func envString(dst *string, key string) {
	if s := os.Getenv(envPrefix + key); s != "" {
		*dst = s
	}
}
