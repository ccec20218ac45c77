// Package config loads the chart settings of the pcharts tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/etnz/chartdata"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Chart struct {
		DefaultWindowDays       int `yaml:"default_window_days"`
		DecimationThresholdDays int `yaml:"decimation_threshold_days"`
		CoarseDecimation        int `yaml:"coarse_decimation"`
	} `yaml:"chart"`
	// Currency used to format values in reports, empty for plain numbers.
	Currency string `yaml:"currency"`
}

// Environment variables overriding the configuration file.
const (
	EnvDefaultWindowDays       = "CHARTDATA_DEFAULT_WINDOW_DAYS"
	EnvDecimationThresholdDays = "CHARTDATA_DECIMATION_THRESHOLD_DAYS"
	EnvCoarseDecimation        = "CHARTDATA_COARSE_DECIMATION"
	EnvCurrency                = "CHARTDATA_CURRENCY"
)

// Load reads config from a YAML file, then applies environment variable overrides,
// then the defaults.
//
// A missing file is not an error. If envFile is not empty, it is a .env file
// loaded into the environment first, variables already set take precedence.
func Load(path, envFile string) (*Config, error) {
	cfg := &Config{}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read env file: %w", err)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	for name, field := range map[string]*int{
		EnvDefaultWindowDays:       &cfg.Chart.DefaultWindowDays,
		EnvDecimationThresholdDays: &cfg.Chart.DecimationThresholdDays,
		EnvCoarseDecimation:        &cfg.Chart.CoarseDecimation,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s=%q: %w", name, v, err)
		}
		*field = n
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Currency = v
	}

	// Defaults
	if cfg.Chart.DefaultWindowDays == 0 {
		cfg.Chart.DefaultWindowDays = chartdata.DefaultWindowDays
	}
	if cfg.Chart.DecimationThresholdDays == 0 {
		cfg.Chart.DecimationThresholdDays = chartdata.DecimationThresholdDays
	}
	if cfg.Chart.CoarseDecimation == 0 {
		cfg.Chart.CoarseDecimation = chartdata.CoarseDecimation
	}

	return cfg, nil
}

// Validate checks that the chart settings are usable.
func (c *Config) Validate() error {
	if c.Chart.DefaultWindowDays <= 0 {
		return fmt.Errorf("chart.default_window_days must be positive")
	}
	if c.Chart.DecimationThresholdDays <= 0 {
		return fmt.Errorf("chart.decimation_threshold_days must be positive")
	}
	if c.Chart.CoarseDecimation <= 0 {
		return fmt.Errorf("chart.coarse_decimation must be positive")
	}
	return nil
}

// Settings returns the chart settings of the configuration.
func (c *Config) Settings() chartdata.Settings {
	return chartdata.Settings{
		DefaultWindowDays:       c.Chart.DefaultWindowDays,
		DecimationThresholdDays: c.Chart.DecimationThresholdDays,
		CoarseDecimation:        c.Chart.CoarseDecimation,
	}
}
