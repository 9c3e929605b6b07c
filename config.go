// Copyright 2026 The homewatt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// Storage
	DataPath string `yaml:"data_path"` // CSV table of daily records

	// Cost settings
	RatePerKWH     float64 `yaml:"rate_per_kwh"`
	CurrencySymbol string  `yaml:"currency_symbol"`

	// Entry defaults
	DefaultHomeType string `yaml:"default_home_type"`
	DefaultTempC    int    `yaml:"default_temp_c"` // fallback when weather lookup fails

	// Weather lookup location
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`

	// Debugging
	Debug bool `yaml:"debug"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Set defaults
	config := &Config{
		DataPath:        filepath.Join(getDefaultStoragePath(), DefaultDataFileName),
		RatePerKWH:      6.0,
		CurrencySymbol:  "₹",
		DefaultHomeType: string(Home2BHK),
		DefaultTempC:    30,
		Latitude:        19.0760, // Mumbai
		Longitude:       72.8777,
		Debug:           false,
	}

	// If no path provided, return defaults with env var overrides
	if path == "" {
		config.applyEnvironmentVariables()
		return config, nil
	}

	// Read the file; a missing file is fine, the defaults apply
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			config.applyEnvironmentVariables()
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides
	config.applyEnvironmentVariables()

	return config, nil
}

// getDefaultStoragePath returns the default storage path
func getDefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".homewatt"
	}
	return filepath.Join(home, ".config", "homewatt")
}

// applyEnvironmentVariables overrides config with environment variables
func (c *Config) applyEnvironmentVariables() {
	if val := os.Getenv("HOMEWATT_DATA_PATH"); val != "" {
		c.DataPath = val
	}
	if val := os.Getenv("HOMEWATT_RATE_PER_KWH"); val != "" {
		if rate, err := strconv.ParseFloat(val, 64); err == nil {
			c.RatePerKWH = rate
		}
	}
	if val := os.Getenv("HOMEWATT_CURRENCY_SYMBOL"); val != "" {
		c.CurrencySymbol = val
	}
	if val := os.Getenv("HOMEWATT_HOME_TYPE"); val != "" {
		c.DefaultHomeType = val
	}
	if val := os.Getenv("HOMEWATT_LATITUDE"); val != "" {
		if lat, err := strconv.ParseFloat(val, 64); err == nil {
			c.Latitude = lat
		}
	}
	if val := os.Getenv("HOMEWATT_LONGITUDE"); val != "" {
		if lon, err := strconv.ParseFloat(val, 64); err == nil {
			c.Longitude = lon
		}
	}
	if val := os.Getenv("HOMEWATT_DEBUG"); val == "true" || val == "1" {
		c.Debug = true
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	if c.DataPath == "" {
		c.DataPath = filepath.Join(getDefaultStoragePath(), DefaultDataFileName)
	}

	if c.RatePerKWH < MinRatePerKWH || c.RatePerKWH > MaxRatePerKWH {
		errors = append(errors, fmt.Sprintf("rate_per_kwh must be between %.1f and %.1f", MinRatePerKWH, MaxRatePerKWH))
	}

	if !ValidHomeType(c.DefaultHomeType) {
		errors = append(errors, "default_home_type must be one of 1BHK, 2BHK, 3BHK, 4BHK+")
	}

	if c.DefaultTempC < MinTempC || c.DefaultTempC > MaxTempC {
		errors = append(errors, fmt.Sprintf("default_temp_c must be between %d and %d", MinTempC, MaxTempC))
	}

	if c.Latitude < -90 || c.Latitude > 90 {
		errors = append(errors, "latitude must be between -90 and 90")
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		errors = append(errors, "longitude must be between -180 and 180")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
