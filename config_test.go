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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 6.0, config.RatePerKWH)
	assert.Equal(t, "₹", config.CurrencySymbol)
	assert.Equal(t, string(Home2BHK), config.DefaultHomeType)
	assert.Equal(t, 30, config.DefaultTempC)
	assert.Contains(t, config.DataPath, DefaultDataFileName)
	assert.False(t, config.Debug)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 6.0, config.RatePerKWH)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `data_path: /tmp/energy.csv
rate_per_kwh: 8.5
currency_symbol: "$"
default_home_type: 3BHK
latitude: 51.5
longitude: -0.12
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/energy.csv", config.DataPath)
	assert.Equal(t, 8.5, config.RatePerKWH)
	assert.Equal(t, "$", config.CurrencySymbol)
	assert.Equal(t, "3BHK", config.DefaultHomeType)
	assert.Equal(t, 51.5, config.Latitude)
	assert.True(t, config.Debug)
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOMEWATT_DATA_PATH", "/tmp/env.csv")
	t.Setenv("HOMEWATT_RATE_PER_KWH", "9.5")
	t.Setenv("HOMEWATT_CURRENCY_SYMBOL", "€")
	t.Setenv("HOMEWATT_DEBUG", "1")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.csv", config.DataPath)
	assert.Equal(t, 9.5, config.RatePerKWH)
	assert.Equal(t, "€", config.CurrencySymbol)
	assert.True(t, config.Debug)
}

func TestValidateAcceptsDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.NoError(t, config.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"rate too low", func(c *Config) { c.RatePerKWH = 1.0 }},
		{"rate too high", func(c *Config) { c.RatePerKWH = 20.0 }},
		{"bad home type", func(c *Config) { c.DefaultHomeType = "Studio" }},
		{"bad default temp", func(c *Config) { c.DefaultTempC = 60 }},
		{"bad latitude", func(c *Config) { c.Latitude = 120 }},
		{"bad longitude", func(c *Config) { c.Longitude = -300 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig("")
			require.NoError(t, err)
			tt.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}
