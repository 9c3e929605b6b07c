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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openMeteoFixture = `{
  "latitude": 19.076,
  "longitude": 72.8777,
  "daily": {
    "time": ["2026-08-20"],
    "temperature_2m_max": [33.1],
    "temperature_2m_min": [24.9],
    "temperature_2m_mean": [28.4]
  }
}`

func newTestWeatherClient(t *testing.T, handler http.Handler, cache *Cache) *WeatherClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewWeatherClient(19.0760, 72.8777, cache, NewLogger(false))
	client.baseURL = server.URL
	return client
}

func TestDailyMeanTemperature(t *testing.T) {
	client := newTestWeatherClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "start_date=2026-08-20")
		assert.Contains(t, r.URL.RawQuery, "temperature_2m_mean")
		fmt.Fprint(w, openMeteoFixture)
	}), nil)

	mean, err := client.DailyMeanTemperature(mustDate(t, "2026-08-20"))
	require.NoError(t, err)
	assert.InDelta(t, 28.4, mean, 0.001)
}

func TestDailyMeanTemperatureServerError(t *testing.T) {
	client := newTestWeatherClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), nil)

	_, err := client.DailyMeanTemperature(mustDate(t, "2026-08-20"))
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestDailyMeanTemperatureNoData(t *testing.T) {
	client := newTestWeatherClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"latitude": 19.076, "longitude": 72.8777, "daily": {"time": [], "temperature_2m_mean": []}}`)
	}), nil)

	_, err := client.DailyMeanTemperature(mustDate(t, "2026-08-20"))
	require.Error(t, err)

	var dataErr *DataError
	assert.ErrorAs(t, err, &dataErr)
}

func TestDailyMeanTemperatureUsesCache(t *testing.T) {
	cache, err := NewCache(t.TempDir(), "weather", NewLogger(false))
	require.NoError(t, err)

	requests := 0
	client := newTestWeatherClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, openMeteoFixture)
	}), cache)

	date := mustDate(t, "2026-08-20")

	mean, err := client.DailyMeanTemperature(date)
	require.NoError(t, err)
	assert.InDelta(t, 28.4, mean, 0.001)

	// Second lookup is served from cache
	mean, err = client.DailyMeanTemperature(date)
	require.NoError(t, err)
	assert.InDelta(t, 28.4, mean, 0.001)
	assert.Equal(t, 1, requests)
}
