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
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const weatherCacheTTL = 24 * time.Hour

// WeatherClient fetches historical daily weather for the configured
// household location. It backs the -temp flag: when the user does not supply
// an outside temperature, the entry date's mean temperature is looked up.
type WeatherClient struct {
	httpClient *http.Client
	logger     *Logger
	cache      *Cache
	baseURL    string
	latitude   float64
	longitude  float64
}

// NewWeatherClient creates a new weather client. The cache is optional; a
// nil cache disables caching.
func NewWeatherClient(latitude, longitude float64, cache *Cache, logger *Logger) *WeatherClient {
	return &WeatherClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
		cache:      cache,
		baseURL:    OpenMeteoArchiveEndpoint,
		latitude:   latitude,
		longitude:  longitude,
	}
}

// DailyMeanTemperature returns the mean outside temperature in Celsius for
// the given date
func (w *WeatherClient) DailyMeanTemperature(date time.Time) (float64, error) {
	dateStr := date.Format(DateLayout)
	cacheKey := fmt.Sprintf("weather_%s_%.4f_%.4f", dateStr, w.latitude, w.longitude)

	if w.cache != nil {
		var cached WeatherData
		if hit, err := w.cache.Get(cacheKey, &cached); err == nil && hit {
			return cached.TempMean, nil
		}
	}

	url := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&start_date=%s&end_date=%s&daily=temperature_2m_max,temperature_2m_min,temperature_2m_mean&timezone=auto",
		w.baseURL,
		w.latitude,
		w.longitude,
		dateStr,
		dateStr,
	)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create weather request: %w", err)
	}

	req.Header.Set("User-Agent", GetUserAgent())

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, &APIError{
			Endpoint: w.baseURL,
			Message:  "weather request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   w.baseURL,
			Message:    "weather API returned non-200 status",
		}
	}

	var weatherResp OpenMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&weatherResp); err != nil {
		return 0, &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   w.baseURL,
			Message:    "failed to decode weather response",
			Err:        err,
		}
	}

	if len(weatherResp.Daily.Time) == 0 || len(weatherResp.Daily.TempMean) == 0 {
		return 0, &DataError{
			DataType: "weather",
			Message:  fmt.Sprintf("no weather data for %s", dateStr),
		}
	}

	data := WeatherData{
		Date:     date,
		TempMax:  weatherResp.Daily.TempMax[0],
		TempMin:  weatherResp.Daily.TempMin[0],
		TempMean: weatherResp.Daily.TempMean[0],
	}

	if w.cache != nil {
		if err := w.cache.Set(cacheKey, data, weatherCacheTTL); err != nil {
			w.logger.Warn("Failed to cache weather data", "error", err)
		}
	}

	w.logger.LogWeatherFetch(dateStr, data.TempMean)
	return data.TempMean, nil
}
