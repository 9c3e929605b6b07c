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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	cache, err := NewCache(t.TempDir(), "test", NewLogger(false))
	require.NoError(t, err)

	value := WeatherData{TempMean: 28.4}
	require.NoError(t, cache.Set("key", value, time.Hour))

	var got WeatherData
	hit, err := cache.Get("key", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.InDelta(t, 28.4, got.TempMean, 0.001)
}

func TestCacheMiss(t *testing.T) {
	cache, err := NewCache(t.TempDir(), "test", NewLogger(false))
	require.NoError(t, err)

	var got WeatherData
	hit, err := cache.Get("missing", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheExpiry(t *testing.T) {
	cache, err := NewCache(t.TempDir(), "test", NewLogger(false))
	require.NoError(t, err)

	require.NoError(t, cache.Set("key", WeatherData{TempMean: 20}, -time.Second))

	var got WeatherData
	hit, err := cache.Get("key", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCachePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(false)

	cache, err := NewCache(dir, "test", logger)
	require.NoError(t, err)
	require.NoError(t, cache.Set("key", WeatherData{TempMean: 21.5}, time.Hour))

	reopened, err := NewCache(dir, "test", logger)
	require.NoError(t, err)

	var got WeatherData
	hit, err := reopened.Get("key", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.InDelta(t, 21.5, got.TempMean, 0.001)
}
