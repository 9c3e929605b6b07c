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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*CSVStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultDataFileName)
	store, err := NewCSVStore(path, NewLogger(false))
	require.NoError(t, err)
	return store, path
}

func sampleRecord(t *testing.T, date string) DailyRecord {
	t.Helper()
	d := mustDate(t, date)
	return DailyRecord{
		Date:             d,
		Day:              d.Weekday().String(),
		ACUsed:           true,
		FridgeUsed:       true,
		WasherUsed:       false,
		SolarUsed:        true,
		TotalConsumption: 4.8,
		HomeType:         Home2BHK,
		FamilySize:       4,
		OutsideTemp:      30,
		UsageHours:       8,
	}
}

func TestAppendThenLoadAllRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	record := sampleRecord(t, "2026-08-29")

	require.NoError(t, store.Append(record))

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	got := loaded[0]
	assert.True(t, got.Date.Equal(record.Date), "date mismatch: %v != %v", got.Date, record.Date)
	assert.Equal(t, record.Day, got.Day)
	assert.Equal(t, record.ACUsed, got.ACUsed)
	assert.Equal(t, record.FridgeUsed, got.FridgeUsed)
	assert.Equal(t, record.WasherUsed, got.WasherUsed)
	assert.Equal(t, record.SolarUsed, got.SolarUsed)
	assert.InDelta(t, record.TotalConsumption, got.TotalConsumption, 0.001)
	assert.Equal(t, record.HomeType, got.HomeType)
	assert.Equal(t, record.FamilySize, got.FamilySize)
	assert.Equal(t, record.OutsideTemp, got.OutsideTemp)
	assert.Equal(t, record.UsageHours, got.UsageHours)
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.Append(sampleRecord(t, "2026-08-28")))
	require.NoError(t, store.Append(sampleRecord(t, "2026-08-29")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
}

func TestAppendAllowsDuplicateDates(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Append(sampleRecord(t, "2026-08-29")))
	require.NoError(t, store.Append(sampleRecord(t, "2026-08-29")))

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}

func TestLoadAllPreservesInsertionOrder(t *testing.T) {
	store, _ := newTestStore(t)

	// Dates deliberately out of order; file order wins
	for _, date := range []string{"2026-08-29", "2026-08-01", "2026-08-15"} {
		require.NoError(t, store.Append(sampleRecord(t, date)))
	}

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "2026-08-29", loaded[0].Date.Format(DateLayout))
	assert.Equal(t, "2026-08-01", loaded[1].Date.Format(DateLayout))
	assert.Equal(t, "2026-08-15", loaded[2].Date.Format(DateLayout))
}

func TestLoadAllMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadAllMalformedRow(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Append(sampleRecord(t, "2026-08-29")))

	// Corrupt the consumption column
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	corrupted := strings.Replace(string(data), "4.80", "not-a-number", 1)
	require.NoError(t, os.WriteFile(path, []byte(corrupted), 0644))

	_, err = store.LoadAll()
	require.Error(t, err)

	var storageErr *StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestSaveAnalysisSnapshot(t *testing.T) {
	store, path := newTestStore(t)

	result := &AnalysisResult{
		GeneratedAt:         mustDate(t, "2026-08-29"),
		DaysTracked:         1,
		AvgDailyConsumption: 4.8,
	}
	require.NoError(t, store.SaveAnalysisSnapshot(result))

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "analysis_*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
