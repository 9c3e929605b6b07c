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

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func recordOn(t *testing.T, date string, kwh float64) DailyRecord {
	t.Helper()
	d := mustDate(t, date)
	return DailyRecord{
		Date:             d,
		Day:              d.Weekday().String(),
		TotalConsumption: kwh,
		HomeType:         Home2BHK,
		FamilySize:       4,
		OutsideTemp:      30,
		UsageHours:       8,
	}
}

func TestBasicAggregates(t *testing.T) {
	records := []DailyRecord{
		recordOn(t, "2026-01-05", 10),
		recordOn(t, "2026-01-06", 20),
		recordOn(t, "2026-01-07", 6),
	}

	assert.Equal(t, 3, Count(records))
	assert.InDelta(t, 12.0, MeanConsumption(records), 0.001)
	assert.InDelta(t, 36.0, TotalConsumption(records), 0.001)
	assert.InDelta(t, 20.0, PeakConsumption(records), 0.001)
}

func TestAggregatesOnEmptyTable(t *testing.T) {
	assert.Equal(t, 0, Count(nil))
	assert.Equal(t, 0.0, MeanConsumption(nil))
	assert.Equal(t, 0.0, TotalConsumption(nil))
	assert.Equal(t, 0.0, PeakConsumption(nil))
}

func TestWeekdayAveragesEmptyInput(t *testing.T) {
	averages := WeekdayAverages(nil)
	require.NotNil(t, averages)
	assert.Empty(t, averages)
}

func TestWeekdayAveragesGroupsByDerivedWeekday(t *testing.T) {
	// 2024-01-01 and 2024-01-08 are Mondays, 2024-01-02 is a Tuesday
	records := []DailyRecord{
		recordOn(t, "2024-01-01", 10),
		recordOn(t, "2024-01-08", 20),
		recordOn(t, "2024-01-02", 7),
	}

	averages := WeekdayAverages(records)
	require.Len(t, averages, 2)
	assert.InDelta(t, 15.0, averages["Monday"], 0.001)
	assert.InDelta(t, 7.0, averages["Tuesday"], 0.001)
}

func TestWeekdayAveragesIgnoresPersistedDayColumn(t *testing.T) {
	// The weekday comes from the date, not from whatever Day holds
	rec := recordOn(t, "2024-01-01", 10)
	rec.Day = "Friday"

	averages := WeekdayAverages([]DailyRecord{rec})
	require.Len(t, averages, 1)
	assert.Contains(t, averages, "Monday")
}

func TestProjectCostsSingleRecord(t *testing.T) {
	records := []DailyRecord{recordOn(t, "2026-03-01", 10)}

	costs := ProjectCosts(records, 6.0)
	require.Len(t, costs.DailyCosts, 1)
	assert.InDelta(t, 60.0, costs.DailyCosts[0], 0.001)
	assert.InDelta(t, 60.0, costs.AvgDailyCost, 0.001)
	assert.InDelta(t, 1800.0, costs.MonthlyCost, 0.001)
	assert.InDelta(t, 21600.0, costs.YearlyCost, 0.001)
}

func TestProjectCostsScalesToThirtyDays(t *testing.T) {
	records := []DailyRecord{
		recordOn(t, "2026-03-01", 10),
		recordOn(t, "2026-03-02", 20),
	}

	costs := ProjectCosts(records, 5.0)
	// sum of daily costs = 150, scaled by 30/2
	assert.InDelta(t, 2250.0, costs.MonthlyCost, 0.001)
	assert.InDelta(t, 27000.0, costs.YearlyCost, 0.001)
	assert.InDelta(t, 75.0, costs.AvgDailyCost, 0.001)
}

func TestProjectCostsEmptyTable(t *testing.T) {
	costs := ProjectCosts(nil, 6.0)
	assert.Equal(t, 6.0, costs.RatePerKWH)
	assert.Empty(t, costs.DailyCosts)
	assert.Equal(t, 0.0, costs.MonthlyCost)
	assert.Equal(t, 0.0, costs.YearlyCost)
}

func TestCountApplianceUsage(t *testing.T) {
	a := recordOn(t, "2026-03-01", 10)
	a.ACUsed = true
	a.FridgeUsed = true

	b := recordOn(t, "2026-03-02", 8)
	b.FridgeUsed = true
	b.SolarUsed = true

	usage := CountApplianceUsage([]DailyRecord{a, b})
	assert.Equal(t, 1, usage.AC)
	assert.Equal(t, 2, usage.Fridge)
	assert.Equal(t, 0, usage.Washer)
	assert.Equal(t, 1, usage.Solar)
	assert.Equal(t, 4, usage.Total())
}

func TestTemperatureSeriesPreservesFileOrder(t *testing.T) {
	a := recordOn(t, "2026-03-02", 8)
	a.OutsideTemp = 22
	b := recordOn(t, "2026-03-01", 10)
	b.OutsideTemp = 35

	points := TemperatureSeries([]DailyRecord{a, b})
	require.Len(t, points, 2)
	assert.Equal(t, 22, points[0].TempC)
	assert.InDelta(t, 8.0, points[0].ConsumptionKWH, 0.001)
	assert.Equal(t, 35, points[1].TempC)
}

func TestAnalyzeEmptyTable(t *testing.T) {
	analyzer := NewAnalyzer(&Config{RatePerKWH: 6.0}, NewLogger(false))

	result, err := analyzer.Analyze(nil)
	require.Error(t, err)
	assert.Nil(t, result)

	var dataErr *DataError
	assert.ErrorAs(t, err, &dataErr)
}

func TestAnalyzeComputesFullResult(t *testing.T) {
	analyzer := NewAnalyzer(&Config{RatePerKWH: 6.0}, NewLogger(false))

	a := recordOn(t, "2024-01-01", 10)
	a.ACUsed = true
	b := recordOn(t, "2024-01-02", 20)

	result, err := analyzer.Analyze([]DailyRecord{a, b})
	require.NoError(t, err)

	assert.Equal(t, 2, result.DaysTracked)
	assert.InDelta(t, 15.0, result.AvgDailyConsumption, 0.001)
	assert.InDelta(t, 30.0, result.TotalConsumption, 0.001)
	assert.InDelta(t, 20.0, result.PeakConsumption, 0.001)
	assert.Equal(t, mustDate(t, "2024-01-01"), result.FirstEntry)
	assert.Equal(t, mustDate(t, "2024-01-02"), result.LastEntry)
	assert.Equal(t, 1, result.ApplianceUsage.AC)
	assert.InDelta(t, 2700.0, result.Costs.MonthlyCost, 0.001) // (60+120)*(30/2)
	assert.Equal(t, adviceModerate, result.Advisory)          // mean of 15 is still moderate

	// Recent records come back newest insertion first
	require.Len(t, result.RecentRecords, 2)
	assert.Equal(t, mustDate(t, "2024-01-02"), result.RecentRecords[0].Date)
}
