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
	"time"
)

// Analyzer computes aggregate statistics over the full historical table
type Analyzer struct {
	config *Config
	logger *Logger
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(config *Config, logger *Logger) *Analyzer {
	return &Analyzer{
		config: config,
		logger: logger,
	}
}

// Analyze performs complete analysis on the historical records
func (a *Analyzer) Analyze(records []DailyRecord) (*AnalysisResult, error) {
	a.logger.Info("Starting analysis", "records", len(records))

	if len(records) == 0 {
		return nil, &DataError{
			DataType: "records",
			Message:  "at least one record is required for analysis",
		}
	}

	result := &AnalysisResult{
		GeneratedAt: time.Now(),
		DaysTracked: Count(records),
	}

	a.logger.LogAnalysisStage("consumption_metrics")
	result.AvgDailyConsumption = MeanConsumption(records)
	result.TotalConsumption = TotalConsumption(records)
	result.PeakConsumption = PeakConsumption(records)
	result.FirstEntry, result.LastEntry = entrySpan(records)

	a.logger.LogAnalysisStage("weekday_averages")
	result.WeekdayAverages = WeekdayAverages(records)

	a.logger.LogAnalysisStage("appliance_usage")
	result.ApplianceUsage = CountApplianceUsage(records)
	result.TemperaturePoints = TemperatureSeries(records)

	a.logger.LogAnalysisStage("cost_projection")
	result.Costs = ProjectCosts(records, a.config.RatePerKWH)

	// The advisory reads the average daily figure, matching what a single
	// typical day of this household would be told at entry time.
	result.Advisory = Advise(result.AvgDailyConsumption)

	result.RecentRecords = recentRecords(records, 10)

	a.logger.Info("Analysis completed",
		"days_tracked", result.DaysTracked,
		"avg_daily_kwh", fmt.Sprintf("%.2f", result.AvgDailyConsumption),
	)

	return result, nil
}

// Count returns the number of records in the table
func Count(records []DailyRecord) int {
	return len(records)
}

// MeanConsumption returns the mean daily consumption in kWh, or 0 for an
// empty table. Callers must count-check before treating the result as
// meaningful.
func MeanConsumption(records []DailyRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	return TotalConsumption(records) / float64(len(records))
}

// TotalConsumption returns the summed consumption in kWh
func TotalConsumption(records []DailyRecord) float64 {
	total := 0.0
	for _, r := range records {
		total += r.TotalConsumption
	}
	return total
}

// PeakConsumption returns the highest single-day consumption in kWh, or 0
// for an empty table
func PeakConsumption(records []DailyRecord) float64 {
	peak := 0.0
	for _, r := range records {
		if r.TotalConsumption > peak {
			peak = r.TotalConsumption
		}
	}
	return peak
}

// WeekdayAverages groups records by the weekday derived from their date and
// returns the mean consumption per weekday name. An empty table yields an
// empty map, never an error. Only weekdays with at least one record appear.
func WeekdayAverages(records []DailyRecord) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, r := range records {
		day := r.Date.Weekday().String()
		sums[day] += r.TotalConsumption
		counts[day]++
	}

	averages := make(map[string]float64, len(sums))
	for day, sum := range sums {
		averages[day] = sum / float64(counts[day])
	}

	return averages
}

// CountApplianceUsage counts records with each appliance enabled
func CountApplianceUsage(records []DailyRecord) ApplianceUsage {
	var usage ApplianceUsage
	for _, r := range records {
		if r.ACUsed {
			usage.AC++
		}
		if r.FridgeUsed {
			usage.Fridge++
		}
		if r.WasherUsed {
			usage.Washer++
		}
		if r.SolarUsed {
			usage.Solar++
		}
	}
	return usage
}

// TemperatureSeries extracts per-record (temperature, consumption) pairs in
// file order
func TemperatureSeries(records []DailyRecord) []TemperaturePoint {
	points := make([]TemperaturePoint, 0, len(records))
	for _, r := range records {
		points = append(points, TemperaturePoint{
			TempC:          r.OutsideTemp,
			ConsumptionKWH: r.TotalConsumption,
		})
	}
	return points
}

// entrySpan returns the earliest and latest record dates
func entrySpan(records []DailyRecord) (first, last time.Time) {
	for i, r := range records {
		if i == 0 {
			first, last = r.Date, r.Date
			continue
		}
		if r.Date.Before(first) {
			first = r.Date
		}
		if r.Date.After(last) {
			last = r.Date
		}
	}
	return first, last
}

// recentRecords returns up to n records, newest insertion first
func recentRecords(records []DailyRecord, n int) []DailyRecord {
	if len(records) < n {
		n = len(records)
	}
	recent := make([]DailyRecord, 0, n)
	for i := len(records) - 1; i >= len(records)-n; i-- {
		recent = append(recent, records[i])
	}
	return recent
}
