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
	"encoding/base64"
	"fmt"

	charts "github.com/vicanso/go-charts/v2"
)

// weekdayOrder fixes the weekday chart axis, Monday first
var weekdayOrder = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// ChartGenerator handles chart generation
type ChartGenerator struct {
	theme string
}

// NewChartGenerator creates a new chart generator
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{
		theme: "dark", // Match our HTML report dark theme
	}
}

// GenerateTrendChart creates a line chart of daily consumption across the
// table, with a flat series marking the historical average
func (cg *ChartGenerator) GenerateTrendChart(records []DailyRecord) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("no records available")
	}

	mean := MeanConsumption(records)

	var labels []string
	var consumptionValues []float64
	var averageValues []float64

	for _, r := range records {
		labels = append(labels, r.Date.Format("Jan 2"))
		consumptionValues = append(consumptionValues, r.TotalConsumption)
		averageValues = append(averageValues, mean)
	}

	values := [][]float64{consumptionValues, averageValues}
	legendLabels := []string{
		"Daily Consumption (kWh)",
		fmt.Sprintf("Average (%.1f kWh)", mean),
	}

	p, err := charts.LineRender(
		values,
		charts.TitleTextOptionFunc("Energy Consumption Trend"),
		charts.XAxisDataOptionFunc(labels),
		charts.LegendLabelsOptionFunc(legendLabels, charts.PositionRight),
		charts.ThemeOptionFunc(cg.getTheme()),
		charts.WidthOptionFunc(1200),
		charts.HeightOptionFunc(400),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render trend chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return "", fmt.Errorf("failed to generate chart bytes: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// GenerateApplianceChart creates a pie chart of appliance usage distribution
func (cg *ChartGenerator) GenerateApplianceChart(usage ApplianceUsage) (string, error) {
	if usage.Total() == 0 {
		return "", fmt.Errorf("no appliance usage recorded")
	}

	values := []float64{
		float64(usage.AC),
		float64(usage.Fridge),
		float64(usage.Washer),
		float64(usage.Solar),
	}
	legendLabels := []string{"AC", "Fridge", "Washing Machine", "Solar"}

	p, err := charts.PieRender(
		values,
		charts.TitleTextOptionFunc("Appliance Usage Distribution"),
		charts.LegendLabelsOptionFunc(legendLabels, charts.PositionRight),
		charts.ThemeOptionFunc(cg.getTheme()),
		charts.WidthOptionFunc(600),
		charts.HeightOptionFunc(400),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render appliance chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return "", fmt.Errorf("failed to generate chart bytes: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// GenerateWeekdayChart creates a bar chart of average consumption per weekday
func (cg *ChartGenerator) GenerateWeekdayChart(averages map[string]float64) (string, error) {
	if len(averages) == 0 {
		return "", fmt.Errorf("no weekday averages available")
	}

	var labels []string
	var values []float64
	for _, day := range weekdayOrder {
		avg, ok := averages[day]
		if !ok {
			continue
		}
		labels = append(labels, day)
		values = append(values, avg)
	}

	p, err := charts.BarRender(
		[][]float64{values},
		charts.TitleTextOptionFunc("Average Consumption by Day of Week"),
		charts.XAxisDataOptionFunc(labels),
		charts.LegendLabelsOptionFunc([]string{"Average (kWh)"}, charts.PositionRight),
		charts.ThemeOptionFunc(cg.getTheme()),
		charts.WidthOptionFunc(1200),
		charts.HeightOptionFunc(400),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render weekday chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return "", fmt.Errorf("failed to generate chart bytes: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// getTheme returns the chart theme name
func (cg *ChartGenerator) getTheme() string {
	return cg.theme
}
