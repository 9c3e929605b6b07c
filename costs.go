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
)

// ProjectCosts derives cost figures from the historical table and a flat
// electricity rate. The monthly figure scales the summed daily costs to a
// 30-day month assuming uniform daily consumption; it is not calendar-aware.
func ProjectCosts(records []DailyRecord, ratePerKWH float64) CostProjection {
	projection := CostProjection{
		RatePerKWH: ratePerKWH,
	}

	if len(records) == 0 {
		return projection
	}

	projection.DailyCosts = make([]float64, len(records))
	sum := 0.0
	for i, r := range records {
		projection.DailyCosts[i] = r.TotalConsumption * ratePerKWH
		sum += projection.DailyCosts[i]
	}

	projection.AvgDailyCost = sum / float64(len(records))
	projection.MonthlyCost = sum * (30 / float64(len(records)))
	projection.YearlyCost = projection.MonthlyCost * 12

	return projection
}

// FormatCurrency formats a value with the configured currency symbol
func FormatCurrency(symbol string, value float64) string {
	return fmt.Sprintf("%s%.2f", symbol, value)
}

// FormatPercentage formats a value as a percentage
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
