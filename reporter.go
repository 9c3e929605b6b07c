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
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

// Reporter generates markdown reports from analysis results
type Reporter struct {
	config *Config
	logger *Logger
}

// NewReporter creates a new report generator
func NewReporter(config *Config, logger *Logger) *Reporter {
	return &Reporter{
		config: config,
		logger: logger,
	}
}

// GenerateReport creates a markdown report from analysis results
func (r *Reporter) GenerateReport(result *AnalysisResult, outputPath string) error {
	r.logger.Info("Generating report")

	var writer io.Writer
	if outputPath == "" {
		writer = os.Stdout
	} else {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	r.writeHeader(writer, result)
	r.writeKeyMetrics(writer, result)
	r.writeAdvisory(writer, result)
	r.writeWeekdayAverages(writer, result)
	r.writeApplianceUsage(writer, result)
	r.writeCostProjection(writer, result)
	r.writeRecentEntries(writer, result)
	r.writeFooter(writer)

	if outputPath != "" {
		r.logger.Info("Report saved", "path", outputPath)
	}

	return nil
}

// writeHeader writes the report header
func (r *Reporter) writeHeader(w io.Writer, result *AnalysisResult) {
	fmt.Fprintf(w, "# Home Energy Consumption Report\n\n")
	fmt.Fprintf(w, "**Generated:** %s\n\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "**Entries:** %s to %s (%d days tracked, last entry %s)\n\n",
		result.FirstEntry.Format(DateLayout),
		result.LastEntry.Format(DateLayout),
		result.DaysTracked,
		humanize.Time(result.LastEntry),
	)
	fmt.Fprintf(w, "**homewatt version:** %s\n\n", GetVersion())
	fmt.Fprintf(w, "---\n\n")
}

// writeKeyMetrics writes the summary metrics section
func (r *Reporter) writeKeyMetrics(w io.Writer, result *AnalysisResult) {
	fmt.Fprintf(w, "## Key Metrics\n\n")
	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| Average Daily Consumption | %.1f kWh |\n", result.AvgDailyConsumption)
	fmt.Fprintf(w, "| Total Consumption | %s kWh |\n", humanize.CommafWithDigits(result.TotalConsumption, 1))
	fmt.Fprintf(w, "| Peak Consumption | %.1f kWh |\n", result.PeakConsumption)
	fmt.Fprintf(w, "| Days Tracked | %d |\n\n", result.DaysTracked)
}

// writeAdvisory writes the energy-saving tip for the household's average day
func (r *Reporter) writeAdvisory(w io.Writer, result *AnalysisResult) {
	if result.Advisory == "" {
		return
	}
	fmt.Fprintf(w, "> %s\n\n", result.Advisory)
}

// writeWeekdayAverages writes the per-weekday consumption table
func (r *Reporter) writeWeekdayAverages(w io.Writer, result *AnalysisResult) {
	if len(result.WeekdayAverages) == 0 {
		return
	}

	fmt.Fprintf(w, "## Average Consumption by Day of Week\n\n")
	fmt.Fprintf(w, "| Day | Average |\n")
	fmt.Fprintf(w, "|-----|--------|\n")
	for _, day := range weekdayOrder {
		avg, ok := result.WeekdayAverages[day]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "| %s | %.2f kWh |\n", day, avg)
	}
	fmt.Fprintf(w, "\n")
}

// writeApplianceUsage writes the appliance usage distribution section
func (r *Reporter) writeApplianceUsage(w io.Writer, result *AnalysisResult) {
	usage := result.ApplianceUsage
	if usage.Total() == 0 {
		return
	}

	days := float64(result.DaysTracked)

	fmt.Fprintf(w, "## Appliance Usage\n\n")
	fmt.Fprintf(w, "| Appliance | Days Used | Share of Days |\n")
	fmt.Fprintf(w, "|-----------|-----------|---------------|\n")
	fmt.Fprintf(w, "| AC | %d | %s |\n", usage.AC, FormatPercentage(float64(usage.AC)/days*100))
	fmt.Fprintf(w, "| Fridge | %d | %s |\n", usage.Fridge, FormatPercentage(float64(usage.Fridge)/days*100))
	fmt.Fprintf(w, "| Washing Machine | %d | %s |\n", usage.Washer, FormatPercentage(float64(usage.Washer)/days*100))
	fmt.Fprintf(w, "| Solar | %d | %s |\n\n", usage.Solar, FormatPercentage(float64(usage.Solar)/days*100))
}

// writeCostProjection writes the cost analysis section
func (r *Reporter) writeCostProjection(w io.Writer, result *AnalysisResult) {
	costs := result.Costs
	symbol := r.config.CurrencySymbol

	fmt.Fprintf(w, "## Cost Analysis\n\n")
	fmt.Fprintf(w, "At a rate of %s per kWh:\n\n", FormatCurrency(symbol, costs.RatePerKWH))
	fmt.Fprintf(w, "| Projection | Amount |\n")
	fmt.Fprintf(w, "|------------|--------|\n")
	fmt.Fprintf(w, "| Daily Average Cost | %s |\n", FormatCurrency(symbol, costs.AvgDailyCost))
	fmt.Fprintf(w, "| Estimated Monthly Cost | %s |\n", FormatCurrency(symbol, costs.MonthlyCost))
	fmt.Fprintf(w, "| Estimated Yearly Cost | %s |\n\n", FormatCurrency(symbol, costs.YearlyCost))
}

// writeRecentEntries writes the most recent rows of the table, newest first
func (r *Reporter) writeRecentEntries(w io.Writer, result *AnalysisResult) {
	if len(result.RecentRecords) == 0 {
		return
	}

	fmt.Fprintf(w, "## Recent Entries\n\n")
	fmt.Fprintf(w, "| Date | Day | kWh | Home | Family | Temp | Hours | AC | Fridge | Washer | Solar |\n")
	fmt.Fprintf(w, "|------|-----|-----|------|--------|------|-------|----|--------|--------|-------|\n")
	for _, rec := range result.RecentRecords {
		fmt.Fprintf(w, "| %s | %s | %.2f | %s | %d | %d°C | %d | %s | %s | %s | %s |\n",
			rec.Date.Format(DateLayout),
			rec.Day,
			rec.TotalConsumption,
			rec.HomeType,
			rec.FamilySize,
			rec.OutsideTemp,
			rec.UsageHours,
			yesNo(rec.ACUsed),
			yesNo(rec.FridgeUsed),
			yesNo(rec.WasherUsed),
			yesNo(rec.SolarUsed),
		)
	}
	fmt.Fprintf(w, "\n")
}

// writeFooter writes the report footer
func (r *Reporter) writeFooter(w io.Writer) {
	fmt.Fprintf(w, "---\n\n")
	fmt.Fprintf(w, "*Report generated by homewatt %s*\n", GetVersion())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
