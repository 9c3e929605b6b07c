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
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"
)

type entryFlags struct {
	date       string
	homeType   string
	familySize int
	temp       int
	hours      int
	ac         bool
	fridge     bool
	washer     bool
	solar      bool
}

func main() {
	// Define command-line flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	dataPath := flag.String("data", "", "Path to CSV data file (overrides config)")
	addEntry := flag.Bool("add", false, "Log a daily entry instead of generating a report")
	rate := flag.Float64("rate", 0, "Electricity rate per kWh (overrides config)")
	outputPath := flag.String("output", "", "Output file for report (default: stdout)")
	htmlOutput := flag.Bool("html", false, "Generate HTML report with charts instead of Markdown")
	debug := flag.Bool("debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version and exit")

	var entry entryFlags
	flag.StringVar(&entry.date, "date", "", "Entry date YYYY-MM-DD (default: today)")
	flag.StringVar(&entry.homeType, "home", "", "Home type: 1BHK, 2BHK, 3BHK or 4BHK+ (default from config)")
	flag.IntVar(&entry.familySize, "family", 4, "Family size (1-10)")
	flag.IntVar(&entry.temp, "temp", -1, "Outside temperature in Celsius (15-45; omit to fetch from weather service)")
	flag.IntVar(&entry.hours, "hours", 8, "Usage duration in hours (1-24)")
	flag.BoolVar(&entry.ac, "ac", false, "AC was used")
	flag.BoolVar(&entry.fridge, "fridge", false, "Fridge was used")
	flag.BoolVar(&entry.washer, "washer", false, "Washing machine was used")
	flag.BoolVar(&entry.solar, "solar", false, "Solar panels were used")

	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("homewatt %s\n", GetVersion())
		os.Exit(0)
	}

	// Initialize logger
	logger := NewLogger(*debug)
	logger.Info("Starting homewatt", "version", GetVersion())

	// Check for updates (non-blocking)
	go CheckForUpdates(logger)

	// Load configuration
	logger.Info("Loading configuration", "config_file", *configPath)
	config, err := LoadConfig(*configPath)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Override with command-line flags
	if *dataPath != "" {
		config.DataPath = *dataPath
	}
	if *rate != 0 {
		config.RatePerKWH = *rate
	}
	if *debug {
		config.Debug = true
		// Recreate logger with debug enabled
		logger = NewLogger(true)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	// Initialize record store
	logger.Info("Initializing record store", "path", config.DataPath)
	store, err := NewCSVStore(config.DataPath, logger)
	if err != nil {
		logger.Error("Failed to initialize record store", "error", err)
		os.Exit(1)
	}

	if *addEntry {
		if err := runAdd(entry, config, store, logger); err != nil {
			logger.Error("Failed to log entry", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runReport(config, store, *outputPath, *htmlOutput, logger); err != nil {
		logger.Error("Failed to generate report", "error", err)
		os.Exit(1)
	}
}

// runAdd estimates a day's consumption from the entry flags, prints the
// figure together with an advisory tip, and appends the record to the store
func runAdd(entry entryFlags, config *Config, store RecordStore, logger *Logger) error {
	date := time.Now()
	if entry.date != "" {
		parsed, err := time.Parse(DateLayout, entry.date)
		if err != nil {
			return &ValidationError{Field: "date", Value: entry.date, Message: "must be formatted YYYY-MM-DD"}
		}
		date = parsed
	} else {
		// Normalize to a bare date so the persisted value round-trips
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	}

	homeType := entry.homeType
	if homeType == "" {
		homeType = config.DefaultHomeType
	}
	if !ValidHomeType(homeType) {
		return &ValidationError{Field: "home", Value: homeType, Message: "must be one of 1BHK, 2BHK, 3BHK, 4BHK+"}
	}

	if entry.familySize < MinFamilySize || entry.familySize > MaxFamilySize {
		return &ValidationError{
			Field:   "family",
			Value:   fmt.Sprintf("%d", entry.familySize),
			Message: fmt.Sprintf("must be between %d and %d", MinFamilySize, MaxFamilySize),
		}
	}
	if entry.hours < MinUsageHours || entry.hours > MaxUsageHours {
		return &ValidationError{
			Field:   "hours",
			Value:   fmt.Sprintf("%d", entry.hours),
			Message: fmt.Sprintf("must be between %d and %d", MinUsageHours, MaxUsageHours),
		}
	}

	temp := entry.temp
	if temp < 0 {
		temp = lookupOutsideTemp(date, config, logger)
	}
	if temp < MinTempC || temp > MaxTempC {
		return &ValidationError{
			Field:   "temp",
			Value:   fmt.Sprintf("%d", temp),
			Message: fmt.Sprintf("must be between %d and %d", MinTempC, MaxTempC),
		}
	}

	input := EstimateInput{
		HomeType:    HomeType(homeType),
		FamilySize:  entry.familySize,
		OutsideTemp: temp,
		UsageHours:  entry.hours,
		ACUsed:      entry.ac,
		FridgeUsed:  entry.fridge,
		WasherUsed:  entry.washer,
		SolarUsed:   entry.solar,
	}

	consumption := Estimate(input)
	logger.LogEstimate(date.Format(DateLayout), consumption)

	record := NewDailyRecord(date, input, consumption)
	if err := store.Append(record); err != nil {
		return err
	}

	logger.UserMessage("Estimated consumption for %s (%s): %.2f kWh", date.Format(DateLayout), record.Day, consumption)
	logger.UserMessage("Tip: %s", Advise(consumption))
	logger.UserMessage("Entry saved to %s", config.DataPath)

	return nil
}

// lookupOutsideTemp fetches the entry date's mean temperature, falling back
// to the configured default when the lookup fails. Fetched values clamp into
// the accepted input range.
func lookupOutsideTemp(date time.Time, config *Config, logger *Logger) int {
	cache, err := NewCache(filepath.Dir(config.DataPath), "weather", logger)
	if err != nil {
		logger.Warn("Failed to initialize weather cache", "error", err)
		cache = nil
	}

	client := NewWeatherClient(config.Latitude, config.Longitude, cache, logger)
	mean, err := client.DailyMeanTemperature(date)
	if err != nil {
		logger.Warn("Weather lookup failed, using configured default temperature",
			"error", err,
			"default_temp_c", config.DefaultTempC,
		)
		return config.DefaultTempC
	}

	temp := int(math.Round(mean))
	if temp < MinTempC {
		logger.Debug("Clamping fetched temperature to minimum", "fetched", temp)
		temp = MinTempC
	}
	if temp > MaxTempC {
		logger.Debug("Clamping fetched temperature to maximum", "fetched", temp)
		temp = MaxTempC
	}
	return temp
}

// runReport loads the full table, analyzes it, and writes the report
func runReport(config *Config, store *CSVStore, outputPath string, htmlOutput bool, logger *Logger) error {
	logger.Info("Loading records", "path", config.DataPath)
	records, err := store.LoadAll()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		logger.UserMessage("No data available yet. Log your first entry with -add.")
		return nil
	}

	logger.Info("Initializing analyzer")
	analyzer := NewAnalyzer(config, logger)

	result, err := analyzer.Analyze(records)
	if err != nil {
		return err
	}

	// Charts only render for the HTML report
	if htmlOutput {
		generator := NewChartGenerator()

		if chart, err := generator.GenerateTrendChart(records); err != nil {
			logger.Warn("Failed to generate trend chart", "error", err)
		} else {
			result.TrendChart = chart
		}

		if chart, err := generator.GenerateApplianceChart(result.ApplianceUsage); err != nil {
			logger.Warn("Failed to generate appliance chart", "error", err)
		} else {
			result.ApplianceChart = chart
		}

		if chart, err := generator.GenerateWeekdayChart(result.WeekdayAverages); err != nil {
			logger.Warn("Failed to generate weekday chart", "error", err)
		} else {
			result.WeekdayChart = chart
		}
	}

	// Save analysis snapshot beside the data file
	if err := store.SaveAnalysisSnapshot(result); err != nil {
		logger.Warn("Failed to save analysis snapshot", "error", err)
	}

	if htmlOutput {
		logger.Info("Generating HTML report")
		htmlReporter := NewHTMLReporter(config, logger)
		return htmlReporter.GenerateHTMLReport(result, outputPath)
	}

	logger.Info("Generating Markdown report")
	reporter := NewReporter(config, logger)
	return reporter.GenerateReport(result, outputPath)
}
