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
	"time"
)

// HomeType categorises a household by layout
type HomeType string

const (
	Home1BHK     HomeType = "1BHK"
	Home2BHK     HomeType = "2BHK"
	Home3BHK     HomeType = "3BHK"
	Home4BHKPlus HomeType = "4BHK+"
)

// ValidHomeType reports whether the given string is a known home type
func ValidHomeType(s string) bool {
	switch HomeType(s) {
	case Home1BHK, Home2BHK, Home3BHK, Home4BHKPlus:
		return true
	}
	return false
}

// DailyRecord is one persisted daily entry of appliance usage and the
// consumption figure computed for it at save time. TotalConsumption is
// frozen when the record is written and never recomputed.
type DailyRecord struct {
	Date             time.Time `json:"date"`
	Day              string    `json:"day"` // weekday name, derived from Date but persisted
	ACUsed           bool      `json:"acUsed"`
	FridgeUsed       bool      `json:"fridgeUsed"`
	WasherUsed       bool      `json:"washerUsed"`
	SolarUsed        bool      `json:"solarUsed"`
	TotalConsumption float64   `json:"totalConsumption"` // kWh
	HomeType         HomeType  `json:"homeType"`
	FamilySize       int       `json:"familySize"`
	OutsideTemp      int       `json:"outsideTemp"` // Celsius
	UsageHours       int       `json:"usageHours"`
}

// EstimateInput holds a single day's inputs to the consumption estimator
type EstimateInput struct {
	HomeType    HomeType
	FamilySize  int
	OutsideTemp int // Celsius
	UsageHours  int
	ACUsed      bool
	FridgeUsed  bool
	WasherUsed  bool
	SolarUsed   bool
}

// NewDailyRecord builds a record from estimator inputs, deriving the
// weekday name and freezing the computed consumption figure.
func NewDailyRecord(date time.Time, in EstimateInput, consumption float64) DailyRecord {
	return DailyRecord{
		Date:             date,
		Day:              date.Weekday().String(),
		ACUsed:           in.ACUsed,
		FridgeUsed:       in.FridgeUsed,
		WasherUsed:       in.WasherUsed,
		SolarUsed:        in.SolarUsed,
		TotalConsumption: consumption,
		HomeType:         in.HomeType,
		FamilySize:       in.FamilySize,
		OutsideTemp:      in.OutsideTemp,
		UsageHours:       in.UsageHours,
	}
}

// ApplianceUsage counts how many records had each appliance enabled
type ApplianceUsage struct {
	AC     int `json:"ac"`
	Fridge int `json:"fridge"`
	Washer int `json:"washer"`
	Solar  int `json:"solar"`
}

// Total returns the sum of all appliance usage counts
func (u ApplianceUsage) Total() int {
	return u.AC + u.Fridge + u.Washer + u.Solar
}

// TemperaturePoint pairs a day's outside temperature with its consumption
type TemperaturePoint struct {
	TempC          int     `json:"tempC"`
	ConsumptionKWH float64 `json:"consumptionKwh"`
}

// CostProjection holds the cost figures derived from the historical table
// and a flat electricity rate. The monthly figure is a simple scaling
// projection, not a calendar-aware computation.
type CostProjection struct {
	RatePerKWH   float64   `json:"ratePerKwh"`
	DailyCosts   []float64 `json:"dailyCosts"` // per record, in file order
	AvgDailyCost float64   `json:"avgDailyCost"`
	MonthlyCost  float64   `json:"monthlyCost"`
	YearlyCost   float64   `json:"yearlyCost"`
}

// AnalysisResult holds the complete analysis output for a report
type AnalysisResult struct {
	GeneratedAt         time.Time          `json:"generatedAt"`
	DaysTracked         int                `json:"daysTracked"`
	FirstEntry          time.Time          `json:"firstEntry"`
	LastEntry           time.Time          `json:"lastEntry"`
	AvgDailyConsumption float64            `json:"avgDailyConsumption"` // kWh
	TotalConsumption    float64            `json:"totalConsumption"`    // kWh
	PeakConsumption     float64            `json:"peakConsumption"`     // kWh
	WeekdayAverages     map[string]float64 `json:"weekdayAverages"`
	ApplianceUsage      ApplianceUsage     `json:"applianceUsage"`
	TemperaturePoints   []TemperaturePoint `json:"temperaturePoints"`
	Costs               CostProjection     `json:"costs"`
	Advisory            string             `json:"advisory"`
	RecentRecords       []DailyRecord      `json:"recentRecords"` // newest first

	// Charts (base64 encoded PNG images)
	TrendChart     string `json:"trendChart,omitempty"`
	ApplianceChart string `json:"applianceChart,omitempty"`
	WeekdayChart   string `json:"weekdayChart,omitempty"`
}

// WeatherData represents daily weather information for a specific date
type WeatherData struct {
	Date     time.Time `json:"date"`
	TempMax  float64   `json:"temp_max"`  // Celsius
	TempMin  float64   `json:"temp_min"`  // Celsius
	TempMean float64   `json:"temp_mean"` // Celsius
}

// OpenMeteoResponse represents the response from the Open-Meteo archive API
type OpenMeteoResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Daily     struct {
		Time     []string  `json:"time"`
		TempMax  []float64 `json:"temperature_2m_max"`
		TempMin  []float64 `json:"temperature_2m_min"`
		TempMean []float64 `json:"temperature_2m_mean"`
	} `json:"daily"`
}
