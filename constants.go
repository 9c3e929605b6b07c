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

const (
	// OpenMeteoArchiveEndpoint is the Open-Meteo historical weather API endpoint
	OpenMeteoArchiveEndpoint = "https://archive-api.open-meteo.com/v1/archive"

	// DateLayout is the serialization format for record dates
	DateLayout = "2006-01-02"

	// DefaultDataFileName is the CSV table holding the historical records
	DefaultDataFileName = "home_energy_consumption.csv"
)

// csvHeader is the fixed column header of the persisted table. Column
// order is part of the file format and must not change.
var csvHeader = []string{
	"Date",
	"Day",
	"AC_Usage",
	"Fridge_Usage",
	"Washing_Machine_Usage",
	"Solar_Usage",
	"Total_Consumption",
	"Home_Type",
	"Family_Size",
	"Outside_Temperature",
	"Usage_Duration_Hours",
}

// Input ranges enforced at the CLI boundary. The estimator itself does not
// validate; values outside these ranges are rejected before it runs.
const (
	MinFamilySize = 1
	MaxFamilySize = 10
	MinTempC      = 15
	MaxTempC      = 45
	MinUsageHours = 1
	MaxUsageHours = 24
	MinRatePerKWH = 3.0
	MaxRatePerKWH = 10.0
)
