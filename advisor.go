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

// Advisory band thresholds in kWh. Exactly 10 is still "low", exactly 15
// is still "moderate".
const (
	adviceModerateThreshold = 10.0
	adviceHighThreshold     = 15.0
)

const (
	adviceHigh     = "High consumption! Consider using solar panels, LED bulbs, and energy-efficient appliances."
	adviceModerate = "Moderate consumption. Try to use AC wisely and unplug unused devices."
	adviceLow      = "Great job! You're maintaining low energy consumption."
)

// Advise maps a consumption figure to an energy-saving tip
func Advise(kwh float64) string {
	switch {
	case kwh > adviceHighThreshold:
		return adviceHigh
	case kwh > adviceModerateThreshold:
		return adviceModerate
	default:
		return adviceLow
	}
}
