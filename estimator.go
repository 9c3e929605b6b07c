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
	"math"
)

// homeMultipliers maps a home type to its base consumption multiplier.
// Unknown types fall back to 1.0.
var homeMultipliers = map[HomeType]float64{
	Home1BHK:     1.0,
	Home2BHK:     1.5,
	Home3BHK:     2.0,
	Home4BHKPlus: 2.5,
}

const (
	// referenceDurationHours is the usage duration the additive terms are
	// calibrated against; the final figure scales linearly around it.
	referenceDurationHours = 8.0

	// solarDiscountCapKWH caps the absolute reduction solar can apply.
	solarDiscountCapKWH = 10.0

	// solarDiscountFraction is the share of the pre-discount total that
	// solar offsets, up to the cap.
	solarDiscountFraction = 0.6
)

// Estimate converts a day's inputs to an estimated consumption figure in
// kWh. It is deterministic and side-effect free. Appliance terms stack
// additively, the solar discount applies to the pre-discount total before
// duration scaling, and the result clamps to zero only at the final step.
//
// Inputs are not validated here; range checks live at the CLI boundary.
func Estimate(in EstimateInput) float64 {
	mult, ok := homeMultipliers[in.HomeType]
	if !ok {
		mult = 1.0
	}

	base := mult * 2
	base += float64(in.FamilySize) * 0.5

	temp := float64(in.OutsideTemp)

	// AC load grows with outside temperature above 25C
	if in.ACUsed {
		base += 3 + math.Max(0, temp-25)*0.2
	}

	// Fridge load grows with outside temperature above 20C
	if in.FridgeUsed {
		base += 2 + math.Max(0, temp-20)*0.1
	}

	if in.WasherUsed {
		base += 4
	}

	if in.SolarUsed {
		base -= math.Min(base*solarDiscountFraction, solarDiscountCapKWH)
	}

	base *= float64(in.UsageHours) / referenceDurationHours

	return math.Max(0, math.Round(base*100)/100)
}
