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
	"html"
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

// HTMLReporter generates HTML reports from analysis results
type HTMLReporter struct {
	config *Config
	logger *Logger
}

// NewHTMLReporter creates a new HTML report generator
func NewHTMLReporter(config *Config, logger *Logger) *HTMLReporter {
	return &HTMLReporter{
		config: config,
		logger: logger,
	}
}

// GenerateHTMLReport generates an HTML report with embedded charts
func (r *HTMLReporter) GenerateHTMLReport(result *AnalysisResult, outputPath string) error {
	r.logger.Info("Generating HTML report")

	var writer io.Writer
	if outputPath == "" {
		writer = os.Stdout
	} else {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create HTML report file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	r.writeHTMLHeader(writer, result)
	r.writeHTMLSummary(writer, result)
	r.writeHTMLCharts(writer, result)
	r.writeHTMLWeekdayAverages(writer, result)
	r.writeHTMLApplianceUsage(writer, result)
	r.writeHTMLCostProjection(writer, result)
	r.writeHTMLRecentEntries(writer, result)
	r.writeHTMLFooter(writer)

	if outputPath != "" {
		r.logger.Info("HTML report saved", "path", outputPath)
	}

	return nil
}

func (r *HTMLReporter) writeHTMLHeader(w io.Writer, result *AnalysisResult) {
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Home Energy Consumption Report</title>
    <style>
        :root {
            --primary-color: #667EEA;
            --secondary-color: #56AB2F;
            --warning-color: #FFB800;
            --danger-color: #FF6B6B;
            --bg-color: #0A0F1E;
            --card-bg: #1A2332;
            --text-color: #E8EAF6;
            --text-muted: #9FA8DA;
            --border-color: #2A3550;
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            background: var(--bg-color);
            color: var(--text-color);
            line-height: 1.6;
            padding: 20px;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
        }

        header {
            background: linear-gradient(135deg, var(--primary-color), var(--secondary-color));
            padding: 40px;
            border-radius: 16px;
            margin-bottom: 30px;
        }

        h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
            font-weight: 700;
        }

        .subtitle {
            color: rgba(255, 255, 255, 0.9);
            font-size: 1.1em;
        }

        .card {
            background: var(--card-bg);
            border-radius: 12px;
            padding: 30px;
            margin-bottom: 30px;
            border: 1px solid var(--border-color);
        }

        h2 {
            color: var(--primary-color);
            margin-bottom: 20px;
            font-size: 1.8em;
            border-bottom: 2px solid var(--border-color);
            padding-bottom: 10px;
        }

        table {
            width: 100%%;
            border-collapse: collapse;
            margin: 20px 0;
        }

        th, td {
            padding: 12px;
            text-align: left;
            border-bottom: 1px solid var(--border-color);
        }

        th {
            background: rgba(102, 126, 234, 0.1);
            color: var(--primary-color);
            font-weight: 600;
        }

        .metric-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 20px;
            margin: 20px 0;
        }

        .metric-card {
            background: rgba(102, 126, 234, 0.05);
            border: 1px solid var(--border-color);
            border-radius: 8px;
            padding: 20px;
            text-align: center;
        }

        .metric-value {
            font-size: 2em;
            font-weight: bold;
            color: var(--secondary-color);
            margin: 10px 0;
        }

        .metric-label {
            color: var(--text-muted);
            font-size: 0.9em;
        }

        .advisory {
            border-left: 4px solid var(--secondary-color);
            padding: 15px;
            margin: 20px 0;
            background: rgba(86, 171, 47, 0.08);
            border-radius: 4px;
        }

        .advisory.warning {
            border-left-color: var(--warning-color);
            background: rgba(255, 184, 0, 0.08);
        }

        .advisory.danger {
            border-left-color: var(--danger-color);
            background: rgba(255, 107, 107, 0.08);
        }

        .chart {
            margin: 20px 0;
            text-align: center;
        }

        .chart img {
            max-width: 100%%;
            border-radius: 8px;
        }

        footer {
            text-align: center;
            padding: 30px;
            color: var(--text-muted);
            border-top: 1px solid var(--border-color);
            margin-top: 40px;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>Home Energy Consumption Report</h1>
            <div class="subtitle">Generated: %s</div>
            <div class="subtitle">Entries: %s to %s (%d days tracked)</div>
            <div class="subtitle" style="opacity: 0.7; font-size: 0.9em; margin-top: 10px;">homewatt %s</div>
        </header>
`,
		result.GeneratedAt.Format("Monday, 2 January 2006 at 15:04"),
		result.FirstEntry.Format("2 Jan 2006"),
		result.LastEntry.Format("2 Jan 2006"),
		result.DaysTracked,
		GetVersion(),
	)
}

func (r *HTMLReporter) writeHTMLSummary(w io.Writer, result *AnalysisResult) {
	advisoryClass := ""
	if result.AvgDailyConsumption > adviceHighThreshold {
		advisoryClass = " danger"
	} else if result.AvgDailyConsumption > adviceModerateThreshold {
		advisoryClass = " warning"
	}

	fmt.Fprintf(w, `
        <div class="card">
            <h2>Key Metrics</h2>

            <div class="metric-grid">
                <div class="metric-card">
                    <div class="metric-label">Average Daily Consumption</div>
                    <div class="metric-value">%.1f kWh</div>
                </div>
                <div class="metric-card">
                    <div class="metric-label">Total Consumption</div>
                    <div class="metric-value">%s kWh</div>
                </div>
                <div class="metric-card">
                    <div class="metric-label">Peak Consumption</div>
                    <div class="metric-value">%.1f kWh</div>
                </div>
                <div class="metric-card">
                    <div class="metric-label">Days Tracked</div>
                    <div class="metric-value">%d</div>
                </div>
            </div>

            <div class="advisory%s">%s</div>
        </div>
`,
		result.AvgDailyConsumption,
		humanize.CommafWithDigits(result.TotalConsumption, 1),
		result.PeakConsumption,
		result.DaysTracked,
		advisoryClass,
		html.EscapeString(result.Advisory),
	)
}

func (r *HTMLReporter) writeHTMLCharts(w io.Writer, result *AnalysisResult) {
	if result.TrendChart == "" && result.ApplianceChart == "" && result.WeekdayChart == "" {
		return
	}

	fmt.Fprintf(w, `
        <div class="card">
            <h2>Charts</h2>
`)

	if result.TrendChart != "" {
		fmt.Fprintf(w, `
            <div class="chart">
                <img src="data:image/png;base64,%s" alt="Energy Consumption Trend">
            </div>
`, result.TrendChart)
	}

	if result.ApplianceChart != "" {
		fmt.Fprintf(w, `
            <div class="chart">
                <img src="data:image/png;base64,%s" alt="Appliance Usage Distribution">
            </div>
`, result.ApplianceChart)
	}

	if result.WeekdayChart != "" {
		fmt.Fprintf(w, `
            <div class="chart">
                <img src="data:image/png;base64,%s" alt="Average Consumption by Day of Week">
            </div>
`, result.WeekdayChart)
	}

	fmt.Fprintf(w, `
        </div>
`)
}

func (r *HTMLReporter) writeHTMLWeekdayAverages(w io.Writer, result *AnalysisResult) {
	if len(result.WeekdayAverages) == 0 {
		return
	}

	fmt.Fprintf(w, `
        <div class="card">
            <h2>Average Consumption by Day of Week</h2>
            <table>
                <thead>
                    <tr>
                        <th>Day</th>
                        <th>Average</th>
                    </tr>
                </thead>
                <tbody>
`)

	for _, day := range weekdayOrder {
		avg, ok := result.WeekdayAverages[day]
		if !ok {
			continue
		}
		fmt.Fprintf(w, `
                    <tr>
                        <td>%s</td>
                        <td>%.2f kWh</td>
                    </tr>
`, day, avg)
	}

	fmt.Fprintf(w, `
                </tbody>
            </table>
        </div>
`)
}

func (r *HTMLReporter) writeHTMLApplianceUsage(w io.Writer, result *AnalysisResult) {
	usage := result.ApplianceUsage
	if usage.Total() == 0 {
		return
	}

	days := float64(result.DaysTracked)

	fmt.Fprintf(w, `
        <div class="card">
            <h2>Appliance Usage</h2>
            <table>
                <thead>
                    <tr>
                        <th>Appliance</th>
                        <th>Days Used</th>
                        <th>Share of Days</th>
                    </tr>
                </thead>
                <tbody>
                    <tr><td>AC</td><td>%d</td><td>%s</td></tr>
                    <tr><td>Fridge</td><td>%d</td><td>%s</td></tr>
                    <tr><td>Washing Machine</td><td>%d</td><td>%s</td></tr>
                    <tr><td>Solar</td><td>%d</td><td>%s</td></tr>
                </tbody>
            </table>
        </div>
`,
		usage.AC, FormatPercentage(float64(usage.AC)/days*100),
		usage.Fridge, FormatPercentage(float64(usage.Fridge)/days*100),
		usage.Washer, FormatPercentage(float64(usage.Washer)/days*100),
		usage.Solar, FormatPercentage(float64(usage.Solar)/days*100),
	)
}

func (r *HTMLReporter) writeHTMLCostProjection(w io.Writer, result *AnalysisResult) {
	costs := result.Costs
	symbol := r.config.CurrencySymbol

	fmt.Fprintf(w, `
        <div class="card">
            <h2>Cost Analysis</h2>
            <p>At a rate of %s per kWh:</p>

            <div class="metric-grid">
                <div class="metric-card">
                    <div class="metric-label">Daily Average Cost</div>
                    <div class="metric-value">%s</div>
                </div>
                <div class="metric-card">
                    <div class="metric-label">Estimated Monthly Cost</div>
                    <div class="metric-value">%s</div>
                </div>
                <div class="metric-card">
                    <div class="metric-label">Estimated Yearly Cost</div>
                    <div class="metric-value">%s</div>
                </div>
            </div>
        </div>
`,
		html.EscapeString(FormatCurrency(symbol, costs.RatePerKWH)),
		html.EscapeString(FormatCurrency(symbol, costs.AvgDailyCost)),
		html.EscapeString(FormatCurrency(symbol, costs.MonthlyCost)),
		html.EscapeString(FormatCurrency(symbol, costs.YearlyCost)),
	)
}

func (r *HTMLReporter) writeHTMLRecentEntries(w io.Writer, result *AnalysisResult) {
	if len(result.RecentRecords) == 0 {
		return
	}

	fmt.Fprintf(w, `
        <div class="card">
            <h2>Recent Entries</h2>
            <table>
                <thead>
                    <tr>
                        <th>Date</th>
                        <th>Day</th>
                        <th>kWh</th>
                        <th>Home</th>
                        <th>Family</th>
                        <th>Temp</th>
                        <th>Hours</th>
                        <th>AC</th>
                        <th>Fridge</th>
                        <th>Washer</th>
                        <th>Solar</th>
                    </tr>
                </thead>
                <tbody>
`)

	for _, rec := range result.RecentRecords {
		fmt.Fprintf(w, `
                    <tr>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%.2f</td>
                        <td>%s</td>
                        <td>%d</td>
                        <td>%d&deg;C</td>
                        <td>%d</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                    </tr>
`,
			rec.Date.Format(DateLayout),
			html.EscapeString(rec.Day),
			rec.TotalConsumption,
			html.EscapeString(string(rec.HomeType)),
			rec.FamilySize,
			rec.OutsideTemp,
			rec.UsageHours,
			yesNo(rec.ACUsed),
			yesNo(rec.FridgeUsed),
			yesNo(rec.WasherUsed),
			yesNo(rec.SolarUsed),
		)
	}

	fmt.Fprintf(w, `
                </tbody>
            </table>
        </div>
`)
}

func (r *HTMLReporter) writeHTMLFooter(w io.Writer) {
	fmt.Fprintf(w, `
        <footer>
            <p><em>Consumption figures are heuristic estimates frozen at entry time; cost projections assume uniform daily usage and a flat rate. Review your actual bills for precise figures.</em></p>
            <p style="margin-top: 10px;">Generated by <a href="https://github.com/homewatt/homewatt" style="color: var(--primary-color); text-decoration: none;">homewatt</a></p>
        </footer>
    </div>
</body>
</html>
`)
}
