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
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// RecordStore is the persistence contract for daily records. The flat-file
// implementation below can be swapped for an appendable log or an embedded
// table without touching the estimator, advisory, or analytics code.
//
// Append never rejects duplicate dates. Neither operation is safe for
// concurrent writers; the design assumes one interactive session at a time.
type RecordStore interface {
	Append(record DailyRecord) error
	LoadAll() ([]DailyRecord, error)
}

// CSVStore persists records to a single CSV file with a fixed column header
type CSVStore struct {
	path   string
	logger *Logger
}

// NewCSVStore creates a CSV-backed record store, creating the parent
// directory if needed. The data file itself is created lazily on first
// append.
func NewCSVStore(path string, logger *Logger) (*CSVStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &StorageError{
			Operation: "create_directory",
			Path:      dir,
			Err:       err,
		}
	}

	logger.Debug("Record store initialized", "path", path)

	return &CSVStore{
		path:   path,
		logger: logger,
	}, nil
}

// Append adds one row to the persisted table, writing the header first if
// the file does not exist yet
func (s *CSVStore) Append(record DailyRecord) error {
	s.logger.LogStorageOperation("append", s.path)

	writeHeader := false
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		writeHeader = true
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return &StorageError{
			Operation: "open_file",
			Path:      s.path,
			Err:       err,
		}
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if writeHeader {
		if err := writer.Write(csvHeader); err != nil {
			return &StorageError{
				Operation: "write_header",
				Path:      s.path,
				Err:       err,
			}
		}
	}

	if err := writer.Write(marshalRecord(record)); err != nil {
		return &StorageError{
			Operation: "write_row",
			Path:      s.path,
			Err:       err,
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return &StorageError{
			Operation: "flush",
			Path:      s.path,
			Err:       err,
		}
	}

	return nil
}

// LoadAll returns the full table in file order, or an empty slice if the
// data file does not exist yet
func (s *CSVStore) LoadAll() ([]DailyRecord, error) {
	s.logger.LogStorageOperation("load_all", s.path)

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StorageError{
			Operation: "open_file",
			Path:      s.path,
			Err:       err,
		}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &StorageError{
			Operation: "read_rows",
			Path:      s.path,
			Err:       err,
		}
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// First row is the header
	records := make([]DailyRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record, err := unmarshalRecord(row)
		if err != nil {
			return nil, &StorageError{
				Operation: "parse_row",
				Path:      s.path,
				Err:       fmt.Errorf("row %d: %w", i+2, err),
			}
		}
		records = append(records, record)
	}

	return records, nil
}

// SaveAnalysisSnapshot writes the analysis result as pretty-printed JSON
// beside the data file
func (s *CSVStore) SaveAnalysisSnapshot(result *AnalysisResult) error {
	filename := fmt.Sprintf("analysis_%s.json", result.GeneratedAt.Format("2006-01-02_15-04-05"))
	path := filepath.Join(filepath.Dir(s.path), filename)

	s.logger.LogStorageOperation("save_analysis", path)

	file, err := os.Create(path)
	if err != nil {
		return &StorageError{
			Operation: "create_file",
			Path:      path,
			Err:       err,
		}
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(result); err != nil {
		return &StorageError{
			Operation: "encode_json",
			Path:      path,
			Err:       err,
		}
	}

	return nil
}

// marshalRecord serializes a record into a CSV row matching csvHeader order
func marshalRecord(r DailyRecord) []string {
	return []string{
		r.Date.Format(DateLayout),
		r.Day,
		strconv.FormatBool(r.ACUsed),
		strconv.FormatBool(r.FridgeUsed),
		strconv.FormatBool(r.WasherUsed),
		strconv.FormatBool(r.SolarUsed),
		strconv.FormatFloat(r.TotalConsumption, 'f', 2, 64),
		string(r.HomeType),
		strconv.Itoa(r.FamilySize),
		strconv.Itoa(r.OutsideTemp),
		strconv.Itoa(r.UsageHours),
	}
}

// unmarshalRecord parses a CSV row into a record
func unmarshalRecord(row []string) (DailyRecord, error) {
	if len(row) != len(csvHeader) {
		return DailyRecord{}, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(row))
	}

	date, err := time.Parse(DateLayout, row[0])
	if err != nil {
		return DailyRecord{}, fmt.Errorf("invalid date %q: %w", row[0], err)
	}

	acUsed, err := strconv.ParseBool(row[2])
	if err != nil {
		return DailyRecord{}, fmt.Errorf("invalid AC_Usage %q: %w", row[2], err)
	}
	fridgeUsed, err := strconv.ParseBool(row[3])
	if err != nil {
		return DailyRecord{}, fmt.Errorf("invalid Fridge_Usage %q: %w", row[3], err)
	}
	washerUsed, err := strconv.ParseBool(row[4])
	if err != nil {
		return DailyRecord{}, fmt.Errorf("invalid Washing_Machine_Usage %q: %w", row[4], err)
	}
	solarUsed, err := strconv.ParseBool(row[5])
	if err != nil {
		return DailyRecord{}, fmt.Errorf("invalid Solar_Usage %q: %w", row[5], err)
	}

	consumption, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return DailyRecord{}, fmt.Errorf("invalid Total_Consumption %q: %w", row[6], err)
	}

	familySize, err := strconv.Atoi(row[8])
	if err != nil {
		return DailyRecord{}, fmt.Errorf("invalid Family_Size %q: %w", row[8], err)
	}
	outsideTemp, err := strconv.Atoi(row[9])
	if err != nil {
		return DailyRecord{}, fmt.Errorf("invalid Outside_Temperature %q: %w", row[9], err)
	}
	usageHours, err := strconv.Atoi(row[10])
	if err != nil {
		return DailyRecord{}, fmt.Errorf("invalid Usage_Duration_Hours %q: %w", row[10], err)
	}

	return DailyRecord{
		Date:             date,
		Day:              row[1],
		ACUsed:           acUsed,
		FridgeUsed:       fridgeUsed,
		WasherUsed:       washerUsed,
		SolarUsed:        solarUsed,
		TotalConsumption: consumption,
		HomeType:         HomeType(row[7]),
		FamilySize:       familySize,
		OutsideTemp:      outsideTemp,
		UsageHours:       usageHours,
	}, nil
}
