package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SavedReport is the on-disk shape of a saved query result.
type SavedReport struct {
	QueryDate   string         `json:"query_date"`
	RecordCount int            `json:"record_count"`
	Flights     []FlightRecord `json:"flights"`
}

// WriteReport saves the records for a query date as an indented JSON report,
// creating parent directories as needed.
func WriteReport(path string, queryDate string, records []FlightRecord) error {
	report := SavedReport{
		QueryDate:   queryDate,
		RecordCount: len(records),
		Flights:     records,
	}

	content, marshalErr := json.MarshalIndent(report, "", "  ")
	if marshalErr != nil {
		return fmt.Errorf("WriteReport: %w", marshalErr)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("WriteReport: %w", err)
		}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}

	return nil
}
