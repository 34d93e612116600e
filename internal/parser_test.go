package internal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTestFile(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	return path
}

func TestParseFileMissing(t *testing.T) {
	parser := NewFileParser(newTestLogger())

	_, err := parser.ParseFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ParseFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestParseFileInvalidJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "broken syntax", content: `{ this is not JSON`},
		{name: "empty file", content: ""},
	}

	parser := NewFileParser(newTestLogger())

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeTestFile(t, "flights.json", test.content)

			_, err := parser.ParseFile(path)
			if !errors.Is(err, ErrInvalidJSON) {
				t.Errorf("ParseFile() error = %v, want ErrInvalidJSON", err)
			}
		})
	}
}

func TestParseFileEmptyData(t *testing.T) {
	parser := NewFileParser(newTestLogger())
	path := writeTestFile(t, "flights.json", `{"data": []}`)

	records, err := parser.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() failed: %v", err)
	}

	if len(records) != 0 {
		t.Errorf("ParseFile() returned %d records, want 0", len(records))
	}
}

func TestParseFileSkipsInvalidRecords(t *testing.T) {
	// File records are validated strictly; the middle entry is missing its
	// departure airport and gets skipped.
	content := `{
		"data": [
			{
				"flight_date": "2024-01-01",
				"flight_status": "landed",
				"departure": {"icao": "KJFK"},
				"arrival": {"icao": "KLAX", "delay": 25},
				"flight": {"icao": "AAL123"}
			},
			{
				"flight_date": "2024-01-01",
				"flight_status": "landed",
				"departure": {},
				"arrival": {"icao": "KSFO", "delay": 70},
				"flight": {"icao": "UAL456"}
			},
			{
				"flight_date": "2024/01/01",
				"flight_status": "diverted",
				"departure": {"icao": "EGLL"},
				"arrival": {"icao": "EDDF", "delay": null},
				"flight": {"icao": "BAW900"}
			}
		]
	}`

	parser := NewFileParser(newTestLogger())
	path := writeTestFile(t, "flights.json", content)

	records, err := parser.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() failed: %v", err)
	}

	expected := []FlightRecord{
		{
			FlightIcao:      "AAL123",
			OriginIcao:      "KJFK",
			DestinationIcao: "KLAX",
			ArrivalDelay:    25,
			FlightStatus:    MinorDelay,
			FlightDate:      "2024-01-01",
		},
		{
			FlightIcao:      "BAW900",
			OriginIcao:      "EGLL",
			DestinationIcao: "EDDF",
			ArrivalDelay:    0,
			FlightStatus:    Diverted,
			FlightDate:      "2024-01-01",
		},
	}
	if !reflect.DeepEqual(records, expected) {
		t.Errorf("ParseFile() = %+v, want %+v", records, expected)
	}
}
