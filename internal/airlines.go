package internal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

const (
	// airlinesHeaderLen is the expected number of columns in the airlines CSV.
	airlinesHeaderLen = 2
)

var (
	errParseCSV  = errors.New("error parsing CSV")
	errHeaderLen = errors.New("unexpected header length")
)

// LoadAirlineNames reads a CSV file mapping 3-letter ICAO airline designators
// to carrier names, e.g. "AAL,American Airlines". The lookup is optional
// decoration for table output, so callers may treat a load failure as
// non-fatal.
func LoadAirlineNames(filePath string) (map[string]string, error) {
	// Open the CSV file
	file, fileErr := os.Open(filePath)
	if fileErr != nil {
		return nil, fmt.Errorf("LoadAirlineNames: failed to open file: %w", fileErr)
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			fileErr = fmt.Errorf("LoadAirlineNames: error while closing file %s: %w", filePath, closeErr)
		}
	}()

	reader := csv.NewReader(file)

	// Header row: icao,name
	headers, headerErr := reader.Read()
	if headerErr != nil {
		return nil, fmt.Errorf("LoadAirlineNames: %w: failed to read header: %w", errParseCSV, headerErr)
	}

	if len(headers) != airlinesHeaderLen {
		return nil, fmt.Errorf("LoadAirlineNames: %w", errHeaderLen)
	}

	names := make(map[string]string)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break // End of file
		}

		if err != nil {
			return nil, fmt.Errorf("LoadAirlineNames: %w: failed to read record: %w", errParseCSV, err)
		}

		names[record[0]] = record[1]
	}

	return names, nil
}

// AirlineName resolves the carrier name behind a flight ICAO identifier such
// as "AAL123". Trimming whitespace and digits from the identifier leaves the
// three-letter designator for civilian flights and arbitrary length codes for
// government and private flights. Returns the empty string when the carrier
// is unknown.
func AirlineName(names map[string]string, flightIcao string) string {
	code := stripDigits(strings.TrimSpace(flightIcao))

	return names[code]
}

func stripDigits(str string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1 // Remove the digit
		}
		return r // Keep the character
	}, str)
}
