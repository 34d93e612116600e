package internal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// FileParser reads flight data from a local JSON file instead of the network.
// The file uses the same envelope as the API response body, but since it may
// come from anywhere, records are validated strictly.
type FileParser struct {
	normalizer *Normalizer
	logger     *slog.Logger
}

func NewFileParser(logger *slog.Logger) *FileParser {
	return &FileParser{
		normalizer: NewNormalizer(Strict, logger),
		logger:     logger,
	}
}

// ParseFile reads and normalizes all flight records in the given file.
// A missing file surfaces as an fs.ErrNotExist wrap; content that does not
// decode (an empty file included) wraps ErrInvalidJSON. A missing or empty
// data array is a valid outcome and yields an empty slice. Records failing
// validation are skipped with a warning, in keeping with the batch policy.
func (p *FileParser) ParseFile(path string) ([]FlightRecord, error) {
	p.logger.Info("parsing flight data file", "path", path)

	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("ParseFile: %w", readErr)
	}

	var result flightsResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("ParseFile: %w in %s: %w", ErrInvalidJSON, path, err)
	}

	if len(result.Data) == 0 {
		p.logger.Warn("no flight data found", "path", path)

		return []FlightRecord{}, nil
	}

	records := p.normalizer.NormalizeEntries(result.Data)
	p.logger.Info("parsed flight records", "path", path, "count", len(records))

	return records, nil
}
