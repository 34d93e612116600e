package internal

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// Strictness selects which fields a Normalizer requires.
type Strictness int

const (
	// Lenient tolerates missing identifiers and defaults them to empty
	// strings. Used for API responses, where the upstream already filtered
	// the data down to delayed arrivals.
	Lenient Strictness = iota
	// Strict requires flight_date, flight.icao, departure.icao and
	// arrival.icao to be present. Used for local files of unknown origin.
	Strict
)

// Normalizer converts raw upstream flight entries into canonical FlightRecords.
type Normalizer struct {
	mode   Strictness
	logger *slog.Logger
}

func NewNormalizer(mode Strictness, logger *slog.Logger) *Normalizer {
	return &Normalizer{mode: mode, logger: logger}
}

// Normalize turns one raw entry into a FlightRecord.
// In Strict mode a missing identifying field yields a ValidationError.
// The arrival delay of cancelled and diverted flights is reset to zero no
// matter what the upstream reported.
func (n *Normalizer) Normalize(raw *RawFlightRecord) (FlightRecord, error) {
	if n.mode == Strict {
		if raw.FlightDate == "" {
			return FlightRecord{}, &ValidationError{Field: "flight_date"}
		}
		if raw.Flight.Icao == "" {
			return FlightRecord{}, &ValidationError{Field: "flight.icao"}
		}
		if raw.Departure.Icao == "" {
			return FlightRecord{}, &ValidationError{Field: "departure.icao"}
		}
		if raw.Arrival.Icao == "" {
			return FlightRecord{}, &ValidationError{Field: "arrival.icao"}
		}
	}

	flightDate, recognized := NormalizeDate(raw.FlightDate)
	if !recognized {
		n.logger.Warn("could not normalize date format", "flight_date", raw.FlightDate)
	}

	delay := 0
	if raw.Arrival.Delay != nil {
		delay = *raw.Arrival.Delay
	}

	category := Classify(raw.FlightStatus, raw.Arrival.Delay)
	if category == Cancelled || category == Diverted {
		delay = 0
	}

	return FlightRecord{
		FlightIcao:      raw.Flight.Icao,
		OriginIcao:      raw.Departure.Icao,
		DestinationIcao: raw.Arrival.Icao,
		ArrivalDelay:    delay,
		FlightStatus:    category,
		FlightDate:      flightDate,
	}, nil
}

// NormalizeEntries normalizes a list of raw JSON entries, skipping the ones
// that cannot be decoded or fail validation. A skipped entry is logged and
// never aborts the batch. Output order follows input order.
func (n *Normalizer) NormalizeEntries(entries []json.RawMessage) []FlightRecord {
	records := make([]FlightRecord, 0, len(entries))

	for i, entry := range entries {
		var raw RawFlightRecord
		if err := json.Unmarshal(entry, &raw); err != nil {
			n.logger.Warn("skipping unparseable flight entry", "index", i, "err", err)
			continue
		}

		record, err := n.Normalize(&raw)
		if err != nil {
			n.logger.Warn("skipping flight entry", "index", i, "err", err)
			continue
		}

		records = append(records, record)
	}

	n.logger.Debug("normalized flight entries", "total", len(entries), "valid", len(records))

	return records
}

const isoDateLen = 10 // len("2006-01-02")

// NormalizeDate converts the known upstream date formats to YYYY-MM-DD:
// YYYY-MM-DD passes through, YYYY/MM/DD and MM/DD/YYYY are reordered, and
// dash-separated dates ending in a 4-digit year are read month-first.
// Month and day are zero-padded to two digits.
// Unrecognized formats are returned unchanged with recognized=false so the
// caller can warn without failing the record. An empty date has nothing to
// normalize and counts as recognized.
func NormalizeDate(dateStr string) (normalized string, recognized bool) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return "", true
	}

	if len(dateStr) == isoDateLen && dateStr[4] == '-' && dateStr[7] == '-' {
		return dateStr, true
	}

	if strings.Contains(dateStr, "/") {
		parts := strings.Split(dateStr, "/")
		if len(parts) == 3 {
			switch {
			case len(parts[0]) == 4: // YYYY/MM/DD
				return parts[0] + "-" + padTwo(parts[1]) + "-" + padTwo(parts[2]), true
			case len(parts[2]) == 4: // MM/DD/YYYY
				return parts[2] + "-" + padTwo(parts[0]) + "-" + padTwo(parts[1]), true
			}
		}
	}

	if strings.Contains(dateStr, "-") {
		parts := strings.Split(dateStr, "-")
		// MM-DD-YYYY, assuming month-first for ambiguous dates.
		if len(parts) == 3 && len(parts[2]) == 4 {
			return parts[2] + "-" + padTwo(parts[0]) + "-" + padTwo(parts[1]), true
		}
	}

	return dateStr, false
}

func padTwo(part string) string {
	if len(part) == 1 {
		return "0" + part
	}

	return part
}
