// Package internal provides the flight delay data model and all associated program logic.
package internal

import (
	"encoding/json"
	"fmt"
)

// DelayCategory is the classified outcome of a single flight.
type DelayCategory int

const (
	Cancelled DelayCategory = iota
	Diverted
	OnTime
	MinorDelay
	MajorDelay
	SevereDelay
)

// delayCategoryNames holds the display strings, indexed by category.
var delayCategoryNames = [...]string{
	Cancelled:   "cancelled",
	Diverted:    "diverted",
	OnTime:      "on time",
	MinorDelay:  "minor delay",
	MajorDelay:  "major delay",
	SevereDelay: "severe delay",
}

func (c DelayCategory) String() string {
	if c < 0 || int(c) >= len(delayCategoryNames) {
		return fmt.Sprintf("DelayCategory(%d)", int(c))
	}

	return delayCategoryNames[c]
}

// MarshalJSON writes the display string, which is also the form used in saved
// report files.
func (c DelayCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// FlightRecord is the canonical representation of one flight's outcome.
// Records are created once per upstream entry and never mutated afterwards.
// Whenever FlightStatus is Cancelled or Diverted, ArrivalDelay is zero.
type FlightRecord struct {
	FlightIcao      string        `json:"flight_icao"`
	OriginIcao      string        `json:"origin_icao"`
	DestinationIcao string        `json:"destination_icao"`
	ArrivalDelay    int           `json:"arrival_delay"`
	FlightStatus    DelayCategory `json:"flight_status"`
	FlightDate      string        `json:"flight_date"`
}

// QueryParams holds the parameters for one flight data query.
type QueryParams struct {
	FlightDate string
}

// See https://aviationstack.com/documentation
// for further explanations of the fields.

// flightsResult mirrors the JSON envelope returned by the /flights endpoint
// and used by saved data files. Entries are kept raw so that a single broken
// entry does not fail the whole payload.
type flightsResult struct {
	Data []json.RawMessage `json:"data"`
}

// RawFlightRecord mirrors one entry of the data array.
type RawFlightRecord struct {
	FlightDate   string       `json:"flight_date"`   // scheduled date of the flight, format varies
	FlightStatus string       `json:"flight_status"` // scheduled, active, landed, cancelled, incident, diverted
	Departure    RouteWaypoint `json:"departure"`
	Arrival      RouteWaypoint `json:"arrival"`
	Flight       FlightIdent  `json:"flight"`
}

// FlightIdent mirrors the nested flight object of an upstream entry.
type FlightIdent struct {
	Number string `json:"number"` // flight number without carrier prefix
	Iata   string `json:"iata"`   // carrier+number in IATA form, e.g. AA123
	Icao   string `json:"icao"`   // carrier+number in ICAO form, e.g. AAL123
}

// RouteWaypoint mirrors the nested departure/arrival objects of an upstream entry.
type RouteWaypoint struct {
	Airport string `json:"airport"` // human readable airport name
	Iata    string `json:"iata"`    // 3-letter IATA airport code
	Icao    string `json:"icao"`    // 4-letter ICAO airport code
	Delay   *int   `json:"delay"`   // delay in [minutes], frequently null
}
