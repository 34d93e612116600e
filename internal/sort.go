package internal

import "sort"

type PropertyCountTuple struct {
	Property string
	Count    int
}

type ByCount []PropertyCountTuple

func (a ByCount) Len() int           { return len(a) }
func (a ByCount) Less(i, j int) bool { return a[i].Count < a[j].Count }
func (a ByCount) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }

// GetSortedCountsForProperty flattens a property count map into a list sorted
// by ascending count, e.g. for listing delay categories from rarest to most
// common.
func GetSortedCountsForProperty(propertyCountMap map[string]int) []PropertyCountTuple {
	propertyCounts := make([]PropertyCountTuple, len(propertyCountMap))
	i := 0
	for key, value := range propertyCountMap {
		propertyCounts[i] = PropertyCountTuple{Property: key, Count: value}
		i++
	}

	sort.Sort(ByCount(propertyCounts))
	return propertyCounts
}

// ByDelay sorts flight records by descending arrival delay, worst first.
type ByDelay []FlightRecord

func (a ByDelay) Len() int           { return len(a) }
func (a ByDelay) Less(i, j int) bool { return a[i].ArrivalDelay > a[j].ArrivalDelay }
func (a ByDelay) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }

// ByFlightNo sorts flight records alphabetically by flight identifier.
type ByFlightNo []FlightRecord

func (a ByFlightNo) Len() int           { return len(a) }
func (a ByFlightNo) Less(i, j int) bool { return a[i].FlightIcao < a[j].FlightIcao }
func (a ByFlightNo) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }

// ByDate sorts flight records by ascending flight date. Dates are canonical
// YYYY-MM-DD after normalization, so string order is chronological order.
type ByDate []FlightRecord

func (a ByDate) Len() int           { return len(a) }
func (a ByDate) Less(i, j int) bool { return a[i].FlightDate < a[j].FlightDate }
func (a ByDate) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }

// Sort keys accepted by SortRecords.
const (
	SortKeyDelay  = "delay"
	SortKeyFlight = "flight"
	SortKeyDate   = "date"
	SortKeyNone   = "none"
)

// SortRecords orders records in place by the given key. Unknown keys leave
// the input order untouched.
func SortRecords(records []FlightRecord, key string) {
	switch key {
	case SortKeyDelay:
		sort.Stable(ByDelay(records))
	case SortKeyFlight:
		sort.Stable(ByFlightNo(records))
	case SortKeyDate:
		sort.Stable(ByDate(records))
	}
}
