package internal

// Summary aggregates a day's worth of flight records into headline numbers.
type Summary struct {
	Total     int
	OnTime    int
	Delayed   int // minor + major + severe
	Cancelled int
	Diverted  int
	// AverageDelay is the mean arrival delay in minutes over all non-cancelled
	// records, 0 if there are none.
	AverageDelay float64
	// CategoryCounts maps category display strings to how often they occurred.
	CategoryCounts map[string]int
}

// Summarize computes the summary statistics for the given records.
func Summarize(records []FlightRecord) Summary {
	summary := Summary{CategoryCounts: make(map[string]int)}
	summary.Total = len(records)

	delaySum := 0
	delayRecordCount := 0

	for _, record := range records {
		summary.CategoryCounts[record.FlightStatus.String()]++

		switch record.FlightStatus {
		case OnTime:
			summary.OnTime++
		case MinorDelay, MajorDelay, SevereDelay:
			summary.Delayed++
		case Cancelled:
			summary.Cancelled++
		case Diverted:
			summary.Diverted++
		}

		// Cancelled flights never arrived, so they don't count towards the
		// average arrival delay.
		if record.FlightStatus != Cancelled {
			delaySum += record.ArrivalDelay
			delayRecordCount++
		}
	}

	if delayRecordCount > 0 {
		summary.AverageDelay = float64(delaySum) / float64(delayRecordCount)
	}

	return summary
}
