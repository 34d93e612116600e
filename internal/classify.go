package internal

import "strings"

const (
	// onTimeMaxDelay denotes the maximum arrival delay in minutes still counted as on time.
	onTimeMaxDelay = 15
	// minorMaxDelay denotes the maximum arrival delay in minutes counted as a minor delay.
	minorMaxDelay = 60
	// majorMaxDelay denotes the maximum arrival delay in minutes counted as a major delay.
	majorMaxDelay = 180

	statusCancelled = "cancelled"
	statusDiverted  = "diverted"
)

// Classify maps an upstream flight status and arrival delay to a DelayCategory.
// Cancelled and diverted statuses (matched case-insensitively) win over any
// delay value; otherwise a nil delay counts as zero and the thresholds above
// apply with inclusive upper bounds. Early arrivals carry a negative delay and
// therefore land in the on-time bucket.
func Classify(status string, delayMinutes *int) DelayCategory {
	switch strings.ToLower(status) {
	case statusCancelled:
		return Cancelled
	case statusDiverted:
		return Diverted
	}

	delay := 0
	if delayMinutes != nil {
		delay = *delayMinutes
	}

	switch {
	case delay <= onTimeMaxDelay:
		return OnTime
	case delay <= minorMaxDelay:
		return MinorDelay
	case delay <= majorMaxDelay:
		return MajorDelay
	default:
		return SevereDelay
	}
}
