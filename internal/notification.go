package internal

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

const (
	// appIconPath is the file path to the icon png for this application.
	appIconPath = "./assets/icon.png"
)

// Notify posts desktop notifications about finished runs.
type Notify struct{}

func NewNotify(appName string) *Notify {
	beeep.AppName = appName //nolint:reassign // This is the only way to set app name in beeep.

	return &Notify{}
}

// SummaryNotification posts the run summary for a query date as a desktop
// notification.
func (n *Notify) SummaryNotification(queryDate string, summary Summary) error {
	title := fmt.Sprintf("Flight delays for %s", queryDate)
	msgBody := fmt.Sprintf(
		"%d flights: %d on time, %d delayed, %d cancelled, avg delay %.1f min",
		summary.Total,
		summary.OnTime,
		summary.Delayed,
		summary.Cancelled,
		summary.AverageDelay,
	)

	if err := beeep.Notify(title, msgBody, appIconPath); err != nil {
		return fmt.Errorf("SummaryNotification: %w", err)
	}

	return nil
}
