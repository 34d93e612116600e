package cmd

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/micutio/delayspottr/internal"
	"github.com/micutio/delayspottr/internal/output"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch flight delay data for a specific date",
	Long: `Fetch one day of flight on-time performance data from the aviationstack API.

The API is asked for flights with at least one minute of arrival delay;
cancelled and diverted flights may be included as well.

Examples:
  delayspottr fetch --flight-date 2024-01-01
  delayspottr fetch --flight-date 2024-01-01 --save-to-file out/flights.json
  delayspottr fetch --flight-date 2024-01-01 --sort delay --notify`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("flight-date", "", "flight date in YYYY-MM-DD format")
	_ = fetchCmd.MarkFlagRequired("flight-date")
	addDisplayFlags(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	flightDate, _ := cmd.Flags().GetString("flight-date")
	printer := output.NewPrinter(cfg.Output.Colors)

	if _, err := time.Parse("2006-01-02", flightDate); err != nil {
		printer.Error("Invalid date format. Please use YYYY-MM-DD format.")
		return errors.New("invalid date format")
	}

	if cfg.API.AccessKey == "" {
		printer.Error("No API access key configured.")
		printer.Hint("Set the AVIATIONSTACK_ACCESS_KEY environment variable")
		return errors.New("missing API access key")
	}

	client := internal.NewClient(cfg, logger)
	records, err := client.FetchFlights(context.Background(), internal.QueryParams{FlightDate: flightDate})
	if err != nil {
		reportFetchError(printer, err)
		return err
	}

	logger.Info("fetched flight records", "count", len(records))

	return displayRecords(records, displayOptionsFromFlags(cmd.Flags(), flightDate))
}

// reportFetchError prints a hint for the well-known failure modes before the
// error itself propagates to main.
func reportFetchError(printer *output.Printer, err error) {
	var statusErr *internal.StatusError

	switch {
	case errors.As(err, &statusErr):
		switch statusErr.Code {
		case http.StatusUnauthorized:
			printer.Error("API error: HTTP %d - Unauthorized", statusErr.Code)
			printer.Hint("Check your API access key")
		case http.StatusTooManyRequests:
			printer.Error("API error: HTTP %d - Rate limit exceeded", statusErr.Code)
			printer.Hint("Try again later or upgrade your API plan")
		default:
			printer.Error("API error: HTTP %d", statusErr.Code)
		}
	case errors.Is(err, internal.ErrConnection):
		printer.Error("Connection failed")
		printer.Hint("Check your internet connection")
	case errors.Is(err, internal.ErrInvalidJSON):
		printer.Error("The API returned a malformed response")
	case errors.Is(err, fs.ErrNotExist):
		printer.Error("File not found")
	default:
		printer.Error("Unexpected error: %v", err)
	}
}
