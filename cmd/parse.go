package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/micutio/delayspottr/internal"
	"github.com/micutio/delayspottr/internal/output"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse flight delay data from a local JSON file",
	Long: `Parse a local JSON file with the same shape as the API response body.

File records are validated strictly: entries missing flight_date, flight.icao,
departure.icao or arrival.icao are skipped with a warning.

Examples:
  delayspottr parse flights.json
  delayspottr parse flights.json --sort delay --json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().String("query-date", "", "date label for saved reports and notifications")
	addDisplayFlags(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	printer := output.NewPrinter(cfg.Output.Colors)

	parser := internal.NewFileParser(logger)
	records, err := parser.ParseFile(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			printer.Error("File not found: %s", path)
		case errors.Is(err, internal.ErrInvalidJSON):
			printer.Error("Invalid JSON in file: %s", path)
		default:
			printer.Error("Unexpected error: %v", err)
		}
		return err
	}

	queryDate, _ := cmd.Flags().GetString("query-date")
	if queryDate == "" && len(records) > 0 {
		queryDate = records[0].FlightDate
	}

	return displayRecords(records, displayOptionsFromFlags(cmd.Flags(), queryDate))
}
