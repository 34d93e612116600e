package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/micutio/delayspottr/internal"
	"github.com/micutio/delayspottr/internal/output"
	"github.com/micutio/delayspottr/tuiapp"
)

// displayOptions collect the flags shared by the fetch and parse commands.
type displayOptions struct {
	queryDate  string
	saveToFile string
	jsonOutput bool
	notify     bool
	tui        bool
	sortKey    string
}

func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().String("save-to-file", "", "save the result as a JSON report file")
	cmd.Flags().Bool("json", false, "output records as JSON instead of a table")
	cmd.Flags().Bool("notify", false, "post the summary as a desktop notification")
	cmd.Flags().Bool("tui", false, "browse the records interactively")
	cmd.Flags().String("sort", internal.SortKeyNone, "sort records by delay|flight|date|none")
}

func displayOptionsFromFlags(flags *pflag.FlagSet, queryDate string) displayOptions {
	saveToFile, _ := flags.GetString("save-to-file")
	jsonOutput, _ := flags.GetBool("json")
	notify, _ := flags.GetBool("notify")
	tui, _ := flags.GetBool("tui")
	sortKey, _ := flags.GetString("sort")

	return displayOptions{
		queryDate:  queryDate,
		saveToFile: saveToFile,
		jsonOutput: jsonOutput,
		notify:     notify,
		tui:        tui,
		sortKey:    sortKey,
	}
}

// displayRecords renders, saves and announces a batch of flight records.
// Saving and notification failures are warnings; only rendering errors fail
// the command.
func displayRecords(records []internal.FlightRecord, opts displayOptions) error {
	printer := output.NewPrinter(cfg.Output.Colors)
	summary := internal.Summarize(records)

	internal.SortRecords(records, opts.sortKey)

	if opts.saveToFile != "" {
		if err := internal.WriteReport(opts.saveToFile, opts.queryDate, records); err != nil {
			logger.Warn("failed to save report", "path", opts.saveToFile, "err", err)
			printer.Warning("Could not save to file: %v", err)
		} else {
			logger.Info("report saved", "path", opts.saveToFile)
			printer.Success("Data saved to %s", opts.saveToFile)
		}
	}

	if opts.notify {
		if err := internal.NewNotify(appName).SummaryNotification(opts.queryDate, summary); err != nil {
			logger.Warn("failed to post notification", "err", err)
		}
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		printer.Info("No flight data found for the specified date.")
		logger.Info("no flight records to display")
		return nil
	}

	if opts.tui {
		return tuiapp.Run(appName, opts.queryDate, records, summary)
	}

	renderTable(printer, records)

	if len(records) > 1 {
		renderSummary(printer, summary)
	}

	return nil
}

func renderTable(printer *output.Printer, records []internal.FlightRecord) {
	airlines := loadAirlines()

	table := output.NewFlightTable(os.Stdout, printer, airlines)
	for _, record := range records {
		table.AddRecord(record)
	}
	table.Render()
}

// loadAirlines resolves the optional carrier name lookup. Missing or broken
// lookup data only costs the carrier column, never the command.
func loadAirlines() map[string]string {
	if cfg.Data.AirlinesFile == "" {
		return nil
	}

	airlines, err := internal.LoadAirlineNames(cfg.Data.AirlinesFile)
	if err != nil {
		logger.Debug("airline name lookup unavailable", "path", cfg.Data.AirlinesFile, "err", err)
		return nil
	}

	return airlines
}

func renderSummary(printer *output.Printer, summary internal.Summary) {
	printer.Header("Summary")
	printer.Print("  Total flights: %d", summary.Total)
	printer.Print("  On time: %d", summary.OnTime)
	printer.Print("  Delayed: %d", summary.Delayed)
	printer.Print("  Cancelled: %d", summary.Cancelled)
	printer.Print("  Diverted: %d", summary.Diverted)
	printer.Print("  Average delay: %.1f minutes", summary.AverageDelay)

	// Category breakdown from rarest to most common.
	for _, tuple := range internal.GetSortedCountsForProperty(summary.CategoryCounts) {
		printer.Print("    %6d - %s", tuple.Count, tuple.Property)
	}
}
