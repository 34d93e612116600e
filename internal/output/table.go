package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/micutio/delayspottr/internal"
)

// FlightTable renders flight records as a console table.
type FlightTable struct {
	table    *tablewriter.Table
	printer  *Printer
	airlines map[string]string
	header   []string
	rows     [][]string
}

// NewFlightTable creates a flight record table writing to w. When the airline
// name lookup is non-nil, a carrier column is included.
func NewFlightTable(w io.Writer, printer *Printer, airlines map[string]string) *FlightTable {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	header := []string{"Date", "Flight", "Route", "Delay", "Status"}
	if airlines != nil {
		header = []string{"Date", "Flight", "Carrier", "Route", "Delay", "Status"}
	}

	return &FlightTable{
		table:    table,
		printer:  printer,
		airlines: airlines,
		header:   header,
	}
}

// AddRecord appends one flight record to the table.
func (t *FlightTable) AddRecord(record internal.FlightRecord) {
	route := fmt.Sprintf("%s → %s", record.OriginIcao, record.DestinationIcao)

	delayStr := "n/a"
	if record.ArrivalDelay > 0 {
		delayStr = fmt.Sprintf("%d min", record.ArrivalDelay)
	}

	row := []string{
		record.FlightDate,
		record.FlightIcao,
		route,
		delayStr,
		t.printer.StatusText(record.FlightStatus),
	}
	if t.airlines != nil {
		carrier := internal.AirlineName(t.airlines, record.FlightIcao)
		row = []string{record.FlightDate, record.FlightIcao, carrier, route, delayStr, row[4]}
	}

	t.rows = append(t.rows, row)
}

// Render outputs the table.
func (t *FlightTable) Render() {
	t.table.Header(t.header)
	t.table.Bulk(t.rows)
	t.table.Render()
}
