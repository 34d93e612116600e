package tuiapp

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"github.com/micutio/delayspottr/internal"
)

// Error types

var errColumnMismatch = errors.New("number of columns does not match number of format columns")

// Automated Table Formatting

type tableColumnSizingOption int

const (
	// fixed column width, regardless of table width.
	fixed tableColumnSizingOption = iota
	// relative column with, given as percentage of the total table width.
	relative
	// fill columns receive any remaining table space, evenly distributed.
	fill
)

type columnFormat struct {
	option tableColumnSizingOption
	value  float32
}

type tableFormat struct {
	columnSizes        []columnFormat
	fixedWidth         int     // fixedWidth is the total space taken up by all fixed-width columns.
	fillWidthCount     int     // fillWidthCount indicates how many columns have fill width.
	totalRelativeWidth float32 // how much width is taken by relative columns.
}

func newTableFormat(items ...columnFormat) tableFormat {
	var totalRelativeWidth float32
	fixedWidth := 0
	fillWidthCount := 0

	for _, item := range items {
		switch item.option {
		case relative:
			totalRelativeWidth += item.value
			continue
		case fixed:
			fixedWidth += int(item.value)
			continue
		case fill:
			fillWidthCount++
			continue
		}
	}

	return tableFormat{
		columnSizes:        items,
		fixedWidth:         fixedWidth,
		fillWidthCount:     fillWidthCount,
		totalRelativeWidth: totalRelativeWidth,
	}
}

// Integrated Formatted Table Type

type autoFormatTable struct {
	table  table.Model
	format tableFormat
}

func (aft *autoFormatTable) resize(newWidth int) error {
	columnCount := len(aft.table.Columns())
	if columnCount != len(aft.format.columnSizes) {
		return fmt.Errorf(
			"table.resize: %w -> %d in table, %d in tableFormat",
			errColumnMismatch,
			columnCount,
			len(aft.format.columnSizes))
	}

	adjustedWidth := newWidth - 1 - columnCount
	aft.table.SetWidth(adjustedWidth)
	totalRelativeWidth := int(float32(adjustedWidth) * aft.format.totalRelativeWidth)
	totalFillWidth := adjustedWidth - totalRelativeWidth - aft.format.fixedWidth
	fillPerColumn := int(float32(totalFillWidth) / float32(aft.format.fillWidthCount))

	for idx := range columnCount {
		format := aft.format.columnSizes[idx]
		switch format.option {
		case fixed:
			aft.table.Columns()[idx].Width = int(format.value)
			continue
		case relative:
			aft.table.Columns()[idx].Width = int(format.value * float32(newWidth))
			continue
		case fill:
			aft.table.Columns()[idx].Width = fillPerColumn
			continue
		}
	}

	return nil
}

func (aft *autoFormatTable) SetHeight(height int) {
	aft.table.SetHeight(height)
}

func newFlightTable(tableStyle table.Styles, records []internal.FlightRecord) autoFormatTable {
	dateLen := 10
	flightLen := 9
	delayLen := 9
	statusLen := 14
	initialTableHeight := 20

	format := newTableFormat(
		columnFormat{fixed, float32(dateLen)},
		columnFormat{fixed, float32(flightLen)},
		columnFormat{fill, 0.0},
		columnFormat{fixed, float32(delayLen)},
		columnFormat{fixed, float32(statusLen)},
	)

	rows := make([]table.Row, 0, len(records))
	for i := range records {
		rows = append(rows, flightToRow(&records[i]))
	}

	flightTbl := table.New(
		// table header
		table.WithColumns(
			[]table.Column{
				{Title: "Date", Width: dateLen},
				{Title: "Flight", Width: flightLen},
				{Title: "Route", Width: 0},
				{Title: "Delay", Width: delayLen},
				{Title: "Status", Width: statusLen},
			},
		),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(initialTableHeight),
		table.WithStyles(tableStyle),
	)

	return autoFormatTable{
		table:  flightTbl,
		format: format,
	}
}

func flightToRow(record *internal.FlightRecord) table.Row {
	delayStr := "n/a"
	if record.ArrivalDelay > 0 {
		delayStr = fmt.Sprintf("%d min", record.ArrivalDelay)
	}

	return table.Row{
		record.FlightDate,
		record.FlightIcao,
		fmt.Sprintf("%s → %s", record.OriginIcao, record.DestinationIcao),
		delayStr,
		record.FlightStatus.String(),
	}
}
