// Package tuiapp provides an interactive browser for a single batch of flight
// delay records.
// Layout idea:
// +-------------------------------------------------+
// | delayspottr - 2024-01-01                        |
// |                                                 |
// | Total: ... Delayed: ... Avg delay: ...          |
// |  _____________________________________________  |
// | | flight table                                | |
// | | entry 0                                     | |
// | | ...                                         | |
// | | entry N                                     | |
// |  ---------------------------------------------  |
// +-------------------------------------------------+
// .
package tuiapp

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/micutio/delayspottr/internal"
)

type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Green     lipgloss.AdaptiveColor
	Red       lipgloss.AdaptiveColor
}

var Color = Theme{
	Primary:   lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	Secondary: lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"},
	Highlight: lipgloss.AdaptiveColor{Light: "#8b2def", Dark: "#8b2def"},
	Border:    lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"},
	Green:     lipgloss.AdaptiveColor{Light: "#00FF00", Dark: "#00FF00"},
	Red:       lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF0000"},
}

// Run displays the given records in a scrollable table until the user quits.
// The record batch is final; nothing is re-fetched while the app runs.
func Run(title string, queryDate string, records []internal.FlightRecord, summary internal.Summary) error {
	tableStyle := table.DefaultStyles()
	tableStyle.Selected = lipgloss.NewStyle().Background(Color.Highlight)

	m := model{
		title:      title,
		queryDate:  queryDate,
		summary:    summary,
		flightTbl:  newFlightTable(tableStyle, records),
		tableStyle: tableStyle,
		theme:      Color,
		baseStyle:  lipgloss.NewStyle(),
		viewStyle:  lipgloss.NewStyle(),
	}

	// Create a new Bubble Tea program with the model and enable alternate screen
	p := tea.NewProgram(&m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tuiapp.Run: %w", err)
	}

	return nil
}
