package tuiapp

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/micutio/delayspottr/internal"
)

// headerHeight is the number of terminal rows reserved above the table.
const headerHeight = 6

// Model implements the bubbletea.Model interface, which requires three methods:
// - Init() Cmd
// - Update(Msg) (Model, Cmd)
// - View() string
// This forms the base for the TUI app.
type model struct {
	width      int
	height     int
	baseStyle  lipgloss.Style
	viewStyle  lipgloss.Style
	theme      Theme
	flightTbl  autoFormatTable
	tableStyle table.Styles
	title      string
	queryDate  string
	summary    internal.Summary
}

// Init returns no command; the record batch is already complete when the app
// starts, so there is nothing to schedule.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update takes a tea.Msg as input and uses a type switch to handle different types of messages.
// Each case in the switch statement corresponds to a specific message type.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // required by interface
	switch thisMsg := msg.(type) {
	// message is sent when the window size changes
	// save to reflect the new dimensions of the terminal window.
	case tea.WindowSizeMsg:
		m.height = thisMsg.Height
		m.width = thisMsg.Width

		if err := m.flightTbl.resize(m.width); err == nil {
			m.flightTbl.SetHeight(m.height - headerHeight)
		}

	// message is sent when a key is pressed.
	case tea.KeyMsg:
		switch thisMsg.String() {
		// Toggles the focus state of the flight table
		case "esc":
			if m.flightTbl.table.Focused() {
				m.tableStyle.Selected = m.baseStyle
				m.flightTbl.table.SetStyles(m.tableStyle)
				m.flightTbl.table.Blur()
			} else {
				m.tableStyle.Selected = m.tableStyle.Selected.Background(m.theme.Highlight)
				m.flightTbl.table.SetStyles(m.tableStyle)
				m.flightTbl.table.Focus()
			}
		// Moves the focus up in the flight table if the table is focused.
		case "up", "k":
			if m.flightTbl.table.Focused() {
				m.flightTbl.table.MoveUp(1)
			}
		// Moves the focus down in the flight table if the table is focused.
		case "down", "j":
			if m.flightTbl.table.Focused() {
				m.flightTbl.table.MoveDown(1)
			}
		// Quits the program by returning the tea.Quit command.
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	// If the message type does not match any of the handled cases, the model is returned unchanged,
	// and no new command is issued.
	return m, nil
}

func (m *model) View() string {
	// Sets the width of the column to the width of the terminal (m.width) and adds padding of 1 unit
	// on the top.
	// Render is a method from the lipgloss package that applies the defined style and returns
	// a function that can render styled content.
	column := m.baseStyle.Width(m.width).Padding(1, 0, 0, 0).Render
	// Set the content to match the terminal dimensions (m.width and m.height).
	content := m.baseStyle.
		Width(m.width).
		Height(m.height).
		Render(
			// Vertically join multiple elements aligned to the left.
			lipgloss.JoinVertical(lipgloss.Left,
				column(m.viewHeader()),
				column(m.viewFlights()),
			),
		)

	return content
}

// Arranges the title line and summary figures above the flight table.
func (m *model) viewHeader() string {
	listHeader := m.baseStyle.Bold(true).Render

	// Helper function that formats a key-value pair.
	// It aligns the value to the right and renders it with the specified style.
	listItem := func(key string, value string) string {
		listItemValue := m.baseStyle.Align(lipgloss.Right).Render(value)

		listItemKey := func(key string) string {
			return m.baseStyle.Render(key + ":")
		}

		return fmt.Sprintf("%s %s ", listItemKey(key), listItemValue)
	}

	return m.viewStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			listHeader(fmt.Sprintf("%s - %s", m.title, m.queryDate)),
			lipgloss.JoinHorizontal(
				lipgloss.Left,
				listItem("Total", fmt.Sprintf("%d", m.summary.Total)),
				listItem("On time", fmt.Sprintf("%d", m.summary.OnTime)),
				listItem("Delayed", fmt.Sprintf("%d", m.summary.Delayed)),
				listItem("Cancelled", fmt.Sprintf("%d", m.summary.Cancelled)),
				listItem("Diverted", fmt.Sprintf("%d", m.summary.Diverted)),
				listItem("Avg delay", fmt.Sprintf("%.1f min", m.summary.AverageDelay)),
			),
		),
	)
}

func (m *model) viewFlights() string {
	return m.viewStyle.Render(m.flightTbl.table.View())
}
