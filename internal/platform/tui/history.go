package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pathfinder/internal/registry"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the algorithm sidebar
	sidebarWidth       = 28  // Width of the algorithm sidebar
	maxRuns            = 100 // Max runs to load
)

// HistoryKeyMap defines the key bindings for the run history.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextAlg key.Binding
	PrevAlg key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextAlg, k.PrevAlg, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextAlg, k.PrevAlg},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextAlg: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next algorithm"),
		),
		PrevAlg: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev algorithm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the recorded runs screen.
type HistoryModel struct {
	algorithms  []registry.AlgorithmInfo
	algCursor   int
	store       *storage.Store
	runs        []storage.RunRecord
	summary     *storage.AlgorithmStats
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		algorithms:  registry.List(),
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.algorithms) > 0 {
		m.loadRuns(m.algorithms[0].ID)
	}
	return m
}

// createTable creates a new table with columns sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Map", Width: 12},
		{Title: "Result", Width: 8},
		{Title: "Path", Width: 6},
		{Title: "Visited", Width: 8},
		{Title: "Steps", Width: 7},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads recent runs and the summary for the given algorithm.
func (m *HistoryModel) loadRuns(algorithmID string) {
	m.runs = nil
	m.summary = nil
	if m.store != nil {
		if runs, err := m.store.RecentRuns(algorithmID, maxRuns); err == nil {
			m.runs = runs
		}
		if all, err := m.store.AllAlgorithmStats(); err == nil {
			m.summary = all[algorithmID]
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table with the loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		result := "found"
		path := fmt.Sprintf("%d", r.PathLength)
		if !r.Found {
			result = "no path"
			path = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.MapID,
			result,
			path,
			fmt.Sprintf("%d", r.Visited),
			fmt.Sprintf("%d", r.Steps),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextAlg):
			if len(m.algorithms) > 0 {
				m.algCursor = (m.algCursor + 1) % len(m.algorithms)
				m.loadRuns(m.algorithms[m.algCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevAlg):
			if len(m.algorithms) > 0 {
				m.algCursor = (m.algCursor - 1 + len(m.algorithms)) % len(m.algorithms)
				m.loadRuns(m.algorithms[m.algCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RUN HISTORY"
	if len(m.algorithms) > 0 {
		title = "RUN HISTORY - " + m.algorithms[m.algCursor].Title
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	content := boxStyle.Render(m.renderTableContent())
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(content)
	}
	b.WriteString("\n")

	if line := m.summaryLine(); line != "" {
		b.WriteString(dimStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) renderSidebar() string {
	var sidebar strings.Builder
	sidebar.WriteString("Algorithms\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, a := range m.algorithms {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.algCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + a.Title))
		sidebar.WriteString("\n")
	}

	return boxStyle.Width(sidebarWidth).Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a simulation to see it here!")
	}
	return m.table.View()
}

func (m HistoryModel) summaryLine() string {
	if m.summary == nil {
		return ""
	}
	return fmt.Sprintf("%d runs, %d found, avg visited %.1f, avg path %.1f",
		m.summary.Runs, m.summary.Found, m.summary.AvgVisited, m.summary.AvgPath)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen as a standalone program.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
