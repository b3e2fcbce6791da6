package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/maps"
	"github.com/vovakirdan/tui-pathfinder/internal/registry"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// Map choices that are not backed by a map file.
const (
	MapBlank  = "blank"
	MapRandom = "random"
)

// MenuItem represents a selectable algorithm in the menu.
type MenuItem struct {
	AlgorithmID string
	Title       string
	Description string
}

// MapChoice is one entry of the map selector.
type MapChoice struct {
	ID    string
	Title string
	Map   *maps.Map // nil for blank and random
}

// Selection is what the user picked in the menu.
type Selection struct {
	AlgorithmID string
	Map         MapChoice
}

// MenuModel is the Bubble Tea model for the algorithm and map picker.
type MenuModel struct {
	items       []MenuItem
	choices     []MapChoice
	cursor      int
	mapCursor   int
	width       int
	height      int
	store       *storage.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *Selection
	openHistory bool
}

// NewMenuModel creates a new menu model over the given map catalog.
func NewMenuModel(catalog []maps.Map, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	algs := registry.List()
	items := make([]MenuItem, 0, len(algs))
	for _, a := range algs {
		items = append(items, MenuItem{
			AlgorithmID: a.ID,
			Title:       a.Title,
			Description: a.Description,
		})
	}

	choices := make([]MapChoice, 0, len(catalog)+2)
	choices = append(choices, MapChoice{ID: MapBlank, Title: "Blank grid"})
	for i := range catalog {
		m := catalog[i]
		choices = append(choices, MapChoice{ID: m.ID, Title: m.Name, Map: &m})
	}
	choices = append(choices, MapChoice{ID: MapRandom, Title: "Random obstacles"})

	return MenuModel{
		items:     items,
		choices:   choices,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionPrevMap:
		m.mapCursor = (m.mapCursor - 1 + len(m.choices)) % len(m.choices)

	case MenuActionNextMap:
		m.mapCursor = (m.mapCursor + 1) % len(m.choices)

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = &Selection{
				AlgorithmID: m.items[m.cursor].AlgorithmID,
				Map:         m.choices[m.mapCursor],
			}
			return m, tea.Quit
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  P A T H F I N D E R  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select an algorithm", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-26s", cursor, item.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(centerText(m.items[m.cursor].Description, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	choice := m.choices[m.mapCursor]
	b.WriteString(centerText(fmt.Sprintf("<  Map: %s  >", choice.Title), m.width))
	b.WriteString("\n")
	if best := m.bestRunLine(); best != "" {
		b.WriteString(dimStyle.Render(centerText(best, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Algorithm  |  Left/Right: Map  |  Enter: Start  |  Tab: History  |  Q: Quit"
	b.WriteString(helpStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// bestRunLine describes the best recorded run for the current selection.
func (m MenuModel) bestRunLine() string {
	if m.store == nil || len(m.items) == 0 {
		return ""
	}
	mapID := m.choices[m.mapCursor].ID
	if mapID == MapBlank {
		mapID = "custom"
	}
	best, err := m.store.BestRun(m.items[m.cursor].AlgorithmID, mapID)
	if err != nil || best == nil {
		return ""
	}
	return fmt.Sprintf("Best: path %d, %d visited (%s)", best.PathLength, best.Visited, best.CreatedAt.Format("Jan 02 15:04"))
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the run history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// reset clears the selection so the menu can be shown again.
func (m *MenuModel) reset() {
	m.selected = nil
	m.openHistory = false
	m.quitting = false
}
