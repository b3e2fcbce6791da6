package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/maps"
)

type appView int

const (
	viewMenu appView = iota
	viewSimulation
	viewHistory
)

// AppModel manages the full flow: menu -> simulation -> menu, with the
// run history one key away. It is the top-level model for the local menu
// and for SSH sessions.
type AppModel struct {
	launcher Launcher
	catalog  []maps.Map
	config   core.RuntimeConfig
	view     appView
	menu     MenuModel
	sim      *Model
	history  *HistoryModel
	quitting bool
}

// NewAppModel creates the top-level model.
func NewAppModel(launcher Launcher, catalog []maps.Map, cfg core.RuntimeConfig) AppModel {
	return AppModel{
		launcher: launcher,
		catalog:  catalog,
		config:   cfg,
		menu:     NewMenuModel(catalog, launcher.Store, cfg),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewSimulation:
		return m.updateSimulation(msg)
	case viewHistory:
		return m.updateHistory(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks left over from a finished simulation.
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		m.menu.reset()
		history := NewHistoryModel(m.launcher.Store, m.config.ScreenW, m.config.ScreenH)
		m.history = &history
		m.view = viewHistory
		return m, m.history.Init()
	}

	if sel := m.menu.Selected(); sel != nil {
		m.menu.reset()
		sess, err := m.launcher.NewSession(*sel)
		if err != nil {
			if m.launcher.Logger != nil {
				m.launcher.Logger.Error("cannot start session", "err", err)
			}
			return m, nil
		}
		sim := NewModel(sess, m.config, m.launcher.Config.Render.ShowHelp)
		sim.embedded = true
		m.sim = &sim
		m.view = viewSimulation
		return m, m.sim.Init()
	}

	return m, cmd
}

// updateSimulation handles updates while a session is shown.
func (m AppModel) updateSimulation(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.sim.Update(msg)
	if sim, ok := newModel.(Model); ok {
		m.sim = &sim
	}

	if m.sim.quitting {
		m.quitting = true
		return m, tea.Quit
	}

	if m.sim.BackToMenu() {
		m.sim = nil
		m.view = viewMenu
		m.menu.width, m.menu.height = m.config.ScreenW, m.config.ScreenH
		return m, nil
	}

	return m, cmd
}

// updateHistory handles updates while the run history is shown.
func (m AppModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if history, ok := newModel.(HistoryModel); ok {
		m.history = &history
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.history = nil
		m.view = viewMenu
		m.menu.width, m.menu.height = m.config.ScreenW, m.config.ScreenH
		return m, nil
	}

	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewSimulation:
		return m.sim.View()
	case viewHistory:
		return m.history.View()
	}
	return m.menu.View()
}

// RunApp starts the menu flow in the local terminal.
func RunApp(launcher Launcher, catalog []maps.Map, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewAppModel(launcher, catalog, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
