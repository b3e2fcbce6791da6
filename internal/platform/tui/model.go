package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/session"
)

// helpLines is the number of rows kept below the grid for the help bar.
const helpLines = 4

// Model is the Bubble Tea model for one pathfinding session.
type Model struct {
	session    *session.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	showHelp   bool
	inputFrame core.InputFrame
	lastTick   time.Time
	embedded   bool // running inside the menu flow
	backToMenu bool
	quitting   bool

	screenshotDir string
}

// NewModel creates a new Bubble Tea model driving sess.
func NewModel(sess *session.Session, cfg core.RuntimeConfig, showHelp bool) Model {
	w, h := sess.Size()
	if cfg.ScreenW > 0 && cfg.ScreenH > helpLines {
		w, h = cfg.ScreenW, cfg.ScreenH-helpLines
	}
	return Model{
		session:       sess,
		screen:        core.NewScreen(w, h),
		config:        cfg,
		keyMapper:     NewKeyMapper(),
		help:          help.New(),
		showHelp:      showHelp,
		inputFrame:    core.NewInputFrame(),
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Back) && m.embedded:
		m.backToMenu = true
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse maps clicks on the grid to the cursor and to actions.
// Left click places the next designation, right click or right drag
// places obstacles.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cell, ok := m.session.CellAtScreen(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.session.SetCursor(cell)
		m.inputFrame.Set(core.ActionPrimary)
	case msg.Button == tea.MouseButtonRight &&
		(msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion):
		m.session.SetCursor(cell)
		m.session.Obstacle()
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-helpLines, 1))
	return m, nil
}

// handleTick advances the session by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.FrameDuration()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.session.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// BackToMenu reports whether the user asked to leave the simulation.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".pathfinder", "screenshots")
}

// saveScreenshot writes the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.session.Notify("Screenshot failed: " + err.Error())
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.State().Algorithm, timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.session.Notify("Screenshot failed: " + err.Error())
		return
	}
	m.session.Notify("Saved " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.showHelp {
		view += "\n\n" + m.help.View(m.keyMapper.Keys())
	}
	return view
}

// Run starts a standalone Bubble Tea program for sess.
func Run(sess *session.Session, cfg core.RuntimeConfig, showHelp bool) error {
	model := NewModel(sess, cfg, showHelp)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
