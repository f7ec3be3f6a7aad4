package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// flashTicks is how long a status message stays in the footer.
const flashTicks = 120

// Model is the Bubble Tea model running one game.
type Model struct {
	game      core.Game
	screen    *core.Screen
	canvas    *Canvas
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	held      *HeldKeys
	logger    *log.Logger
	input     core.InputFrame
	gameState core.GameState
	flash     string
	flashLeft int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	screen := core.NewScreen(core.Max(1, cfg.ScreenW-chromeW), core.Max(1, cfg.ScreenH-chromeH))
	worldW, worldH := game.Size()

	return Model{
		game:   game,
		screen: screen,
		canvas: NewCanvas(screen, worldW, worldH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   NewHeldKeys(),
		logger: logger,
		input:  core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyFrame()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action)
	case core.ActionQuit:
		// Honoured after the next tick completes
		m.input.Hold(core.ActionQuit)
	case core.ActionFire, core.ActionRestart:
		m.input.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The playfield scales to
// the new size without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(core.Max(1, msg.Width-chromeW), core.Max(1, msg.Height-chromeH))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Apply(&m.input)

	// A restart gets a fresh seed, like a new session
	if m.input.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.logger.Info("game restarted", "seed", m.config.Seed)
		m.held.Release()
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.input)
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game over", "score", result.State.Score, "won", result.State.Won)
	}
	m.gameState = result.State
	m.input.Clear()

	if m.flashLeft > 0 {
		m.flashLeft--
		if m.flashLeft == 0 {
			m.flash = ""
		}
	}

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) setFlash(msg string) {
	m.flash = msg
	m.flashLeft = flashTicks
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.setFlash("screenshot failed")
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.setFlash("screenshot failed")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "path", path, "error", err)
		m.setFlash("screenshot failed")
		return
	}

	m.logger.Info("screenshot saved", "path", path)
	m.setFlash("saved " + path)
}

// copyFrame puts the current frame on the system clipboard as plain text.
func (m *Model) copyFrame() {
	m.game.Render(m.canvas)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("clipboard copy failed", "error", err)
		m.setFlash("clipboard unavailable")
		return
	}
	m.setFlash("frame copied to clipboard")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return renderFrame(m.screen, m.help.View(m.keys), m.flash)
}

// Run starts the Bubble Tea program for game.
func Run(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal frontend: %w", err)
	}
	return nil
}
