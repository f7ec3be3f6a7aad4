package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func newTestModel(t *testing.T) (Model, *invaders.Game) {
	t.Helper()
	g := invaders.New(config.DefaultInvadersConfig())
	cfg := core.RuntimeConfig{ScreenW: 82, ScreenH: 33, TickRate: 60, Seed: 7}
	m := NewModel(g, cfg, log.New(io.Discard))
	m.Init()
	return m, g
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelScreenFitsChrome(t *testing.T) {
	m, _ := newTestModel(t)

	if m.screen.Width() != 80 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 80x30", m.screen.Width(), m.screen.Height())
	}

	m = step(t, m, tea.WindowSizeMsg{Width: 42, Height: 23})
	if m.screen.Width() != 40 || m.screen.Height() != 20 {
		t.Errorf("screen after resize = %dx%d, expected 40x20", m.screen.Width(), m.screen.Height())
	}
}

func TestModelHeldMovement(t *testing.T) {
	m, g := newTestModel(t)
	start := g.World().Player.X

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 3; i++ {
		m = step(t, m, TickMsg{})
	}

	speed := g.Config().Player.Speed
	if got := g.World().Player.X; got != start-3*speed {
		t.Errorf("Player.X = %d, expected %d", got, start-3*speed)
	}
}

func TestModelFireIsOneShot(t *testing.T) {
	m, g := newTestModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	if got := g.World().PlayerBullets.ActiveCount(); got != 1 {
		t.Errorf("active bullets = %d, expected 1", got)
	}
}

func TestModelQuitAfterTick(t *testing.T) {
	m, g := newTestModel(t)

	m = step(t, m, runeKey('q'))
	if m.quitting {
		t.Fatal("quit should wait for the tick to complete")
	}

	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if !m.quitting || cmd == nil {
		t.Fatal("tick after quit key should stop the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command after quit tick is not tea.Quit")
	}
	if g.Tick() != 1 {
		t.Errorf("Tick() = %d, expected the quitting tick to have run", g.Tick())
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelViewShowsScoreAndHelp(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("View() does not contain the score:\n%s", view)
	}
	if !strings.Contains(view, "fire") {
		t.Errorf("View() does not contain the help footer:\n%s", view)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = step(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help view")
	}
	m = step(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("second ? should collapse the help view")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m, g := newTestModel(t)
	w := g.World()
	w.Formation.Enemies = []invaders.Enemy{{X: 100, Y: 100}}
	w.PlayerBullets.Fire(110, 120)

	m = step(t, m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("game should be won after the last enemy falls")
	}

	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg{})

	if m.gameState.GameOver || g.Status() != invaders.StatusPlaying {
		t.Errorf("restart did not return to playing: %+v", m.gameState)
	}
	if g.World().Formation.Len() != 50 {
		t.Errorf("enemies after restart = %d, expected 50", g.World().Formation.Len())
	}
}
