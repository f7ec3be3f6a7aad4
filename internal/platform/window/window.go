// Package window is the ebiten desktop frontend for the invaders game.
// ebiten drives the fixed-rate clock; each Update is one simulation tick.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Options configures the desktop window.
type Options struct {
	Scale float64 // Window size multiplier over the world size
	Debug bool    // Overlay TPS and tick information
}

// Window adapts a core.Game to ebiten.Game.
type Window struct {
	game      core.Game
	canvas    *Canvas
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	gameState core.GameState
	ticks     uint64

	pressed, justPressed KeyState
}

// New creates a window frontend for game.
func New(game core.Game, cfg core.RuntimeConfig, opts Options, logger *log.Logger) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Window{
		game:        game,
		canvas:      NewCanvas(),
		config:      cfg,
		opts:        opts,
		logger:      logger,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update runs one simulation tick.
func (w *Window) Update() error {
	in := readInput(w.pressed, w.justPressed)
	w.ticks++

	// A restart gets a fresh seed, like a new session
	if in.Has(core.ActionRestart) && w.gameState.GameOver {
		w.config.Seed = time.Now().UnixNano()
		w.game.Reset(w.config)
		w.gameState = w.game.State()
		w.logger.Info("game restarted", "seed", w.config.Seed)
		return nil
	}

	result := w.game.Step(in)
	if result.State.GameOver && !w.gameState.GameOver {
		w.logger.Info("game over", "score", result.State.Score, "won", result.State.Won)
	}
	w.gameState = result.State

	if result.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the game onto the window image.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.SetTarget(screen)
	w.game.Render(w.canvas)

	if w.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  tick %d", ebiten.ActualTPS(), w.ticks), 4, screen.Bounds().Dy()-16)
	}
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.game.Size()
}

// Run opens the window and blocks until the game quits or the window closes.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options, logger *log.Logger) error {
	win := New(game, cfg, opts, logger)
	game.Reset(win.config)

	worldW, worldH := game.Size()
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(float64(worldW)*win.opts.Scale), int(float64(worldH)*win.opts.Scale))
	ebiten.SetTPS(win.config.TickRate)

	win.logger.Info("window opened", "game", game.ID(), "seed", win.config.Seed, "fps", win.config.TickRate)
	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window frontend: %w", err)
	}
	return nil
}
