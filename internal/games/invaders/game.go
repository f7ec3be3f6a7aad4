// Package invaders implements the invaders shooter simulation: a player
// ship, a marching enemy formation, two projectile pools, destructible
// shields and the Playing/Lost/Won state machine.
//
// The package is pure logic. Frontends feed it one core.InputFrame per
// tick and hand it a core.Renderer to draw on.
package invaders

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Status is the state machine position.
type Status int

const (
	StatusPlaying Status = iota
	StatusLost
	StatusWon
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal screen text
const (
	LostMessage    = "GAME OVER"
	WonMessage     = "YOU WIN!"
	RestartMessage = "Press R to restart"
	hudMargin      = 10
)

// Option configures a Game at construction.
type Option func(*Game)

// WithRandom injects the source used for enemy fire rolls. An injected
// source is kept across resets instead of being reseeded.
func WithRandom(r RandomSource) Option {
	return func(g *Game) {
		g.rng = r
		g.fixedRNG = true
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game owns every entity and pool and drives the per-tick update sequence.
type Game struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig

	rng      RandomSource
	fixedRNG bool
	logger   *log.Logger

	world  World
	status Status
	score  int
	tick   uint64
}

// New creates a game from a validated configuration and resets it with
// core.DefaultConfig. Frontends call Reset again with their runtime values.
func New(cfg config.InvadersConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Size returns the playfield dimensions in world units.
func (g *Game) Size() (w, h int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// Reset rebuilds the player, both pools, the enemy grid and the shields,
// and clears score, counters and status.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.fixedRNG {
		g.rng = NewSimpleRNG(runtime.Seed)
	}

	cfg := g.cfg
	sw, sh := cfg.Screen.Width, cfg.Screen.Height
	playerSize := Size{W: cfg.Player.Width, H: cfg.Player.Height}

	g.world = World{
		Player: Player{
			X: (sw - playerSize.W) / 2,
			Y: sh - playerSize.H - cfg.Player.BottomMargin,
		},
		PlayerSize:    playerSize,
		PlayerBullets: NewPool(projectileSpec(cfg.PlayerBullet), cfg.PlayerBullet.PoolSize, sh),
		EnemyBullets:  NewPool(projectileSpec(cfg.EnemyBullet), cfg.EnemyBullet.PoolSize, sh),
		Formation:     NewFormation(cfg.Enemies, sw),
		Shields:       buildShields(cfg.Shields, sw),
		ShieldSize:    Size{W: cfg.Shields.Width, H: cfg.Shields.Height},
	}

	g.status = StatusPlaying
	g.score = 0
	g.tick = 0

	g.logger.Debug("game reset",
		"seed", runtime.Seed,
		"enemies", g.world.Formation.Len(),
		"shields", len(g.world.Shields))
}

func projectileSpec(c config.ProjectileConfig) ProjectileSpec {
	return ProjectileSpec{
		Size:  Size{W: c.Width, H: c.Height},
		Speed: c.Speed,
		Color: c.Color.RGBA(),
	}
}

// buildShields spaces count shields evenly across the screen, each
// centred on its slot.
func buildShields(c config.ShieldsConfig, screenW int) []Shield {
	shields := make([]Shield, 0, c.Count)
	spacing := screenW / (c.Count + 1)
	for i := 0; i < c.Count; i++ {
		shields = append(shields, Shield{
			X:      spacing*(i+1) - c.Width/2,
			Y:      c.Y,
			Health: c.Health,
		})
	}
	return shields
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	quit := in.IsHeld(core.ActionQuit)

	if g.status != StatusPlaying {
		if in.Has(core.ActionRestart) {
			g.logger.Info("restart", "previous", g.status, "score", g.score)
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State(), Quit: quit}
	}

	g.tick++

	dx := 0
	if in.IsHeld(core.ActionLeft) {
		dx -= g.cfg.Player.Speed
	}
	if in.IsHeld(core.ActionRight) {
		dx += g.cfg.Player.Speed
	}
	if dx != 0 {
		g.world.Player.Move(dx, g.world.PlayerSize, g.cfg.Screen.Width)
	}
	if in.Has(core.ActionFire) {
		g.FireBullet()
	}

	g.world.PlayerBullets.Update()
	g.world.EnemyBullets.Update()
	g.world.Formation.Update(g.world.EnemyBullets, g.rng)

	out := g.world.Resolve(g.cfg.Scoring.KillScore)
	g.score += out.Points
	if out.ShieldsDestroyed > 0 {
		g.logger.Debug("shield destroyed", "tick", g.tick, "remaining", len(g.world.Shields))
	}

	switch {
	case out.Lost:
		g.status = StatusLost
		g.logger.Info("game lost", "tick", g.tick, "score", g.score)
	case out.Won:
		g.status = StatusWon
		g.logger.Info("game won", "tick", g.tick, "score", g.score)
	}

	return core.StepResult{State: g.State(), Quit: quit}
}

// FireBullet launches a player bullet centred on the ship, just above it.
// It reports false when the game is over or the pool is exhausted.
func (g *Game) FireBullet() bool {
	if g.status != StatusPlaying {
		return false
	}
	p := g.world.Player
	bs := g.world.PlayerBullets.Spec().Size
	cx, _ := p.Box(g.world.PlayerSize).Center()
	return g.world.PlayerBullets.Fire(cx-bs.W/2, p.Y-bs.H)
}

// Render issues this tick's draw requests.
func (g *Game) Render(r core.Renderer) {
	bg := g.cfg.Screen.Background.RGBA()
	fg := g.cfg.Screen.Text.RGBA()

	r.Clear(bg)
	if g.status != StatusPlaying {
		g.renderEnd(r, fg)
		r.Present()
		return
	}

	r.DrawText(hudMargin, hudMargin, fmt.Sprintf("Score: %d", g.score), fg)

	f := g.world.Formation
	enemyColor := g.cfg.Enemies.Color.RGBA()
	for i, limit := 0, f.Len(); i < limit; i++ {
		r.FillRect(f.Box(i), enemyColor)
	}

	shieldColor := g.cfg.Shields.Color.RGBA()
	for _, s := range g.world.Shields {
		a := s.Alpha(g.cfg.Shields.Health, g.cfg.Shields.AlphaReduction)
		r.FillRect(s.Box(g.world.ShieldSize), withAlpha(shieldColor, a))
	}

	r.FillRect(g.world.Player.Box(g.world.PlayerSize), g.cfg.Player.Color.RGBA())

	drawPool(r, g.world.PlayerBullets)
	drawPool(r, g.world.EnemyBullets)

	r.Present()
}

func drawPool(r core.Renderer, p *Pool) {
	c := p.Spec().Color
	for i, end := 0, p.Cap(); i < end; i++ {
		if p.Active(i) {
			r.FillRect(p.Box(i), c)
		}
	}
}

// renderEnd draws the message, final score and restart prompt centred
// on the screen.
func (g *Game) renderEnd(r core.Renderer, fg color.RGBA) {
	msg, msgColor := LostMessage, core.ColorBrightRed.RGBA()
	if g.status == StatusWon {
		msg, msgColor = WonMessage, core.ColorBrightGreen.RGBA()
	}

	cy := g.cfg.Screen.Height / 2
	lines := []struct {
		text string
		y    int
		c    color.RGBA
	}{
		{msg, cy - 50, msgColor},
		{fmt.Sprintf("Final Score: %d", g.score), cy, fg},
		{RestartMessage, cy + 50, fg},
	}
	for _, l := range lines {
		x := (g.cfg.Screen.Width - r.MeasureText(l.text)) / 2
		r.DrawText(core.Max(0, x), l.y, l.text, l.c)
	}
}

// withAlpha returns c at opacity a as a premultiplied colour.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	n := color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
	return color.RGBAModel.Convert(n).(color.RGBA)
}

// State returns the frontend-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status != StatusPlaying,
		Won:      g.status == StatusWon,
	}
}

// Status returns the state machine position.
func (g *Game) Status() Status {
	return g.status
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Tick returns the number of simulated Playing ticks since the last reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// World exposes the live entities. Callers must not retain it across ticks.
func (g *Game) World() *World {
	return &g.world
}
