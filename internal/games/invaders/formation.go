package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Formation marches the enemy grid as one rigid unit and schedules its fire.
type Formation struct {
	cfg     config.EnemiesConfig
	size    Size
	screenW int

	Direction    int // +1 right, -1 left
	MoveCounter  int
	ShootCounter int
	Enemies      []Enemy
}

// NewFormation builds a full rows x cols grid at the configured origin.
func NewFormation(cfg config.EnemiesConfig, screenW int) *Formation {
	f := &Formation{
		cfg:     cfg,
		size:    Size{W: cfg.Width, H: cfg.Height},
		screenW: screenW,
	}
	f.Reset()
	return f
}

// Reset refills the grid and clears direction and counters.
func (f *Formation) Reset() {
	f.Direction = 1
	f.MoveCounter = 0
	f.ShootCounter = 0
	f.Enemies = make([]Enemy, 0, f.cfg.Rows*f.cfg.Cols)
	for row := 0; row < f.cfg.Rows; row++ {
		for col := 0; col < f.cfg.Cols; col++ {
			f.Enemies = append(f.Enemies, Enemy{
				X: f.cfg.OriginX + col*(f.cfg.Width+f.cfg.SpacingX),
				Y: f.cfg.OriginY + row*(f.cfg.Height+f.cfg.SpacingY),
			})
		}
	}
}

// Size returns the enemy box size.
func (f *Formation) Size() Size {
	return f.size
}

// Len returns the number of live enemies.
func (f *Formation) Len() int {
	return len(f.Enemies)
}

// Box returns the bounding box of live enemy i.
func (f *Formation) Box(i int) core.Rect {
	return f.Enemies[i].Box(f.size)
}

// Remove deletes live enemy i, keeping the order of the rest.
func (f *Formation) Remove(i int) {
	f.Enemies = append(f.Enemies[:i], f.Enemies[i+1:]...)
}

// Update runs one tick of movement and shooting.
func (f *Formation) Update(bullets *Pool, rng RandomSource) {
	f.move()
	f.shoot(bullets, rng)
}

// move advances every enemy together. If any enemy ends up past a side
// edge the advance is undone for all of them, the whole grid drops once
// and the direction flips.
func (f *Formation) move() {
	f.MoveCounter++
	if f.MoveCounter < f.cfg.MoveDelay {
		return
	}
	f.MoveCounter = 0

	dx := f.Direction * f.cfg.Speed
	for i := range f.Enemies {
		f.Enemies[i].X += dx
	}

	if !f.pastEdge() {
		return
	}
	for i := range f.Enemies {
		f.Enemies[i].X -= dx
		f.Enemies[i].Y += f.cfg.Drop
	}
	f.Direction = -f.Direction
}

func (f *Formation) pastEdge() bool {
	for _, e := range f.Enemies {
		if e.X < 0 || e.X+f.size.W > f.screenW {
			return true
		}
	}
	return false
}

// shoot gives each live enemy an independent percent roll.
func (f *Formation) shoot(bullets *Pool, rng RandomSource) {
	f.ShootCounter++
	if f.ShootCounter < f.cfg.ShootDelay {
		return
	}
	f.ShootCounter = 0

	bw := bullets.Spec().Size.W
	for _, e := range f.Enemies {
		if rng.Intn(100) < f.cfg.ShootChance {
			cx, _ := e.Box(f.size).Center()
			bullets.Fire(cx-bw/2, e.Y+f.size.H)
		}
	}
}
