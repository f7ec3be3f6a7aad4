package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Size is the per-type box dimension shared by every instance of an entity kind.
type Size struct {
	W, H int
}

// Player is the ship at the bottom of the playfield.
type Player struct {
	X, Y int
}

// Box returns the player's bounding box.
func (p Player) Box(s Size) core.Rect {
	return core.NewRect(p.X, p.Y, s.W, s.H)
}

// Move shifts the ship horizontally by dx and keeps it on screen.
func (p *Player) Move(dx int, s Size, screenW int) {
	p.X = core.Clamp(p.X+dx, 0, core.Max(0, screenW-s.W))
}

// Enemy is one member of the formation. Position is its only state.
type Enemy struct {
	X, Y int
}

// Box returns the enemy's bounding box.
func (e Enemy) Box(s Size) core.Rect {
	return core.NewRect(e.X, e.Y, s.W, s.H)
}

// Shield is a destructible barrier between the player and the formation.
type Shield struct {
	X, Y   int
	Health int
}

// Box returns the shield's bounding box.
func (s Shield) Box(sz Size) core.Rect {
	return core.NewRect(s.X, s.Y, sz.W, sz.H)
}

// TakeDamage removes one point of health, never going below zero.
func (s *Shield) TakeDamage() {
	s.Health = core.Max(0, s.Health-1)
}

// Destroyed reports whether the shield has no health left.
func (s Shield) Destroyed() bool {
	return s.Health == 0
}

// Alpha returns the draw opacity: each lost point of health fades the
// shield by reduction, clamped to [0, 255].
func (s Shield) Alpha(initial, reduction int) uint8 {
	a := 255 - (initial-s.Health)*reduction
	return uint8(core.Clamp(a, 0, 255)) //#nosec G115 -- clamped to byte range
}
