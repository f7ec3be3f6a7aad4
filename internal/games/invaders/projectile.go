package invaders

import (
	"image/color"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ProjectileSpec describes one projectile variant. Player and enemy
// bullets share the Projectile type and differ only by spec.
type ProjectileSpec struct {
	Size  Size
	Speed int // Signed vertical velocity per tick; negative is upward
	Color color.RGBA
}

// Projectile is one pool slot. Inactive slots are free for reuse.
type Projectile struct {
	X, Y   int
	Active bool
}

// Pool is a fixed-capacity set of projectiles allocated once.
// A projectile's identity is its slot index.
type Pool struct {
	spec    ProjectileSpec
	screenH int
	slots   []Projectile
}

// NewPool allocates a pool of capacity inactive slots.
func NewPool(spec ProjectileSpec, capacity, screenH int) *Pool {
	return &Pool{
		spec:    spec,
		screenH: screenH,
		slots:   make([]Projectile, core.Max(0, capacity)),
	}
}

// Spec returns the variant this pool was built with.
func (p *Pool) Spec() ProjectileSpec {
	return p.spec
}

// Cap returns the number of slots.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Fire activates the first inactive slot at (x, y).
// It returns false and changes nothing when every slot is in use.
func (p *Pool) Fire(x, y int) bool {
	for i := range p.slots {
		if !p.slots[i].Active {
			p.slots[i] = Projectile{X: x, Y: y, Active: true}
			return true
		}
	}
	return false
}

// Update advances every active projectile and retires the ones that left
// the screen this tick.
func (p *Pool) Update() {
	for i := range p.slots {
		s := &p.slots[i]
		if !s.Active {
			continue
		}
		s.Y += p.spec.Speed
		if p.spec.Speed < 0 && s.Y < 0 {
			s.Active = false
		} else if p.spec.Speed > 0 && s.Y > p.screenH {
			s.Active = false
		}
	}
}

// Deactivate frees slot i. Calling it on a free slot is a no-op.
func (p *Pool) Deactivate(i int) {
	if i < 0 || i >= len(p.slots) {
		return
	}
	p.slots[i].Active = false
}

// Active reports whether slot i is in flight.
func (p *Pool) Active(i int) bool {
	return i >= 0 && i < len(p.slots) && p.slots[i].Active
}

// ActiveCount returns the number of projectiles in flight.
func (p *Pool) ActiveCount() int {
	n := 0
	for _, s := range p.slots {
		if s.Active {
			n++
		}
	}
	return n
}

// Box returns the bounding box of slot i.
func (p *Pool) Box(i int) core.Rect {
	s := p.slots[i]
	return core.NewRect(s.X, s.Y, p.spec.Size.W, p.spec.Size.H)
}

// Slot returns a copy of slot i.
func (p *Pool) Slot(i int) Projectile {
	return p.slots[i]
}

// Slots returns a copy of every slot in index order.
func (p *Pool) Slots() []Projectile {
	out := make([]Projectile, len(p.slots))
	copy(out, p.slots)
	return out
}

// Reset frees every slot without reallocating.
func (p *Pool) Reset() {
	for i := range p.slots {
		p.slots[i] = Projectile{}
	}
}
