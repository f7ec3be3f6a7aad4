package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func upSpec() ProjectileSpec {
	return ProjectileSpec{Size: Size{W: 4, H: 20}, Speed: -10}
}

func downSpec() ProjectileSpec {
	return ProjectileSpec{Size: Size{W: 4, H: 20}, Speed: 5}
}

func TestPoolFireActivatesOneSlot(t *testing.T) {
	p := NewPool(upSpec(), 5, 600)

	if !p.Fire(100, 200) {
		t.Fatal("Fire() on empty pool = false, expected true")
	}
	if got := p.ActiveCount(); got != 1 {
		t.Errorf("ActiveCount() = %d, expected 1", got)
	}
	if s := p.Slot(0); !s.Active || s.X != 100 || s.Y != 200 {
		t.Errorf("Slot(0) = %+v, expected active at (100, 200)", s)
	}
}

func TestPoolExhaustion(t *testing.T) {
	const n = 4
	p := NewPool(upSpec(), n, 600)

	for i := 0; i < n; i++ {
		if !p.Fire(i, 100) {
			t.Fatalf("Fire() #%d = false, expected true", i)
		}
	}
	before := p.Slots()

	if p.Fire(999, 999) {
		t.Error("Fire() on full pool = true, expected false")
	}
	if got := p.ActiveCount(); got != n {
		t.Errorf("ActiveCount() = %d, expected %d", got, n)
	}
	for i, s := range p.Slots() {
		if s != before[i] {
			t.Errorf("slot %d changed on no-op fire: %+v -> %+v", i, before[i], s)
		}
	}
}

func TestPoolFireReusesFirstFreeSlot(t *testing.T) {
	p := NewPool(upSpec(), 3, 600)
	p.Fire(1, 100)
	p.Fire(2, 100)
	p.Fire(3, 100)

	p.Deactivate(1)
	p.Fire(42, 100)

	if s := p.Slot(1); !s.Active || s.X != 42 {
		t.Errorf("Slot(1) = %+v, expected reuse at x=42", s)
	}
}

func TestPoolUpdateBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		spec       ProjectileSpec
		startY     int
		wantY      int
		wantActive bool
	}{
		{"upward stays at zero", upSpec(), 10, 0, true},
		{"upward leaves top", upSpec(), 5, -5, false},
		{"downward stays at height", downSpec(), 595, 600, true},
		{"downward leaves bottom", downSpec(), 596, 601, false},
		{"mid screen", downSpec(), 300, 305, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPool(tc.spec, 1, 600)
			p.Fire(0, tc.startY)
			p.Update()

			s := p.Slot(0)
			if s.Y != tc.wantY {
				t.Errorf("Y = %d, expected %d", s.Y, tc.wantY)
			}
			if s.Active != tc.wantActive {
				t.Errorf("Active = %v, expected %v", s.Active, tc.wantActive)
			}
		})
	}
}

func TestPoolUpdateSkipsInactive(t *testing.T) {
	p := NewPool(downSpec(), 2, 600)
	p.Fire(0, 100)
	p.Deactivate(0)
	p.Update()

	if s := p.Slot(0); s.Y != 100 {
		t.Errorf("inactive slot moved to y=%d, expected 100", s.Y)
	}
}

func TestPoolDeactivateIdempotent(t *testing.T) {
	p := NewPool(upSpec(), 2, 600)
	p.Fire(0, 100)

	p.Deactivate(0)
	p.Deactivate(0)
	p.Deactivate(-1)
	p.Deactivate(7)

	if got := p.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount() = %d, expected 0", got)
	}
}

func TestPoolResetKeepsCapacity(t *testing.T) {
	p := NewPool(upSpec(), 3, 600)
	p.Fire(0, 100)
	p.Fire(0, 200)

	p.Reset()

	if p.ActiveCount() != 0 {
		t.Errorf("ActiveCount() after Reset = %d, expected 0", p.ActiveCount())
	}
	if p.Cap() != 3 {
		t.Errorf("Cap() after Reset = %d, expected 3", p.Cap())
	}
}

func TestPoolBox(t *testing.T) {
	p := NewPool(upSpec(), 1, 600)
	p.Fire(7, 9)

	if got, want := p.Box(0), core.NewRect(7, 9, 4, 20); got != want {
		t.Errorf("Box(0) = %+v, expected %+v", got, want)
	}
}
