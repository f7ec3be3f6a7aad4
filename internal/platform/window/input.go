package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// binding maps physical keys to one action. Held bindings report the
// key state every tick; the others report only the tick a key went down.
type binding struct {
	action core.Action
	keys   []ebiten.Key
	held   bool
}

var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, true},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, true},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, true},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}, false},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}, false},
}

// KeyState reports whether a key is down or went down this tick.
type KeyState func(ebiten.Key) bool

// readInput samples the keyboard into one input frame.
func readInput(pressed, justPressed KeyState) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if b.held && pressed(k) {
				frame.Hold(b.action)
				break
			}
			if !b.held && justPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	return frame
}
