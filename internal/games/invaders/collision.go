package invaders

// World is the set of entities the collision resolver works on.
// The Game owns exactly one and rebuilds it on reset.
type World struct {
	Player        Player
	PlayerSize    Size
	PlayerBullets *Pool
	EnemyBullets  *Pool
	Formation     *Formation
	Shields       []Shield
	ShieldSize    Size
}

// Outcome summarizes one resolver pass.
type Outcome struct {
	Kills            int
	Points           int
	ShieldHits       int
	ShieldsDestroyed int
	Won              bool // The last enemy fell in this pass
	Lost             bool // An enemy bullet reached the player
}

// Resolve runs one collision pass. The phases run in a fixed order:
// enemy bullets against shields, player bullets against enemies, then
// the remaining enemy bullets against the player. Both Won and Lost can
// be set by the same pass.
func (w *World) Resolve(killScore int) Outcome {
	var out Outcome
	w.resolveShields(&out)
	w.resolveEnemies(&out, killScore)
	w.resolvePlayer(&out)
	return out
}

// resolveShields lets each enemy bullet damage at most one shield.
func (w *World) resolveShields(out *Outcome) {
	for b, limit := 0, w.EnemyBullets.Cap(); b < limit; b++ {
		if !w.EnemyBullets.Active(b) {
			continue
		}
		box := w.EnemyBullets.Box(b)
		for s := range w.Shields {
			if !box.Intersects(w.Shields[s].Box(w.ShieldSize)) {
				continue
			}
			w.EnemyBullets.Deactivate(b)
			w.Shields[s].TakeDamage()
			out.ShieldHits++
			if w.Shields[s].Destroyed() {
				w.Shields = append(w.Shields[:s], w.Shields[s+1:]...)
				out.ShieldsDestroyed++
			}
			break
		}
	}
}

// resolveEnemies lets each player bullet kill at most one enemy.
func (w *World) resolveEnemies(out *Outcome, killScore int) {
	f := w.Formation
	for b, end := 0, w.PlayerBullets.Cap(); b < end; b++ {
		if !w.PlayerBullets.Active(b) {
			continue
		}
		box := w.PlayerBullets.Box(b)
		for e, n := 0, f.Len(); e < n; e++ {
			if !box.Intersects(f.Box(e)) {
				continue
			}
			f.Remove(e)
			w.PlayerBullets.Deactivate(b)
			out.Kills++
			out.Points += killScore
			break
		}
	}
	if out.Kills > 0 && f.Len() == 0 {
		out.Won = true
	}
}

// resolvePlayer stops at the first enemy bullet that hits the ship.
func (w *World) resolvePlayer(out *Outcome) {
	ship := w.Player.Box(w.PlayerSize)
	for b, n := 0, w.EnemyBullets.Cap(); b < n; b++ {
		if w.EnemyBullets.Active(b) && w.EnemyBullets.Box(b).Intersects(ship) {
			w.EnemyBullets.Deactivate(b)
			out.Lost = true
			return
		}
	}
}
