package invaders

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	Status  int
	Score   int
	PlayerX int
	PlayerY int

	Direction    int
	MoveCounter  int
	ShootCounter int

	// Each enemy is 2 ints: X, Y
	EnemyData []int

	// Each shield is 3 ints: X, Y, Health
	ShieldData []int

	// Each slot is 3 ints: X, Y, Active
	PlayerBulletData []int
	EnemyBulletData  []int

	// Zero when the random source is not a SimpleRNG
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := &g.world
	f := w.Formation

	enemyData := make([]int, 0, f.Len()*2)
	for _, e := range f.Enemies {
		enemyData = append(enemyData, e.X, e.Y)
	}

	shieldData := make([]int, 0, len(w.Shields)*3)
	for _, s := range w.Shields {
		shieldData = append(shieldData, s.X, s.Y, s.Health)
	}

	snap := Snapshot{
		Tick:             g.tick,
		Status:           int(g.status),
		Score:            g.score,
		PlayerX:          w.Player.X,
		PlayerY:          w.Player.Y,
		Direction:        f.Direction,
		MoveCounter:      f.MoveCounter,
		ShootCounter:     f.ShootCounter,
		EnemyData:        enemyData,
		ShieldData:       shieldData,
		PlayerBulletData: flattenPool(w.PlayerBullets),
		EnemyBulletData:  flattenPool(w.EnemyBullets),
	}
	if rng, ok := g.rng.(*SimpleRNG); ok {
		snap.RNGState = rng.State()
	}
	return snap
}

func flattenPool(p *Pool) []int {
	data := make([]int, 0, p.Cap()*3)
	for _, s := range p.slots {
		active := 0
		if s.Active {
			active = 1
		}
		data = append(data, s.X, s.Y, active)
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Status)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MoveCounter)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShootCounter) //#nosec G115 -- hash computation

	for _, data := range [][]int{snap.EnemyData, snap.ShieldData, snap.PlayerBulletData, snap.EnemyBulletData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + snap.RNGState

	return h
}
