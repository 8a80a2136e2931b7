package egghunt

import "math"

// Snapshot contains the observable simulation state for determinism tests
// and external collaborators. Entity data is flattened to plain slices.
type Snapshot struct {
	Tick      uint64
	NowNanos  int64
	Score     int
	Encounter string
	Won       bool
	Paused    bool

	PlayerX, PlayerY float64
	Facing           string

	// Each chick is 5 values: ID, X, Y, VX, VY
	ChickData []float64

	// Each projectile is 5 values: ID, X, Y, VX, VY
	ProjectileData []float64

	BossPresent  bool
	BossX, BossY float64

	// Each defeat is 2 values: X, Y
	DefeatData []float64

	EffectCount int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	chicks := g.pool.Active()
	chickData := make([]float64, 0, len(chicks)*5)
	for _, c := range chicks {
		chickData = append(chickData, float64(c.ID), c.Pos.X, c.Pos.Y, c.Vel.X, c.Vel.Y)
	}

	projectiles := g.projectiles.Active()
	projectileData := make([]float64, 0, len(projectiles)*5)
	for _, p := range projectiles {
		projectileData = append(projectileData, float64(p.ID), p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y)
	}

	defeats := g.pool.DefeatPositions()
	defeatData := make([]float64, 0, len(defeats)*2)
	for _, d := range defeats {
		defeatData = append(defeatData, d.X, d.Y)
	}

	player := g.player.Entity()
	snap := Snapshot{
		Tick:           uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		NowNanos:       int64(g.now),
		Score:          g.score,
		Encounter:      g.encounter.State().String(),
		Won:            g.won,
		Paused:         g.paused,
		PlayerX:        player.Pos.X,
		PlayerY:        player.Pos.Y,
		Facing:         player.Facing.String(),
		ChickData:      chickData,
		ProjectileData: projectileData,
		DefeatData:     defeatData,
		EffectCount:    len(g.effects.List()),
	}
	if boss := g.encounter.Boss(); boss != nil {
		snap.BossPresent = true
		snap.BossX, snap.BossY = boss.Pos.X, boss.Pos.Y
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.NowNanos) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + hashString(snap.Encounter)
	h = h*31 + hashString(snap.Facing)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	for _, v := range snap.ChickData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.DefeatData {
		h = h*31 + math.Float64bits(v)
	}
	if snap.BossPresent {
		h = h*31 + math.Float64bits(snap.BossX)
		h = h*31 + math.Float64bits(snap.BossY)
	}
	h = h*31 + uint64(snap.EffectCount) //#nosec G115 -- hash computation
	return h
}

func hashString(s string) uint64 {
	var h uint64
	for _, r := range s {
		h = h*31 + uint64(r)
	}
	return h
}
