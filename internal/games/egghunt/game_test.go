package egghunt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/egghunt/internal/config"
	"github.com/vovakirdan/egghunt/internal/core"
	"github.com/vovakirdan/egghunt/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.ResetWithConfig(testRuntime(seed), config.DefaultEggHuntConfig())
	return g
}

// parkChicks lines the chicks up along y=500, motionless and with their
// next decision far in the future.
func parkChicks(g *Game) []*Chick {
	chicks := g.pool.Active()
	for i, c := range chicks {
		c.Pos = core.V(float64(200+i*100), 500)
		c.Vel = core.Vec2{}
		c.NextDecision = time.Hour
	}
	return append([]*Chick(nil), chicks...)
}

// hit throws an egg at target and resolves it on the next step.
func hit(g *Game, target EntityID) EntityID {
	pid := g.projectiles.Spawn(g.player.Entity().Pos, FacingDown, g.now)
	g.NotifyCollision(pid, target)
	g.Step(core.NewInputFrame())
	return pid
}

func stepUntil(t *testing.T, g *Game, limit int, done func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if done() {
			return
		}
		g.Step(core.NewInputFrame())
	}
	require.True(t, done(), "condition not reached in %d steps", limit)
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists("egghunt"))
	g, err := registry.Create("egghunt")
	require.NoError(t, err)
	assert.Equal(t, "Egg Hunt", g.Title())
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 42)

	assert.Equal(t, core.V(50, 50), g.player.Entity().Pos)
	assert.Equal(t, FacingDown, g.player.Entity().Facing)
	assert.Equal(t, 5, g.pool.ActiveCount())
	assert.Equal(t, StateHunting, g.Encounter())
	assert.Equal(t, time.Duration(0), g.Now())
	assert.Equal(t, core.GameState{}, g.State())

	for _, c := range g.pool.Active() {
		assert.GreaterOrEqual(t, c.Pos.X, 64.0)
		assert.LessOrEqual(t, c.Pos.X, 896.0)
		assert.GreaterOrEqual(t, c.Pos.Y, 64.0)
		assert.LessOrEqual(t, c.Pos.Y, 576.0)
		assert.Less(t, c.NextDecision, 500*time.Millisecond)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 < 15:
			inputs[i].SetHeld(core.ActionRight)
		case i%40 < 30:
			inputs[i].SetHeld(core.ActionDown)
		}
		if i%25 == 0 {
			inputs[i].Set(core.ActionShoot)
		}
	}

	run := func(seed int64) Snapshot {
		g := New()
		g.Reset(testRuntime(seed))
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	a, b := run(12345), run(12345)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a, b)

	c := run(54321)
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestGameClockAdvancesPerStep(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.InDelta(t, time.Second, g.Now(), float64(time.Millisecond))
}

func TestGameNilInputIsAllReleased(t *testing.T) {
	g := newTestGame(t, 1)
	parkChicks(g)

	g.Step(core.InputFrame{})
	assert.Equal(t, core.V(50, 50), g.player.Entity().Pos)
	assert.Empty(t, g.projectiles.Active())
}

func TestGameShootUsesFacingFromSameTick(t *testing.T) {
	g := newTestGame(t, 1)
	parkChicks(g)

	in := core.NewInputFrame()
	in.SetHeld(core.ActionRight)
	in.Set(core.ActionShoot)
	g.Step(in)

	require.Len(t, g.projectiles.Active(), 1)
	p := g.projectiles.Active()[0]
	assert.Equal(t, core.V(200, 0), p.Vel)
	assert.Equal(t, FacingRight, p.Direction)

	// Holding shoot does not fire again
	held := core.NewInputFrame()
	held.SetHeld(core.ActionShoot)
	g.Step(held)
	assert.Len(t, g.projectiles.Active(), 1)

	reqs := g.DrainSpawns()
	require.Len(t, reqs, 1)
	assert.Equal(t, SpawnProjectile, reqs[0].Kind)
}

func TestGameProjectileSelfDestructs(t *testing.T) {
	g := newTestGame(t, 1)
	parkChicks(g)

	in := core.NewInputFrame()
	in.SetHeld(core.ActionUp)
	in.Set(core.ActionShoot)
	g.Step(in)

	require.Len(t, g.projectiles.Active(), 1)
	p := g.projectiles.Active()[0]
	assert.Equal(t, core.V(0, -200), p.Vel)

	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.NotNil(t, g.projectiles.Find(p.ID))
	assert.Less(t, p.Pos.Y, 0.0)

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Nil(t, g.projectiles.Find(p.ID))
}

func TestGamePauseFreezesClock(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(core.NewInputFrame())
	before := g.Now()

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	assert.True(t, g.State().Paused)

	g.Step(core.NewInputFrame())
	assert.Equal(t, before, g.Now())

	g.Step(pause)
	assert.False(t, g.State().Paused)
	assert.Greater(t, g.Now(), before)
}

func TestGameFullEncounter(t *testing.T) {
	g := newTestGame(t, 7)
	chicks := parkChicks(g)

	var want []core.Vec2
	for _, c := range chicks {
		want = append(want, c.Pos)
		hit(g, c.ID)
	}

	assert.Equal(t, want, g.pool.DefeatPositions())
	assert.Equal(t, 500, g.State().Score)
	assert.Equal(t, StateBossSpawning, g.Encounter())
	boss := g.encounter.Boss()
	require.NotNil(t, boss)
	assert.Equal(t, core.V(480, -128), boss.Pos)

	// Hits during the descent are ignored
	early := hit(g, boss.ID)
	assert.NotNil(t, g.projectiles.Find(early))
	assert.Equal(t, StateBossSpawning, g.Encounter())

	stepUntil(t, g, 400, func() bool { return g.Encounter() == StateBossActive })
	assert.Equal(t, core.V(480, 320), boss.Pos)

	hit(g, boss.ID)
	assert.Equal(t, StateCelebrating, g.Encounter())
	assert.Equal(t, 1500, g.State().Score)
	assert.Equal(t, 5, g.effects.Count(EffectFirework))

	spawning := 0
	for _, tr := range g.encounter.History() {
		if tr.To == StateBossSpawning {
			spawning++
		}
	}
	assert.Equal(t, 1, spawning)

	var fireworks []core.Vec2
	for _, req := range g.DrainSpawns() {
		if req.Kind == SpawnFirework {
			fireworks = append(fireworks, req.Pos)
		}
	}
	assert.Equal(t, want, fireworks)

	stepUntil(t, g, 400, func() bool { return g.State().Won })
	assert.True(t, g.State().GameOver)
	clear, ok := g.ClearTime()
	assert.True(t, ok)
	assert.Greater(t, clear, 3*time.Second)

	// Won runs only react to restart
	g.Step(core.NewInputFrame())
	assert.Equal(t, clear, g.Now())

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	assert.Equal(t, StateHunting, g.Encounter())
	assert.Equal(t, 0, g.State().Score)
	assert.Equal(t, 5, g.pool.ActiveCount())
	assert.False(t, g.encounter.BossSpawned())
}

func TestGameStaleCollisionIsNoop(t *testing.T) {
	g := newTestGame(t, 3)
	chicks := parkChicks(g)

	pid := hit(g, chicks[0].ID)
	assert.Equal(t, 4, g.pool.ActiveCount())

	// The same projectile reported against another chick after it is gone
	g.NotifyCollision(pid, chicks[1].ID)
	g.NotifyCollision(999, chicks[1].ID)
	g.Step(core.NewInputFrame())
	assert.Equal(t, 4, g.pool.ActiveCount())
	assert.Equal(t, 100, g.State().Score)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, screen.Row(0), "Score: 0")
	assert.Contains(t, screen.Row(0), "Chicks: 5/5")
	assert.Contains(t, out, string(PlayerChar))

	small := core.NewScreen(30, 10)
	g.Render(small)
	assert.True(t, strings.Contains(small.String(), "Screen too small!"))
}
