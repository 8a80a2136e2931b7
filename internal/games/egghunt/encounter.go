package egghunt

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egghunt/internal/config"
	"github.com/vovakirdan/egghunt/internal/core"
)

// EncounterState is the phase of the scripted boss encounter.
type EncounterState int

const (
	StateHunting      EncounterState = iota // Chicks still around
	StateBossSpawning                       // Boss descending, cannot be hit
	StateBossActive                         // Boss on screen, waiting for a hit
	StateCelebrating                        // Terminal; fireworks replay the defeat log
)

// String returns the state name.
func (s EncounterState) String() string {
	switch s {
	case StateHunting:
		return "hunting"
	case StateBossSpawning:
		return "boss_spawning"
	case StateBossActive:
		return "boss_active"
	case StateCelebrating:
		return "celebrating"
	default:
		return "unknown"
	}
}

// Transition records one state change.
type Transition struct {
	From EncounterState
	To   EncounterState
	At   time.Duration
}

// Encounter drives the sequence from the last chick falling to the
// celebration. It owns the boss entity. It implements Targets so the
// projectile system resolves hits through it.
type Encounter struct {
	state       EncounterState
	bossSpawned bool
	boss        *Entity

	world   *World
	pool    *ChickPool
	ids     *idAllocator
	motions *Motions
	effects *Effects
	outbox  *Outbox

	bossCfg config.EggHuntBoss
	stagger time.Duration

	history []Transition
	logger  *log.Logger
}

// NewEncounter creates an encounter in the Hunting state.
func NewEncounter(world *World, pool *ChickPool, ids *idAllocator, motions *Motions, effects *Effects, outbox *Outbox, cfg config.EggHuntConfig) *Encounter {
	return &Encounter{
		state:   StateHunting,
		world:   world,
		pool:    pool,
		ids:     ids,
		motions: motions,
		effects: effects,
		outbox:  outbox,
		bossCfg: cfg.Boss,
		stagger: cfg.Effects.CelebrationStagger,
		logger:  log.New(io.Discard),
	}
}

// SetLogger sets the logger used for transition and defeat messages.
func (e *Encounter) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	e.logger = l
}

// State returns the current state.
func (e *Encounter) State() EncounterState {
	return e.state
}

// Boss returns the boss entity, or nil when there is none.
func (e *Encounter) Boss() *Entity {
	return e.boss
}

// BossSpawned reports whether the boss has ever been spawned this scene.
func (e *Encounter) BossSpawned() bool {
	return e.bossSpawned
}

// Hittable returns the boss if projectiles may currently hit it. The boss
// cannot be hit while it descends since BossSpawning only leads to
// BossActive, never straight to Celebrating.
func (e *Encounter) Hittable() *Entity {
	if e.state != StateBossActive {
		return nil
	}
	return e.boss
}

// History returns every transition so far, oldest first.
func (e *Encounter) History() []Transition {
	return e.history
}

// Finished reports whether the celebration has played out.
func (e *Encounter) Finished() bool {
	return e.state == StateCelebrating && e.effects.Count(EffectFirework) == 0
}

// Update checks the condition-driven transition out of Hunting.
// The boss spawns at most once per scene.
func (e *Encounter) Update(now time.Duration) {
	if e.state != StateHunting || e.bossSpawned {
		return
	}
	if !e.pool.FullySpawned() || e.pool.ActiveCount() > 0 {
		return
	}
	e.spawnBoss(now)
}

// Handle reacts to a resolved event. Events that do not apply to the
// current state are ignored.
func (e *Encounter) Handle(ev Event, now time.Duration) {
	switch ev := ev.(type) {
	case ChickDefeatedEvent:
		e.effects.AddHit(ev.Pos, now)
		e.outbox.Push(SpawnRequest{Kind: SpawnHitEffect, Pos: ev.Pos, At: now})
		e.logger.Debug("chick defeated", "id", ev.Chick, "x", ev.Pos.X, "y", ev.Pos.Y, "left", e.pool.ActiveCount())

	case MotionCompleteEvent:
		if e.state == StateBossSpawning && e.boss != nil && ev.Entity == e.boss.ID {
			e.transition(StateBossActive, now)
		}

	case BossDefeatedEvent:
		if e.state != StateBossActive {
			return
		}
		e.effects.AddHit(ev.Pos, now)
		e.outbox.Push(SpawnRequest{Kind: SpawnHitEffect, Pos: ev.Pos, At: now})
		e.transition(StateCelebrating, now)
		for i, pos := range e.pool.DefeatPositions() {
			at := now + time.Duration(i)*e.stagger
			e.effects.AddFirework(pos, at)
			e.outbox.Push(SpawnRequest{Kind: SpawnFirework, Pos: pos, At: at})
		}
	}
}

// DefeatChick removes a live chick.
func (e *Encounter) DefeatChick(id EntityID) (core.Vec2, bool) {
	return e.pool.Defeat(id)
}

// DefeatBoss removes the boss if it is the given entity and can be hit.
func (e *Encounter) DefeatBoss(id EntityID) (core.Vec2, bool) {
	boss := e.Hittable()
	if boss == nil || boss.ID != id {
		return core.Vec2{}, false
	}
	boss.Alive = false
	e.boss = nil
	return boss.Pos, true
}

// Lookup returns the boss entity if id matches it.
func (e *Encounter) Lookup(id EntityID) *Entity {
	if e.boss != nil && e.boss.ID == id {
		return e.boss
	}
	return nil
}

func (e *Encounter) spawnBoss(now time.Duration) {
	start := core.V(e.world.Width()/2, e.bossCfg.StartY)
	e.boss = &Entity{
		ID:       e.ids.Next(),
		Kind:     KindBoss,
		Pos:      start,
		Facing:   FacingDown,
		Alive:    true,
		HalfSize: e.bossCfg.HalfSize,
	}
	e.bossSpawned = true

	e.motions.Start(Tween{
		Target:   e.boss.ID,
		From:     start,
		To:       core.V(e.world.Width()/2, e.world.Height()/2),
		Start:    now,
		Duration: e.bossCfg.Descent,
		Ease:     SineInOut,
	})
	e.outbox.Push(SpawnRequest{Kind: SpawnBoss, Pos: start, At: now})
	e.transition(StateBossSpawning, now)
}

func (e *Encounter) transition(to EncounterState, now time.Duration) {
	from := e.state
	e.state = to
	e.history = append(e.history, Transition{From: from, To: to, At: now})
	e.logger.Debug("encounter", "from", from, "to", to, "at", now)
}
