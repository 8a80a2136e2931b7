// Package egghunt implements Egg Hunt, a grid-stepping backyard hunt.
// The player throws eggs at wandering chicks; once every chick is down a
// legendary boss descends, and hitting it ends the run with fireworks over
// each spot where a chick fell.
package egghunt

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egghunt/internal/config"
	"github.com/vovakirdan/egghunt/internal/core"
	"github.com/vovakirdan/egghunt/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the Egg Hunt simulation.
type Game struct {
	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.EggHuntConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger

	// Clock
	now       time.Duration // Simulated time since scene start
	frame     time.Duration // Time advanced per Step
	tickCount int

	// Systems
	ids         idAllocator
	world       *World
	player      *PlayerController
	pool        *ChickPool
	ai          *EnemyAI
	projectiles *ProjectileSystem
	encounter   *Encounter
	motions     Motions
	effects     *Effects
	events      EventQueue
	outbox      Outbox

	// Run state
	score     int
	won       bool
	clearedAt time.Duration
	paused    bool

	lawn *lawn
}

// New creates a new Egg Hunt game instance.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "egghunt"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Egg Hunt"
}

// SetLogger routes debug output of the simulation to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
	if g.encounter != nil {
		g.encounter.SetLogger(l)
	}
}

// Reset discards all state and starts a fresh scene.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadEggHunt(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultEggHuntConfig()
	}
	if difficultyPreset != "" {
		config.ApplyEggHuntPreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts a fresh scene from an explicit config.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.EggHuntConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness

	g.frame = runtime.Frame()
	g.now = 0
	g.tickCount = 0

	g.ids = idAllocator{}
	g.motions = Motions{}
	g.events = EventQueue{}
	g.outbox = Outbox{}
	g.score = 0
	g.won = false
	g.clearedAt = 0
	g.paused = false

	g.world = NewWorld(cfg.World)
	g.effects = NewEffects(cfg.Effects)
	g.projectiles = NewProjectileSystem(&g.ids, cfg.Projectile)
	g.ai = NewEnemyAI(g.rng, cfg.Chicks)

	playerEntity := &Entity{
		ID:       g.ids.Next(),
		Kind:     KindPlayer,
		Pos:      core.V(cfg.Player.StartX, cfg.Player.StartY),
		Facing:   FacingDown,
		Alive:    true,
		HalfSize: cfg.Player.HalfSize,
	}
	g.player = NewPlayerController(playerEntity, g.world, cfg.Player)

	g.pool = NewChickPool(cfg.Chicks.Count)
	g.spawnChicks()

	g.encounter = NewEncounter(g.world, g.pool, &g.ids, &g.motions, g.effects, &g.outbox, cfg)
	g.encounter.SetLogger(g.logger)

	g.lawn = newLawn(runtime.Seed)
}

// spawnChicks fills the pool at random integer positions inside the
// spawn margin, each with a random wander velocity and a staggered first
// decision.
func (g *Game) spawnChicks() {
	margin := g.cfg.Chicks.SpawnMargin
	maxX := int(g.world.Width()) - margin
	maxY := int(g.world.Height()) - margin

	for i := 0; i < g.pool.Max(); i++ {
		c := &Chick{
			Entity: Entity{
				ID:       g.ids.Next(),
				Kind:     KindChick,
				Pos:      core.V(float64(g.ai.between(margin, maxX)), float64(g.ai.between(margin, maxY))),
				Facing:   FacingDown,
				HalfSize: g.cfg.Chicks.HalfSize,
			},
		}
		c.Vel = g.ai.Wander()
		c.NextDecision = g.ai.Stagger()
		g.pool.Add(c)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.won {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.now += g.frame
	g.tick(InputFromFrame(in))

	return core.StepResult{State: g.State()}
}

// tick runs one simulation frame in fixed order.
func (g *Game) tick(in PlayerInput) {
	_, facing, _ := g.player.Update(in, g.now)

	if in.ShootPressed {
		origin := g.player.Entity().Pos
		g.projectiles.Spawn(origin, facing, g.now)
		g.outbox.Push(SpawnRequest{Kind: SpawnProjectile, Pos: origin, At: g.now})
	}

	g.applyPace()
	playerPos := g.player.Entity().Pos
	for _, c := range g.pool.Active() {
		g.ai.Tick(c, playerPos, g.now)
	}

	g.world.Step(g.frame, Bodies{
		Player:      g.player.Entity(),
		Chicks:      g.pool.Entities(),
		Projectiles: g.projectiles.Entities(),
		Boss:        g.encounter.Hittable(),
	}, &g.events)

	// Expiry runs before the drain, so an overlap queued on a projectile's
	// last tick finds no projectile and is dropped.
	g.projectiles.Tick(g.now)

	g.drain()
	g.encounter.Update(g.now)

	// Completion signals queued here are drained next tick
	g.motions.Advance(g.now, g.lookup, &g.events)
	g.effects.Update(g.now)

	if g.encounter.Finished() {
		g.won = true
		g.clearedAt = g.now
		g.logger.Info("hunt cleared", "score", g.score, "time", g.clearedAt)
	}
}

// applyPace updates chick speed from the difficulty manager.
func (g *Game) applyPace() {
	speed := g.difficulty.Speed(g.cfg.Chicks.WanderSpeed, g.score, g.tickCount)
	interval := g.difficulty.Interval(g.cfg.Chicks.DecisionInterval, g.score, g.tickCount)
	g.ai.SetPace(speed, interval)
}

// drain resolves every queued event.
func (g *Game) drain() {
	for _, ev := range g.events.Drain() {
		g.dispatch(ev)
	}
}

func (g *Game) dispatch(ev Event) {
	if c, ok := ev.(CollisionEvent); ok {
		ev = g.projectiles.OnCollision(c.Projectile, c.Target, g.encounter)
		if ev == nil {
			return
		}
	}

	switch ev.(type) {
	case ChickDefeatedEvent:
		g.score += g.cfg.Scoring.ChickPoints
	case BossDefeatedEvent:
		g.score += g.cfg.Scoring.BossPoints
	}
	g.encounter.Handle(ev, g.now)
}

// lookup finds any live entity by ID.
func (g *Game) lookup(id EntityID) *Entity {
	if p := g.player.Entity(); p.ID == id {
		return p
	}
	if c := g.pool.Find(id); c != nil {
		return &c.Entity
	}
	if p := g.projectiles.Find(id); p != nil {
		return &p.Entity
	}
	return g.encounter.Lookup(id)
}

// NotifyCollision queues an overlap reported by an outside collaborator.
// It is resolved at the next drain like any other collision.
func (g *Game) NotifyCollision(projectile, target EntityID) {
	g.events.Push(CollisionEvent{Projectile: projectile, Target: target})
}

// NotifyMotionComplete queues a scripted-motion completion signal.
func (g *Game) NotifyMotionComplete(id EntityID) {
	g.events.Push(MotionCompleteEvent{Entity: id})
}

// DrainSpawns returns the spawn requests recorded since the last call.
func (g *Game) DrainSpawns() []SpawnRequest {
	return g.outbox.Drain()
}

// Now returns the simulated time since scene start.
func (g *Game) Now() time.Duration {
	return g.now
}

// Encounter returns the current encounter phase.
func (g *Game) Encounter() EncounterState {
	return g.encounter.State()
}

// ChicksDefeated returns how many chicks have been hit this scene.
func (g *Game) ChicksDefeated() int {
	return g.pool.Max() - g.pool.ActiveCount()
}

// ClearTime returns when the celebration finished, and false before that.
func (g *Game) ClearTime() (time.Duration, bool) {
	return g.clearedAt, g.won
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("egghunt", func() registry.Game {
		return New()
	})
}
