package egghunt

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/egghunt/internal/config"
	"github.com/vovakirdan/egghunt/internal/core"
)

// Chick is a wandering enemy with its own decision timer.
type Chick struct {
	Entity
	NextDecision time.Duration
}

// ChickPool holds the live chicks and the ordered log of where each
// defeated chick was standing.
type ChickPool struct {
	max     int
	spawned int
	chicks  []*Chick
	defeats []core.Vec2
}

// NewChickPool creates a pool for up to max chicks.
func NewChickPool(max int) *ChickPool {
	return &ChickPool{
		max:    max,
		chicks: make([]*Chick, 0, max),
	}
}

// Add puts a chick into the pool. Returns false once max chicks have
// been added.
func (p *ChickPool) Add(c *Chick) bool {
	if p.spawned >= p.max {
		return false
	}
	c.Alive = true
	p.chicks = append(p.chicks, c)
	p.spawned++
	return true
}

// Max returns the pool capacity.
func (p *ChickPool) Max() int {
	return p.max
}

// FullySpawned reports whether every chick has been added.
func (p *ChickPool) FullySpawned() bool {
	return p.spawned == p.max
}

// Active returns the live chicks in spawn order.
func (p *ChickPool) Active() []*Chick {
	return p.chicks
}

// ActiveCount returns the number of live chicks.
func (p *ChickPool) ActiveCount() int {
	return len(p.chicks)
}

// Entities returns the live chicks' entities.
func (p *ChickPool) Entities() []*Entity {
	out := make([]*Entity, len(p.chicks))
	for i, c := range p.chicks {
		out[i] = &c.Entity
	}
	return out
}

// Find returns the live chick with the given ID, or nil.
func (p *ChickPool) Find(id EntityID) *Chick {
	for _, c := range p.chicks {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Defeat removes a live chick and appends its position to the defeat log.
// Unknown or already removed IDs are a no-op.
func (p *ChickPool) Defeat(id EntityID) (core.Vec2, bool) {
	for i, c := range p.chicks {
		if c.ID != id {
			continue
		}
		c.Alive = false
		p.defeats = append(p.defeats, c.Pos)
		p.chicks = append(p.chicks[:i], p.chicks[i+1:]...)
		return c.Pos, true
	}
	return core.Vec2{}, false
}

// DefeatPositions returns a copy of the defeat log in defeat order.
func (p *ChickPool) DefeatPositions() []core.Vec2 {
	out := make([]core.Vec2, len(p.defeats))
	copy(out, p.defeats)
	return out
}

// EnemyAI picks chick velocities: flee along one axis when the player is
// close, otherwise wander randomly.
type EnemyAI struct {
	rng         *rand.Rand
	wanderSpeed int
	evadeSpeed  float64
	evadeRadius float64
	interval    time.Duration
}

// NewEnemyAI creates the AI. All randomness comes from rng.
func NewEnemyAI(rng *rand.Rand, cfg config.EggHuntChicks) *EnemyAI {
	return &EnemyAI{
		rng:         rng,
		wanderSpeed: cfg.WanderSpeed,
		evadeSpeed:  cfg.EvadeSpeed,
		evadeRadius: cfg.EvadeRadius,
		interval:    cfg.DecisionInterval,
	}
}

// SetPace changes wander speed and decision interval.
func (ai *EnemyAI) SetPace(wanderSpeed int, interval time.Duration) {
	ai.wanderSpeed = wanderSpeed
	ai.interval = interval
}

// Interval returns the current decision interval.
func (ai *EnemyAI) Interval() time.Duration {
	return ai.interval
}

// Decide returns the new velocity for a chick.
//
// Within the evade radius the chick runs directly away from the player on
// the axis with the larger displacement, with the other axis zeroed. The x
// axis is chosen only when |dx| is strictly greater than |dy|.
func (ai *EnemyAI) Decide(c *Chick, playerPos core.Vec2) core.Vec2 {
	d := playerPos.Sub(c.Pos)
	if d.Length() < ai.evadeRadius {
		if math.Abs(d.X) > math.Abs(d.Y) {
			return core.V(away(d.X)*ai.evadeSpeed, 0)
		}
		return core.V(0, away(d.Y)*ai.evadeSpeed)
	}
	return ai.Wander()
}

// Wander returns a velocity with both components uniform integers in
// [-wanderSpeed, wanderSpeed].
func (ai *EnemyAI) Wander() core.Vec2 {
	return core.V(float64(ai.between(-ai.wanderSpeed, ai.wanderSpeed)),
		float64(ai.between(-ai.wanderSpeed, ai.wanderSpeed)))
}

// Tick applies a decision if the chick's timer has passed.
// Reports whether a decision was made.
func (ai *EnemyAI) Tick(c *Chick, playerPos core.Vec2, now time.Duration) bool {
	if now <= c.NextDecision {
		return false
	}
	c.Vel = ai.Decide(c, playerPos)
	c.NextDecision = now + ai.interval
	return true
}

// Stagger returns a random first-decision time within one interval.
func (ai *EnemyAI) Stagger() time.Duration {
	if ai.interval <= 0 {
		return 0
	}
	return time.Duration(ai.rng.Int63n(int64(ai.interval)))
}

// between returns a uniform integer in [lo, hi].
func (ai *EnemyAI) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + ai.rng.Intn(hi-lo+1)
}

// away returns the sign that moves away from a displacement component.
func away(d float64) float64 {
	if d > 0 {
		return -1
	}
	return 1
}
