package egghunt

import (
	"time"

	"github.com/vovakirdan/egghunt/internal/core"
)

// Event is something that happened during a tick and is resolved at the
// drain point of the same or a later tick.
type Event interface {
	gameEvent()
}

// CollisionEvent reports that a projectile overlaps a target.
type CollisionEvent struct {
	Projectile EntityID
	Target     EntityID
}

// MotionCompleteEvent reports that a scripted motion reached its end.
type MotionCompleteEvent struct {
	Entity EntityID
}

// ChickDefeatedEvent is emitted once per chick hit by a projectile.
type ChickDefeatedEvent struct {
	Chick EntityID
	Pos   core.Vec2 // Position right before the chick was removed
}

// BossDefeatedEvent is emitted when the boss is hit.
type BossDefeatedEvent struct {
	Boss EntityID
	Pos  core.Vec2
}

func (CollisionEvent) gameEvent()      {}
func (MotionCompleteEvent) gameEvent() {}
func (ChickDefeatedEvent) gameEvent()  {}
func (BossDefeatedEvent) gameEvent()   {}

// EventQueue is a FIFO of pending events.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Drain returns all pending events in order and empties the queue.
// Events pushed while the caller processes the result wait for the next drain.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// SpawnKind tells the platform what a SpawnRequest is for.
type SpawnKind int

const (
	SpawnProjectile SpawnKind = iota
	SpawnBoss
	SpawnHitEffect
	SpawnFirework
)

// String returns the spawn kind name.
func (k SpawnKind) String() string {
	switch k {
	case SpawnProjectile:
		return "projectile"
	case SpawnBoss:
		return "boss"
	case SpawnHitEffect:
		return "hit"
	case SpawnFirework:
		return "firework"
	default:
		return "unknown"
	}
}

// SpawnRequest records that something appeared in the world, for a
// presentation layer that plays sprites or sounds.
type SpawnRequest struct {
	Kind SpawnKind
	Pos  core.Vec2
	At   time.Duration
}

// Outbox collects spawn requests until the platform drains them.
type Outbox struct {
	reqs []SpawnRequest
}

// Push records a spawn request.
func (o *Outbox) Push(r SpawnRequest) {
	o.reqs = append(o.reqs, r)
}

// Drain returns the recorded requests in order and empties the outbox.
func (o *Outbox) Drain() []SpawnRequest {
	out := o.reqs
	o.reqs = nil
	return out
}
