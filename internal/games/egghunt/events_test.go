package egghunt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/egghunt/internal/core"
)

func TestEventQueueDrainsInOrder(t *testing.T) {
	var q EventQueue
	assert.Nil(t, q.Drain())

	q.Push(CollisionEvent{Projectile: 1, Target: 2})
	q.Push(MotionCompleteEvent{Entity: 3})
	assert.Equal(t, 2, q.Len())

	got := q.Drain()
	assert.Equal(t, []Event{CollisionEvent{Projectile: 1, Target: 2}, MotionCompleteEvent{Entity: 3}}, got)
	assert.Equal(t, 0, q.Len())
}

func TestEventQueuePushDuringDrainWaits(t *testing.T) {
	var q EventQueue
	q.Push(MotionCompleteEvent{Entity: 1})

	seen := 0
	for range q.Drain() {
		seen++
		q.Push(MotionCompleteEvent{Entity: 2})
	}
	assert.Equal(t, 1, seen)
	assert.Equal(t, []Event{MotionCompleteEvent{Entity: 2}}, q.Drain())
}

func TestOutbox(t *testing.T) {
	var o Outbox
	o.Push(SpawnRequest{Kind: SpawnBoss, Pos: core.V(480, -128)})
	o.Push(SpawnRequest{Kind: SpawnFirework, Pos: core.V(1, 2)})

	got := o.Drain()
	assert.Len(t, got, 2)
	assert.Equal(t, SpawnBoss, got[0].Kind)
	assert.Equal(t, "firework", got[1].Kind.String())
	assert.Empty(t, o.Drain())
}
