package egghunt

import (
	"time"

	"github.com/vovakirdan/egghunt/internal/config"
	"github.com/vovakirdan/egghunt/internal/core"
)

// World is the spatial side of the simulation: playfield bounds, velocity
// integration, bounce responses and overlap detection. It never decides
// what an overlap means; it only queues CollisionEvents.
type World struct {
	width  float64
	height float64
	bounds core.Box
}

// NewWorld creates a world whose collision bounds are inset from the
// playfield edges.
func NewWorld(cfg config.EggHuntWorld) *World {
	return &World{
		width:  cfg.Width,
		height: cfg.Height,
		bounds: core.Box{
			X: cfg.Inset,
			Y: cfg.Inset,
			W: cfg.Width - 2*cfg.Inset,
			H: cfg.Height - 2*cfg.Inset,
		},
	}
}

// Width returns the playfield width.
func (w *World) Width() float64 { return w.width }

// Height returns the playfield height.
func (w *World) Height() float64 { return w.height }

// Bounds returns the collision bounds.
func (w *World) Bounds() core.Box { return w.bounds }

// Bodies is the set of entities taking part in one physics step.
type Bodies struct {
	Player      *Entity
	Chicks      []*Entity
	Projectiles []*Entity
	Boss        *Entity // Nil unless the boss can currently be hit
}

// Step integrates velocities over dt, resolves bounces and queues a
// CollisionEvent for every projectile overlapping a chick or the boss.
func (w *World) Step(dt time.Duration, b Bodies, q *EventQueue) {
	for _, c := range b.Chicks {
		w.Integrate(c, dt)
		w.bounceOffBounds(c)
	}

	for i := 0; i < len(b.Chicks); i++ {
		for j := i + 1; j < len(b.Chicks); j++ {
			separateElastic(b.Chicks[i], b.Chicks[j])
		}
	}

	if b.Player != nil {
		for _, c := range b.Chicks {
			pushOffStatic(c, b.Player)
			w.bounceOffBounds(c)
		}
	}

	for _, p := range b.Projectiles {
		w.Integrate(p, dt)
	}

	for _, p := range b.Projectiles {
		pbox := p.Box()
		for _, c := range b.Chicks {
			if pbox.Intersects(c.Box()) {
				q.Push(CollisionEvent{Projectile: p.ID, Target: c.ID})
			}
		}
		if b.Boss != nil && pbox.Intersects(b.Boss.Box()) {
			q.Push(CollisionEvent{Projectile: p.ID, Target: b.Boss.ID})
		}
	}
}

// Integrate advances e by its velocity over dt.
func (w *World) Integrate(e *Entity, dt time.Duration) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt.Seconds()))
}

// ClampInside moves e so its box lies within the bounds.
// Reports whether the entity touched a horizontal or vertical edge.
func (w *World) ClampInside(e *Entity) (hitX, hitY bool) {
	minX := w.bounds.X + e.HalfSize
	maxX := w.bounds.Right() - e.HalfSize
	minY := w.bounds.Y + e.HalfSize
	maxY := w.bounds.Bottom() - e.HalfSize

	switch {
	case e.Pos.X < minX:
		e.Pos.X = minX
		hitX = true
	case e.Pos.X > maxX:
		e.Pos.X = maxX
		hitX = true
	}
	switch {
	case e.Pos.Y < minY:
		e.Pos.Y = minY
		hitY = true
	case e.Pos.Y > maxY:
		e.Pos.Y = maxY
		hitY = true
	}
	return hitX, hitY
}

// bounceOffBounds clamps e inside the bounds and reflects the velocity
// component pointing out of them (restitution 1).
func (w *World) bounceOffBounds(e *Entity) {
	before := e.Pos
	hitX, hitY := w.ClampInside(e)
	if hitX && (e.Pos.X-before.X)*e.Vel.X < 0 {
		e.Vel.X = -e.Vel.X
	}
	if hitY && (e.Pos.Y-before.Y)*e.Vel.Y < 0 {
		e.Vel.Y = -e.Vel.Y
	}
}

// separateElastic resolves an overlap between two equal-mass bodies.
// They are pushed apart along the axis of least penetration and, if
// approaching, exchange their velocity components on that axis.
func separateElastic(a, b *Entity) {
	dx, dy := a.Box().Overlap(b.Box())
	if dx == 0 && dy == 0 {
		return
	}

	if dx < dy {
		sign := 1.0
		if a.Pos.X < b.Pos.X {
			sign = -1
		}
		a.Pos.X += sign * dx / 2
		b.Pos.X -= sign * dx / 2
		if (b.Vel.X-a.Vel.X)*sign > 0 {
			a.Vel.X, b.Vel.X = b.Vel.X, a.Vel.X
		}
		return
	}

	sign := 1.0
	if a.Pos.Y < b.Pos.Y {
		sign = -1
	}
	a.Pos.Y += sign * dy / 2
	b.Pos.Y -= sign * dy / 2
	if (b.Vel.Y-a.Vel.Y)*sign > 0 {
		a.Vel.Y, b.Vel.Y = b.Vel.Y, a.Vel.Y
	}
}

// pushOffStatic moves e out of an immovable body and reflects the
// velocity component that points into it.
func pushOffStatic(e, body *Entity) {
	dx, dy := e.Box().Overlap(body.Box())
	if dx == 0 && dy == 0 {
		return
	}

	if dx < dy {
		if e.Pos.X < body.Pos.X {
			e.Pos.X -= dx
			if e.Vel.X > 0 {
				e.Vel.X = -e.Vel.X
			}
		} else {
			e.Pos.X += dx
			if e.Vel.X < 0 {
				e.Vel.X = -e.Vel.X
			}
		}
		return
	}

	if e.Pos.Y < body.Pos.Y {
		e.Pos.Y -= dy
		if e.Vel.Y > 0 {
			e.Vel.Y = -e.Vel.Y
		}
	} else {
		e.Pos.Y += dy
		if e.Vel.Y < 0 {
			e.Vel.Y = -e.Vel.Y
		}
	}
}
