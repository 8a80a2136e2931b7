package egghunt

import (
	"time"

	"github.com/vovakirdan/egghunt/internal/config"
	"github.com/vovakirdan/egghunt/internal/core"
)

// Projectile is a thrown egg.
type Projectile struct {
	Entity
	Direction Facing
	SpawnedAt time.Duration
	TTL       time.Duration
}

// Targets is what projectiles can hit. Both methods remove the target and
// return its last position; false means there was nothing to hit.
type Targets interface {
	DefeatChick(id EntityID) (core.Vec2, bool)
	DefeatBoss(id EntityID) (core.Vec2, bool)
}

// ProjectileSystem spawns, expires and resolves projectiles.
type ProjectileSystem struct {
	ids         *idAllocator
	speed       float64
	ttl         time.Duration
	halfSize    float64
	projectiles []*Projectile
}

// NewProjectileSystem creates a projectile system drawing IDs from ids.
func NewProjectileSystem(ids *idAllocator, cfg config.EggHuntProjectile) *ProjectileSystem {
	return &ProjectileSystem{
		ids:      ids,
		speed:    cfg.Speed,
		ttl:      cfg.TTL,
		halfSize: cfg.HalfSize,
	}
}

// Spawn throws a projectile from origin along the cardinal facing.
func (s *ProjectileSystem) Spawn(origin core.Vec2, facing Facing, now time.Duration) EntityID {
	p := &Projectile{
		Entity: Entity{
			ID:       s.ids.Next(),
			Kind:     KindProjectile,
			Pos:      origin,
			Vel:      facing.Vector().Scale(s.speed),
			Facing:   facing,
			Alive:    true,
			HalfSize: s.halfSize,
		},
		Direction: facing,
		SpawnedAt: now,
		TTL:       s.ttl,
	}
	s.projectiles = append(s.projectiles, p)
	return p.ID
}

// Tick removes projectiles whose lifetime has run out.
// Returns how many expired.
func (s *ProjectileSystem) Tick(now time.Duration) int {
	expired := 0
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if now-p.SpawnedAt >= p.TTL {
			p.Alive = false
			expired++
			continue
		}
		kept = append(kept, p)
	}
	s.projectiles = kept
	return expired
}

// OnCollision resolves a projectile hitting a target. The projectile is
// destroyed and a ChickDefeatedEvent or BossDefeatedEvent is returned.
// If the projectile or the target no longer exists (or the target cannot
// be hit), nothing changes and nil is returned.
func (s *ProjectileSystem) OnCollision(projectileID, targetID EntityID, targets Targets) Event {
	if s.Find(projectileID) == nil {
		return nil
	}

	if pos, ok := targets.DefeatChick(targetID); ok {
		s.remove(projectileID)
		return ChickDefeatedEvent{Chick: targetID, Pos: pos}
	}
	if pos, ok := targets.DefeatBoss(targetID); ok {
		s.remove(projectileID)
		return BossDefeatedEvent{Boss: targetID, Pos: pos}
	}
	return nil
}

// Find returns the live projectile with the given ID, or nil.
func (s *ProjectileSystem) Find(id EntityID) *Projectile {
	for _, p := range s.projectiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Active returns the live projectiles in spawn order.
func (s *ProjectileSystem) Active() []*Projectile {
	return s.projectiles
}

// Entities returns the live projectiles' entities.
func (s *ProjectileSystem) Entities() []*Entity {
	out := make([]*Entity, len(s.projectiles))
	for i, p := range s.projectiles {
		out[i] = &p.Entity
	}
	return out
}

func (s *ProjectileSystem) remove(id EntityID) {
	for i, p := range s.projectiles {
		if p.ID == id {
			p.Alive = false
			s.projectiles = append(s.projectiles[:i], s.projectiles[i+1:]...)
			return
		}
	}
}
