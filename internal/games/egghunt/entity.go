package egghunt

import "github.com/vovakirdan/egghunt/internal/core"

// EntityID identifies an entity for the lifetime of a scene.
// IDs are never reused within a scene; zero is never issued.
type EntityID uint64

// idAllocator hands out increasing entity IDs.
type idAllocator struct {
	last EntityID
}

// Next returns a fresh ID.
func (a *idAllocator) Next() EntityID {
	a.last++
	return a.last
}

// Facing is one of the four cardinal directions.
type Facing int

const (
	FacingDown Facing = iota // Initial facing of the player
	FacingUp
	FacingLeft
	FacingRight
)

// Vector returns the unit vector for the facing. Screen y grows downwards.
func (f Facing) Vector() core.Vec2 {
	switch f {
	case FacingUp:
		return core.V(0, -1)
	case FacingLeft:
		return core.V(-1, 0)
	case FacingRight:
		return core.V(1, 0)
	default:
		return core.V(0, 1)
	}
}

// String returns the facing name.
func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Kind tells which system owns an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindChick
	KindProjectile
	KindBoss
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindChick:
		return "chick"
	case KindProjectile:
		return "projectile"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Entity is anything with a position in the world.
// Position is the center of the collision box.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Pos      core.Vec2
	Vel      core.Vec2 // Units per second
	Facing   Facing
	Alive    bool
	HalfSize float64
}

// Box returns the entity's collision box.
func (e *Entity) Box() core.Box {
	return core.BoxAround(e.Pos, e.HalfSize, e.HalfSize)
}
