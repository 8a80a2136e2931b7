package egghunt

import (
	"time"

	"github.com/vovakirdan/egghunt/internal/config"
	"github.com/vovakirdan/egghunt/internal/core"
)

// PlayerInput is the per-tick button state the player controller reads.
type PlayerInput struct {
	Up, Down, Left, Right bool
	Shoot                 bool // Held
	ShootPressed          bool // Went down this tick
}

// InputFromFrame converts a platform input frame. An empty frame (or one
// with nil maps) reads as every button released.
func InputFromFrame(in core.InputFrame) PlayerInput {
	return PlayerInput{
		Up:           in.IsHeld(core.ActionUp),
		Down:         in.IsHeld(core.ActionDown),
		Left:         in.IsHeld(core.ActionLeft),
		Right:        in.IsHeld(core.ActionRight),
		Shoot:        in.IsHeld(core.ActionShoot),
		ShootPressed: in.Has(core.ActionShoot),
	}
}

// PlayerController moves the player one tile at a time, rate limited by a
// cooldown that starts on each actual step.
type PlayerController struct {
	entity    *Entity
	world     *World
	tileSize  float64
	moveDelay time.Duration
	lastMove  time.Duration
	hasMoved  bool
	moving    bool
}

// NewPlayerController wraps the player entity.
func NewPlayerController(e *Entity, world *World, cfg config.EggHuntPlayer) *PlayerController {
	return &PlayerController{
		entity:    e,
		world:     world,
		tileSize:  cfg.TileSize,
		moveDelay: cfg.MoveDelay,
	}
}

// Update applies one tick of input. With several directions held, left
// wins over right, right over down and down over up. Facing follows the
// winning key immediately; the position changes only once the cooldown
// has fully elapsed.
func (p *PlayerController) Update(in PlayerInput, now time.Duration) (core.Vec2, Facing, bool) {
	var (
		facing Facing
		held   = true
	)
	switch {
	case in.Left:
		facing = FacingLeft
	case in.Right:
		facing = FacingRight
	case in.Down:
		facing = FacingDown
	case in.Up:
		facing = FacingUp
	default:
		held = false
	}

	p.moving = held
	if !held {
		return p.entity.Pos, p.entity.Facing, false
	}

	p.entity.Facing = facing
	if !p.hasMoved || now-p.lastMove > p.moveDelay {
		p.entity.Pos = p.entity.Pos.Add(facing.Vector().Scale(p.tileSize))
		if p.world != nil {
			p.world.ClampInside(p.entity)
		}
		p.lastMove = now
		p.hasMoved = true
	}

	return p.entity.Pos, p.entity.Facing, true
}

// Entity returns the controlled entity.
func (p *PlayerController) Entity() *Entity {
	return p.entity
}

// Moving reports whether a direction was held on the last update.
func (p *PlayerController) Moving() bool {
	return p.moving
}

// LastMove returns the time of the last step, and false before the first one.
func (p *PlayerController) LastMove() (time.Duration, bool) {
	return p.lastMove, p.hasMoved
}
