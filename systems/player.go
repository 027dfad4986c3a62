package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the latest input into movement, facing, aim
// highlighting and shots.
func UpdatePlayer(ecs *ecs.ECS) {
	e, ok := tags.Player.First(ecs.World)
	if !ok || components.Dying(e) {
		return
	}
	dt := deltaOf(ecs.World)
	in := components.Player.Get(e)
	ch := components.Character.Get(e)

	move := gamemath.ClampLength(in.Move.Flat(), 1)
	if move.IsZero() {
		ch.Velocity = gamemath.ApplyPlanarFriction(ch.Velocity, cfg.Player.Friction*dt)
	} else {
		ch.Velocity = ch.Velocity.Add(move.Scale(cfg.Player.Acceleration * dt))
		ch.Velocity = gamemath.ClampLength(ch.Velocity.Flat(), cfg.Player.MaxSpeed)
	}

	pos := components.Position(e)
	if look := in.Aim.Sub(pos).Flat(); !look.IsZero() {
		ch.Facing = look.Normalized()
	}

	HighlightEnemies(ecs, e, in.Aim)
	pressed := in.Fire && !in.FireHeld
	in.FireHeld = in.Fire
	if pressed {
		Shoot(ecs, e, in.Aim)
	}
}
