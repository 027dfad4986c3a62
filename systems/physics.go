package systems

import (
	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBodies integrates obstacle bodies on the fixed step: accumulated
// forces become velocity, drag bleeds it off, walls and other obstacles
// stop movement.
func UpdateBodies(ecs *ecs.ECS) {
	dt := fixedDeltaOf(ecs.World)
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if components.Dying(e) {
			return
		}
		body := components.Body.Get(e)

		if body.Mass > 0 {
			body.Velocity = body.Velocity.Add(body.Force.Scale(dt / body.Mass))
		}
		if body.Inertia > 0 {
			body.AngularVelocity += body.Torque * dt / body.Inertia
		}
		body.Force.X, body.Force.Y, body.Force.Z = 0, 0, 0
		body.Torque = 0

		body.Velocity = body.Velocity.Scale(dampen(body.Drag, dt))
		body.AngularVelocity *= dampen(body.AngularDrag, dt)
		body.Yaw += body.AngularVelocity * dt

		if body.Velocity.Flat().Length() < 1e-4 {
			body.Velocity.X, body.Velocity.Z = 0, 0
			return
		}
		obj := components.Object.Get(e)
		movedX, movedZ := collision.Slide(obj.Object, body.Velocity.X*dt, body.Velocity.Z*dt, tags.MoveBlockMask...)
		if !movedX {
			body.Velocity.X = 0
		}
		if !movedZ {
			body.Velocity.Z = 0
		}
	})
}

func dampen(drag, dt float64) float64 {
	f := 1 - drag*dt
	if f < 0 {
		return 0
	}
	return f
}

// UpdateCharacterMovement moves characters by their velocity, sliding
// along walls and obstacles.
func UpdateCharacterMovement(ecs *ecs.ECS) {
	dt := deltaOf(ecs.World)
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		if components.Dying(e) {
			return
		}
		ch := components.Character.Get(e)
		if ch.Velocity.X == 0 && ch.Velocity.Z == 0 {
			return
		}
		obj := components.Object.Get(e)
		movedX, movedZ := collision.Slide(obj.Object, ch.Velocity.X*dt, ch.Velocity.Z*dt, tags.MoveBlockMask...)
		if !movedX {
			ch.Velocity.X = 0
		}
		if !movedZ {
			ch.Velocity.Z = 0
		}
	})
}
