package components

import (
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is a rigid body moving on the floor plane. Forces accumulate
// during a fixed step and are cleared once integrated.
type BodyData struct {
	Velocity        gamemath.Vec3
	AngularVelocity float64 // radians/s around the up axis
	Yaw             float64

	Mass        float64
	Inertia     float64
	Drag        float64
	AngularDrag float64

	Force  gamemath.Vec3
	Torque float64
}

var Body = donburi.NewComponentType[BodyData]()

// AddForceAtPosition pushes the body with force applied at point, given
// the body's centre.
func (b *BodyData) AddForceAtPosition(force, point, center gamemath.Vec3) {
	b.Force = b.Force.Add(force.Flat())
	b.Torque += gamemath.Torque(point.Sub(center), force)
}

// ToLocal converts an arena point to body space.
func (b *BodyData) ToLocal(point, center gamemath.Vec3) gamemath.Vec3 {
	return gamemath.RotateYaw(point.Sub(center), -b.Yaw)
}

// ToWorld converts a body space point back to arena space.
func (b *BodyData) ToWorld(local, center gamemath.Vec3) gamemath.Vec3 {
	return center.Add(gamemath.RotateYaw(local, b.Yaw))
}
