package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ApplyPlanarFriction slows a floor-plane velocity by friction along its
// direction of travel. Height is left alone.
func ApplyPlanarFriction(v Vec3, friction float64) Vec3 {
	flat := v.Flat()
	speed := flat.Length()
	if speed == 0 {
		return v
	}
	next := ApplyFriction(speed, friction)
	out := flat.Scale(next / speed)
	out.Y = v.Y
	return out
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// BallisticVelocity returns the launch velocity that carries a projectile
// from `from` to `to` in exactly shotTime seconds under gravity, where
// gravity is the signed vertical acceleration (negative pulls down).
func BallisticVelocity(from, to Vec3, shotTime, gravity float64) Vec3 {
	d := to.Sub(from)
	v := d.Flat().Scale(1 / shotTime)
	v.Y = -gravity*shotTime*0.5 + d.Y/shotTime
	return v
}

// Torque returns the yaw torque produced by a force applied at an offset
// from the centre of mass.
func Torque(offset, force Vec3) float64 {
	return offset.Z*force.X - offset.X*force.Z
}
