package gamemath

import "math"

// Vec3 is a point or direction in arena space. X and Z span the floor plane,
// Y is height above the floor.
type Vec3 struct {
	X, Y, Z float64
}

// Up is the world up axis.
var Up = Vec3{Y: 1}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// FromXZ lifts a floor-plane point to the given height.
func FromXZ(x, z, height float64) Vec3 { return Vec3{X: x, Y: height, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Length() }

// Normalized returns the unit vector with the same direction, or the zero
// vector when v is (almost) zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Flat drops the height component.
func (v Vec3) Flat() Vec3 { return Vec3{X: v.X, Z: v.Z} }

// XZ returns the floor-plane components.
func (v Vec3) XZ() (x, z float64) { return v.X, v.Z }

// IsZero reports whether every component is zero.
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Angle returns the unsigned angle between two vectors in degrees. Zero
// length vectors yield 0.
func Angle(a, b Vec3) float64 {
	d := math.Sqrt(a.Dot(a) * b.Dot(b))
	if d < 1e-15 {
		return 0
	}
	c := a.Dot(b) / d
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c) * 180 / math.Pi
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target Vec3, maxDelta float64) Vec3 {
	diff := target.Sub(current)
	dist := diff.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(diff.Scale(maxDelta / dist))
}

// ClampLength limits the vector's length to max.
func ClampLength(v Vec3, max float64) Vec3 {
	l := v.Length()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// RotateYaw rotates v around the up axis. Positive angles turn +Z toward +X.
func RotateYaw(v Vec3, radians float64) Vec3 {
	s, c := math.Sincos(radians)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// Yaw returns the heading of a floor-plane direction, measured from +Z
// toward +X, so that RotateYaw(Vec3{Z: 1}, Yaw(d)) points along d.
func Yaw(dir Vec3) float64 {
	return math.Atan2(dir.X, dir.Z)
}

// Approx reports whether two vectors are within eps of each other per axis.
func Approx(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// Deg2Rad converts degrees to radians.
const Deg2Rad = math.Pi / 180
