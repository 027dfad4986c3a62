// Package arena loads arena layouts from TMX files. It holds plain data
// only; the session turns it into entities.
package arena

import "github.com/automoto/doomerang-arena/shared/gamemath"

// Obstacle kinds as written in the "kind" object property.
const (
	KindStatic    = "static"
	KindDynamic   = "dynamic"
	KindExplosive = "explosive"
)

// Rect is an axis aligned area of the floor in world units. X and Z name
// the corner with the smallest coordinates.
type Rect struct {
	X, Z, W, H float64
}

// Center returns the middle of the rectangle at the given height.
func (r Rect) Center(height float64) gamemath.Vec3 {
	return gamemath.FromXZ(r.X+r.W/2, r.Z+r.H/2, height)
}

type Obstacle struct {
	Rect
	Kind string
}

// Spawn is a point on the floor with a heading. Facing is a yaw in degrees,
// 0 looks down +Z.
type Spawn struct {
	X, Z   float64
	Facing float64
}

func (s Spawn) Position() gamemath.Vec3 {
	return gamemath.FromXZ(s.X, s.Z, 0)
}

// Direction returns the unit heading of the spawn.
func (s Spawn) Direction() gamemath.Vec3 {
	return gamemath.RotateYaw(gamemath.V3(0, 0, 1), s.Facing*gamemath.Deg2Rad)
}

// Arena is everything the simulation needs from a map.
type Arena struct {
	Name         string
	Width, Depth float64

	Walls        []Rect
	Obstacles    []Obstacle
	PlayerSpawn  Spawn
	EnemySpawns  []Spawn
	WeaponSpawns []Spawn
}
