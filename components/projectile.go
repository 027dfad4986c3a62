package components

import (
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ProjectileData is a launched grenade in ballistic flight.
type ProjectileData struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3

	Damage int
	Radius float64 // blast radius
	Mask   []string

	Owner donburi.Entity // never struck by its own grenade
}

var Projectile = donburi.NewComponentType[ProjectileData]()
