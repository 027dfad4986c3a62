package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile launches a grenade from pos. It bursts for damage over
// radius, striking only what mask lists.
func CreateProjectile(ecs *ecs.ECS, pos, vel gamemath.Vec3, damage int, radius float64, mask []string, owner donburi.Entity) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	size := cfg.Hazard.ProjectileSize
	obj := newFootprint(p, pos, size, size, tags.ResolvProjectile)

	components.Projectile.SetValue(p, components.ProjectileData{
		Position: pos,
		Velocity: vel,
		Damage:   damage,
		Radius:   radius,
		Mask:     mask,
		Owner:    owner,
	})

	addToSpace(ecs, obj)
	return p
}
