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

// CreateObstacle creates a hittable obstacle of the given kind centred on
// (x, z). kind must be one of the obstacle hittable kinds.
func CreateObstacle(ecs *ecs.ECS, kind components.HittableKind, x, z, w, h float64) *donburi.Entry {
	var e *donburi.Entry
	switch kind {
	case components.HitDynamicObstacle:
		e = archetypes.DynamicObstacle.Spawn(ecs)
	case components.HitExplosiveObstacle:
		e = archetypes.ExplosiveObstacle.Spawn(ecs)
	default:
		kind = components.HitStaticObstacle
		e = archetypes.StaticObstacle.Spawn(ecs)
	}

	obj := newFootprint(e, gamemath.FromXZ(x, z, 0.5), w, h, tags.ResolvObstacle)
	components.Hittable.SetValue(e, components.HittableData{Kind: kind})

	if e.HasComponent(components.Body) {
		components.Body.SetValue(e, components.BodyData{
			Mass:        cfg.Physics.ObstacleMass,
			Inertia:     cfg.Physics.ObstacleInertia,
			Drag:        cfg.Physics.ObstacleDrag,
			AngularDrag: cfg.Physics.ObstacleAngularDrag,
		})
	}
	if e.HasComponent(components.Explosive) {
		components.Explosive.SetValue(e, components.ExplosiveData{
			Radius: cfg.Hazard.ExplosionRadius,
			Damage: cfg.Hazard.ExplosionDamage,
			Mask:   tags.ExplosionMask,
		})
	}

	addToSpace(ecs, obj)
	return e
}
