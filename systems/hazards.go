package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/fx"
	"github.com/automoto/doomerang-arena/geometry"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// deformObstacle starts the dent on a static obstacle. Hits while a dent
// is still showing are ignored.
func deformObstacle(ecs *ecs.ECS, e *donburi.Entry, point, dir gamemath.Vec3) {
	if !e.HasComponent(components.Deformation) {
		return
	}
	components.Deformation.Get(e).Start(point, dir, elapsedOf(ecs.World), cfg.Hazard.DeformationDecayTime)
}

// pushObstacle records the hit as an impulse that the fixed step replays
// for a short while. A new hit replaces the previous one.
func pushObstacle(e *donburi.Entry, damage int, point, dir gamemath.Vec3) {
	if !e.HasComponent(components.Impulse) || !e.HasComponent(components.Body) {
		return
	}
	body := components.Body.Get(e)
	center := components.Position(e)

	imp := components.Impulse.Get(e)
	imp.Force = dir.Scale(float64(damage) * cfg.Hazard.ImpulseFactor)
	imp.LocalPoint = body.ToLocal(point, center)
	imp.Duration = cfg.Hazard.ImpulseDuration
	imp.Timer = 0
	imp.Active = true
}

// igniteExplosive lights the fuse on the first hit only.
func igniteExplosive(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.HasComponent(components.Explosive) {
		return
	}
	ex := components.Explosive.Get(e)
	if ex.Started {
		return
	}
	ex.Started = true
	ex.Fuse = cfg.Hazard.ExplosionTime

	pos := components.Position(e)
	sink := effectsOf(ecs.World)
	if ex.Fire == nil {
		ex.Fire = sink.NewEmitter(fx.ParticleFire)
	}
	if ex.Fire != nil {
		ex.Fire.Place(pos, gamemath.Up)
		ex.Fire.Play()
	}
	sink.Cue(fx.CueFuseLit, pos)
}

// UpdateImpulses runs on the fixed step and pushes every obstacle that
// was hit recently.
func UpdateImpulses(ecs *ecs.ECS) {
	dt := fixedDeltaOf(ecs.World)
	components.Impulse.Each(ecs.World, func(e *donburi.Entry) {
		imp := components.Impulse.Get(e)
		if !imp.Active {
			return
		}
		imp.Timer += dt
		if imp.Timer > imp.Duration {
			imp.Active = false
			imp.Force = gamemath.Vec3{}
			return
		}
		body := components.Body.Get(e)
		center := components.Position(e)
		body.AddForceAtPosition(imp.Force, body.ToWorld(imp.LocalPoint, center), center)
	})
}

// UpdateExplosives burns down lit fuses and detonates the ones that ran
// out.
func UpdateExplosives(ecs *ecs.ECS) {
	dt := deltaOf(ecs.World)
	var due []donburi.Entity
	components.Explosive.Each(ecs.World, func(e *donburi.Entry) {
		ex := components.Explosive.Get(e)
		if !ex.Started {
			return
		}
		ex.Fuse -= dt
		if ex.Fuse <= 0 {
			due = append(due, e.Entity())
		}
	})

	for _, id := range due {
		e := components.Lookup(ecs.World, id)
		if e == nil {
			continue
		}
		ex := components.Explosive.Get(e)
		pos := components.Position(e)
		// The charge leaves the space first so its own blast cannot push it.
		removeFromSpace(ecs.World, e)
		Explode(ecs, pos, ex.Radius, ex.Damage, ex.Mask)
		ecs.World.Remove(id)
	}
}

// Explode damages everything in mask within radius of center.
func Explode(ecs *ecs.ECS, center gamemath.Vec3, radius float64, damage int, mask []string) {
	hits := geometry.Sphere{Center: center, Radius: radius}.Hits(queryWorld(ecs.World), mask)
	applyHits(ecs, hits, damage)

	sink := effectsOf(ecs.World)
	fx.Burst(sink, fx.ParticleExplosion, center, gamemath.Up)
	sink.Cue(fx.CueExplosion, center)
}
