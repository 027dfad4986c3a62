package systems

import (
	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles flies launched grenades on the fixed step. A grenade
// bursts on the first collider it touches, other than whoever threw it,
// or when it reaches the floor.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := fixedDeltaOf(ecs.World)
	var burst []donburi.Entity

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		p.Velocity.Y += cfg.Physics.Gravity * dt
		p.Position = p.Position.Add(p.Velocity.Scale(dt))

		obj := components.Object.Get(e)
		obj.MoveTo(p.Position)

		if p.Position.Y <= 0 || touchesSomething(obj, p.Owner) {
			burst = append(burst, e.Entity())
		}
	})

	for _, id := range burst {
		e := components.Lookup(ecs.World, id)
		if e == nil {
			continue
		}
		p := *components.Projectile.Get(e)
		at := p.Position
		if at.Y < 0 {
			at.Y = 0
		}
		destroy(ecs.World, e)
		Explode(ecs, at, p.Radius, p.Damage, p.Mask)
	}
}

func touchesSomething(obj *components.ObjectData, owner donburi.Entity) bool {
	for _, o := range collision.Touching(obj.Object, 0, 0, tags.ProjectileContactMask...) {
		if e := components.EntryOf(o); e != nil && owner != donburi.Null && e.Entity() == owner {
			continue
		}
		return true
	}
	return false
}
