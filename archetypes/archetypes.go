package archetypes

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Character,
		components.Hittable,
		components.Highlight,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Character,
		components.Hittable,
		components.Highlight,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.Weapon,
		components.Object,
	)
	StaticObstacle = newArchetype(
		tags.Obstacle,
		components.Object,
		components.Hittable,
		components.Deformation,
	)
	DynamicObstacle = newArchetype(
		tags.Obstacle,
		components.Object,
		components.Hittable,
		components.Body,
		components.Impulse,
	)
	ExplosiveObstacle = newArchetype(
		tags.Obstacle,
		components.Object,
		components.Hittable,
		components.Body,
		components.Impulse,
		components.Explosive,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Nav = newArchetype(
		components.Nav,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	WeaponFactory = newArchetype(
		components.WeaponFactory,
	)
	Game = newArchetype(
		components.Game,
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
