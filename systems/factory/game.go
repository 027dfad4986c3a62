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

// CreateGame creates the session singleton and its clock.
func CreateGame(ecs *ecs.ECS, data components.GameData) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, data)
	components.Clock.SetValue(game, components.ClockData{
		FixedDelta: cfg.Physics.FixedStep,
		TimeScale:  1,
	})
	return game
}

// CreateSpawner creates the wave spawner over already validated waves.
func CreateSpawner(ecs *ecs.ECS, waves []cfg.WaveConfig, points []components.SpawnPoint) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Waves:       waves,
		Points:      points,
		CheckRadius: cfg.Spawner.CheckRadius,
		CheckMask:   tags.SpawnBlockMask,
		Index:       -1,
	})
	return spawner
}

// CreateWeaponFactory creates the pickup spawner.
func CreateWeaponFactory(ecs *ecs.ECS, points []gamemath.Vec3, weapons []*cfg.WeaponDef) *donburi.Entry {
	f := archetypes.WeaponFactory.Spawn(ecs)
	components.WeaponFactory.SetValue(f, components.WeaponFactoryData{
		Points:  points,
		Weapons: weapons,
		Period:  cfg.WeaponFactory.Period,
	})
	return f
}
