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

// CharacterElevation is the height of a character's centre.
const CharacterElevation = 1.0

// CreatePlayer creates the player unarmed. Starting weapons are handed out
// by the session once the world is built.
func CreatePlayer(ecs *ecs.ECS, pos, facing gamemath.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	pos.Y = CharacterElevation
	size := cfg.Player.Size
	obj := newFootprint(player, pos, size, size, "character", tags.ResolvPlayer)

	f := facingOr(facing)
	components.Player.SetValue(player, components.PlayerData{
		Aim: pos.Add(f),
	})
	components.Character.SetValue(player, components.CharacterData{
		HitMask:     tags.PlayerHitMask,
		Facing:      f,
		MountOffset: cfg.Player.MountOffset,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Hittable.SetValue(player, components.HittableData{Kind: components.HitPlayer})

	addToSpace(ecs, obj)
	return player
}
