package factory

import (
	"log"

	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy creates an enemy of the named type holding its weapon. The
// weapon is in the inventory but not yet equipped. It returns nil for an
// unknown type.
func CreateEnemy(ecs *ecs.ECS, kind string, pos, facing gamemath.Vec3) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[kind]
	if !exists {
		log.Printf("Warning: unknown enemy type %q", kind)
		return nil
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	pos.Y = CharacterElevation
	obj := newFootprint(enemy, pos, enemyType.Size, enemyType.Size, "character", tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{Type: enemyType})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Hittable.SetValue(enemy, components.HittableData{Kind: components.HitEnemy})

	ch := components.CharacterData{
		HitMask:     tags.EnemyHitMask,
		Facing:      facingOr(facing),
		MountOffset: cfg.Enemy.MountOffset,
	}
	if def := cfg.WeaponByName(enemyType.Weapon); def != nil {
		w := CreateWeapon(ecs, def, pos)
		components.Weapon.Get(w).Unlimited = true
		ch.Inventory = []*donburi.Entry{w}
	} else {
		log.Printf("Warning: enemy type %q has unknown weapon %q", kind, enemyType.Weapon)
	}
	components.Character.SetValue(enemy, ch)

	addToSpace(ecs, obj)
	return enemy
}
