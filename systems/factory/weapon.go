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

// PickupElevation is the height a floor weapon hovers at.
const PickupElevation = 0.5

// CreateWeapon creates a full weapon lying on the floor at pos.
func CreateWeapon(ecs *ecs.ECS, def *cfg.WeaponDef, pos gamemath.Vec3) *donburi.Entry {
	weapon := archetypes.Weapon.Spawn(ecs)

	pos.Y = PickupElevation
	size := def.Size
	if size <= 0 {
		size = 1
	}
	obj := newFootprint(weapon, pos, size, size, tags.ResolvPickup)

	wd := components.WeaponData{
		Def:    def,
		Origin: pos,
	}
	wd.SetAmmo(def.MaxAmmo)
	components.Weapon.SetValue(weapon, wd)

	addToSpace(ecs, obj)
	return weapon
}
