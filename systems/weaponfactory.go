package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeaponFactory drops a random weapon on a random free weapon spawn
// point every period.
func UpdateWeaponFactory(ecs *ecs.ECS) {
	e, ok := components.WeaponFactory.First(ecs.World)
	if !ok {
		return
	}
	wf := components.WeaponFactory.Get(e)
	if len(wf.Points) == 0 || len(wf.Weapons) == 0 || wf.Period <= 0 {
		return
	}

	wf.Timer += deltaOf(ecs.World)
	for wf.Timer >= wf.Period {
		wf.Timer -= wf.Period
		dropWeapon(ecs, wf)
	}
}

func dropWeapon(ecs *ecs.ECS, wf *components.WeaponFactoryData) {
	game := components.GameOf(ecs.World)
	point := wf.Points[game.Rand.IntN(len(wf.Points))]
	if queryWorld(ecs.World).CheckSphere(point, cfg.WeaponFactory.CheckRadius, tags.PickupBlockMask...) {
		return
	}
	def := wf.Weapons[game.Rand.IntN(len(wf.Weapons))]
	factory.CreateWeapon(ecs, def, point)
}
