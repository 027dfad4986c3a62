package systems

import (
	"math"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAutopilot writes player input for an autopilot player. Must run
// before UpdatePlayer.
func UpdateAutopilot(ecs *ecs.ECS) {
	components.Autopilot.Each(ecs.World, func(e *donburi.Entry) {
		if components.Dying(e) || !e.HasComponent(components.Player) {
			return
		}
		updateAutopilot(ecs, e)
	})
}

func updateAutopilot(ecs *ecs.ECS, e *donburi.Entry) {
	ap := components.Autopilot.Get(e)
	in := components.Player.Get(e)
	ch := components.Character.Get(e)
	pos := components.Position(e)

	target := components.Lookup(ecs.World, ap.Target)
	if target == nil || components.Dying(target) {
		target = nearestEnemy(ecs.World, pos)
		ap.Target = donburi.Null
		if target != nil {
			ap.Target = target.Entity()
		}
	}
	in.Fire = false

	if target == nil {
		// Nothing to fight: wander to the closest floor weapon.
		in.Move = gamemath.Vec3{}
		if w := nearestPickup(ecs.World, pos); w != nil {
			in.Move = walkTowards(ecs.World, &ap.Route, pos, components.Position(w))
		}
		return
	}

	if cfg.Autopilot.SwitchWhenEmpty && outOfAmmo(ch) && hasLoadedSpare(ch) {
		EquipNextWeapon(ecs, e)
	}

	aim := components.Position(target)
	diff := aim.Sub(pos).Flat()
	dist := diff.Length()
	in.Aim = aim

	reach := 1.0
	if w := ch.Weapon(); w != nil {
		reach = components.Weapon.Get(w).Def.Range
	}

	health := components.Health.Get(e)
	switch {
	case health.Fraction() < cfg.Autopilot.RetreatThreshold:
		in.Move = diff.Normalized().Scale(-1)
	case dist > reach*cfg.Autopilot.PreferredRange:
		in.Move = walkTowards(ecs.World, &ap.Route, pos, aim)
	default:
		in.Move = gamemath.Vec3{}
	}
	// Let go of the trigger after each shot so the next one is a fresh press.
	in.Fire = dist <= reach && !ch.Locked() && !in.FireHeld
}

func nearestEnemy(w donburi.World, pos gamemath.Vec3) *donburi.Entry {
	var best *donburi.Entry
	bestDist := math.Inf(1)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Dying(e) {
			return
		}
		if d := components.Position(e).Sub(pos).Flat().Length(); d < bestDist {
			best, bestDist = e, d
		}
	})
	return best
}

func nearestPickup(w donburi.World, pos gamemath.Vec3) *donburi.Entry {
	var best *donburi.Entry
	bestDist := math.Inf(1)
	components.Weapon.Each(w, func(e *donburi.Entry) {
		if components.Weapon.Get(e).IsPicked {
			return
		}
		if d := components.Position(e).Sub(pos).Flat().Length(); d < bestDist {
			best, bestDist = e, d
		}
	})
	return best
}

func outOfAmmo(ch *components.CharacterData) bool {
	w := ch.Weapon()
	if w == nil {
		return false
	}
	wd := components.Weapon.Get(w)
	return wd.Def.Kind != cfg.WeaponMelee && wd.CurrentAmmo == 0 && !wd.Unlimited
}

func hasLoadedSpare(ch *components.CharacterData) bool {
	for i, w := range ch.Inventory {
		if i == ch.CurrentWeapon || !w.Valid() {
			continue
		}
		wd := components.Weapon.Get(w)
		if wd.Def.Kind == cfg.WeaponMelee || wd.CurrentAmmo > 0 {
			return true
		}
	}
	return false
}
