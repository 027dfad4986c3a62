package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/fx"
	"github.com/automoto/doomerang-arena/geometry"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Shoot fires the character's current weapon at target and locks the
// character for the weapon's recoil time. It does nothing, and reports
// false, when the character is dying, unarmed or still recoiling. An empty
// weapon still clicks and still recoils.
func Shoot(ecs *ecs.ECS, character *donburi.Entry, target gamemath.Vec3) bool {
	if components.Dying(character) {
		return false
	}
	ch := components.Character.Get(character)
	w := ch.Weapon()
	if w == nil || ch.Locked() {
		return false
	}

	mountWeapon(character, w)
	fireWeapon(ecs, ch, w, target)

	ch.ShootLock = components.Weapon.Get(w).Def.RecoilTime
	effectsOf(ecs.World).Cue(fx.CueAttack, components.Position(character))
	return true
}

func fireWeapon(ecs *ecs.ECS, ch *components.CharacterData, w *donburi.Entry, target gamemath.Vec3) {
	wd := components.Weapon.Get(w)
	sink := effectsOf(ecs.World)

	switch wd.Def.Kind {
	case cfg.WeaponMelee:
		hits := geometry.Hits(WeaponShape(wd, target), queryWorld(ecs.World), ch.HitMask, geometry.Any)
		applyHits(ecs, hits, wd.Def.Damage)

	case cfg.WeaponRanged, cfg.WeaponSpray:
		if wd.CurrentAmmo == 0 {
			sink.Cue(fx.CueNoAmmo, wd.Origin)
			return
		}
		hits := geometry.Hits(WeaponShape(wd, target), queryWorld(ecs.World), ch.HitMask, geometry.Any)
		applyHits(ecs, hits, wd.Def.Damage)
		wd.Spend()

		barrel := wd.Barrel()
		fx.Burst(sink, fx.ParticleMuzzle, barrel, target.Sub(barrel).Flat().Normalized())
		sink.Cue(fx.CueShot, barrel)

	case cfg.WeaponLauncher:
		if wd.CurrentAmmo == 0 {
			sink.Cue(fx.CueNoAmmo, wd.Origin)
			return
		}
		wd.Spend()

		barrel := wd.Barrel()
		fx.Burst(sink, fx.ParticleMuzzle, barrel, target.Sub(barrel).Flat().Normalized())
		sink.Cue(fx.CueLaunch, barrel)

		aim := clampToRange(barrel, target, wd.Def.Range)
		vel := gamemath.BallisticVelocity(barrel, aim, wd.Def.ShotTime, cfg.Physics.Gravity)
		factory.CreateProjectile(ecs, barrel, vel, wd.Def.Damage, wd.Def.ProjectileRadius, ch.HitMask, wd.Owner)
	}
}

// WeaponShape is the area a weapon would affect when fired at target.
func WeaponShape(wd *components.WeaponData, target gamemath.Vec3) geometry.Shape {
	switch wd.Def.Kind {
	case cfg.WeaponRanged:
		barrel := wd.Barrel()
		return geometry.Ray{
			Origin:    barrel,
			Direction: target.Sub(barrel).Flat().Normalized(),
			Range:     wd.Def.Range,
		}
	case cfg.WeaponSpray:
		return geometry.Subsphere{
			Center:   wd.Origin,
			Radius:   wd.Def.Range,
			MaxAngle: wd.Def.SprayAngle,
			Forward:  target.Sub(wd.Origin),
		}
	case cfg.WeaponLauncher:
		barrel := wd.Barrel()
		return geometry.Sphere{
			Center: clampToRange(barrel, target, wd.Def.Range),
			Radius: wd.Def.ProjectileRadius,
		}
	default:
		return geometry.Ray{
			Origin:    wd.Origin,
			Direction: target.Sub(wd.Origin).Flat().Normalized(),
			Range:     wd.Def.Range,
		}
	}
}

func clampToRange(from, target gamemath.Vec3, r float64) gamemath.Vec3 {
	diff := target.Sub(from)
	if diff.Length() > r {
		return from.Add(diff.Normalized().Scale(r))
	}
	return target
}

// HighlightEnemies outlines the enemies the character's weapon would hit
// if fired at target. Nothing else changes.
func HighlightEnemies(ecs *ecs.ECS, character *donburi.Entry, target gamemath.Vec3) {
	if components.Dying(character) {
		return
	}
	ch := components.Character.Get(character)
	w := ch.Weapon()
	if w == nil {
		return
	}
	mountWeapon(character, w)
	wd := components.Weapon.Get(w)
	hits := geometry.Hits(WeaponShape(wd, target), queryWorld(ecs.World), ch.HitMask, geometry.Enemies)
	for _, h := range hits {
		if h.Target.HasComponent(components.Highlight) {
			components.Highlight.Get(h.Target).Pulse(cfg.Combat.AimHighlightStrength, cfg.Combat.AimHighlightTime)
		}
	}
}

// UpdateShootLocks counts recoil down.
func UpdateShootLocks(ecs *ecs.ECS) {
	dt := deltaOf(ecs.World)
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		if ch.ShootLock > 0 {
			ch.ShootLock -= dt
			if ch.ShootLock < 0 {
				ch.ShootLock = 0
			}
		}
	})
}

// UpdateWeapons keeps held weapons on their owner's mount and spins the
// ones lying on the floor.
func UpdateWeapons(ecs *ecs.ECS) {
	dt := deltaOf(ecs.World)
	components.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		wd := components.Weapon.Get(e)
		if !wd.IsPicked {
			wd.Yaw += cfg.WeaponFactory.SpinSpeed * dt * gamemath.Deg2Rad
			return
		}
		if !wd.Active {
			return
		}
		if owner := components.Lookup(ecs.World, wd.Owner); owner != nil {
			mountWeapon(owner, e)
		}
	})
}

// mountWeapon places w so that its handle sits on the character's mount.
func mountWeapon(character, w *donburi.Entry) {
	ch := components.Character.Get(character)
	wd := components.Weapon.Get(w)
	wd.Yaw = gamemath.Yaw(ch.Facing)
	mount := ch.MountPoint(components.Position(character))
	wd.Origin = mount.Sub(wd.Handle())
}
