package systems

import (
	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/fx"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EquipWeapon makes the weapon at index the character's current one. An
// index outside the inventory leaves everything as it was and reports
// false. Players announce the inventory change either way.
func EquipWeapon(ecs *ecs.ECS, character *donburi.Entry, index int) bool {
	ch := components.Character.Get(character)
	ok := index >= 0 && index < len(ch.Inventory) && ch.Inventory[index].Valid()
	if ok {
		if prev := ch.Weapon(); prev != nil {
			components.Weapon.Get(prev).Active = false
		}
		ch.CurrentWeapon = index

		w := ch.Inventory[index]
		wd := components.Weapon.Get(w)
		wd.Owner = character.Entity()
		mountWeapon(character, w)
		wd.Active = true
		wd.IsPicked = true
		removeFromSpace(ecs.World, w)
	}

	if character.HasComponent(tags.Player) {
		events.Publish(busOf(ecs.World), events.PlayerInventoryChanged, events.PlayerEvent{Player: character})
	}
	return ok
}

// EquipNextWeapon cycles to the next weapon, wrapping to the first.
func EquipNextWeapon(ecs *ecs.ECS, character *donburi.Entry) bool {
	ch := components.Character.Get(character)
	next := ch.CurrentWeapon + 1
	if next == len(ch.Inventory) {
		next = 0
	}
	return EquipWeapon(ecs, character, next)
}

// PickUpWeapon hands a floor weapon to the character. A weapon the
// character already holds only tops up ammo, and is consumed, when the held
// one is not full; otherwise it stays on the floor. A new weapon joins the
// inventory and is equipped.
func PickUpWeapon(ecs *ecs.ECS, character, weapon *donburi.Entry) bool {
	if weapon == nil || !weapon.Valid() || components.Dying(character) {
		return false
	}
	wd := components.Weapon.Get(weapon)
	if wd.IsPicked {
		return false
	}
	ch := components.Character.Get(character)

	taken := false
	if held := heldLike(ch, wd); held != nil {
		hd := components.Weapon.Get(held)
		if hd.CurrentAmmo < hd.Def.MaxAmmo {
			hd.SetAmmo(hd.CurrentAmmo + wd.CurrentAmmo)
			destroy(ecs.World, weapon)
			taken = true
		}
	} else {
		ch.Inventory = append(ch.Inventory, weapon)
		wd.IsPicked = true
		wd.Owner = character.Entity()
		removeFromSpace(ecs.World, weapon)
		EquipWeapon(ecs, character, len(ch.Inventory)-1)
		taken = true
	}

	if taken {
		effectsOf(ecs.World).Cue(fx.CuePickup, components.Position(character))
	}
	if character.HasComponent(tags.Player) {
		events.Publish(busOf(ecs.World), events.PlayerInventoryChanged, events.PlayerEvent{Player: character})
	}
	return taken
}

// heldLike returns the held weapon sharing wd's definition.
func heldLike(ch *components.CharacterData, wd *components.WeaponData) *donburi.Entry {
	for _, held := range ch.Inventory {
		if held.Valid() && components.Weapon.Get(held).Def == wd.Def {
			return held
		}
	}
	return nil
}

// UpdatePickups lets the player collect floor weapons by walking onto them.
// A weapon is offered once per contact, so a duplicate left on the floor
// because the held one is full is not retried until the player steps off
// and back on.
func UpdatePickups(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok || components.Dying(player) {
		return
	}
	obj := components.Object.Get(player)

	touching := map[donburi.Entity]bool{}
	for _, o := range collision.Touching(obj.Object, 0, 0, tags.ResolvPickup) {
		if e := components.EntryOf(o); e != nil && e.HasComponent(components.Weapon) {
			touching[e.Entity()] = true
		}
	}

	for _, w := range collect(components.Weapon, ecs.World) {
		wd := components.Weapon.Get(w)
		if wd.IsPicked {
			continue
		}
		now := touching[w.Entity()]
		entered := now && !wd.Touching
		wd.Touching = now
		if entered {
			PickUpWeapon(ecs, player, w)
		}
	}
}
