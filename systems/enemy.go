package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies chases the player until it is inside weapon range, then
// stops and fires at where the enemy believes the player is. That belief
// trails the real position, so fast movement throws off their aim.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := deltaOf(ecs.World)
	player, ok := tags.Player.First(ecs.World)
	if ok && components.Dying(player) {
		ok = false
	}

	for _, e := range collect(tags.Enemy, ecs.World) {
		if components.Dying(e) {
			continue
		}
		ch := components.Character.Get(e)
		if !ok {
			ch.Velocity = gamemath.Vec3{}
			continue
		}

		en := components.Enemy.Get(e)
		target := components.Position(player)
		if !en.HasPerceived {
			en.Perceived = target
			en.HasPerceived = true
		} else {
			en.Perceived = gamemath.MoveTowards(en.Perceived, target, en.Type.PerceptionSpeed*dt)
		}

		pos := components.Position(e)
		if look := en.Perceived.Sub(pos).Flat(); !look.IsZero() {
			ch.Facing = look.Normalized()
		}

		w := ch.Weapon()
		if w != nil && pos.Distance(target) > components.Weapon.Get(w).Def.Range*(1-cfg.Enemy.RangeMargin) {
			ch.Velocity = walkTowards(ecs.World, &en.Route, pos, target).Scale(en.Type.MoveSpeed)
			continue
		}

		ch.Velocity = gamemath.Vec3{}
		if !ch.Locked() {
			Shoot(ecs, e, en.Perceived)
		}
	}
}
