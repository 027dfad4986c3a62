package systems

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes dead enemies, and the weapons they held, once their
// corpse timer runs out. A dead player stays until the session resets.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := deltaOf(ecs.World)
	for _, e := range collect(components.Death, ecs.World) {
		if !e.Valid() || e.HasComponent(tags.Player) {
			continue
		}
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer > 0 {
			continue
		}

		if e.HasComponent(components.Character) {
			for _, w := range components.Character.Get(e).Inventory {
				destroy(ecs.World, w)
			}
		}
		destroy(ecs.World, e)
	}
}
