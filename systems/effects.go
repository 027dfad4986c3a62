package systems

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances visual state after gameplay ran: highlight
// pulses and static obstacle deformation.
func UpdateEffects(ecs *ecs.ECS) {
	dt := deltaOf(ecs.World)
	updateHighlights(ecs, dt)
	updateDeformations(ecs, dt)
}

func updateHighlights(ecs *ecs.ECS, dt float64) {
	components.Highlight.Each(ecs.World, func(e *donburi.Entry) {
		components.Highlight.Get(e).Step(dt)
	})
}

func updateDeformations(ecs *ecs.ECS, dt float64) {
	components.Deformation.Each(ecs.World, func(e *donburi.Entry) {
		components.Deformation.Get(e).Step(dt)
	})
}
