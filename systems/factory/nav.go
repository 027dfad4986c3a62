package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/navigation"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNavGrid builds the route grid for an arena of width by depth units
// from the walls and obstacles already in the space.
func CreateNavGrid(ecs *ecs.ECS, width, depth, cellSize float64) *donburi.Entry {
	nav := archetypes.Nav.Spawn(ecs)
	grid := navigation.New(components.SpaceOf(ecs.World), width, depth, cellSize, tags.MoveBlockMask...)
	components.Nav.SetValue(nav, components.NavData{Grid: grid})
	return nav
}
