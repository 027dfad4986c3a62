package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates an arena wall. x and z are the top-left corner on the
// floor plane.
func CreateWall(ecs *ecs.ECS, x, z, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	obj := collision.NewObject(x, z, w, h, tags.ResolvSolid)
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj, Elevation: 1})
	addToSpace(ecs, obj)

	return wall
}
