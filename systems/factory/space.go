package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space for an arena of width by depth
// units.
func CreateSpace(ecs *ecs.ECS, width, depth, cellSize float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := collision.NewArenaSpace(width, depth, cellSize)
	components.Space.Set(space, spaceData)
	return space
}

// newFootprint builds a square-cornered collider of w by h centred on
// center. Arena X maps to resolv X and arena Z to resolv Y.
func newFootprint(e *donburi.Entry, center gamemath.Vec3, w, h float64, resolvTags ...string) *resolv.Object {
	obj := collision.NewObject(center.X-w/2, center.Z-h/2, w, h, resolvTags...)
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj, Elevation: center.Y})
	return obj
}

// addToSpace puts obj into the world's space if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func facingOr(dir gamemath.Vec3) gamemath.Vec3 {
	if f := dir.Flat().Normalized(); !f.IsZero() {
		return f
	}
	return gamemath.V3(0, 0, 1)
}
