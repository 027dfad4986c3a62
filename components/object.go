package components

import (
	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's footprint in the collision space. Resolv X is
// arena X and resolv Y is arena Z, both in collision pixels; Elevation is
// the height of the centre in arena units.
type ObjectData struct {
	*resolv.Object
	Elevation float64
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[resolv.Space]()

// Center returns the centre of the footprint in arena space.
func (o *ObjectData) Center() gamemath.Vec3 {
	x, z := collision.Center(o.Object)
	return gamemath.FromXZ(x, z, o.Elevation)
}

// MoveTo places the footprint centre at p and refreshes its cells.
func (o *ObjectData) MoveTo(p gamemath.Vec3) {
	o.Elevation = p.Y
	collision.Place(o.Object, p.X, p.Z)
}

// Position returns the arena position of an entity, or the zero vector
// when it has no footprint.
func Position(e *donburi.Entry) gamemath.Vec3 {
	if e == nil || !e.Valid() || !e.HasComponent(Object) {
		return gamemath.Vec3{}
	}
	return Object.Get(e).Center()
}

// SpaceOf returns the collision space of the world.
func SpaceOf(w donburi.World) *resolv.Space {
	e, ok := Space.First(w)
	if !ok {
		return nil
	}
	return Space.Get(e)
}

// Lookup returns the entry of e while it is alive. Entries are recycled
// with their ids, so references kept across frames are held as entities
// and resolved here.
func Lookup(w donburi.World, e donburi.Entity) *donburi.Entry {
	if !w.Valid(e) {
		return nil
	}
	return w.Entry(e)
}

// EntryOf returns the entity a resolv object belongs to.
func EntryOf(o *resolv.Object) *donburi.Entry {
	if o == nil {
		return nil
	}
	e, ok := o.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil
	}
	return e
}
