package systems

import (
	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/fx"
	"github.com/yohamta/donburi"
)

// queryWorld returns the spatial query service of w.
func queryWorld(w donburi.World) collision.World {
	return collision.NewSpace(components.SpaceOf(w))
}

func effectsOf(w donburi.World) fx.Sink {
	if g := components.GameOf(w); g != nil && g.Fx != nil {
		return g.Fx
	}
	return fx.Nop{}
}

func busOf(w donburi.World) *events.Bus {
	if g := components.GameOf(w); g != nil {
		return g.Bus
	}
	return nil
}

func deltaOf(w donburi.World) float64 {
	if c := components.ClockOf(w); c != nil {
		return c.Delta
	}
	return 0
}

func fixedDeltaOf(w donburi.World) float64 {
	if c := components.ClockOf(w); c != nil {
		return c.FixedDelta
	}
	return 0
}

func elapsedOf(w donburi.World) float64 {
	if c := components.ClockOf(w); c != nil {
		return c.Elapsed
	}
	return 0
}

// removeFromSpace takes e out of collision queries.
func removeFromSpace(w donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	if space := components.SpaceOf(w); space != nil {
		space.Remove(obj.Object)
	}
}

// destroy removes e from the space and the world.
func destroy(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	removeFromSpace(w, e)
	w.Remove(e.Entity())
}

// collect snapshots the entries of a query so the caller can change the
// world while walking them.
func collect(q interface {
	Each(donburi.World, func(*donburi.Entry))
}, w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	q.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}
