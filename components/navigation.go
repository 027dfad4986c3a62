package components

import (
	"github.com/automoto/doomerang-arena/navigation"
	"github.com/yohamta/donburi"
)

// NavData holds the route grid of the arena. It is built once the walls
// and obstacles are placed.
type NavData struct {
	Grid *navigation.Grid
}

var Nav = donburi.NewComponentType[NavData]()

// NavOf returns the route grid of w, or nil when the arena has none.
func NavOf(w donburi.World) *navigation.Grid {
	e, ok := Nav.First(w)
	if !ok {
		return nil
	}
	return Nav.Get(e).Grid
}
