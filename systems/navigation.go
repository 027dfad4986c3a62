package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/navigation"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// walkTowards returns the unit floor direction that takes a character at
// pos along r toward goal, around walls and obstacles. Arenas without a
// route grid get the straight line.
func walkTowards(w donburi.World, r *navigation.Route, pos, goal gamemath.Vec3) gamemath.Vec3 {
	grid := components.NavOf(w)
	if grid == nil {
		return goal.Sub(pos).Flat().Normalized()
	}
	return grid.Steer(r, pos, goal, deltaOf(w), cfg.Navigation.RepathInterval)
}
