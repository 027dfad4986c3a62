package components

import (
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerData holds the latest control input. It is written between ticks
// and consumed by the player systems.
type PlayerData struct {
	Move gamemath.Vec3 // desired floor-plane direction, length <= 1
	Aim  gamemath.Vec3 // aim target in arena space
	Fire bool

	// FireHeld is Fire as of the previous frame. Shots go off on the press.
	FireHeld bool
}

var Player = donburi.NewComponentType[PlayerData]()
