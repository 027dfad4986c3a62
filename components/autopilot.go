package components

import (
	"github.com/automoto/doomerang-arena/navigation"
	"github.com/yohamta/donburi"
)

// AutopilotData marks a player driven by the built-in AI instead of input.
type AutopilotData struct {
	Target donburi.Entity
	Route  navigation.Route
}

var Autopilot = donburi.NewComponentType[AutopilotData]()
