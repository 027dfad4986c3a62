package components

import (
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/fx"
	"github.com/yohamta/donburi"
)

// Rand is the randomness the simulation draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// GameData is the per-session singleton carrying collaborators that
// systems need: the event bus, the effect sink and the random source.
type GameData struct {
	Bus  *events.Bus
	Fx   fx.Sink
	Rand Rand

	ResetRequested bool
	Won            bool
	Kills          int
}

var Game = donburi.NewComponentType[GameData]()

// ClockData is the per-session time source.
type ClockData struct {
	Delta      float64 // scaled seconds of the current frame
	FixedDelta float64
	Elapsed    float64
	TimeScale  float64
	Frame      int
}

var Clock = donburi.NewComponentType[ClockData]()

// GameOf returns the session singleton of w.
func GameOf(w donburi.World) *GameData {
	e, ok := Game.First(w)
	if !ok {
		return nil
	}
	return Game.Get(e)
}

// ClockOf returns the clock of w.
func ClockOf(w donburi.World) *ClockData {
	e, ok := Clock.First(w)
	if !ok {
		return nil
	}
	return Clock.Get(e)
}
