package systems

import (
	"testing"

	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/fx"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	donburievents "github.com/yohamta/donburi/features/events"
)

// scriptedRand replays fixed draws, then returns zeros.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// cueSink records cues and hands out no-op emitters.
type cueSink struct {
	cues []fx.Cue
}

func (s *cueSink) Cue(c fx.Cue, _ gamemath.Vec3) { s.cues = append(s.cues, c) }

func (s *cueSink) NewEmitter(p fx.Particle) fx.Emitter { return fx.Nop{}.NewEmitter(p) }

func (s *cueSink) count(c fx.Cue) int {
	n := 0
	for _, got := range s.cues {
		if got == c {
			n++
		}
	}
	return n
}

func newTestECS(t *testing.T, sink fx.Sink, rnd components.Rand) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 64, 64, 2)
	if sink == nil {
		sink = fx.Nop{}
	}
	if rnd == nil {
		rnd = &scriptedRand{}
	}
	factory.CreateGame(e, components.GameData{Bus: events.NewBus(e.World), Fx: sink, Rand: rnd})
	GetOrCreatePause(e)
	return e
}

// step sets the frame delta, as the session does before running systems.
func step(e *ecs.ECS, dt float64) {
	c := components.ClockOf(e.World)
	c.Delta = dt
	c.Elapsed += dt
}

func record[T any](e *ecs.ECS, t *donburievents.EventType[T]) *[]T {
	var got []T
	events.Subscribe(busOf(e.World), t, func(ev T) {
		got = append(got, ev)
	})
	return &got
}

// alive reports whether ent is still in the world. Entries are recycled
// with their ids, so checks after a removal go through the entity.
func alive(e *ecs.ECS, ent donburi.Entity) bool { return e.World.Valid(ent) }

func at(x, z float64) gamemath.Vec3 { return gamemath.V3(x, 0, z) }

var north = gamemath.V3(0, 0, 1)
