package systems

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/yohamta/donburi/ecs"
)

// WithPauseCheck skips system while the session is paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithOutcomeCheck skips system once the round has been decided: the
// player died and a reset is pending.
func WithOutcomeCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if g := components.GameOf(e.World); g != nil && g.ResetRequested {
			return
		}
		system(e)
	}
}

// WithGameplayChecks combines the checks every gameplay system runs under.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithOutcomeCheck(system))
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

// SetPaused pauses or resumes gameplay.
func SetPaused(ecs *ecs.ECS, paused bool) {
	GetOrCreatePause(ecs).IsPaused = paused
}
