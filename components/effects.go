package components

import "github.com/yohamta/donburi"

// HighlightData drives the outline shader. A pulse holds Strength for
// Time seconds; a longer pulse overrides a shorter one still running.
type HighlightData struct {
	Strength float64
	Timer    float64
	Time     float64
	Active   bool
}

var Highlight = donburi.NewComponentType[HighlightData]()

// Pulse requests a highlight of the given strength for time seconds.
func (h *HighlightData) Pulse(strength, time float64) {
	if h.Active && time <= h.Time {
		return
	}
	h.Strength = strength
	h.Timer = 0
	h.Time = time
	h.Active = true
}

// Step advances the pulse after the frame's gameplay ran. A pulse lasts
// until its timer passes Time, then the highlight is cleared on the
// following step.
func (h *HighlightData) Step(dt float64) {
	if !h.Active {
		h.Strength = 0
		return
	}
	h.Timer += dt
	if h.Timer > h.Time {
		h.Active = false
	}
}
