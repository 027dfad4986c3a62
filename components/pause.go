package components

import "github.com/yohamta/donburi"

// PauseData freezes gameplay systems while set. Effects keep running so a
// paused arena still fades its highlights.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
