package netcomponents

import (
	"math"

	"github.com/yohamta/donburi"
)

type NetPlayerData struct {
	X, Z      float64
	Facing    float64
	Health    int
	MaxHealth int
	Weapon    string
	Ammo      int
	Autopilot bool

	// LastInput is the sequence of the newest client input the server
	// applied.
	LastInput uint32
}

var NetPlayer = donburi.NewComponentType[NetPlayerData]()

// LerpNetPlayer interpolates position and heading; discrete fields take the
// newer value.
func LerpNetPlayer(from, to NetPlayerData, t float64) *NetPlayerData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Z = from.Z + (to.Z-from.Z)*t
	out.Facing = lerpAngle(from.Facing, to.Facing, t)
	return &out
}

// lerpAngle takes the short way around.
func lerpAngle(from, to, t float64) float64 {
	d := math.Mod(to-from, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return from + d*t
}
