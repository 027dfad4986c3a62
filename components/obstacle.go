package components

import (
	"github.com/automoto/doomerang-arena/fx"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ImpulseData is the last hit on a dynamic obstacle, replayed as a force
// every fixed step until Duration elapses.
type ImpulseData struct {
	Force      gamemath.Vec3
	LocalPoint gamemath.Vec3
	Duration   float64
	Timer      float64
	Active     bool
}

var Impulse = donburi.NewComponentType[ImpulseData]()

// ExplosiveData is a fused charge on an obstacle.
type ExplosiveData struct {
	Started bool
	Fuse    float64 // seconds left once started
	Radius  float64
	Damage  int
	Mask    []string

	Fire fx.Emitter
}

var Explosive = donburi.NewComponentType[ExplosiveData]()

// DeformationData is the dent shown on a static obstacle. Strength falls
// from 1 to 0 after a hit; while it is positive new hits are ignored.
type DeformationData struct {
	Active    bool
	Strength  float64
	Center    gamemath.Vec3
	Direction gamemath.Vec3
	Timestamp float64

	decay *gween.Tween
}

var Deformation = donburi.NewComponentType[DeformationData]()

// Start latches a new deformation unless one is already showing.
func (d *DeformationData) Start(center, dir gamemath.Vec3, now, decayTime float64) bool {
	if d.Active {
		return false
	}
	d.Active = true
	d.Strength = 1
	d.Center = center
	d.Direction = dir
	d.Timestamp = now
	d.decay = gween.New(1, 0, float32(decayTime), ease.Linear)
	return true
}

// Step decays the strength and clears the deformation once it reaches 0.
func (d *DeformationData) Step(dt float64) {
	if !d.Active {
		return
	}
	s, done := d.decay.Update(float32(dt))
	if done || s <= 0 {
		d.Strength = 0
		d.Active = false
		d.decay = nil
		return
	}
	d.Strength = float64(s)
}
