// Package fx is the boundary between combat logic and presentation. The
// simulation asks for cues and particle emitters, the renderer or audio
// layer decides what they look and sound like.
package fx

import "github.com/automoto/doomerang-arena/shared/gamemath"

//go:generate go tool mockgen -destination=./mocks/fx_mock.go -package=mocks . Sink,Emitter

// Cue is a one-shot sound or visual signal.
type Cue int

const (
	CueShot Cue = iota
	CueNoAmmo
	CueExplosion
	CueAttack
	CuePickup
	CuePlayerHurt
	CueFuseLit
	CueLaunch
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueNoAmmo:
		return "no-ammo"
	case CueExplosion:
		return "explosion"
	case CueAttack:
		return "attack"
	case CuePickup:
		return "pickup"
	case CuePlayerHurt:
		return "player-hurt"
	case CueFuseLit:
		return "fuse-lit"
	case CueLaunch:
		return "launch"
	}
	return "unknown"
}

// Particle names a reusable particle system.
type Particle int

const (
	ParticleBlood Particle = iota
	ParticleMuzzle
	ParticleExplosion
	ParticleFire
)

func (p Particle) String() string {
	switch p {
	case ParticleBlood:
		return "blood"
	case ParticleMuzzle:
		return "muzzle"
	case ParticleExplosion:
		return "explosion"
	case ParticleFire:
		return "fire"
	}
	return "unknown"
}

// Emitter is a particle system that can be moved and replayed.
type Emitter interface {
	Place(at, dir gamemath.Vec3)
	Play()
}

// Sink receives presentation requests from the simulation.
type Sink interface {
	Cue(c Cue, at gamemath.Vec3)
	NewEmitter(p Particle) Emitter
}

// Burst places a fresh emitter and plays it once.
func Burst(s Sink, p Particle, at, dir gamemath.Vec3) {
	em := s.NewEmitter(p)
	if em == nil {
		return
	}
	em.Place(at, dir)
	em.Play()
}

// Nop discards every request.
type Nop struct{}

func (Nop) Cue(Cue, gamemath.Vec3) {}

func (Nop) NewEmitter(Particle) Emitter { return nopEmitter{} }

type nopEmitter struct{}

func (nopEmitter) Place(at, dir gamemath.Vec3) {}
func (nopEmitter) Play()                      {}
