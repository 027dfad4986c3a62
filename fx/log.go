package fx

import (
	"log"

	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// LogSink writes cues and particle bursts to the standard logger. The
// headless server uses it to trace what a client would see and hear.
type LogSink struct {
	// Quiet drops particle traces and keeps cues only.
	Quiet bool
}

func (s LogSink) Cue(c Cue, at gamemath.Vec3) {
	log.Printf("fx: %s at (%.2f, %.2f, %.2f)", c, at.X, at.Y, at.Z)
}

func (s LogSink) NewEmitter(p Particle) Emitter {
	return &logEmitter{kind: p, quiet: s.Quiet}
}

type logEmitter struct {
	kind  Particle
	at    gamemath.Vec3
	quiet bool
}

func (e *logEmitter) Place(at, dir gamemath.Vec3) { e.at = at }

func (e *logEmitter) Play() {
	if e.quiet {
		return
	}
	log.Printf("fx: %s particles at (%.2f, %.2f, %.2f)", e.kind, e.at.X, e.at.Y, e.at.Z)
}
