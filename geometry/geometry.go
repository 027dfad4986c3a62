// Package geometry resolves the area a weapon or blast affects into a list
// of hits. Shapes run against a collision.World and only report entities
// that can take a hit.
package geometry

import (
	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Hit is one entity struck by a shape.
type Hit struct {
	Target    *donburi.Entry
	Point     gamemath.Vec3
	Direction gamemath.Vec3
}

// Shape is a hit volume.
type Shape interface {
	Hits(w collision.World, mask []string) []Hit
}

// Filter narrows hits to a subtype of hittable.
type Filter func(e *donburi.Entry) bool

// Any accepts every hittable entity.
func Any(*donburi.Entry) bool { return true }

func Enemies(e *donburi.Entry) bool { return kindOf(e) == components.HitEnemy }

func Players(e *donburi.Entry) bool { return kindOf(e) == components.HitPlayer }

// Characters accepts the player and enemies.
func Characters(e *donburi.Entry) bool { return kindOf(e).IsCharacter() }

func kindOf(e *donburi.Entry) components.HittableKind {
	return components.Hittable.Get(e).Kind
}

// Hits runs shape and keeps the hits accepted by filter. A nil filter
// accepts everything.
func Hits(shape Shape, w collision.World, mask []string, filter Filter) []Hit {
	raw := shape.Hits(w, mask)
	if raw == nil || filter == nil {
		return raw
	}
	out := raw[:0:0]
	for _, h := range raw {
		if filter(h.Target) {
			out = append(out, h)
		}
	}
	return out
}

// hittable returns the live hittable entity behind o.
func hittable(o *resolv.Object) *donburi.Entry {
	e := components.EntryOf(o)
	if e == nil || !e.HasComponent(components.Hittable) {
		return nil
	}
	return e
}

// Sphere hits everything overlapping it, without occlusion.
type Sphere struct {
	Center gamemath.Vec3
	Radius float64
}

func (s Sphere) Hits(w collision.World, mask []string) []Hit {
	var out []Hit
	for _, o := range w.OverlapSphere(s.Center, s.Radius, mask...) {
		e := hittable(o)
		if e == nil {
			continue
		}
		p := components.Position(e)
		out = append(out, Hit{
			Target:    e,
			Point:     p,
			Direction: p.Sub(s.Center).Normalized(),
		})
	}
	return out
}

// Subsphere is a cone cut from a sphere: candidates must lie within
// MaxAngle degrees of Forward and be in line of sight of the centre.
type Subsphere struct {
	Center   gamemath.Vec3
	Radius   float64
	MaxAngle float64
	Forward  gamemath.Vec3
}

func (s Subsphere) Hits(w collision.World, mask []string) []Hit {
	var out []Hit
	for _, o := range w.OverlapSphere(s.Center, s.Radius, mask...) {
		e := hittable(o)
		if e == nil {
			continue
		}
		diff := components.Position(e).Sub(s.Center)
		if gamemath.Angle(s.Forward, diff) >= s.MaxAngle {
			continue
		}
		ray, ok := w.Raycast(s.Center, diff, diff.Length(), mask...)
		if !ok || ray.Object != o {
			continue
		}
		out = append(out, Hit{
			Target:    e,
			Point:     ray.Point,
			Direction: ray.Point.Sub(s.Center).Normalized(),
		})
	}
	return out
}

// Ray hits at most the first collider along Direction within Range.
type Ray struct {
	Origin    gamemath.Vec3
	Direction gamemath.Vec3
	Range     float64
}

func (r Ray) Hits(w collision.World, mask []string) []Hit {
	ray, ok := w.Raycast(r.Origin, r.Direction, r.Range, mask...)
	if !ok {
		return nil
	}
	e := hittable(ray.Object)
	if e == nil {
		return nil
	}
	return []Hit{{Target: e, Point: ray.Point, Direction: r.Direction}}
}
