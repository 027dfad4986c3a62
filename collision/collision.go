// Package collision answers spatial queries against the arena's resolv
// space: sphere overlap, sphere occupancy and raycasts. The arena is seen
// from above, so every test runs on the floor plane (arena X and Z) and
// ignores height.
package collision

import (
	"math"
	"sort"

	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/solarlune/resolv"
)

// RayHit is the first collider struck by a ray.
type RayHit struct {
	Object   *resolv.Object
	Point    gamemath.Vec3
	Distance float64
}

// World is the query service hit geometry runs against. A mask lists the
// resolv tags a query can see; an empty mask sees every collider.
type World interface {
	OverlapSphere(center gamemath.Vec3, radius float64, mask ...string) []*resolv.Object
	CheckSphere(center gamemath.Vec3, radius float64, mask ...string) bool
	Raycast(origin, dir gamemath.Vec3, maxDist float64, mask ...string) (RayHit, bool)
}

// Space implements World over a resolv space.
type Space struct {
	space *resolv.Space
}

func NewSpace(s *resolv.Space) *Space {
	return &Space{space: s}
}

func matches(o *resolv.Object, mask []string) bool {
	return len(mask) == 0 || o.HasTags(mask...)
}

// OverlapSphere returns every collider in mask touching the sphere.
func (s *Space) OverlapSphere(center gamemath.Vec3, radius float64, mask ...string) []*resolv.Object {
	var out []*resolv.Object
	for _, o := range s.aroundSphere(center, radius, mask) {
		x, z, w, h := Bounds(o)
		if CircleOverlapsRect(center.X, center.Z, radius, x, z, w, h) {
			out = append(out, o)
		}
	}
	return out
}

// CheckSphere reports whether any collider in mask touches the sphere.
func (s *Space) CheckSphere(center gamemath.Vec3, radius float64, mask ...string) bool {
	for _, o := range s.aroundSphere(center, radius, mask) {
		x, z, w, h := Bounds(o)
		if CircleOverlapsRect(center.X, center.Z, radius, x, z, w, h) {
			return true
		}
	}
	return false
}

func (s *Space) aroundSphere(center gamemath.Vec3, radius float64, mask []string) []*resolv.Object {
	if s == nil || s.space == nil || radius < 0 {
		return nil
	}
	return nearby(s.space,
		toPixels(center.X-radius), toPixels(center.Z-radius),
		toPixels(center.X+radius), toPixels(center.Z+radius),
		nil, mask)
}

// Raycast returns the nearest collider in mask hit by a ray from origin
// along dir within maxDist. Colliders that contain the origin are not
// reported, and a ray with no floor-plane component hits nothing.
func (s *Space) Raycast(origin, dir gamemath.Vec3, maxDist float64, mask ...string) (RayHit, bool) {
	if s == nil || s.space == nil || maxDist <= 0 {
		return RayHit{}, false
	}
	d := dir.Normalized()
	if math.Hypot(d.X, d.Z) < 1e-9 {
		return RayHit{}, false
	}

	type candidate struct {
		obj *resolv.Object
		t   float64
	}
	end := origin.Add(d.Scale(maxDist))
	around := nearby(s.space,
		toPixels(math.Min(origin.X, end.X)), toPixels(math.Min(origin.Z, end.Z)),
		toPixels(math.Max(origin.X, end.X)), toPixels(math.Max(origin.Z, end.Z)),
		nil, mask)

	var hits []candidate
	for _, o := range around {
		x, z, w, h := Bounds(o)
		if containsPoint(x, z, w, h, origin.X, origin.Z) {
			continue
		}
		if t, ok := RayRectHitT(origin.X, origin.Z, d.X, d.Z, maxDist, x, z, x+w, z+h); ok {
			hits = append(hits, candidate{obj: o, t: t})
		}
	}
	if len(hits) == 0 {
		return RayHit{}, false
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].t < hits[j].t })
	best := hits[0]
	return RayHit{
		Object:   best.obj,
		Point:    origin.Add(d.Scale(best.t)),
		Distance: best.t,
	}, true
}

func containsPoint(x, z, w, h, px, pz float64) bool {
	return px > x && px < x+w && pz > z && pz < z+h
}

// CircleOverlapsRect reports whether a circle touches an axis-aligned
// rectangle given by its corner and size.
func CircleOverlapsRect(cx, cy, r, x, y, w, h float64) bool {
	nx := math.Max(x, math.Min(cx, x+w))
	ny := math.Max(y, math.Min(cy, y+h))
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= r*r
}

// RayRectHitT intersects the ray o + t*d, t in [0, maxT], with an AABB
// using the slab method and returns the entry parameter.
func RayRectHitT(ox, oy, dx, dy, maxT, minX, minY, maxX, maxY float64) (float64, bool) {
	tMin := 0.0
	tMax := maxT

	if math.Abs(dx) < 1e-12 {
		if ox < minX || ox > maxX {
			return 0, false
		}
	} else {
		invD := 1.0 / dx
		t1 := (minX - ox) * invD
		t2 := (maxX - ox) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if math.Abs(dy) < 1e-12 {
		if oy < minY || oy > maxY {
			return 0, false
		}
	} else {
		invD := 1.0 / dy
		t1 := (minY - oy) * invD
		t2 := (maxY - oy) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	return tMin, true
}
