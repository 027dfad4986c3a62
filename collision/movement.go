package collision

import "github.com/solarlune/resolv"

// overlaps reports whether a, shifted by (dx, dy) pixels, overlaps b.
func overlaps(a *resolv.Object, dx, dy float64, b *resolv.Object) bool {
	return a.X+dx < b.X+b.W && a.X+a.W+dx > b.X &&
		a.Y+dy < b.Y+b.H && a.Y+a.H+dy > b.Y
}

// Touching returns the colliders in mask that obj would overlap after
// moving by (dx, dz) arena units. The space's cells narrow the
// candidates, the bounding boxes decide.
func Touching(obj *resolv.Object, dx, dz float64, mask ...string) []*resolv.Object {
	if obj == nil || obj.Space == nil {
		return nil
	}
	px, py := toPixels(dx), toPixels(dz)
	var out []*resolv.Object
	for _, o := range nearby(obj.Space, obj.X+px, obj.Y+py, obj.X+obj.W+px, obj.Y+obj.H+py, obj, mask) {
		if overlaps(obj, px, py, o) {
			out = append(out, o)
		}
	}
	return out
}

// Blocked reports whether moving obj by (dx, dz) would overlap anything
// in mask.
func Blocked(obj *resolv.Object, dx, dz float64, mask ...string) bool {
	return len(Touching(obj, dx, dz, mask...)) > 0
}

// Slide moves obj by (dx, dz) one axis at a time, dropping the axis that
// would overlap something in mask. It reports which axes moved.
func Slide(obj *resolv.Object, dx, dz float64, mask ...string) (movedX, movedZ bool) {
	if dx != 0 && !Blocked(obj, dx, 0, mask...) {
		obj.X += toPixels(dx)
		movedX = true
	}
	if dz != 0 && !Blocked(obj, 0, dz, mask...) {
		obj.Y += toPixels(dz)
		movedZ = true
	}
	obj.Update()
	return movedX, movedZ
}
