package collision

import (
	"math"

	"github.com/solarlune/resolv"
)

// PixelsPerUnit is the resolution of the resolv space. Resolv rounds cell
// membership and checked moves to whole pixels, so arena units are scaled
// up before they reach it and scaled back down in every query.
const PixelsPerUnit = 16.0

func toPixels(v float64) float64 { return v * PixelsPerUnit }
func toUnits(v float64) float64  { return v / PixelsPerUnit }

// NewArenaSpace creates a space covering width by depth arena units, split
// into square cells of cellSize units.
func NewArenaSpace(width, depth, cellSize float64) *resolv.Space {
	if cellSize <= 0 {
		cellSize = 1
	}
	cell := int(math.Max(1, math.Round(toPixels(cellSize))))
	cols := int(math.Ceil(width/cellSize)) + 1
	rows := int(math.Ceil(depth/cellSize)) + 1
	return resolv.NewSpace(cols*cell, rows*cell, cell, cell)
}

// NewObject creates a collider of w by h arena units whose corner on the
// floor plane is (x, z).
func NewObject(x, z, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(toPixels(x), toPixels(z), toPixels(w), toPixels(h), tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	return obj
}

// Bounds returns the floor rectangle of o in arena units.
func Bounds(o *resolv.Object) (x, z, w, h float64) {
	return toUnits(o.X), toUnits(o.Y), toUnits(o.W), toUnits(o.H)
}

// Center returns the centre of o on the floor plane.
func Center(o *resolv.Object) (x, z float64) {
	return toUnits(o.X + o.W/2), toUnits(o.Y + o.H/2)
}

// Place centres o on (x, z) and refreshes its cells.
func Place(o *resolv.Object, x, z float64) {
	o.X = toPixels(x) - o.W/2
	o.Y = toPixels(z) - o.H/2
	o.Update()
}

// nearby returns the colliders in mask registered in a cell touched by the
// pixel rectangle. Resolv leaves an object's last pixel out of its cells,
// so the rectangle is grown by one pixel on every side.
func nearby(space *resolv.Space, minX, minY, maxX, maxY float64, skip *resolv.Object, mask []string) []*resolv.Object {
	if space == nil || space.Height() == 0 {
		return nil
	}
	cx, cy := space.WorldToSpace(minX-1, minY-1)
	ex, ey := space.WorldToSpace(maxX+1, maxY+1)
	cx, cy = max(cx, 0), max(cy, 0)
	ex, ey = min(ex, space.Width()-1), min(ey, space.Height()-1)

	var out []*resolv.Object
	seen := make(map[*resolv.Object]bool)
	for y := cy; y <= ey; y++ {
		for x := cx; x <= ex; x++ {
			for _, o := range space.Cell(x, y).Objects {
				if o == skip || seen[o] || !matches(o, mask) {
					continue
				}
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}
