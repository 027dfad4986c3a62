package navigation

import (
	"testing"

	"github.com/solarlune/resolv"

	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/tags"
)

type rect struct{ x, z, w, h float64 }

// arena builds a 20 by 20 space holding solid walls.
func arena(walls ...rect) *resolv.Space {
	space := collision.NewArenaSpace(20, 20, 2)
	for _, r := range walls {
		space.Add(collision.NewObject(r.x, r.z, r.w, r.h, tags.ResolvSolid))
	}
	return space
}

func inside(p gamemath.Vec3, r rect) bool {
	return p.X > r.x && p.X < r.x+r.w && p.Z > r.z && p.Z < r.z+r.h
}

func TestCellsFollowTheMask(t *testing.T) {
	wall := rect{2, 9, 16, 1}
	space := arena(wall)
	space.Add(collision.NewObject(5, 2, 1, 1, tags.ResolvPickup))
	g := New(space, 20, 20, 1, tags.MoveBlockMask...)

	if g.Width != 20 || g.Depth != 20 {
		t.Fatalf("grid = %dx%d, want 20x20", g.Width, g.Depth)
	}
	if g.Walkable(gamemath.V3(10.5, 0, 9.5)) {
		t.Error("cell under the wall should be blocked")
	}
	if !g.Walkable(gamemath.V3(10.5, 0, 8.5)) || !g.Walkable(gamemath.V3(10.5, 0, 10.5)) {
		t.Error("cells that only share an edge with the wall should be open")
	}
	if !g.Walkable(gamemath.V3(1.5, 0, 9.5)) {
		t.Error("the gap beside the wall should be open")
	}
	if !g.Walkable(gamemath.V3(5.5, 0, 2.5)) {
		t.Error("pickups are outside the mask and should not block")
	}
	if len(space.Objects()) != 2 {
		t.Errorf("space holds %d objects after building, want the 2 it started with", len(space.Objects()))
	}
}

func TestFindPathGoesAroundWall(t *testing.T) {
	g := New(arena(rect{2, 9, 16, 1}), 20, 20, 1, tags.MoveBlockMask...)

	path := g.FindPath(gamemath.V3(10.2, 0, 5.7), gamemath.V3(10.9, 0, 15.1))
	if len(path) < 2 {
		t.Fatalf("path = %v, want a route", path)
	}
	if path[0] != gamemath.V3(10.5, 0, 5.5) {
		t.Errorf("path starts at %v, want the start cell", path[0])
	}
	if path[len(path)-1] != gamemath.V3(10.5, 0, 15.5) {
		t.Errorf("path ends at %v, want the goal cell", path[len(path)-1])
	}

	crossed := false
	for i, p := range path {
		if !g.Walkable(p) {
			t.Fatalf("waypoint %d at %v is blocked", i, p)
		}
		if i > 0 {
			d := p.Sub(path[i-1])
			if d.X < -1 || d.X > 1 || d.Z < -1 || d.Z > 1 {
				t.Fatalf("waypoints %d and %d are not neighbours", i-1, i)
			}
		}
		if p.Z == 9.5 {
			crossed = true
			if p.X > 2 && p.X < 18 {
				t.Errorf("route crosses the wall row at %v", p)
			}
		}
	}
	if !crossed {
		t.Error("route never crosses the wall row")
	}
}

func TestDiagonalsDoNotClipCorners(t *testing.T) {
	// Blocks at (5,5) and (6,6) leave (5,6) and (6,5) touching only at a
	// corner.
	g := New(arena(rect{5, 5, 1, 1}, rect{6, 6, 1, 1}), 20, 20, 1, tags.MoveBlockMask...)

	for _, n := range g.Nodes[5][6].PathNeighbors() {
		if node := n.(*Node); node.X == 5 && node.Z == 6 {
			t.Fatal("diagonal step squeezes between two blocked cells")
		}
	}
}

func TestFindPathWithoutRoute(t *testing.T) {
	g := New(arena(rect{0, 9, 20, 1}), 20, 20, 1, tags.MoveBlockMask...)
	if path := g.FindPath(gamemath.V3(10, 0, 5), gamemath.V3(10, 0, 15)); path != nil {
		t.Errorf("path = %v, want none through a sealed wall", path)
	}
}

func TestFindPathFromBlockedCell(t *testing.T) {
	g := New(arena(rect{4, 4, 1, 1}), 20, 20, 1, tags.MoveBlockMask...)
	path := g.FindPath(gamemath.V3(4.5, 0, 4.5), gamemath.V3(8.5, 0, 4.5))
	if len(path) == 0 {
		t.Fatal("a start inside a block should move to the nearest open cell")
	}
	if !g.Walkable(path[0]) {
		t.Errorf("path starts in a blocked cell at %v", path[0])
	}
}

func TestSteerWalksAroundWall(t *testing.T) {
	wall := rect{2, 9, 16, 1}
	g := New(arena(wall), 20, 20, 1, tags.MoveBlockMask...)

	var r Route
	pos := gamemath.V3(10.5, 0, 5.5)
	goal := gamemath.V3(10.5, 0, 15.5)
	const dt, speed = 0.1, 2.0
	for i := 0; i < 400 && pos.Distance(goal) > 0.25; i++ {
		dir := g.Steer(&r, pos, goal, dt, 0.5)
		if dir.IsZero() {
			t.Fatalf("no direction at %v", pos)
		}
		pos = pos.Add(dir.Scale(speed * dt))
		if inside(pos, wall) {
			t.Fatalf("walked into the wall at %v", pos)
		}
	}
	if pos.Distance(goal) > 0.25 {
		t.Errorf("stopped at %v, want to reach %v", pos, goal)
	}
}

func TestSteerReplansWhenGoalMoves(t *testing.T) {
	g := New(arena(), 20, 20, 1, tags.MoveBlockMask...)
	var r Route
	from := gamemath.V3(2.5, 0, 2.5)

	g.Steer(&r, from, gamemath.V3(12.5, 0, 2.5), 0.1, 10)
	if r.Age != 0 {
		t.Fatalf("age = %v right after planning", r.Age)
	}
	g.Steer(&r, from, gamemath.V3(12.6, 0, 2.6), 0.1, 10)
	if r.Age == 0 {
		t.Error("a goal inside the same cell should keep the route")
	}

	dir := g.Steer(&r, from, gamemath.V3(2.5, 0, 12.5), 0.1, 10)
	if r.Goal != gamemath.V3(2.5, 0, 12.5) || r.Age != 0 {
		t.Errorf("route = %+v, want it planned for the new goal", r)
	}
	if dir.Z <= 0 || dir.X != 0 {
		t.Errorf("direction = %v, want straight along +Z", dir)
	}
}
