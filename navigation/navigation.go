// Package navigation finds walking routes across the arena floor with A*
// over a grid of cells marked by the colliders characters cannot cross.
package navigation

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"

	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// Grid represents the walkable floor of an arena
type Grid struct {
	Width, Depth int
	CellSize     float64
	Nodes        [][]*Node // indexed [z][x]
}

// Node is a single cell of the grid. It implements astar.Pather.
type Node struct {
	X, Z     int
	Walkable bool
	Grid     *Grid
}

var directions = []struct{ dx, dz int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// PathNeighbors returns the adjacent walkable nodes. Diagonal steps need
// both cells they pass between to be open, so routes never clip a corner.
func (n *Node) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range directions {
		next := n.Grid.node(n.X+d.dx, n.Z+d.dz)
		if next == nil || !next.Walkable {
			continue
		}
		if d.dx != 0 && d.dz != 0 && !(n.Grid.open(n.X+d.dx, n.Z) && n.Grid.open(n.X, n.Z+d.dz)) {
			continue
		}
		neighbors = append(neighbors, next)
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost returns the straight-line distance in cells
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Node)
	return math.Hypot(float64(t.X-n.X), float64(t.Z-n.Z))
}

// New builds the grid for an arena of width by depth units. A cell is
// blocked when a collider in mask overlaps it.
func New(space *resolv.Space, width, depth, cellSize float64, mask ...string) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	g := &Grid{
		Width:    max(1, int(math.Ceil(width/cellSize))),
		Depth:    max(1, int(math.Ceil(depth/cellSize))),
		CellSize: cellSize,
	}
	g.Nodes = make([][]*Node, g.Depth)
	for z := range g.Nodes {
		g.Nodes[z] = make([]*Node, g.Width)
		for x := range g.Nodes[z] {
			g.Nodes[z][x] = &Node{X: x, Z: z, Walkable: true, Grid: g}
		}
	}
	if space == nil {
		return g
	}

	// Shrink the cell a little so colliders that only touch its edge
	// leave it open.
	inset := cellSize * 0.1
	for z := 0; z < g.Depth; z++ {
		for x := 0; x < g.Width; x++ {
			cell := collision.NewObject(float64(x)*cellSize+inset, float64(z)*cellSize+inset, cellSize-2*inset, cellSize-2*inset)
			space.Add(cell)
			if collision.Blocked(cell, 0, 0, mask...) {
				g.Nodes[z][x].Walkable = false
			}
			space.Remove(cell)
		}
	}
	return g
}

func (g *Grid) node(x, z int) *Node {
	if x < 0 || x >= g.Width || z < 0 || z >= g.Depth {
		return nil
	}
	return g.Nodes[z][x]
}

func (g *Grid) open(x, z int) bool {
	n := g.node(x, z)
	return n != nil && n.Walkable
}

// Cell returns the grid coordinates holding p, clamped to the grid.
func (g *Grid) Cell(p gamemath.Vec3) (x, z int) {
	x = clampInt(int(math.Floor(p.X/g.CellSize)), 0, g.Width-1)
	z = clampInt(int(math.Floor(p.Z/g.CellSize)), 0, g.Depth-1)
	return x, z
}

// Walkable reports whether the cell holding p is open.
func (g *Grid) Walkable(p gamemath.Vec3) bool {
	return g.open(g.Cell(p))
}

// CellCenter converts grid coordinates to the arena point at the middle
// of that cell.
func (g *Grid) CellCenter(x, z int) gamemath.Vec3 {
	return gamemath.V3(float64(x)*g.CellSize+g.CellSize/2, 0, float64(z)*g.CellSize+g.CellSize/2)
}

// FindPath returns the cell centres from the cell holding from to the one
// holding to, both included. A start or goal inside a blocked cell moves
// to the nearest open one. It returns nil when no route exists.
func (g *Grid) FindPath(from, to gamemath.Vec3) []gamemath.Vec3 {
	start := g.nearestWalkable(g.Cell(from))
	goal := g.nearestWalkable(g.Cell(to))
	if start == nil || goal == nil {
		return nil
	}
	if start == goal {
		return []gamemath.Vec3{g.CellCenter(goal.X, goal.Z)}
	}

	path, _, found := astar.Path(start, goal)
	if !found {
		return nil
	}

	out := make([]gamemath.Vec3, len(path))
	for i, p := range path {
		n := p.(*Node)
		out[i] = g.CellCenter(n.X, n.Z)
	}
	// go-astar lists the route from the goal back to the start.
	if path[0].(*Node) != start {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// nearestWalkable searches in expanding squares for an open cell.
func (g *Grid) nearestWalkable(x, z int) *Node {
	if g.open(x, z) {
		return g.Nodes[z][x]
	}
	for radius := 1; radius < max(g.Width, g.Depth); radius++ {
		for dz := -radius; dz <= radius; dz++ {
			for dx := -radius; dx <= radius; dx++ {
				if absInt(dx) != radius && absInt(dz) != radius {
					continue
				}
				if g.open(x+dx, z+dz) {
					return g.Nodes[z+dz][x+dx]
				}
			}
		}
	}
	return nil
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Route is a path a character is walking toward a goal.
type Route struct {
	Waypoints []gamemath.Vec3
	Goal      gamemath.Vec3
	Age       float64 // seconds since the path was planned
	planned   bool
}

// Steer returns the unit floor direction to walk from toward goal. The
// path is planned again once it is refresh seconds old or the goal has
// left the cell it was planned for. Without a route it heads straight
// for goal.
func (g *Grid) Steer(r *Route, from, goal gamemath.Vec3, dt, refresh float64) gamemath.Vec3 {
	r.Age += dt
	gx, gz := g.Cell(goal)
	px, pz := g.Cell(r.Goal)
	if !r.planned || r.Age >= refresh || gx != px || gz != pz {
		r.Waypoints = g.FindPath(from, goal)
		if len(r.Waypoints) > 1 && g.Walkable(from) {
			// The first waypoint is the cell we are standing in.
			r.Waypoints = r.Waypoints[1:]
		}
		r.Goal = goal
		r.Age = 0
		r.planned = true
	}

	for len(r.Waypoints) > 1 && r.Waypoints[0].Sub(from).Flat().Length() < g.CellSize/2 {
		r.Waypoints = r.Waypoints[1:]
	}
	if len(r.Waypoints) <= 1 {
		return goal.Sub(from).Flat().Normalized()
	}
	return r.Waypoints[0].Sub(from).Flat().Normalized()
}
