package systems

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"

	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/tags"
)

// NavGrid represents the walkable areas of the arena floor. It implements
// components.Navigator.
type NavGrid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*NavNode // 2D grid of nodes, indexed [y][x]
	Rand          gamemath.Roller
}

// NavNode represents a single cell in the navigation grid
// Implements astar.Pather interface
type NavNode struct {
	X, Y     int
	Walkable bool     // Can stand/move through this cell
	Grid     *NavGrid // Reference to parent grid for neighbor lookup
}

var neighborDirs = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
}

// PathNeighbors returns adjacent walkable nodes (implements astar.Pather)
func (n *NavNode) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather

	for _, d := range neighborDirs {
		nx, ny := n.X+d.dx, n.Y+d.dy
		if !n.Grid.inBounds(nx, ny) {
			continue
		}
		neighbor := n.Grid.Nodes[ny][nx]
		if !neighbor.Walkable {
			continue
		}
		// No corner cutting past blocked cells
		if d.dx != 0 && d.dy != 0 &&
			(!n.Grid.Nodes[n.Y][nx].Walkable || !n.Grid.Nodes[ny][n.X].Walkable) {
			continue
		}
		neighbors = append(neighbors, neighbor)
	}

	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)
	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// PathEstimatedCost returns heuristic distance to target (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	return n.PathNeighborCost(to)
}

// CreateNavGrid builds navigation grid from resolv Space
func CreateNavGrid(space *resolv.Space, levelWidth, levelHeight int, cellSize float64, roller gamemath.Roller) *NavGrid {
	gridW := int(float64(levelWidth) / cellSize)
	gridH := int(float64(levelHeight) / cellSize)

	grid := &NavGrid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*NavNode, gridH),
		Rand:     roller,
	}

	for y := 0; y < gridH; y++ {
		grid.Nodes[y] = make([]*NavNode, gridW)
		for x := 0; x < gridW; x++ {
			grid.Nodes[y][x] = &NavNode{
				X:        x,
				Y:        y,
				Walkable: true,
				Grid:     grid,
			}
		}
	}

	// Mark cells as non-walkable based on collision data, reusing a single
	// test object
	testObj := resolv.NewObject(2, 2, cellSize-4, cellSize-4)
	space.Add(testObj)
	defer space.Remove(testObj)

	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			testObj.X = float64(x)*cellSize + 2
			testObj.Y = float64(y)*cellSize + 2
			testObj.Update()
			if testObj.Check(0, 0, tags.ResolvSolid) != nil {
				grid.Nodes[y][x].Walkable = false
			}
		}
	}

	return grid
}

// FindPath uses go-astar to find path between world coordinates
func (g *NavGrid) FindPath(startX, startY, goalX, goalY float64) []*NavNode {
	sx := clampInt(int(startX/g.CellSize), 0, g.Width-1)
	sy := clampInt(int(startY/g.CellSize), 0, g.Height-1)
	gx := clampInt(int(goalX/g.CellSize), 0, g.Width-1)
	gy := clampInt(int(goalY/g.CellSize), 0, g.Height-1)

	startNode := g.Nodes[sy][sx]
	goalNode := g.Nodes[gy][gx]

	// Handle case where start or goal is in solid geometry
	if !startNode.Walkable {
		startNode = g.findNearestWalkable(sx, sy, 10)
	}
	if !goalNode.Walkable {
		goalNode = g.findNearestWalkable(gx, gy, 10)
	}

	if startNode == nil || goalNode == nil {
		return nil
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}

	// go-astar returns the path goal first
	result := make([]*NavNode, len(path))
	for i, p := range path {
		result[len(path)-1-i] = p.(*NavNode)
	}

	return result
}

// ProjectToTraversable snaps p onto the floor. Points in walkable cells
// keep their ground position; points in blocked cells move to the nearest
// walkable cell center within the project radius.
func (g *NavGrid) ProjectToTraversable(p vector.Vector) (vector.Vector, bool) {
	x, y, ok := g.cellOf(p)
	if !ok {
		return nil, false
	}
	if g.Nodes[y][x].Walkable {
		return gamemath.Vec3(p[0], p[1], cfg.Physics.GroundZ), true
	}
	n := g.findNearestWalkable(x, y, cfg.Navigation.ProjectCells+1)
	if n == nil {
		return nil, false
	}
	return g.nodeCenter(n), true
}

// RandomReachablePoint picks a random walkable cell within radius of
// center that has a path from center's cell.
func (g *NavGrid) RandomReachablePoint(center vector.Vector, radius float64) (vector.Vector, bool) {
	x, y, ok := g.cellOf(center)
	if !ok {
		return nil, false
	}
	start := g.Nodes[y][x]
	if !start.Walkable {
		start = g.findNearestWalkable(x, y, cfg.Navigation.ProjectCells+1)
		if start == nil {
			return nil, false
		}
	}

	reach := int(math.Ceil(radius / g.CellSize))
	var cells []*NavNode
	for cy := y - reach; cy <= y+reach; cy++ {
		for cx := x - reach; cx <= x+reach; cx++ {
			if !g.inBounds(cx, cy) || !g.Nodes[cy][cx].Walkable {
				continue
			}
			n := g.Nodes[cy][cx]
			if gamemath.Dist2D(g.nodeCenter(n), center) <= radius {
				cells = append(cells, n)
			}
		}
	}

	r := g.Rand
	if r == nil {
		r = fallbackRand
	}
	for attempt := 0; attempt < cfg.Navigation.ReachableAttempts && len(cells) > 0; attempt++ {
		i := r.Intn(len(cells))
		n := cells[i]
		if n == start {
			return g.nodeCenter(n), true
		}
		if _, _, found := astar.Path(start, n); found {
			return g.nodeCenter(n), true
		}
		cells[i] = cells[len(cells)-1]
		cells = cells[:len(cells)-1]
	}
	return nil, false
}

func (g *NavGrid) cellOf(p vector.Vector) (int, int, bool) {
	x := int(math.Floor(p[0] / g.CellSize))
	y := int(math.Floor(p[1] / g.CellSize))
	return x, y, g.inBounds(x, y)
}

func (g *NavGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *NavGrid) nodeCenter(n *NavNode) vector.Vector {
	wx, wy := g.GridToWorld(n.X, n.Y)
	return gamemath.Vec3(wx, wy, cfg.Physics.GroundZ)
}

// findNearestWalkable finds the nearest walkable node to the given cell
// within maxRadius rings.
func (g *NavGrid) findNearestWalkable(x, y, maxRadius int) *NavNode {
	for radius := 1; radius < maxRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if absInt(dx) != radius && absInt(dy) != radius {
					continue
				}
				nx, ny := x+dx, y+dy
				if g.inBounds(nx, ny) && g.Nodes[ny][nx].Walkable {
					return g.Nodes[ny][nx]
				}
			}
		}
	}
	return nil
}

// GridToWorld converts grid coordinates to world coordinates (center of cell)
func (g *NavGrid) GridToWorld(gridX, gridY int) (float64, float64) {
	return float64(gridX)*g.CellSize + g.CellSize/2,
		float64(gridY)*g.CellSize + g.CellSize/2
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
