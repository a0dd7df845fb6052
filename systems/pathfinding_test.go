package systems

import (
	"math/rand"
	"testing"

	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newWalledGrid builds a 16x16 grid of 64 unit cells with a wall down
// column 8 from row 0 to row 11.
func newWalledGrid(t *testing.T) *NavGrid {
	t.Helper()
	e := newTestECS(t, rolls(nil))
	factory.CreateBlocker(e, 8*64, 0, 64, 12*64, 300)
	return CreateNavGrid(spaceOf(e.World), 16*64, 16*64, 64, rand.New(rand.NewSource(3)))
}

func TestCreateNavGridMarksBlockedCells(t *testing.T) {
	g := newWalledGrid(t)
	require.Equal(t, 16, g.Width)
	require.Equal(t, 16, g.Height)

	assert.False(t, g.Nodes[0][8].Walkable)
	assert.False(t, g.Nodes[11][8].Walkable)
	assert.True(t, g.Nodes[12][8].Walkable)
	assert.True(t, g.Nodes[5][7].Walkable)
	assert.True(t, g.Nodes[5][9].Walkable)
}

func TestFindPathGoesAroundWall(t *testing.T) {
	g := newWalledGrid(t)
	sx, sy := g.GridToWorld(2, 2)
	gx, gy := g.GridToWorld(14, 2)

	path := g.FindPath(sx, sy, gx, gy)
	require.NotEmpty(t, path)
	assert.Equal(t, 2, path[0].X)
	assert.Equal(t, 14, path[len(path)-1].X)
	for _, n := range path {
		assert.True(t, n.Walkable)
		if n.X == 8 {
			assert.GreaterOrEqual(t, n.Y, 12)
		}
	}
}

func TestProjectToTraversable(t *testing.T) {
	g := newWalledGrid(t)

	p, ok := g.ProjectToTraversable(gamemath.Vec3(100, 130, 55))
	require.True(t, ok)
	assert.Equal(t, gamemath.Vec3(100, 130, cfg.Physics.GroundZ), p)

	p, ok = g.ProjectToTraversable(gamemath.Vec3(8*64+32, 5*64+32, 0))
	require.True(t, ok)
	x, y, _ := g.cellOf(p)
	assert.True(t, g.Nodes[y][x].Walkable)
	assert.LessOrEqual(t, absInt(x-8), 1)

	_, ok = g.ProjectToTraversable(gamemath.Vec3(-10, 100, 0))
	assert.False(t, ok)
}

func TestRandomReachablePointStaysInRadius(t *testing.T) {
	g := newWalledGrid(t)
	center := gamemath.Vec3(3*64+32, 3*64+32, 0)

	for i := 0; i < 10; i++ {
		p, ok := g.RandomReachablePoint(center, 200)
		require.True(t, ok)
		assert.LessOrEqual(t, gamemath.Dist2D(p, center), 200.0)
		x, y, _ := g.cellOf(p)
		assert.True(t, g.Nodes[y][x].Walkable)
	}

	_, ok := g.RandomReachablePoint(gamemath.Vec3(-500, -500, 0), 200)
	assert.False(t, ok)
}

func TestRandomReachablePointSkipsSealedCells(t *testing.T) {
	e := newTestECS(t, rolls(nil))
	// A box of walls around cell (12,12) on a 16x16 grid.
	factory.CreateBlocker(e, 11*64, 11*64, 3*64, 64, 300)
	factory.CreateBlocker(e, 11*64, 13*64, 3*64, 64, 300)
	factory.CreateBlocker(e, 11*64, 12*64, 64, 64, 300)
	factory.CreateBlocker(e, 13*64, 12*64, 64, 64, 300)
	g := CreateNavGrid(spaceOf(e.World), 16*64, 16*64, 64, rand.New(rand.NewSource(7)))
	require.True(t, g.Nodes[12][12].Walkable)

	// Starting next to the box, the sealed cell is inside the radius but
	// never chosen.
	center := gamemath.Vec3(10*64+32, 12*64+32, 0)
	for i := 0; i < 20; i++ {
		p, ok := g.RandomReachablePoint(center, 140)
		require.True(t, ok)
		x, y, _ := g.cellOf(p)
		assert.False(t, x == 12 && y == 12)
	}
}
