package pathfinding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/pathfinding"
	"github.com/mitchelldurbincs/GridTactics/internal/testutil"
)

func TestReconstructPath_EveryWalkableTile(t *testing.T) {
	f := testutil.ParseGrid(
		"S..#.....",
		".#...#.X.",
		"...#...#.",
		".Y.....#.",
	)
	g := buildGraph(t, f)
	start := f.Mark('S')

	walkable := g.CalculateWalkableTiles(start, 8)
	require.NotEmpty(t, walkable)

	for _, tile := range walkable {
		path := g.ReconstructPath(tile)

		require.NotEmpty(t, path)
		assert.Equal(t, start, path[0], "path to %s starts at the unit", tile)
		assert.Equal(t, tile, path[len(path)-1], "path to %s ends at the target", tile)
		assert.Equal(t, tile.Distance, len(path)-1, "path to %s has Distance steps", tile)
		for i := 1; i < len(path); i++ {
			assert.True(t, path[i-1].IsLinkedTo(path[i]), "%s and %s are not linked", path[i-1], path[i])
			assert.True(t, path[i].IsEnterable(), "path to %s crosses blocked %s", tile, path[i])
		}
	}
}

func TestReconstructPath_StartTile(t *testing.T) {
	f := testutil.OpenGrid(2, 2)
	g := buildGraph(t, f)
	start := f.At(0, 0)

	g.CalculateWalkableTiles(start, 2)

	assert.Equal(t, []*core.Tile{start}, g.ReconstructPath(start))
}

func TestReconstructPath_AfterReset(t *testing.T) {
	f := testutil.OpenGrid(4, 1)
	g := buildGraph(t, f)
	end := f.At(3, 0)

	g.CalculateWalkableTiles(f.At(0, 0), 3)
	require.Len(t, g.ReconstructPath(end), 4)

	g.ResetPathfinding()

	assert.Equal(t, []*core.Tile{end}, g.ReconstructPath(end))
}

func TestReconstructPath_LogicErrors(t *testing.T) {
	t.Run("nil tile", func(t *testing.T) {
		testutil.AssertPanicIs(t, core.ErrNilTile, func() {
			pathfinding.ReconstructPath(nil)
		})
	})

	t.Run("parent cycle", func(t *testing.T) {
		a := core.NewTile(core.NewCoordinate(0, 0), false)
		b := core.NewTile(core.NewCoordinate(1, 0), false)
		a.Parent = b
		b.Parent = a

		testutil.AssertPanicIs(t, core.ErrBrokenPath, func() {
			pathfinding.ReconstructPath(a)
		})
	})
}

func TestReconstructPath_Standalone(t *testing.T) {
	a := core.NewTile(core.NewCoordinate(0, 0), false)
	b := core.NewTile(core.NewCoordinate(1, 0), false)
	c := core.NewTile(core.NewCoordinate(2, 0), false)
	b.Parent = a
	c.Parent = b

	assert.Equal(t, []*core.Tile{a, b, c}, pathfinding.ReconstructPath(c))
}
