package pathfinding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
	"github.com/mitchelldurbincs/GridTactics/internal/testutil"
)

// referenceDistances is a plain single-visit BFS over enterable tiles used to
// check the relaxation search.
func referenceDistances(start *core.Tile) map[*core.Tile]int {
	dist := map[*core.Tile]int{start: 0}
	queue := []*core.Tile{start}
	for len(queue) > 0 {
		tile := queue[0]
		queue = queue[1:]
		for _, n := range tile.LinkedTiles {
			if _, seen := dist[n]; seen || !n.IsEnterable() {
				continue
			}
			dist[n] = dist[tile] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

func TestCalculateWalkableTiles_OpenGrid(t *testing.T) {
	f := testutil.OpenGrid(3, 3)
	g := buildGraph(t, f)
	center := f.At(1, 1)

	t.Run("budget one", func(t *testing.T) {
		walkable := g.CalculateWalkableTiles(center, 1)

		assert.ElementsMatch(t, []core.Coordinate{
			{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1},
		}, coordsOf(walkable))
		assert.Equal(t, center, walkable[0], "the start tile is discovered first")
		assert.Equal(t, 0, center.Distance)
		for _, tile := range walkable[1:] {
			assert.Equal(t, 1, tile.Distance)
			assert.Equal(t, center, tile.Parent)
		}
	})

	t.Run("budget zero", func(t *testing.T) {
		walkable := g.CalculateWalkableTiles(center, 0)
		assert.Equal(t, []*core.Tile{center}, walkable)
	})

	t.Run("negative budget behaves like zero", func(t *testing.T) {
		walkable := g.CalculateWalkableTiles(center, -3)
		assert.Equal(t, []*core.Tile{center}, walkable)
	})

	t.Run("budget covers the map", func(t *testing.T) {
		walkable := g.CalculateWalkableTiles(f.At(0, 0), 10)
		assert.Len(t, walkable, 9)
		assert.Equal(t, 4, f.At(2, 2).Distance)
	})
}

func TestCalculateWalkableTiles_StartTileIncluded(t *testing.T) {
	f := testutil.ParseGrid(
		".A.",
	)
	g := buildGraph(t, f)
	start := f.Mark('A')
	require.False(t, start.IsEnterable(), "the unit's own tile is occupied")

	walkable := g.CalculateWalkableTiles(start, 1)

	assert.Contains(t, walkable, start)
	assert.Len(t, walkable, 3)
	assert.Nil(t, start.Parent)
}

func TestCalculateWalkableTiles_SingleTileMap(t *testing.T) {
	f := testutil.ParseGrid("A")
	g := buildGraph(t, f)

	walkable := g.CalculateWalkableTiles(f.Mark('A'), 5)

	assert.Equal(t, []*core.Tile{f.Mark('A')}, walkable)
}

func TestCalculateWalkableTiles_OccupancyBlocks(t *testing.T) {
	f := testutil.ParseGrid(
		"...",
		".S.",
		".X.",
		".t.",
	)
	g := buildGraph(t, f)
	start, blocker, behind := f.Mark('S'), f.Mark('X'), f.Mark('t')

	t.Run("blocked tile and tile behind it are excluded", func(t *testing.T) {
		walkable := g.CalculateWalkableTiles(start, 2)

		assert.NotContains(t, walkable, blocker)
		assert.NotContains(t, walkable, behind)
		assert.Contains(t, walkable, f.At(0, 2))
		assert.Contains(t, walkable, f.At(2, 2))
	})

	t.Run("detour reaches the tile behind", func(t *testing.T) {
		walkable := g.CalculateWalkableTiles(start, 4)

		require.Contains(t, walkable, behind)
		assert.Equal(t, 4, behind.Distance)
		assert.NotContains(t, g.ReconstructPath(behind), blocker)
	})
}

func TestCalculateWalkableTiles_WallsBlock(t *testing.T) {
	f := testutil.ParseGrid(
		"S#t",
		".#.",
		"...",
	)
	g := buildGraph(t, f)
	start, target := f.Mark('S'), f.Mark('t')

	walkable := g.CalculateWalkableTiles(start, 3)
	assert.NotContains(t, walkable, target)
	for _, tile := range walkable {
		assert.False(t, tile.IsWall)
	}

	walkable = g.CalculateWalkableTiles(start, 6)
	require.Contains(t, walkable, target)
	assert.Equal(t, 6, target.Distance)
}

func TestCalculateWalkableTiles_DistancesAreShortest(t *testing.T) {
	f := testutil.ParseGrid(
		"S....#....",
		".##..#.B..",
		"..#.....#.",
		"..#C###.#.",
		".....#....",
		"#.#...D...",
	)
	g := buildGraph(t, f)
	start := f.Mark('S')

	for _, budget := range []int{0, 1, 3, 6, 12, 40} {
		walkable := g.CalculateWalkableTiles(start, budget)
		reference := referenceDistances(start)

		seen := make(map[*core.Tile]bool)
		previous := 0
		for _, tile := range walkable {
			assert.False(t, seen[tile], "budget %d: %s returned twice", budget, tile)
			seen[tile] = true

			expected, ok := reference[tile]
			require.True(t, ok, "budget %d: %s is not reachable", budget, tile)
			assert.Equal(t, expected, tile.Distance, "budget %d: %s", budget, tile)
			assert.LessOrEqual(t, tile.Distance, budget)
			assert.GreaterOrEqual(t, tile.Distance, previous, "discovery order is non-decreasing")
			previous = tile.Distance
		}

		for tile, d := range reference {
			if d <= budget {
				assert.True(t, seen[tile], "budget %d: %s at distance %d missing", budget, tile, d)
			}
		}
	}
}

func TestCalculateWalkableTiles_MonotonicContainment(t *testing.T) {
	f := testutil.ParseGrid(
		"..#...",
		".S#.X.",
		"......",
		"#..#..",
	)
	g := buildGraph(t, f)
	start := f.Mark('S')

	var previous []core.Coordinate
	for budget := 0; budget <= 10; budget++ {
		current := coordsOf(g.CalculateWalkableTiles(start, budget))
		assert.Subset(t, current, previous, "budget %d must contain budget %d", budget, budget-1)
		previous = current
	}
}

func TestCalculateWalkableTiles_ResetsStaleState(t *testing.T) {
	f := testutil.OpenGrid(5, 1)
	g := buildGraph(t, f)

	g.CalculateWalkableTiles(f.At(0, 0), 4)
	walkable := g.CalculateWalkableTiles(f.At(4, 0), 1)

	assert.ElementsMatch(t, []*core.Tile{f.At(4, 0), f.At(3, 0)}, walkable)
	assert.False(t, f.At(0, 0).Visited, "previous query state must not leak")
	assert.Nil(t, f.At(4, 0).Parent)
}

func TestCalculateWalkableTiles_HugeBudget(t *testing.T) {
	f := testutil.OpenGrid(3, 3)
	g := buildGraph(t, f)

	for _, budget := range []int{1 << 31, 1 << 32, math.MaxInt} {
		walkable := g.CalculateWalkableTiles(f.At(1, 1), budget)
		assert.Len(t, walkable, 9, "budget %d", budget)
	}
}
