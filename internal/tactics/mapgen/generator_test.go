package mapgen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/units"
)

// newTestRNG provides a random number generator with a fixed seed for deterministic tests.
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestDefaultMapConfig(t *testing.T) {
	config := DefaultMapConfig(10, 8)

	assert.Equal(t, 10, config.Width)
	assert.Equal(t, 8, config.Height)
	assert.Equal(t, 8, config.WallRatio)
	assert.Equal(t, 3, config.UnitsPerTeam)
	assert.Equal(t, 3, config.MinSpawnSpacing)
}

func TestNewGenerator(t *testing.T) {
	config := DefaultMapConfig(10, 10)
	rng := newTestRNG()
	generator := NewGenerator(config, rng)

	require.NotNil(t, generator)
	assert.Equal(t, config, generator.config)
	assert.Same(t, rng, generator.rng)
}

func TestGenerateMap(t *testing.T) {
	config := DefaultMapConfig(10, 8)
	m, err := NewGenerator(config, newTestRNG()).GenerateMap()
	require.NoError(t, err)

	assert.Len(t, m.Tiles, 80)
	assert.Equal(t, 10, m.WallCount(), "one wall per WallRatio tiles")

	seen := make(map[core.Coordinate]bool)
	for _, tile := range m.Tiles {
		assert.True(t, tile.Coord.IsValid(config.Width, config.Height))
		assert.False(t, seen[tile.Coord], "duplicate tile %s", tile.Coord)
		seen[tile.Coord] = true
	}

	require.Len(t, m.Spawns, 6)
	assert.Len(t, m.TeamSpawns(units.TeamPlayer), 3)
	assert.Len(t, m.TeamSpawns(units.TeamEnemy), 3)

	spawned := make(map[core.Coordinate]bool)
	for _, s := range m.Spawns {
		tile := m.TileAt(s.Coord)
		require.NotNil(t, tile)
		assert.False(t, tile.IsWall, "spawn %s on a wall", s.Coord)
		assert.False(t, spawned[s.Coord], "two spawns on %s", s.Coord)
		spawned[s.Coord] = true
	}

	for _, p := range m.TeamSpawns(units.TeamPlayer) {
		for _, e := range m.TeamSpawns(units.TeamEnemy) {
			assert.GreaterOrEqual(t, p.Coord.DistanceTo(e.Coord), config.MinSpawnSpacing)
		}
	}
}

func TestGenerateMap_Deterministic(t *testing.T) {
	config := DefaultMapConfig(12, 12)

	a, err := NewGenerator(config, newTestRNG()).GenerateMap()
	require.NoError(t, err)
	b, err := NewGenerator(config, newTestRNG()).GenerateMap()
	require.NoError(t, err)

	assert.Equal(t, a.Spawns, b.Spawns)
	for i := range a.Tiles {
		assert.Equal(t, a.Tiles[i].IsWall, b.Tiles[i].IsWall)
	}
}

func TestGenerateMap_NoWalls(t *testing.T) {
	config := DefaultMapConfig(5, 5)
	config.WallRatio = 0

	m, err := NewGenerator(config, newTestRNG()).GenerateMap()

	require.NoError(t, err)
	assert.Zero(t, m.WallCount())
}

func TestGenerateMap_Errors(t *testing.T) {
	t.Run("InvalidSize", func(t *testing.T) {
		for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, -1}} {
			_, err := NewGenerator(DefaultMapConfig(size[0], size[1]), newTestRNG()).GenerateMap()
			assert.ErrorIs(t, err, core.ErrInvalidMapSize)
		}
	})

	t.Run("NoRoomForSpawns", func(t *testing.T) {
		config := DefaultMapConfig(1, 1)
		config.UnitsPerTeam = 1

		_, err := NewGenerator(config, newTestRNG()).GenerateMap()

		assert.ErrorIs(t, err, core.ErrNoSpawnLocation)
	})

	t.Run("SpacingFallsBack", func(t *testing.T) {
		config := DefaultMapConfig(2, 1)
		config.WallRatio = 0
		config.UnitsPerTeam = 1
		config.MinSpawnSpacing = 10

		m, err := NewGenerator(config, newTestRNG()).GenerateMap()

		require.NoError(t, err)
		assert.Len(t, m.Spawns, 2)
	})
}
