package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/units"
)

// MapConfig holds configuration for map generation
type MapConfig struct {
	Width           int
	Height          int
	WallRatio       int // 1 wall per N tiles, 0 for none
	UnitsPerTeam    int
	MinSpawnSpacing int // minimum distance between opposing spawns
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig(w, h int) MapConfig {
	return MapConfig{
		Width:           w,
		Height:          h,
		WallRatio:       8,
		UnitsPerTeam:    3,
		MinSpawnSpacing: 3,
	}
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateMap creates a rectangular map with walls and both teams' spawns
func (g *Generator) GenerateMap() (*BattleMap, error) {
	if g.config.Width <= 0 || g.config.Height <= 0 {
		return nil, fmt.Errorf("generate %dx%d map: %w", g.config.Width, g.config.Height, core.ErrInvalidMapSize)
	}

	m := &BattleMap{
		Name:   fmt.Sprintf("generated %dx%d", g.config.Width, g.config.Height),
		Width:  g.config.Width,
		Height: g.config.Height,
		Tiles:  make([]*core.Tile, 0, g.config.Width*g.config.Height),
	}
	for y := 0; y < g.config.Height; y++ {
		for x := 0; x < g.config.Width; x++ {
			m.Tiles = append(m.Tiles, core.NewTile(core.NewCoordinate(x, y), false))
		}
	}

	g.placeWalls(m)
	if err := g.placeSpawns(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (g *Generator) placeWalls(m *BattleMap) {
	if g.config.WallRatio <= 0 {
		return
	}
	want := len(m.Tiles) / g.config.WallRatio
	placed := 0

	// Use a maximum attempt counter to avoid infinite loops
	maxAttempts := want * 10
	for attempts := 0; placed < want && attempts < maxAttempts; attempts++ {
		t := m.Tiles[g.rng.Intn(len(m.Tiles))]
		if !t.IsWall {
			t.IsWall = true
			placed++
		}
	}
}

func (g *Generator) placeSpawns(m *BattleMap) error {
	taken := make(map[core.Coordinate]bool)
	for i := 0; i < g.config.UnitsPerTeam; i++ {
		for _, team := range []units.Team{units.TeamPlayer, units.TeamEnemy} {
			c, err := g.findSpawnLocation(m, team, taken)
			if err != nil {
				return err
			}
			taken[c] = true
			m.Spawns = append(m.Spawns, Spawn{Team: team, Coord: c})
		}
	}
	return nil
}

func (g *Generator) findSpawnLocation(m *BattleMap, team units.Team, taken map[core.Coordinate]bool) (core.Coordinate, error) {
	free := func(t *core.Tile) bool {
		return !t.IsWall && !taken[t.Coord]
	}

	maxAttempts := len(m.Tiles) // Fallback to prevent infinite loops
	for attempts := 0; attempts < maxAttempts; attempts++ {
		t := m.Tiles[g.rng.Intn(len(m.Tiles))]
		if !free(t) {
			continue
		}

		validLocation := true
		for _, other := range m.Spawns {
			if other.Team != team && t.Coord.DistanceTo(other.Coord) < g.config.MinSpawnSpacing {
				validLocation = false
				break
			}
		}
		if validLocation {
			return t.Coord, nil
		}
	}

	// Fallback: any free floor tile, ignoring spacing
	for _, t := range m.Tiles {
		if free(t) {
			return t.Coord, nil
		}
	}

	return core.Coordinate{}, fmt.Errorf("spawn %s unit %d: %w", team, len(m.TeamSpawns(team))+1, core.ErrNoSpawnLocation)
}
