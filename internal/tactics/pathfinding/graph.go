// Package pathfinding owns the battle tile graph and answers the reachability
// queries used by unit selection: walkable-area search, attackable-area search
// and path reconstruction.
//
// A TileGraph supports one active query at a time. Queries mutate the scratch
// state stored on the tiles, so callers must not query the same graph from
// several goroutines.
package pathfinding

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
)

// TileGraph owns every tile of one battle map and the links between them
type TileGraph struct {
	tiles     []*core.Tile
	index     map[core.Coordinate]*core.Tile
	occupancy core.OccupancySource
	min, max  core.Coordinate
	built     bool
	root      *core.Tile // start of the last walkable search
	logger    zerolog.Logger
}

// New creates an empty graph. BuildGraph must run before any query.
func New(logger zerolog.Logger) *TileGraph {
	return &TileGraph{
		index:  make(map[core.Coordinate]*core.Tile),
		logger: logger.With().Str("component", "tile_graph").Logger(),
	}
}

// NewTileGraph creates a graph, wires its occupancy source and builds it
func NewTileGraph(tiles []*core.Tile, source core.OccupancySource, logger zerolog.Logger) (*TileGraph, error) {
	g := New(logger)
	g.SetOccupancy(source)
	if err := g.BuildGraph(tiles); err != nil {
		return nil, err
	}
	return g, nil
}

// SetOccupancy sets the source every tile asks for its occupant
func (g *TileGraph) SetOccupancy(source core.OccupancySource) {
	g.occupancy = source
	for _, t := range g.tiles {
		t.SetOccupancy(source)
	}
}

// BuildGraph stores the tile collection and computes the links of every tile.
// Calling it again rebuilds all links from the given tiles.
func (g *TileGraph) BuildGraph(tiles []*core.Tile) error {
	index := make(map[core.Coordinate]*core.Tile, len(tiles))
	for i, t := range tiles {
		if t == nil {
			return fmt.Errorf("build graph: tile %d: %w", i, core.ErrNilTile)
		}
		if _, exists := index[t.Coord]; exists {
			return fmt.Errorf("build graph: %s: %w", t.Coord, core.ErrDuplicateTile)
		}
		index[t.Coord] = t
	}

	g.tiles = make([]*core.Tile, len(tiles))
	copy(g.tiles, tiles)
	g.index = index

	walls := 0
	for i, t := range g.tiles {
		t.Index = i
		t.SetOccupancy(g.occupancy)
		if t.IsWall {
			walls++
		}
		if i == 0 {
			g.min, g.max = t.Coord, t.Coord
			continue
		}
		g.min.X = min(g.min.X, t.Coord.X)
		g.min.Y = min(g.min.Y, t.Coord.Y)
		g.max.X = max(g.max.X, t.Coord.X)
		g.max.Y = max(g.max.Y, t.Coord.Y)
	}

	for _, t := range g.tiles {
		t.ComputeLinks(g.TileAt)
	}
	g.built = true
	g.ResetPathfinding()

	g.logger.Info().
		Int("tiles", len(g.tiles)).
		Int("walls", walls).
		Stringer("min", g.min).
		Stringer("max", g.max).
		Msg("Tile graph built")
	return nil
}

// ResetPathfinding clears the scratch state of every tile
func (g *TileGraph) ResetPathfinding() {
	g.root = nil
	for _, t := range g.tiles {
		t.ResetScratch()
	}
}

// ClearDisplay clears highlight and selection state of every tile
func (g *TileGraph) ClearDisplay() {
	for _, t := range g.tiles {
		t.ClearDisplay()
	}
}

// TileAt returns the tile at c, or nil if the map has no tile there
func (g *TileGraph) TileAt(c core.Coordinate) *core.Tile {
	return g.index[c]
}

// InBounds reports whether c lies inside the rectangle spanned by the tilemap
func (g *TileGraph) InBounds(c core.Coordinate) bool {
	if !g.built || len(g.tiles) == 0 {
		return false
	}
	return c.X >= g.min.X && c.X <= g.max.X && c.Y >= g.min.Y && c.Y <= g.max.Y
}

// Bounds returns the smallest and largest coordinates of the tilemap
func (g *TileGraph) Bounds() (core.Coordinate, core.Coordinate) {
	return g.min, g.max
}

// Tiles returns the tiles in index order. Callers must not modify the slice.
func (g *TileGraph) Tiles() []*core.Tile {
	return g.tiles
}

// Len returns the number of tiles
func (g *TileGraph) Len() int { return len(g.tiles) }

// IsBuilt reports whether BuildGraph has completed
func (g *TileGraph) IsBuilt() bool { return g.built }

// mustOwn panics when a query is made before BuildGraph or with a tile from
// another graph. Both are caller bugs.
func (g *TileGraph) mustOwn(t *core.Tile) {
	if !g.built {
		panic(core.ErrGraphNotBuilt)
	}
	if t == nil {
		panic(core.ErrNilTile)
	}
	if t.Index < 0 || t.Index >= len(g.tiles) || g.tiles[t.Index] != t {
		panic(fmt.Errorf("%s: %w", t, core.ErrForeignTile))
	}
}
