package pathfinding

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
)

// CalculateWalkableTiles returns every tile a unit standing on start can reach
// within movementBudget steps, in discovery order. The start tile is always
// part of the result even though its own occupant makes it non-enterable.
// Occupied tiles and walls are never entered, so nothing behind them is
// reached through them.
//
// On return every reached tile carries its hop distance and a Parent pointer
// towards start, which ReconstructPath follows.
func (g *TileGraph) CalculateWalkableTiles(start *core.Tile, movementBudget int) []*core.Tile {
	g.mustOwn(start)
	if movementBudget < 0 {
		movementBudget = 0
	}

	g.ResetPathfinding()
	g.root = start

	capacity := len(g.tiles)
	if movementBudget < capacity {
		capacity = min(capacity, 2*movementBudget*(movementBudget+1)+1)
	}
	walkable := make([]*core.Tile, 0, capacity)
	accepted := mapset.New[*core.Tile]()

	start.Visited = true
	queue := []*core.Tile{start}

	for len(queue) > 0 {
		tile := queue[0]
		queue = queue[1:]

		if accepted.Has(tile) {
			continue
		}
		if tile.Distance > movementBudget {
			continue
		}
		if tile != start && !tile.IsEnterable() {
			continue
		}

		accepted.Put(tile)
		walkable = append(walkable, tile)

		next := tile.Distance + 1
		for _, linked := range tile.LinkedTiles {
			// Relax when unseen or when this route is strictly shorter.
			if !linked.Visited || linked.Distance > next {
				linked.Parent = tile
				linked.Visited = true
				linked.Distance = next
				queue = append(queue, linked)
			}
		}
	}

	g.logger.Debug().
		Stringer("start", start.Coord).
		Int("budget", movementBudget).
		Int("walkable", len(walkable)).
		Msg("Calculated walkable tiles")

	return walkable
}
