package pathfinding

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
)

// reachItem is a tile on the attack-range frontier with its hop depth
type reachItem struct {
	tile  *core.Tile
	depth int
}

// CalculateAttackableTiles returns the walkable tiles followed by every tile a
// weapon with attackRange can strike from one of them. Weapon reach follows
// LinkedTiles and is not blocked by walls or units.
//
// Each added target gets its Parent set to the walkable tile the attacker
// would stand on. When several walkable tiles cover a target, the one with
// the smallest Distance wins, and among equals the one listed first in
// walkable. Walkable tiles keep their movement parents.
//
// walkable must come from CalculateWalkableTiles on this graph with no reset
// in between. It may leave out the search's start tile; that tile is still
// never a target, so its place at the root of every path is kept.
func (g *TileGraph) CalculateAttackableTiles(walkable []*core.Tile, attackRange int) []*core.Tile {
	standing := make([]*core.Tile, 0, len(walkable))
	inWalkable := mapset.New[*core.Tile]()
	for _, w := range walkable {
		g.mustOwn(w)
		if inWalkable.Has(w) {
			continue
		}
		inWalkable.Put(w)
		standing = append(standing, w)
	}

	attackable := make([]*core.Tile, len(standing), len(standing)*2)
	copy(attackable, standing)

	if attackRange <= 0 {
		return attackable
	}

	cover := make(map[*core.Tile]*core.Tile)
	var targets []*core.Tile

	for _, w := range standing {
		for _, target := range tilesWithinRange(w, attackRange) {
			if inWalkable.Has(target) || target == g.root {
				continue
			}
			current, seen := cover[target]
			if !seen {
				cover[target] = w
				targets = append(targets, target)
				continue
			}
			if w.Distance < current.Distance {
				cover[target] = w
			}
		}
	}

	for _, target := range targets {
		target.Parent = cover[target]
		attackable = append(attackable, target)
	}

	g.logger.Debug().
		Int("range", attackRange).
		Int("walkable", len(standing)).
		Int("attackable", len(attackable)).
		Msg("Calculated attackable tiles")

	return attackable
}

// tilesWithinRange returns the tiles 1..maxDepth hops from origin along
// LinkedTiles, nearest first. origin itself is excluded.
func tilesWithinRange(origin *core.Tile, maxDepth int) []*core.Tile {
	seen := mapset.New[*core.Tile]()
	seen.Put(origin)

	var found []*core.Tile
	queue := []reachItem{{tile: origin, depth: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.depth >= maxDepth {
			continue
		}
		for _, linked := range item.tile.LinkedTiles {
			if seen.Has(linked) {
				continue
			}
			seen.Put(linked)
			found = append(found, linked)
			queue = append(queue, reachItem{tile: linked, depth: item.depth + 1})
		}
	}

	return found
}
