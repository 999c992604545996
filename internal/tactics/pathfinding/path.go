package pathfinding

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
)

// ReconstructPath follows Parent pointers from end back to the search root and
// returns the tiles ordered from the root to end.
//
// end must have been reached by the latest CalculateWalkableTiles call and the
// scratch state must not have been reset since. After a reset the result is
// just [end]. A nil tile or a parent cycle panics.
func ReconstructPath(end *core.Tile) []*core.Tile {
	if end == nil {
		panic(fmt.Errorf("reconstruct path: %w", core.ErrNilTile))
	}

	seen := mapset.New[*core.Tile]()
	path := []*core.Tile{}
	for current := end; current != nil; current = current.Parent {
		if seen.Has(current) {
			panic(fmt.Errorf("reconstruct path to %s: %w", end, core.ErrBrokenPath))
		}
		seen.Put(current)
		path = append(path, current)
	}

	slices.Reverse(path)
	return path
}

// ReconstructPath is ReconstructPath with a check that end belongs to g
func (g *TileGraph) ReconstructPath(end *core.Tile) []*core.Tile {
	g.mustOwn(end)
	return ReconstructPath(end)
}
