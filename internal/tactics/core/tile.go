package core

import "fmt"

// Occupant is anything that can stand on a tile
type Occupant interface {
	OccupantID() string
}

// OccupancySource answers which occupant, if any, stands at a coordinate.
// The unit roster implements it; tiles never store their occupant.
type OccupancySource interface {
	OccupantAt(c Coordinate) Occupant
}

// Highlight is the display state a tile shows after a selection
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightWalkable
	HighlightAttackable
)

func (h Highlight) String() string {
	switch h {
	case HighlightWalkable:
		return "walkable"
	case HighlightAttackable:
		return "attackable"
	default:
		return "none"
	}
}

// Tile is a single cell of the battle grid.
// LinkedTiles holds up to four cardinal neighbours in N, E, S, W order.
// Visited, Distance and Parent are pathfinding scratch state and only
// meaningful during a query.
type Tile struct {
	Index       int
	Coord       Coordinate
	IsWall      bool
	LinkedTiles []*Tile

	Visited  bool
	Distance int
	Parent   *Tile

	Highlight    Highlight
	Selected     bool
	UnitSelected bool

	occupancy OccupancySource
}

// NewTile creates an unlinked tile at c
func NewTile(c Coordinate, isWall bool) *Tile {
	return &Tile{Coord: c, IsWall: isWall}
}

// ComputeLinks replaces LinkedTiles with the tiles lookup finds one step away
// in each cardinal direction. lookup returns nil where no tile exists.
func (t *Tile) ComputeLinks(lookup func(Coordinate) *Tile) {
	links := make([]*Tile, 0, len(CardinalDirections))
	for _, dir := range CardinalDirections {
		if n := lookup(t.Coord.Move(dir)); n != nil && n != t {
			links = append(links, n)
		}
	}
	t.LinkedTiles = links
}

// ResetScratch clears the pathfinding state
func (t *Tile) ResetScratch() {
	t.Distance = 0
	t.Visited = false
	t.Parent = nil
}

// SetOccupancy wires the tile to the source it asks for its occupant
func (t *Tile) SetOccupancy(source OccupancySource) {
	t.occupancy = source
}

// GetOccupant returns the occupant standing on this tile, or nil
func (t *Tile) GetOccupant() Occupant {
	if t.occupancy == nil {
		return nil
	}
	return t.occupancy.OccupantAt(t.Coord)
}

// IsEnterable reports whether a unit may stand on or pass through the tile
func (t *Tile) IsEnterable() bool {
	return !t.IsWall && t.GetOccupant() == nil
}

// IsLinkedTo reports whether other is one of this tile's graph neighbours
func (t *Tile) IsLinkedTo(other *Tile) bool {
	for _, n := range t.LinkedTiles {
		if n == other {
			return true
		}
	}
	return false
}

// SetHighlight sets the display highlight
func (t *Tile) SetHighlight(h Highlight) { t.Highlight = h }

// SetSelected marks the tile as under the cursor
func (t *Tile) SetSelected(selected bool) { t.Selected = selected }

// SetUnitSelected marks the tile as holding the selected unit
func (t *Tile) SetUnitSelected(selected bool) { t.UnitSelected = selected }

// ClearDisplay resets highlight and selection flags
func (t *Tile) ClearDisplay() {
	t.Highlight = HighlightNone
	t.Selected = false
	t.UnitSelected = false
}

func (t *Tile) String() string {
	if t == nil {
		return "<nil tile>"
	}
	return fmt.Sprintf("tile%s", t.Coord)
}
