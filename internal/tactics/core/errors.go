package core

import "errors"

var (
	ErrGraphNotBuilt   = errors.New("tile graph has not been built")
	ErrForeignTile     = errors.New("tile does not belong to this graph")
	ErrDuplicateTile   = errors.New("duplicate tile coordinate")
	ErrNilTile         = errors.New("nil tile")
	ErrBrokenPath      = errors.New("parent chain does not terminate")
	ErrOutOfBounds     = errors.New("coordinate outside the tilemap")
	ErrTileOccupied    = errors.New("tile is occupied")
	ErrTileIsWall      = errors.New("tile is a wall")
	ErrNoUnitOnTile    = errors.New("no unit on tile")
	ErrUnitHasActed    = errors.New("unit has already acted")
	ErrNotWalkable     = errors.New("tile is not walkable for the selected unit")
	ErrNoSelection     = errors.New("no unit selected")
	ErrWrongTeam       = errors.New("unit does not belong to the active team")
	ErrInvalidMapSize  = errors.New("invalid map dimensions")
	ErrNoSpawnLocation = errors.New("no valid spawn location")
)
