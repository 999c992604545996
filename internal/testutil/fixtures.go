package testutil

import (
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
)

// NamedOccupant is a minimal occupant for graph tests
type NamedOccupant string

func (n NamedOccupant) OccupantID() string { return string(n) }

// StaticOccupancy is a fixed occupancy map
type StaticOccupancy map[core.Coordinate]core.Occupant

// OccupantAt implements core.OccupancySource
func (s StaticOccupancy) OccupantAt(c core.Coordinate) core.Occupant {
	if o, ok := s[c]; ok {
		return o
	}
	return nil
}

// GridFixture is a set of tiles parsed from ASCII rows
type GridFixture struct {
	Tiles     []*core.Tile
	Occupancy StaticOccupancy
	Marks     map[rune]core.Coordinate
	byCoord   map[core.Coordinate]*core.Tile
}

// ParseGrid builds tiles from rows, one rune per tile:
//
//	.  open floor
//	#  wall
//	A-Z floor occupied by a unit named after the letter
//	a-z open floor remembered under that letter
//	' ' no tile at all
func ParseGrid(rows ...string) *GridFixture {
	f := &GridFixture{
		Occupancy: make(StaticOccupancy),
		Marks:     make(map[rune]core.Coordinate),
		byCoord:   make(map[core.Coordinate]*core.Tile),
	}

	for y, row := range rows {
		for x, r := range []rune(row) {
			if r == ' ' {
				continue
			}
			c := core.NewCoordinate(x, y)
			tile := core.NewTile(c, r == '#')
			switch {
			case r >= 'A' && r <= 'Z':
				f.Occupancy[c] = NamedOccupant(string(r))
				f.Marks[r] = c
			case r >= 'a' && r <= 'z':
				f.Marks[r] = c
			}
			f.Tiles = append(f.Tiles, tile)
			f.byCoord[c] = tile
		}
	}
	return f
}

// OpenGrid builds a width x height grid with no walls or occupants
func OpenGrid(width, height int) *GridFixture {
	rows := make([]string, height)
	for y := range rows {
		row := make([]rune, width)
		for x := range row {
			row[x] = '.'
		}
		rows[y] = string(row)
	}
	return ParseGrid(rows...)
}

// At returns the tile at (x, y), or nil
func (f *GridFixture) At(x, y int) *core.Tile {
	return f.byCoord[core.NewCoordinate(x, y)]
}

// Mark returns the tile remembered under r, or nil
func (f *GridFixture) Mark(r rune) *core.Tile {
	c, ok := f.Marks[r]
	if !ok {
		return nil
	}
	return f.byCoord[c]
}
