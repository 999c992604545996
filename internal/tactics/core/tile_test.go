package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOccupant string

func (s stubOccupant) OccupantID() string { return string(s) }

type stubSource map[Coordinate]Occupant

func (s stubSource) OccupantAt(c Coordinate) Occupant {
	if o, ok := s[c]; ok {
		return o
	}
	return nil
}

func tileLookup(tiles ...*Tile) func(Coordinate) *Tile {
	index := make(map[Coordinate]*Tile, len(tiles))
	for _, t := range tiles {
		index[t.Coord] = t
	}
	return func(c Coordinate) *Tile { return index[c] }
}

func TestTile_ComputeLinks(t *testing.T) {
	center := NewTile(Coordinate{1, 1}, false)
	north := NewTile(Coordinate{1, 0}, false)
	east := NewTile(Coordinate{2, 1}, true)
	west := NewTile(Coordinate{0, 1}, false)
	diagonal := NewTile(Coordinate{2, 2}, false)

	lookup := tileLookup(center, north, east, west, diagonal)
	center.ComputeLinks(lookup)

	require.Len(t, center.LinkedTiles, 3)
	assert.Equal(t, []*Tile{north, east, west}, center.LinkedTiles, "links are ordered N, E, S, W and include walls")
	assert.False(t, center.IsLinkedTo(diagonal))

	t.Run("idempotent", func(t *testing.T) {
		center.ComputeLinks(lookup)
		assert.Equal(t, []*Tile{north, east, west}, center.LinkedTiles)
	})

	t.Run("isolated tile has no links", func(t *testing.T) {
		lone := NewTile(Coordinate{9, 9}, false)
		lone.ComputeLinks(lookup)
		assert.Empty(t, lone.LinkedTiles)
	})
}

func TestTile_ResetScratch(t *testing.T) {
	parent := NewTile(Coordinate{0, 0}, false)
	tile := NewTile(Coordinate{0, 1}, false)
	tile.Visited = true
	tile.Distance = 4
	tile.Parent = parent
	tile.SetHighlight(HighlightAttackable)

	tile.ResetScratch()
	tile.ResetScratch()

	assert.False(t, tile.Visited)
	assert.Equal(t, 0, tile.Distance)
	assert.Nil(t, tile.Parent)
	assert.Equal(t, HighlightAttackable, tile.Highlight, "display state survives a scratch reset")
}

func TestTile_IsEnterable(t *testing.T) {
	occupied := Coordinate{0, 0}
	source := stubSource{occupied: stubOccupant("knight")}

	tests := []struct {
		name     string
		tile     *Tile
		source   OccupancySource
		expected bool
	}{
		{"open floor", NewTile(Coordinate{1, 0}, false), source, true},
		{"wall", NewTile(Coordinate{1, 0}, true), source, false},
		{"occupied", NewTile(occupied, false), source, false},
		{"no occupancy source", NewTile(occupied, false), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.source != nil {
				tt.tile.SetOccupancy(tt.source)
			}
			assert.Equal(t, tt.expected, tt.tile.IsEnterable())
		})
	}
}

func TestTile_GetOccupant(t *testing.T) {
	c := Coordinate{3, 3}
	tile := NewTile(c, false)
	assert.Nil(t, tile.GetOccupant())

	tile.SetOccupancy(stubSource{c: stubOccupant("archer")})
	occupant := tile.GetOccupant()
	require.NotNil(t, occupant)
	assert.Equal(t, "archer", occupant.OccupantID())
}

func TestTile_ClearDisplay(t *testing.T) {
	tile := NewTile(Coordinate{0, 0}, false)
	tile.SetHighlight(HighlightWalkable)
	tile.SetSelected(true)
	tile.SetUnitSelected(true)

	tile.ClearDisplay()

	assert.Equal(t, HighlightNone, tile.Highlight)
	assert.False(t, tile.Selected)
	assert.False(t, tile.UnitSelected)
}

func TestTile_String(t *testing.T) {
	var nilTile *Tile
	assert.Equal(t, "<nil tile>", nilTile.String())
	assert.Equal(t, "tile(2,7)", NewTile(Coordinate{2, 7}, false).String())
}
