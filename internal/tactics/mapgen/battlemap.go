// Package mapgen produces battle maps, either generated from a seeded RNG or
// loaded from YAML map files.
package mapgen

import (
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/units"
)

// Spawn is a starting position for one unit.
// Nil Movement and nil Weapon mean the battle's defaults apply.
type Spawn struct {
	Team     units.Team
	Coord    core.Coordinate
	Name     string
	Movement *int
	Weapon   *units.Weapon
}

// Moves returns a movement stat for a Spawn or RawUnit
func Moves(n int) *int { return &n }

// BattleMap is the terrain of a battle and where its units start
type BattleMap struct {
	Name   string
	Width  int
	Height int
	Tiles  []*core.Tile
	Spawns []Spawn
}

// TileAt returns the map tile at c, or nil for holes and out of bounds
func (m *BattleMap) TileAt(c core.Coordinate) *core.Tile {
	for _, t := range m.Tiles {
		if t.Coord == c {
			return t
		}
	}
	return nil
}

// WallCount returns the number of wall tiles
func (m *BattleMap) WallCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t.IsWall {
			n++
		}
	}
	return n
}

// TeamSpawns returns the spawns of one team in map order
func (m *BattleMap) TeamSpawns(team units.Team) []Spawn {
	var out []Spawn
	for _, s := range m.Spawns {
		if s.Team == team {
			out = append(out, s)
		}
	}
	return out
}
