package mapgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/units"
)

// RawMap is the YAML layout of a battle map file.
//
// Rows use one character per tile: '.' floor, '#' wall, ' ' no tile.
type RawMap struct {
	Name  string    `yaml:"name"`
	Rows  []string  `yaml:"rows"`
	Units []RawUnit `yaml:"units"`
}

// RawUnit is a unit entry in a map file
type RawUnit struct {
	Name     string     `yaml:"name"`
	Team     string     `yaml:"team"`
	X        int        `yaml:"x"`
	Y        int        `yaml:"y"`
	Movement *int       `yaml:"movement"`
	Weapon   *RawWeapon `yaml:"weapon"`
}

// RawWeapon is a weapon entry in a map file
type RawWeapon struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Might  int    `yaml:"might"`
	Weight int    `yaml:"weight"`
	Range  int    `yaml:"range"`
}

// LoadFile reads and compiles a YAML battle map
func LoadFile(path string) (*BattleMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	return m, nil
}

// Parse compiles YAML map data
func Parse(data []byte) (*BattleMap, error) {
	var raw RawMap
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}
	return Compile(raw)
}

// Compile validates a raw map and turns it into tiles and spawns
func Compile(raw RawMap) (*BattleMap, error) {
	m := &BattleMap{Name: raw.Name, Height: len(raw.Rows)}
	byCoord := make(map[core.Coordinate]*core.Tile)

	for y, row := range raw.Rows {
		runes := []rune(row)
		if len(runes) > m.Width {
			m.Width = len(runes)
		}
		for x, r := range runes {
			var isWall bool
			switch r {
			case ' ':
				continue
			case '.':
			case '#':
				isWall = true
			default:
				return nil, fmt.Errorf("row %d col %d: unknown tile %q", y, x, r)
			}
			t := core.NewTile(core.NewCoordinate(x, y), isWall)
			m.Tiles = append(m.Tiles, t)
			byCoord[t.Coord] = t
		}
	}
	if len(m.Tiles) == 0 {
		return nil, fmt.Errorf("map %q has no tiles: %w", raw.Name, core.ErrInvalidMapSize)
	}

	taken := make(map[core.Coordinate]string)
	for i, ru := range raw.Units {
		spawn, err := compileUnit(ru)
		if err != nil {
			return nil, fmt.Errorf("unit %d (%s): %w", i, ru.Name, err)
		}

		t, ok := byCoord[spawn.Coord]
		switch {
		case !ok:
			return nil, fmt.Errorf("unit %s at %s: %w", ru.Name, spawn.Coord, core.ErrOutOfBounds)
		case t.IsWall:
			return nil, fmt.Errorf("unit %s at %s: %w", ru.Name, spawn.Coord, core.ErrTileIsWall)
		}
		if other, dup := taken[spawn.Coord]; dup {
			return nil, fmt.Errorf("unit %s at %s (held by %s): %w", ru.Name, spawn.Coord, other, core.ErrTileOccupied)
		}
		taken[spawn.Coord] = ru.Name
		m.Spawns = append(m.Spawns, spawn)
	}

	return m, nil
}

func compileUnit(ru RawUnit) (Spawn, error) {
	spawn := Spawn{
		Coord:    core.NewCoordinate(ru.X, ru.Y),
		Name:     ru.Name,
		Movement: ru.Movement,
	}

	switch ru.Team {
	case "player":
		spawn.Team = units.TeamPlayer
	case "enemy":
		spawn.Team = units.TeamEnemy
	default:
		return Spawn{}, fmt.Errorf("unknown team %q", ru.Team)
	}

	if ru.Movement != nil && *ru.Movement < 0 {
		return Spawn{}, fmt.Errorf("negative movement %d", *ru.Movement)
	}

	if ru.Weapon != nil {
		wt, err := units.ParseWeaponType(ru.Weapon.Type)
		if err != nil {
			return Spawn{}, err
		}
		w := units.NewWeapon(ru.Weapon.Name, wt, ru.Weapon.Might, ru.Weapon.Weight)
		if ru.Weapon.Range > 0 {
			w.Range = ru.Weapon.Range
		}
		spawn.Weapon = w
	}
	return spawn, nil
}
