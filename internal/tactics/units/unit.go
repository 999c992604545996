// Package units holds the combatants of a battle, the roster that answers
// which unit stands where, and the query facade the selection layer calls to
// get a unit's walkable and attackable tiles.
package units

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
)

// Team identifies the side a unit fights for
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "player"
	case TeamEnemy:
		return "enemy"
	default:
		return fmt.Sprintf("team-%d", int(t))
	}
}

// WeaponType is the category a weapon belongs to
type WeaponType int

const (
	WeaponSword WeaponType = iota
	WeaponLance
	WeaponAxe
	WeaponBow
	WeaponBrawl
	WeaponRune
)

var weaponTypeNames = map[WeaponType]string{
	WeaponSword: "sword",
	WeaponLance: "lance",
	WeaponAxe:   "axe",
	WeaponBow:   "bow",
	WeaponBrawl: "brawl",
	WeaponRune:  "rune",
}

func (w WeaponType) String() string {
	if name, ok := weaponTypeNames[w]; ok {
		return name
	}
	return "unknown"
}

// ParseWeaponType converts a lowercase weapon type name
func ParseWeaponType(name string) (WeaponType, error) {
	for wt, n := range weaponTypeNames {
		if n == name {
			return wt, nil
		}
	}
	return 0, fmt.Errorf("unknown weapon type %q", name)
}

// DefaultWeaponRange is the range of a weapon that does not set one
const DefaultWeaponRange = 1

// Weapon is the item a unit attacks with
type Weapon struct {
	Name   string
	Type   WeaponType
	Might  int
	Weight int
	Range  int
}

// NewWeapon creates a weapon with the default range
func NewWeapon(name string, wt WeaponType, might, weight int) *Weapon {
	return &Weapon{Name: name, Type: wt, Might: might, Weight: weight, Range: DefaultWeaponRange}
}

// Unit is a combatant on the battle grid
type Unit struct {
	ID       string
	Name     string
	Team     Team
	Movement int
	Weapon   *Weapon
	Position core.Coordinate
	HasActed bool
}

// NewUnit creates a unit with a fresh ID
func NewUnit(name string, team Team, movement int, weapon *Weapon) *Unit {
	return &Unit{
		ID:       uuid.NewString(),
		Name:     name,
		Team:     team,
		Movement: movement,
		Weapon:   weapon,
	}
}

// OccupantID implements core.Occupant
func (u *Unit) OccupantID() string { return u.ID }

// AttackRange returns the unit's weapon range, or 0 without a weapon
func (u *Unit) AttackRange() int {
	if u.Weapon == nil {
		return 0
	}
	return u.Weapon.Range
}

// IsPlayerUnit reports whether the unit belongs to the player's team
func (u *Unit) IsPlayerUnit() bool { return u.Team == TeamPlayer }

// CanAct reports whether the unit may still be commanded this turn
func (u *Unit) CanAct() bool { return !u.HasActed }

func (u *Unit) String() string {
	return fmt.Sprintf("%s[%s]@%s", u.Name, u.Team, u.Position)
}
