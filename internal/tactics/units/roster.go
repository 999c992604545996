package units

import (
	"fmt"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
)

// Roster tracks every unit in a battle and where it stands.
// It is the occupancy source tiles query.
type Roster struct {
	units      []*Unit
	byID       map[string]*Unit
	byPosition map[core.Coordinate]*Unit
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{
		byID:       make(map[string]*Unit),
		byPosition: make(map[core.Coordinate]*Unit),
	}
}

// Place puts a new unit on c
func (r *Roster) Place(u *Unit, c core.Coordinate) error {
	if _, exists := r.byID[u.ID]; exists {
		return fmt.Errorf("place %s: unit already on the roster", u.Name)
	}
	if other, taken := r.byPosition[c]; taken {
		return fmt.Errorf("place %s at %s (held by %s): %w", u.Name, c, other.Name, core.ErrTileOccupied)
	}
	u.Position = c
	r.units = append(r.units, u)
	r.byID[u.ID] = u
	r.byPosition[c] = u
	return nil
}

// Move relocates a unit already on the roster
func (r *Roster) Move(u *Unit, to core.Coordinate) error {
	if _, ok := r.byID[u.ID]; !ok {
		return fmt.Errorf("move %s: unit not on the roster", u.Name)
	}
	if u.Position == to {
		return nil
	}
	if other, taken := r.byPosition[to]; taken {
		return fmt.Errorf("move %s to %s (held by %s): %w", u.Name, to, other.Name, core.ErrTileOccupied)
	}
	delete(r.byPosition, u.Position)
	u.Position = to
	r.byPosition[to] = u
	return nil
}

// Remove takes a unit off the battlefield
func (r *Roster) Remove(u *Unit) {
	if _, ok := r.byID[u.ID]; !ok {
		return
	}
	delete(r.byID, u.ID)
	delete(r.byPosition, u.Position)
	for i, existing := range r.units {
		if existing == u {
			r.units = append(r.units[:i], r.units[i+1:]...)
			break
		}
	}
}

// UnitAt returns the unit standing on c, or nil
func (r *Roster) UnitAt(c core.Coordinate) *Unit {
	return r.byPosition[c]
}

// OccupantAt implements core.OccupancySource
func (r *Roster) OccupantAt(c core.Coordinate) core.Occupant {
	u, ok := r.byPosition[c]
	if !ok {
		return nil
	}
	return u
}

// Get looks a unit up by ID
func (r *Roster) Get(id string) (*Unit, bool) {
	u, ok := r.byID[id]
	return u, ok
}

// Units returns every unit in placement order
func (r *Roster) Units() []*Unit {
	out := make([]*Unit, len(r.units))
	copy(out, r.units)
	return out
}

// TeamUnits returns the units of one team in placement order
func (r *Roster) TeamUnits(team Team) []*Unit {
	var out []*Unit
	for _, u := range r.units {
		if u.Team == team {
			out = append(out, u)
		}
	}
	return out
}

// ResetActed clears HasActed for every unit of a team
func (r *Roster) ResetActed(team Team) {
	for _, u := range r.units {
		if u.Team == team {
			u.HasActed = false
		}
	}
}

// Len returns the number of units
func (r *Roster) Len() int { return len(r.units) }
