package states

import "fmt"

// BattlePhase is the step of the selection flow a battle is in
type BattlePhase int

const (
	// PhaseDeploying - graph built, units being placed
	PhaseDeploying BattlePhase = iota

	// PhaseAwaitingOrders - no unit selected, the active team may pick one
	PhaseAwaitingOrders

	// PhaseUnitSelected - a unit's walkable and attackable tiles are shown
	PhaseUnitSelected

	// PhaseTurnEnding - control is passing to the other team
	PhaseTurnEnding
)

var phaseNames = map[BattlePhase]string{
	PhaseDeploying:      "Deploying",
	PhaseAwaitingOrders: "AwaitingOrders",
	PhaseUnitSelected:   "UnitSelected",
	PhaseTurnEnding:     "TurnEnding",
}

// String returns the string representation of a BattlePhase
func (p BattlePhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", p)
}

// CanReceiveOrders returns true if units may be selected or moved in this phase
func (p BattlePhase) CanReceiveOrders() bool {
	return p == PhaseAwaitingOrders || p == PhaseUnitSelected
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p BattlePhase) AllowedTransitions() []BattlePhase {
	switch p {
	case PhaseDeploying:
		return []BattlePhase{PhaseAwaitingOrders}
	case PhaseAwaitingOrders:
		return []BattlePhase{PhaseUnitSelected, PhaseTurnEnding}
	case PhaseUnitSelected:
		return []BattlePhase{PhaseAwaitingOrders, PhaseTurnEnding}
	case PhaseTurnEnding:
		return []BattlePhase{PhaseAwaitingOrders}
	default:
		return []BattlePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to target is allowed
func (p BattlePhase) CanTransitionTo(target BattlePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a BattlePhase
func ParsePhase(s string) (BattlePhase, error) {
	for phase, name := range phaseNames {
		if name == s {
			return phase, nil
		}
	}
	return PhaseDeploying, fmt.Errorf("unknown battle phase %q", s)
}
