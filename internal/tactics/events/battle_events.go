package events

import (
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
)

// Event type constants
const (
	TypeBattleStarted    = "battle.started"
	TypeUnitSelected     = "unit.selected"
	TypeUnitMoved        = "unit.moved"
	TypeSelectionCleared = "selection.cleared"
	TypeTurnEnded        = "turn.ended"
)

// BattleStartedEvent is published once a battle's graph is built and units placed
type BattleStartedEvent struct {
	BaseEvent
	MapName   string `json:"map_name"`
	MapWidth  int    `json:"map_width"`
	MapHeight int    `json:"map_height"`
	Tiles     int    `json:"tiles"`
	Units     int    `json:"units"`
}

// NewBattleStartedEvent creates a new BattleStartedEvent
func NewBattleStartedEvent(battleID, mapName string, width, height, tiles, units int) *BattleStartedEvent {
	return &BattleStartedEvent{
		BaseEvent: newBase(TypeBattleStarted, battleID),
		MapName:   mapName,
		MapWidth:  width,
		MapHeight: height,
		Tiles:     tiles,
		Units:     units,
	}
}

// UnitSelectedEvent is published when a unit is selected and its reach computed
type UnitSelectedEvent struct {
	BaseEvent
	UnitID     string          `json:"unit_id"`
	UnitName   string          `json:"unit_name"`
	At         core.Coordinate `json:"at"`
	Walkable   int             `json:"walkable"`
	Attackable int             `json:"attackable"`
}

// NewUnitSelectedEvent creates a new UnitSelectedEvent
func NewUnitSelectedEvent(battleID, unitID, unitName string, at core.Coordinate, walkable, attackable int) *UnitSelectedEvent {
	return &UnitSelectedEvent{
		BaseEvent:  newBase(TypeUnitSelected, battleID),
		UnitID:     unitID,
		UnitName:   unitName,
		At:         at,
		Walkable:   walkable,
		Attackable: attackable,
	}
}

// UnitMovedEvent is published when a selected unit moves along its path
type UnitMovedEvent struct {
	BaseEvent
	UnitID   string          `json:"unit_id"`
	UnitName string          `json:"unit_name"`
	From     core.Coordinate `json:"from"`
	To       core.Coordinate `json:"to"`
	Steps    int             `json:"steps"`
}

// NewUnitMovedEvent creates a new UnitMovedEvent
func NewUnitMovedEvent(battleID, unitID, unitName string, from, to core.Coordinate, steps int) *UnitMovedEvent {
	return &UnitMovedEvent{
		BaseEvent: newBase(TypeUnitMoved, battleID),
		UnitID:    unitID,
		UnitName:  unitName,
		From:      from,
		To:        to,
		Steps:     steps,
	}
}

// SelectionClearedEvent is published when a selection is cancelled or consumed
type SelectionClearedEvent struct {
	BaseEvent
	UnitID string `json:"unit_id"`
	Reason string `json:"reason"`
}

// NewSelectionClearedEvent creates a new SelectionClearedEvent
func NewSelectionClearedEvent(battleID, unitID, reason string) *SelectionClearedEvent {
	return &SelectionClearedEvent{
		BaseEvent: newBase(TypeSelectionCleared, battleID),
		UnitID:    unitID,
		Reason:    reason,
	}
}

// TurnEndedEvent is published when a team's turn ends
type TurnEndedEvent struct {
	BaseEvent
	Team  string `json:"team"`
	Turn  int    `json:"turn"`
	Moved int    `json:"moved"`
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(battleID, team string, turn, moved int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent: newBase(TypeTurnEnded, battleID),
		Team:      team,
		Turn:      turn,
		Moved:     moved,
	}
}
