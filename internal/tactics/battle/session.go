// Package battle runs the selection flow of a tactics battle: pick a unit,
// show where it can walk and strike, preview the path under the cursor and
// move it there.
//
// A Session owns its tile graph. Graph queries share per-tile scratch state,
// so a Session must not be used from more than one goroutine at a time.
package battle

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/events"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/mapgen"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/pathfinding"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/states"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/units"
	"github.com/mitchelldurbincs/GridTactics/internal/telemetry"
)

// Settings are the unit defaults and query options of a battle
type Settings struct {
	DefaultMovement    int
	DefaultWeaponRange int
	IncludeOrigin      bool
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		DefaultMovement:    5,
		DefaultWeaponRange: units.DefaultWeaponRange,
		IncludeOrigin:      true,
	}
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session's logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithEventBus publishes battle events to bus
func WithEventBus(bus events.Publisher) Option {
	return func(s *Session) { s.bus = bus }
}

// WithTracer records spans for session operations
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Session) { s.tracer = tracer }
}

// Selection is the currently selected unit and what it can reach
type Selection struct {
	Unit       *units.Unit
	Origin     *core.Tile
	Walkable   []*core.Tile
	Attackable []*core.Tile
}

// Session is one battle in progress
type Session struct {
	id       string
	battle   *mapgen.BattleMap
	settings Settings

	graph  *pathfinding.TileGraph
	roster *units.Roster
	query  *units.QueryFacade
	phases *states.Machine

	bus    events.Publisher
	tracer trace.Tracer
	logger zerolog.Logger

	activeTeam units.Team
	turn       int
	movedCount int

	cursor    *core.Tile
	selection *Selection
	reachable mapset.Set[*core.Tile]
	preview   []*core.Tile
}

// NewSession builds the tile graph for m, places its units and starts the
// battle with the player team to move.
func NewSession(m *mapgen.BattleMap, settings Settings, opts ...Option) (*Session, error) {
	s := &Session{
		id:         uuid.NewString(),
		battle:     m,
		settings:   settings,
		roster:     units.NewRoster(),
		tracer:     telemetry.NoopTracer(),
		logger:     zerolog.Nop(),
		activeTeam: units.TeamPlayer,
		turn:       1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("component", "battle").Str("battle_id", s.id).Logger()
	s.phases = states.NewMachine(s.logger, 0)

	graph, err := pathfinding.NewTileGraph(m.Tiles, s.roster, s.logger)
	if err != nil {
		return nil, fmt.Errorf("build battle graph: %w", err)
	}
	s.graph = graph
	s.query = units.NewQueryFacade(graph,
		units.WithIncludeOrigin(settings.IncludeOrigin),
		units.WithLogger(s.logger),
	)

	if err := s.placeUnits(m.Spawns); err != nil {
		return nil, err
	}
	s.enter(states.PhaseAwaitingOrders, "units deployed")

	s.logger.Info().
		Str("map", m.Name).
		Int("tiles", graph.Len()).
		Int("units", s.roster.Len()).
		Msg("Battle started")
	s.publish(events.NewBattleStartedEvent(s.id, m.Name, m.Width, m.Height, graph.Len(), s.roster.Len()))

	return s, nil
}

func (s *Session) placeUnits(spawns []mapgen.Spawn) error {
	counts := make(map[units.Team]int)
	for _, spawn := range spawns {
		tile := s.graph.TileAt(spawn.Coord)
		if tile == nil {
			return fmt.Errorf("spawn at %s: %w", spawn.Coord, core.ErrOutOfBounds)
		}
		if tile.IsWall {
			return fmt.Errorf("spawn at %s: %w", spawn.Coord, core.ErrTileIsWall)
		}

		counts[spawn.Team]++
		u := s.newUnit(spawn, counts[spawn.Team])
		if err := s.roster.Place(u, spawn.Coord); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) newUnit(spawn mapgen.Spawn, n int) *units.Unit {
	name := spawn.Name
	if name == "" {
		name = fmt.Sprintf("%s-%d", spawn.Team, n)
	}
	movement := s.settings.DefaultMovement
	if spawn.Movement != nil {
		movement = *spawn.Movement
	}
	weapon := spawn.Weapon
	if weapon == nil {
		weapon = units.NewWeapon("Iron Sword", units.WeaponSword, 5, 5)
		weapon.Range = s.settings.DefaultWeaponRange
	}
	return units.NewUnit(name, spawn.Team, movement, weapon)
}

// ID returns the battle's unique ID
func (s *Session) ID() string { return s.id }

// Map returns the battle map the session was built from
func (s *Session) Map() *mapgen.BattleMap { return s.battle }

// Graph returns the session's tile graph
func (s *Session) Graph() *pathfinding.TileGraph { return s.graph }

// Roster returns the units in the battle
func (s *Session) Roster() *units.Roster { return s.roster }

// ActiveTeam returns the team whose turn it is
func (s *Session) ActiveTeam() units.Team { return s.activeTeam }

// Turn returns the current turn number, starting at 1
func (s *Session) Turn() int { return s.turn }

// Phase returns the step of the selection flow the battle is in
func (s *Session) Phase() states.BattlePhase { return s.phases.Current() }

// PhaseHistory returns the phase transitions so far, oldest first
func (s *Session) PhaseHistory() []states.Transition { return s.phases.History() }

// Selection returns the current selection, or nil
func (s *Session) Selection() *Selection { return s.selection }

// Preview returns the path to the hovered tile, or nil
func (s *Session) Preview() []*core.Tile { return s.preview }

// Cursor returns the hovered tile, or nil
func (s *Session) Cursor() *core.Tile { return s.cursor }

// Select picks the active team's unit standing on c and computes its
// walkable and attackable tiles. Any previous selection is cancelled first.
func (s *Session) Select(ctx context.Context, c core.Coordinate) (*Selection, error) {
	_, span := s.tracer.Start(ctx, "battle.select",
		trace.WithAttributes(attribute.Int("x", c.X), attribute.Int("y", c.Y)))
	defer span.End()

	sel, err := s.selectAt(c)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("unit", sel.Unit.Name),
		attribute.Int("walkable", len(sel.Walkable)),
		attribute.Int("attackable", len(sel.Attackable)),
	)
	return sel, nil
}

func (s *Session) selectAt(c core.Coordinate) (*Selection, error) {
	tile := s.graph.TileAt(c)
	if tile == nil {
		return nil, fmt.Errorf("select %s: %w", c, core.ErrOutOfBounds)
	}
	u := s.roster.UnitAt(c)
	if u == nil {
		return nil, fmt.Errorf("select %s: %w", c, core.ErrNoUnitOnTile)
	}
	if u.Team != s.activeTeam {
		return nil, fmt.Errorf("select %s: %w", u.Name, core.ErrWrongTeam)
	}
	if !u.CanAct() {
		return nil, fmt.Errorf("select %s: %w", u.Name, core.ErrUnitHasActed)
	}

	s.clearSelection("reselected")

	walkable := s.query.GetWalkableTiles(u, tile)
	attackable := s.query.GetAttackableTiles(u, walkable)

	for _, t := range attackable {
		t.SetHighlight(core.HighlightAttackable)
	}
	for _, t := range walkable {
		t.SetHighlight(core.HighlightWalkable)
	}
	tile.SetUnitSelected(true)

	s.reachable = mapset.New[*core.Tile]()
	for _, t := range walkable {
		s.reachable.Put(t)
	}
	s.selection = &Selection{Unit: u, Origin: tile, Walkable: walkable, Attackable: attackable}
	s.enter(states.PhaseUnitSelected, "unit selected")

	s.logger.Debug().
		Str("unit", u.Name).
		Stringer("at", c).
		Int("walkable", len(walkable)).
		Int("attackable", len(attackable)).
		Msg("Unit selected")
	s.publish(events.NewUnitSelectedEvent(s.id, u.ID, u.Name, c, len(walkable), len(attackable)))

	return s.selection, nil
}

// Hover moves the cursor to c. With a unit selected and c walkable, it
// returns the path the unit would take; otherwise nil.
func (s *Session) Hover(c core.Coordinate) []*core.Tile {
	tile := s.graph.TileAt(c)
	if s.cursor != nil {
		s.cursor.SetSelected(false)
	}
	s.cursor = tile
	s.preview = nil
	if tile == nil {
		return nil
	}
	tile.SetSelected(true)

	if s.selection != nil && s.reachable.Has(tile) {
		s.preview = s.graph.ReconstructPath(tile)
	}
	return s.preview
}

// Confirm moves the selected unit to c along its path, marks it as having
// acted and clears the selection. It returns the path taken.
func (s *Session) Confirm(ctx context.Context, c core.Coordinate) ([]*core.Tile, error) {
	_, span := s.tracer.Start(ctx, "battle.confirm",
		trace.WithAttributes(attribute.Int("x", c.X), attribute.Int("y", c.Y)))
	defer span.End()

	path, err := s.confirmAt(c)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("steps", len(path)-1))
	return path, nil
}

func (s *Session) confirmAt(c core.Coordinate) ([]*core.Tile, error) {
	if s.selection == nil {
		return nil, core.ErrNoSelection
	}
	tile := s.graph.TileAt(c)
	if tile == nil || !s.reachable.Has(tile) {
		return nil, fmt.Errorf("move %s to %s: %w", s.selection.Unit.Name, c, core.ErrNotWalkable)
	}

	u := s.selection.Unit
	from := u.Position
	path := s.graph.ReconstructPath(tile)
	if err := s.roster.Move(u, tile.Coord); err != nil {
		return nil, err
	}
	u.HasActed = true
	s.movedCount++

	s.logger.Debug().
		Str("unit", u.Name).
		Stringer("from", from).
		Stringer("to", tile.Coord).
		Int("steps", len(path)-1).
		Msg("Unit moved")
	s.publish(events.NewUnitMovedEvent(s.id, u.ID, u.Name, from, tile.Coord, len(path)-1))

	s.clearSelection("moved")
	return path, nil
}

// Wait ends the selected unit's action without moving it
func (s *Session) Wait(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "battle.wait")
	defer span.End()

	if s.selection == nil {
		span.SetStatus(codes.Error, core.ErrNoSelection.Error())
		return core.ErrNoSelection
	}
	u := s.selection.Unit
	u.HasActed = true
	span.SetAttributes(attribute.String("unit", u.Name))

	s.logger.Debug().Str("unit", u.Name).Msg("Unit waits")
	s.clearSelection("waited")
	return nil
}

// Cancel drops the current selection, if any, and resets pathfinding state
func (s *Session) Cancel() {
	s.clearSelection("cancelled")
}

func (s *Session) clearSelection(reason string) {
	if s.selection == nil {
		return
	}
	unitID := s.selection.Unit.ID

	s.graph.ResetPathfinding()
	s.graph.ClearDisplay()
	if s.cursor != nil {
		s.cursor.SetSelected(true)
	}
	s.selection = nil
	s.reachable = mapset.New[*core.Tile]()
	s.preview = nil
	s.enter(states.PhaseAwaitingOrders, reason)

	s.publish(events.NewSelectionClearedEvent(s.id, unitID, reason))
}

// EndTurn hands control to the other team and clears its acted flags.
// The turn counter advances when play returns to the player team.
func (s *Session) EndTurn(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "battle.end_turn",
		trace.WithAttributes(attribute.String("team", s.activeTeam.String()), attribute.Int("turn", s.turn)))
	defer span.End()

	s.clearSelection("turn ended")
	s.enter(states.PhaseTurnEnding, "turn ended")

	ended := s.activeTeam
	s.publish(events.NewTurnEndedEvent(s.id, ended.String(), s.turn, s.movedCount))
	s.logger.Info().
		Stringer("team", ended).
		Int("turn", s.turn).
		Int("moved", s.movedCount).
		Msg("Turn ended")

	if ended == units.TeamPlayer {
		s.activeTeam = units.TeamEnemy
	} else {
		s.activeTeam = units.TeamPlayer
		s.turn++
	}
	s.movedCount = 0
	s.roster.ResetActed(s.activeTeam)
	s.enter(states.PhaseAwaitingOrders, "turn started")
}

// ReadyUnits returns the active team's units that have not acted yet
func (s *Session) ReadyUnits() []*units.Unit {
	var ready []*units.Unit
	for _, u := range s.roster.TeamUnits(s.activeTeam) {
		if u.CanAct() {
			ready = append(ready, u)
		}
	}
	return ready
}

// enter moves the phase machine along. The session only requests transitions
// its own flow allows, so a refusal is a bug.
func (s *Session) enter(phase states.BattlePhase, reason string) {
	if err := s.phases.TransitionTo(phase, reason); err != nil {
		panic(err)
	}
}

func (s *Session) publish(e events.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
