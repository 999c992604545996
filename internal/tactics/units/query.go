package units

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
)

// ReachabilityGraph is the part of the tile graph the facade needs
type ReachabilityGraph interface {
	CalculateWalkableTiles(start *core.Tile, movementBudget int) []*core.Tile
	CalculateAttackableTiles(walkable []*core.Tile, attackRange int) []*core.Tile
}

// QueryFacade answers reachability questions for a unit using its stats
type QueryFacade struct {
	graph         ReachabilityGraph
	includeOrigin bool
	logger        zerolog.Logger
}

// QueryOption configures a QueryFacade
type QueryOption func(*QueryFacade)

// WithIncludeOrigin controls whether the unit's own tile is part of its walkable tiles
func WithIncludeOrigin(include bool) QueryOption {
	return func(q *QueryFacade) { q.includeOrigin = include }
}

// WithLogger sets the facade's logger
func WithLogger(logger zerolog.Logger) QueryOption {
	return func(q *QueryFacade) { q.logger = logger }
}

// NewQueryFacade creates a facade over graph. The unit's own tile is included
// in walkable results unless WithIncludeOrigin(false) is given.
func NewQueryFacade(graph ReachabilityGraph, opts ...QueryOption) *QueryFacade {
	q := &QueryFacade{
		graph:         graph,
		includeOrigin: true,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(q)
	}
	q.logger = q.logger.With().Str("component", "unit_query").Logger()
	return q
}

// GetWalkableTiles returns the tiles u can move to from start
func (q *QueryFacade) GetWalkableTiles(u *Unit, start *core.Tile) []*core.Tile {
	walkable := q.graph.CalculateWalkableTiles(start, u.Movement)
	if !q.includeOrigin {
		walkable = withoutTile(walkable, start)
	}

	q.logger.Debug().
		Str("unit", u.Name).
		Int("movement", u.Movement).
		Int("walkable", len(walkable)).
		Msg("Walkable tiles for unit")
	return walkable
}

// GetAttackableTiles returns the tiles u can move to or strike from walkable.
// A unit without a weapon, or with a weapon of no range, cannot attack at all
// and gets an empty result.
func (q *QueryFacade) GetAttackableTiles(u *Unit, walkable []*core.Tile) []*core.Tile {
	attackRange := u.AttackRange()
	if attackRange <= 0 {
		q.logger.Debug().Str("unit", u.Name).Msg("Unit has no attack range")
		return nil
	}

	attackable := q.graph.CalculateAttackableTiles(walkable, attackRange)

	q.logger.Debug().
		Str("unit", u.Name).
		Int("range", attackRange).
		Int("attackable", len(attackable)).
		Msg("Attackable tiles for unit")
	return attackable
}

func withoutTile(tiles []*core.Tile, drop *core.Tile) []*core.Tile {
	out := make([]*core.Tile, 0, len(tiles))
	for _, t := range tiles {
		if t != drop {
			out = append(out, t)
		}
	}
	return out
}
