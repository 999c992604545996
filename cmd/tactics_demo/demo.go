package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/battle"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/events"
)

// demoRunner plays a battle by picking random units and random destinations
type demoRunner struct {
	session    *battle.Session
	rng        *rand.Rand
	out        io.Writer
	color      bool
	maxActions int
	stats      *battleStats
}

// Run performs up to maxActions moves, ending turns whenever the active team
// has no ready units left.
func (d *demoRunner) Run(ctx context.Context) error {
	fmt.Fprintf(d.out, "Battle %s on %q\n%s\n", d.session.ID(), d.session.Map().Name, d.session.Board(d.color))

	for action := 1; action <= d.maxActions; action++ {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(d.out, "Demo interrupted")
			return nil
		}

		ready := d.session.ReadyUnits()
		if len(ready) == 0 {
			d.session.EndTurn(ctx)
			ready = d.session.ReadyUnits()
			if len(ready) == 0 {
				fmt.Fprintln(d.out, "No units left to command")
				return nil
			}
		}

		u := ready[d.rng.Intn(len(ready))]
		sel, err := d.session.Select(ctx, u.Position)
		if err != nil {
			return fmt.Errorf("action %d: %w", action, err)
		}

		if len(sel.Walkable) == 0 {
			if err := d.session.Wait(ctx); err != nil {
				return fmt.Errorf("action %d: %w", action, err)
			}
			fmt.Fprintf(d.out, "Turn %d, action %d: %s is boxed in and waits\n", d.session.Turn(), action, u.Name)
			continue
		}

		dest := sel.Walkable[d.rng.Intn(len(sel.Walkable))]
		d.session.Hover(dest.Coord)

		fmt.Fprintf(d.out, "Turn %d, action %d: %s selected (%d walkable, %d attackable)\n%s\n",
			d.session.Turn(), action, u.Name, len(sel.Walkable), len(sel.Attackable), d.session.Board(d.color))

		path, err := d.session.Confirm(ctx, dest.Coord)
		if err != nil {
			return fmt.Errorf("action %d: %w", action, err)
		}
		fmt.Fprintf(d.out, "  %s moves %s\n", u.Name, formatPath(path))
	}

	fmt.Fprintf(d.out, "\nFinal board:\n%s", d.session.Board(d.color))
	if d.stats != nil {
		fmt.Fprintf(d.out, "Summary: %s\n", d.stats)
	}
	return nil
}

// battleStats tallies the battle's event stream for the closing summary
type battleStats struct {
	moves int
	steps int
	turns int
}

func (st *battleStats) watch(bus events.Bus) {
	bus.SubscribeFunc(events.TypeUnitMoved, func(e events.Event) {
		if moved, ok := e.(*events.UnitMovedEvent); ok {
			st.moves++
			st.steps += moved.Steps
		}
	})
	bus.SubscribeFunc(events.TypeTurnEnded, func(events.Event) { st.turns++ })
}

func (st *battleStats) String() string {
	return fmt.Sprintf("%d moves, %d tiles walked, %d turns ended", st.moves, st.steps, st.turns)
}

func formatPath(path []*core.Tile) string {
	steps := make([]string, len(path))
	for i, t := range path {
		steps[i] = t.Coord.String()
	}
	return strings.Join(steps, " -> ")
}
