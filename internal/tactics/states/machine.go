package states

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidTransition is returned when a phase change is not allowed from the current phase
var ErrInvalidTransition = errors.New("invalid phase transition")

const defaultMaxHistory = 256

// Transition represents a phase change in the history
type Transition struct {
	From      BattlePhase
	To        BattlePhase
	Timestamp time.Time
	Reason    string
}

// Machine tracks the phase of one battle and the transitions that led there
type Machine struct {
	mu             sync.RWMutex
	current        BattlePhase
	history        []Transition
	maxHistorySize int
	logger         zerolog.Logger
}

// NewMachine creates a machine in PhaseDeploying. maxHistory <= 0 uses the default.
func NewMachine(logger zerolog.Logger, maxHistory int) *Machine {
	if maxHistory <= 0 {
		maxHistory = defaultMaxHistory
	}
	return &Machine{
		current:        PhaseDeploying,
		history:        make([]Transition, 0, 16),
		maxHistorySize: maxHistory,
		logger:         logger.With().Str("component", "battle_phase").Logger(),
	}
}

// Current returns the current phase
func (m *Machine) Current() BattlePhase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CanTransitionTo checks if a transition to target is allowed now
func (m *Machine) CanTransitionTo(target BattlePhase) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.CanTransitionTo(target)
}

// TransitionTo moves to target, recording reason in the history
func (m *Machine) TransitionTo(target BattlePhase, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.current.CanTransitionTo(target) {
		return fmt.Errorf("%s to %s: %w", m.current, target, ErrInvalidTransition)
	}

	transition := Transition{
		From:      m.current,
		To:        target,
		Timestamp: time.Now(),
		Reason:    reason,
	}
	m.history = append(m.history, transition)
	if len(m.history) > m.maxHistorySize {
		// Keep the most recent entries
		m.history = m.history[len(m.history)-m.maxHistorySize:]
	}
	m.current = target

	m.logger.Debug().
		Str("from_phase", transition.From.String()).
		Str("to_phase", target.String()).
		Str("reason", reason).
		Msg("Phase transition")
	return nil
}

// History returns a copy of the transition history, oldest first
func (m *Machine) History() []Transition {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := make([]Transition, len(m.history))
	copy(history, m.history)
	return history
}
