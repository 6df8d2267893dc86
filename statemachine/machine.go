package statemachine

import (
	"errors"
	"fmt"
	"strings"
)

// Actor identifies who is asking for a transition.
type Actor string

const (
	ActorOperator Actor = "operator"
	ActorCustomer Actor = "customer"
	ActorSystem   Actor = "system"
)

// ErrUnknownStatus is returned for values outside a machine's enumeration.
var ErrUnknownStatus = errors.New("unknown status")

// Transition defines a valid state change and who can perform it
type Transition[S ~string] struct {
	From  S     `json:"from"`
	To    S     `json:"to"`
	Actor Actor `json:"actor"`
}

type transitionKey[S ~string] struct {
	From  S
	To    S
	Actor Actor
}

// Machine is an immutable transition table for one lifecycle.
type Machine[S ~string] struct {
	entity      string
	states      []S
	transitions []Transition[S]
	allowed     map[transitionKey[S]]bool
}

func newMachine[S ~string](entity string, states []S, transitions []Transition[S]) *Machine[S] {
	m := &Machine[S]{
		entity:      entity,
		states:      states,
		transitions: transitions,
		allowed:     make(map[transitionKey[S]]bool, len(transitions)),
	}
	for _, t := range transitions {
		m.allowed[transitionKey[S]{t.From, t.To, t.Actor}] = true
	}
	return m
}

// IsValid reports whether s belongs to the machine's enumeration.
func (m *Machine[S]) IsValid(s S) bool {
	for _, st := range m.states {
		if st == s {
			return true
		}
	}
	return false
}

// ValidTransitionsFrom returns all valid next states from a given state
func (m *Machine[S]) ValidTransitionsFrom(status S) []S {
	var nexts []S
	seen := map[S]bool{}
	for _, t := range m.transitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves status.
func (m *Machine[S]) IsTerminal(status S) bool {
	return len(m.ValidTransitionsFrom(status)) == 0
}

// TerminalStates lists the states without outgoing edges.
func (m *Machine[S]) TerminalStates() []S {
	var out []S
	for _, s := range m.states {
		if m.IsTerminal(s) {
			out = append(out, s)
		}
	}
	return out
}

// CanTransition checks if a given actor can move from one state to another
func (m *Machine[S]) CanTransition(from, to S, actor Actor) error {
	if !m.IsValid(to) {
		return fmt.Errorf("%s status %q: %w", m.entity, to, ErrUnknownStatus)
	}
	if m.allowed[transitionKey[S]{from, to, actor}] {
		return nil
	}
	valid := make([]string, 0)
	for _, s := range m.ValidTransitionsFrom(from) {
		valid = append(valid, string(s))
	}
	return &TransitionError{
		Entity: m.entity,
		From:   string(from),
		To:     string(to),
		Actor:  actor,
		Valid:  valid,
	}
}

// Transitions returns the full table for documentation
func (m *Machine[S]) Transitions() []Transition[S] {
	return append([]Transition[S](nil), m.transitions...)
}

// TransitionError reports a move that the table does not allow.
type TransitionError struct {
	Entity string
	From   string
	To     string
	Actor  Actor
	Valid  []string
}

func (e *TransitionError) Error() string {
	valid := "none (terminal state)"
	if len(e.Valid) > 0 {
		valid = strings.Join(e.Valid, ", ")
	}
	return fmt.Sprintf("invalid %s transition: %s -> %s is not allowed for actor '%s'. Valid transitions from %s are: %s",
		e.Entity, e.From, e.To, e.Actor, e.From, valid)
}
