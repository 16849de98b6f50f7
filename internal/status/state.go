// Package status provides a guarded state machine: a state only changes
// along an edge of its transition table.
package status

import (
	"fmt"
	"slices"
	"sync"
)

// State is one node of a transition table.
type State string

// Subscription lifecycle states.
const (
	Disconnected        State = "DISCONNECTED"
	Subscribed          State = "SUBSCRIBED"
	Delivering          State = "DELIVERING"
	Unsubscribed        State = "UNSUBSCRIBED"
	DisconnectedOnError State = "DISCONNECTED_ON_ERROR"
)

// Daemon runtime states.
const (
	Booting  State = "BOOTING"
	Ready    State = "READY"
	Stopping State = "STOPPING"
	Error    State = "ERROR"
)

// Transitions maps a state to the states it may move to.
type Transitions map[State][]State

// SubscriptionTransitions is the lifecycle of one sync subscription.
// Both end states are terminal.
var SubscriptionTransitions = Transitions{
	Disconnected: {Subscribed, Unsubscribed, DisconnectedOnError},
	Subscribed:   {Delivering, Unsubscribed, DisconnectedOnError},
	Delivering:   {Unsubscribed, DisconnectedOnError},
}

// DaemonTransitions is the lifecycle of the daemon process.
var DaemonTransitions = Transitions{
	Booting: {Ready, Error},
	Ready:   {Stopping, Error},
	Error:   {Stopping},
}

// StatusChange describes one transition.
type StatusChange struct {
	From State
	To   State
}

// Machine tracks and enforces state transitions.
type Machine struct {
	mu          sync.RWMutex
	current     State
	transitions Transitions
	onChange    func(StatusChange)
}

// NewMachine creates a machine in initial. onChange, if set, is called
// after every transition while the machine is still locked, so observers
// see transitions in order.
func NewMachine(initial State, transitions Transitions, onChange func(StatusChange)) *Machine {
	return &Machine{
		current:     initial,
		transitions: transitions,
		onChange:    onChange,
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Terminal reports whether no transition leaves the current state.
func (m *Machine) Terminal() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transitions[m.current]) == 0
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	allowed := m.transitions[m.current]
	if !slices.Contains(allowed, to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	if m.onChange != nil {
		m.onChange(StatusChange{From: from, To: to})
	}
	return nil
}
