package status

import (
	"testing"
)

func TestInitialState(t *testing.T) {
	m := NewMachine(Disconnected, SubscriptionTransitions, nil)
	if m.Current() != Disconnected {
		t.Errorf("initial state = %s, want DISCONNECTED", m.Current())
	}
}

func TestValidTransitions(t *testing.T) {
	tests := []struct {
		path []State
	}{
		{[]State{Subscribed, Delivering, Unsubscribed}},
		{[]State{Subscribed, Unsubscribed}},
		{[]State{Subscribed, Delivering, DisconnectedOnError}},
		{[]State{Subscribed, DisconnectedOnError}},
		{[]State{DisconnectedOnError}},
		{[]State{Unsubscribed}},
	}
	for _, tt := range tests {
		t.Run(string(tt.path[len(tt.path)-1]), func(t *testing.T) {
			m := NewMachine(Disconnected, SubscriptionTransitions, nil)
			for _, to := range tt.path {
				if err := m.Transition(to); err != nil {
					t.Fatalf("Transition(%s) error = %v", to, err)
				}
			}
			if !m.Terminal() {
				t.Errorf("state %s should be terminal", m.Current())
			}
		})
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		path []State
		bad  State
	}{
		{"skip subscribe", nil, Delivering},
		{"back to subscribed", []State{Subscribed, Delivering}, Subscribed},
		{"resubscribe after unsubscribe", []State{Unsubscribed}, Subscribed},
		{"recover from error", []State{DisconnectedOnError}, Delivering},
		{"unsubscribe twice", []State{Unsubscribed}, Unsubscribed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(Disconnected, SubscriptionTransitions, nil)
			for _, to := range tt.path {
				if err := m.Transition(to); err != nil {
					t.Fatal(err)
				}
			}
			before := m.Current()
			if err := m.Transition(tt.bad); err == nil {
				t.Errorf("Transition(%s -> %s) should fail", before, tt.bad)
			}
			if m.Current() != before {
				t.Errorf("state changed to %s after rejected transition", m.Current())
			}
		})
	}
}

func TestTransitionNotifies(t *testing.T) {
	var changes []StatusChange
	m := NewMachine(Booting, DaemonTransitions, func(c StatusChange) {
		changes = append(changes, c)
	})
	if err := m.Transition(Ready); err != nil {
		t.Fatal(err)
	}
	if err := m.Transition(Stopping); err != nil {
		t.Fatal(err)
	}
	if err := m.Transition(Ready); err == nil {
		t.Error("Transition(STOPPING -> READY) should fail")
	}

	want := []StatusChange{{Booting, Ready}, {Ready, Stopping}}
	if len(changes) != len(want) {
		t.Fatalf("got %d changes, want %d", len(changes), len(want))
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change[%d] = %v, want %v", i, changes[i], want[i])
		}
	}
	if !m.Terminal() {
		t.Error("STOPPING should be terminal")
	}
}
