package sync

import (
	"context"
	gosync "sync"

	"github.com/google/uuid"
	"github.com/matheus3301/dmsync/internal/status"
)

// Subscription receives the snapshots of one namespace.
//
// The mailbox holds a single snapshot. When the subscriber has not taken
// the previous one yet, the newer snapshot replaces it; snapshots are full
// state, so nothing is lost. Revisions never go backwards: a snapshot with
// a revision at or below the last one delivered is dropped.
type Subscription struct {
	ID        string
	Namespace Namespace

	engine  *Engine
	feed    *feed
	ch      chan Snapshot
	machine *status.Machine

	mu        gosync.Mutex
	closed    bool
	delivered bool
	lastRev   int64
	err       error
	stopAfter func() bool
}

func newSubscription(e *Engine, ns Namespace) *Subscription {
	return &Subscription{
		ID:        uuid.NewString(),
		Namespace: ns,
		engine:    e,
		ch:        make(chan Snapshot, 1),
		machine:   status.NewMachine(status.Disconnected, status.SubscriptionTransitions, nil),
		lastRev:   -1,
	}
}

// C delivers snapshots. It is closed when the subscription ends.
func (s *Subscription) C() <-chan Snapshot {
	return s.ch
}

// State returns the lifecycle state.
func (s *Subscription) State() status.State {
	return s.machine.Current()
}

// Err returns why the subscription ended: nil after Unsubscribe, the load
// error after a disconnect, or ErrStopped.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Unsubscribe ends the subscription. Once it returns, no snapshot can be
// received from C: pending ones are discarded and C is closed. Safe to call
// more than once.
func (s *Subscription) Unsubscribe() {
	s.close(nil, false)
}

func (s *Subscription) close(err error, failed bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.err = err
	select {
	case <-s.ch:
	default:
	}
	close(s.ch)
	to := status.Unsubscribed
	if failed {
		to = status.DisconnectedOnError
	}
	_ = s.machine.Transition(to)
	stop := s.stopAfter
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	s.engine.detach(s)
}

// bindContext ends the subscription when ctx is done.
func (s *Subscription) bindContext(ctx context.Context) {
	if ctx.Done() == nil {
		return
	}
	stop := context.AfterFunc(ctx, s.Unsubscribe)
	s.mu.Lock()
	closed := s.closed
	if !closed {
		s.stopAfter = stop
	}
	s.mu.Unlock()
	if closed {
		stop()
	}
}

// deliver places snap in the mailbox unless it is stale.
func (s *Subscription) deliver(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || snap.Rev <= s.lastRev {
		return
	}

	snap.Initial = !s.delivered
	coalesced := false
	select {
	case s.ch <- snap:
	default:
		select {
		case old := <-s.ch:
			// Never lose the Initial flag to a replacement.
			snap.Initial = snap.Initial || old.Initial
			coalesced = true
		default:
		}
		s.ch <- snap
	}
	s.lastRev = snap.Rev

	if !s.delivered {
		s.delivered = true
		_ = s.machine.Transition(status.Subscribed)
	} else if s.machine.Current() == status.Subscribed {
		_ = s.machine.Transition(status.Delivering)
	}
	s.engine.metrics.Delivered(string(s.Namespace.Kind), coalesced)
}
