// Package sync pushes namespace snapshots to subscribers. Every delivery
// is a full snapshot labelled with the store revision it reflects, so a
// subscriber that falls behind simply skips to the newest one.
package sync

import (
	"context"
	"errors"
	gosync "sync"
	"time"

	"github.com/matheus3301/dmsync/internal/bus"
	"github.com/matheus3301/dmsync/internal/metrics"
	"go.uber.org/zap"
)

// ErrStopped is returned by Subscribe after Stop, and reported by
// subscriptions the engine closed on shutdown.
var ErrStopped = errors.New("sync engine stopped")

// Options tunes an Engine. Zero values pick the defaults.
type Options struct {
	// MaxLoadFailures is how many consecutive snapshot loads may fail
	// before every subscriber of the namespace is disconnected.
	MaxLoadFailures int
	// RetryBackoff is the wait after the first failed load; it grows
	// linearly with each further failure.
	RetryBackoff time.Duration
	// ResyncInterval, when set, reloads every live namespace periodically
	// to pick up writes made by other processes.
	ResyncInterval time.Duration
	// BusBuffer is the event buffer of each bus subscription.
	BusBuffer int
}

func (o Options) withDefaults() Options {
	if o.MaxLoadFailures <= 0 {
		o.MaxLoadFailures = 3
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = 100 * time.Millisecond
	}
	if o.BusBuffer <= 0 {
		o.BusBuffer = 1024
	}
	return o
}

// Engine turns store change events into snapshot deliveries.
type Engine struct {
	loader  Loader
	bus     *bus.Bus
	logger  *zap.Logger
	metrics *metrics.Metrics
	opts    Options

	ctx    context.Context
	cancel context.CancelFunc
	wg     gosync.WaitGroup

	mu      gosync.Mutex
	feeds   map[Namespace]*feed
	active  int
	stopped bool
}

// NewEngine creates a new sync engine. Call Start before Subscribe.
func NewEngine(loader Loader, b *bus.Bus, logger *zap.Logger, m *metrics.Metrics, opts Options) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		loader:  loader,
		bus:     b,
		logger:  logger,
		metrics: m,
		opts:    opts.withDefaults(),
		feeds:   make(map[Namespace]*feed),
	}
}

// Start subscribes to store change events on the bus.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	e.ctx, e.cancel = context.WithCancel(ctx)
	e.mu.Unlock()

	subs := []*bus.Subscription{
		e.bus.Subscribe("message.", e.opts.BusBuffer),
		e.bus.Subscribe("unread.", e.opts.BusBuffer),
		e.bus.Subscribe("presence.", e.opts.BusBuffer),
		e.bus.Subscribe("inbox.", e.opts.BusBuffer),
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer func() {
			for _, s := range subs {
				s.Close()
			}
		}()

		var tick <-chan time.Time
		if e.opts.ResyncInterval > 0 {
			ticker := time.NewTicker(e.opts.ResyncInterval)
			defer ticker.Stop()
			tick = ticker.C
		}

		for {
			var evt bus.Event
			select {
			case evt = <-subs[0].C:
			case evt = <-subs[1].C:
			case evt = <-subs[2].C:
			case evt = <-subs[3].C:
			case <-tick:
				e.markAll()
				continue
			case <-e.ctx.Done():
				return
			}
			lagged := false
			for _, s := range subs {
				if s.Lagged() {
					lagged = true
				}
			}
			if lagged {
				e.metrics.BusLag()
				e.logger.Warn("sync engine missed bus events, reloading every namespace")
				e.markAll()
				continue
			}
			e.handleEvent(evt)
		}
	}()
}

// Stop stops the engine and closes every live subscription.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopped = true
	feeds := make([]*feed, 0, len(e.feeds))
	for ns, f := range e.feeds {
		feeds = append(feeds, f)
		delete(e.feeds, ns)
	}
	e.mu.Unlock()

	if e.cancel != nil {
		e.cancel()
	}
	for _, f := range feeds {
		for _, s := range f.members() {
			s.close(ErrStopped, false)
		}
	}
	e.wg.Wait()
}

// Active returns the number of live subscriptions.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

func (e *Engine) handleEvent(evt bus.Event) {
	switch evt.Kind {
	case bus.KindMessageAppended, bus.KindMessageEdited, bus.KindMessageDeleted:
		e.markDirty(Conversation(evt.Topic))
	case bus.KindUnreadChanged:
		e.markDirty(UnreadOf(evt.Topic))
	case bus.KindPresenceChanged:
		e.markDirty(PresenceOf(evt.Topic))
	case bus.KindInboxChanged:
		e.markDirty(InboxOf(evt.Topic))
	}
}

func (e *Engine) markDirty(ns Namespace) {
	e.mu.Lock()
	f := e.feeds[ns]
	e.mu.Unlock()
	if f != nil {
		f.mark()
	}
}

func (e *Engine) markAll() {
	e.mu.Lock()
	for _, f := range e.feeds {
		f.mark()
	}
	e.mu.Unlock()
}

// Subscribe attaches a subscriber to ns. When it returns without error the
// subscription already holds its initial snapshot. The subscription ends
// when ctx is done or Unsubscribe is called.
func (e *Engine) Subscribe(ctx context.Context, ns Namespace) (*Subscription, error) {
	if err := ns.Validate(); err != nil {
		return nil, err
	}
	sub := newSubscription(e, ns)

	e.mu.Lock()
	if e.stopped || e.ctx == nil {
		e.mu.Unlock()
		return nil, ErrStopped
	}
	f, ok := e.feeds[ns]
	if !ok {
		f = newFeed(ns)
		e.feeds[ns] = f
		e.wg.Add(1)
		go e.runFeed(f)
	}
	f.add(sub)
	sub.feed = f
	e.active++
	e.mu.Unlock()
	e.metrics.SubscriptionAdded(string(ns.Kind))

	// The subscriber is attached before the first load, so a change
	// committed from here on also reaches it through the feed.
	snap, err := e.load(ctx, ns)
	if err != nil {
		sub.close(err, true)
		return nil, err
	}
	sub.deliver(snap)
	sub.bindContext(ctx)

	e.logger.Debug("subscribed", zap.String("sub", sub.ID), zap.Stringer("ns", ns))
	return sub, nil
}

// detach removes sub from its feed, stopping the feed when it was the last.
func (e *Engine) detach(sub *Subscription) {
	e.mu.Lock()
	f := sub.feed
	removed := f != nil && f.remove(sub)
	if removed {
		e.active--
		if f.empty() && e.feeds[f.ns] == f {
			delete(e.feeds, f.ns)
			f.shutdown()
		}
	}
	e.mu.Unlock()
	if removed {
		e.metrics.SubscriptionRemoved(string(sub.Namespace.Kind))
	}
}

func (e *Engine) load(ctx context.Context, ns Namespace) (Snapshot, error) {
	start := time.Now()
	snap, err := e.loader.Load(ctx, ns)
	e.metrics.ObserveLoad(string(ns.Kind), time.Since(start))
	snap.Namespace = ns
	return snap, err
}

// runFeed reloads ns each time it is marked dirty and hands the snapshot
// to every member. Marks that arrive during a load collapse into one.
func (e *Engine) runFeed(f *feed) {
	defer e.wg.Done()
	failures := 0
	for {
		select {
		case <-f.stop:
			return
		case <-e.ctx.Done():
			return
		case <-f.dirty:
		}

		snap, err := e.load(e.ctx, f.ns)
		if err != nil {
			if e.ctx.Err() != nil {
				return
			}
			failures++
			e.logger.Warn("snapshot load failed",
				zap.Stringer("ns", f.ns),
				zap.Int("failures", failures),
				zap.Error(err),
			)
			if failures >= e.opts.MaxLoadFailures {
				e.failFeed(f, err)
				return
			}
			select {
			case <-time.After(e.opts.RetryBackoff * time.Duration(failures)):
				f.mark()
			case <-f.stop:
				return
			case <-e.ctx.Done():
				return
			}
			continue
		}
		failures = 0
		for _, s := range f.members() {
			s.deliver(snap)
		}
	}
}

// failFeed disconnects every member of f after repeated load failures.
// Later subscribers of the namespace get a fresh feed.
func (e *Engine) failFeed(f *feed, err error) {
	e.mu.Lock()
	if e.feeds[f.ns] == f {
		delete(e.feeds, f.ns)
	}
	e.mu.Unlock()

	members := f.members()
	e.logger.Error("namespace disconnected after repeated load failures",
		zap.Stringer("ns", f.ns),
		zap.Int("subscribers", len(members)),
		zap.Error(err),
	)
	for _, s := range members {
		s.close(err, true)
	}
}

// feed is the shared reload loop of one namespace.
type feed struct {
	ns       Namespace
	dirty    chan struct{}
	stop     chan struct{}
	stopOnce gosync.Once

	mu   gosync.Mutex
	subs map[*Subscription]struct{}
}

func newFeed(ns Namespace) *feed {
	return &feed{
		ns:    ns,
		dirty: make(chan struct{}, 1),
		stop:  make(chan struct{}),
		subs:  make(map[*Subscription]struct{}),
	}
}

func (f *feed) mark() {
	select {
	case f.dirty <- struct{}{}:
	default:
	}
}

func (f *feed) shutdown() {
	f.stopOnce.Do(func() { close(f.stop) })
}

func (f *feed) add(s *Subscription) {
	f.mu.Lock()
	f.subs[s] = struct{}{}
	f.mu.Unlock()
}

// remove reports whether s was a member.
func (f *feed) remove(s *Subscription) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[s]; !ok {
		return false
	}
	delete(f.subs, s)
	return true
}

func (f *feed) empty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs) == 0
}

func (f *feed) members() []*Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Subscription, 0, len(f.subs))
	for s := range f.subs {
		out = append(out, s)
	}
	return out
}
