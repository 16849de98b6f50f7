// Package presence tracks who is online. Writes are best-effort: they run
// off the caller's goroutine, are never retried and only ever get logged.
package presence

import (
	"context"
	"sync"
	"time"

	"github.com/matheus3301/dmsync/internal/metrics"
	"go.uber.org/zap"
)

// Store is the part of the backend the tracker writes to.
type Store interface {
	SetPresence(ctx context.Context, userID string, online bool) error
	Presence(ctx context.Context, userID string) (bool, int64, error)
}

const writeTimeout = 5 * time.Second

// Tracker writes presence flags for connected users.
type Tracker struct {
	store   Store
	log     *zap.Logger
	metrics *metrics.Metrics

	wg sync.WaitGroup
	// writes for one user are applied in call order
	mu     sync.Mutex
	queues map[string]chan bool
}

// NewTracker creates a tracker writing to store.
func NewTracker(store Store, logger *zap.Logger, m *metrics.Metrics) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		store:   store,
		log:     logger,
		metrics: m,
		queues:  make(map[string]chan bool),
	}
}

// SetOnline marks userID online. It returns immediately.
func (t *Tracker) SetOnline(userID string) {
	t.enqueue(userID, true)
}

// SetOffline marks userID offline. Safe to race with the auto-offline
// hook; both write false.
func (t *Tracker) SetOffline(userID string) {
	t.enqueue(userID, false)
}

// RegisterAutoOffline marks userID offline once ctx ends. ctx must be the
// connection's own context (a gRPC stream, a websocket session), so the
// write happens when the transport notices the disconnect, crash and
// network loss included. The returned stop func cancels the hook without
// writing.
func (t *Tracker) RegisterAutoOffline(ctx context.Context, userID string) (stop func()) {
	done := make(chan struct{})
	var once sync.Once
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		select {
		case <-ctx.Done():
			t.log.Debug("connection ended, marking offline", zap.String("user", userID))
			t.SetOffline(userID)
		case <-done:
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}

// Online reports the stored flag for userID. Unknown users are offline.
func (t *Tracker) Online(ctx context.Context, userID string) (bool, error) {
	online, _, err := t.store.Presence(ctx, userID)
	return online, err
}

// Wait blocks until every queued write has been attempted and every
// auto-offline hook has fired or been stopped.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// enqueue hands the write to the user's writer goroutine, starting one if
// needed. A slow write for one user never blocks another user or the caller.
func (t *Tracker) enqueue(userID string, online bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	q, ok := t.queues[userID]
	if !ok {
		q = make(chan bool, 8)
		t.queues[userID] = q
		t.wg.Add(1)
		go t.drain(userID, q)
	}
	select {
	case q <- online:
	default:
		// Queue full: the newest flag is all that matters, drop the oldest.
		select {
		case <-q:
		default:
		}
		q <- online
	}
}

func (t *Tracker) drain(userID string, q chan bool) {
	defer t.wg.Done()
	for {
		var online bool
		t.mu.Lock()
		select {
		case online = <-q:
			t.mu.Unlock()
		default:
			delete(t.queues, userID)
			t.mu.Unlock()
			return
		}
		t.write(userID, online)
	}
}

func (t *Tracker) write(userID string, online bool) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := t.store.SetPresence(ctx, userID, online); err != nil {
		t.metrics.BestEffortFailure("presence")
		t.log.Warn("presence write failed",
			zap.String("user", userID),
			zap.Bool("online", online),
			zap.Error(err),
		)
	}
}
