// Package index maintains each viewer's inbox: the last message per
// counterpart, kept current from store change events one conversation at
// a time.
package index

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/matheus3301/dmsync/internal/bus"
	"github.com/matheus3301/dmsync/internal/convkey"
	"github.com/matheus3301/dmsync/internal/roster"
	"github.com/matheus3301/dmsync/internal/store"
	"go.uber.org/zap"
)

// Store is the part of the backend the index reads.
type Store interface {
	Last(ctx context.Context, conversationKey string) (*store.Message, error)
	UnreadForUser(ctx context.Context, ownerID string) (map[string]int, int64, error)
}

// entry caches one conversation's last message. gen moves on every
// refresh. Readers use last only while loaded is set.
type entry struct {
	last   *store.Message
	gen    uint64
	loaded bool
}

// Index caches the last message of every conversation it has seen and
// keeps a revision per viewer. A viewer's revision moves whenever one of
// their conversations or unread counters changes, and an inbox.changed
// event is published for them.
type Index struct {
	store  Store
	roster roster.Directory
	bus    *bus.Bus
	logger *zap.Logger
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	entries map[string]*entry
	revs    map[string]int64
}

// New creates an index. Call Start to follow store changes.
func New(st Store, dir roster.Directory, b *bus.Bus, logger *zap.Logger) *Index {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Index{
		store:   st,
		roster:  dir,
		bus:     b,
		logger:  logger,
		entries: make(map[string]*entry),
		revs:    make(map[string]int64),
	}
}

// Start follows message and unread events on the bus.
func (x *Index) Start(ctx context.Context) {
	ctx, x.cancel = context.WithCancel(ctx)
	x.done = make(chan struct{})
	messages := x.bus.Subscribe("message.", 1024)
	counters := x.bus.Subscribe("unread.", 1024)

	go func() {
		defer close(x.done)
		defer messages.Close()
		defer counters.Close()
		for {
			var evt bus.Event
			select {
			case evt = <-messages.C:
			case evt = <-counters.C:
			case <-ctx.Done():
				return
			}
			lagged := messages.Lagged()
			if counters.Lagged() {
				lagged = true
			}
			if lagged {
				x.resync()
			}
			x.handleEvent(ctx, evt)
		}
	}()
}

// Stop stops following events and waits for the loop to exit.
func (x *Index) Stop() {
	if x.cancel != nil {
		x.cancel()
		<-x.done
	}
}

func (x *Index) handleEvent(ctx context.Context, evt bus.Event) {
	switch evt.Kind {
	case bus.KindMessageAppended, bus.KindMessageEdited, bus.KindMessageDeleted:
		x.refresh(ctx, evt.Topic)
		a, b, err := convkey.Parse(evt.Topic)
		if err != nil {
			return
		}
		x.touch(a, b)
	case bus.KindUnreadChanged:
		x.touch(evt.Topic)
	}
}

// refresh reloads the last message of one conversation. Events can reach
// the bus out of commit order, so the store, not the payload, decides.
// Until the reload lands, readers go to the store themselves.
func (x *Index) refresh(ctx context.Context, conversationKey string) {
	x.mu.Lock()
	e := x.entryLocked(conversationKey)
	e.gen++
	e.loaded = false
	gen := e.gen
	x.mu.Unlock()

	last, err := x.store.Last(ctx, conversationKey)
	if err != nil {
		// Forget the entry so the next read goes to the store.
		x.mu.Lock()
		if x.entries[conversationKey] == e {
			delete(x.entries, conversationKey)
		}
		x.mu.Unlock()
		x.logger.Warn("index refresh failed", zap.String("conversation", conversationKey), zap.Error(err))
		return
	}

	x.mu.Lock()
	if e.gen == gen {
		e.last = last
		e.loaded = true
	}
	x.mu.Unlock()
}

// resync drops the cache after missed events and wakes every known viewer.
func (x *Index) resync() {
	x.mu.Lock()
	x.entries = make(map[string]*entry)
	viewers := make([]string, 0, len(x.revs))
	for v := range x.revs {
		viewers = append(viewers, v)
	}
	x.mu.Unlock()
	x.logger.Warn("index missed events, cache dropped", zap.Int("viewers", len(viewers)))
	x.touch(viewers...)
}

func (x *Index) touch(viewers ...string) {
	x.mu.Lock()
	for _, v := range viewers {
		x.revs[v]++
	}
	x.mu.Unlock()
	for _, v := range viewers {
		x.bus.Publish(bus.Event{
			Kind:      bus.KindInboxChanged,
			Topic:     v,
			Timestamp: time.Now(),
		})
	}
}

func (x *Index) entryLocked(conversationKey string) *entry {
	e, ok := x.entries[conversationKey]
	if !ok {
		e = &entry{}
		x.entries[conversationKey] = e
	}
	return e
}

// last returns the cached last message, loading it on a miss or while a
// refresh is in flight. A load that raced with a newer refresh is not
// cached.
func (x *Index) last(ctx context.Context, conversationKey string) (*store.Message, error) {
	x.mu.Lock()
	e, ok := x.entries[conversationKey]
	if ok && e.loaded {
		m := e.last
		x.mu.Unlock()
		return m, nil
	}
	var gen uint64
	if ok {
		gen = e.gen
	}
	x.mu.Unlock()

	m, err := x.store.Last(ctx, conversationKey)
	if err != nil {
		return nil, err
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	e = x.entryLocked(conversationKey)
	if e.gen == gen && !e.loaded {
		e.last = m
		e.loaded = true
	}
	return m, nil
}

// Rev returns the viewer's inbox revision.
func (x *Index) Rev(viewerID string) int64 {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.revs[viewerID]
}

// Inbox returns the viewer's conversation summaries in display order,
// together with the inbox revision read before the data.
func (x *Index) Inbox(ctx context.Context, viewerID string) ([]store.ConversationSummary, int64, error) {
	if err := convkey.ValidateUserID(viewerID); err != nil {
		return nil, 0, err
	}
	rev := x.Rev(viewerID)

	users, err := x.roster.Users(ctx)
	if err != nil {
		return nil, 0, err
	}
	counts, _, err := x.store.UnreadForUser(ctx, viewerID)
	if err != nil {
		return nil, 0, err
	}

	out := make([]store.ConversationSummary, 0, len(users))
	for _, u := range users {
		key, err := convkey.Derive(viewerID, u.ID)
		if err != nil {
			continue
		}
		last, err := x.last(ctx, key)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, store.ConversationSummary{
			Counterpart: u,
			LastMessage: last,
			UnreadCount: counts[u.ID],
		})
	}
	Sort(out)
	return out, rev, nil
}

// Sort orders summaries for display: conversations with a message first,
// newest last message first, then by name and finally by id, so equal
// inputs always produce the same order.
func Sort(s []store.ConversationSummary) {
	sort.SliceStable(s, func(i, j int) bool { return less(&s[i], &s[j]) })
}

func less(a, b *store.ConversationSummary) bool {
	if (a.LastMessage != nil) != (b.LastMessage != nil) {
		return a.LastMessage != nil
	}
	if a.LastMessage != nil && a.LastMessage.Timestamp != b.LastMessage.Timestamp {
		return a.LastMessage.Timestamp > b.LastMessage.Timestamp
	}
	an, bn := strings.ToLower(a.Counterpart.DisplayName), strings.ToLower(b.Counterpart.DisplayName)
	if an != bn {
		return an < bn
	}
	if a.Counterpart.DisplayName != b.Counterpart.DisplayName {
		return a.Counterpart.DisplayName < b.Counterpart.DisplayName
	}
	return a.Counterpart.ID < b.Counterpart.ID
}
