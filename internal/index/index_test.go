package index

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matheus3301/dmsync/internal/bus"
	"github.com/matheus3301/dmsync/internal/convkey"
	"github.com/matheus3301/dmsync/internal/roster"
	"github.com/matheus3301/dmsync/internal/store"
)

func summary(id, name string, ts int64) store.ConversationSummary {
	s := store.ConversationSummary{Counterpart: store.User{ID: id, DisplayName: name}}
	if ts > 0 {
		s.LastMessage = &store.Message{ID: "m-" + id, Timestamp: ts}
	}
	return s
}

func order(s []store.ConversationSummary) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[i].Counterpart.ID
	}
	return out
}

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		in   []store.ConversationSummary
		want []string
	}{
		{
			name: "message before none",
			in:   []store.ConversationSummary{summary("a", "Aaron", 0), summary("z", "Zoe", 1)},
			want: []string{"z", "a"},
		},
		{
			name: "newest first",
			in:   []store.ConversationSummary{summary("a", "A", 10), summary("b", "B", 30), summary("c", "C", 20)},
			want: []string{"b", "c", "a"},
		},
		{
			name: "identical timestamps by name",
			in:   []store.ConversationSummary{summary("u3", "carol", 50), summary("u1", "Bob", 50), summary("u2", "alice", 50)},
			want: []string{"u2", "u1", "u3"},
		},
		{
			name: "no messages by name",
			in:   []store.ConversationSummary{summary("u1", "Zed", 0), summary("u2", "Amy", 0)},
			want: []string{"u2", "u1"},
		},
		{
			name: "same name by id",
			in:   []store.ConversationSummary{summary("u9", "Sam", 5), summary("u1", "Sam", 5)},
			want: []string{"u1", "u9"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Sorting any permutation gives the same order.
			for shift := 0; shift < len(tt.in); shift++ {
				in := append(append([]store.ConversationSummary(nil), tt.in[shift:]...), tt.in[:shift]...)
				Sort(in)
				got := order(in)
				for i := range tt.want {
					if got[i] != tt.want[i] {
						t.Fatalf("order = %v, want %v", got, tt.want)
					}
				}
			}
		})
	}
}

type fixture struct {
	idx   *Index
	st    *store.Publisher
	clock *store.ManualClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newWrappedFixture(t, nil)
}

// newWrappedFixture builds a fixture whose index reads through wrap.
func newWrappedFixture(t *testing.T, wrap func(Store) Store) *fixture {
	t.Helper()
	clock := store.NewManualClock(1)
	db, err := store.OpenWithClock(filepath.Join(t.TempDir(), "test.db"), clock)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	eb := bus.New()
	pub := store.NewPublisher(db, eb)
	dir := roster.NewCached(roster.Static{
		{ID: "alice", DisplayName: "Alice"},
		{ID: "bob", DisplayName: "Bob"},
		{ID: "carol", DisplayName: "Carol"},
		{ID: "dave", DisplayName: "Dave"},
	}, time.Minute, nil)

	var st Store = pub
	if wrap != nil {
		st = wrap(pub)
	}
	idx := New(st, dir, eb, nil)
	idx.Start(context.Background())
	t.Cleanup(idx.Stop)
	return &fixture{idx: idx, st: pub, clock: clock}
}

func (f *fixture) send(t *testing.T, at int64, from, to, content string) *store.Message {
	t.Helper()
	f.clock.Set(at)
	m, err := f.st.Append(context.Background(), store.NewMessage{SenderID: from, RecipientID: to, Content: content})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// waitRev waits until the viewer's inbox revision reaches at least want.
func waitRev(t *testing.T, idx *Index, viewer string, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for idx.Rev(viewer) < want {
		if time.Now().After(deadline) {
			t.Fatalf("inbox rev for %s = %d, want >= %d", viewer, idx.Rev(viewer), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (f *fixture) inbox(t *testing.T, viewer string) []store.ConversationSummary {
	t.Helper()
	s, _, err := f.idx.Inbox(context.Background(), viewer)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestInboxFollowsMessages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if got := order(f.inbox(t, "alice")); len(got) != 3 || got[0] != "bob" || got[1] != "carol" || got[2] != "dave" {
		t.Fatalf("empty inbox order = %v, want alphabetical", got)
	}

	f.send(t, 10, "bob", "alice", "hi alice")
	f.send(t, 20, "carol", "alice", "hey")
	waitRev(t, f.idx, "alice", 2)

	got := f.inbox(t, "alice")
	if o := order(got); o[0] != "carol" || o[1] != "bob" || o[2] != "dave" {
		t.Fatalf("order = %v, want [carol bob dave]", o)
	}
	if got[0].LastMessage == nil || got[0].LastMessage.Content != "hey" {
		t.Errorf("carol last message = %+v", got[0].LastMessage)
	}
	if got[2].LastMessage != nil {
		t.Errorf("dave should have no last message, got %+v", got[2].LastMessage)
	}

	// Bob edits: the alice|bob conversation becomes the newest.
	m := f.send(t, 30, "alice", "bob", "reply")
	waitRev(t, f.idx, "alice", 3)
	f.clock.Set(40)
	if _, err := f.st.Edit(ctx, m.ConversationKey, m.ID, "alice", "reply, edited"); err != nil {
		t.Fatal(err)
	}
	waitRev(t, f.idx, "alice", 4)
	got = f.inbox(t, "alice")
	if got[0].Counterpart.ID != "bob" || got[0].LastMessage.Content != "reply, edited" {
		t.Errorf("after edit first = %+v / %+v", got[0].Counterpart, got[0].LastMessage)
	}

	// Deleting the last message falls back to the previous one.
	if _, err := f.st.Delete(ctx, m.ConversationKey, m.ID, "alice"); err != nil {
		t.Fatal(err)
	}
	waitRev(t, f.idx, "alice", 5)
	got = f.inbox(t, "alice")
	if o := order(got); o[0] != "carol" || o[1] != "bob" {
		t.Fatalf("after delete order = %v, want [carol bob dave]", o)
	}
	if got[1].LastMessage == nil || got[1].LastMessage.Content != "hi alice" {
		t.Errorf("bob last message after delete = %+v", got[1].LastMessage)
	}
}

func TestInboxUnreadCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	key := convkey.MustDerive("alice", "bob")

	f.send(t, 10, "bob", "alice", "one")
	for i := 0; i < 2; i++ {
		if _, err := f.st.IncrementUnread(ctx, key, "alice"); err != nil {
			t.Fatal(err)
		}
	}
	waitRev(t, f.idx, "alice", 3)

	got := f.inbox(t, "alice")
	if got[0].Counterpart.ID != "bob" || got[0].UnreadCount != 2 {
		t.Errorf("bob summary = %+v, want unread 2", got[0])
	}
	if got[1].UnreadCount != 0 {
		t.Errorf("carol unread = %d, want 0", got[1].UnreadCount)
	}

	// The sender's own inbox never counts their messages.
	for _, s := range f.inbox(t, "bob") {
		if s.UnreadCount != 0 {
			t.Errorf("bob inbox %s unread = %d, want 0", s.Counterpart.ID, s.UnreadCount)
		}
	}
}

func TestInboxRevisionAndEvents(t *testing.T) {
	f := newFixture(t)
	eb := f.idx.bus
	sub := eb.Subscribe(bus.KindInboxChanged, 16)
	defer sub.Close()

	f.send(t, 10, "bob", "carol", "hello")

	seen := map[string]bool{}
	for len(seen) < 2 {
		select {
		case evt := <-sub.C:
			seen[evt.Topic] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("inbox events = %v, want bob and carol", seen)
		}
	}
	if f.idx.Rev("alice") != 0 {
		t.Errorf("alice rev = %d, want 0 for an unrelated conversation", f.idx.Rev("alice"))
	}
}

func TestInboxRejectsInvalidViewer(t *testing.T) {
	f := newFixture(t)
	if _, _, err := f.idx.Inbox(context.Background(), ""); err == nil {
		t.Error("Inbox(\"\") should fail")
	}
}

// gatedStore blocks the first Last call after arm until release is closed.
type gatedStore struct {
	Store
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStore) arm() {
	g.entered = make(chan struct{})
	g.release = make(chan struct{})
	g.armed.Store(true)
}

func (g *gatedStore) Last(ctx context.Context, conversationKey string) (*store.Message, error) {
	if g.armed.CompareAndSwap(true, false) {
		close(g.entered)
		<-g.release
	}
	return g.Store.Last(ctx, conversationKey)
}

func TestInboxDuringRefreshReadsStore(t *testing.T) {
	gate := &gatedStore{}
	f := newWrappedFixture(t, func(s Store) Store {
		gate.Store = s
		return gate
	})

	gate.arm()
	t.Cleanup(func() {
		select {
		case <-gate.release:
		default:
			close(gate.release)
		}
	})
	f.send(t, 10, "bob", "alice", "first")
	select {
	case <-gate.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh never reached the store")
	}

	// The refresh is stuck loading alice|bob. Reads must not see an empty
	// conversation in the meantime.
	got := f.inbox(t, "alice")
	if got[0].Counterpart.ID != "bob" || got[0].LastMessage == nil || got[0].LastMessage.Content != "first" {
		t.Errorf("inbox during refresh first = %+v / %+v", got[0].Counterpart, got[0].LastMessage)
	}

	close(gate.release)
	waitRev(t, f.idx, "alice", 1)
	got = f.inbox(t, "alice")
	if got[0].LastMessage == nil || got[0].LastMessage.Content != "first" {
		t.Errorf("inbox after refresh = %+v", got[0].LastMessage)
	}
}
