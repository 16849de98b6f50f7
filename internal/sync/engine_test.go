package sync

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	gosync "sync"
	"testing"
	"time"

	"github.com/matheus3301/dmsync/internal/bus"
	"github.com/matheus3301/dmsync/internal/convkey"
	"github.com/matheus3301/dmsync/internal/index"
	"github.com/matheus3301/dmsync/internal/roster"
	"github.com/matheus3301/dmsync/internal/status"
	"github.com/matheus3301/dmsync/internal/store"
)

type fixture struct {
	engine *Engine
	store  *store.Publisher
	bus    *bus.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
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
	}, time.Minute, nil)
	idx := index.New(pub, dir, eb, nil)
	idx.Start(context.Background())
	t.Cleanup(idx.Stop)

	e := NewEngine(StoreLoader{Store: pub, Inbox: idx}, eb, nil, nil, Options{})
	e.Start(context.Background())
	t.Cleanup(e.Stop)
	return &fixture{engine: e, store: pub, bus: eb}
}

func (f *fixture) send(t *testing.T, from, to, content string) *store.Message {
	t.Helper()
	m, err := f.store.Append(context.Background(), store.NewMessage{SenderID: from, RecipientID: to, Content: content})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func recv(t *testing.T, sub *Subscription) Snapshot {
	t.Helper()
	select {
	case snap, ok := <-sub.C():
		if !ok {
			t.Fatalf("subscription closed: %v", sub.Err())
		}
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for snapshot")
	}
	return Snapshot{}
}

// recvUntil reads snapshots until done reports true.
func recvUntil(t *testing.T, sub *Subscription, done func(Snapshot) bool) Snapshot {
	t.Helper()
	for {
		if snap := recv(t, sub); done(snap) {
			return snap
		}
	}
}

func TestSnapshotBeforeDelta(t *testing.T) {
	f := newFixture(t)
	key := convkey.MustDerive("alice", "bob")
	for i := 1; i <= 3; i++ {
		f.send(t, "alice", "bob", fmt.Sprintf("message %d", i))
	}

	sub, err := f.engine.Subscribe(context.Background(), Conversation(key))
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Unsubscribe()

	first := recv(t, sub)
	if !first.Initial {
		t.Error("first snapshot not flagged initial")
	}
	if len(first.Messages) != 3 {
		t.Fatalf("initial snapshot has %d messages, want 3", len(first.Messages))
	}
	if sub.State() != status.Subscribed {
		t.Errorf("state = %s, want SUBSCRIBED", sub.State())
	}

	f.send(t, "bob", "alice", "message 4")
	next := recv(t, sub)
	if next.Initial {
		t.Error("delta flagged initial")
	}
	if len(next.Messages) != 4 || next.Messages[3].Content != "message 4" {
		t.Errorf("delta = %d messages, want 4 ending with the new one", len(next.Messages))
	}
	if next.Rev <= first.Rev {
		t.Errorf("rev %d -> %d, want increase", first.Rev, next.Rev)
	}
	if sub.State() != status.Delivering {
		t.Errorf("state = %s, want DELIVERING", sub.State())
	}
}

func TestRevisionsNeverGoBackwards(t *testing.T) {
	f := newFixture(t)
	key := convkey.MustDerive("alice", "bob")

	sub, err := f.engine.Subscribe(context.Background(), Conversation(key))
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Unsubscribe()

	const n = 20
	var wg gosync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			from, to := "alice", "bob"
			if i%2 == 1 {
				from, to = to, from
			}
			if _, err := f.store.Append(context.Background(), store.NewMessage{SenderID: from, RecipientID: to, Content: "hi"}); err != nil {
				t.Error(err)
			}
		}(i)
	}

	lastRev := int64(-1)
	lastCount := -1
	for {
		snap := recv(t, sub)
		if snap.Rev <= lastRev {
			t.Fatalf("rev went from %d to %d", lastRev, snap.Rev)
		}
		if len(snap.Messages) < lastCount {
			t.Fatalf("message count went from %d to %d", lastCount, len(snap.Messages))
		}
		lastRev, lastCount = snap.Rev, len(snap.Messages)
		if lastCount == n {
			break
		}
	}
	wg.Wait()
}

func TestSlowSubscriberGetsLatest(t *testing.T) {
	f := newFixture(t)
	key := convkey.MustDerive("alice", "bob")

	sub, err := f.engine.Subscribe(context.Background(), Conversation(key))
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Unsubscribe()

	// Nothing is read while five messages land.
	for i := 0; i < 5; i++ {
		f.send(t, "alice", "bob", "x")
	}

	first := recv(t, sub)
	if !first.Initial {
		t.Error("replacement of an unread initial snapshot must stay initial")
	}
	if len(first.Messages) < 5 {
		recvUntil(t, sub, func(s Snapshot) bool { return len(s.Messages) == 5 })
	}
}

func TestUnsubscribeIsSynchronous(t *testing.T) {
	f := newFixture(t)
	key := convkey.MustDerive("alice", "bob")

	sub, err := f.engine.Subscribe(context.Background(), Conversation(key))
	if err != nil {
		t.Fatal(err)
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				_, _ = f.store.Append(context.Background(), store.NewMessage{SenderID: "alice", RecipientID: "bob", Content: "spam"})
			}
		}
	}()

	recv(t, sub)
	sub.Unsubscribe()

	for i := 0; i < 3; i++ {
		if _, ok := <-sub.C(); ok {
			t.Fatal("snapshot received after Unsubscribe returned")
		}
		time.Sleep(10 * time.Millisecond)
	}
	close(stop)
	<-done

	if sub.State() != status.Unsubscribed {
		t.Errorf("state = %s, want UNSUBSCRIBED", sub.State())
	}
	if sub.Err() != nil {
		t.Errorf("Err() = %v after Unsubscribe, want nil", sub.Err())
	}
	if n := f.engine.Active(); n != 0 {
		t.Errorf("Active() = %d, want 0", n)
	}
	sub.Unsubscribe()
}

func TestContextEndsSubscription(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := f.engine.Subscribe(ctx, PresenceOf("alice"))
	if err != nil {
		t.Fatal(err)
	}
	recv(t, sub)
	cancel()

	select {
	case _, ok := <-sub.C():
		if ok {
			t.Fatal("unexpected snapshot after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("subscription not closed after context cancel")
	}
}

func TestUnreadAndPresenceNamespaces(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	key := convkey.MustDerive("alice", "bob")

	unread, err := f.engine.Subscribe(ctx, UnreadOf("bob"))
	if err != nil {
		t.Fatal(err)
	}
	defer unread.Unsubscribe()
	if snap := recv(t, unread); len(snap.Unread) != 0 {
		t.Errorf("initial unread = %v, want empty", snap.Unread)
	}
	if _, err := f.store.IncrementUnread(ctx, key, "bob"); err != nil {
		t.Fatal(err)
	}
	if snap := recv(t, unread); snap.Unread["alice"] != 1 {
		t.Errorf("unread = %v, want alice:1", snap.Unread)
	}

	presence, err := f.engine.Subscribe(ctx, PresenceOf("alice"))
	if err != nil {
		t.Fatal(err)
	}
	defer presence.Unsubscribe()
	if snap := recv(t, presence); snap.Online {
		t.Error("alice initially online")
	}
	if err := f.store.SetPresence(ctx, "alice", true); err != nil {
		t.Fatal(err)
	}
	if snap := recv(t, presence); !snap.Online {
		t.Error("presence snapshot not online after SetPresence(true)")
	}
}

func TestInboxNamespace(t *testing.T) {
	f := newFixture(t)

	sub, err := f.engine.Subscribe(context.Background(), InboxOf("alice"))
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Unsubscribe()

	first := recv(t, sub)
	if len(first.Inbox) != 1 || first.Inbox[0].LastMessage != nil {
		t.Fatalf("initial inbox = %+v, want bob with no message", first.Inbox)
	}

	f.send(t, "bob", "alice", "ping")
	snap := recvUntil(t, sub, func(s Snapshot) bool {
		return len(s.Inbox) == 1 && s.Inbox[0].LastMessage != nil
	})
	if snap.Inbox[0].LastMessage.Content != "ping" {
		t.Errorf("inbox last message = %+v", snap.Inbox[0].LastMessage)
	}
}

func TestSubscribeValidates(t *testing.T) {
	f := newFixture(t)
	for _, ns := range []Namespace{
		{Kind: "bogus", Key: "alice"},
		Conversation("alice|alice"),
		Conversation("not-a-key"),
		UnreadOf(""),
	} {
		if _, err := f.engine.Subscribe(context.Background(), ns); err == nil {
			t.Errorf("Subscribe(%s) should fail", ns)
		}
	}
}

type flakyLoader struct {
	mu        gosync.Mutex
	calls     int
	failAfter int
}

func (l *flakyLoader) Load(ctx context.Context, ns Namespace) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.calls > l.failAfter {
		return Snapshot{}, errors.New("store unavailable")
	}
	return Snapshot{Rev: int64(l.calls)}, nil
}

func TestRepeatedLoadFailuresDisconnect(t *testing.T) {
	eb := bus.New()
	e := NewEngine(&flakyLoader{failAfter: 1}, eb, nil, nil, Options{MaxLoadFailures: 2, RetryBackoff: time.Millisecond})
	e.Start(context.Background())
	defer e.Stop()

	sub, err := e.Subscribe(context.Background(), PresenceOf("alice"))
	if err != nil {
		t.Fatal(err)
	}
	recv(t, sub)

	eb.Publish(bus.Event{Kind: bus.KindPresenceChanged, Topic: "alice"})

	select {
	case _, ok := <-sub.C():
		if ok {
			t.Fatal("unexpected snapshot from failing loader")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("subscription not disconnected")
	}
	if sub.State() != status.DisconnectedOnError {
		t.Errorf("state = %s, want DISCONNECTED_ON_ERROR", sub.State())
	}
	if sub.Err() == nil {
		t.Error("Err() = nil after disconnect")
	}
	if e.Active() != 0 {
		t.Errorf("Active() = %d, want 0", e.Active())
	}
}

func TestInitialLoadFailure(t *testing.T) {
	e := NewEngine(&flakyLoader{failAfter: 0}, bus.New(), nil, nil, Options{})
	e.Start(context.Background())
	defer e.Stop()

	if _, err := e.Subscribe(context.Background(), PresenceOf("alice")); err == nil {
		t.Fatal("Subscribe() should fail when the first load fails")
	}
	if e.Active() != 0 {
		t.Errorf("Active() = %d, want 0", e.Active())
	}
}

func TestStopClosesSubscriptions(t *testing.T) {
	e := NewEngine(&flakyLoader{failAfter: 100}, bus.New(), nil, nil, Options{})
	e.Start(context.Background())

	sub, err := e.Subscribe(context.Background(), InboxOf("alice"))
	if err != nil {
		t.Fatal(err)
	}
	recv(t, sub)
	e.Stop()

	if _, ok := <-sub.C(); ok {
		t.Error("snapshot received after Stop")
	}
	if !errors.Is(sub.Err(), ErrStopped) {
		t.Errorf("Err() = %v, want ErrStopped", sub.Err())
	}
	if _, err := e.Subscribe(context.Background(), InboxOf("alice")); !errors.Is(err, ErrStopped) {
		t.Errorf("Subscribe after Stop error = %v, want ErrStopped", err)
	}
}

func TestNamespace(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		viewer  string
		visible bool
	}{
		{"conv:alice|bob", false, "alice", true},
		{"conv:alice|bob", false, "carol", false},
		{"conv:bob|alice", true, "", false},
		{"unread:bob", false, "bob", true},
		{"unread:bob", false, "alice", false},
		{"inbox:alice", false, "alice", true},
		{"presence:alice", false, "bob", true},
		{"presence", true, "", false},
		{"typing:alice", true, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in+"/"+tt.viewer, func(t *testing.T) {
			ns, err := ParseNamespace(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNamespace(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if ns.String() != tt.in {
				t.Errorf("String() = %q, want %q", ns.String(), tt.in)
			}
			if got := ns.VisibleTo(tt.viewer); got != tt.visible {
				t.Errorf("VisibleTo(%q) = %v, want %v", tt.viewer, got, tt.visible)
			}
		})
	}
}
