// Package storetest is a conformance suite every store.Backend must pass.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/convkey"
	"github.com/matheus3301/dmsync/internal/store"
)

// Factory opens a fresh, empty backend stamped by clock.
type Factory func(t *testing.T, clock store.Clock) store.Backend

// Run executes the suite against backends produced by open.
func Run(t *testing.T, open Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, open Factory)
	}{
		{"AppendAndList", testAppendAndList},
		{"AppendRejectsInvalid", testAppendRejectsInvalid},
		{"SameTimestampKeepsInsertionOrder", testSameTimestampOrder},
		{"EditReordersToNewest", testEditReorders},
		{"EditAlwaysLater", testEditAlwaysLater},
		{"AppendAfterEditInSameMillisecond", testAppendAfterEdit},
		{"EditAfterEditInSameMillisecond", testEditAfterEdit},
		{"EditPermissionDenied", testEditPermissionDenied},
		{"EditDeleteNotFound", testNotFound},
		{"DeleteRemoves", testDeleteRemoves},
		{"RevisionAdvances", testRevisionAdvances},
		{"UnreadIncrementAndReset", testUnread},
		{"ConcurrentIncrementsNotLost", testConcurrentIncrements},
		{"Presence", testPresence},
		{"Last", testLast},
		{"CancelledContext", testCancelledContext},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) { tt.fn(t, open) })
	}
}

var ctx = context.Background()

func send(t *testing.T, b store.Backend, from, to, content string) *store.Message {
	t.Helper()
	m, err := b.Append(ctx, store.NewMessage{SenderID: from, SenderName: from, RecipientID: to, Content: content})
	if err != nil {
		t.Fatalf("Append(%s -> %s, %q) error = %v", from, to, content, err)
	}
	return m
}

func list(t *testing.T, b store.Backend, key string) []store.Message {
	t.Helper()
	msgs, _, err := b.List(ctx, key)
	if err != nil {
		t.Fatalf("List(%s) error = %v", key, err)
	}
	return msgs
}

func ids(msgs []store.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.ID
	}
	return out
}

func equalIDs(got []store.Message, want ...string) bool {
	g := ids(got)
	if len(g) != len(want) {
		return false
	}
	for i := range g {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func testAppendAndList(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(1000))
	m := send(t, b, "alice", "bob", "  hi  ")

	key := convkey.MustDerive("alice", "bob")
	if m.ID == "" || m.ConversationKey != key {
		t.Fatalf("appended = %+v, want id and key %s", m, key)
	}
	if m.Timestamp != 1000 {
		t.Errorf("timestamp = %d, want server clock 1000", m.Timestamp)
	}

	msgs := list(t, b, key)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	got := msgs[0]
	if got.Content != "hi" || got.Edited {
		t.Errorf("listed = %+v, want content=hi edited=false", got)
	}
	if got.SenderID != "alice" || got.RecipientID != "bob" || got.SenderName != "alice" {
		t.Errorf("listed participants = %s -> %s (%s)", got.SenderID, got.RecipientID, got.SenderName)
	}

	// Both participants see the same log.
	if other := list(t, b, convkey.MustDerive("bob", "alice")); len(other) != 1 {
		t.Errorf("reverse key listed %d messages, want 1", len(other))
	}
}

func testAppendRejectsInvalid(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(1))
	bad := []store.NewMessage{
		{SenderID: "alice", RecipientID: "bob", Content: ""},
		{SenderID: "alice", RecipientID: "bob", Content: " \n\t "},
		{SenderID: "alice", RecipientID: "alice", Content: "me"},
		{SenderID: "alice", RecipientID: "bob", Content: "x", ConversationKey: "alice|carol"},
	}
	for _, nm := range bad {
		if _, err := b.Append(ctx, nm); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("Append(%+v) error = %v, want ErrValidation", nm, err)
		}
	}
	if msgs := list(t, b, convkey.MustDerive("alice", "bob")); len(msgs) != 0 {
		t.Errorf("rejected appends persisted %d messages", len(msgs))
	}
}

func testSameTimestampOrder(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(50))
	var want []string
	for i, c := range []string{"one", "two", "three", "four"} {
		from, to := "alice", "bob"
		if i%2 == 1 {
			from, to = to, from
		}
		want = append(want, send(t, b, from, to, c).ID)
	}
	got := list(t, b, convkey.MustDerive("alice", "bob"))
	if !equalIDs(got, want...) {
		t.Errorf("order = %v, want insertion order %v", ids(got), want)
	}
}

func testEditReorders(t *testing.T, open Factory) {
	clock := store.NewManualClock(1)
	b := open(t, clock)
	m1 := send(t, b, "alice", "bob", "first")
	clock.Set(2)
	m2 := send(t, b, "alice", "bob", "second")

	clock.Set(3)
	edited, err := b.Edit(ctx, m1.ConversationKey, m1.ID, "alice", "first, fixed")
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if edited.ID != m1.ID || !edited.Edited || edited.Timestamp != 3 || edited.Content != "first, fixed" {
		t.Errorf("edited = %+v, want same id, edited, t=3", edited)
	}

	got := list(t, b, m1.ConversationKey)
	if !equalIDs(got, m2.ID, m1.ID) {
		t.Errorf("order = %v, want [M2 M1]", ids(got))
	}
}

func testEditAlwaysLater(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(500))
	m := send(t, b, "alice", "bob", "hello")
	other := send(t, b, "bob", "alice", "hey")

	edited, err := b.Edit(ctx, m.ConversationKey, m.ID, "alice", "hello!")
	if err != nil {
		t.Fatal(err)
	}
	if edited.Timestamp <= m.Timestamp {
		t.Errorf("edit timestamp %d not after original %d", edited.Timestamp, m.Timestamp)
	}
	got := list(t, b, m.ConversationKey)
	if !equalIDs(got, other.ID, m.ID) {
		t.Errorf("order = %v, want edited message last", ids(got))
	}
}

func testAppendAfterEdit(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(500))
	m := send(t, b, "alice", "bob", "hello")
	edited, err := b.Edit(ctx, m.ConversationKey, m.ID, "alice", "hello!")
	if err != nil {
		t.Fatal(err)
	}
	if edited.Timestamp != 501 {
		t.Fatalf("edit timestamp = %d, want 501", edited.Timestamp)
	}

	// The clock has not caught up with the edit yet.
	reply := send(t, b, "bob", "alice", "hi")
	if reply.Timestamp < edited.Timestamp {
		t.Errorf("append timestamp %d before edit %d", reply.Timestamp, edited.Timestamp)
	}
	got := list(t, b, m.ConversationKey)
	if !equalIDs(got, m.ID, reply.ID) {
		t.Errorf("order = %v, want [edited reply]", ids(got))
	}
	if last, err := b.Last(ctx, m.ConversationKey); err != nil || last == nil || last.ID != reply.ID {
		t.Errorf("Last() = %+v, %v, want reply", last, err)
	}
}

func testEditAfterEdit(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(500))
	m1 := send(t, b, "alice", "bob", "one")
	m2 := send(t, b, "alice", "bob", "two")
	if _, err := b.Edit(ctx, m1.ConversationKey, m1.ID, "alice", "one!"); err != nil {
		t.Fatal(err)
	}
	e2, err := b.Edit(ctx, m2.ConversationKey, m2.ID, "alice", "two!")
	if err != nil {
		t.Fatal(err)
	}
	got := list(t, b, m1.ConversationKey)
	if !equalIDs(got, m1.ID, m2.ID) || got[1].Timestamp != e2.Timestamp {
		t.Errorf("order = %v, want most recent edit last", ids(got))
	}
}

func testEditPermissionDenied(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(10))
	m := send(t, b, "alice", "bob", "mine")

	if _, err := b.Edit(ctx, m.ConversationKey, m.ID, "bob", "hijack"); !errors.Is(err, apperr.ErrPermissionDenied) {
		t.Errorf("Edit by recipient error = %v, want ErrPermissionDenied", err)
	}
	if _, err := b.Delete(ctx, m.ConversationKey, m.ID, "bob"); !errors.Is(err, apperr.ErrPermissionDenied) {
		t.Errorf("Delete by recipient error = %v, want ErrPermissionDenied", err)
	}

	got, err := b.Get(ctx, m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != "mine" || got.Edited || got.Timestamp != m.Timestamp {
		t.Errorf("message changed after denied ops: %+v", got)
	}
}

func testNotFound(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(10))
	m := send(t, b, "alice", "bob", "hi")
	key := m.ConversationKey

	if _, err := b.Edit(ctx, key, "missing", "alice", "x"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Edit(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := b.Delete(ctx, key, "missing", "alice"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := b.Get(ctx, "missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
	// An id from another conversation is not found in this one.
	if _, err := b.Edit(ctx, convkey.MustDerive("alice", "carol"), m.ID, "alice", "x"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Edit(wrong conversation) error = %v, want ErrNotFound", err)
	}
}

func testDeleteRemoves(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(10))
	m1 := send(t, b, "alice", "bob", "one")
	m2 := send(t, b, "bob", "alice", "two")
	m3 := send(t, b, "alice", "bob", "three")

	before := list(t, b, m1.ConversationKey)
	deleted, err := b.Delete(ctx, m1.ConversationKey, m3.ID, "alice")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.ID != m3.ID {
		t.Errorf("deleted id = %s, want %s", deleted.ID, m3.ID)
	}

	after := list(t, b, m1.ConversationKey)
	if len(after) != len(before)-1 {
		t.Errorf("count %d -> %d, want decrease by one", len(before), len(after))
	}
	if !equalIDs(after, m1.ID, m2.ID) {
		t.Errorf("order = %v, want [M1 M2]", ids(after))
	}
	if _, err := b.Get(ctx, m3.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrNotFound", err)
	}
	// Deleting twice reports the message as gone.
	if _, err := b.Delete(ctx, m1.ConversationKey, m3.ID, "alice"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}

func testRevisionAdvances(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(10))
	key := convkey.MustDerive("alice", "bob")

	_, rev0, err := b.List(ctx, key)
	if err != nil {
		t.Fatal(err)
	}
	m := send(t, b, "alice", "bob", "one")
	_, rev1, _ := b.List(ctx, key)
	if _, err := b.Edit(ctx, key, m.ID, "alice", "uno"); err != nil {
		t.Fatal(err)
	}
	_, rev2, _ := b.List(ctx, key)
	if _, err := b.Delete(ctx, key, m.ID, "alice"); err != nil {
		t.Fatal(err)
	}
	_, rev3, _ := b.List(ctx, key)

	if !(rev0 < rev1 && rev1 < rev2 && rev2 < rev3) {
		t.Errorf("revisions = %d %d %d %d, want strictly increasing", rev0, rev1, rev2, rev3)
	}

	// Other conversations keep their own revision.
	_, other, _ := b.List(ctx, convkey.MustDerive("alice", "carol"))
	if other != 0 {
		t.Errorf("untouched conversation rev = %d, want 0", other)
	}
}

func testUnread(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(10))
	key := convkey.MustDerive("alice", "bob")

	for i := 1; i <= 3; i++ {
		n, err := b.IncrementUnread(ctx, key, "bob")
		if err != nil {
			t.Fatal(err)
		}
		if n != i {
			t.Errorf("IncrementUnread #%d = %d", i, n)
		}
	}
	if n, _ := b.Unread(ctx, key, "bob"); n != 3 {
		t.Errorf("Unread(bob) = %d, want 3", n)
	}
	if n, _ := b.Unread(ctx, key, "alice"); n != 0 {
		t.Errorf("Unread(alice) = %d, want 0", n)
	}

	if _, err := b.IncrementUnread(ctx, convkey.MustDerive("bob", "carol"), "bob"); err != nil {
		t.Fatal(err)
	}
	counts, rev, err := b.UnreadForUser(ctx, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if counts["alice"] != 3 || counts["carol"] != 1 || len(counts) != 2 {
		t.Errorf("UnreadForUser(bob) = %v, want alice:3 carol:1", counts)
	}

	if err := b.ResetUnread(ctx, key, "bob"); err != nil {
		t.Fatal(err)
	}
	if n, _ := b.Unread(ctx, key, "bob"); n != 0 {
		t.Errorf("Unread after reset = %d, want 0", n)
	}
	counts, rev2, _ := b.UnreadForUser(ctx, "bob")
	if counts["alice"] != 0 || counts["carol"] != 1 {
		t.Errorf("UnreadForUser after reset = %v", counts)
	}
	if rev2 <= rev {
		t.Errorf("unread rev %d -> %d, want increase", rev, rev2)
	}

	if _, err := b.IncrementUnread(ctx, key, "carol"); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("IncrementUnread(non-participant) error = %v, want ErrValidation", err)
	}
}

func testConcurrentIncrements(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(10))
	key := convkey.MustDerive("alice", "bob")

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := b.IncrementUnread(ctx, key, "bob"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("IncrementUnread error = %v", err)
	}

	got, err := b.Unread(ctx, key, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if got != n {
		t.Errorf("Unread = %d after %d concurrent increments", got, n)
	}
}

func testPresence(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(10))

	online, rev0, err := b.Presence(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if online {
		t.Error("unknown user reported online")
	}
	if err := b.SetPresence(ctx, "alice", true); err != nil {
		t.Fatal(err)
	}
	online, rev1, _ := b.Presence(ctx, "alice")
	if !online {
		t.Error("Presence after SetPresence(true) = false")
	}
	// Racing offline writes are both accepted.
	if err := b.SetPresence(ctx, "alice", false); err != nil {
		t.Fatal(err)
	}
	if err := b.SetPresence(ctx, "alice", false); err != nil {
		t.Fatal(err)
	}
	online, rev2, _ := b.Presence(ctx, "alice")
	if online {
		t.Error("Presence after SetPresence(false) = true")
	}
	if !(rev0 < rev1 && rev1 < rev2) {
		t.Errorf("presence revs = %d %d %d, want increasing", rev0, rev1, rev2)
	}
}

func testLast(t *testing.T, open Factory) {
	clock := store.NewManualClock(10)
	b := open(t, clock)
	key := convkey.MustDerive("alice", "bob")

	if m, err := b.Last(ctx, key); err != nil || m != nil {
		t.Fatalf("Last(empty) = %v, %v; want nil, nil", m, err)
	}
	m1 := send(t, b, "alice", "bob", "one")
	clock.Set(20)
	m2 := send(t, b, "bob", "alice", "two")

	last, err := b.Last(ctx, key)
	if err != nil || last == nil || last.ID != m2.ID {
		t.Fatalf("Last = %v, %v; want %s", last, err, m2.ID)
	}
	clock.Set(30)
	if _, err := b.Edit(ctx, key, m1.ID, "alice", "one!"); err != nil {
		t.Fatal(err)
	}
	if last, _ := b.Last(ctx, key); last == nil || last.ID != m1.ID {
		t.Errorf("Last after edit = %v, want %s", last, m1.ID)
	}
}

func testCancelledContext(t *testing.T, open Factory) {
	b := open(t, store.NewManualClock(10))
	m := send(t, b, "alice", "bob", "hi")

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	if _, _, err := b.List(cctx, m.ConversationKey); err == nil {
		t.Error("List() with cancelled context error = nil")
	}
	if _, _, err := b.UnreadForUser(cctx, "bob"); err == nil {
		t.Error("UnreadForUser() with cancelled context error = nil")
	}
	if _, _, err := b.Presence(cctx, "alice"); err == nil {
		t.Error("Presence() with cancelled context error = nil")
	}
}
