package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matheus3301/dmsync/internal/bus"
	"github.com/matheus3301/dmsync/internal/chat"
	"github.com/matheus3301/dmsync/internal/convkey"
	"github.com/matheus3301/dmsync/internal/index"
	"github.com/matheus3301/dmsync/internal/metrics"
	"github.com/matheus3301/dmsync/internal/presence"
	"github.com/matheus3301/dmsync/internal/roster"
	"github.com/matheus3301/dmsync/internal/store"
	"github.com/matheus3301/dmsync/internal/sync"
	"github.com/matheus3301/dmsync/internal/unread"
)

type fixture struct {
	gw   *Gateway
	chat *chat.Service
	srv  *httptest.Server
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

	m := metrics.New()
	eb := bus.New()
	pub := store.NewPublisher(db, eb)
	people := roster.NewCached(roster.Static{
		{ID: "alice", DisplayName: "Alice"},
		{ID: "bob", DisplayName: "Bob"},
	}, time.Minute, nil)
	idx := index.New(pub, people, eb, nil)
	idx.Start(context.Background())
	t.Cleanup(idx.Stop)
	engine := sync.NewEngine(sync.StoreLoader{Store: pub, Inbox: idx}, eb, nil, m, sync.Options{})
	engine.Start(context.Background())
	t.Cleanup(engine.Stop)
	tracker := presence.NewTracker(pub, nil, m)

	c := chat.NewService(pub, unread.NewCounter(pub, nil, m), tracker, idx, engine, people,
		chat.Limits{RPS: 1000, Burst: 1000}, nil, m)
	gw := New(c, m, nil)
	srv := httptest.NewServer(gw.Handler())
	t.Cleanup(func() {
		srv.Close()
		tracker.Wait()
	})
	return &fixture{gw: gw, chat: c, srv: srv}
}

func (f *fixture) dial(t *testing.T, user string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/v1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{UserHeader: {user}})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if got := read(t, conn); got.Type != frameSession {
		t.Fatalf("first frame = %+v, want session", got)
	}
	return conn
}

// wireFrame mirrors frame with the snapshot kept raw for decoding.
type wireFrame struct {
	Type     string          `json:"type"`
	ID       string          `json:"id"`
	Sub      string          `json:"sub"`
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Snapshot *sync.Snapshot  `json:"snapshot"`
}

func read(t *testing.T, conn *websocket.Conn) wireFrame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var f wireFrame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return f
}

// readUntil skips frames until match accepts one.
func readUntil(t *testing.T, conn *websocket.Conn, match func(wireFrame) bool) wireFrame {
	t.Helper()
	for {
		if f := read(t, conn); match(f) {
			return f
		}
	}
}

func write(t *testing.T, conn *websocket.Conn, req request) {
	t.Helper()
	if err := conn.WriteJSON(req); err != nil {
		t.Fatal(err)
	}
}

func byID(id string) func(wireFrame) bool {
	return func(f wireFrame) bool { return f.ID == id }
}

func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestOpenThenLiveDelta(t *testing.T) {
	f := newFixture(t)
	alice, bob := f.dial(t, "alice"), f.dial(t, "bob")

	write(t, alice, request{Type: opSend, ID: "1", To: "bob", Content: "hi bob"})
	if res := readUntil(t, alice, byID("1")); res.Type != frameResult {
		t.Fatalf("send reply = %+v", res)
	}

	write(t, bob, request{Type: opOpen, ID: "2", Counterpart: "alice"})
	res := readUntil(t, bob, byID("2"))
	if res.Type != frameResult || res.Sub == "" {
		t.Fatalf("open reply = %+v", res)
	}
	first := readUntil(t, bob, func(f wireFrame) bool { return f.Type == frameSnapshot })
	if first.Sub != res.Sub || !first.Snapshot.Initial || len(first.Snapshot.Messages) != 1 {
		t.Fatalf("initial snapshot = %+v", first)
	}

	write(t, alice, request{Type: opSend, ID: "3", To: "bob", Content: "again"})
	next := readUntil(t, bob, func(f wireFrame) bool { return f.Type == frameSnapshot })
	if next.Snapshot.Initial || len(next.Snapshot.Messages) != 2 {
		t.Errorf("delta = %+v", next.Snapshot)
	}

	write(t, bob, request{Type: opUnwatch, ID: "4", Sub: res.Sub})
	closed := readUntil(t, bob, func(f wireFrame) bool { return f.Type == frameClosed })
	if closed.Sub != res.Sub || closed.Code != "" {
		t.Errorf("closed frame = %+v", closed)
	}
	if got := read(t, bob); got.ID != "4" || got.Type != frameResult {
		t.Errorf("frame after closed = %+v, want unwatch result", got)
	}
}

func TestUnwatchResultIsLastFrameOfSubscription(t *testing.T) {
	f := newFixture(t)
	alice, bob := f.dial(t, "alice"), f.dial(t, "bob")

	write(t, bob, request{Type: opWatch, ID: "w", Namespace: sync.Conversation(convkey.MustDerive("alice", "bob")).String()})
	res := readUntil(t, bob, byID("w"))
	if res.Type != frameResult {
		t.Fatalf("watch reply = %+v", res)
	}

	// Keep the subscription busy while it is being removed.
	for i := 0; i < 20; i++ {
		write(t, alice, request{Type: opSend, ID: "s", To: "bob", Content: "burst"})
	}
	write(t, bob, request{Type: opUnwatch, ID: "u", Sub: res.Sub})
	readUntil(t, bob, byID("u"))

	write(t, bob, request{Type: opInbox, ID: "after"})
	for {
		got := read(t, bob)
		if got.ID == "after" {
			break
		}
		if got.Sub == res.Sub {
			t.Fatalf("frame %+v for subscription after its unwatch result", got)
		}
	}
}

func TestErrorFrames(t *testing.T) {
	f := newFixture(t)
	alice, bob := f.dial(t, "alice"), f.dial(t, "bob")

	write(t, alice, request{Type: opSend, ID: "1", To: "bob", Content: "mine"})
	res := readUntil(t, alice, byID("1"))
	var m store.Message
	if err := json.Unmarshal(res.Data, &m); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		req  request
		code string
	}{
		{request{Type: opSend, ID: "a", To: "alice", Content: "   "}, "validation"},
		{request{Type: opEdit, ID: "b", MessageID: m.ID, Content: "stolen"}, "permission_denied"},
		{request{Type: opDelete, ID: "c", MessageID: "gone"}, "not_found"},
		{request{Type: opWatch, ID: "d", Namespace: "unread:alice"}, "permission_denied"},
		{request{Type: opWatch, ID: "e", Namespace: "bogus"}, "validation"},
		{request{Type: "dance", ID: "f"}, "validation"},
	}
	for _, tt := range tests {
		write(t, bob, tt.req)
		got := readUntil(t, bob, byID(tt.req.ID))
		if got.Type != frameError || got.Code != tt.code {
			t.Errorf("%s reply = %+v, want %s error", tt.req.Type, got, tt.code)
		}
	}

	if err := bob.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if got := readUntil(t, bob, func(f wireFrame) bool { return f.Type == frameError }); got.Code != "validation" {
		t.Errorf("malformed frame reply = %+v", got)
	}
}

func TestPresenceFollowsConnection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	online := func(want bool) func() bool {
		return func() bool {
			ok, err := f.chat.Online(ctx, "alice")
			return err == nil && ok == want
		}
	}

	conn := f.dial(t, "alice")
	eventually(t, "online", online(true))
	write(t, conn, request{Type: opSignOff})
	eventually(t, "offline after sign-off", online(false))

	conn = f.dial(t, "alice")
	eventually(t, "online again", online(true))
	_ = conn.UnderlyingConn().Close()
	eventually(t, "offline after drop", online(false))
}

func TestMissingUserRejected(t *testing.T) {
	f := newFixture(t)
	url := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/v1/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("dial without user should fail")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("response = %v, want 401", resp)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("healthz before ready = %d", resp.StatusCode)
	}
	f.gw.SetReady(true)
	resp, err = http.Get(f.srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz when ready = %d", resp.StatusCode)
	}

	if _, err := f.chat.Send(context.Background(), "alice", "bob", "count me"); err != nil {
		t.Fatal(err)
	}
	resp, err = http.Get(f.srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(body), `dmsync_operations_total{op="send",result="ok"} 1`) {
		t.Errorf("metrics missing send counter:\n%s", body)
	}
}

func TestShutdownDropsSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.dial(t, "alice")
	eventually(t, "online", func() bool {
		ok, _ := f.chat.Online(ctx, "alice")
		return ok
	})

	shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := f.gw.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	eventually(t, "offline after shutdown", func() bool {
		ok, err := f.chat.Online(ctx, "alice")
		return err == nil && !ok
	})
}
