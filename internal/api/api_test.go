package api

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	dmsyncv1 "github.com/matheus3301/dmsync/gen/dmsync/v1"
	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/bus"
	"github.com/matheus3301/dmsync/internal/chat"
	"github.com/matheus3301/dmsync/internal/convkey"
	"github.com/matheus3301/dmsync/internal/index"
	"github.com/matheus3301/dmsync/internal/presence"
	"github.com/matheus3301/dmsync/internal/roster"
	"github.com/matheus3301/dmsync/internal/status"
	"github.com/matheus3301/dmsync/internal/store"
	"github.com/matheus3301/dmsync/internal/sync"
	"github.com/matheus3301/dmsync/internal/unread"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

type testServer struct {
	socket  string
	service *chat.Service
}

func startServer(t *testing.T) *testServer {
	t.Helper()
	// Short path to stay under the 104-char unix socket limit on macOS.
	dir, err := os.MkdirTemp("/tmp", "dmsync-api-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	db, err := store.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	eb := bus.New()
	pub := store.NewPublisher(db, eb)
	people := roster.NewCached(roster.Static{
		{ID: "alice", DisplayName: "Alice"},
		{ID: "bob", DisplayName: "Bob"},
		{ID: "carol", DisplayName: "Carol"},
	}, time.Minute, nil)
	idx := index.New(pub, people, eb, nil)
	idx.Start(context.Background())
	t.Cleanup(idx.Stop)
	engine := sync.NewEngine(sync.StoreLoader{Store: pub, Inbox: idx}, eb, nil, nil, sync.Options{})
	engine.Start(context.Background())
	t.Cleanup(engine.Stop)
	tracker := presence.NewTracker(pub, nil, nil)

	svc := chat.NewService(pub, unread.NewCounter(pub, nil, nil), tracker, idx, engine, people,
		chat.Limits{RPS: 1000, Burst: 1000}, nil, nil)
	machine := status.NewMachine(status.Ready, status.DaemonTransitions, nil)

	socket := filepath.Join(dir, "d.sock")
	lis, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatal(err)
	}
	srv := grpc.NewServer(ServerOptions(zap.NewNop())...)
	dmsyncv1.RegisterMessagingServer(srv, NewService(svc, engine, machine, Info{Instance: "test", Backend: "sqlite"}, nil))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() {
		srv.Stop()
		tracker.Wait()
	})
	return &testServer{socket: socket, service: svc}
}

func (ts *testServer) client(t *testing.T, user string) *Client {
	t.Helper()
	c, err := Dial(ts.socket, user)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func recvSnap(t *testing.T, s *SnapshotStream) sync.Snapshot {
	t.Helper()
	type result struct {
		snap sync.Snapshot
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		snap, err := s.Recv()
		ch <- result{snap, err}
	}()
	select {
	case r := <-ch:
		if r.err != nil {
			t.Fatalf("Recv() error = %v", r.err)
		}
		return r.snap
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for snapshot")
	}
	return sync.Snapshot{}
}

func TestSendHistoryAndUnread(t *testing.T) {
	ts := startServer(t)
	ctx := context.Background()
	alice, bob := ts.client(t, "alice"), ts.client(t, "bob")

	m, err := alice.Send(ctx, "bob", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if m.SenderID != "alice" || m.ConversationKey != convkey.MustDerive("alice", "bob") {
		t.Errorf("message = %+v", m)
	}

	msgs, err := bob.History(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].ID != m.ID {
		t.Errorf("History() = %+v", msgs)
	}
	if n, err := bob.Unread(ctx, "alice"); err != nil || n != 1 {
		t.Errorf("Unread() = %d, %v; want 1", n, err)
	}
	if err := bob.MarkRead(ctx, "alice"); err != nil {
		t.Fatal(err)
	}
	counts, err := bob.UnreadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if counts["alice"] != 0 {
		t.Errorf("UnreadAll() after MarkRead = %v", counts)
	}

	edited, err := alice.Edit(ctx, m.ID, "hello again")
	if err != nil {
		t.Fatal(err)
	}
	if !edited.Edited || edited.Content != "hello again" {
		t.Errorf("Edit() = %+v", edited)
	}
	if _, err := alice.Delete(ctx, m.ID); err != nil {
		t.Fatal(err)
	}
	if msgs, _ := bob.History(ctx, "alice"); len(msgs) != 0 {
		t.Errorf("History() after delete = %+v", msgs)
	}
}

func TestErrorCodes(t *testing.T) {
	ts := startServer(t)
	ctx := context.Background()
	alice, bob := ts.client(t, "alice"), ts.client(t, "bob")

	m, err := alice.Send(ctx, "bob", "mine")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		call     func() error
		code     codes.Code
		sentinel error
	}{
		{"empty content", func() error { _, err := alice.Send(ctx, "bob", " "); return err }, codes.InvalidArgument, apperr.ErrValidation},
		{"self conversation", func() error { _, err := alice.Send(ctx, "alice", "hi"); return err }, codes.InvalidArgument, apperr.ErrValidation},
		{"edit others", func() error { _, err := bob.Edit(ctx, m.ID, "x"); return err }, codes.PermissionDenied, apperr.ErrPermissionDenied},
		{"delete missing", func() error { _, err := alice.Delete(ctx, "missing"); return err }, codes.NotFound, apperr.ErrNotFound},
		{"no identity", func() error { _, err := ts.client(t, "").Inbox(ctx); return err }, codes.Unauthenticated, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if got := grpcstatus.Code(err); got != tt.code {
				t.Errorf("code = %s, want %s (err %v)", got, tt.code, err)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
		})
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{nil, codes.OK},
		{apperr.Validation("bad"), codes.InvalidArgument},
		{apperr.ErrPermissionDenied, codes.PermissionDenied},
		{apperr.ErrNotFound, codes.NotFound},
		{apperr.Store("op", errors.New("disk")), codes.Unavailable},
		{apperr.ErrRateLimited, codes.ResourceExhausted},
		{errNoIdentity, codes.Unauthenticated},
		{context.Canceled, codes.Canceled},
		{sync.ErrStopped, codes.Unavailable},
		{errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		if got := Code(tt.err); got != tt.want {
			t.Errorf("Code(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestOpenStreamsSnapshotThenDelta(t *testing.T) {
	ts := startServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	alice, bob := ts.client(t, "alice"), ts.client(t, "bob")

	for _, text := range []string{"one", "two"} {
		if _, err := alice.Send(ctx, "bob", text); err != nil {
			t.Fatal(err)
		}
	}

	stream, err := bob.Open(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	first := recvSnap(t, stream)
	if !first.Initial || len(first.Messages) != 2 {
		t.Fatalf("first = %d messages (initial=%v), want 2 initial", len(first.Messages), first.Initial)
	}
	if first.Namespace != sync.Conversation(convkey.MustDerive("alice", "bob")) {
		t.Errorf("namespace = %s", first.Namespace)
	}
	if n, _ := bob.Unread(ctx, "alice"); n != 0 {
		t.Errorf("unread after open = %d, want 0", n)
	}

	if _, err := alice.Send(ctx, "bob", "three"); err != nil {
		t.Fatal(err)
	}
	next := recvSnap(t, stream)
	if next.Initial || len(next.Messages) != 3 || next.Rev <= first.Rev {
		t.Errorf("delta = %d messages rev %d (initial=%v)", len(next.Messages), next.Rev, next.Initial)
	}
}

func TestWatchPermission(t *testing.T) {
	ts := startServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	carol := ts.client(t, "carol")

	stream, err := carol.Watch(ctx, sync.UnreadOf("alice"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := stream.Recv(); !errors.Is(err, apperr.ErrPermissionDenied) {
		t.Errorf("Recv() error = %v, want ErrPermissionDenied", err)
	}

	inbox, err := carol.Watch(ctx, sync.InboxOf("carol"))
	if err != nil {
		t.Fatal(err)
	}
	if snap := recvSnap(t, inbox); !snap.Initial || len(snap.Inbox) != 2 {
		t.Errorf("inbox snapshot = %+v", snap)
	}
}

func TestWatchMalformedNamespace(t *testing.T) {
	ts := startServer(t)
	c := ts.client(t, "alice")
	stream, err := c.rpc.Watch(c.outgoing(context.Background()), &dmsyncv1.WatchRequest{Namespace: "nope"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = stream.Recv()
	if grpcstatus.Code(err) != codes.InvalidArgument {
		t.Errorf("Recv() code = %v, want InvalidArgument", grpcstatus.Code(err))
	}
}

func TestSessionPresence(t *testing.T) {
	ts := startServer(t)
	ctx := context.Background()
	alice, bob := ts.client(t, "alice"), ts.client(t, "bob")

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	presence, err := bob.Watch(watchCtx, sync.PresenceOf("alice"))
	if err != nil {
		t.Fatal(err)
	}
	if snap := recvSnap(t, presence); snap.Online {
		t.Fatal("alice online before session")
	}

	sessCtx, drop := context.WithCancel(ctx)
	defer drop()
	sess, evt, err := alice.Session(sessCtx)
	if err != nil {
		t.Fatal(err)
	}
	if evt.GetUserId() != "alice" || !evt.GetOnline() {
		t.Errorf("session event = %+v", evt)
	}
	if snap := recvSnap(t, presence); !snap.Online {
		t.Error("alice not online after session start")
	}

	if err := sess.Close(); err != nil {
		t.Fatal(err)
	}
	if snap := recvSnap(t, presence); snap.Online {
		t.Error("alice still online after sign-off")
	}

	// A dropped connection goes offline without a sign-off.
	sessCtx2, drop2 := context.WithCancel(ctx)
	if _, _, err := alice.Session(sessCtx2); err != nil {
		t.Fatal(err)
	}
	if snap := recvSnap(t, presence); !snap.Online {
		t.Error("alice not online after second session")
	}
	drop2()
	if snap := recvSnap(t, presence); snap.Online {
		t.Error("alice still online after dropped connection")
	}
}

func TestGetStatus(t *testing.T) {
	ts := startServer(t)
	resp, err := ts.client(t, "alice").GetStatus(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if resp.Instance != "test" || resp.Backend != "sqlite" || resp.State != string(status.Ready) {
		t.Errorf("GetStatus() = %+v", resp)
	}
}

func TestUsers(t *testing.T) {
	ts := startServer(t)
	users, err := ts.client(t, "alice").Users(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 3 {
		t.Errorf("Users() = %+v", users)
	}
}
