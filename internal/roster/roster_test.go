package roster

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/matheus3301/dmsync/internal/store"
	"github.com/valyala/fasthttp"
)

func serve(t *testing.T, handler fasthttp.RequestHandler) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	srv := &fasthttp.Server{Handler: handler}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = srv.Shutdown() })
	return "http://" + ln.Addr().String() + "/users"
}

func TestHTTPSource(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"array", `[{"id":"alice","displayName":"Alice"},{"id":"bob","displayName":"Bob","avatarUri":"b.png"}]`},
		{"wrapped", `{"users":[{"id":"alice","displayName":"Alice"},{"id":"bob","displayName":"Bob","avatarUri":"b.png"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := serve(t, func(ctx *fasthttp.RequestCtx) {
				if string(ctx.Path()) != "/users" || !ctx.IsGet() {
					ctx.SetStatusCode(fasthttp.StatusNotFound)
					return
				}
				ctx.SetContentType("application/json")
				_, _ = ctx.WriteString(tt.body)
			})

			users, err := NewHTTPSource(url, time.Second).Users(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if len(users) != 2 || users[1].ID != "bob" || users[1].AvatarURI != "b.png" {
				t.Errorf("users = %+v", users)
			}
		})
	}
}

func TestHTTPSourceErrorStatus(t *testing.T) {
	url := serve(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
	})
	if _, err := NewHTTPSource(url, time.Second).Users(context.Background()); err == nil {
		t.Error("Users() should fail on 503")
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	data := `users:
  - id: carol
    displayName: Carol
  - id: alice
    displayName: Alice
    avatarUri: https://example.com/a.png
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	users, err := NewFileSource(path).Users(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 || users[1].AvatarURI != "https://example.com/a.png" {
		t.Errorf("users = %+v", users)
	}

	missing, err := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml")).Users(context.Background())
	if err != nil || len(missing) != 0 {
		t.Errorf("missing file = %v, %v; want empty roster", missing, err)
	}
}

func TestCleanDropsInvalidAndDuplicates(t *testing.T) {
	users, _ := Static{
		{ID: "bob", DisplayName: "Bob"},
		{ID: ""},
		{ID: "a|b"},
		{ID: "alice"},
		{ID: "bob", DisplayName: "Other Bob"},
	}.Users(context.Background())

	if len(users) != 2 {
		t.Fatalf("users = %+v, want alice and bob", users)
	}
	if users[0].ID != "alice" || users[0].DisplayName != "alice" {
		t.Errorf("users[0] = %+v, want alice with id as name", users[0])
	}
	if users[1].DisplayName != "Bob" {
		t.Errorf("duplicate id replaced first entry: %+v", users[1])
	}
}

type countingSource struct {
	mu    sync.Mutex
	calls int
	users []store.User
	err   error
}

func (s *countingSource) Users(context.Context) ([]store.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.users, s.err
}

func TestCachedHonorsTTL(t *testing.T) {
	src := &countingSource{users: []store.User{{ID: "alice", DisplayName: "Alice"}}}
	c := NewCached(src, time.Minute, nil)
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if _, err := c.Users(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	if u, ok := c.Lookup(context.Background(), "alice"); !ok || u.DisplayName != "Alice" {
		t.Errorf("Lookup(alice) = %+v, %v", u, ok)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times within ttl, want 1", src.calls)
	}

	now = now.Add(2 * time.Minute)
	_, _ = c.Users(context.Background())
	if src.calls != 2 {
		t.Errorf("source called %d times after ttl, want 2", src.calls)
	}
}

func TestCachedServesStaleOnError(t *testing.T) {
	src := &countingSource{users: []store.User{{ID: "alice"}}}
	c := NewCached(src, 0, nil)

	if _, err := c.Users(context.Background()); err != nil {
		t.Fatal(err)
	}
	src.err = errors.New("roster down")
	users, err := c.Users(context.Background())
	if err != nil {
		t.Fatalf("Users() with stale cache error = %v", err)
	}
	if len(users) != 1 {
		t.Errorf("stale users = %+v", users)
	}

	empty := NewCached(&countingSource{err: errors.New("roster down")}, time.Minute, nil)
	if _, err := empty.Users(context.Background()); err == nil {
		t.Error("Users() with no cache should fail")
	}
	if _, ok := empty.Lookup(context.Background(), "alice"); ok {
		t.Error("Lookup() with no roster should report false")
	}
}
