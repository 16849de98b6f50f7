package unread

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/matheus3301/dmsync/internal/convkey"
	"github.com/matheus3301/dmsync/internal/store"
)

func testCounter(t *testing.T) *Counter {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewCounter(db, nil, nil)
}

func TestIncrementOncePerMessage(t *testing.T) {
	c := testCounter(t)
	ctx := context.Background()
	key := convkey.MustDerive("alice", "bob")

	const n = 7
	for i := 0; i < n; i++ {
		if !c.Increment(ctx, key, "bob") {
			t.Fatal("Increment failed")
		}
	}
	got, err := c.Get(ctx, key, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if got != n {
		t.Errorf("Get = %d, want %d", got, n)
	}
	if got, _ := c.Get(ctx, key, "alice"); got != 0 {
		t.Errorf("sender count = %d, want 0", got)
	}
}

func TestResetClearsAll(t *testing.T) {
	c := testCounter(t)
	ctx := context.Background()
	key := convkey.MustDerive("alice", "bob")

	for i := 0; i < 3; i++ {
		c.Increment(ctx, key, "bob")
	}
	if !c.Reset(ctx, key, "bob") {
		t.Fatal("Reset failed")
	}
	if got, _ := c.Get(ctx, key, "bob"); got != 0 {
		t.Errorf("after reset = %d, want 0", got)
	}
	// Reset of a counter that never existed is fine.
	if !c.Reset(ctx, convkey.MustDerive("bob", "zed"), "bob") {
		t.Error("Reset of missing counter failed")
	}
}

func TestConcurrentIncrements(t *testing.T) {
	c := testCounter(t)
	ctx := context.Background()
	key := convkey.MustDerive("alice", "bob")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Increment(ctx, key, "bob")
		}()
	}
	wg.Wait()

	if got, _ := c.Get(ctx, key, "bob"); got != 50 {
		t.Errorf("Get = %d after 50 concurrent increments", got)
	}
}

func TestGetAllForUser(t *testing.T) {
	c := testCounter(t)
	ctx := context.Background()

	c.Increment(ctx, convkey.MustDerive("alice", "bob"), "bob")
	c.Increment(ctx, convkey.MustDerive("alice", "bob"), "bob")
	c.Increment(ctx, convkey.MustDerive("carol", "bob"), "bob")
	c.Increment(ctx, convkey.MustDerive("carol", "bob"), "carol")

	got, err := c.GetAllForUser(ctx, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got["alice"] != 2 || got["carol"] != 1 {
		t.Errorf("GetAllForUser(bob) = %v, want alice:2 carol:1", got)
	}
}

type brokenStore struct{ Store }

func (brokenStore) IncrementUnread(context.Context, string, string) (int, error) {
	return 0, errors.New("store down")
}

func (brokenStore) ResetUnread(context.Context, string, string) error {
	return errors.New("store down")
}

func TestFailuresAreSwallowed(t *testing.T) {
	c := NewCounter(brokenStore{}, nil, nil)
	if c.Increment(context.Background(), "alice|bob", "bob") {
		t.Error("Increment should report failure")
	}
	if c.Reset(context.Background(), "alice|bob", "bob") {
		t.Error("Reset should report failure")
	}
}
