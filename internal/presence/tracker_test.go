package presence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeStore struct {
	mu     sync.Mutex
	online map[string]bool
	writes []bool
	fail   error
	delay  time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{online: make(map[string]bool)}
}

func (f *fakeStore) SetPresence(ctx context.Context, userID string, online bool) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.online[userID] = online
	f.writes = append(f.writes, online)
	return nil
}

func (f *fakeStore) Presence(ctx context.Context, userID string) (bool, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.online[userID], int64(len(f.writes)), nil
}

func TestSetOnlineThenOffline(t *testing.T) {
	st := newFakeStore()
	tr := NewTracker(st, nil, nil)

	tr.SetOnline("alice")
	tr.Wait()
	if online, _ := tr.Online(context.Background(), "alice"); !online {
		t.Error("alice should be online")
	}

	tr.SetOffline("alice")
	tr.SetOffline("alice")
	tr.Wait()
	if online, _ := tr.Online(context.Background(), "alice"); online {
		t.Error("alice should be offline")
	}
}

func TestWritesKeepCallOrder(t *testing.T) {
	st := newFakeStore()
	st.delay = time.Millisecond
	tr := NewTracker(st, nil, nil)

	tr.SetOnline("alice")
	tr.SetOffline("alice")
	tr.SetOnline("alice")
	tr.Wait()

	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.online["alice"] {
		t.Error("last call was SetOnline, alice should be online")
	}
	if st.writes[len(st.writes)-1] != true {
		t.Errorf("writes = %v, want last write true", st.writes)
	}
}

func TestAutoOfflineOnDisconnect(t *testing.T) {
	st := newFakeStore()
	tr := NewTracker(st, nil, nil)

	conn, drop := context.WithCancel(context.Background())
	tr.SetOnline("bob")
	tr.RegisterAutoOffline(conn, "bob")

	// The connection dies without any explicit sign-off.
	drop()
	tr.Wait()

	if online, _ := tr.Online(context.Background(), "bob"); online {
		t.Error("bob stuck online after disconnect")
	}
}

func TestAutoOfflineRacesExplicitOffline(t *testing.T) {
	st := newFakeStore()
	tr := NewTracker(st, nil, nil)

	conn, drop := context.WithCancel(context.Background())
	tr.SetOnline("bob")
	tr.RegisterAutoOffline(conn, "bob")
	tr.SetOffline("bob")
	drop()
	tr.Wait()

	if online, _ := tr.Online(context.Background(), "bob"); online {
		t.Error("bob should be offline")
	}
}

func TestStoppedHookDoesNotWrite(t *testing.T) {
	st := newFakeStore()
	tr := NewTracker(st, nil, nil)

	conn, drop := context.WithCancel(context.Background())
	tr.SetOnline("carol")
	stop := tr.RegisterAutoOffline(conn, "carol")
	stop()
	stop()
	drop()
	tr.Wait()

	if online, _ := tr.Online(context.Background(), "carol"); !online {
		t.Error("stopped hook should not have marked carol offline")
	}
}

func TestFailuresAreSwallowed(t *testing.T) {
	st := newFakeStore()
	st.fail = errors.New("store down")
	tr := NewTracker(st, nil, nil)

	// Must neither panic nor block.
	tr.SetOnline("dave")
	tr.SetOffline("dave")
	tr.Wait()
}

func TestSlowWriteDoesNotBlockCaller(t *testing.T) {
	st := newFakeStore()
	st.delay = 200 * time.Millisecond
	tr := NewTracker(st, nil, nil)

	start := time.Now()
	for i := 0; i < 20; i++ {
		tr.SetOnline("erin")
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("SetOnline blocked for %v", elapsed)
	}
	tr.Wait()
}
