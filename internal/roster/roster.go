// Package roster fetches the list of possible chat counterparts from an
// external source and caches it.
package roster

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/matheus3301/dmsync/internal/convkey"
	"github.com/matheus3301/dmsync/internal/store"
	"go.uber.org/zap"
)

// Source returns the full user list.
type Source interface {
	Users(ctx context.Context) ([]store.User, error)
}

// Directory is a roster with id lookup.
type Directory interface {
	Source
	Lookup(ctx context.Context, userID string) (store.User, bool)
}

// Static is a fixed roster.
type Static []store.User

func (s Static) Users(context.Context) ([]store.User, error) {
	return clean(s), nil
}

// clean drops entries whose id cannot take part in a conversation and keeps
// the first entry of duplicated ids. The result is sorted by id.
func clean(users []store.User) []store.User {
	seen := make(map[string]bool, len(users))
	out := make([]store.User, 0, len(users))
	for _, u := range users {
		if convkey.ValidateUserID(u.ID) != nil || seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		if u.DisplayName == "" {
			u.DisplayName = u.ID
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Cached serves a Source from memory, refetching after ttl. When a refetch
// fails and an older list exists, the older list is served and the error
// logged.
type Cached struct {
	src Source
	ttl time.Duration
	log *zap.Logger
	now func() time.Time

	mu        sync.Mutex
	users     []store.User
	byID      map[string]store.User
	fetchedAt time.Time
}

// NewCached wraps src. A ttl of zero refetches on every call.
func NewCached(src Source, ttl time.Duration, logger *zap.Logger) *Cached {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cached{src: src, ttl: ttl, log: logger, now: time.Now}
}

// Users returns the cached roster, refreshing it when stale.
func (c *Cached) Users(ctx context.Context) ([]store.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.refreshLocked(ctx); err != nil {
		return nil, err
	}
	return append([]store.User(nil), c.users...), nil
}

// Lookup returns the user with userID. Unknown ids, or any id when the
// roster cannot be loaded, report false.
func (c *Cached) Lookup(ctx context.Context, userID string) (store.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.refreshLocked(ctx); err != nil {
		return store.User{}, false
	}
	u, ok := c.byID[userID]
	return u, ok
}

// Invalidate forces the next call to refetch.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

func (c *Cached) refreshLocked(ctx context.Context) error {
	if c.byID != nil && c.ttl > 0 && c.now().Sub(c.fetchedAt) < c.ttl {
		return nil
	}
	users, err := c.src.Users(ctx)
	if err != nil {
		if c.byID != nil {
			c.log.Warn("roster refresh failed, serving cached list", zap.Error(err))
			return nil
		}
		return err
	}
	users = clean(users)
	c.users = users
	c.byID = make(map[string]store.User, len(users))
	for _, u := range users {
		c.byID[u.ID] = u
	}
	c.fetchedAt = c.now()
	return nil
}
