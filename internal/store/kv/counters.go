package kv

import (
	"context"
	"encoding/hex"

	"github.com/cockroachdb/pebble"
	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/convkey"
	"github.com/matheus3301/dmsync/internal/store"
)

// IncrementUnread merges +1 into the owner's counter and returns the new
// count. The merge itself never loses an update; the stripe lock only makes
// the returned value belong to this increment.
func (db *DB) IncrementUnread(ctx context.Context, conversationKey, ownerID string) (int, error) {
	if _, err := convkey.Counterpart(conversationKey, ownerID); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, apperr.Store("increment unread", err)
	}
	key := unreadKey(conversationKey, ownerID)

	mu := db.lock(string(key))
	mu.Lock()
	defer mu.Unlock()

	b := db.pdb.NewBatch()
	defer func() { _ = b.Close() }()
	if err := b.Merge(key, one, nil); err != nil {
		return 0, apperr.Store("increment unread", err)
	}
	if err := b.Merge(revKey(store.UnreadRev(ownerID)), one, nil); err != nil {
		return 0, apperr.Store("bump unread rev", err)
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return 0, apperr.Store("commit increment", err)
	}

	n, err := readCounter(db.pdb, key)
	if err != nil {
		return 0, apperr.Store("read unread", err)
	}
	return int(n), nil
}

// ResetUnread sets the owner's counter for a conversation to zero.
func (db *DB) ResetUnread(ctx context.Context, conversationKey, ownerID string) error {
	if _, err := convkey.Counterpart(conversationKey, ownerID); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return apperr.Store("reset unread", err)
	}
	key := unreadKey(conversationKey, ownerID)

	mu := db.lock(string(key))
	mu.Lock()
	defer mu.Unlock()

	b := db.pdb.NewBatch()
	defer func() { _ = b.Close() }()
	if err := b.Set(key, encodeCounter(0), nil); err != nil {
		return apperr.Store("reset unread", err)
	}
	if err := b.Merge(revKey(store.UnreadRev(ownerID)), one, nil); err != nil {
		return apperr.Store("bump unread rev", err)
	}
	return apperr.Store("commit reset", b.Commit(pebble.Sync))
}

// Unread returns the owner's counter for one conversation.
func (db *DB) Unread(ctx context.Context, conversationKey, ownerID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, apperr.Store("get unread", err)
	}
	n, err := readCounter(db.pdb, unreadKey(conversationKey, ownerID))
	if err != nil {
		return 0, apperr.Store("get unread", err)
	}
	return int(n), nil
}

// UnreadForUser returns every counter owned by ownerID keyed by counterpart.
func (db *DB) UnreadForUser(ctx context.Context, ownerID string) (map[string]int, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, apperr.Store("list unread", err)
	}
	snap := db.pdb.NewSnapshot()
	defer func() { _ = snap.Close() }()

	rev, err := readCounter(snap, revKey(store.UnreadRev(ownerID)))
	if err != nil {
		return nil, 0, apperr.Store("read unread rev", err)
	}

	prefix := unreadPrefix(ownerID)
	iter, err := snap.NewIter(prefixOptions(prefix))
	if err != nil {
		return nil, 0, apperr.Store("list unread", err)
	}
	defer func() { _ = iter.Close() }()

	counts := make(map[string]int)
	for iter.First(); iter.Valid(); iter.Next() {
		raw, err := hex.DecodeString(string(iter.Key()[len(prefix):]))
		if err != nil {
			return nil, 0, apperr.Store("decode unread key", err)
		}
		counterpart, err := convkey.Counterpart(string(raw), ownerID)
		if err != nil {
			continue
		}
		n, err := decodeCounter(iter.Value())
		if err != nil {
			return nil, 0, apperr.Store("decode unread", err)
		}
		counts[counterpart] = int(n)
	}
	if err := iter.Error(); err != nil {
		return nil, 0, apperr.Store("list unread", err)
	}
	return counts, rev, nil
}

// SetPresence records a user's online flag. Last write wins.
func (db *DB) SetPresence(ctx context.Context, userID string, online bool) error {
	if err := ctx.Err(); err != nil {
		return apperr.Store("set presence", err)
	}
	flag := []byte{0}
	if online {
		flag[0] = 1
	}
	b := db.pdb.NewBatch()
	defer func() { _ = b.Close() }()
	if err := b.Set(presenceKey(userID), flag, nil); err != nil {
		return apperr.Store("set presence", err)
	}
	if err := b.Merge(revKey(store.PresenceRev(userID)), one, nil); err != nil {
		return apperr.Store("bump presence rev", err)
	}
	return apperr.Store("commit presence", b.Commit(pebble.Sync))
}

// Presence returns whether userID is online. Unknown users are offline.
func (db *DB) Presence(ctx context.Context, userID string) (bool, int64, error) {
	if err := ctx.Err(); err != nil {
		return false, 0, apperr.Store("get presence", err)
	}
	snap := db.pdb.NewSnapshot()
	defer func() { _ = snap.Close() }()

	rev, err := readCounter(snap, revKey(store.PresenceRev(userID)))
	if err != nil {
		return false, 0, apperr.Store("read presence rev", err)
	}
	v, _, err := getValue(snap, presenceKey(userID))
	if err != nil {
		return false, 0, apperr.Store("get presence", err)
	}
	return len(v) == 1 && v[0] == 1, rev, nil
}
