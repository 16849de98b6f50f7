package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/store"
)

// Append stores a new message, assigning its id, timestamp and sequence.
func (db *DB) Append(ctx context.Context, nm store.NewMessage) (*store.Message, error) {
	nm, err := store.ValidateNew(nm)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, apperr.Store("append", err)
	}

	mu := db.lock(nm.ConversationKey)
	mu.Lock()
	defer mu.Unlock()

	latest, err := db.latestTimestamp(ctx, nm.ConversationKey)
	if err != nil {
		return nil, err
	}
	m := &store.Message{
		ID:              uuid.NewString(),
		ConversationKey: nm.ConversationKey,
		SenderID:        nm.SenderID,
		SenderName:      nm.SenderName,
		RecipientID:     nm.RecipientID,
		Content:         nm.Content,
		Timestamp:       store.AppendTimestamp(db.clock.Now(), latest),
		Seq:             db.seq.Add(1),
	}

	b := db.pdb.NewBatch()
	defer func() { _ = b.Close() }()
	if err := putMessage(b, m); err != nil {
		return nil, apperr.Store("put message", err)
	}
	if err := b.Merge(revKey(store.ConversationRev(m.ConversationKey)), one, nil); err != nil {
		return nil, apperr.Store("bump conversation rev", err)
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return nil, apperr.Store("commit append", err)
	}
	return m, nil
}

// Edit replaces the content of a message owned by requesterID and moves it
// to the end of its conversation.
func (db *DB) Edit(ctx context.Context, conversationKey, messageID, requesterID, content string) (*store.Message, error) {
	content, err := store.NormalizeContent(content)
	if err != nil {
		return nil, err
	}

	return db.withOwned(ctx, conversationKey, messageID, requesterID, func(b *pebble.Batch, m *store.Message) error {
		latest, err := db.latestTimestamp(ctx, m.ConversationKey)
		if err != nil {
			return err
		}
		if err := b.Delete(messageKey(m.ConversationKey, m.Timestamp, m.Seq), nil); err != nil {
			return err
		}
		m.Content = content
		m.Edited = true
		m.Timestamp = store.EditTimestamp(db.clock.Now(), m.Timestamp, latest)
		m.Seq = db.seq.Add(1)
		return putMessage(b, m)
	})
}

// Delete hard-deletes a message owned by requesterID and returns what was removed.
func (db *DB) Delete(ctx context.Context, conversationKey, messageID, requesterID string) (*store.Message, error) {
	return db.withOwned(ctx, conversationKey, messageID, requesterID, func(b *pebble.Batch, m *store.Message) error {
		if err := b.Delete(messageKey(m.ConversationKey, m.Timestamp, m.Seq), nil); err != nil {
			return err
		}
		return b.Delete(indexKey(m.ID), nil)
	})
}

// withOwned loads a message under its conversation lock, checks ownership
// and commits the batch built by mutate together with a revision bump.
func (db *DB) withOwned(ctx context.Context, conversationKey, messageID, requesterID string, mutate func(*pebble.Batch, *store.Message) error) (*store.Message, error) {
	m, err := db.Get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if conversationKey == "" {
		conversationKey = m.ConversationKey
	}
	if m.ConversationKey != conversationKey {
		return nil, fmt.Errorf("message %q in %q: %w", messageID, conversationKey, apperr.ErrNotFound)
	}

	mu := db.lock(conversationKey)
	mu.Lock()
	defer mu.Unlock()

	// Reload under the lock; the message may have moved or vanished.
	m, err = db.Get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if m.SenderID != requesterID {
		return nil, fmt.Errorf("message %q sent by %q, requested by %q: %w", messageID, m.SenderID, requesterID, apperr.ErrPermissionDenied)
	}

	b := db.pdb.NewBatch()
	defer func() { _ = b.Close() }()
	if err := mutate(b, m); err != nil {
		return nil, apperr.Store("mutate message", err)
	}
	if err := b.Merge(revKey(store.ConversationRev(conversationKey)), one, nil); err != nil {
		return nil, apperr.Store("bump conversation rev", err)
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return nil, apperr.Store("commit message", err)
	}
	return m, nil
}

func putMessage(b *pebble.Batch, m *store.Message) error {
	val, err := json.Marshal(m)
	if err != nil {
		return err
	}
	key := messageKey(m.ConversationKey, m.Timestamp, m.Seq)
	if err := b.Set(key, val, nil); err != nil {
		return err
	}
	return b.Set(indexKey(m.ID), key, nil)
}

// Get returns a message by id, or ErrNotFound.
func (db *DB) Get(ctx context.Context, messageID string) (*store.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.Store("get message", err)
	}
	snap := db.pdb.NewSnapshot()
	defer func() { _ = snap.Close() }()

	key, found, err := getValue(snap, indexKey(messageID))
	if err != nil {
		return nil, apperr.Store("get message index", err)
	}
	if !found {
		return nil, fmt.Errorf("message %q: %w", messageID, apperr.ErrNotFound)
	}
	val, found, err := getValue(snap, key)
	if err != nil {
		return nil, apperr.Store("get message", err)
	}
	if !found {
		return nil, fmt.Errorf("message %q: %w", messageID, apperr.ErrNotFound)
	}
	var m store.Message
	if err := json.Unmarshal(val, &m); err != nil {
		return nil, apperr.Store("decode message", err)
	}
	return &m, nil
}

// List returns the conversation in display order together with its
// revision, both read from one snapshot.
func (db *DB) List(ctx context.Context, conversationKey string) ([]store.Message, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, apperr.Store("list messages", err)
	}
	snap := db.pdb.NewSnapshot()
	defer func() { _ = snap.Close() }()

	rev, err := readCounter(snap, revKey(store.ConversationRev(conversationKey)))
	if err != nil {
		return nil, 0, apperr.Store("read conversation rev", err)
	}

	iter, err := snap.NewIter(prefixOptions(conversationPrefix(conversationKey)))
	if err != nil {
		return nil, 0, apperr.Store("list messages", err)
	}
	defer func() { _ = iter.Close() }()

	msgs := []store.Message{}
	for iter.First(); iter.Valid(); iter.Next() {
		var m store.Message
		if err := json.Unmarshal(iter.Value(), &m); err != nil {
			return nil, 0, apperr.Store("decode message", err)
		}
		msgs = append(msgs, m)
	}
	if err := iter.Error(); err != nil {
		return nil, 0, apperr.Store("list messages", err)
	}
	return msgs, rev, nil
}

// latestTimestamp returns the newest timestamp in a conversation, or 0.
// Callers hold the conversation lock.
func (db *DB) latestTimestamp(ctx context.Context, conversationKey string) (int64, error) {
	m, err := db.Last(ctx, conversationKey)
	if err != nil || m == nil {
		return 0, err
	}
	return m.Timestamp, nil
}

// Last returns the newest message of a conversation, or nil when it is empty.
func (db *DB) Last(ctx context.Context, conversationKey string) (*store.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.Store("last message", err)
	}
	iter, err := db.pdb.NewIter(prefixOptions(conversationPrefix(conversationKey)))
	if err != nil {
		return nil, apperr.Store("last message", err)
	}
	defer func() { _ = iter.Close() }()

	if !iter.Last() {
		return nil, apperr.Store("last message", iter.Error())
	}
	var m store.Message
	if err := json.Unmarshal(iter.Value(), &m); err != nil {
		return nil, apperr.Store("decode message", err)
	}
	return &m, nil
}
