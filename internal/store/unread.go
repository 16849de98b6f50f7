package store

import (
	"context"
	"database/sql"

	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/convkey"
)

// IncrementUnread adds one to the owner's counter in a single atomic upsert
// and returns the new count.
func (db *DB) IncrementUnread(ctx context.Context, conversationKey, ownerID string) (int, error) {
	counterpart, err := convkey.Counterpart(conversationKey, ownerID)
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, apperr.Store("begin increment", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRow(`
		INSERT INTO unread_counters (conversation_key, owner_id, counterpart_id, count, updated_at)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(conversation_key, owner_id) DO UPDATE SET
			count = unread_counters.count + 1,
			updated_at = excluded.updated_at
		RETURNING count`,
		conversationKey, ownerID, counterpart, db.clock.Now().UnixMilli()).Scan(&count); err != nil {
		return 0, apperr.Store("increment unread", err)
	}
	if _, err := bumpRev(tx, UnreadRev(ownerID)); err != nil {
		return 0, apperr.Store("bump unread rev", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, apperr.Store("commit increment", err)
	}
	return count, nil
}

// ResetUnread sets the owner's counter for a conversation to zero.
func (db *DB) ResetUnread(ctx context.Context, conversationKey, ownerID string) error {
	counterpart, err := convkey.Counterpart(conversationKey, ownerID)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Store("begin reset", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO unread_counters (conversation_key, owner_id, counterpart_id, count, updated_at)
		VALUES (?, ?, ?, 0, ?)
		ON CONFLICT(conversation_key, owner_id) DO UPDATE SET
			count = 0,
			updated_at = excluded.updated_at`,
		conversationKey, ownerID, counterpart, db.clock.Now().UnixMilli()); err != nil {
		return apperr.Store("reset unread", err)
	}
	if _, err := bumpRev(tx, UnreadRev(ownerID)); err != nil {
		return apperr.Store("bump unread rev", err)
	}
	return apperr.Store("commit reset", tx.Commit())
}

// Unread returns the owner's counter for one conversation.
func (db *DB) Unread(ctx context.Context, conversationKey, ownerID string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `
		SELECT count FROM unread_counters
		WHERE conversation_key = ? AND owner_id = ?`, conversationKey, ownerID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, apperr.Store("get unread", err)
	}
	return count, nil
}

// UnreadForUser returns every counter owned by ownerID keyed by counterpart.
func (db *DB) UnreadForUser(ctx context.Context, ownerID string) (map[string]int, int64, error) {
	rev, err := db.readRev(ctx, UnreadRev(ownerID))
	if err != nil {
		return nil, 0, apperr.Store("read unread rev", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT counterpart_id, count FROM unread_counters WHERE owner_id = ?`, ownerID)
	if err != nil {
		return nil, 0, apperr.Store("list unread", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var counterpart string
		var count int
		if err := rows.Scan(&counterpart, &count); err != nil {
			return nil, 0, apperr.Store("scan unread", err)
		}
		counts[counterpart] = count
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperr.Store("list unread", err)
	}
	return counts, rev, nil
}
