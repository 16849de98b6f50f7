package store

import (
	"context"
	"database/sql"

	"github.com/matheus3301/dmsync/internal/apperr"
)

// SetPresence records a user's online flag. Last write wins.
func (db *DB) SetPresence(ctx context.Context, userID string, online bool) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Store("begin presence", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO presence (user_id, online, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			online = excluded.online,
			updated_at = excluded.updated_at`,
		userID, online, db.clock.Now().UnixMilli()); err != nil {
		return apperr.Store("set presence", err)
	}
	if _, err := bumpRev(tx, PresenceRev(userID)); err != nil {
		return apperr.Store("bump presence rev", err)
	}
	return apperr.Store("commit presence", tx.Commit())
}

// Presence returns whether userID is online. Unknown users are offline.
func (db *DB) Presence(ctx context.Context, userID string) (bool, int64, error) {
	rev, err := db.readRev(ctx, PresenceRev(userID))
	if err != nil {
		return false, 0, apperr.Store("read presence rev", err)
	}
	var online bool
	err = db.QueryRowContext(ctx, `SELECT online FROM presence WHERE user_id = ?`, userID).Scan(&online)
	if err == sql.ErrNoRows {
		return false, rev, nil
	}
	if err != nil {
		return false, 0, apperr.Store("get presence", err)
	}
	return online, rev, nil
}
