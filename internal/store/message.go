package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/matheus3301/dmsync/internal/apperr"
)

const messageColumns = `id, seq, conversation_key, sender_id, sender_name, recipient_id, content, timestamp, edited`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(r rowScanner) (*Message, error) {
	var m Message
	if err := r.Scan(&m.ID, &m.Seq, &m.ConversationKey, &m.SenderID, &m.SenderName,
		&m.RecipientID, &m.Content, &m.Timestamp, &m.Edited); err != nil {
		return nil, err
	}
	return &m, nil
}

// Append stores a new message, assigning its id, timestamp and sequence.
func (db *DB) Append(ctx context.Context, nm NewMessage) (*Message, error) {
	nm, err := ValidateNew(nm)
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Store("begin append", err)
	}
	defer func() { _ = tx.Rollback() }()

	latest, err := latestTimestamp(tx, nm.ConversationKey)
	if err != nil {
		return nil, apperr.Store("latest timestamp", err)
	}
	m := &Message{
		ID:              uuid.NewString(),
		ConversationKey: nm.ConversationKey,
		SenderID:        nm.SenderID,
		SenderName:      nm.SenderName,
		RecipientID:     nm.RecipientID,
		Content:         nm.Content,
		Timestamp:       AppendTimestamp(db.clock.Now(), latest),
	}
	if m.Seq, err = nextSeq(tx); err != nil {
		return nil, apperr.Store("next seq", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO messages (`+messageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		m.ID, m.Seq, m.ConversationKey, m.SenderID, m.SenderName, m.RecipientID, m.Content, m.Timestamp); err != nil {
		return nil, apperr.Store("insert message", err)
	}
	if _, err := bumpRev(tx, ConversationRev(m.ConversationKey)); err != nil {
		return nil, apperr.Store("bump conversation rev", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, apperr.Store("commit append", err)
	}
	return m, nil
}

// Edit replaces the content of a message owned by requesterID. The message
// keeps its id but is re-stamped, so it sorts as the newest in its conversation.
func (db *DB) Edit(ctx context.Context, conversationKey, messageID, requesterID, content string) (*Message, error) {
	content, err := NormalizeContent(content)
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Store("begin edit", err)
	}
	defer func() { _ = tx.Rollback() }()

	m, err := lockOwned(tx, conversationKey, messageID, requesterID)
	if err != nil {
		return nil, err
	}

	latest, err := latestTimestamp(tx, m.ConversationKey)
	if err != nil {
		return nil, apperr.Store("latest timestamp", err)
	}
	m.Content = content
	m.Edited = true
	m.Timestamp = EditTimestamp(db.clock.Now(), m.Timestamp, latest)
	if m.Seq, err = nextSeq(tx); err != nil {
		return nil, apperr.Store("next seq", err)
	}

	if _, err := tx.Exec(`
		UPDATE messages SET content = ?, edited = 1, timestamp = ?, seq = ?
		WHERE id = ?`, m.Content, m.Timestamp, m.Seq, m.ID); err != nil {
		return nil, apperr.Store("update message", err)
	}
	if _, err := bumpRev(tx, ConversationRev(m.ConversationKey)); err != nil {
		return nil, apperr.Store("bump conversation rev", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, apperr.Store("commit edit", err)
	}
	return m, nil
}

// Delete hard-deletes a message owned by requesterID and returns what was removed.
func (db *DB) Delete(ctx context.Context, conversationKey, messageID, requesterID string) (*Message, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Store("begin delete", err)
	}
	defer func() { _ = tx.Rollback() }()

	m, err := lockOwned(tx, conversationKey, messageID, requesterID)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(`DELETE FROM messages WHERE id = ?`, m.ID); err != nil {
		return nil, apperr.Store("delete message", err)
	}
	if _, err := bumpRev(tx, ConversationRev(m.ConversationKey)); err != nil {
		return nil, apperr.Store("bump conversation rev", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, apperr.Store("commit delete", err)
	}
	return m, nil
}

// lockOwned loads a message inside tx and checks requesterID sent it.
func lockOwned(tx *sql.Tx, conversationKey, messageID, requesterID string) (*Message, error) {
	m, err := scanMessage(tx.QueryRow(`SELECT `+messageColumns+` FROM messages WHERE id = ?`, messageID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("message %q: %w", messageID, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, apperr.Store("load message", err)
	}
	if conversationKey != "" && m.ConversationKey != conversationKey {
		return nil, fmt.Errorf("message %q in %q: %w", messageID, conversationKey, apperr.ErrNotFound)
	}
	if m.SenderID != requesterID {
		return nil, fmt.Errorf("message %q sent by %q, requested by %q: %w", messageID, m.SenderID, requesterID, apperr.ErrPermissionDenied)
	}
	return m, nil
}

func nextSeq(tx *sql.Tx) (int64, error) {
	var seq int64
	err := tx.QueryRow(`SELECT COALESCE(MAX(seq), 0) + 1 FROM messages`).Scan(&seq)
	return seq, err
}

func latestTimestamp(tx *sql.Tx, conversationKey string) (int64, error) {
	var ts int64
	err := tx.QueryRow(`SELECT COALESCE(MAX(timestamp), 0) FROM messages WHERE conversation_key = ?`, conversationKey).Scan(&ts)
	return ts, err
}

// Get returns a message by id, or ErrNotFound.
func (db *DB) Get(ctx context.Context, messageID string) (*Message, error) {
	m, err := scanMessage(db.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, messageID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("message %q: %w", messageID, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, apperr.Store("get message", err)
	}
	return m, nil
}

// List returns the conversation in display order together with its revision.
func (db *DB) List(ctx context.Context, conversationKey string) ([]Message, int64, error) {
	rev, err := db.readRev(ctx, ConversationRev(conversationKey))
	if err != nil {
		return nil, 0, apperr.Store("read conversation rev", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE conversation_key = ?
		ORDER BY timestamp ASC, seq ASC`, conversationKey)
	if err != nil {
		return nil, 0, apperr.Store("list messages", err)
	}
	defer func() { _ = rows.Close() }()

	msgs := []Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, 0, apperr.Store("scan message", err)
		}
		msgs = append(msgs, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperr.Store("list messages", err)
	}
	return msgs, rev, nil
}

// Last returns the newest message of a conversation, or nil when it is empty.
func (db *DB) Last(ctx context.Context, conversationKey string) (*Message, error) {
	m, err := scanMessage(db.QueryRowContext(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE conversation_key = ?
		ORDER BY timestamp DESC, seq DESC
		LIMIT 1`, conversationKey))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Store("last message", err)
	}
	return m, nil
}
