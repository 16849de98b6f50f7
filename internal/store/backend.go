package store

import (
	"context"
	"strings"
	"time"

	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/convkey"
)

// Backend is the durable store behind the messaging core. Every write is a
// single transaction (or atomic batch) against shared state, so two
// processes writing the same conversation never lose updates.
//
// List, UnreadForUser and Presence also return the namespace revision. The
// revision is read before the data it labels, so the data is never older
// than its revision.
type Backend interface {
	Append(ctx context.Context, m NewMessage) (*Message, error)
	Edit(ctx context.Context, conversationKey, messageID, requesterID, content string) (*Message, error)
	Delete(ctx context.Context, conversationKey, messageID, requesterID string) (*Message, error)
	Get(ctx context.Context, messageID string) (*Message, error)
	List(ctx context.Context, conversationKey string) ([]Message, int64, error)
	Last(ctx context.Context, conversationKey string) (*Message, error)

	IncrementUnread(ctx context.Context, conversationKey, ownerID string) (int, error)
	ResetUnread(ctx context.Context, conversationKey, ownerID string) error
	Unread(ctx context.Context, conversationKey, ownerID string) (int, error)
	UnreadForUser(ctx context.Context, ownerID string) (map[string]int, int64, error)

	SetPresence(ctx context.Context, userID string, online bool) error
	Presence(ctx context.Context, userID string) (bool, int64, error)

	Close() error
}

// AppendTimestamp returns the timestamp for a new message in a
// conversation whose newest message is stamped latest: now, but never
// earlier than latest. Edits can stamp ahead of the clock, and a later
// append must still sort after them.
func AppendTimestamp(now time.Time, latest int64) int64 {
	return max(now.UnixMilli(), latest)
}

// EditTimestamp returns the timestamp for an edit of a message stamped prev
// in a conversation whose newest message is stamped latest: now, but always
// strictly later than prev and never earlier than latest.
func EditTimestamp(now time.Time, prev, latest int64) int64 {
	return max(now.UnixMilli(), prev+1, latest)
}

// ValidateNew checks m and returns it with trimmed content.
func ValidateNew(m NewMessage) (NewMessage, error) {
	key, err := convkey.Derive(m.SenderID, m.RecipientID)
	if err != nil {
		return m, err
	}
	if m.ConversationKey == "" {
		m.ConversationKey = key
	}
	if m.ConversationKey != key {
		return m, apperr.Validation("conversation %q does not belong to %q and %q", m.ConversationKey, m.SenderID, m.RecipientID)
	}
	content, err := NormalizeContent(m.Content)
	if err != nil {
		return m, err
	}
	m.Content = content
	return m, nil
}

// NormalizeContent trims content and rejects it when nothing is left.
func NormalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", apperr.Validation("message content is empty")
	}
	return content, nil
}

// Revision namespace names shared by the backends.
func ConversationRev(key string) string { return "conv:" + key }
func UnreadRev(ownerID string) string { return "unread:" + ownerID }
func PresenceRev(userID string) string { return "presence:" + userID }
