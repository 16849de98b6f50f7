package sync

import (
	"context"

	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/store"
)

// Loader reads the current snapshot of a namespace. The revision it
// returns must be read no later than the data, so a snapshot is never
// older than its revision.
type Loader interface {
	Load(ctx context.Context, ns Namespace) (Snapshot, error)
}

// Store is the part of the backend the default loader reads.
type Store interface {
	List(ctx context.Context, conversationKey string) ([]store.Message, int64, error)
	UnreadForUser(ctx context.Context, ownerID string) (map[string]int, int64, error)
	Presence(ctx context.Context, userID string) (bool, int64, error)
}

// InboxSource serves inbox snapshots.
type InboxSource interface {
	Inbox(ctx context.Context, viewerID string) ([]store.ConversationSummary, int64, error)
}

// StoreLoader loads conversations, counters and presence from a store and
// inboxes from the conversation index.
type StoreLoader struct {
	Store Store
	Inbox InboxSource
}

func (l StoreLoader) Load(ctx context.Context, ns Namespace) (Snapshot, error) {
	snap := Snapshot{Namespace: ns}
	var err error
	switch ns.Kind {
	case KindConversation:
		snap.Messages, snap.Rev, err = l.Store.List(ctx, ns.Key)
	case KindUnread:
		snap.Unread, snap.Rev, err = l.Store.UnreadForUser(ctx, ns.Key)
	case KindPresence:
		snap.Online, snap.Rev, err = l.Store.Presence(ctx, ns.Key)
	case KindInbox:
		snap.Inbox, snap.Rev, err = l.Inbox.Inbox(ctx, ns.Key)
	default:
		err = apperr.Validation("unknown namespace kind %q", ns.Kind)
	}
	return snap, err
}
