package sync

import (
	"fmt"
	"strings"

	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/convkey"
	"github.com/matheus3301/dmsync/internal/store"
)

// Kind names what a namespace watches.
type Kind string

const (
	KindConversation Kind = "conv"     // messages of one conversation
	KindUnread       Kind = "unread"   // every unread counter of one user
	KindInbox        Kind = "inbox"    // one user's conversation summaries
	KindPresence     Kind = "presence" // one user's online flag
)

// Namespace identifies one watchable piece of state. Key is a conversation
// key for KindConversation and a user id otherwise.
type Namespace struct {
	Kind Kind
	Key  string
}

func Conversation(key string) Namespace { return Namespace{KindConversation, key} }
func UnreadOf(userID string) Namespace { return Namespace{KindUnread, userID} }
func InboxOf(userID string) Namespace { return Namespace{KindInbox, userID} }
func PresenceOf(userID string) Namespace { return Namespace{KindPresence, userID} }

func (n Namespace) String() string {
	return string(n.Kind) + ":" + n.Key
}

// ParseNamespace parses the String form, e.g. "conv:alice|bob".
func ParseNamespace(s string) (Namespace, error) {
	kind, key, ok := strings.Cut(s, ":")
	if !ok {
		return Namespace{}, apperr.Validation("malformed namespace %q", s)
	}
	n := Namespace{Kind: Kind(kind), Key: key}
	return n, n.Validate()
}

// Validate checks the key fits the kind.
func (n Namespace) Validate() error {
	switch n.Kind {
	case KindConversation:
		_, _, err := convkey.Parse(n.Key)
		return err
	case KindUnread, KindInbox, KindPresence:
		return convkey.ValidateUserID(n.Key)
	}
	return apperr.Validation("unknown namespace kind %q", n.Kind)
}

// VisibleTo reports whether userID may watch n: participants see their
// conversations, owners see their counters and inbox, anyone sees presence.
func (n Namespace) VisibleTo(userID string) bool {
	switch n.Kind {
	case KindConversation:
		return convkey.Has(n.Key, userID)
	case KindUnread, KindInbox:
		return n.Key == userID
	case KindPresence:
		return true
	}
	return false
}

func (n Namespace) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Namespace) UnmarshalText(b []byte) error {
	parsed, err := ParseNamespace(string(b))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Snapshot is the full state of a namespace at revision Rev. Only the
// field matching the namespace kind is set. Initial marks the first
// snapshot a subscription receives.
type Snapshot struct {
	Namespace Namespace                   `json:"namespace"`
	Rev       int64                       `json:"rev"`
	Initial   bool                        `json:"initial"`
	Messages  []store.Message             `json:"messages,omitempty"`
	Unread    map[string]int              `json:"unread,omitempty"`
	Inbox     []store.ConversationSummary `json:"inbox,omitempty"`
	Online    bool                        `json:"online"`
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s@%d", s.Namespace, s.Rev)
}
