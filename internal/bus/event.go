package bus

import "time"

// Event kinds published by the store and derived views.
const (
	KindMessageAppended = "message.appended"
	KindMessageEdited   = "message.edited"
	KindMessageDeleted  = "message.deleted"
	KindUnreadChanged   = "unread.changed"
	KindPresenceChanged = "presence.changed"
	KindInboxChanged    = "inbox.changed"
)

// Event represents a committed change published on the bus.
// Topic names the affected key (a conversation key, a user id).
type Event struct {
	Kind      string
	Topic     string
	Timestamp time.Time
	Payload   any
}
