package store

import "sort"

// User is a roster entry. The store only ever references users by ID.
type User struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	AvatarURI   string `json:"avatarUri,omitempty" yaml:"avatarUri,omitempty"`
}

// Message is a direct message in a conversation.
// Timestamp is server-assigned (unix ms) and re-stamped on edit.
// Seq is the store-assigned ordering sequence, also re-assigned on edit;
// it breaks timestamp ties by application order.
type Message struct {
	ID              string `json:"id"`
	ConversationKey string `json:"conversationKey"`
	SenderID        string `json:"senderId"`
	SenderName      string `json:"senderDisplayName"`
	RecipientID     string `json:"recipientId"`
	Content         string `json:"content"`
	Timestamp       int64  `json:"createdOrUpdatedAt"`
	Edited          bool   `json:"edited"`
	Seq             int64  `json:"seq"`
}

// NewMessage holds the caller-supplied fields of a message to append.
type NewMessage struct {
	ConversationKey string
	SenderID        string
	SenderName      string
	RecipientID     string
	Content         string
}

// ConversationSummary is the inbox view of one counterpart.
type ConversationSummary struct {
	Counterpart User     `json:"counterpart"`
	LastMessage *Message `json:"lastMessage,omitempty"`
	UnreadCount int      `json:"unreadCount"`
}

// UnreadChange is the payload of an unread.changed event.
type UnreadChange struct {
	ConversationKey string
	OwnerID         string
	Count           int
}

// PresenceChange is the payload of a presence.changed event.
type PresenceChange struct {
	UserID string
	Online bool
}

// Before reports whether a sorts before b in a conversation:
// ascending timestamp, ties broken by application order.
func Before(a, b *Message) bool {
	if a.Timestamp != b.Timestamp {
		return a.Timestamp < b.Timestamp
	}
	return a.Seq < b.Seq
}

// SortMessages orders msgs in place for display.
func SortMessages(msgs []Message) {
	sort.SliceStable(msgs, func(i, j int) bool { return Before(&msgs[i], &msgs[j]) })
}
