package gateway

import "github.com/matheus3301/dmsync/internal/sync"

// Inbound frame types.
const (
	opSend     = "send"
	opEdit     = "edit"
	opDelete   = "delete"
	opMarkRead = "markRead"
	opHistory  = "history"
	opInbox    = "inbox"
	opUnread   = "unread"
	opOpen     = "open"
	opWatch    = "watch"
	opUnwatch  = "unwatch"
	opSignOff  = "signoff"
)

// Outbound frame types.
const (
	frameSession  = "session"
	frameResult   = "result"
	frameSnapshot = "snapshot"
	frameClosed   = "closed"
	frameError    = "error"
)

// request is a client frame. ID is echoed on the reply.
type request struct {
	Type        string         `json:"type"`
	ID          string         `json:"id,omitempty"`
	To          string         `json:"to,omitempty"`
	Counterpart string         `json:"counterpart,omitempty"`
	MessageID   string         `json:"messageId,omitempty"`
	Content     string         `json:"content,omitempty"`
	Namespace   string `json:"namespace,omitempty"`
	Sub         string         `json:"sub,omitempty"`
}

// frame is a server frame.
type frame struct {
	Type     string         `json:"type"`
	ID       string         `json:"id,omitempty"`
	Sub      string         `json:"sub,omitempty"`
	Code     string         `json:"code,omitempty"`
	Message  string         `json:"message,omitempty"`
	Data     any            `json:"data,omitempty"`
	Snapshot *sync.Snapshot `json:"snapshot,omitempty"`
}
