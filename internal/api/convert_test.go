package api

import (
	"testing"

	"github.com/matheus3301/dmsync/internal/store"
	"github.com/matheus3301/dmsync/internal/sync"
)

func TestUnreadToProtoSorted(t *testing.T) {
	pb := unreadToProto(map[string]int{"carol": 1, "bob": 4})
	if len(pb) != 2 || pb[0].GetCounterpart() != "bob" || pb[1].GetCounterpart() != "carol" {
		t.Fatalf("unreadToProto() = %v", pb)
	}
	if pb[0].GetCount() != 4 {
		t.Errorf("bob count = %d, want 4", pb[0].GetCount())
	}
}

func TestSnapshotProtoUnread(t *testing.T) {
	in := sync.Snapshot{
		Namespace: sync.UnreadOf("alice"),
		Rev:       7,
		Initial:   true,
		Unread:    map[string]int{"bob": 2},
	}
	pb := snapshotToProto(in)
	if pb.GetNamespace() != "unread:alice" || len(pb.GetMessages()) != 0 || len(pb.GetInbox()) != 0 {
		t.Fatalf("snapshotToProto() = %v", pb)
	}
	out, err := snapshotFromProto(pb)
	if err != nil {
		t.Fatal(err)
	}
	if out.Namespace != in.Namespace || out.Rev != 7 || !out.Initial || out.Unread["bob"] != 2 {
		t.Errorf("snapshotFromProto() = %+v", out)
	}
}

func TestSnapshotProtoEmptyUnreadIsMap(t *testing.T) {
	out, err := snapshotFromProto(snapshotToProto(sync.Snapshot{Namespace: sync.UnreadOf("alice")}))
	if err != nil {
		t.Fatal(err)
	}
	if out.Unread == nil {
		t.Error("Unread = nil, want empty map")
	}
}

func TestSnapshotProtoInboxWithoutLastMessage(t *testing.T) {
	last := &store.Message{ID: "m1", SenderID: "bob", RecipientID: "alice", Content: "hi", Timestamp: 10}
	in := sync.Snapshot{
		Namespace: sync.InboxOf("alice"),
		Rev:       3,
		Inbox: []store.ConversationSummary{
			{Counterpart: store.User{ID: "bob", DisplayName: "Bob"}, LastMessage: last, UnreadCount: 1},
			{Counterpart: store.User{ID: "carol", DisplayName: "Carol"}},
		},
	}
	out, err := snapshotFromProto(snapshotToProto(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Inbox) != 2 {
		t.Fatalf("inbox = %+v", out.Inbox)
	}
	if got := out.Inbox[0]; got.LastMessage == nil || got.LastMessage.Content != "hi" || got.UnreadCount != 1 {
		t.Errorf("bob row = %+v", got)
	}
	if got := out.Inbox[1]; got.LastMessage != nil || got.Counterpart.DisplayName != "Carol" {
		t.Errorf("carol row = %+v", got)
	}
}

func TestSnapshotFromProtoRejectsBadNamespace(t *testing.T) {
	in := snapshotToProto(sync.Snapshot{Namespace: sync.InboxOf("alice")})
	in.Namespace = "inbox"
	if _, err := snapshotFromProto(in); err == nil {
		t.Error("snapshotFromProto() error = nil, want validation error")
	}
}
