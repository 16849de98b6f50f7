package api

import (
	"sort"

	dmsyncv1 "github.com/matheus3301/dmsync/gen/dmsync/v1"
	"github.com/matheus3301/dmsync/internal/store"
	"github.com/matheus3301/dmsync/internal/sync"
)

func userToProto(u store.User) *dmsyncv1.User {
	return &dmsyncv1.User{
		Id:          u.ID,
		DisplayName: u.DisplayName,
		AvatarUri:   u.AvatarURI,
	}
}

func userFromProto(u *dmsyncv1.User) store.User {
	return store.User{
		ID:          u.GetId(),
		DisplayName: u.GetDisplayName(),
		AvatarURI:   u.GetAvatarUri(),
	}
}

func messageToProto(m *store.Message) *dmsyncv1.Message {
	if m == nil {
		return nil
	}
	return &dmsyncv1.Message{
		Id:                 m.ID,
		ConversationKey:    m.ConversationKey,
		SenderId:           m.SenderID,
		SenderDisplayName:  m.SenderName,
		RecipientId:        m.RecipientID,
		Content:            m.Content,
		CreatedOrUpdatedAt: m.Timestamp,
		Edited:             m.Edited,
		Seq:                m.Seq,
	}
}

func messageFromProto(m *dmsyncv1.Message) *store.Message {
	if m == nil {
		return nil
	}
	return &store.Message{
		ID:              m.GetId(),
		ConversationKey: m.GetConversationKey(),
		SenderID:        m.GetSenderId(),
		SenderName:      m.GetSenderDisplayName(),
		RecipientID:     m.GetRecipientId(),
		Content:         m.GetContent(),
		Timestamp:       m.GetCreatedOrUpdatedAt(),
		Edited:          m.GetEdited(),
		Seq:             m.GetSeq(),
	}
}

func messagesToProto(msgs []store.Message) []*dmsyncv1.Message {
	out := make([]*dmsyncv1.Message, 0, len(msgs))
	for i := range msgs {
		out = append(out, messageToProto(&msgs[i]))
	}
	return out
}

func messagesFromProto(msgs []*dmsyncv1.Message) []store.Message {
	out := make([]store.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, *messageFromProto(m))
	}
	return out
}

func summariesToProto(convs []store.ConversationSummary) []*dmsyncv1.ConversationSummary {
	out := make([]*dmsyncv1.ConversationSummary, 0, len(convs))
	for i := range convs {
		out = append(out, &dmsyncv1.ConversationSummary{
			Counterpart: userToProto(convs[i].Counterpart),
			LastMessage: messageToProto(convs[i].LastMessage),
			UnreadCount: int32(convs[i].UnreadCount),
		})
	}
	return out
}

func summariesFromProto(convs []*dmsyncv1.ConversationSummary) []store.ConversationSummary {
	out := make([]store.ConversationSummary, 0, len(convs))
	for _, c := range convs {
		out = append(out, store.ConversationSummary{
			Counterpart: userFromProto(c.GetCounterpart()),
			LastMessage: messageFromProto(c.GetLastMessage()),
			UnreadCount: int(c.GetUnreadCount()),
		})
	}
	return out
}

// unreadToProto lists counts ordered by counterpart.
func unreadToProto(counts map[string]int) []*dmsyncv1.UnreadCount {
	out := make([]*dmsyncv1.UnreadCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, &dmsyncv1.UnreadCount{Counterpart: id, Count: int32(n)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Counterpart < out[j].Counterpart })
	return out
}

func unreadFromProto(counts []*dmsyncv1.UnreadCount) map[string]int {
	out := make(map[string]int, len(counts))
	for _, c := range counts {
		out[c.GetCounterpart()] = int(c.GetCount())
	}
	return out
}

func snapshotToProto(snap sync.Snapshot) *dmsyncv1.Snapshot {
	pb := &dmsyncv1.Snapshot{
		Namespace: snap.Namespace.String(),
		Rev:       snap.Rev,
		Initial:   snap.Initial,
		Online:    snap.Online,
	}
	switch snap.Namespace.Kind {
	case sync.KindConversation:
		pb.Messages = messagesToProto(snap.Messages)
	case sync.KindUnread:
		pb.Unread = unreadToProto(snap.Unread)
	case sync.KindInbox:
		pb.Inbox = summariesToProto(snap.Inbox)
	}
	return pb
}

func snapshotFromProto(pb *dmsyncv1.Snapshot) (sync.Snapshot, error) {
	ns, err := sync.ParseNamespace(pb.GetNamespace())
	if err != nil {
		return sync.Snapshot{}, err
	}
	snap := sync.Snapshot{
		Namespace: ns,
		Rev:       pb.GetRev(),
		Initial:   pb.GetInitial(),
		Online:    pb.GetOnline(),
	}
	switch ns.Kind {
	case sync.KindConversation:
		snap.Messages = messagesFromProto(pb.GetMessages())
	case sync.KindUnread:
		snap.Unread = unreadFromProto(pb.GetUnread())
	case sync.KindInbox:
		snap.Inbox = summariesFromProto(pb.GetInbox())
	}
	return snap, nil
}
