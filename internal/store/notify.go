package store

import (
	"context"
	"time"

	"github.com/matheus3301/dmsync/internal/bus"
)

// Publisher wraps a Backend and publishes a bus event after every
// committed write. Reads pass straight through.
type Publisher struct {
	Backend
	bus *bus.Bus
}

// NewPublisher decorates b so its writes are observable on the bus.
func NewPublisher(b Backend, eb *bus.Bus) *Publisher {
	return &Publisher{Backend: b, bus: eb}
}

func (p *Publisher) publish(kind, topic string, payload any) {
	p.bus.Publish(bus.Event{
		Kind:      kind,
		Topic:     topic,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func (p *Publisher) Append(ctx context.Context, nm NewMessage) (*Message, error) {
	m, err := p.Backend.Append(ctx, nm)
	if err != nil {
		return nil, err
	}
	p.publish(bus.KindMessageAppended, m.ConversationKey, *m)
	return m, nil
}

func (p *Publisher) Edit(ctx context.Context, conversationKey, messageID, requesterID, content string) (*Message, error) {
	m, err := p.Backend.Edit(ctx, conversationKey, messageID, requesterID, content)
	if err != nil {
		return nil, err
	}
	p.publish(bus.KindMessageEdited, m.ConversationKey, *m)
	return m, nil
}

func (p *Publisher) Delete(ctx context.Context, conversationKey, messageID, requesterID string) (*Message, error) {
	m, err := p.Backend.Delete(ctx, conversationKey, messageID, requesterID)
	if err != nil {
		return nil, err
	}
	p.publish(bus.KindMessageDeleted, m.ConversationKey, *m)
	return m, nil
}

func (p *Publisher) IncrementUnread(ctx context.Context, conversationKey, ownerID string) (int, error) {
	n, err := p.Backend.IncrementUnread(ctx, conversationKey, ownerID)
	if err != nil {
		return 0, err
	}
	p.publish(bus.KindUnreadChanged, ownerID, UnreadChange{ConversationKey: conversationKey, OwnerID: ownerID, Count: n})
	return n, nil
}

func (p *Publisher) ResetUnread(ctx context.Context, conversationKey, ownerID string) error {
	if err := p.Backend.ResetUnread(ctx, conversationKey, ownerID); err != nil {
		return err
	}
	p.publish(bus.KindUnreadChanged, ownerID, UnreadChange{ConversationKey: conversationKey, OwnerID: ownerID})
	return nil
}

func (p *Publisher) SetPresence(ctx context.Context, userID string, online bool) error {
	if err := p.Backend.SetPresence(ctx, userID, online); err != nil {
		return err
	}
	p.publish(bus.KindPresenceChanged, userID, PresenceChange{UserID: userID, Online: online})
	return nil
}
