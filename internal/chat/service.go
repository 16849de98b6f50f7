// Package chat is the messaging facade: the one API surrounding code uses
// to send, edit, delete, open conversations and list the inbox.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/convkey"
	"github.com/matheus3301/dmsync/internal/metrics"
	"github.com/matheus3301/dmsync/internal/presence"
	"github.com/matheus3301/dmsync/internal/roster"
	"github.com/matheus3301/dmsync/internal/store"
	"github.com/matheus3301/dmsync/internal/sync"
	"github.com/matheus3301/dmsync/internal/unread"
	"go.uber.org/zap"
)

const bestEffortTimeout = 5 * time.Second

// Inbox serves conversation summaries.
type Inbox interface {
	Inbox(ctx context.Context, viewerID string) ([]store.ConversationSummary, int64, error)
}

// Service composes the store, counters, presence, index and sync engine.
type Service struct {
	store    store.Backend
	unread   *unread.Counter
	presence *presence.Tracker
	inbox    Inbox
	engine   *sync.Engine
	roster   roster.Directory
	limiter  *limiterPool
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewService creates the facade. st should publish its writes on the bus
// the engine and index follow (see store.Publisher).
func NewService(
	st store.Backend,
	counter *unread.Counter,
	tracker *presence.Tracker,
	inbox Inbox,
	engine *sync.Engine,
	dir roster.Directory,
	limits Limits,
	logger *zap.Logger,
	m *metrics.Metrics,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    st,
		unread:   counter,
		presence: tracker,
		inbox:    inbox,
		engine:   engine,
		roster:   dir,
		limiter:  &limiterPool{cfg: limits},
		logger:   logger,
		metrics:  m,
	}
}

func (s *Service) record(op string, err error) {
	s.metrics.Operation(op, apperr.Code(err))
}

func (s *Service) allow(op, userID string) error {
	if s.limiter.Allow(userID) {
		return nil
	}
	s.metrics.RateLimited(op)
	return fmt.Errorf("%s by %q: %w", op, userID, apperr.ErrRateLimited)
}

// bestEffortContext detaches follow-up writes from the caller so a caller
// that gives up after the message is stored does not cancel them.
func bestEffortContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), bestEffortTimeout)
}

// OpenConversation clears the viewer's unread count for the conversation
// and subscribes to its messages. The subscription's first snapshot is the
// whole conversation; it ends with ctx or CloseConversation.
func (s *Service) OpenConversation(ctx context.Context, viewerID, counterpartID string) (*sync.Subscription, error) {
	key, err := convkey.Derive(viewerID, counterpartID)
	if err != nil {
		return nil, err
	}
	s.unread.Reset(ctx, key, viewerID)
	return s.engine.Subscribe(ctx, sync.Conversation(key))
}

// CloseConversation ends a subscription from OpenConversation or Watch.
func (s *Service) CloseConversation(sub *sync.Subscription) {
	if sub != nil {
		sub.Unsubscribe()
	}
}

// MarkRead clears the viewer's unread count without subscribing.
func (s *Service) MarkRead(ctx context.Context, viewerID, counterpartID string) error {
	key, err := convkey.Derive(viewerID, counterpartID)
	if err != nil {
		return err
	}
	s.unread.Reset(ctx, key, viewerID)
	return nil
}

// Send appends a message from viewerID to counterpartID and counts it as
// unread for the recipient. The counter is best-effort: once the message
// is stored, Send succeeds even if the increment fails.
func (s *Service) Send(ctx context.Context, viewerID, counterpartID, content string) (*store.Message, error) {
	m, err := s.send(ctx, viewerID, counterpartID, content)
	s.record("send", err)
	return m, err
}

func (s *Service) send(ctx context.Context, viewerID, counterpartID, content string) (*store.Message, error) {
	key, err := convkey.Derive(viewerID, counterpartID)
	if err != nil {
		return nil, err
	}
	if content, err = store.NormalizeContent(content); err != nil {
		return nil, err
	}
	if err := s.allow("send", viewerID); err != nil {
		return nil, err
	}

	m, err := s.store.Append(ctx, store.NewMessage{
		ConversationKey: key,
		SenderID:        viewerID,
		SenderName:      s.displayName(ctx, viewerID),
		RecipientID:     counterpartID,
		Content:         content,
	})
	if err != nil {
		return nil, err
	}

	bctx, cancel := bestEffortContext(ctx)
	defer cancel()
	s.unread.Increment(bctx, key, counterpartID)
	return m, nil
}

// EditOwnMessage replaces the content of one of the viewer's messages. The
// edited message is re-stamped and moves to the end of its conversation.
func (s *Service) EditOwnMessage(ctx context.Context, viewerID, messageID, content string) (*store.Message, error) {
	m, err := s.editOwn(ctx, viewerID, messageID, content)
	s.record("edit", err)
	return m, err
}

func (s *Service) editOwn(ctx context.Context, viewerID, messageID, content string) (*store.Message, error) {
	content, err := store.NormalizeContent(content)
	if err != nil {
		return nil, err
	}
	orig, err := s.owned(ctx, viewerID, messageID)
	if err != nil {
		return nil, err
	}
	if err := s.allow("edit", viewerID); err != nil {
		return nil, err
	}
	return s.store.Edit(ctx, orig.ConversationKey, messageID, viewerID, content)
}

// DeleteOwnMessage hard-deletes one of the viewer's messages.
func (s *Service) DeleteOwnMessage(ctx context.Context, viewerID, messageID string) (*store.Message, error) {
	m, err := s.deleteOwn(ctx, viewerID, messageID)
	s.record("delete", err)
	return m, err
}

func (s *Service) deleteOwn(ctx context.Context, viewerID, messageID string) (*store.Message, error) {
	orig, err := s.owned(ctx, viewerID, messageID)
	if err != nil {
		return nil, err
	}
	if err := s.allow("delete", viewerID); err != nil {
		return nil, err
	}
	return s.store.Delete(ctx, orig.ConversationKey, messageID, viewerID)
}

// owned loads a message and checks the viewer sent it. The store repeats
// the check inside its write.
func (s *Service) owned(ctx context.Context, viewerID, messageID string) (*store.Message, error) {
	if err := convkey.ValidateUserID(viewerID); err != nil {
		return nil, err
	}
	if messageID == "" {
		return nil, apperr.Validation("empty message id")
	}
	m, err := s.store.Get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if m.SenderID != viewerID {
		return nil, fmt.Errorf("message %q sent by %q, requested by %q: %w", messageID, m.SenderID, viewerID, apperr.ErrPermissionDenied)
	}
	return m, nil
}

// History returns the conversation between viewerID and counterpartID in
// display order.
func (s *Service) History(ctx context.Context, viewerID, counterpartID string) ([]store.Message, error) {
	key, err := convkey.Derive(viewerID, counterpartID)
	if err != nil {
		return nil, err
	}
	msgs, _, err := s.store.List(ctx, key)
	return msgs, err
}

// ListInbox returns the viewer's counterparts, most recent activity first,
// each with its last message and unread count.
func (s *Service) ListInbox(ctx context.Context, viewerID string) ([]store.ConversationSummary, error) {
	summaries, _, err := s.inbox.Inbox(ctx, viewerID)
	return summaries, err
}

// Unread returns the viewer's unread count with one counterpart.
func (s *Service) Unread(ctx context.Context, viewerID, counterpartID string) (int, error) {
	key, err := convkey.Derive(viewerID, counterpartID)
	if err != nil {
		return 0, err
	}
	return s.unread.Get(ctx, key, viewerID)
}

// UnreadAll returns the viewer's unread counts keyed by counterpart.
func (s *Service) UnreadAll(ctx context.Context, viewerID string) (map[string]int, error) {
	if err := convkey.ValidateUserID(viewerID); err != nil {
		return nil, err
	}
	return s.unread.GetAllForUser(ctx, viewerID)
}

// Watch subscribes the viewer to any namespace they may see.
func (s *Service) Watch(ctx context.Context, viewerID string, ns sync.Namespace) (*sync.Subscription, error) {
	if err := convkey.ValidateUserID(viewerID); err != nil {
		return nil, err
	}
	if err := ns.Validate(); err != nil {
		return nil, err
	}
	if !ns.VisibleTo(viewerID) {
		return nil, fmt.Errorf("watch %s by %q: %w", ns, viewerID, apperr.ErrPermissionDenied)
	}
	return s.engine.Subscribe(ctx, ns)
}

// Connect marks userID online for the lifetime of conn, the context of the
// user's transport connection. If conn ends without a sign-off the user is
// marked offline by the auto-offline hook. Calling the returned signOff
// marks the user offline explicitly.
func (s *Service) Connect(conn context.Context, userID string) (signOff func(), err error) {
	if err := convkey.ValidateUserID(userID); err != nil {
		return nil, err
	}
	s.presence.SetOnline(userID)
	stop := s.presence.RegisterAutoOffline(conn, userID)
	return func() {
		stop()
		s.presence.SetOffline(userID)
	}, nil
}

// Online reports whether userID is online.
func (s *Service) Online(ctx context.Context, userID string) (bool, error) {
	return s.presence.Online(ctx, userID)
}

// Users returns the roster.
func (s *Service) Users(ctx context.Context) ([]store.User, error) {
	return s.roster.Users(ctx)
}

func (s *Service) displayName(ctx context.Context, userID string) string {
	if s.roster != nil {
		if u, ok := s.roster.Lookup(ctx, userID); ok {
			return u.DisplayName
		}
	}
	return userID
}
