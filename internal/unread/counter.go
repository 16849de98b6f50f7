// Package unread keeps per-recipient unread counts. Counts are an
// enhancement: write failures are logged and swallowed so they never fail
// the message operation that caused them.
package unread

import (
	"context"

	"github.com/matheus3301/dmsync/internal/metrics"
	"go.uber.org/zap"
)

// Store is the part of the backend holding counters.
type Store interface {
	IncrementUnread(ctx context.Context, conversationKey, ownerID string) (int, error)
	ResetUnread(ctx context.Context, conversationKey, ownerID string) error
	Unread(ctx context.Context, conversationKey, ownerID string) (int, error)
	UnreadForUser(ctx context.Context, ownerID string) (map[string]int, int64, error)
}

// Counter wraps a Store with best-effort writes.
type Counter struct {
	store   Store
	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewCounter creates a counter over store.
func NewCounter(store Store, logger *zap.Logger, m *metrics.Metrics) *Counter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Counter{store: store, log: logger, metrics: m}
}

// Increment adds one to ownerID's count for the conversation. It returns
// false if the write failed; the failure has already been logged.
func (c *Counter) Increment(ctx context.Context, conversationKey, ownerID string) bool {
	n, err := c.store.IncrementUnread(ctx, conversationKey, ownerID)
	if err != nil {
		c.metrics.BestEffortFailure("unread")
		c.log.Warn("unread increment failed",
			zap.String("conversation", conversationKey),
			zap.String("owner", ownerID),
			zap.Error(err),
		)
		return false
	}
	c.log.Debug("unread incremented",
		zap.String("conversation", conversationKey),
		zap.String("owner", ownerID),
		zap.Int("count", n),
	)
	return true
}

// Reset clears ownerID's count for the conversation.
func (c *Counter) Reset(ctx context.Context, conversationKey, ownerID string) bool {
	if err := c.store.ResetUnread(ctx, conversationKey, ownerID); err != nil {
		c.metrics.BestEffortFailure("unread")
		c.log.Warn("unread reset failed",
			zap.String("conversation", conversationKey),
			zap.String("owner", ownerID),
			zap.Error(err),
		)
		return false
	}
	return true
}

// Get returns ownerID's count for one conversation.
func (c *Counter) Get(ctx context.Context, conversationKey, ownerID string) (int, error) {
	return c.store.Unread(ctx, conversationKey, ownerID)
}

// GetAllForUser returns ownerID's counts keyed by counterpart id.
func (c *Counter) GetAllForUser(ctx context.Context, ownerID string) (map[string]int, error) {
	counts, _, err := c.store.UnreadForUser(ctx, ownerID)
	return counts, err
}
