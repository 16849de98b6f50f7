package api

import (
	"context"
	"errors"
	"io"

	dmsyncv1 "github.com/matheus3301/dmsync/gen/dmsync/v1"
	"github.com/matheus3301/dmsync/internal/store"
	"github.com/matheus3301/dmsync/internal/sync"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Client calls the Messaging service as one user.
type Client struct {
	conn *grpc.ClientConn
	rpc  dmsyncv1.MessagingClient
	user string
}

// Dial connects to a daemon's unix socket. user is sent as the caller's
// identity on every call.
func Dial(socketPath, user string) (*Client, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, rpc: dmsyncv1.NewMessagingClient(conn), user: user}, nil
}

// Conn exposes the underlying connection, e.g. for the health client.
func (c *Client) Conn() *grpc.ClientConn { return c.conn }

func (c *Client) Close() error { return c.conn.Close() }

func (c *Client) outgoing(ctx context.Context) context.Context {
	if c.user == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, UserIDKey, c.user)
}

func (c *Client) Send(ctx context.Context, to, content string) (*store.Message, error) {
	resp, err := c.rpc.Send(c.outgoing(ctx), &dmsyncv1.SendRequest{To: to, Content: content})
	if err != nil {
		return nil, FromStatus(err)
	}
	return messageFromProto(resp.GetMessage()), nil
}

func (c *Client) Edit(ctx context.Context, messageID, content string) (*store.Message, error) {
	resp, err := c.rpc.Edit(c.outgoing(ctx), &dmsyncv1.EditRequest{MessageId: messageID, Content: content})
	if err != nil {
		return nil, FromStatus(err)
	}
	return messageFromProto(resp.GetMessage()), nil
}

func (c *Client) Delete(ctx context.Context, messageID string) (*store.Message, error) {
	resp, err := c.rpc.Delete(c.outgoing(ctx), &dmsyncv1.DeleteRequest{MessageId: messageID})
	if err != nil {
		return nil, FromStatus(err)
	}
	return messageFromProto(resp.GetMessage()), nil
}

func (c *Client) MarkRead(ctx context.Context, counterpart string) error {
	_, err := c.rpc.MarkRead(c.outgoing(ctx), &dmsyncv1.MarkReadRequest{Counterpart: counterpart})
	return FromStatus(err)
}

func (c *Client) History(ctx context.Context, counterpart string) ([]store.Message, error) {
	resp, err := c.rpc.History(c.outgoing(ctx), &dmsyncv1.HistoryRequest{Counterpart: counterpart})
	if err != nil {
		return nil, FromStatus(err)
	}
	return messagesFromProto(resp.GetMessages()), nil
}

func (c *Client) Inbox(ctx context.Context) ([]store.ConversationSummary, error) {
	resp, err := c.rpc.Inbox(c.outgoing(ctx), &dmsyncv1.InboxRequest{})
	if err != nil {
		return nil, FromStatus(err)
	}
	return summariesFromProto(resp.GetConversations()), nil
}

func (c *Client) Unread(ctx context.Context, counterpart string) (int, error) {
	resp, err := c.rpc.Unread(c.outgoing(ctx), &dmsyncv1.UnreadRequest{Counterpart: counterpart})
	if err != nil {
		return 0, FromStatus(err)
	}
	return int(resp.GetCount()), nil
}

func (c *Client) UnreadAll(ctx context.Context) (map[string]int, error) {
	resp, err := c.rpc.UnreadAll(c.outgoing(ctx), &dmsyncv1.UnreadAllRequest{})
	if err != nil {
		return nil, FromStatus(err)
	}
	return unreadFromProto(resp.GetCounts()), nil
}

func (c *Client) Users(ctx context.Context) ([]store.User, error) {
	resp, err := c.rpc.ListUsers(c.outgoing(ctx), &dmsyncv1.ListUsersRequest{})
	if err != nil {
		return nil, FromStatus(err)
	}
	users := make([]store.User, 0, len(resp.GetUsers()))
	for _, u := range resp.GetUsers() {
		users = append(users, userFromProto(u))
	}
	return users, nil
}

func (c *Client) GetStatus(ctx context.Context) (*dmsyncv1.GetStatusResponse, error) {
	resp, err := c.rpc.GetStatus(c.outgoing(ctx), &dmsyncv1.GetStatusRequest{})
	if err != nil {
		return nil, FromStatus(err)
	}
	return resp, nil
}

// SnapshotStream receives snapshots from Open or Watch.
type SnapshotStream struct {
	stream grpc.ServerStreamingClient[dmsyncv1.Snapshot]
}

// Recv blocks for the next snapshot. It returns io.EOF when the server
// ends the stream cleanly.
func (s *SnapshotStream) Recv() (sync.Snapshot, error) {
	pb, err := s.stream.Recv()
	if err != nil {
		return sync.Snapshot{}, FromStatus(err)
	}
	return snapshotFromProto(pb)
}

// Open opens the conversation with counterpart. Cancel ctx to close it.
func (c *Client) Open(ctx context.Context, counterpart string) (*SnapshotStream, error) {
	stream, err := c.rpc.Open(c.outgoing(ctx), &dmsyncv1.OpenRequest{Counterpart: counterpart})
	if err != nil {
		return nil, FromStatus(err)
	}
	return &SnapshotStream{stream: stream}, nil
}

// Watch subscribes to ns. Cancel ctx to unsubscribe.
func (c *Client) Watch(ctx context.Context, ns sync.Namespace) (*SnapshotStream, error) {
	stream, err := c.rpc.Watch(c.outgoing(ctx), &dmsyncv1.WatchRequest{Namespace: ns.String()})
	if err != nil {
		return nil, FromStatus(err)
	}
	return &SnapshotStream{stream: stream}, nil
}

// SessionStream holds the caller online until Close or until its context
// ends.
type SessionStream struct {
	stream grpc.BidiStreamingClient[dmsyncv1.SessionRequest, dmsyncv1.SessionEvent]
}

// Session starts a presence session and waits for the server to confirm.
func (c *Client) Session(ctx context.Context) (*SessionStream, *dmsyncv1.SessionEvent, error) {
	stream, err := c.rpc.Session(c.outgoing(ctx))
	if err != nil {
		return nil, nil, FromStatus(err)
	}
	evt, err := stream.Recv()
	if err != nil {
		return nil, nil, FromStatus(err)
	}
	return &SessionStream{stream: stream}, evt, nil
}

// Close signs off and waits for the server to finish the session.
func (s *SessionStream) Close() error {
	if err := s.stream.CloseSend(); err != nil {
		return FromStatus(err)
	}
	if _, err := s.stream.Recv(); err != nil && !errors.Is(err, io.EOF) {
		return FromStatus(err)
	}
	return nil
}
