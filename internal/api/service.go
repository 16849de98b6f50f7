// Package api exposes the messaging facade over gRPC using the
// dmsync.v1 protobuf service. The caller's identity travels in the
// x-user-id metadata key.
package api

import (
	"context"
	"errors"
	"io"
	"time"

	dmsyncv1 "github.com/matheus3301/dmsync/gen/dmsync/v1"
	"github.com/matheus3301/dmsync/internal/chat"
	"github.com/matheus3301/dmsync/internal/status"
	"github.com/matheus3301/dmsync/internal/sync"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// UserIDKey is the metadata key carrying the caller's user id.
const UserIDKey = "x-user-id"

// Info describes the running instance for GetStatus.
type Info struct {
	Instance string
	Backend  string
}

// Service implements the Messaging gRPC service.
type Service struct {
	dmsyncv1.UnimplementedMessagingServer

	chat      *chat.Service
	engine    *sync.Engine
	machine   *status.Machine
	info      Info
	startedAt time.Time
	logger    *zap.Logger
}

// NewService creates the gRPC service over a chat facade.
func NewService(c *chat.Service, engine *sync.Engine, machine *status.Machine, info Info, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		chat:      c,
		engine:    engine,
		machine:   machine,
		info:      info,
		startedAt: time.Now(),
		logger:    logger,
	}
}

func viewer(ctx context.Context) (string, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get(UserIDKey); len(v) > 0 && v[0] != "" {
		return v[0], nil
	}
	return "", errNoIdentity
}

func (s *Service) Send(ctx context.Context, req *dmsyncv1.SendRequest) (*dmsyncv1.SendResponse, error) {
	user, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.chat.Send(ctx, user, req.GetTo(), req.GetContent())
	if err != nil {
		return nil, err
	}
	return &dmsyncv1.SendResponse{Message: messageToProto(m)}, nil
}

func (s *Service) Edit(ctx context.Context, req *dmsyncv1.EditRequest) (*dmsyncv1.EditResponse, error) {
	user, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.chat.EditOwnMessage(ctx, user, req.GetMessageId(), req.GetContent())
	if err != nil {
		return nil, err
	}
	return &dmsyncv1.EditResponse{Message: messageToProto(m)}, nil
}

func (s *Service) Delete(ctx context.Context, req *dmsyncv1.DeleteRequest) (*dmsyncv1.DeleteResponse, error) {
	user, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.chat.DeleteOwnMessage(ctx, user, req.GetMessageId())
	if err != nil {
		return nil, err
	}
	return &dmsyncv1.DeleteResponse{Message: messageToProto(m)}, nil
}

func (s *Service) MarkRead(ctx context.Context, req *dmsyncv1.MarkReadRequest) (*dmsyncv1.MarkReadResponse, error) {
	user, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.chat.MarkRead(ctx, user, req.GetCounterpart()); err != nil {
		return nil, err
	}
	return &dmsyncv1.MarkReadResponse{}, nil
}

func (s *Service) History(ctx context.Context, req *dmsyncv1.HistoryRequest) (*dmsyncv1.HistoryResponse, error) {
	user, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	msgs, err := s.chat.History(ctx, user, req.GetCounterpart())
	if err != nil {
		return nil, err
	}
	return &dmsyncv1.HistoryResponse{Messages: messagesToProto(msgs)}, nil
}

func (s *Service) Inbox(ctx context.Context, _ *dmsyncv1.InboxRequest) (*dmsyncv1.InboxResponse, error) {
	user, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	convs, err := s.chat.ListInbox(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dmsyncv1.InboxResponse{Conversations: summariesToProto(convs)}, nil
}

func (s *Service) Unread(ctx context.Context, req *dmsyncv1.UnreadRequest) (*dmsyncv1.UnreadResponse, error) {
	user, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.chat.Unread(ctx, user, req.GetCounterpart())
	if err != nil {
		return nil, err
	}
	return &dmsyncv1.UnreadResponse{Count: int32(n)}, nil
}

func (s *Service) UnreadAll(ctx context.Context, _ *dmsyncv1.UnreadAllRequest) (*dmsyncv1.UnreadAllResponse, error) {
	user, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.chat.UnreadAll(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dmsyncv1.UnreadAllResponse{Counts: unreadToProto(counts)}, nil
}

func (s *Service) ListUsers(ctx context.Context, _ *dmsyncv1.ListUsersRequest) (*dmsyncv1.ListUsersResponse, error) {
	users, err := s.chat.Users(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dmsyncv1.ListUsersResponse{Users: make([]*dmsyncv1.User, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, userToProto(u))
	}
	return resp, nil
}

func (s *Service) GetStatus(_ context.Context, _ *dmsyncv1.GetStatusRequest) (*dmsyncv1.GetStatusResponse, error) {
	resp := &dmsyncv1.GetStatusResponse{
		Instance:            s.info.Instance,
		Backend:             s.info.Backend,
		UptimeMs:            time.Since(s.startedAt).Milliseconds(),
		ActiveSubscriptions: int32(s.engine.Active()),
	}
	if s.machine != nil {
		resp.State = string(s.machine.Current())
	}
	return resp, nil
}

// Open clears the caller's unread count with the counterpart and streams
// the conversation, initial snapshot first.
func (s *Service) Open(req *dmsyncv1.OpenRequest, stream grpc.ServerStreamingServer[dmsyncv1.Snapshot]) error {
	user, err := viewer(stream.Context())
	if err != nil {
		return err
	}
	sub, err := s.chat.OpenConversation(stream.Context(), user, req.GetCounterpart())
	if err != nil {
		return err
	}
	defer s.chat.CloseConversation(sub)
	return pump(stream, sub)
}

// Watch streams any namespace visible to the caller.
func (s *Service) Watch(req *dmsyncv1.WatchRequest, stream grpc.ServerStreamingServer[dmsyncv1.Snapshot]) error {
	user, err := viewer(stream.Context())
	if err != nil {
		return err
	}
	ns, err := sync.ParseNamespace(req.GetNamespace())
	if err != nil {
		return err
	}
	sub, err := s.chat.Watch(stream.Context(), user, ns)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()
	return pump(stream, sub)
}

func pump(stream grpc.ServerStreamingServer[dmsyncv1.Snapshot], sub *sync.Subscription) error {
	for {
		select {
		case snap, ok := <-sub.C():
			if !ok {
				return sub.Err()
			}
			if err := stream.Send(snapshotToProto(snap)); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}

// Session keeps the caller online while the stream is open. Closing the
// send side signs off; any other end of the stream leaves the auto-offline
// hook to mark the caller offline.
func (s *Service) Session(stream grpc.BidiStreamingServer[dmsyncv1.SessionRequest, dmsyncv1.SessionEvent]) error {
	user, err := viewer(stream.Context())
	if err != nil {
		return err
	}
	signOff, err := s.chat.Connect(stream.Context(), user)
	if err != nil {
		return err
	}
	if err := stream.Send(&dmsyncv1.SessionEvent{UserId: user, Online: true}); err != nil {
		return err
	}
	for {
		_, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			signOff()
			s.logger.Debug("session signed off", zap.String("user", user))
			return nil
		}
		if err != nil {
			return nil
		}
	}
}
