package gateway

import (
	"context"
	"encoding/json"
	"net"
	gosync "sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/sync"
	"go.uber.org/zap"
)

var (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxMessageSize = int64(64 * 1024)
	sendBufSize    = 64
)

// session is one websocket connection. The user is online while it lasts.
// Requests are handled in arrival order on the read goroutine; snapshots
// from each subscription are pumped to the single writer.
type session struct {
	g      *Gateway
	conn   *websocket.Conn
	user   string
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
	egress chan frame

	mu   gosync.Mutex
	subs map[string]*pump
	wg   gosync.WaitGroup
}

// pump forwards one subscription's frames. done closes after its last
// frame is queued.
type pump struct {
	sub  *sync.Subscription
	done chan struct{}
}

func newSession(g *Gateway, conn *websocket.Conn, user string) *session {
	ctx, cancel := context.WithCancel(context.Background())
	return &session{
		g:      g,
		conn:   conn,
		user:   user,
		log:    g.logger.With(zap.String("user", user)),
		ctx:    ctx,
		cancel: cancel,
		egress: make(chan frame, sendBufSize),
		subs:   make(map[string]*pump),
	}
}

func (s *session) run() {
	defer func() { _ = s.conn.Close() }()

	signOff, err := s.g.chat.Connect(s.ctx, s.user)
	if err != nil {
		s.cancel()
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = s.conn.WriteJSON(errorFrame("", err))
		return
	}
	s.log.Info("websocket session opened")

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeLoop()
	}()
	s.send(frame{Type: frameSession, Data: map[string]any{"userId": s.user, "online": true}})

	if s.readLoop() {
		signOff()
		s.log.Info("websocket session signed off")
	} else {
		s.log.Info("websocket session dropped")
	}
	s.cancel()
	s.wg.Wait()
	<-writerDone
}

// readLoop returns true when the peer signed off explicitly.
func (s *session) readLoop() bool {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return true
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				s.log.Info("websocket peer timed out")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.log.Warn("websocket closed unexpectedly", zap.Error(err))
			}
			return false
		}
		var req request
		if err := json.Unmarshal(data, &req); err != nil {
			s.send(errorFrame("", apperr.Validation("malformed frame: %v", err)))
			continue
		}
		if req.Type == opSignOff {
			return true
		}
		s.handle(req)
	}
}

func (s *session) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case f := <-s.egress:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(f); err != nil {
				s.log.Debug("websocket write failed", zap.Error(err))
				s.cancel()
				_ = s.conn.Close()
				return
			}
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				s.cancel()
				_ = s.conn.Close()
				return
			}
		}
	}
}

// drop ends the session as if the connection was lost.
func (s *session) drop() {
	s.cancel()
	_ = s.conn.Close()
}

func (s *session) send(f frame) {
	select {
	case s.egress <- f:
	case <-s.ctx.Done():
	}
}

func errorFrame(id string, err error) frame {
	return frame{Type: frameError, ID: id, Code: apperr.Code(err), Message: err.Error()}
}

func (s *session) reply(id string, data any, err error) {
	if err != nil {
		s.send(errorFrame(id, err))
		return
	}
	s.send(frame{Type: frameResult, ID: id, Data: data})
}

func (s *session) handle(req request) {
	ctx := s.ctx
	c := s.g.chat
	switch req.Type {
	case opSend:
		m, err := c.Send(ctx, s.user, req.To, req.Content)
		s.reply(req.ID, m, err)
	case opEdit:
		m, err := c.EditOwnMessage(ctx, s.user, req.MessageID, req.Content)
		s.reply(req.ID, m, err)
	case opDelete:
		m, err := c.DeleteOwnMessage(ctx, s.user, req.MessageID)
		s.reply(req.ID, m, err)
	case opMarkRead:
		s.reply(req.ID, nil, c.MarkRead(ctx, s.user, req.Counterpart))
	case opHistory:
		msgs, err := c.History(ctx, s.user, req.Counterpart)
		s.reply(req.ID, msgs, err)
	case opInbox:
		convs, err := c.ListInbox(ctx, s.user)
		s.reply(req.ID, convs, err)
	case opUnread:
		if req.Counterpart != "" {
			n, err := c.Unread(ctx, s.user, req.Counterpart)
			s.reply(req.ID, n, err)
			return
		}
		counts, err := c.UnreadAll(ctx, s.user)
		s.reply(req.ID, counts, err)
	case opOpen:
		sub, err := c.OpenConversation(ctx, s.user, req.Counterpart)
		s.subscribed(req.ID, sub, err)
	case opWatch:
		ns, err := sync.ParseNamespace(req.Namespace)
		if err != nil {
			s.reply(req.ID, nil, err)
			return
		}
		sub, err := c.Watch(ctx, s.user, ns)
		s.subscribed(req.ID, sub, err)
	case opUnwatch:
		s.mu.Lock()
		p := s.subs[req.Sub]
		delete(s.subs, req.Sub)
		s.mu.Unlock()
		if p == nil {
			s.reply(req.ID, nil, apperr.Validation("no subscription %q", req.Sub))
			return
		}
		c.CloseConversation(p.sub)
		// The result goes out after every frame of the subscription.
		<-p.done
		s.reply(req.ID, nil, nil)
	default:
		s.reply(req.ID, nil, apperr.Validation("unknown frame type %q", req.Type))
	}
}

// subscribed replies with the subscription id and starts pumping its
// snapshots. The reply is queued before the first snapshot, and the closed
// frame after the last one.
func (s *session) subscribed(id string, sub *sync.Subscription, err error) {
	if err != nil {
		s.reply(id, nil, err)
		return
	}
	p := &pump{sub: sub, done: make(chan struct{})}
	s.mu.Lock()
	s.subs[sub.ID] = p
	s.mu.Unlock()
	s.send(frame{Type: frameResult, ID: id, Sub: sub.ID, Data: sub.Namespace})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for snap := range sub.C() {
			s.send(frame{Type: frameSnapshot, Sub: sub.ID, Snapshot: &snap})
		}
		defer close(p.done)
		s.mu.Lock()
		if s.subs[sub.ID] == p {
			delete(s.subs, sub.ID)
		}
		s.mu.Unlock()
		closed := frame{Type: frameClosed, Sub: sub.ID}
		if err := sub.Err(); err != nil {
			closed.Code = apperr.Code(err)
			closed.Message = err.Error()
		}
		s.send(closed)
	}()
}
