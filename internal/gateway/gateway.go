// Package gateway serves the HTTP surface of the daemon: websocket
// sessions for browser and mobile clients, Prometheus metrics and a
// health probe.
package gateway

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/matheus3301/dmsync/internal/chat"
	"github.com/matheus3301/dmsync/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// UserHeader carries the connecting user's id. The "user" query parameter
// is accepted too, since browsers cannot set headers on websocket dials.
const UserHeader = "X-User-Id"

// Gateway is the HTTP server.
type Gateway struct {
	chat     *chat.Service
	metrics  *metrics.Metrics
	logger   *zap.Logger
	upgrader websocket.Upgrader
	ready    atomic.Bool

	mu       sync.Mutex
	sessions map[*session]struct{}
	wg       sync.WaitGroup

	server   *http.Server
	listener net.Listener
}

// New creates a gateway. Call Listen and Serve to start it, or use
// Handler with an existing server.
func New(c *chat.Service, m *metrics.Metrics, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		chat:    c,
		metrics: m,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		sessions: make(map[*session]struct{}),
	}
}

// SetReady flips the health probe.
func (g *Gateway) SetReady(ok bool) { g.ready.Store(ok) }

// Handler returns the router.
func (g *Gateway) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", g.health).Methods(http.MethodGet)
	if g.metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(g.metrics.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	r.HandleFunc("/v1/ws", g.serveWS).Methods(http.MethodGet)
	return r
}

func (g *Gateway) health(w http.ResponseWriter, _ *http.Request) {
	if !g.ready.Load() {
		http.Error(w, "starting", http.StatusServiceUnavailable)
		return
	}
	_, _ = w.Write([]byte("ok"))
}

func (g *Gateway) serveWS(w http.ResponseWriter, r *http.Request) {
	user := r.Header.Get(UserHeader)
	if user == "" {
		user = r.URL.Query().Get("user")
	}
	if user == "" {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	s := newSession(g, conn, user)
	g.mu.Lock()
	g.sessions[s] = struct{}{}
	g.wg.Add(1)
	g.mu.Unlock()
	defer func() {
		g.mu.Lock()
		delete(g.sessions, s)
		g.mu.Unlock()
		g.wg.Done()
	}()
	s.run()
}

// Listen binds addr. It is split from Serve so startup can fail fast.
func (g *Gateway) Listen(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	g.listener = lis
	g.server = &http.Server{
		Handler:           g.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// Addr is the bound address, valid after Listen.
func (g *Gateway) Addr() string {
	if g.listener == nil {
		return ""
	}
	return g.listener.Addr().String()
}

// Serve blocks until Shutdown.
func (g *Gateway) Serve() error {
	g.logger.Info("gateway listening", zap.String("addr", g.Addr()))
	if err := g.server.Serve(g.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections, drops every websocket session
// (their users go offline through the auto-offline hook) and waits for
// them to finish.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.SetReady(false)
	var err error
	if g.server != nil {
		err = g.server.Shutdown(ctx)
	}
	g.mu.Lock()
	for s := range g.sessions {
		s.drop()
	}
	g.mu.Unlock()

	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}
	return err
}
