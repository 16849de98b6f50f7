package daemon

import (
	"context"
	"fmt"
	"net"
	"os"

	dmsyncv1 "github.com/matheus3301/dmsync/gen/dmsync/v1"
	"github.com/matheus3301/dmsync/internal/api"
	"github.com/matheus3301/dmsync/internal/lock"
	"github.com/matheus3301/dmsync/internal/paths"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server manages the gRPC server lifecycle for an instance daemon.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	listener   net.Listener
	socketPath string
	logger     *zap.Logger
}

// NewServer creates a gRPC server bound to the instance's Unix domain socket.
// It requires the instance lock, since it replaces any socket file left at
// the path.
func NewServer(p Params, _ *lock.Lock, logger *zap.Logger, svc *api.Service) (*Server, error) {
	socketPath := p.SocketPath
	if socketPath == "" {
		socketPath = paths.SocketPath(p.Instance)
	}

	// Clean stale socket if it exists.
	if _, err := os.Stat(socketPath); err == nil {
		_ = os.Remove(socketPath)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen unix socket: %w", err)
	}
	if err := os.Chmod(socketPath, 0600); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("chmod socket: %w", err)
	}

	srv := grpc.NewServer(api.ServerOptions(logger)...)
	dmsyncv1.RegisterMessagingServer(srv, svc)
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(dmsyncv1.Messaging_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return &Server{
		grpcServer: srv,
		health:     hs,
		listener:   listener,
		socketPath: socketPath,
		logger:     logger,
	}, nil
}

// SetServing flips the health status reported for the instance.
func (s *Server) SetServing(ok bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(dmsyncv1.Messaging_ServiceDesc.ServiceName, st)
}

// Start begins serving gRPC requests. Blocks until stopped.
func (s *Server) Start() error {
	s.logger.Info("gRPC server starting", zap.String("socket", s.socketPath))
	return s.grpcServer.Serve(s.listener)
}

// Stop ends open streams, stops the server and removes the socket file.
// Watch and session streams never finish on their own, so a graceful stop
// is bounded by ctx.
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("gRPC server stopping")
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.grpcServer.Stop()
		<-done
	}
	_ = os.Remove(s.socketPath)
}
