package api

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// ServerOptions returns the interceptors every server hosting the
// Messaging service needs: application errors become status codes and
// each call is logged.
func ServerOptions(logger *zap.Logger) []grpc.ServerOption {
	if logger == nil {
		logger = zap.NewNop()
	}
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(unaryInterceptor(logger)),
		grpc.ChainStreamInterceptor(streamInterceptor(logger)),
	}
}

func unaryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		err = toStatus(err)
		logCall(logger, info.FullMethod, start, err)
		return resp, err
	}
}

func streamInterceptor(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := toStatus(handler(srv, ss))
		logCall(logger, info.FullMethod, start, err)
		return err
	}
}

func logCall(logger *zap.Logger, method string, start time.Time, err error) {
	code := grpcstatus.Code(err)
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("code", code.String()),
		zap.Duration("took", time.Since(start)),
	}
	switch code {
	case codes.OK, codes.Canceled:
		logger.Debug("rpc", fields...)
	case codes.Internal, codes.Unknown:
		logger.Error("rpc failed", append(fields, zap.Error(err))...)
	default:
		logger.Info("rpc rejected", append(fields, zap.Error(err))...)
	}
}
