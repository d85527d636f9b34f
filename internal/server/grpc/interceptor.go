package grpc

import (
	"context"
	"path"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	s.logger.Info(ctx, "request",
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start).String())

	return resp, err
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()
	resp, err := handler(ctx, req)
	s.metrics.observe(path.Base(info.FullMethod), status.Code(err).String(), time.Since(start))

	return resp, err
}
