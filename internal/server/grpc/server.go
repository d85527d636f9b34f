// Package grpc exposes a store.Store over the savebank.store.StoreService
// gRPC service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/savebank/internal/logging"
	pb "github.com/dmitrijs2005/savebank/internal/proto"
	"github.com/dmitrijs2005/savebank/internal/store"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedStoreServiceServer
	address string
	store   store.Store
	logger  logging.Logger
	metrics *Metrics
}

func NewGRPCServer(a string, l logging.Logger, s store.Store, m *Metrics) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		store:   s,
		metrics: m,
	}
}

// NewServer creates the grpc.Server with interceptors and the store
// service registered, without binding a listener.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.metricsInterceptor))
	pb.RegisterStoreServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
