package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/savebank/internal/common"
	pb "github.com/dmitrijs2005/savebank/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func toStatus(err error) error {
	switch {
	case errors.Is(err, pb.ErrMalformed),
		errors.Is(err, common.ErrInvalidPath),
		errors.Is(err, common.ErrInvalidValue):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (s *GRPCServer) Push(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {

	path, fields, err := pb.ParsePushRequest(req)
	if err != nil {
		return nil, toStatus(err)
	}

	key, err := s.store.Push(ctx, path, fields)
	if err != nil {
		s.logger.Error(ctx, "push failed", "path", path, "error", err.Error())
		return nil, toStatus(err)
	}

	s.logger.Debug(ctx, "pushed", "path", path, "key", key)
	return wrapperspb.String(key), nil
}

func (s *GRPCServer) Get(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {

	q, err := pb.ParseGetRequest(req)
	if err != nil {
		return nil, toStatus(err)
	}

	snap, err := s.store.Get(ctx, q)
	if err != nil {
		s.logger.Error(ctx, "get failed", "path", q.Path, "error", err.Error())
		return nil, toStatus(err)
	}

	resp, err := pb.NewGetResponse(snap)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *emptypb.Empty) (*wrapperspb.StringValue, error) {

	return wrapperspb.String("OK"), nil

}
