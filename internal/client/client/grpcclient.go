package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/savebank/internal/common"
	pb "github.com/dmitrijs2005/savebank/internal/proto"
	"github.com/dmitrijs2005/savebank/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ Client = (*GRPCClient)(nil)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.StoreServiceClient
}

func NewStoreClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// InitGRPCClient creates the connection. Extra options are appended after
// the insecure transport credentials.
func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewStoreServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Push(ctx context.Context, path string, fields store.Fields) (string, error) {

	req, err := pb.NewPushRequest(path, fields)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidValue, err)
	}

	resp, err := s.client.Push(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetValue(), nil
}

func (s *GRPCClient) Get(ctx context.Context, q store.Query) (*store.Snapshot, error) {

	req, err := pb.NewGetRequest(q)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Get(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return pb.ParseGetResponse(resp, q)
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetValue() != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		// The server keeps the sentinel text in the status message.
		if strings.Contains(st.Message(), common.ErrInvalidValue.Error()) {
			return fmt.Errorf("%w: %s", common.ErrInvalidValue, st.Message())
		}
		return fmt.Errorf("%w: %s", common.ErrInvalidPath, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
