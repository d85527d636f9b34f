// Package proto declares the gRPC StoreService. Its messages are protobuf
// well-known types (Struct, ListValue, StringValue, Empty), so the service
// is described here directly instead of being generated from a .proto file.
//
//	service StoreService {
//	  rpc Push(google.protobuf.Struct) returns (google.protobuf.StringValue);  // {path, value} -> key
//	  rpc Get(google.protobuf.Struct) returns (google.protobuf.ListValue);     // {path, order_by} -> [{key, value}]
//	  rpc Ping(google.protobuf.Empty) returns (google.protobuf.StringValue);   // "OK"
//	}
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const StoreServiceName = "savebank.store.StoreService"

const (
	StoreService_Push_FullMethodName = "/" + StoreServiceName + "/Push"
	StoreService_Get_FullMethodName  = "/" + StoreServiceName + "/Get"
	StoreService_Ping_FullMethodName = "/" + StoreServiceName + "/Ping"
)

// StoreServiceClient is the client API for StoreService.
type StoreServiceClient interface {
	Push(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Get(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type storeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStoreServiceClient(cc grpc.ClientConnInterface) StoreServiceClient {
	return &storeServiceClient{cc}
}

func (c *storeServiceClient) Push(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, StoreService_Push_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeServiceClient) Get(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, StoreService_Get_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, StoreService_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// StoreServiceServer is the server API for StoreService.
type StoreServiceServer interface {
	Push(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	Get(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// UnimplementedStoreServiceServer can be embedded to have forward compatible implementations.
type UnimplementedStoreServiceServer struct{}

func (UnimplementedStoreServiceServer) Push(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Push not implemented")
}

func (UnimplementedStoreServiceServer) Get(context.Context, *structpb.Struct) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Get not implemented")
}

func (UnimplementedStoreServiceServer) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func RegisterStoreServiceServer(s grpc.ServiceRegistrar, srv StoreServiceServer) {
	s.RegisterService(&StoreService_ServiceDesc, srv)
}

func _StoreService_Push_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServiceServer).Push(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: StoreService_Push_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServiceServer).Push(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _StoreService_Get_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServiceServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: StoreService_Get_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServiceServer).Get(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _StoreService_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: StoreService_Ping_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServiceServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// StoreService_ServiceDesc is the grpc.ServiceDesc for StoreService.
var StoreService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: StoreServiceName,
	HandlerType: (*StoreServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Push", Handler: _StoreService_Push_Handler},
		{MethodName: "Get", Handler: _StoreService_Get_Handler},
		{MethodName: "Ping", Handler: _StoreService_Ping_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "savebank/store.proto",
}
