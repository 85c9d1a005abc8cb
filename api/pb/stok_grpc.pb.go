// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: stok.proto

package pb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	Market_ListSecurities_FullMethodName   = "/stok.Market/ListSecurities"
	Market_CreateAccount_FullMethodName    = "/stok.Market/CreateAccount"
	Market_CreateSecurity_FullMethodName   = "/stok.Market/CreateSecurity"
	Market_RegisterSecValue_FullMethodName = "/stok.Market/RegisterSecValue"
	Market_GetLowestBid_FullMethodName     = "/stok.Market/GetLowestBid"
	Market_GetHighestAsk_FullMethodName    = "/stok.Market/GetHighestAsk"
	Market_GetMarketCap_FullMethodName     = "/stok.Market/GetMarketCap"
	Market_PlaceBid_FullMethodName         = "/stok.Market/PlaceBid"
	Market_PlaceAsk_FullMethodName         = "/stok.Market/PlaceAsk"
)

// MarketClient is the client API for Market service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MarketClient interface {
	ListSecurities(ctx context.Context, in *ListSecsReq, opts ...grpc.CallOption) (*SecList, error)
	CreateAccount(ctx context.Context, in *CreateAccReq, opts ...grpc.CallOption) (*AccId, error)
	CreateSecurity(ctx context.Context, in *CreateSecReq, opts ...grpc.CallOption) (*CreateSecResponse, error)
	// One SecValue per completed matching pass, until the subscriber
	// disconnects or the security stops resolving.
	RegisterSecValue(ctx context.Context, in *SecValueReq, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SecValue], error)
	GetLowestBid(ctx context.Context, in *LowestBidReq, opts ...grpc.CallOption) (*LowestBid, error)
	GetHighestAsk(ctx context.Context, in *HighestAskReq, opts ...grpc.CallOption) (*HighestAsk, error)
	GetMarketCap(ctx context.Context, in *MarketCapReq, opts ...grpc.CallOption) (*MarketCap, error)
	PlaceBid(ctx context.Context, in *Bid, opts ...grpc.CallOption) (*BidPlaced, error)
	PlaceAsk(ctx context.Context, in *Ask, opts ...grpc.CallOption) (*AskPlaced, error)
}

type marketClient struct {
	cc grpc.ClientConnInterface
}

func NewMarketClient(cc grpc.ClientConnInterface) MarketClient {
	return &marketClient{cc}
}

func (c *marketClient) ListSecurities(ctx context.Context, in *ListSecsReq, opts ...grpc.CallOption) (*SecList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SecList)
	err := c.cc.Invoke(ctx, Market_ListSecurities_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketClient) CreateAccount(ctx context.Context, in *CreateAccReq, opts ...grpc.CallOption) (*AccId, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AccId)
	err := c.cc.Invoke(ctx, Market_CreateAccount_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketClient) CreateSecurity(ctx context.Context, in *CreateSecReq, opts ...grpc.CallOption) (*CreateSecResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateSecResponse)
	err := c.cc.Invoke(ctx, Market_CreateSecurity_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketClient) RegisterSecValue(ctx context.Context, in *SecValueReq, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SecValue], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &Market_ServiceDesc.Streams[0], Market_RegisterSecValue_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SecValueReq, SecValue]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type Market_RegisterSecValueClient = grpc.ServerStreamingClient[SecValue]

func (c *marketClient) GetLowestBid(ctx context.Context, in *LowestBidReq, opts ...grpc.CallOption) (*LowestBid, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LowestBid)
	err := c.cc.Invoke(ctx, Market_GetLowestBid_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketClient) GetHighestAsk(ctx context.Context, in *HighestAskReq, opts ...grpc.CallOption) (*HighestAsk, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(HighestAsk)
	err := c.cc.Invoke(ctx, Market_GetHighestAsk_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketClient) GetMarketCap(ctx context.Context, in *MarketCapReq, opts ...grpc.CallOption) (*MarketCap, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MarketCap)
	err := c.cc.Invoke(ctx, Market_GetMarketCap_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketClient) PlaceBid(ctx context.Context, in *Bid, opts ...grpc.CallOption) (*BidPlaced, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BidPlaced)
	err := c.cc.Invoke(ctx, Market_PlaceBid_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketClient) PlaceAsk(ctx context.Context, in *Ask, opts ...grpc.CallOption) (*AskPlaced, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AskPlaced)
	err := c.cc.Invoke(ctx, Market_PlaceAsk_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarketServer is the server API for Market service.
// All implementations must embed UnimplementedMarketServer
// for forward compatibility.
type MarketServer interface {
	ListSecurities(context.Context, *ListSecsReq) (*SecList, error)
	CreateAccount(context.Context, *CreateAccReq) (*AccId, error)
	CreateSecurity(context.Context, *CreateSecReq) (*CreateSecResponse, error)
	// One SecValue per completed matching pass, until the subscriber
	// disconnects or the security stops resolving.
	RegisterSecValue(*SecValueReq, grpc.ServerStreamingServer[SecValue]) error
	GetLowestBid(context.Context, *LowestBidReq) (*LowestBid, error)
	GetHighestAsk(context.Context, *HighestAskReq) (*HighestAsk, error)
	GetMarketCap(context.Context, *MarketCapReq) (*MarketCap, error)
	PlaceBid(context.Context, *Bid) (*BidPlaced, error)
	PlaceAsk(context.Context, *Ask) (*AskPlaced, error)
	mustEmbedUnimplementedMarketServer()
}

// UnimplementedMarketServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMarketServer struct{}

func (UnimplementedMarketServer) ListSecurities(context.Context, *ListSecsReq) (*SecList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSecurities not implemented")
}
func (UnimplementedMarketServer) CreateAccount(context.Context, *CreateAccReq) (*AccId, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateAccount not implemented")
}
func (UnimplementedMarketServer) CreateSecurity(context.Context, *CreateSecReq) (*CreateSecResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateSecurity not implemented")
}
func (UnimplementedMarketServer) RegisterSecValue(*SecValueReq, grpc.ServerStreamingServer[SecValue]) error {
	return status.Errorf(codes.Unimplemented, "method RegisterSecValue not implemented")
}
func (UnimplementedMarketServer) GetLowestBid(context.Context, *LowestBidReq) (*LowestBid, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLowestBid not implemented")
}
func (UnimplementedMarketServer) GetHighestAsk(context.Context, *HighestAskReq) (*HighestAsk, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetHighestAsk not implemented")
}
func (UnimplementedMarketServer) GetMarketCap(context.Context, *MarketCapReq) (*MarketCap, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMarketCap not implemented")
}
func (UnimplementedMarketServer) PlaceBid(context.Context, *Bid) (*BidPlaced, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlaceBid not implemented")
}
func (UnimplementedMarketServer) PlaceAsk(context.Context, *Ask) (*AskPlaced, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlaceAsk not implemented")
}
func (UnimplementedMarketServer) mustEmbedUnimplementedMarketServer() {}
func (UnimplementedMarketServer) testEmbeddedByValue()                {}

// UnsafeMarketServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MarketServer will
// result in compilation errors.
type UnsafeMarketServer interface {
	mustEmbedUnimplementedMarketServer()
}

func RegisterMarketServer(s grpc.ServiceRegistrar, srv MarketServer) {
	// If the following call pancis, it indicates UnimplementedMarketServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&Market_ServiceDesc, srv)
}

func _Market_ListSecurities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSecsReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServer).ListSecurities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Market_ListSecurities_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServer).ListSecurities(ctx, req.(*ListSecsReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Market_CreateAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateAccReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServer).CreateAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Market_CreateAccount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServer).CreateAccount(ctx, req.(*CreateAccReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Market_CreateSecurity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSecReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServer).CreateSecurity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Market_CreateSecurity_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServer).CreateSecurity(ctx, req.(*CreateSecReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Market_RegisterSecValue_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SecValueReq)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(MarketServer).RegisterSecValue(m, &grpc.GenericServerStream[SecValueReq, SecValue]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type Market_RegisterSecValueServer = grpc.ServerStreamingServer[SecValue]

func _Market_GetLowestBid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LowestBidReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServer).GetLowestBid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Market_GetLowestBid_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServer).GetLowestBid(ctx, req.(*LowestBidReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Market_GetHighestAsk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HighestAskReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServer).GetHighestAsk(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Market_GetHighestAsk_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServer).GetHighestAsk(ctx, req.(*HighestAskReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Market_GetMarketCap_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MarketCapReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServer).GetMarketCap(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Market_GetMarketCap_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServer).GetMarketCap(ctx, req.(*MarketCapReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Market_PlaceBid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Bid)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServer).PlaceBid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Market_PlaceBid_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServer).PlaceBid(ctx, req.(*Bid))
	}
	return interceptor(ctx, in, info, handler)
}

func _Market_PlaceAsk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Ask)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServer).PlaceAsk(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Market_PlaceAsk_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServer).PlaceAsk(ctx, req.(*Ask))
	}
	return interceptor(ctx, in, info, handler)
}

// Market_ServiceDesc is the grpc.ServiceDesc for Market service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Market_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stok.Market",
	HandlerType: (*MarketServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListSecurities",
			Handler:    _Market_ListSecurities_Handler,
		},
		{
			MethodName: "CreateAccount",
			Handler:    _Market_CreateAccount_Handler,
		},
		{
			MethodName: "CreateSecurity",
			Handler:    _Market_CreateSecurity_Handler,
		},
		{
			MethodName: "GetLowestBid",
			Handler:    _Market_GetLowestBid_Handler,
		},
		{
			MethodName: "GetHighestAsk",
			Handler:    _Market_GetHighestAsk_Handler,
		},
		{
			MethodName: "GetMarketCap",
			Handler:    _Market_GetMarketCap_Handler,
		},
		{
			MethodName: "PlaceBid",
			Handler:    _Market_PlaceBid_Handler,
		},
		{
			MethodName: "PlaceAsk",
			Handler:    _Market_PlaceAsk_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "RegisterSecValue",
			Handler:       _Market_RegisterSecValue_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "stok.proto",
}
