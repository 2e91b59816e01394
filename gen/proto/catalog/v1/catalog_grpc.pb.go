// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: catalog/v1/catalog.proto

package catalogv1

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
	CatalogService_RegisterDocument_FullMethodName      = "/catalog.v1.CatalogService/RegisterDocument"
	CatalogService_GetDocument_FullMethodName           = "/catalog.v1.CatalogService/GetDocument"
	CatalogService_ListDocuments_FullMethodName         = "/catalog.v1.CatalogService/ListDocuments"
	CatalogService_DeleteDocument_FullMethodName        = "/catalog.v1.CatalogService/DeleteDocument"
	CatalogService_CreatePass_FullMethodName            = "/catalog.v1.CatalogService/CreatePass"
	CatalogService_AutoMultiPass_FullMethodName         = "/catalog.v1.CatalogService/AutoMultiPass"
	CatalogService_GetPass_FullMethodName               = "/catalog.v1.CatalogService/GetPass"
	CatalogService_ListPasses_FullMethodName            = "/catalog.v1.CatalogService/ListPasses"
	CatalogService_GetPassStats_FullMethodName          = "/catalog.v1.CatalogService/GetPassStats"
	CatalogService_GetDocumentStats_FullMethodName      = "/catalog.v1.CatalogService/GetDocumentStats"
	CatalogService_ListConsolidatedItems_FullMethodName = "/catalog.v1.CatalogService/ListConsolidatedItems"
	CatalogService_ExportConsolidated_FullMethodName    = "/catalog.v1.CatalogService/ExportConsolidated"
)

// CatalogServiceClient is the client API for CatalogService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CatalogService manages source documents, extraction passes, and the
// consolidated item view derived from them.
type CatalogServiceClient interface {
	// RegisterDocument registers a PDF by filesystem path. Registering a
	// byte-identical file again returns the existing document.
	RegisterDocument(ctx context.Context, in *RegisterDocumentRequest, opts ...grpc.CallOption) (*RegisterDocumentResponse, error)
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	// DeleteDocument removes a document and everything derived from it.
	DeleteDocument(ctx context.Context, in *DeleteDocumentRequest, opts ...grpc.CallOption) (*DeleteDocumentResponse, error)
	// CreatePass queues one extraction pass; it returns once the pass row
	// exists. Execution is asynchronous, poll GetPass for progress.
	CreatePass(ctx context.Context, in *CreatePassRequest, opts ...grpc.CallOption) (*CreatePassResponse, error)
	// AutoMultiPass queues the standard multi-pass ladder for a document.
	AutoMultiPass(ctx context.Context, in *AutoMultiPassRequest, opts ...grpc.CallOption) (*AutoMultiPassResponse, error)
	GetPass(ctx context.Context, in *GetPassRequest, opts ...grpc.CallOption) (*GetPassResponse, error)
	ListPasses(ctx context.Context, in *ListPassesRequest, opts ...grpc.CallOption) (*ListPassesResponse, error)
	GetPassStats(ctx context.Context, in *GetPassStatsRequest, opts ...grpc.CallOption) (*GetPassStatsResponse, error)
	// GetDocumentStats aggregates across a document's completed passes,
	// including the pages a targeted retry pass should revisit.
	GetDocumentStats(ctx context.Context, in *GetDocumentStatsRequest, opts ...grpc.CallOption) (*GetDocumentStatsResponse, error)
	ListConsolidatedItems(ctx context.Context, in *ListConsolidatedItemsRequest, opts ...grpc.CallOption) (*ListConsolidatedItemsResponse, error)
	ExportConsolidated(ctx context.Context, in *ExportConsolidatedRequest, opts ...grpc.CallOption) (*ExportConsolidatedResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc}
}

func (c *catalogServiceClient) RegisterDocument(ctx context.Context, in *RegisterDocumentRequest, opts ...grpc.CallOption) (*RegisterDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterDocumentResponse)
	err := c.cc.Invoke(ctx, CatalogService_RegisterDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, CatalogService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, CatalogService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) DeleteDocument(ctx context.Context, in *DeleteDocumentRequest, opts ...grpc.CallOption) (*DeleteDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteDocumentResponse)
	err := c.cc.Invoke(ctx, CatalogService_DeleteDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) CreatePass(ctx context.Context, in *CreatePassRequest, opts ...grpc.CallOption) (*CreatePassResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreatePassResponse)
	err := c.cc.Invoke(ctx, CatalogService_CreatePass_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) AutoMultiPass(ctx context.Context, in *AutoMultiPassRequest, opts ...grpc.CallOption) (*AutoMultiPassResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AutoMultiPassResponse)
	err := c.cc.Invoke(ctx, CatalogService_AutoMultiPass_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) GetPass(ctx context.Context, in *GetPassRequest, opts ...grpc.CallOption) (*GetPassResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPassResponse)
	err := c.cc.Invoke(ctx, CatalogService_GetPass_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListPasses(ctx context.Context, in *ListPassesRequest, opts ...grpc.CallOption) (*ListPassesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPassesResponse)
	err := c.cc.Invoke(ctx, CatalogService_ListPasses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) GetPassStats(ctx context.Context, in *GetPassStatsRequest, opts ...grpc.CallOption) (*GetPassStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPassStatsResponse)
	err := c.cc.Invoke(ctx, CatalogService_GetPassStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) GetDocumentStats(ctx context.Context, in *GetDocumentStatsRequest, opts ...grpc.CallOption) (*GetDocumentStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentStatsResponse)
	err := c.cc.Invoke(ctx, CatalogService_GetDocumentStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListConsolidatedItems(ctx context.Context, in *ListConsolidatedItemsRequest, opts ...grpc.CallOption) (*ListConsolidatedItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListConsolidatedItemsResponse)
	err := c.cc.Invoke(ctx, CatalogService_ListConsolidatedItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ExportConsolidated(ctx context.Context, in *ExportConsolidatedRequest, opts ...grpc.CallOption) (*ExportConsolidatedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportConsolidatedResponse)
	err := c.cc.Invoke(ctx, CatalogService_ExportConsolidated_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CatalogServiceServer is the server API for CatalogService service.
// All implementations must embed UnimplementedCatalogServiceServer
// for forward compatibility.
//
// CatalogService manages source documents, extraction passes, and the
// consolidated item view derived from them.
type CatalogServiceServer interface {
	// RegisterDocument registers a PDF by filesystem path. Registering a
	// byte-identical file again returns the existing document.
	RegisterDocument(context.Context, *RegisterDocumentRequest) (*RegisterDocumentResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	// DeleteDocument removes a document and everything derived from it.
	DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error)
	// CreatePass queues one extraction pass; it returns once the pass row
	// exists. Execution is asynchronous, poll GetPass for progress.
	CreatePass(context.Context, *CreatePassRequest) (*CreatePassResponse, error)
	// AutoMultiPass queues the standard multi-pass ladder for a document.
	AutoMultiPass(context.Context, *AutoMultiPassRequest) (*AutoMultiPassResponse, error)
	GetPass(context.Context, *GetPassRequest) (*GetPassResponse, error)
	ListPasses(context.Context, *ListPassesRequest) (*ListPassesResponse, error)
	GetPassStats(context.Context, *GetPassStatsRequest) (*GetPassStatsResponse, error)
	// GetDocumentStats aggregates across a document's completed passes,
	// including the pages a targeted retry pass should revisit.
	GetDocumentStats(context.Context, *GetDocumentStatsRequest) (*GetDocumentStatsResponse, error)
	ListConsolidatedItems(context.Context, *ListConsolidatedItemsRequest) (*ListConsolidatedItemsResponse, error)
	ExportConsolidated(context.Context, *ExportConsolidatedRequest) (*ExportConsolidatedResponse, error)
	mustEmbedUnimplementedCatalogServiceServer()
}

// UnimplementedCatalogServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) RegisterDocument(context.Context, *RegisterDocumentRequest) (*RegisterDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterDocument not implemented")
}
func (UnimplementedCatalogServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedCatalogServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedCatalogServiceServer) DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteDocument not implemented")
}
func (UnimplementedCatalogServiceServer) CreatePass(context.Context, *CreatePassRequest) (*CreatePassResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePass not implemented")
}
func (UnimplementedCatalogServiceServer) AutoMultiPass(context.Context, *AutoMultiPassRequest) (*AutoMultiPassResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AutoMultiPass not implemented")
}
func (UnimplementedCatalogServiceServer) GetPass(context.Context, *GetPassRequest) (*GetPassResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPass not implemented")
}
func (UnimplementedCatalogServiceServer) ListPasses(context.Context, *ListPassesRequest) (*ListPassesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPasses not implemented")
}
func (UnimplementedCatalogServiceServer) GetPassStats(context.Context, *GetPassStatsRequest) (*GetPassStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPassStats not implemented")
}
func (UnimplementedCatalogServiceServer) GetDocumentStats(context.Context, *GetDocumentStatsRequest) (*GetDocumentStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocumentStats not implemented")
}
func (UnimplementedCatalogServiceServer) ListConsolidatedItems(context.Context, *ListConsolidatedItemsRequest) (*ListConsolidatedItemsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListConsolidatedItems not implemented")
}
func (UnimplementedCatalogServiceServer) ExportConsolidated(context.Context, *ExportConsolidatedRequest) (*ExportConsolidatedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportConsolidated not implemented")
}
func (UnimplementedCatalogServiceServer) mustEmbedUnimplementedCatalogServiceServer() {}
func (UnimplementedCatalogServiceServer) testEmbeddedByValue()                        {}

// UnsafeCatalogServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CatalogServiceServer will
// result in compilation errors.
type UnsafeCatalogServiceServer interface {
	mustEmbedUnimplementedCatalogServiceServer()
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	// If the following call pancis, it indicates UnimplementedCatalogServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

func _CatalogService_RegisterDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).RegisterDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_RegisterDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).RegisterDocument(ctx, req.(*RegisterDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_DeleteDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).DeleteDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_DeleteDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).DeleteDocument(ctx, req.(*DeleteDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_CreatePass_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePassRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).CreatePass(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_CreatePass_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).CreatePass(ctx, req.(*CreatePassRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_AutoMultiPass_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AutoMultiPassRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).AutoMultiPass(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_AutoMultiPass_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).AutoMultiPass(ctx, req.(*AutoMultiPassRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_GetPass_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPassRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetPass(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_GetPass_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).GetPass(ctx, req.(*GetPassRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ListPasses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPassesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListPasses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ListPasses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).ListPasses(ctx, req.(*ListPassesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_GetPassStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPassStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetPassStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_GetPassStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).GetPassStats(ctx, req.(*GetPassStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_GetDocumentStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetDocumentStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_GetDocumentStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).GetDocumentStats(ctx, req.(*GetDocumentStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ListConsolidatedItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListConsolidatedItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListConsolidatedItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ListConsolidatedItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).ListConsolidatedItems(ctx, req.(*ListConsolidatedItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ExportConsolidated_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportConsolidatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ExportConsolidated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ExportConsolidated_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).ExportConsolidated(ctx, req.(*ExportConsolidatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CatalogService_ServiceDesc is the grpc.ServiceDesc for CatalogService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterDocument",
			Handler:    _CatalogService_RegisterDocument_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _CatalogService_GetDocument_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _CatalogService_ListDocuments_Handler,
		},
		{
			MethodName: "DeleteDocument",
			Handler:    _CatalogService_DeleteDocument_Handler,
		},
		{
			MethodName: "CreatePass",
			Handler:    _CatalogService_CreatePass_Handler,
		},
		{
			MethodName: "AutoMultiPass",
			Handler:    _CatalogService_AutoMultiPass_Handler,
		},
		{
			MethodName: "GetPass",
			Handler:    _CatalogService_GetPass_Handler,
		},
		{
			MethodName: "ListPasses",
			Handler:    _CatalogService_ListPasses_Handler,
		},
		{
			MethodName: "GetPassStats",
			Handler:    _CatalogService_GetPassStats_Handler,
		},
		{
			MethodName: "GetDocumentStats",
			Handler:    _CatalogService_GetDocumentStats_Handler,
		},
		{
			MethodName: "ListConsolidatedItems",
			Handler:    _CatalogService_ListConsolidatedItems_Handler,
		},
		{
			MethodName: "ExportConsolidated",
			Handler:    _CatalogService_ExportConsolidated_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}
