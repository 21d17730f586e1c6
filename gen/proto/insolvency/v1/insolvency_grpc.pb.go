// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: insolvency/v1/insolvency.proto

package insolvencyv1

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
	PipelineService_ClassifyDocument_FullMethodName       = "/insolvency.v1.PipelineService/ClassifyDocument"
	PipelineService_StartOcr_FullMethodName               = "/insolvency.v1.PipelineService/StartOcr"
	PipelineService_GetOcrStatus_FullMethodName           = "/insolvency.v1.PipelineService/GetOcrStatus"
	PipelineService_ExtractAndDedup_FullMethodName        = "/insolvency.v1.PipelineService/ExtractAndDedup"
	PipelineService_ListTransactions_FullMethodName       = "/insolvency.v1.PipelineService/ListTransactions"
	PipelineService_UpdateTransactionTags_FullMethodName  = "/insolvency.v1.PipelineService/UpdateTransactionTags"
	PipelineService_SetTransactionExcluded_FullMethodName = "/insolvency.v1.PipelineService/SetTransactionExcluded"
	PipelineService_RegisterProfile_FullMethodName        = "/insolvency.v1.PipelineService/RegisterProfile"
	PipelineService_RegisterDocument_FullMethodName       = "/insolvency.v1.PipelineService/RegisterDocument"
	PipelineService_ExportTransactions_FullMethodName     = "/insolvency.v1.PipelineService/ExportTransactions"
)

// PipelineServiceClient is the client API for PipelineService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PipelineService drives a document from upload to unique transactions.
type PipelineServiceClient interface {
	// ClassifyDocument detects the document format and whether OCR is needed.
	ClassifyDocument(ctx context.Context, in *ClassifyDocumentRequest, opts ...grpc.CallOption) (*ClassifyDocumentResponse, error)
	// StartOcr begins an asynchronous OCR job for a scanned PDF.
	StartOcr(ctx context.Context, in *StartOcrRequest, opts ...grpc.CallOption) (*StartOcrResponse, error)
	// GetOcrStatus reports the current OCR state and progress (0-100).
	GetOcrStatus(ctx context.Context, in *GetOcrStatusRequest, opts ...grpc.CallOption) (*GetOcrStatusResponse, error)
	// ExtractAndDedup extracts rows using a mapping profile, normalizes them
	// and inserts the unique transactions. With async=true the job is queued
	// and counters in the response stay zero.
	ExtractAndDedup(ctx context.Context, in *ExtractAndDedupRequest, opts ...grpc.CallOption) (*ExtractAndDedupResponse, error)
	// ListTransactions returns all transactions of a case, ordered by date.
	ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error)
	// UpdateTransactionTags replaces the free-form tags on a transaction.
	UpdateTransactionTags(ctx context.Context, in *UpdateTransactionTagsRequest, opts ...grpc.CallOption) (*UpdateTransactionTagsResponse, error)
	// SetTransactionExcluded flags a transaction in or out of notices and
	// reports. Rows are never deleted, only flagged.
	SetTransactionExcluded(ctx context.Context, in *SetTransactionExcludedRequest, opts ...grpc.CallOption) (*SetTransactionExcludedResponse, error)
	// RegisterProfile validates an ad-hoc JSON mapping profile against the
	// profile schema and registers it under its name for later extraction
	// calls.
	RegisterProfile(ctx context.Context, in *RegisterProfileRequest, opts ...grpc.CallOption) (*RegisterProfileResponse, error)
	// RegisterDocument records a statement file already on disk for a case and
	// classifies it in one call.
	RegisterDocument(ctx context.Context, in *RegisterDocumentRequest, opts ...grpc.CallOption) (*RegisterDocumentResponse, error)
	// ExportTransactions renders all transactions of a case as an XLSX
	// workbook.
	ExportTransactions(ctx context.Context, in *ExportTransactionsRequest, opts ...grpc.CallOption) (*ExportTransactionsResponse, error)
}

type pipelineServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPipelineServiceClient(cc grpc.ClientConnInterface) PipelineServiceClient {
	return &pipelineServiceClient{cc}
}

func (c *pipelineServiceClient) ClassifyDocument(ctx context.Context, in *ClassifyDocumentRequest, opts ...grpc.CallOption) (*ClassifyDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClassifyDocumentResponse)
	err := c.cc.Invoke(ctx, PipelineService_ClassifyDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) StartOcr(ctx context.Context, in *StartOcrRequest, opts ...grpc.CallOption) (*StartOcrResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartOcrResponse)
	err := c.cc.Invoke(ctx, PipelineService_StartOcr_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) GetOcrStatus(ctx context.Context, in *GetOcrStatusRequest, opts ...grpc.CallOption) (*GetOcrStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetOcrStatusResponse)
	err := c.cc.Invoke(ctx, PipelineService_GetOcrStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) ExtractAndDedup(ctx context.Context, in *ExtractAndDedupRequest, opts ...grpc.CallOption) (*ExtractAndDedupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractAndDedupResponse)
	err := c.cc.Invoke(ctx, PipelineService_ExtractAndDedup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTransactionsResponse)
	err := c.cc.Invoke(ctx, PipelineService_ListTransactions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) UpdateTransactionTags(ctx context.Context, in *UpdateTransactionTagsRequest, opts ...grpc.CallOption) (*UpdateTransactionTagsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateTransactionTagsResponse)
	err := c.cc.Invoke(ctx, PipelineService_UpdateTransactionTags_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) SetTransactionExcluded(ctx context.Context, in *SetTransactionExcludedRequest, opts ...grpc.CallOption) (*SetTransactionExcludedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetTransactionExcludedResponse)
	err := c.cc.Invoke(ctx, PipelineService_SetTransactionExcluded_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) RegisterProfile(ctx context.Context, in *RegisterProfileRequest, opts ...grpc.CallOption) (*RegisterProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterProfileResponse)
	err := c.cc.Invoke(ctx, PipelineService_RegisterProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) RegisterDocument(ctx context.Context, in *RegisterDocumentRequest, opts ...grpc.CallOption) (*RegisterDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterDocumentResponse)
	err := c.cc.Invoke(ctx, PipelineService_RegisterDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) ExportTransactions(ctx context.Context, in *ExportTransactionsRequest, opts ...grpc.CallOption) (*ExportTransactionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportTransactionsResponse)
	err := c.cc.Invoke(ctx, PipelineService_ExportTransactions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PipelineServiceServer is the server API for PipelineService service.
// All implementations must embed UnimplementedPipelineServiceServer
// for forward compatibility.
//
// PipelineService drives a document from upload to unique transactions.
type PipelineServiceServer interface {
	// ClassifyDocument detects the document format and whether OCR is needed.
	ClassifyDocument(context.Context, *ClassifyDocumentRequest) (*ClassifyDocumentResponse, error)
	// StartOcr begins an asynchronous OCR job for a scanned PDF.
	StartOcr(context.Context, *StartOcrRequest) (*StartOcrResponse, error)
	// GetOcrStatus reports the current OCR state and progress (0-100).
	GetOcrStatus(context.Context, *GetOcrStatusRequest) (*GetOcrStatusResponse, error)
	// ExtractAndDedup extracts rows using a mapping profile, normalizes them
	// and inserts the unique transactions. With async=true the job is queued
	// and counters in the response stay zero.
	ExtractAndDedup(context.Context, *ExtractAndDedupRequest) (*ExtractAndDedupResponse, error)
	// ListTransactions returns all transactions of a case, ordered by date.
	ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error)
	// UpdateTransactionTags replaces the free-form tags on a transaction.
	UpdateTransactionTags(context.Context, *UpdateTransactionTagsRequest) (*UpdateTransactionTagsResponse, error)
	// SetTransactionExcluded flags a transaction in or out of notices and
	// reports. Rows are never deleted, only flagged.
	SetTransactionExcluded(context.Context, *SetTransactionExcludedRequest) (*SetTransactionExcludedResponse, error)
	// RegisterProfile validates an ad-hoc JSON mapping profile against the
	// profile schema and registers it under its name for later extraction
	// calls.
	RegisterProfile(context.Context, *RegisterProfileRequest) (*RegisterProfileResponse, error)
	// RegisterDocument records a statement file already on disk for a case and
	// classifies it in one call.
	RegisterDocument(context.Context, *RegisterDocumentRequest) (*RegisterDocumentResponse, error)
	// ExportTransactions renders all transactions of a case as an XLSX
	// workbook.
	ExportTransactions(context.Context, *ExportTransactionsRequest) (*ExportTransactionsResponse, error)
	mustEmbedUnimplementedPipelineServiceServer()
}

// UnimplementedPipelineServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPipelineServiceServer struct{}

func (UnimplementedPipelineServiceServer) ClassifyDocument(context.Context, *ClassifyDocumentRequest) (*ClassifyDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClassifyDocument not implemented")
}
func (UnimplementedPipelineServiceServer) StartOcr(context.Context, *StartOcrRequest) (*StartOcrResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartOcr not implemented")
}
func (UnimplementedPipelineServiceServer) GetOcrStatus(context.Context, *GetOcrStatusRequest) (*GetOcrStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOcrStatus not implemented")
}
func (UnimplementedPipelineServiceServer) ExtractAndDedup(context.Context, *ExtractAndDedupRequest) (*ExtractAndDedupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractAndDedup not implemented")
}
func (UnimplementedPipelineServiceServer) ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTransactions not implemented")
}
func (UnimplementedPipelineServiceServer) UpdateTransactionTags(context.Context, *UpdateTransactionTagsRequest) (*UpdateTransactionTagsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateTransactionTags not implemented")
}
func (UnimplementedPipelineServiceServer) SetTransactionExcluded(context.Context, *SetTransactionExcludedRequest) (*SetTransactionExcludedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetTransactionExcluded not implemented")
}
func (UnimplementedPipelineServiceServer) RegisterProfile(context.Context, *RegisterProfileRequest) (*RegisterProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterProfile not implemented")
}
func (UnimplementedPipelineServiceServer) RegisterDocument(context.Context, *RegisterDocumentRequest) (*RegisterDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterDocument not implemented")
}
func (UnimplementedPipelineServiceServer) ExportTransactions(context.Context, *ExportTransactionsRequest) (*ExportTransactionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportTransactions not implemented")
}
func (UnimplementedPipelineServiceServer) mustEmbedUnimplementedPipelineServiceServer() {}
func (UnimplementedPipelineServiceServer) testEmbeddedByValue()                         {}

// UnsafePipelineServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PipelineServiceServer will
// result in compilation errors.
type UnsafePipelineServiceServer interface {
	mustEmbedUnimplementedPipelineServiceServer()
}

func RegisterPipelineServiceServer(s grpc.ServiceRegistrar, srv PipelineServiceServer) {
	// If the following call panics, it indicates UnimplementedPipelineServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PipelineService_ServiceDesc, srv)
}

func _PipelineService_ClassifyDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClassifyDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ClassifyDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ClassifyDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ClassifyDocument(ctx, req.(*ClassifyDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_StartOcr_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartOcrRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).StartOcr(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_StartOcr_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).StartOcr(ctx, req.(*StartOcrRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_GetOcrStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetOcrStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).GetOcrStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_GetOcrStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).GetOcrStatus(ctx, req.(*GetOcrStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_ExtractAndDedup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractAndDedupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ExtractAndDedup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ExtractAndDedup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ExtractAndDedup(ctx, req.(*ExtractAndDedupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_ListTransactions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTransactionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ListTransactions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ListTransactions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ListTransactions(ctx, req.(*ListTransactionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_UpdateTransactionTags_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateTransactionTagsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).UpdateTransactionTags(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_UpdateTransactionTags_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).UpdateTransactionTags(ctx, req.(*UpdateTransactionTagsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_SetTransactionExcluded_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetTransactionExcludedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).SetTransactionExcluded(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_SetTransactionExcluded_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).SetTransactionExcluded(ctx, req.(*SetTransactionExcludedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_RegisterProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).RegisterProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_RegisterProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).RegisterProfile(ctx, req.(*RegisterProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_RegisterDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).RegisterDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_RegisterDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).RegisterDocument(ctx, req.(*RegisterDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_ExportTransactions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportTransactionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ExportTransactions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ExportTransactions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ExportTransactions(ctx, req.(*ExportTransactionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PipelineService_ServiceDesc is the grpc.ServiceDesc for PipelineService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PipelineService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "insolvency.v1.PipelineService",
	HandlerType: (*PipelineServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ClassifyDocument",
			Handler:    _PipelineService_ClassifyDocument_Handler,
		},
		{
			MethodName: "StartOcr",
			Handler:    _PipelineService_StartOcr_Handler,
		},
		{
			MethodName: "GetOcrStatus",
			Handler:    _PipelineService_GetOcrStatus_Handler,
		},
		{
			MethodName: "ExtractAndDedup",
			Handler:    _PipelineService_ExtractAndDedup_Handler,
		},
		{
			MethodName: "ListTransactions",
			Handler:    _PipelineService_ListTransactions_Handler,
		},
		{
			MethodName: "UpdateTransactionTags",
			Handler:    _PipelineService_UpdateTransactionTags_Handler,
		},
		{
			MethodName: "SetTransactionExcluded",
			Handler:    _PipelineService_SetTransactionExcluded_Handler,
		},
		{
			MethodName: "RegisterProfile",
			Handler:    _PipelineService_RegisterProfile_Handler,
		},
		{
			MethodName: "RegisterDocument",
			Handler:    _PipelineService_RegisterDocument_Handler,
		},
		{
			MethodName: "ExportTransactions",
			Handler:    _PipelineService_ExportTransactions_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "insolvency/v1/insolvency.proto",
}

const (
	NoticeService_GenerateNotices_FullMethodName = "/insolvency.v1.NoticeService/GenerateNotices"
	NoticeService_AcceptNotice_FullMethodName    = "/insolvency.v1.NoticeService/AcceptNotice"
	NoticeService_SendNotice_FullMethodName      = "/insolvency.v1.NoticeService/SendNotice"
	NoticeService_ListNotices_FullMethodName     = "/insolvency.v1.NoticeService/ListNotices"
)

// NoticeServiceClient is the client API for NoticeService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// NoticeService groups selected transactions into counterparty notices and
// tracks their lifecycle.
type NoticeServiceClient interface {
	GenerateNotices(ctx context.Context, in *GenerateNoticesRequest, opts ...grpc.CallOption) (*GenerateNoticesResponse, error)
	AcceptNotice(ctx context.Context, in *AcceptNoticeRequest, opts ...grpc.CallOption) (*AcceptNoticeResponse, error)
	SendNotice(ctx context.Context, in *SendNoticeRequest, opts ...grpc.CallOption) (*SendNoticeResponse, error)
	ListNotices(ctx context.Context, in *ListNoticesRequest, opts ...grpc.CallOption) (*ListNoticesResponse, error)
}

type noticeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNoticeServiceClient(cc grpc.ClientConnInterface) NoticeServiceClient {
	return &noticeServiceClient{cc}
}

func (c *noticeServiceClient) GenerateNotices(ctx context.Context, in *GenerateNoticesRequest, opts ...grpc.CallOption) (*GenerateNoticesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateNoticesResponse)
	err := c.cc.Invoke(ctx, NoticeService_GenerateNotices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *noticeServiceClient) AcceptNotice(ctx context.Context, in *AcceptNoticeRequest, opts ...grpc.CallOption) (*AcceptNoticeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AcceptNoticeResponse)
	err := c.cc.Invoke(ctx, NoticeService_AcceptNotice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *noticeServiceClient) SendNotice(ctx context.Context, in *SendNoticeRequest, opts ...grpc.CallOption) (*SendNoticeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendNoticeResponse)
	err := c.cc.Invoke(ctx, NoticeService_SendNotice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *noticeServiceClient) ListNotices(ctx context.Context, in *ListNoticesRequest, opts ...grpc.CallOption) (*ListNoticesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListNoticesResponse)
	err := c.cc.Invoke(ctx, NoticeService_ListNotices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NoticeServiceServer is the server API for NoticeService service.
// All implementations must embed UnimplementedNoticeServiceServer
// for forward compatibility.
//
// NoticeService groups selected transactions into counterparty notices and
// tracks their lifecycle.
type NoticeServiceServer interface {
	GenerateNotices(context.Context, *GenerateNoticesRequest) (*GenerateNoticesResponse, error)
	AcceptNotice(context.Context, *AcceptNoticeRequest) (*AcceptNoticeResponse, error)
	SendNotice(context.Context, *SendNoticeRequest) (*SendNoticeResponse, error)
	ListNotices(context.Context, *ListNoticesRequest) (*ListNoticesResponse, error)
	mustEmbedUnimplementedNoticeServiceServer()
}

// UnimplementedNoticeServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedNoticeServiceServer struct{}

func (UnimplementedNoticeServiceServer) GenerateNotices(context.Context, *GenerateNoticesRequest) (*GenerateNoticesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateNotices not implemented")
}
func (UnimplementedNoticeServiceServer) AcceptNotice(context.Context, *AcceptNoticeRequest) (*AcceptNoticeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AcceptNotice not implemented")
}
func (UnimplementedNoticeServiceServer) SendNotice(context.Context, *SendNoticeRequest) (*SendNoticeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendNotice not implemented")
}
func (UnimplementedNoticeServiceServer) ListNotices(context.Context, *ListNoticesRequest) (*ListNoticesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListNotices not implemented")
}
func (UnimplementedNoticeServiceServer) mustEmbedUnimplementedNoticeServiceServer() {}
func (UnimplementedNoticeServiceServer) testEmbeddedByValue()                       {}

// UnsafeNoticeServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to NoticeServiceServer will
// result in compilation errors.
type UnsafeNoticeServiceServer interface {
	mustEmbedUnimplementedNoticeServiceServer()
}

func RegisterNoticeServiceServer(s grpc.ServiceRegistrar, srv NoticeServiceServer) {
	// If the following call panics, it indicates UnimplementedNoticeServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&NoticeService_ServiceDesc, srv)
}

func _NoticeService_GenerateNotices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateNoticesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NoticeServiceServer).GenerateNotices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NoticeService_GenerateNotices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NoticeServiceServer).GenerateNotices(ctx, req.(*GenerateNoticesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NoticeService_AcceptNotice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AcceptNoticeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NoticeServiceServer).AcceptNotice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NoticeService_AcceptNotice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NoticeServiceServer).AcceptNotice(ctx, req.(*AcceptNoticeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NoticeService_SendNotice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendNoticeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NoticeServiceServer).SendNotice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NoticeService_SendNotice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NoticeServiceServer).SendNotice(ctx, req.(*SendNoticeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NoticeService_ListNotices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListNoticesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NoticeServiceServer).ListNotices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NoticeService_ListNotices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NoticeServiceServer).ListNotices(ctx, req.(*ListNoticesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NoticeService_ServiceDesc is the grpc.ServiceDesc for NoticeService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var NoticeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "insolvency.v1.NoticeService",
	HandlerType: (*NoticeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateNotices",
			Handler:    _NoticeService_GenerateNotices_Handler,
		},
		{
			MethodName: "AcceptNotice",
			Handler:    _NoticeService_AcceptNotice_Handler,
		},
		{
			MethodName: "SendNotice",
			Handler:    _NoticeService_SendNotice_Handler,
		},
		{
			MethodName: "ListNotices",
			Handler:    _NoticeService_ListNotices_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "insolvency/v1/insolvency.proto",
}
