// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: examscan/v1/examscan.proto

package examscanv1

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
	ExtractionService_UploadPDF_FullMethodName             = "/examscan.v1.ExtractionService/UploadPDF"
	ExtractionService_GetJob_FullMethodName                = "/examscan.v1.ExtractionService/GetJob"
	ExtractionService_ListJobs_FullMethodName              = "/examscan.v1.ExtractionService/ListJobs"
	ExtractionService_WatchJob_FullMethodName              = "/examscan.v1.ExtractionService/WatchJob"
	ExtractionService_CancelJob_FullMethodName             = "/examscan.v1.ExtractionService/CancelJob"
	ExtractionService_RetryJob_FullMethodName              = "/examscan.v1.ExtractionService/RetryJob"
	ExtractionService_ListPages_FullMethodName             = "/examscan.v1.ExtractionService/ListPages"
	ExtractionService_ListQuestions_FullMethodName         = "/examscan.v1.ExtractionService/ListQuestions"
	ExtractionService_GetPassage_FullMethodName            = "/examscan.v1.ExtractionService/GetPassage"
	ExtractionService_GetQuestion_FullMethodName           = "/examscan.v1.ExtractionService/GetQuestion"
	ExtractionService_UpdateQuestion_FullMethodName        = "/examscan.v1.ExtractionService/UpdateQuestion"
	ExtractionService_BulkReview_FullMethodName            = "/examscan.v1.ExtractionService/BulkReview"
	ExtractionService_ListPassages_FullMethodName          = "/examscan.v1.ExtractionService/ListPassages"
	ExtractionService_UpdatePassage_FullMethodName         = "/examscan.v1.ExtractionService/UpdatePassage"
	ExtractionService_GetPageImage_FullMethodName          = "/examscan.v1.ExtractionService/GetPageImage"
	ExtractionService_CropPageImage_FullMethodName         = "/examscan.v1.ExtractionService/CropPageImage"
	ExtractionService_AttachQuestionImage_FullMethodName   = "/examscan.v1.ExtractionService/AttachQuestionImage"
	ExtractionService_StructureSkippedPages_FullMethodName = "/examscan.v1.ExtractionService/StructureSkippedPages"
	ExtractionService_ReextractPages_FullMethodName        = "/examscan.v1.ExtractionService/ReextractPages"
	ExtractionService_ConfigureTest_FullMethodName         = "/examscan.v1.ExtractionService/ConfigureTest"
	ExtractionService_ImportToModule_FullMethodName        = "/examscan.v1.ExtractionService/ImportToModule"
	ExtractionService_ImportWithTest_FullMethodName        = "/examscan.v1.ExtractionService/ImportWithTest"
	ExtractionService_ExportReviewSheet_FullMethodName     = "/examscan.v1.ExtractionService/ExportReviewSheet"
)

// ExtractionServiceClient is the client API for ExtractionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExtractionService turns uploaded exam PDFs into reviewed, importable
// test bank questions.
type ExtractionServiceClient interface {
	// Upload and job lifecycle.
	UploadPDF(ctx context.Context, in *UploadPDFRequest, opts ...grpc.CallOption) (*UploadPDFResponse, error)
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error)
	WatchJob(ctx context.Context, in *WatchJobRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[JobStatusUpdate], error)
	CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error)
	RetryJob(ctx context.Context, in *RetryJobRequest, opts ...grpc.CallOption) (*RetryJobResponse, error)
	// Page inspection.
	ListPages(ctx context.Context, in *ListPagesRequest, opts ...grpc.CallOption) (*ListPagesResponse, error)
	// Review surface.
	ListQuestions(ctx context.Context, in *ListQuestionsRequest, opts ...grpc.CallOption) (*ListQuestionsResponse, error)
	GetPassage(ctx context.Context, in *GetPassageRequest, opts ...grpc.CallOption) (*GetPassageResponse, error)
	GetQuestion(ctx context.Context, in *GetQuestionRequest, opts ...grpc.CallOption) (*GetQuestionResponse, error)
	UpdateQuestion(ctx context.Context, in *UpdateQuestionRequest, opts ...grpc.CallOption) (*UpdateQuestionResponse, error)
	BulkReview(ctx context.Context, in *BulkReviewRequest, opts ...grpc.CallOption) (*BulkReviewResponse, error)
	ListPassages(ctx context.Context, in *ListPassagesRequest, opts ...grpc.CallOption) (*ListPassagesResponse, error)
	UpdatePassage(ctx context.Context, in *UpdatePassageRequest, opts ...grpc.CallOption) (*UpdatePassageResponse, error)
	// Page imagery for figure cropping.
	GetPageImage(ctx context.Context, in *GetPageImageRequest, opts ...grpc.CallOption) (*GetPageImageResponse, error)
	CropPageImage(ctx context.Context, in *CropPageImageRequest, opts ...grpc.CallOption) (*CropPageImageResponse, error)
	AttachQuestionImage(ctx context.Context, in *AttachQuestionImageRequest, opts ...grpc.CallOption) (*AttachQuestionImageResponse, error)
	// Error recovery.
	StructureSkippedPages(ctx context.Context, in *StructureSkippedPagesRequest, opts ...grpc.CallOption) (*StructureSkippedPagesResponse, error)
	ReextractPages(ctx context.Context, in *ReextractPagesRequest, opts ...grpc.CallOption) (*ReextractPagesResponse, error)
	// Import into the production test bank.
	ConfigureTest(ctx context.Context, in *ConfigureTestRequest, opts ...grpc.CallOption) (*ConfigureTestResponse, error)
	ImportToModule(ctx context.Context, in *ImportToModuleRequest, opts ...grpc.CallOption) (*ImportToModuleResponse, error)
	ImportWithTest(ctx context.Context, in *ImportWithTestRequest, opts ...grpc.CallOption) (*ImportWithTestResponse, error)
	ExportReviewSheet(ctx context.Context, in *ExportReviewSheetRequest, opts ...grpc.CallOption) (*ExportReviewSheetResponse, error)
}

type extractionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionServiceClient(cc grpc.ClientConnInterface) ExtractionServiceClient {
	return &extractionServiceClient{cc}
}

func (c *extractionServiceClient) UploadPDF(ctx context.Context, in *UploadPDFRequest, opts ...grpc.CallOption) (*UploadPDFResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadPDFResponse)
	err := c.cc.Invoke(ctx, ExtractionService_UploadPDF_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, ExtractionService_GetJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJobsResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ListJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) WatchJob(ctx context.Context, in *WatchJobRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[JobStatusUpdate], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ExtractionService_ServiceDesc.Streams[0], ExtractionService_WatchJob_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchJobRequest, JobStatusUpdate]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ExtractionService_WatchJobClient = grpc.ServerStreamingClient[JobStatusUpdate]

func (c *extractionServiceClient) CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelJobResponse)
	err := c.cc.Invoke(ctx, ExtractionService_CancelJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) RetryJob(ctx context.Context, in *RetryJobRequest, opts ...grpc.CallOption) (*RetryJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RetryJobResponse)
	err := c.cc.Invoke(ctx, ExtractionService_RetryJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ListPages(ctx context.Context, in *ListPagesRequest, opts ...grpc.CallOption) (*ListPagesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPagesResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ListPages_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ListQuestions(ctx context.Context, in *ListQuestionsRequest, opts ...grpc.CallOption) (*ListQuestionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListQuestionsResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ListQuestions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) GetPassage(ctx context.Context, in *GetPassageRequest, opts ...grpc.CallOption) (*GetPassageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPassageResponse)
	err := c.cc.Invoke(ctx, ExtractionService_GetPassage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) GetQuestion(ctx context.Context, in *GetQuestionRequest, opts ...grpc.CallOption) (*GetQuestionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetQuestionResponse)
	err := c.cc.Invoke(ctx, ExtractionService_GetQuestion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) UpdateQuestion(ctx context.Context, in *UpdateQuestionRequest, opts ...grpc.CallOption) (*UpdateQuestionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateQuestionResponse)
	err := c.cc.Invoke(ctx, ExtractionService_UpdateQuestion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) BulkReview(ctx context.Context, in *BulkReviewRequest, opts ...grpc.CallOption) (*BulkReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BulkReviewResponse)
	err := c.cc.Invoke(ctx, ExtractionService_BulkReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ListPassages(ctx context.Context, in *ListPassagesRequest, opts ...grpc.CallOption) (*ListPassagesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPassagesResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ListPassages_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) UpdatePassage(ctx context.Context, in *UpdatePassageRequest, opts ...grpc.CallOption) (*UpdatePassageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdatePassageResponse)
	err := c.cc.Invoke(ctx, ExtractionService_UpdatePassage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) GetPageImage(ctx context.Context, in *GetPageImageRequest, opts ...grpc.CallOption) (*GetPageImageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPageImageResponse)
	err := c.cc.Invoke(ctx, ExtractionService_GetPageImage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) CropPageImage(ctx context.Context, in *CropPageImageRequest, opts ...grpc.CallOption) (*CropPageImageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CropPageImageResponse)
	err := c.cc.Invoke(ctx, ExtractionService_CropPageImage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) AttachQuestionImage(ctx context.Context, in *AttachQuestionImageRequest, opts ...grpc.CallOption) (*AttachQuestionImageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AttachQuestionImageResponse)
	err := c.cc.Invoke(ctx, ExtractionService_AttachQuestionImage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) StructureSkippedPages(ctx context.Context, in *StructureSkippedPagesRequest, opts ...grpc.CallOption) (*StructureSkippedPagesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StructureSkippedPagesResponse)
	err := c.cc.Invoke(ctx, ExtractionService_StructureSkippedPages_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ReextractPages(ctx context.Context, in *ReextractPagesRequest, opts ...grpc.CallOption) (*ReextractPagesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReextractPagesResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ReextractPages_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ConfigureTest(ctx context.Context, in *ConfigureTestRequest, opts ...grpc.CallOption) (*ConfigureTestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfigureTestResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ConfigureTest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ImportToModule(ctx context.Context, in *ImportToModuleRequest, opts ...grpc.CallOption) (*ImportToModuleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportToModuleResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ImportToModule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ImportWithTest(ctx context.Context, in *ImportWithTestRequest, opts ...grpc.CallOption) (*ImportWithTestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportWithTestResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ImportWithTest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ExportReviewSheet(ctx context.Context, in *ExportReviewSheetRequest, opts ...grpc.CallOption) (*ExportReviewSheetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReviewSheetResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ExportReviewSheet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionServiceServer is the server API for ExtractionService service.
// All implementations must embed UnimplementedExtractionServiceServer
// for forward compatibility.
//
// ExtractionService turns uploaded exam PDFs into reviewed, importable
// test bank questions.
type ExtractionServiceServer interface {
	// Upload and job lifecycle.
	UploadPDF(context.Context, *UploadPDFRequest) (*UploadPDFResponse, error)
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error)
	WatchJob(*WatchJobRequest, grpc.ServerStreamingServer[JobStatusUpdate]) error
	CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error)
	RetryJob(context.Context, *RetryJobRequest) (*RetryJobResponse, error)
	// Page inspection.
	ListPages(context.Context, *ListPagesRequest) (*ListPagesResponse, error)
	// Review surface.
	ListQuestions(context.Context, *ListQuestionsRequest) (*ListQuestionsResponse, error)
	GetPassage(context.Context, *GetPassageRequest) (*GetPassageResponse, error)
	GetQuestion(context.Context, *GetQuestionRequest) (*GetQuestionResponse, error)
	UpdateQuestion(context.Context, *UpdateQuestionRequest) (*UpdateQuestionResponse, error)
	BulkReview(context.Context, *BulkReviewRequest) (*BulkReviewResponse, error)
	ListPassages(context.Context, *ListPassagesRequest) (*ListPassagesResponse, error)
	UpdatePassage(context.Context, *UpdatePassageRequest) (*UpdatePassageResponse, error)
	// Page imagery for figure cropping.
	GetPageImage(context.Context, *GetPageImageRequest) (*GetPageImageResponse, error)
	CropPageImage(context.Context, *CropPageImageRequest) (*CropPageImageResponse, error)
	AttachQuestionImage(context.Context, *AttachQuestionImageRequest) (*AttachQuestionImageResponse, error)
	// Error recovery.
	StructureSkippedPages(context.Context, *StructureSkippedPagesRequest) (*StructureSkippedPagesResponse, error)
	ReextractPages(context.Context, *ReextractPagesRequest) (*ReextractPagesResponse, error)
	// Import into the production test bank.
	ConfigureTest(context.Context, *ConfigureTestRequest) (*ConfigureTestResponse, error)
	ImportToModule(context.Context, *ImportToModuleRequest) (*ImportToModuleResponse, error)
	ImportWithTest(context.Context, *ImportWithTestRequest) (*ImportWithTestResponse, error)
	ExportReviewSheet(context.Context, *ExportReviewSheetRequest) (*ExportReviewSheetResponse, error)
	mustEmbedUnimplementedExtractionServiceServer()
}

// UnimplementedExtractionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionServiceServer struct{}

func (UnimplementedExtractionServiceServer) UploadPDF(context.Context, *UploadPDFRequest) (*UploadPDFResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadPDF not implemented")
}
func (UnimplementedExtractionServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedExtractionServiceServer) ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListJobs not implemented")
}
func (UnimplementedExtractionServiceServer) WatchJob(*WatchJobRequest, grpc.ServerStreamingServer[JobStatusUpdate]) error {
	return status.Error(codes.Unimplemented, "method WatchJob not implemented")
}
func (UnimplementedExtractionServiceServer) CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelJob not implemented")
}
func (UnimplementedExtractionServiceServer) RetryJob(context.Context, *RetryJobRequest) (*RetryJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RetryJob not implemented")
}
func (UnimplementedExtractionServiceServer) ListPages(context.Context, *ListPagesRequest) (*ListPagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPages not implemented")
}
func (UnimplementedExtractionServiceServer) ListQuestions(context.Context, *ListQuestionsRequest) (*ListQuestionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListQuestions not implemented")
}
func (UnimplementedExtractionServiceServer) GetPassage(context.Context, *GetPassageRequest) (*GetPassageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPassage not implemented")
}
func (UnimplementedExtractionServiceServer) GetQuestion(context.Context, *GetQuestionRequest) (*GetQuestionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetQuestion not implemented")
}
func (UnimplementedExtractionServiceServer) UpdateQuestion(context.Context, *UpdateQuestionRequest) (*UpdateQuestionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateQuestion not implemented")
}
func (UnimplementedExtractionServiceServer) BulkReview(context.Context, *BulkReviewRequest) (*BulkReviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BulkReview not implemented")
}
func (UnimplementedExtractionServiceServer) ListPassages(context.Context, *ListPassagesRequest) (*ListPassagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPassages not implemented")
}
func (UnimplementedExtractionServiceServer) UpdatePassage(context.Context, *UpdatePassageRequest) (*UpdatePassageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePassage not implemented")
}
func (UnimplementedExtractionServiceServer) GetPageImage(context.Context, *GetPageImageRequest) (*GetPageImageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPageImage not implemented")
}
func (UnimplementedExtractionServiceServer) CropPageImage(context.Context, *CropPageImageRequest) (*CropPageImageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CropPageImage not implemented")
}
func (UnimplementedExtractionServiceServer) AttachQuestionImage(context.Context, *AttachQuestionImageRequest) (*AttachQuestionImageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AttachQuestionImage not implemented")
}
func (UnimplementedExtractionServiceServer) StructureSkippedPages(context.Context, *StructureSkippedPagesRequest) (*StructureSkippedPagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StructureSkippedPages not implemented")
}
func (UnimplementedExtractionServiceServer) ReextractPages(context.Context, *ReextractPagesRequest) (*ReextractPagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReextractPages not implemented")
}
func (UnimplementedExtractionServiceServer) ConfigureTest(context.Context, *ConfigureTestRequest) (*ConfigureTestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfigureTest not implemented")
}
func (UnimplementedExtractionServiceServer) ImportToModule(context.Context, *ImportToModuleRequest) (*ImportToModuleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ImportToModule not implemented")
}
func (UnimplementedExtractionServiceServer) ImportWithTest(context.Context, *ImportWithTestRequest) (*ImportWithTestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ImportWithTest not implemented")
}
func (UnimplementedExtractionServiceServer) ExportReviewSheet(context.Context, *ExportReviewSheetRequest) (*ExportReviewSheetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportReviewSheet not implemented")
}
func (UnimplementedExtractionServiceServer) mustEmbedUnimplementedExtractionServiceServer() {}
func (UnimplementedExtractionServiceServer) testEmbeddedByValue()                           {}

// UnsafeExtractionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionServiceServer will
// result in compilation errors.
type UnsafeExtractionServiceServer interface {
	mustEmbedUnimplementedExtractionServiceServer()
}

func RegisterExtractionServiceServer(s grpc.ServiceRegistrar, srv ExtractionServiceServer) {
	// If the following call panics, it indicates UnimplementedExtractionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionService_ServiceDesc, srv)
}

func _ExtractionService_UploadPDF_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadPDFRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).UploadPDF(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_UploadPDF_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).UploadPDF(ctx, req.(*UploadPDFRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_GetJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ListJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ListJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ListJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ListJobs(ctx, req.(*ListJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_WatchJob_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WatchJobRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ExtractionServiceServer).WatchJob(m, &grpc.GenericServerStream[WatchJobRequest, JobStatusUpdate]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ExtractionService_WatchJobServer = grpc.ServerStreamingServer[JobStatusUpdate]

func _ExtractionService_CancelJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).CancelJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_CancelJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).CancelJob(ctx, req.(*CancelJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_RetryJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetryJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).RetryJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_RetryJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).RetryJob(ctx, req.(*RetryJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ListPages_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ListPages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ListPages_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ListPages(ctx, req.(*ListPagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ListQuestions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListQuestionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ListQuestions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ListQuestions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ListQuestions(ctx, req.(*ListQuestionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_GetPassage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPassageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).GetPassage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_GetPassage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).GetPassage(ctx, req.(*GetPassageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_GetQuestion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetQuestionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).GetQuestion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_GetQuestion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).GetQuestion(ctx, req.(*GetQuestionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_UpdateQuestion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateQuestionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).UpdateQuestion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_UpdateQuestion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).UpdateQuestion(ctx, req.(*UpdateQuestionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_BulkReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BulkReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).BulkReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_BulkReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).BulkReview(ctx, req.(*BulkReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ListPassages_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPassagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ListPassages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ListPassages_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ListPassages(ctx, req.(*ListPassagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_UpdatePassage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdatePassageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).UpdatePassage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_UpdatePassage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).UpdatePassage(ctx, req.(*UpdatePassageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_GetPageImage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPageImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).GetPageImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_GetPageImage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).GetPageImage(ctx, req.(*GetPageImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_CropPageImage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CropPageImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).CropPageImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_CropPageImage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).CropPageImage(ctx, req.(*CropPageImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_AttachQuestionImage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttachQuestionImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).AttachQuestionImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_AttachQuestionImage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).AttachQuestionImage(ctx, req.(*AttachQuestionImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_StructureSkippedPages_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StructureSkippedPagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).StructureSkippedPages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_StructureSkippedPages_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).StructureSkippedPages(ctx, req.(*StructureSkippedPagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ReextractPages_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReextractPagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ReextractPages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ReextractPages_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ReextractPages(ctx, req.(*ReextractPagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ConfigureTest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfigureTestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ConfigureTest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ConfigureTest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ConfigureTest(ctx, req.(*ConfigureTestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ImportToModule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportToModuleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ImportToModule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ImportToModule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ImportToModule(ctx, req.(*ImportToModuleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ImportWithTest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportWithTestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ImportWithTest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ImportWithTest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ImportWithTest(ctx, req.(*ImportWithTestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ExportReviewSheet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReviewSheetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ExportReviewSheet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ExportReviewSheet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ExportReviewSheet(ctx, req.(*ExportReviewSheetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionService_ServiceDesc is the grpc.ServiceDesc for ExtractionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "examscan.v1.ExtractionService",
	HandlerType: (*ExtractionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadPDF",
			Handler:    _ExtractionService_UploadPDF_Handler,
		},
		{
			MethodName: "GetJob",
			Handler:    _ExtractionService_GetJob_Handler,
		},
		{
			MethodName: "ListJobs",
			Handler:    _ExtractionService_ListJobs_Handler,
		},
		{
			MethodName: "CancelJob",
			Handler:    _ExtractionService_CancelJob_Handler,
		},
		{
			MethodName: "RetryJob",
			Handler:    _ExtractionService_RetryJob_Handler,
		},
		{
			MethodName: "ListPages",
			Handler:    _ExtractionService_ListPages_Handler,
		},
		{
			MethodName: "ListQuestions",
			Handler:    _ExtractionService_ListQuestions_Handler,
		},
		{
			MethodName: "GetPassage",
			Handler:    _ExtractionService_GetPassage_Handler,
		},
		{
			MethodName: "GetQuestion",
			Handler:    _ExtractionService_GetQuestion_Handler,
		},
		{
			MethodName: "UpdateQuestion",
			Handler:    _ExtractionService_UpdateQuestion_Handler,
		},
		{
			MethodName: "BulkReview",
			Handler:    _ExtractionService_BulkReview_Handler,
		},
		{
			MethodName: "ListPassages",
			Handler:    _ExtractionService_ListPassages_Handler,
		},
		{
			MethodName: "UpdatePassage",
			Handler:    _ExtractionService_UpdatePassage_Handler,
		},
		{
			MethodName: "GetPageImage",
			Handler:    _ExtractionService_GetPageImage_Handler,
		},
		{
			MethodName: "CropPageImage",
			Handler:    _ExtractionService_CropPageImage_Handler,
		},
		{
			MethodName: "AttachQuestionImage",
			Handler:    _ExtractionService_AttachQuestionImage_Handler,
		},
		{
			MethodName: "StructureSkippedPages",
			Handler:    _ExtractionService_StructureSkippedPages_Handler,
		},
		{
			MethodName: "ReextractPages",
			Handler:    _ExtractionService_ReextractPages_Handler,
		},
		{
			MethodName: "ConfigureTest",
			Handler:    _ExtractionService_ConfigureTest_Handler,
		},
		{
			MethodName: "ImportToModule",
			Handler:    _ExtractionService_ImportToModule_Handler,
		},
		{
			MethodName: "ImportWithTest",
			Handler:    _ExtractionService_ImportWithTest_Handler,
		},
		{
			MethodName: "ExportReviewSheet",
			Handler:    _ExtractionService_ExportReviewSheet_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchJob",
			Handler:       _ExtractionService_WatchJob_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "examscan/v1/examscan.proto",
}
