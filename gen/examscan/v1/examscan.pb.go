// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: examscan/v1/examscan.proto

package examscanv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Job struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId             string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Status             string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	PdfFilename        string                 `protobuf:"bytes,4,opt,name=pdf_filename,json=pdfFilename,proto3" json:"pdf_filename,omitempty"`
	Provider           string                 `protobuf:"bytes,5,opt,name=provider,proto3" json:"provider,omitempty"`
	TotalPages         int32                  `protobuf:"varint,6,opt,name=total_pages,json=totalPages,proto3" json:"total_pages,omitempty"`
	ProcessedPages     int32                  `protobuf:"varint,7,opt,name=processed_pages,json=processedPages,proto3" json:"processed_pages,omitempty"`
	QuestionPages      int32                  `protobuf:"varint,8,opt,name=question_pages,json=questionPages,proto3" json:"question_pages,omitempty"`
	SkippedPages       int32                  `protobuf:"varint,9,opt,name=skipped_pages,json=skippedPages,proto3" json:"skipped_pages,omitempty"`
	FailedPages        int32                  `protobuf:"varint,10,opt,name=failed_pages,json=failedPages,proto3" json:"failed_pages,omitempty"`
	ExtractedQuestions int32                  `protobuf:"varint,11,opt,name=extracted_questions,json=extractedQuestions,proto3" json:"extracted_questions,omitempty"`
	ApprovedQuestions  int32                  `protobuf:"varint,12,opt,name=approved_questions,json=approvedQuestions,proto3" json:"approved_questions,omitempty"`
	ImportedQuestions  int32                  `protobuf:"varint,13,opt,name=imported_questions,json=importedQuestions,proto3" json:"imported_questions,omitempty"`
	EstimatedCostCents int32                  `protobuf:"varint,14,opt,name=estimated_cost_cents,json=estimatedCostCents,proto3" json:"estimated_cost_cents,omitempty"`
	ActualCostCents    int32                  `protobuf:"varint,15,opt,name=actual_cost_cents,json=actualCostCents,proto3" json:"actual_cost_cents,omitempty"`
	ErrorMessage       string                 `protobuf:"bytes,16,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	LastErrorPage      int32                  `protobuf:"varint,17,opt,name=last_error_page,json=lastErrorPage,proto3" json:"last_error_page,omitempty"`
	RetryCount         int32                  `protobuf:"varint,18,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	TargetModuleId     string                 `protobuf:"bytes,19,opt,name=target_module_id,json=targetModuleId,proto3" json:"target_module_id,omitempty"`
	CreatedTestIds     []string               `protobuf:"bytes,20,rep,name=created_test_ids,json=createdTestIds,proto3" json:"created_test_ids,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,21,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	StartedAt          string                 `protobuf:"bytes,22,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt        string                 `protobuf:"bytes,23,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetPdfFilename() string {
	if x != nil {
		return x.PdfFilename
	}
	return ""
}

func (x *Job) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *Job) GetTotalPages() int32 {
	if x != nil {
		return x.TotalPages
	}
	return 0
}

func (x *Job) GetProcessedPages() int32 {
	if x != nil {
		return x.ProcessedPages
	}
	return 0
}

func (x *Job) GetQuestionPages() int32 {
	if x != nil {
		return x.QuestionPages
	}
	return 0
}

func (x *Job) GetSkippedPages() int32 {
	if x != nil {
		return x.SkippedPages
	}
	return 0
}

func (x *Job) GetFailedPages() int32 {
	if x != nil {
		return x.FailedPages
	}
	return 0
}

func (x *Job) GetExtractedQuestions() int32 {
	if x != nil {
		return x.ExtractedQuestions
	}
	return 0
}

func (x *Job) GetApprovedQuestions() int32 {
	if x != nil {
		return x.ApprovedQuestions
	}
	return 0
}

func (x *Job) GetImportedQuestions() int32 {
	if x != nil {
		return x.ImportedQuestions
	}
	return 0
}

func (x *Job) GetEstimatedCostCents() int32 {
	if x != nil {
		return x.EstimatedCostCents
	}
	return 0
}

func (x *Job) GetActualCostCents() int32 {
	if x != nil {
		return x.ActualCostCents
	}
	return 0
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetLastErrorPage() int32 {
	if x != nil {
		return x.LastErrorPage
	}
	return 0
}

func (x *Job) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *Job) GetTargetModuleId() string {
	if x != nil {
		return x.TargetModuleId
	}
	return ""
}

func (x *Job) GetCreatedTestIds() []string {
	if x != nil {
		return x.CreatedTestIds
	}
	return nil
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type Option struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Option) Reset() {
	*x = Option{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Option) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Option) ProtoMessage() {}

func (x *Option) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Option.ProtoReflect.Descriptor instead.
func (*Option) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{1}
}

func (x *Option) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Option) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type Table struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Headers       []string               `protobuf:"bytes,1,rep,name=headers,proto3" json:"headers,omitempty"`
	Rows          []*TableRow            `protobuf:"bytes,2,rep,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Table) Reset() {
	*x = Table{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Table) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Table) ProtoMessage() {}

func (x *Table) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Table.ProtoReflect.Descriptor instead.
func (*Table) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{2}
}

func (x *Table) GetHeaders() []string {
	if x != nil {
		return x.Headers
	}
	return nil
}

func (x *Table) GetRows() []*TableRow {
	if x != nil {
		return x.Rows
	}
	return nil
}

type TableRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cells         []string               `protobuf:"bytes,1,rep,name=cells,proto3" json:"cells,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TableRow) Reset() {
	*x = TableRow{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TableRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TableRow) ProtoMessage() {}

func (x *TableRow) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TableRow.ProtoReflect.Descriptor instead.
func (*TableRow) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{3}
}

func (x *TableRow) GetCells() []string {
	if x != nil {
		return x.Cells
	}
	return nil
}

type Question struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId                string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	PageNumber           int32                  `protobuf:"varint,3,opt,name=page_number,json=pageNumber,proto3" json:"page_number,omitempty"`
	ReviewStatus         string                 `protobuf:"bytes,4,opt,name=review_status,json=reviewStatus,proto3" json:"review_status,omitempty"`
	QuestionText         string                 `protobuf:"bytes,5,opt,name=question_text,json=questionText,proto3" json:"question_text,omitempty"`
	QuestionType         string                 `protobuf:"bytes,6,opt,name=question_type,json=questionType,proto3" json:"question_type,omitempty"`
	PassageId            string                 `protobuf:"bytes,7,opt,name=passage_id,json=passageId,proto3" json:"passage_id,omitempty"`
	PassageText          string                 `protobuf:"bytes,8,opt,name=passage_text,json=passageText,proto3" json:"passage_text,omitempty"`
	Options              []*Option              `protobuf:"bytes,9,rep,name=options,proto3" json:"options,omitempty"`
	TableData            *Table                 `protobuf:"bytes,10,opt,name=table_data,json=tableData,proto3" json:"table_data,omitempty"`
	CorrectAnswer        []string               `protobuf:"bytes,11,rep,name=correct_answer,json=correctAnswer,proto3" json:"correct_answer,omitempty"`
	NeedsAnswer          bool                   `protobuf:"varint,12,opt,name=needs_answer,json=needsAnswer,proto3" json:"needs_answer,omitempty"`
	Explanation          string                 `protobuf:"bytes,13,opt,name=explanation,proto3" json:"explanation,omitempty"`
	Difficulty           string                 `protobuf:"bytes,14,opt,name=difficulty,proto3" json:"difficulty,omitempty"`
	Domain               string                 `protobuf:"bytes,15,opt,name=domain,proto3" json:"domain,omitempty"`
	SkillTags            []string               `protobuf:"bytes,16,rep,name=skill_tags,json=skillTags,proto3" json:"skill_tags,omitempty"`
	ExtractionConfidence float32                `protobuf:"fixed32,17,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	AnswerConfidence     float32                `protobuf:"fixed32,18,opt,name=answer_confidence,json=answerConfidence,proto3" json:"answer_confidence,omitempty"`
	NeedsImage           bool                   `protobuf:"varint,19,opt,name=needs_image,json=needsImage,proto3" json:"needs_image,omitempty"`
	ImageUrl             string                 `protobuf:"bytes,20,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	ImageStatus          string                 `protobuf:"bytes,21,opt,name=image_status,json=imageStatus,proto3" json:"image_status,omitempty"`
	ValidationErrors     []string               `protobuf:"bytes,22,rep,name=validation_errors,json=validationErrors,proto3" json:"validation_errors,omitempty"`
	ImportedQuestionId   string                 `protobuf:"bytes,23,opt,name=imported_question_id,json=importedQuestionId,proto3" json:"imported_question_id,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Question) Reset() {
	*x = Question{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Question) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Question) ProtoMessage() {}

func (x *Question) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Question.ProtoReflect.Descriptor instead.
func (*Question) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{4}
}

func (x *Question) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Question) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *Question) GetPageNumber() int32 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

func (x *Question) GetReviewStatus() string {
	if x != nil {
		return x.ReviewStatus
	}
	return ""
}

func (x *Question) GetQuestionText() string {
	if x != nil {
		return x.QuestionText
	}
	return ""
}

func (x *Question) GetQuestionType() string {
	if x != nil {
		return x.QuestionType
	}
	return ""
}

func (x *Question) GetPassageId() string {
	if x != nil {
		return x.PassageId
	}
	return ""
}

func (x *Question) GetPassageText() string {
	if x != nil {
		return x.PassageText
	}
	return ""
}

func (x *Question) GetOptions() []*Option {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *Question) GetTableData() *Table {
	if x != nil {
		return x.TableData
	}
	return nil
}

func (x *Question) GetCorrectAnswer() []string {
	if x != nil {
		return x.CorrectAnswer
	}
	return nil
}

func (x *Question) GetNeedsAnswer() bool {
	if x != nil {
		return x.NeedsAnswer
	}
	return false
}

func (x *Question) GetExplanation() string {
	if x != nil {
		return x.Explanation
	}
	return ""
}

func (x *Question) GetDifficulty() string {
	if x != nil {
		return x.Difficulty
	}
	return ""
}

func (x *Question) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

func (x *Question) GetSkillTags() []string {
	if x != nil {
		return x.SkillTags
	}
	return nil
}

func (x *Question) GetExtractionConfidence() float32 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *Question) GetAnswerConfidence() float32 {
	if x != nil {
		return x.AnswerConfidence
	}
	return 0
}

func (x *Question) GetNeedsImage() bool {
	if x != nil {
		return x.NeedsImage
	}
	return false
}

func (x *Question) GetImageUrl() string {
	if x != nil {
		return x.ImageUrl
	}
	return ""
}

func (x *Question) GetImageStatus() string {
	if x != nil {
		return x.ImageStatus
	}
	return ""
}

func (x *Question) GetValidationErrors() []string {
	if x != nil {
		return x.ValidationErrors
	}
	return nil
}

func (x *Question) GetImportedQuestionId() string {
	if x != nil {
		return x.ImportedQuestionId
	}
	return ""
}

type Passage struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId                string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	PageNumber           int32                  `protobuf:"varint,3,opt,name=page_number,json=pageNumber,proto3" json:"page_number,omitempty"`
	Title                string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Content              string                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	ImportedPassageId    string                 `protobuf:"bytes,6,opt,name=imported_passage_id,json=importedPassageId,proto3" json:"imported_passage_id,omitempty"`
	Source               string                 `protobuf:"bytes,7,opt,name=source,proto3" json:"source,omitempty"`
	Author               string                 `protobuf:"bytes,8,opt,name=author,proto3" json:"author,omitempty"`
	Figures              []string               `protobuf:"bytes,9,rep,name=figures,proto3" json:"figures,omitempty"`
	ExtractionConfidence float32                `protobuf:"fixed32,10,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	ReviewStatus         string                 `protobuf:"bytes,11,opt,name=review_status,json=reviewStatus,proto3" json:"review_status,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Passage) Reset() {
	*x = Passage{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Passage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Passage) ProtoMessage() {}

func (x *Passage) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Passage.ProtoReflect.Descriptor instead.
func (*Passage) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{5}
}

func (x *Passage) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Passage) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *Passage) GetPageNumber() int32 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

func (x *Passage) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Passage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Passage) GetImportedPassageId() string {
	if x != nil {
		return x.ImportedPassageId
	}
	return ""
}

func (x *Passage) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Passage) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *Passage) GetFigures() []string {
	if x != nil {
		return x.Figures
	}
	return nil
}

func (x *Passage) GetExtractionConfidence() float32 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *Passage) GetReviewStatus() string {
	if x != nil {
		return x.ReviewStatus
	}
	return ""
}

type UploadPDFRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	UserId         string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename       string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content        []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	Provider       string                 `protobuf:"bytes,4,opt,name=provider,proto3" json:"provider,omitempty"`                                     // openai | deepinfra | openrouter | hybrid
	TargetModuleId string                 `protobuf:"bytes,5,opt,name=target_module_id,json=targetModuleId,proto3" json:"target_module_id,omitempty"` // optional
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadPDFRequest) Reset() {
	*x = UploadPDFRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadPDFRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadPDFRequest) ProtoMessage() {}

func (x *UploadPDFRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadPDFRequest.ProtoReflect.Descriptor instead.
func (*UploadPDFRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{6}
}

func (x *UploadPDFRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadPDFRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadPDFRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadPDFRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *UploadPDFRequest) GetTargetModuleId() string {
	if x != nil {
		return x.TargetModuleId
	}
	return ""
}

// Uploading a file that already has an active job fails with
// ALREADY_EXISTS naming the existing job.
type UploadPDFResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadPDFResponse) Reset() {
	*x = UploadPDFResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadPDFResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadPDFResponse) ProtoMessage() {}

func (x *UploadPDFResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadPDFResponse.ProtoReflect.Descriptor instead.
func (*UploadPDFResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{7}
}

func (x *UploadPDFResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{8}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{9}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"` // optional filter
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{10}
}

func (x *ListJobsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListJobsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListJobsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{11}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

func (x *ListJobsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type WatchJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchJobRequest) Reset() {
	*x = WatchJobRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchJobRequest) ProtoMessage() {}

func (x *WatchJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchJobRequest.ProtoReflect.Descriptor instead.
func (*WatchJobRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{12}
}

func (x *WatchJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type JobStatusUpdate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobStatusUpdate) Reset() {
	*x = JobStatusUpdate{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobStatusUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobStatusUpdate) ProtoMessage() {}

func (x *JobStatusUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobStatusUpdate.ProtoReflect.Descriptor instead.
func (*JobStatusUpdate) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{13}
}

func (x *JobStatusUpdate) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{14}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{15}
}

func (x *CancelJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type RetryJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryJobRequest) Reset() {
	*x = RetryJobRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryJobRequest) ProtoMessage() {}

func (x *RetryJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryJobRequest.ProtoReflect.Descriptor instead.
func (*RetryJobRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{16}
}

func (x *RetryJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type RetryJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryJobResponse) Reset() {
	*x = RetryJobResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryJobResponse) ProtoMessage() {}

func (x *RetryJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryJobResponse.ProtoReflect.Descriptor instead.
func (*RetryJobResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{17}
}

func (x *RetryJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type Page struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	PageNumber           int32                  `protobuf:"varint,1,opt,name=page_number,json=pageNumber,proto3" json:"page_number,omitempty"`
	State                string                 `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"` // unprocessed | ocr_done | complete | failed
	IsQuestionPage       bool                   `protobuf:"varint,3,opt,name=is_question_page,json=isQuestionPage,proto3" json:"is_question_page,omitempty"`
	OcrCostCents         int32                  `protobuf:"varint,4,opt,name=ocr_cost_cents,json=ocrCostCents,proto3" json:"ocr_cost_cents,omitempty"`
	StructuringCostCents int32                  `protobuf:"varint,5,opt,name=structuring_cost_cents,json=structuringCostCents,proto3" json:"structuring_cost_cents,omitempty"`
	ErrorMessage         string                 `protobuf:"bytes,6,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	RetryCount           int32                  `protobuf:"varint,7,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	ProviderUsed         string                 `protobuf:"bytes,8,opt,name=provider_used,json=providerUsed,proto3" json:"provider_used,omitempty"`
	HasImage             bool                   `protobuf:"varint,9,opt,name=has_image,json=hasImage,proto3" json:"has_image,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Page) Reset() {
	*x = Page{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Page) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Page) ProtoMessage() {}

func (x *Page) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Page.ProtoReflect.Descriptor instead.
func (*Page) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{18}
}

func (x *Page) GetPageNumber() int32 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

func (x *Page) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Page) GetIsQuestionPage() bool {
	if x != nil {
		return x.IsQuestionPage
	}
	return false
}

func (x *Page) GetOcrCostCents() int32 {
	if x != nil {
		return x.OcrCostCents
	}
	return 0
}

func (x *Page) GetStructuringCostCents() int32 {
	if x != nil {
		return x.StructuringCostCents
	}
	return 0
}

func (x *Page) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Page) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *Page) GetProviderUsed() string {
	if x != nil {
		return x.ProviderUsed
	}
	return ""
}

func (x *Page) GetHasImage() bool {
	if x != nil {
		return x.HasImage
	}
	return false
}

type ListPagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	State         string                 `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`                                 // optional filter
	OnlySkipped   bool                   `protobuf:"varint,3,opt,name=only_skipped,json=onlySkipped,proto3" json:"only_skipped,omitempty"` // question-less pages awaiting restructure
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPagesRequest) Reset() {
	*x = ListPagesRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPagesRequest) ProtoMessage() {}

func (x *ListPagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPagesRequest.ProtoReflect.Descriptor instead.
func (*ListPagesRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{19}
}

func (x *ListPagesRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ListPagesRequest) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *ListPagesRequest) GetOnlySkipped() bool {
	if x != nil {
		return x.OnlySkipped
	}
	return false
}

type ListPagesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pages         []*Page                `protobuf:"bytes,1,rep,name=pages,proto3" json:"pages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPagesResponse) Reset() {
	*x = ListPagesResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPagesResponse) ProtoMessage() {}

func (x *ListPagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPagesResponse.ProtoReflect.Descriptor instead.
func (*ListPagesResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{20}
}

func (x *ListPagesResponse) GetPages() []*Page {
	if x != nil {
		return x.Pages
	}
	return nil
}

type ListQuestionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ReviewStatus  string                 `protobuf:"bytes,2,opt,name=review_status,json=reviewStatus,proto3" json:"review_status,omitempty"` // optional filter
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQuestionsRequest) Reset() {
	*x = ListQuestionsRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuestionsRequest) ProtoMessage() {}

func (x *ListQuestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuestionsRequest.ProtoReflect.Descriptor instead.
func (*ListQuestionsRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{21}
}

func (x *ListQuestionsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ListQuestionsRequest) GetReviewStatus() string {
	if x != nil {
		return x.ReviewStatus
	}
	return ""
}

type ListQuestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Questions     []*Question            `protobuf:"bytes,1,rep,name=questions,proto3" json:"questions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQuestionsResponse) Reset() {
	*x = ListQuestionsResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuestionsResponse) ProtoMessage() {}

func (x *ListQuestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuestionsResponse.ProtoReflect.Descriptor instead.
func (*ListQuestionsResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{22}
}

func (x *ListQuestionsResponse) GetQuestions() []*Question {
	if x != nil {
		return x.Questions
	}
	return nil
}

type GetQuestionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuestionId    string                 `protobuf:"bytes,1,opt,name=question_id,json=questionId,proto3" json:"question_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuestionRequest) Reset() {
	*x = GetQuestionRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuestionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuestionRequest) ProtoMessage() {}

func (x *GetQuestionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuestionRequest.ProtoReflect.Descriptor instead.
func (*GetQuestionRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{23}
}

func (x *GetQuestionRequest) GetQuestionId() string {
	if x != nil {
		return x.QuestionId
	}
	return ""
}

type GetQuestionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Question      *Question              `protobuf:"bytes,1,opt,name=question,proto3" json:"question,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuestionResponse) Reset() {
	*x = GetQuestionResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuestionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuestionResponse) ProtoMessage() {}

func (x *GetQuestionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuestionResponse.ProtoReflect.Descriptor instead.
func (*GetQuestionResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{24}
}

func (x *GetQuestionResponse) GetQuestion() *Question {
	if x != nil {
		return x.Question
	}
	return nil
}

type UpdateQuestionRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	QuestionId string                 `protobuf:"bytes,1,opt,name=question_id,json=questionId,proto3" json:"question_id,omitempty"`
	// Unset fields leave the stored value unchanged.
	QuestionText  *string   `protobuf:"bytes,2,opt,name=question_text,json=questionText,proto3,oneof" json:"question_text,omitempty"`
	QuestionType  *string   `protobuf:"bytes,3,opt,name=question_type,json=questionType,proto3,oneof" json:"question_type,omitempty"`
	PassageText   *string   `protobuf:"bytes,4,opt,name=passage_text,json=passageText,proto3,oneof" json:"passage_text,omitempty"`
	Options       []*Option `protobuf:"bytes,5,rep,name=options,proto3" json:"options,omitempty"`
	TableData     *Table    `protobuf:"bytes,6,opt,name=table_data,json=tableData,proto3,oneof" json:"table_data,omitempty"`
	CorrectAnswer []string  `protobuf:"bytes,7,rep,name=correct_answer,json=correctAnswer,proto3" json:"correct_answer,omitempty"`
	Explanation   *string   `protobuf:"bytes,8,opt,name=explanation,proto3,oneof" json:"explanation,omitempty"`
	Difficulty    *string   `protobuf:"bytes,9,opt,name=difficulty,proto3,oneof" json:"difficulty,omitempty"`
	Domain        *string   `protobuf:"bytes,10,opt,name=domain,proto3,oneof" json:"domain,omitempty"`
	SkillTags     []string  `protobuf:"bytes,11,rep,name=skill_tags,json=skillTags,proto3" json:"skill_tags,omitempty"`
	ReviewStatus  *string   `protobuf:"bytes,12,opt,name=review_status,json=reviewStatus,proto3,oneof" json:"review_status,omitempty"`
	ReviewedBy    string    `protobuf:"bytes,13,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateQuestionRequest) Reset() {
	*x = UpdateQuestionRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateQuestionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateQuestionRequest) ProtoMessage() {}

func (x *UpdateQuestionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateQuestionRequest.ProtoReflect.Descriptor instead.
func (*UpdateQuestionRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{25}
}

func (x *UpdateQuestionRequest) GetQuestionId() string {
	if x != nil {
		return x.QuestionId
	}
	return ""
}

func (x *UpdateQuestionRequest) GetQuestionText() string {
	if x != nil && x.QuestionText != nil {
		return *x.QuestionText
	}
	return ""
}

func (x *UpdateQuestionRequest) GetQuestionType() string {
	if x != nil && x.QuestionType != nil {
		return *x.QuestionType
	}
	return ""
}

func (x *UpdateQuestionRequest) GetPassageText() string {
	if x != nil && x.PassageText != nil {
		return *x.PassageText
	}
	return ""
}

func (x *UpdateQuestionRequest) GetOptions() []*Option {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *UpdateQuestionRequest) GetTableData() *Table {
	if x != nil {
		return x.TableData
	}
	return nil
}

func (x *UpdateQuestionRequest) GetCorrectAnswer() []string {
	if x != nil {
		return x.CorrectAnswer
	}
	return nil
}

func (x *UpdateQuestionRequest) GetExplanation() string {
	if x != nil && x.Explanation != nil {
		return *x.Explanation
	}
	return ""
}

func (x *UpdateQuestionRequest) GetDifficulty() string {
	if x != nil && x.Difficulty != nil {
		return *x.Difficulty
	}
	return ""
}

func (x *UpdateQuestionRequest) GetDomain() string {
	if x != nil && x.Domain != nil {
		return *x.Domain
	}
	return ""
}

func (x *UpdateQuestionRequest) GetSkillTags() []string {
	if x != nil {
		return x.SkillTags
	}
	return nil
}

func (x *UpdateQuestionRequest) GetReviewStatus() string {
	if x != nil && x.ReviewStatus != nil {
		return *x.ReviewStatus
	}
	return ""
}

func (x *UpdateQuestionRequest) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

type UpdateQuestionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Question      *Question              `protobuf:"bytes,1,opt,name=question,proto3" json:"question,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateQuestionResponse) Reset() {
	*x = UpdateQuestionResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateQuestionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateQuestionResponse) ProtoMessage() {}

func (x *UpdateQuestionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateQuestionResponse.ProtoReflect.Descriptor instead.
func (*UpdateQuestionResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{26}
}

func (x *UpdateQuestionResponse) GetQuestion() *Question {
	if x != nil {
		return x.Question
	}
	return nil
}

type BulkReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuestionIds   []string               `protobuf:"bytes,1,rep,name=question_ids,json=questionIds,proto3" json:"question_ids,omitempty"`
	ReviewStatus  string                 `protobuf:"bytes,2,opt,name=review_status,json=reviewStatus,proto3" json:"review_status,omitempty"` // approved | rejected | needs_edit
	ReviewedBy    string                 `protobuf:"bytes,3,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkReviewRequest) Reset() {
	*x = BulkReviewRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkReviewRequest) ProtoMessage() {}

func (x *BulkReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkReviewRequest.ProtoReflect.Descriptor instead.
func (*BulkReviewRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{27}
}

func (x *BulkReviewRequest) GetQuestionIds() []string {
	if x != nil {
		return x.QuestionIds
	}
	return nil
}

func (x *BulkReviewRequest) GetReviewStatus() string {
	if x != nil {
		return x.ReviewStatus
	}
	return ""
}

func (x *BulkReviewRequest) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

type BulkReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Updated       int32                  `protobuf:"varint,1,opt,name=updated,proto3" json:"updated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkReviewResponse) Reset() {
	*x = BulkReviewResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkReviewResponse) ProtoMessage() {}

func (x *BulkReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkReviewResponse.ProtoReflect.Descriptor instead.
func (*BulkReviewResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{28}
}

func (x *BulkReviewResponse) GetUpdated() int32 {
	if x != nil {
		return x.Updated
	}
	return 0
}

type GetPassageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PassageId     string                 `protobuf:"bytes,1,opt,name=passage_id,json=passageId,proto3" json:"passage_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPassageRequest) Reset() {
	*x = GetPassageRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPassageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPassageRequest) ProtoMessage() {}

func (x *GetPassageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPassageRequest.ProtoReflect.Descriptor instead.
func (*GetPassageRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{29}
}

func (x *GetPassageRequest) GetPassageId() string {
	if x != nil {
		return x.PassageId
	}
	return ""
}

type GetPassageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Passage       *Passage               `protobuf:"bytes,1,opt,name=passage,proto3" json:"passage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPassageResponse) Reset() {
	*x = GetPassageResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPassageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPassageResponse) ProtoMessage() {}

func (x *GetPassageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPassageResponse.ProtoReflect.Descriptor instead.
func (*GetPassageResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{30}
}

func (x *GetPassageResponse) GetPassage() *Passage {
	if x != nil {
		return x.Passage
	}
	return nil
}

type ListPassagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPassagesRequest) Reset() {
	*x = ListPassagesRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPassagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPassagesRequest) ProtoMessage() {}

func (x *ListPassagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPassagesRequest.ProtoReflect.Descriptor instead.
func (*ListPassagesRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{31}
}

func (x *ListPassagesRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ListPassagesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Passages      []*Passage             `protobuf:"bytes,1,rep,name=passages,proto3" json:"passages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPassagesResponse) Reset() {
	*x = ListPassagesResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPassagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPassagesResponse) ProtoMessage() {}

func (x *ListPassagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPassagesResponse.ProtoReflect.Descriptor instead.
func (*ListPassagesResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{32}
}

func (x *ListPassagesResponse) GetPassages() []*Passage {
	if x != nil {
		return x.Passages
	}
	return nil
}

type UpdatePassageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PassageId     string                 `protobuf:"bytes,1,opt,name=passage_id,json=passageId,proto3" json:"passage_id,omitempty"`
	Title         *string                `protobuf:"bytes,2,opt,name=title,proto3,oneof" json:"title,omitempty"`
	Content       *string                `protobuf:"bytes,3,opt,name=content,proto3,oneof" json:"content,omitempty"`
	Source        *string                `protobuf:"bytes,4,opt,name=source,proto3,oneof" json:"source,omitempty"`
	Author        *string                `protobuf:"bytes,5,opt,name=author,proto3,oneof" json:"author,omitempty"`
	ReviewStatus  *string                `protobuf:"bytes,6,opt,name=review_status,json=reviewStatus,proto3,oneof" json:"review_status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePassageRequest) Reset() {
	*x = UpdatePassageRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePassageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePassageRequest) ProtoMessage() {}

func (x *UpdatePassageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePassageRequest.ProtoReflect.Descriptor instead.
func (*UpdatePassageRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{33}
}

func (x *UpdatePassageRequest) GetPassageId() string {
	if x != nil {
		return x.PassageId
	}
	return ""
}

func (x *UpdatePassageRequest) GetTitle() string {
	if x != nil && x.Title != nil {
		return *x.Title
	}
	return ""
}

func (x *UpdatePassageRequest) GetContent() string {
	if x != nil && x.Content != nil {
		return *x.Content
	}
	return ""
}

func (x *UpdatePassageRequest) GetSource() string {
	if x != nil && x.Source != nil {
		return *x.Source
	}
	return ""
}

func (x *UpdatePassageRequest) GetAuthor() string {
	if x != nil && x.Author != nil {
		return *x.Author
	}
	return ""
}

func (x *UpdatePassageRequest) GetReviewStatus() string {
	if x != nil && x.ReviewStatus != nil {
		return *x.ReviewStatus
	}
	return ""
}

type UpdatePassageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Passage       *Passage               `protobuf:"bytes,1,opt,name=passage,proto3" json:"passage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePassageResponse) Reset() {
	*x = UpdatePassageResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePassageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePassageResponse) ProtoMessage() {}

func (x *UpdatePassageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePassageResponse.ProtoReflect.Descriptor instead.
func (*UpdatePassageResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{34}
}

func (x *UpdatePassageResponse) GetPassage() *Passage {
	if x != nil {
		return x.Passage
	}
	return nil
}

type GetPageImageRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	JobId      string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	PageNumber int32                  `protobuf:"varint,2,opt,name=page_number,json=pageNumber,proto3" json:"page_number,omitempty"`
	// Re-render the page from the PDF at this scale. Zero returns the
	// raster stored during extraction.
	Scale         float64 `protobuf:"fixed64,3,opt,name=scale,proto3" json:"scale,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPageImageRequest) Reset() {
	*x = GetPageImageRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPageImageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPageImageRequest) ProtoMessage() {}

func (x *GetPageImageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPageImageRequest.ProtoReflect.Descriptor instead.
func (*GetPageImageRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{35}
}

func (x *GetPageImageRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetPageImageRequest) GetPageNumber() int32 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

func (x *GetPageImageRequest) GetScale() float64 {
	if x != nil {
		return x.Scale
	}
	return 0
}

type GetPageImageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImagePng      []byte                 `protobuf:"bytes,1,opt,name=image_png,json=imagePng,proto3" json:"image_png,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPageImageResponse) Reset() {
	*x = GetPageImageResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPageImageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPageImageResponse) ProtoMessage() {}

func (x *GetPageImageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPageImageResponse.ProtoReflect.Descriptor instead.
func (*GetPageImageResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{36}
}

func (x *GetPageImageResponse) GetImagePng() []byte {
	if x != nil {
		return x.ImagePng
	}
	return nil
}

type CropRegion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	X             int32                  `protobuf:"varint,1,opt,name=x,proto3" json:"x,omitempty"`
	Y             int32                  `protobuf:"varint,2,opt,name=y,proto3" json:"y,omitempty"`
	Width         int32                  `protobuf:"varint,3,opt,name=width,proto3" json:"width,omitempty"`
	Height        int32                  `protobuf:"varint,4,opt,name=height,proto3" json:"height,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CropRegion) Reset() {
	*x = CropRegion{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CropRegion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CropRegion) ProtoMessage() {}

func (x *CropRegion) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CropRegion.ProtoReflect.Descriptor instead.
func (*CropRegion) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{37}
}

func (x *CropRegion) GetX() int32 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *CropRegion) GetY() int32 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *CropRegion) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *CropRegion) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

type CropPageImageRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	JobId      string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	PageNumber int32                  `protobuf:"varint,2,opt,name=page_number,json=pageNumber,proto3" json:"page_number,omitempty"`
	Region     *CropRegion            `protobuf:"bytes,3,opt,name=region,proto3" json:"region,omitempty"`
	// When set, the crop is stored and attached to this question.
	QuestionId    string `protobuf:"bytes,4,opt,name=question_id,json=questionId,proto3" json:"question_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CropPageImageRequest) Reset() {
	*x = CropPageImageRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CropPageImageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CropPageImageRequest) ProtoMessage() {}

func (x *CropPageImageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CropPageImageRequest.ProtoReflect.Descriptor instead.
func (*CropPageImageRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{38}
}

func (x *CropPageImageRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *CropPageImageRequest) GetPageNumber() int32 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

func (x *CropPageImageRequest) GetRegion() *CropRegion {
	if x != nil {
		return x.Region
	}
	return nil
}

func (x *CropPageImageRequest) GetQuestionId() string {
	if x != nil {
		return x.QuestionId
	}
	return ""
}

type CropPageImageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImagePng      []byte                 `protobuf:"bytes,1,opt,name=image_png,json=imagePng,proto3" json:"image_png,omitempty"`
	ImageUrl      string                 `protobuf:"bytes,2,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CropPageImageResponse) Reset() {
	*x = CropPageImageResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CropPageImageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CropPageImageResponse) ProtoMessage() {}

func (x *CropPageImageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CropPageImageResponse.ProtoReflect.Descriptor instead.
func (*CropPageImageResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{39}
}

func (x *CropPageImageResponse) GetImagePng() []byte {
	if x != nil {
		return x.ImagePng
	}
	return nil
}

func (x *CropPageImageResponse) GetImageUrl() string {
	if x != nil {
		return x.ImageUrl
	}
	return ""
}

// A crop the reviewer made locally, attached to a question as its figure.
type AttachQuestionImageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuestionId    string                 `protobuf:"bytes,1,opt,name=question_id,json=questionId,proto3" json:"question_id,omitempty"`
	ImagePng      []byte                 `protobuf:"bytes,2,opt,name=image_png,json=imagePng,proto3" json:"image_png,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachQuestionImageRequest) Reset() {
	*x = AttachQuestionImageRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachQuestionImageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachQuestionImageRequest) ProtoMessage() {}

func (x *AttachQuestionImageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachQuestionImageRequest.ProtoReflect.Descriptor instead.
func (*AttachQuestionImageRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{40}
}

func (x *AttachQuestionImageRequest) GetQuestionId() string {
	if x != nil {
		return x.QuestionId
	}
	return ""
}

func (x *AttachQuestionImageRequest) GetImagePng() []byte {
	if x != nil {
		return x.ImagePng
	}
	return nil
}

type AttachQuestionImageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageUrl      string                 `protobuf:"bytes,1,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachQuestionImageResponse) Reset() {
	*x = AttachQuestionImageResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachQuestionImageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachQuestionImageResponse) ProtoMessage() {}

func (x *AttachQuestionImageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachQuestionImageResponse.ProtoReflect.Descriptor instead.
func (*AttachQuestionImageResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{41}
}

func (x *AttachQuestionImageResponse) GetImageUrl() string {
	if x != nil {
		return x.ImageUrl
	}
	return ""
}

type StructureSkippedPagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	PageNumbers   []int32                `protobuf:"varint,2,rep,packed,name=page_numbers,json=pageNumbers,proto3" json:"page_numbers,omitempty"` // empty means every skipped page
	Provider      string                 `protobuf:"bytes,3,opt,name=provider,proto3" json:"provider,omitempty"`                                  // optional override
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StructureSkippedPagesRequest) Reset() {
	*x = StructureSkippedPagesRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StructureSkippedPagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StructureSkippedPagesRequest) ProtoMessage() {}

func (x *StructureSkippedPagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StructureSkippedPagesRequest.ProtoReflect.Descriptor instead.
func (*StructureSkippedPagesRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{42}
}

func (x *StructureSkippedPagesRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *StructureSkippedPagesRequest) GetPageNumbers() []int32 {
	if x != nil {
		return x.PageNumbers
	}
	return nil
}

func (x *StructureSkippedPagesRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

type StructureSkippedPagesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StructureSkippedPagesResponse) Reset() {
	*x = StructureSkippedPagesResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StructureSkippedPagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StructureSkippedPagesResponse) ProtoMessage() {}

func (x *StructureSkippedPagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StructureSkippedPagesResponse.ProtoReflect.Descriptor instead.
func (*StructureSkippedPagesResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{43}
}

func (x *StructureSkippedPagesResponse) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type ReextractPagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	PageNumbers   []int32                `protobuf:"varint,2,rep,packed,name=page_numbers,json=pageNumbers,proto3" json:"page_numbers,omitempty"`
	Provider      string                 `protobuf:"bytes,3,opt,name=provider,proto3" json:"provider,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReextractPagesRequest) Reset() {
	*x = ReextractPagesRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReextractPagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReextractPagesRequest) ProtoMessage() {}

func (x *ReextractPagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReextractPagesRequest.ProtoReflect.Descriptor instead.
func (*ReextractPagesRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{44}
}

func (x *ReextractPagesRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ReextractPagesRequest) GetPageNumbers() []int32 {
	if x != nil {
		return x.PageNumbers
	}
	return nil
}

func (x *ReextractPagesRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

type ReextractPagesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReextractPagesResponse) Reset() {
	*x = ReextractPagesResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReextractPagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReextractPagesResponse) ProtoMessage() {}

func (x *ReextractPagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReextractPagesResponse.ProtoReflect.Descriptor instead.
func (*ReextractPagesResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{45}
}

func (x *ReextractPagesResponse) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type ImportToModuleRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	JobId    string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ModuleId string                 `protobuf:"bytes,2,opt,name=module_id,json=moduleId,proto3" json:"module_id,omitempty"`
	// Restrict the import to these candidates; empty imports every approved
	// unimported question.
	QuestionIds   []string `protobuf:"bytes,3,rep,name=question_ids,json=questionIds,proto3" json:"question_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportToModuleRequest) Reset() {
	*x = ImportToModuleRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportToModuleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportToModuleRequest) ProtoMessage() {}

func (x *ImportToModuleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportToModuleRequest.ProtoReflect.Descriptor instead.
func (*ImportToModuleRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{46}
}

func (x *ImportToModuleRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ImportToModuleRequest) GetModuleId() string {
	if x != nil {
		return x.ModuleId
	}
	return ""
}

func (x *ImportToModuleRequest) GetQuestionIds() []string {
	if x != nil {
		return x.QuestionIds
	}
	return nil
}

type ImportToModuleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Imported      int32                  `protobuf:"varint,1,opt,name=imported,proto3" json:"imported,omitempty"`
	FirstNumber   int32                  `protobuf:"varint,2,opt,name=first_number,json=firstNumber,proto3" json:"first_number,omitempty"`
	LastNumber    int32                  `protobuf:"varint,3,opt,name=last_number,json=lastNumber,proto3" json:"last_number,omitempty"`
	QuestionIds   []string               `protobuf:"bytes,4,rep,name=question_ids,json=questionIds,proto3" json:"question_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportToModuleResponse) Reset() {
	*x = ImportToModuleResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportToModuleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportToModuleResponse) ProtoMessage() {}

func (x *ImportToModuleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportToModuleResponse.ProtoReflect.Descriptor instead.
func (*ImportToModuleResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{47}
}

func (x *ImportToModuleResponse) GetImported() int32 {
	if x != nil {
		return x.Imported
	}
	return 0
}

func (x *ImportToModuleResponse) GetFirstNumber() int32 {
	if x != nil {
		return x.FirstNumber
	}
	return 0
}

func (x *ImportToModuleResponse) GetLastNumber() int32 {
	if x != nil {
		return x.LastNumber
	}
	return 0
}

func (x *ImportToModuleResponse) GetQuestionIds() []string {
	if x != nil {
		return x.QuestionIds
	}
	return nil
}

type ModuleSpec struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Section          string                 `protobuf:"bytes,1,opt,name=section,proto3" json:"section,omitempty"`                                              // reading_writing | math
	ModuleSlot       string                 `protobuf:"bytes,2,opt,name=module_slot,json=moduleSlot,proto3" json:"module_slot,omitempty"`                      // module_1 | module_2
	ModuleDifficulty string                 `protobuf:"bytes,3,opt,name=module_difficulty,json=moduleDifficulty,proto3" json:"module_difficulty,omitempty"`    // standard | easier | harder
	TimeLimitMinutes int32                  `protobuf:"varint,4,opt,name=time_limit_minutes,json=timeLimitMinutes,proto3" json:"time_limit_minutes,omitempty"` // 0 means the section default
	QuestionStart    int32                  `protobuf:"varint,5,opt,name=question_start,json=questionStart,proto3" json:"question_start,omitempty"`            // 1-based, inclusive
	QuestionEnd      int32                  `protobuf:"varint,6,opt,name=question_end,json=questionEnd,proto3" json:"question_end,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ModuleSpec) Reset() {
	*x = ModuleSpec{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ModuleSpec) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ModuleSpec) ProtoMessage() {}

func (x *ModuleSpec) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ModuleSpec.ProtoReflect.Descriptor instead.
func (*ModuleSpec) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{48}
}

func (x *ModuleSpec) GetSection() string {
	if x != nil {
		return x.Section
	}
	return ""
}

func (x *ModuleSpec) GetModuleSlot() string {
	if x != nil {
		return x.ModuleSlot
	}
	return ""
}

func (x *ModuleSpec) GetModuleDifficulty() string {
	if x != nil {
		return x.ModuleDifficulty
	}
	return ""
}

func (x *ModuleSpec) GetTimeLimitMinutes() int32 {
	if x != nil {
		return x.TimeLimitMinutes
	}
	return 0
}

func (x *ModuleSpec) GetQuestionStart() int32 {
	if x != nil {
		return x.QuestionStart
	}
	return 0
}

func (x *ModuleSpec) GetQuestionEnd() int32 {
	if x != nil {
		return x.QuestionEnd
	}
	return 0
}

// ConfigureTest stores a planned test layout on the job so ImportWithTest
// can run later without re-entering it.
type ConfigureTestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	TestType      string                 `protobuf:"bytes,3,opt,name=test_type,json=testType,proto3" json:"test_type,omitempty"`
	Modules       []*ModuleSpec          `protobuf:"bytes,4,rep,name=modules,proto3" json:"modules,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfigureTestRequest) Reset() {
	*x = ConfigureTestRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfigureTestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfigureTestRequest) ProtoMessage() {}

func (x *ConfigureTestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfigureTestRequest.ProtoReflect.Descriptor instead.
func (*ConfigureTestRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{49}
}

func (x *ConfigureTestRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ConfigureTestRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ConfigureTestRequest) GetTestType() string {
	if x != nil {
		return x.TestType
	}
	return ""
}

func (x *ConfigureTestRequest) GetModules() []*ModuleSpec {
	if x != nil {
		return x.Modules
	}
	return nil
}

type ConfigureTestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfigureTestResponse) Reset() {
	*x = ConfigureTestResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[50]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfigureTestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfigureTestResponse) ProtoMessage() {}

func (x *ConfigureTestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[50]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfigureTestResponse.ProtoReflect.Descriptor instead.
func (*ConfigureTestResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{50}
}

func (x *ConfigureTestResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ImportWithTestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	TestType      string                 `protobuf:"bytes,3,opt,name=test_type,json=testType,proto3" json:"test_type,omitempty"` // full_test | section | module
	Modules       []*ModuleSpec          `protobuf:"bytes,4,rep,name=modules,proto3" json:"modules,omitempty"`
	CreatedBy     string                 `protobuf:"bytes,5,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportWithTestRequest) Reset() {
	*x = ImportWithTestRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[51]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportWithTestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportWithTestRequest) ProtoMessage() {}

func (x *ImportWithTestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[51]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportWithTestRequest.ProtoReflect.Descriptor instead.
func (*ImportWithTestRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{51}
}

func (x *ImportWithTestRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ImportWithTestRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ImportWithTestRequest) GetTestType() string {
	if x != nil {
		return x.TestType
	}
	return ""
}

func (x *ImportWithTestRequest) GetModules() []*ModuleSpec {
	if x != nil {
		return x.Modules
	}
	return nil
}

func (x *ImportWithTestRequest) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

type ImportWithTestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TestId        string                 `protobuf:"bytes,1,opt,name=test_id,json=testId,proto3" json:"test_id,omitempty"`
	Imported      int32                  `protobuf:"varint,2,opt,name=imported,proto3" json:"imported,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportWithTestResponse) Reset() {
	*x = ImportWithTestResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[52]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportWithTestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportWithTestResponse) ProtoMessage() {}

func (x *ImportWithTestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[52]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportWithTestResponse.ProtoReflect.Descriptor instead.
func (*ImportWithTestResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{52}
}

func (x *ImportWithTestResponse) GetTestId() string {
	if x != nil {
		return x.TestId
	}
	return ""
}

func (x *ImportWithTestResponse) GetImported() int32 {
	if x != nil {
		return x.Imported
	}
	return 0
}

type ExportReviewSheetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReviewSheetRequest) Reset() {
	*x = ExportReviewSheetRequest{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[53]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReviewSheetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReviewSheetRequest) ProtoMessage() {}

func (x *ExportReviewSheetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[53]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReviewSheetRequest.ProtoReflect.Descriptor instead.
func (*ExportReviewSheetRequest) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{53}
}

func (x *ExportReviewSheetRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportReviewSheetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReviewSheetResponse) Reset() {
	*x = ExportReviewSheetResponse{}
	mi := &file_examscan_v1_examscan_proto_msgTypes[54]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReviewSheetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReviewSheetResponse) ProtoMessage() {}

func (x *ExportReviewSheetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_examscan_v1_examscan_proto_msgTypes[54]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReviewSheetResponse.ProtoReflect.Descriptor instead.
func (*ExportReviewSheetResponse) Descriptor() ([]byte, []int) {
	return file_examscan_v1_examscan_proto_rawDescGZIP(), []int{54}
}

func (x *ExportReviewSheetResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportReviewSheetResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_examscan_v1_examscan_proto protoreflect.FileDescriptor

const file_examscan_v1_examscan_proto_rawDesc = "" +
	"\n" +
	"\x1aexamscan/v1/examscan.proto\x12\vexamscan.v1\"\xce\x06\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12!\n" +
	"\fpdf_filename\x18\x04 \x01(\tR\vpdfFilename\x12\x1a\n" +
	"\bprovider\x18\x05 \x01(\tR\bprovider\x12\x1f\n" +
	"\vtotal_pages\x18\x06 \x01(\x05R\n" +
	"totalPages\x12'\n" +
	"\x0fprocessed_pages\x18\a \x01(\x05R\x0eprocessedPages\x12%\n" +
	"\x0equestion_pages\x18\b \x01(\x05R\rquestionPages\x12#\n" +
	"\rskipped_pages\x18\t \x01(\x05R\fskippedPages\x12!\n" +
	"\ffailed_pages\x18\n" +
	" \x01(\x05R\vfailedPages\x12/\n" +
	"\x13extracted_questions\x18\v \x01(\x05R\x12extractedQuestions\x12-\n" +
	"\x12approved_questions\x18\f \x01(\x05R\x11approvedQuestions\x12-\n" +
	"\x12imported_questions\x18\r \x01(\x05R\x11importedQuestions\x120\n" +
	"\x14estimated_cost_cents\x18\x0e \x01(\x05R\x12estimatedCostCents\x12*\n" +
	"\x11actual_cost_cents\x18\x0f \x01(\x05R\x0factualCostCents\x12#\n" +
	"\rerror_message\x18\x10 \x01(\tR\ferrorMessage\x12&\n" +
	"\x0flast_error_page\x18\x11 \x01(\x05R\rlastErrorPage\x12\x1f\n" +
	"\vretry_count\x18\x12 \x01(\x05R\n" +
	"retryCount\x12(\n" +
	"\x10target_module_id\x18\x13 \x01(\tR\x0etargetModuleId\x12(\n" +
	"\x10created_test_ids\x18\x14 \x03(\tR\x0ecreatedTestIds\x12\x1d\n" +
	"\n" +
	"created_at\x18\x15 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\x16 \x01(\tR\tstartedAt\x12!\n" +
	"\fcompleted_at\x18\x17 \x01(\tR\vcompletedAt\",\n" +
	"\x06Option\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"L\n" +
	"\x05Table\x12\x18\n" +
	"\aheaders\x18\x01 \x03(\tR\aheaders\x12)\n" +
	"\x04rows\x18\x02 \x03(\v2\x15.examscan.v1.TableRowR\x04rows\" \n" +
	"\bTableRow\x12\x14\n" +
	"\x05cells\x18\x01 \x03(\tR\x05cells\"\xca\x06\n" +
	"\bQuestion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1f\n" +
	"\vpage_number\x18\x03 \x01(\x05R\n" +
	"pageNumber\x12#\n" +
	"\rreview_status\x18\x04 \x01(\tR\freviewStatus\x12#\n" +
	"\rquestion_text\x18\x05 \x01(\tR\fquestionText\x12#\n" +
	"\rquestion_type\x18\x06 \x01(\tR\fquestionType\x12\x1d\n" +
	"\n" +
	"passage_id\x18\a \x01(\tR\tpassageId\x12!\n" +
	"\fpassage_text\x18\b \x01(\tR\vpassageText\x12-\n" +
	"\aoptions\x18\t \x03(\v2\x13.examscan.v1.OptionR\aoptions\x121\n" +
	"\n" +
	"table_data\x18\n" +
	" \x01(\v2\x12.examscan.v1.TableR\ttableData\x12%\n" +
	"\x0ecorrect_answer\x18\v \x03(\tR\rcorrectAnswer\x12!\n" +
	"\fneeds_answer\x18\f \x01(\bR\vneedsAnswer\x12 \n" +
	"\vexplanation\x18\r \x01(\tR\vexplanation\x12\x1e\n" +
	"\n" +
	"difficulty\x18\x0e \x01(\tR\n" +
	"difficulty\x12\x16\n" +
	"\x06domain\x18\x0f \x01(\tR\x06domain\x12\x1d\n" +
	"\n" +
	"skill_tags\x18\x10 \x03(\tR\tskillTags\x123\n" +
	"\x15extraction_confidence\x18\x11 \x01(\x02R\x14extractionConfidence\x12+\n" +
	"\x11answer_confidence\x18\x12 \x01(\x02R\x10answerConfidence\x12\x1f\n" +
	"\vneeds_image\x18\x13 \x01(\bR\n" +
	"needsImage\x12\x1b\n" +
	"\timage_url\x18\x14 \x01(\tR\bimageUrl\x12!\n" +
	"\fimage_status\x18\x15 \x01(\tR\vimageStatus\x12+\n" +
	"\x11validation_errors\x18\x16 \x03(\tR\x10validationErrors\x120\n" +
	"\x14imported_question_id\x18\x17 \x01(\tR\x12importedQuestionId\"\xd5\x02\n" +
	"\aPassage\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1f\n" +
	"\vpage_number\x18\x03 \x01(\x05R\n" +
	"pageNumber\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12\x18\n" +
	"\acontent\x18\x05 \x01(\tR\acontent\x12.\n" +
	"\x13imported_passage_id\x18\x06 \x01(\tR\x11importedPassageId\x12\x16\n" +
	"\x06source\x18\a \x01(\tR\x06source\x12\x16\n" +
	"\x06author\x18\b \x01(\tR\x06author\x12\x18\n" +
	"\afigures\x18\t \x03(\tR\afigures\x123\n" +
	"\x15extraction_confidence\x18\n" +
	" \x01(\x02R\x14extractionConfidence\x12#\n" +
	"\rreview_status\x18\v \x01(\tR\freviewStatus\"\xa7\x01\n" +
	"\x10UploadPDFRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\x12\x1a\n" +
	"\bprovider\x18\x04 \x01(\tR\bprovider\x12(\n" +
	"\x10target_module_id\x18\x05 \x01(\tR\x0etargetModuleId\"7\n" +
	"\x11UploadPDFResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.examscan.v1.JobR\x03job\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"4\n" +
	"\x0eGetJobResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.examscan.v1.JobR\x03job\"p\n" +
	"\x0fListJobsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\"N\n" +
	"\x10ListJobsResponse\x12$\n" +
	"\x04jobs\x18\x01 \x03(\v2\x10.examscan.v1.JobR\x04jobs\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"(\n" +
	"\x0fWatchJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"5\n" +
	"\x0fJobStatusUpdate\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.examscan.v1.JobR\x03job\")\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"7\n" +
	"\x11CancelJobResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.examscan.v1.JobR\x03job\"(\n" +
	"\x0fRetryJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"6\n" +
	"\x10RetryJobResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.examscan.v1.JobR\x03job\"\xcb\x02\n" +
	"\x04Page\x12\x1f\n" +
	"\vpage_number\x18\x01 \x01(\x05R\n" +
	"pageNumber\x12\x14\n" +
	"\x05state\x18\x02 \x01(\tR\x05state\x12(\n" +
	"\x10is_question_page\x18\x03 \x01(\bR\x0eisQuestionPage\x12$\n" +
	"\x0eocr_cost_cents\x18\x04 \x01(\x05R\focrCostCents\x124\n" +
	"\x16structuring_cost_cents\x18\x05 \x01(\x05R\x14structuringCostCents\x12#\n" +
	"\rerror_message\x18\x06 \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\vretry_count\x18\a \x01(\x05R\n" +
	"retryCount\x12#\n" +
	"\rprovider_used\x18\b \x01(\tR\fproviderUsed\x12\x1b\n" +
	"\thas_image\x18\t \x01(\bR\bhasImage\"b\n" +
	"\x10ListPagesRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x14\n" +
	"\x05state\x18\x02 \x01(\tR\x05state\x12!\n" +
	"\fonly_skipped\x18\x03 \x01(\bR\vonlySkipped\"<\n" +
	"\x11ListPagesResponse\x12'\n" +
	"\x05pages\x18\x01 \x03(\v2\x11.examscan.v1.PageR\x05pages\"R\n" +
	"\x14ListQuestionsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12#\n" +
	"\rreview_status\x18\x02 \x01(\tR\freviewStatus\"L\n" +
	"\x15ListQuestionsResponse\x123\n" +
	"\tquestions\x18\x01 \x03(\v2\x15.examscan.v1.QuestionR\tquestions\"5\n" +
	"\x12GetQuestionRequest\x12\x1f\n" +
	"\vquestion_id\x18\x01 \x01(\tR\n" +
	"questionId\"H\n" +
	"\x13GetQuestionResponse\x121\n" +
	"\bquestion\x18\x01 \x01(\v2\x15.examscan.v1.QuestionR\bquestion\"\x95\x05\n" +
	"\x15UpdateQuestionRequest\x12\x1f\n" +
	"\vquestion_id\x18\x01 \x01(\tR\n" +
	"questionId\x12(\n" +
	"\rquestion_text\x18\x02 \x01(\tH\x00R\fquestionText\x88\x01\x01\x12(\n" +
	"\rquestion_type\x18\x03 \x01(\tH\x01R\fquestionType\x88\x01\x01\x12&\n" +
	"\fpassage_text\x18\x04 \x01(\tH\x02R\vpassageText\x88\x01\x01\x12-\n" +
	"\aoptions\x18\x05 \x03(\v2\x13.examscan.v1.OptionR\aoptions\x126\n" +
	"\n" +
	"table_data\x18\x06 \x01(\v2\x12.examscan.v1.TableH\x03R\ttableData\x88\x01\x01\x12%\n" +
	"\x0ecorrect_answer\x18\a \x03(\tR\rcorrectAnswer\x12%\n" +
	"\vexplanation\x18\b \x01(\tH\x04R\vexplanation\x88\x01\x01\x12#\n" +
	"\n" +
	"difficulty\x18\t \x01(\tH\x05R\n" +
	"difficulty\x88\x01\x01\x12\x1b\n" +
	"\x06domain\x18\n" +
	" \x01(\tH\x06R\x06domain\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"skill_tags\x18\v \x03(\tR\tskillTags\x12(\n" +
	"\rreview_status\x18\f \x01(\tH\aR\freviewStatus\x88\x01\x01\x12\x1f\n" +
	"\vreviewed_by\x18\r \x01(\tR\n" +
	"reviewedByB\x10\n" +
	"\x0e_question_textB\x10\n" +
	"\x0e_question_typeB\x0f\n" +
	"\r_passage_textB\r\n" +
	"\v_table_dataB\x0e\n" +
	"\f_explanationB\r\n" +
	"\v_difficultyB\t\n" +
	"\a_domainB\x10\n" +
	"\x0e_review_status\"K\n" +
	"\x16UpdateQuestionResponse\x121\n" +
	"\bquestion\x18\x01 \x01(\v2\x15.examscan.v1.QuestionR\bquestion\"|\n" +
	"\x11BulkReviewRequest\x12!\n" +
	"\fquestion_ids\x18\x01 \x03(\tR\vquestionIds\x12#\n" +
	"\rreview_status\x18\x02 \x01(\tR\freviewStatus\x12\x1f\n" +
	"\vreviewed_by\x18\x03 \x01(\tR\n" +
	"reviewedBy\".\n" +
	"\x12BulkReviewResponse\x12\x18\n" +
	"\aupdated\x18\x01 \x01(\x05R\aupdated\"2\n" +
	"\x11GetPassageRequest\x12\x1d\n" +
	"\n" +
	"passage_id\x18\x01 \x01(\tR\tpassageId\"D\n" +
	"\x12GetPassageResponse\x12.\n" +
	"\apassage\x18\x01 \x01(\v2\x14.examscan.v1.PassageR\apassage\",\n" +
	"\x13ListPassagesRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"H\n" +
	"\x14ListPassagesResponse\x120\n" +
	"\bpassages\x18\x01 \x03(\v2\x14.examscan.v1.PassageR\bpassages\"\x91\x02\n" +
	"\x14UpdatePassageRequest\x12\x1d\n" +
	"\n" +
	"passage_id\x18\x01 \x01(\tR\tpassageId\x12\x19\n" +
	"\x05title\x18\x02 \x01(\tH\x00R\x05title\x88\x01\x01\x12\x1d\n" +
	"\acontent\x18\x03 \x01(\tH\x01R\acontent\x88\x01\x01\x12\x1b\n" +
	"\x06source\x18\x04 \x01(\tH\x02R\x06source\x88\x01\x01\x12\x1b\n" +
	"\x06author\x18\x05 \x01(\tH\x03R\x06author\x88\x01\x01\x12(\n" +
	"\rreview_status\x18\x06 \x01(\tH\x04R\freviewStatus\x88\x01\x01B\b\n" +
	"\x06_titleB\n" +
	"\n" +
	"\b_contentB\t\n" +
	"\a_sourceB\t\n" +
	"\a_authorB\x10\n" +
	"\x0e_review_status\"G\n" +
	"\x15UpdatePassageResponse\x12.\n" +
	"\apassage\x18\x01 \x01(\v2\x14.examscan.v1.PassageR\apassage\"c\n" +
	"\x13GetPageImageRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1f\n" +
	"\vpage_number\x18\x02 \x01(\x05R\n" +
	"pageNumber\x12\x14\n" +
	"\x05scale\x18\x03 \x01(\x01R\x05scale\"3\n" +
	"\x14GetPageImageResponse\x12\x1b\n" +
	"\timage_png\x18\x01 \x01(\fR\bimagePng\"V\n" +
	"\n" +
	"CropRegion\x12\f\n" +
	"\x01x\x18\x01 \x01(\x05R\x01x\x12\f\n" +
	"\x01y\x18\x02 \x01(\x05R\x01y\x12\x14\n" +
	"\x05width\x18\x03 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x04 \x01(\x05R\x06height\"\xa0\x01\n" +
	"\x14CropPageImageRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1f\n" +
	"\vpage_number\x18\x02 \x01(\x05R\n" +
	"pageNumber\x12/\n" +
	"\x06region\x18\x03 \x01(\v2\x17.examscan.v1.CropRegionR\x06region\x12\x1f\n" +
	"\vquestion_id\x18\x04 \x01(\tR\n" +
	"questionId\"Q\n" +
	"\x15CropPageImageResponse\x12\x1b\n" +
	"\timage_png\x18\x01 \x01(\fR\bimagePng\x12\x1b\n" +
	"\timage_url\x18\x02 \x01(\tR\bimageUrl\"Z\n" +
	"\x1aAttachQuestionImageRequest\x12\x1f\n" +
	"\vquestion_id\x18\x01 \x01(\tR\n" +
	"questionId\x12\x1b\n" +
	"\timage_png\x18\x02 \x01(\fR\bimagePng\":\n" +
	"\x1bAttachQuestionImageResponse\x12\x1b\n" +
	"\timage_url\x18\x01 \x01(\tR\bimageUrl\"t\n" +
	"\x1cStructureSkippedPagesRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12!\n" +
	"\fpage_numbers\x18\x02 \x03(\x05R\vpageNumbers\x12\x1a\n" +
	"\bprovider\x18\x03 \x01(\tR\bprovider\"8\n" +
	"\x1dStructureSkippedPagesResponse\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"m\n" +
	"\x15ReextractPagesRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12!\n" +
	"\fpage_numbers\x18\x02 \x03(\x05R\vpageNumbers\x12\x1a\n" +
	"\bprovider\x18\x03 \x01(\tR\bprovider\"1\n" +
	"\x16ReextractPagesResponse\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"n\n" +
	"\x15ImportToModuleRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1b\n" +
	"\tmodule_id\x18\x02 \x01(\tR\bmoduleId\x12!\n" +
	"\fquestion_ids\x18\x03 \x03(\tR\vquestionIds\"\x9b\x01\n" +
	"\x16ImportToModuleResponse\x12\x1a\n" +
	"\bimported\x18\x01 \x01(\x05R\bimported\x12!\n" +
	"\ffirst_number\x18\x02 \x01(\x05R\vfirstNumber\x12\x1f\n" +
	"\vlast_number\x18\x03 \x01(\x05R\n" +
	"lastNumber\x12!\n" +
	"\fquestion_ids\x18\x04 \x03(\tR\vquestionIds\"\xec\x01\n" +
	"\n" +
	"ModuleSpec\x12\x18\n" +
	"\asection\x18\x01 \x01(\tR\asection\x12\x1f\n" +
	"\vmodule_slot\x18\x02 \x01(\tR\n" +
	"moduleSlot\x12+\n" +
	"\x11module_difficulty\x18\x03 \x01(\tR\x10moduleDifficulty\x12,\n" +
	"\x12time_limit_minutes\x18\x04 \x01(\x05R\x10timeLimitMinutes\x12%\n" +
	"\x0equestion_start\x18\x05 \x01(\x05R\rquestionStart\x12!\n" +
	"\fquestion_end\x18\x06 \x01(\x05R\vquestionEnd\"\x93\x01\n" +
	"\x14ConfigureTestRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1b\n" +
	"\ttest_type\x18\x03 \x01(\tR\btestType\x121\n" +
	"\amodules\x18\x04 \x03(\v2\x17.examscan.v1.ModuleSpecR\amodules\";\n" +
	"\x15ConfigureTestResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.examscan.v1.JobR\x03job\"\xb3\x01\n" +
	"\x15ImportWithTestRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1b\n" +
	"\ttest_type\x18\x03 \x01(\tR\btestType\x121\n" +
	"\amodules\x18\x04 \x03(\v2\x17.examscan.v1.ModuleSpecR\amodules\x12\x1d\n" +
	"\n" +
	"created_by\x18\x05 \x01(\tR\tcreatedBy\"M\n" +
	"\x16ImportWithTestResponse\x12\x17\n" +
	"\atest_id\x18\x01 \x01(\tR\x06testId\x12\x1a\n" +
	"\bimported\x18\x02 \x01(\x05R\bimported\"1\n" +
	"\x18ExportReviewSheetRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"K\n" +
	"\x19ExportReviewSheetResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xba\x0f\n" +
	"\x11ExtractionService\x12J\n" +
	"\tUploadPDF\x12\x1d.examscan.v1.UploadPDFRequest\x1a\x1e.examscan.v1.UploadPDFResponse\x12A\n" +
	"\x06GetJob\x12\x1a.examscan.v1.GetJobRequest\x1a\x1b.examscan.v1.GetJobResponse\x12G\n" +
	"\bListJobs\x12\x1c.examscan.v1.ListJobsRequest\x1a\x1d.examscan.v1.ListJobsResponse\x12H\n" +
	"\bWatchJob\x12\x1c.examscan.v1.WatchJobRequest\x1a\x1c.examscan.v1.JobStatusUpdate0\x01\x12J\n" +
	"\tCancelJob\x12\x1d.examscan.v1.CancelJobRequest\x1a\x1e.examscan.v1.CancelJobResponse\x12G\n" +
	"\bRetryJob\x12\x1c.examscan.v1.RetryJobRequest\x1a\x1d.examscan.v1.RetryJobResponse\x12J\n" +
	"\tListPages\x12\x1d.examscan.v1.ListPagesRequest\x1a\x1e.examscan.v1.ListPagesResponse\x12V\n" +
	"\rListQuestions\x12!.examscan.v1.ListQuestionsRequest\x1a\".examscan.v1.ListQuestionsResponse\x12M\n" +
	"\n" +
	"GetPassage\x12\x1e.examscan.v1.GetPassageRequest\x1a\x1f.examscan.v1.GetPassageResponse\x12P\n" +
	"\vGetQuestion\x12\x1f.examscan.v1.GetQuestionRequest\x1a .examscan.v1.GetQuestionResponse\x12Y\n" +
	"\x0eUpdateQuestion\x12\".examscan.v1.UpdateQuestionRequest\x1a#.examscan.v1.UpdateQuestionResponse\x12M\n" +
	"\n" +
	"BulkReview\x12\x1e.examscan.v1.BulkReviewRequest\x1a\x1f.examscan.v1.BulkReviewResponse\x12S\n" +
	"\fListPassages\x12 .examscan.v1.ListPassagesRequest\x1a!.examscan.v1.ListPassagesResponse\x12V\n" +
	"\rUpdatePassage\x12!.examscan.v1.UpdatePassageRequest\x1a\".examscan.v1.UpdatePassageResponse\x12S\n" +
	"\fGetPageImage\x12 .examscan.v1.GetPageImageRequest\x1a!.examscan.v1.GetPageImageResponse\x12V\n" +
	"\rCropPageImage\x12!.examscan.v1.CropPageImageRequest\x1a\".examscan.v1.CropPageImageResponse\x12h\n" +
	"\x13AttachQuestionImage\x12'.examscan.v1.AttachQuestionImageRequest\x1a(.examscan.v1.AttachQuestionImageResponse\x12n\n" +
	"\x15StructureSkippedPages\x12).examscan.v1.StructureSkippedPagesRequest\x1a*.examscan.v1.StructureSkippedPagesResponse\x12Y\n" +
	"\x0eReextractPages\x12\".examscan.v1.ReextractPagesRequest\x1a#.examscan.v1.ReextractPagesResponse\x12V\n" +
	"\rConfigureTest\x12!.examscan.v1.ConfigureTestRequest\x1a\".examscan.v1.ConfigureTestResponse\x12Y\n" +
	"\x0eImportToModule\x12\".examscan.v1.ImportToModuleRequest\x1a#.examscan.v1.ImportToModuleResponse\x12Y\n" +
	"\x0eImportWithTest\x12\".examscan.v1.ImportWithTestRequest\x1a#.examscan.v1.ImportWithTestResponse\x12b\n" +
	"\x11ExportReviewSheet\x12%.examscan.v1.ExportReviewSheetRequest\x1a&.examscan.v1.ExportReviewSheetResponseB;Z9github.com/seyi-ajayi/examscan/gen/examscan/v1;examscanv1b\x06proto3"

var (
	file_examscan_v1_examscan_proto_rawDescOnce sync.Once
	file_examscan_v1_examscan_proto_rawDescData []byte
)

func file_examscan_v1_examscan_proto_rawDescGZIP() []byte {
	file_examscan_v1_examscan_proto_rawDescOnce.Do(func() {
		file_examscan_v1_examscan_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_examscan_v1_examscan_proto_rawDesc), len(file_examscan_v1_examscan_proto_rawDesc)))
	})
	return file_examscan_v1_examscan_proto_rawDescData
}

var file_examscan_v1_examscan_proto_msgTypes = make([]protoimpl.MessageInfo, 55)
var file_examscan_v1_examscan_proto_goTypes = []any{
	(*Job)(nil),                           // 0: examscan.v1.Job
	(*Option)(nil),                        // 1: examscan.v1.Option
	(*Table)(nil),                         // 2: examscan.v1.Table
	(*TableRow)(nil),                      // 3: examscan.v1.TableRow
	(*Question)(nil),                      // 4: examscan.v1.Question
	(*Passage)(nil),                       // 5: examscan.v1.Passage
	(*UploadPDFRequest)(nil),              // 6: examscan.v1.UploadPDFRequest
	(*UploadPDFResponse)(nil),             // 7: examscan.v1.UploadPDFResponse
	(*GetJobRequest)(nil),                 // 8: examscan.v1.GetJobRequest
	(*GetJobResponse)(nil),                // 9: examscan.v1.GetJobResponse
	(*ListJobsRequest)(nil),               // 10: examscan.v1.ListJobsRequest
	(*ListJobsResponse)(nil),              // 11: examscan.v1.ListJobsResponse
	(*WatchJobRequest)(nil),               // 12: examscan.v1.WatchJobRequest
	(*JobStatusUpdate)(nil),               // 13: examscan.v1.JobStatusUpdate
	(*CancelJobRequest)(nil),              // 14: examscan.v1.CancelJobRequest
	(*CancelJobResponse)(nil),             // 15: examscan.v1.CancelJobResponse
	(*RetryJobRequest)(nil),               // 16: examscan.v1.RetryJobRequest
	(*RetryJobResponse)(nil),              // 17: examscan.v1.RetryJobResponse
	(*Page)(nil),                          // 18: examscan.v1.Page
	(*ListPagesRequest)(nil),              // 19: examscan.v1.ListPagesRequest
	(*ListPagesResponse)(nil),             // 20: examscan.v1.ListPagesResponse
	(*ListQuestionsRequest)(nil),          // 21: examscan.v1.ListQuestionsRequest
	(*ListQuestionsResponse)(nil),         // 22: examscan.v1.ListQuestionsResponse
	(*GetQuestionRequest)(nil),            // 23: examscan.v1.GetQuestionRequest
	(*GetQuestionResponse)(nil),           // 24: examscan.v1.GetQuestionResponse
	(*UpdateQuestionRequest)(nil),         // 25: examscan.v1.UpdateQuestionRequest
	(*UpdateQuestionResponse)(nil),        // 26: examscan.v1.UpdateQuestionResponse
	(*BulkReviewRequest)(nil),             // 27: examscan.v1.BulkReviewRequest
	(*BulkReviewResponse)(nil),            // 28: examscan.v1.BulkReviewResponse
	(*GetPassageRequest)(nil),             // 29: examscan.v1.GetPassageRequest
	(*GetPassageResponse)(nil),            // 30: examscan.v1.GetPassageResponse
	(*ListPassagesRequest)(nil),           // 31: examscan.v1.ListPassagesRequest
	(*ListPassagesResponse)(nil),          // 32: examscan.v1.ListPassagesResponse
	(*UpdatePassageRequest)(nil),          // 33: examscan.v1.UpdatePassageRequest
	(*UpdatePassageResponse)(nil),         // 34: examscan.v1.UpdatePassageResponse
	(*GetPageImageRequest)(nil),           // 35: examscan.v1.GetPageImageRequest
	(*GetPageImageResponse)(nil),          // 36: examscan.v1.GetPageImageResponse
	(*CropRegion)(nil),                    // 37: examscan.v1.CropRegion
	(*CropPageImageRequest)(nil),          // 38: examscan.v1.CropPageImageRequest
	(*CropPageImageResponse)(nil),         // 39: examscan.v1.CropPageImageResponse
	(*AttachQuestionImageRequest)(nil),    // 40: examscan.v1.AttachQuestionImageRequest
	(*AttachQuestionImageResponse)(nil),   // 41: examscan.v1.AttachQuestionImageResponse
	(*StructureSkippedPagesRequest)(nil),  // 42: examscan.v1.StructureSkippedPagesRequest
	(*StructureSkippedPagesResponse)(nil), // 43: examscan.v1.StructureSkippedPagesResponse
	(*ReextractPagesRequest)(nil),         // 44: examscan.v1.ReextractPagesRequest
	(*ReextractPagesResponse)(nil),        // 45: examscan.v1.ReextractPagesResponse
	(*ImportToModuleRequest)(nil),         // 46: examscan.v1.ImportToModuleRequest
	(*ImportToModuleResponse)(nil),        // 47: examscan.v1.ImportToModuleResponse
	(*ModuleSpec)(nil),                    // 48: examscan.v1.ModuleSpec
	(*ConfigureTestRequest)(nil),          // 49: examscan.v1.ConfigureTestRequest
	(*ConfigureTestResponse)(nil),         // 50: examscan.v1.ConfigureTestResponse
	(*ImportWithTestRequest)(nil),         // 51: examscan.v1.ImportWithTestRequest
	(*ImportWithTestResponse)(nil),        // 52: examscan.v1.ImportWithTestResponse
	(*ExportReviewSheetRequest)(nil),      // 53: examscan.v1.ExportReviewSheetRequest
	(*ExportReviewSheetResponse)(nil),     // 54: examscan.v1.ExportReviewSheetResponse
}
var file_examscan_v1_examscan_proto_depIdxs = []int32{
	3,  // 0: examscan.v1.Table.rows:type_name -> examscan.v1.TableRow
	1,  // 1: examscan.v1.Question.options:type_name -> examscan.v1.Option
	2,  // 2: examscan.v1.Question.table_data:type_name -> examscan.v1.Table
	0,  // 3: examscan.v1.UploadPDFResponse.job:type_name -> examscan.v1.Job
	0,  // 4: examscan.v1.GetJobResponse.job:type_name -> examscan.v1.Job
	0,  // 5: examscan.v1.ListJobsResponse.jobs:type_name -> examscan.v1.Job
	0,  // 6: examscan.v1.JobStatusUpdate.job:type_name -> examscan.v1.Job
	0,  // 7: examscan.v1.CancelJobResponse.job:type_name -> examscan.v1.Job
	0,  // 8: examscan.v1.RetryJobResponse.job:type_name -> examscan.v1.Job
	18, // 9: examscan.v1.ListPagesResponse.pages:type_name -> examscan.v1.Page
	4,  // 10: examscan.v1.ListQuestionsResponse.questions:type_name -> examscan.v1.Question
	4,  // 11: examscan.v1.GetQuestionResponse.question:type_name -> examscan.v1.Question
	1,  // 12: examscan.v1.UpdateQuestionRequest.options:type_name -> examscan.v1.Option
	2,  // 13: examscan.v1.UpdateQuestionRequest.table_data:type_name -> examscan.v1.Table
	4,  // 14: examscan.v1.UpdateQuestionResponse.question:type_name -> examscan.v1.Question
	5,  // 15: examscan.v1.GetPassageResponse.passage:type_name -> examscan.v1.Passage
	5,  // 16: examscan.v1.ListPassagesResponse.passages:type_name -> examscan.v1.Passage
	5,  // 17: examscan.v1.UpdatePassageResponse.passage:type_name -> examscan.v1.Passage
	37, // 18: examscan.v1.CropPageImageRequest.region:type_name -> examscan.v1.CropRegion
	48, // 19: examscan.v1.ConfigureTestRequest.modules:type_name -> examscan.v1.ModuleSpec
	0,  // 20: examscan.v1.ConfigureTestResponse.job:type_name -> examscan.v1.Job
	48, // 21: examscan.v1.ImportWithTestRequest.modules:type_name -> examscan.v1.ModuleSpec
	6,  // 22: examscan.v1.ExtractionService.UploadPDF:input_type -> examscan.v1.UploadPDFRequest
	8,  // 23: examscan.v1.ExtractionService.GetJob:input_type -> examscan.v1.GetJobRequest
	10, // 24: examscan.v1.ExtractionService.ListJobs:input_type -> examscan.v1.ListJobsRequest
	12, // 25: examscan.v1.ExtractionService.WatchJob:input_type -> examscan.v1.WatchJobRequest
	14, // 26: examscan.v1.ExtractionService.CancelJob:input_type -> examscan.v1.CancelJobRequest
	16, // 27: examscan.v1.ExtractionService.RetryJob:input_type -> examscan.v1.RetryJobRequest
	19, // 28: examscan.v1.ExtractionService.ListPages:input_type -> examscan.v1.ListPagesRequest
	21, // 29: examscan.v1.ExtractionService.ListQuestions:input_type -> examscan.v1.ListQuestionsRequest
	29, // 30: examscan.v1.ExtractionService.GetPassage:input_type -> examscan.v1.GetPassageRequest
	23, // 31: examscan.v1.ExtractionService.GetQuestion:input_type -> examscan.v1.GetQuestionRequest
	25, // 32: examscan.v1.ExtractionService.UpdateQuestion:input_type -> examscan.v1.UpdateQuestionRequest
	27, // 33: examscan.v1.ExtractionService.BulkReview:input_type -> examscan.v1.BulkReviewRequest
	31, // 34: examscan.v1.ExtractionService.ListPassages:input_type -> examscan.v1.ListPassagesRequest
	33, // 35: examscan.v1.ExtractionService.UpdatePassage:input_type -> examscan.v1.UpdatePassageRequest
	35, // 36: examscan.v1.ExtractionService.GetPageImage:input_type -> examscan.v1.GetPageImageRequest
	38, // 37: examscan.v1.ExtractionService.CropPageImage:input_type -> examscan.v1.CropPageImageRequest
	40, // 38: examscan.v1.ExtractionService.AttachQuestionImage:input_type -> examscan.v1.AttachQuestionImageRequest
	42, // 39: examscan.v1.ExtractionService.StructureSkippedPages:input_type -> examscan.v1.StructureSkippedPagesRequest
	44, // 40: examscan.v1.ExtractionService.ReextractPages:input_type -> examscan.v1.ReextractPagesRequest
	49, // 41: examscan.v1.ExtractionService.ConfigureTest:input_type -> examscan.v1.ConfigureTestRequest
	46, // 42: examscan.v1.ExtractionService.ImportToModule:input_type -> examscan.v1.ImportToModuleRequest
	51, // 43: examscan.v1.ExtractionService.ImportWithTest:input_type -> examscan.v1.ImportWithTestRequest
	53, // 44: examscan.v1.ExtractionService.ExportReviewSheet:input_type -> examscan.v1.ExportReviewSheetRequest
	7,  // 45: examscan.v1.ExtractionService.UploadPDF:output_type -> examscan.v1.UploadPDFResponse
	9,  // 46: examscan.v1.ExtractionService.GetJob:output_type -> examscan.v1.GetJobResponse
	11, // 47: examscan.v1.ExtractionService.ListJobs:output_type -> examscan.v1.ListJobsResponse
	13, // 48: examscan.v1.ExtractionService.WatchJob:output_type -> examscan.v1.JobStatusUpdate
	15, // 49: examscan.v1.ExtractionService.CancelJob:output_type -> examscan.v1.CancelJobResponse
	17, // 50: examscan.v1.ExtractionService.RetryJob:output_type -> examscan.v1.RetryJobResponse
	20, // 51: examscan.v1.ExtractionService.ListPages:output_type -> examscan.v1.ListPagesResponse
	22, // 52: examscan.v1.ExtractionService.ListQuestions:output_type -> examscan.v1.ListQuestionsResponse
	30, // 53: examscan.v1.ExtractionService.GetPassage:output_type -> examscan.v1.GetPassageResponse
	24, // 54: examscan.v1.ExtractionService.GetQuestion:output_type -> examscan.v1.GetQuestionResponse
	26, // 55: examscan.v1.ExtractionService.UpdateQuestion:output_type -> examscan.v1.UpdateQuestionResponse
	28, // 56: examscan.v1.ExtractionService.BulkReview:output_type -> examscan.v1.BulkReviewResponse
	32, // 57: examscan.v1.ExtractionService.ListPassages:output_type -> examscan.v1.ListPassagesResponse
	34, // 58: examscan.v1.ExtractionService.UpdatePassage:output_type -> examscan.v1.UpdatePassageResponse
	36, // 59: examscan.v1.ExtractionService.GetPageImage:output_type -> examscan.v1.GetPageImageResponse
	39, // 60: examscan.v1.ExtractionService.CropPageImage:output_type -> examscan.v1.CropPageImageResponse
	41, // 61: examscan.v1.ExtractionService.AttachQuestionImage:output_type -> examscan.v1.AttachQuestionImageResponse
	43, // 62: examscan.v1.ExtractionService.StructureSkippedPages:output_type -> examscan.v1.StructureSkippedPagesResponse
	45, // 63: examscan.v1.ExtractionService.ReextractPages:output_type -> examscan.v1.ReextractPagesResponse
	50, // 64: examscan.v1.ExtractionService.ConfigureTest:output_type -> examscan.v1.ConfigureTestResponse
	47, // 65: examscan.v1.ExtractionService.ImportToModule:output_type -> examscan.v1.ImportToModuleResponse
	52, // 66: examscan.v1.ExtractionService.ImportWithTest:output_type -> examscan.v1.ImportWithTestResponse
	54, // 67: examscan.v1.ExtractionService.ExportReviewSheet:output_type -> examscan.v1.ExportReviewSheetResponse
	45, // [45:68] is the sub-list for method output_type
	22, // [22:45] is the sub-list for method input_type
	22, // [22:22] is the sub-list for extension type_name
	22, // [22:22] is the sub-list for extension extendee
	0,  // [0:22] is the sub-list for field type_name
}

func init() { file_examscan_v1_examscan_proto_init() }
func file_examscan_v1_examscan_proto_init() {
	if File_examscan_v1_examscan_proto != nil {
		return
	}
	file_examscan_v1_examscan_proto_msgTypes[25].OneofWrappers = []any{}
	file_examscan_v1_examscan_proto_msgTypes[33].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_examscan_v1_examscan_proto_rawDesc), len(file_examscan_v1_examscan_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   55,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_examscan_v1_examscan_proto_goTypes,
		DependencyIndexes: file_examscan_v1_examscan_proto_depIdxs,
		MessageInfos:      file_examscan_v1_examscan_proto_msgTypes,
	}.Build()
	File_examscan_v1_examscan_proto = out.File
	file_examscan_v1_examscan_proto_goTypes = nil
	file_examscan_v1_examscan_proto_depIdxs = nil
}
