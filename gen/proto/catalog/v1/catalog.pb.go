// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: catalog/v1/catalog.proto

package catalogv1

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

type Document struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename       string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	SourcePath     string                 `protobuf:"bytes,4,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	PageCount      int32                  `protobuf:"varint,5,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,6,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC 3339
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *Document) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type PassConfig struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StartPage     int32                  `protobuf:"varint,1,opt,name=start_page,json=startPage,proto3" json:"start_page,omitempty"` // 0-based, inclusive
	EndPage       int32                  `protobuf:"varint,2,opt,name=end_page,json=endPage,proto3" json:"end_page,omitempty"`       // 0-based, exclusive; 0 means document end
	Dpi           int32                  `protobuf:"varint,3,opt,name=dpi,proto3" json:"dpi,omitempty"`
	MinConfidence float64                `protobuf:"fixed64,4,opt,name=min_confidence,json=minConfidence,proto3" json:"min_confidence,omitempty"`
	ForceOcr      bool                   `protobuf:"varint,5,opt,name=force_ocr,json=forceOcr,proto3" json:"force_ocr,omitempty"`
	Debug         bool                   `protobuf:"varint,6,opt,name=debug,proto3" json:"debug,omitempty"`
	Pages         []int32                `protobuf:"varint,7,rep,packed,name=pages,proto3" json:"pages,omitempty"` // explicit 1-based page list, overrides range
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PassConfig) Reset() {
	*x = PassConfig{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PassConfig) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PassConfig) ProtoMessage() {}

func (x *PassConfig) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PassConfig.ProtoReflect.Descriptor instead.
func (*PassConfig) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{1}
}

func (x *PassConfig) GetStartPage() int32 {
	if x != nil {
		return x.StartPage
	}
	return 0
}

func (x *PassConfig) GetEndPage() int32 {
	if x != nil {
		return x.EndPage
	}
	return 0
}

func (x *PassConfig) GetDpi() int32 {
	if x != nil {
		return x.Dpi
	}
	return 0
}

func (x *PassConfig) GetMinConfidence() float64 {
	if x != nil {
		return x.MinConfidence
	}
	return 0
}

func (x *PassConfig) GetForceOcr() bool {
	if x != nil {
		return x.ForceOcr
	}
	return false
}

func (x *PassConfig) GetDebug() bool {
	if x != nil {
		return x.Debug
	}
	return false
}

func (x *PassConfig) GetPages() []int32 {
	if x != nil {
		return x.Pages
	}
	return nil
}

type ExtractionPass struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId     string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	PassNumber     int32                  `protobuf:"varint,3,opt,name=pass_number,json=passNumber,proto3" json:"pass_number,omitempty"`
	Method         string                 `protobuf:"bytes,4,opt,name=method,proto3" json:"method,omitempty"`
	Config         *PassConfig            `protobuf:"bytes,5,opt,name=config,proto3" json:"config,omitempty"`
	Status         string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"` // QUEUED, PROCESSING, COMPLETED, FAILED
	ItemsExtracted int32                  `protobuf:"varint,7,opt,name=items_extracted,json=itemsExtracted,proto3" json:"items_extracted,omitempty"`
	AvgConfidence  *float64               `protobuf:"fixed64,8,opt,name=avg_confidence,json=avgConfidence,proto3,oneof" json:"avg_confidence,omitempty"`
	ProcessingTime *float64               `protobuf:"fixed64,9,opt,name=processing_time,json=processingTime,proto3,oneof" json:"processing_time,omitempty"` // seconds
	ErrorMessage   *string                `protobuf:"bytes,10,opt,name=error_message,json=errorMessage,proto3,oneof" json:"error_message,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	StartedAt      *string                `protobuf:"bytes,12,opt,name=started_at,json=startedAt,proto3,oneof" json:"started_at,omitempty"`
	FinishedAt     *string                `protobuf:"bytes,13,opt,name=finished_at,json=finishedAt,proto3,oneof" json:"finished_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExtractionPass) Reset() {
	*x = ExtractionPass{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionPass) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionPass) ProtoMessage() {}

func (x *ExtractionPass) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionPass.ProtoReflect.Descriptor instead.
func (*ExtractionPass) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractionPass) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractionPass) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractionPass) GetPassNumber() int32 {
	if x != nil {
		return x.PassNumber
	}
	return 0
}

func (x *ExtractionPass) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *ExtractionPass) GetConfig() *PassConfig {
	if x != nil {
		return x.Config
	}
	return nil
}

func (x *ExtractionPass) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractionPass) GetItemsExtracted() int32 {
	if x != nil {
		return x.ItemsExtracted
	}
	return 0
}

func (x *ExtractionPass) GetAvgConfidence() float64 {
	if x != nil && x.AvgConfidence != nil {
		return *x.AvgConfidence
	}
	return 0
}

func (x *ExtractionPass) GetProcessingTime() float64 {
	if x != nil && x.ProcessingTime != nil {
		return *x.ProcessingTime
	}
	return 0
}

func (x *ExtractionPass) GetErrorMessage() string {
	if x != nil && x.ErrorMessage != nil {
		return *x.ErrorMessage
	}
	return ""
}

func (x *ExtractionPass) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ExtractionPass) GetStartedAt() string {
	if x != nil && x.StartedAt != nil {
		return *x.StartedAt
	}
	return ""
}

func (x *ExtractionPass) GetFinishedAt() string {
	if x != nil && x.FinishedAt != nil {
		return *x.FinishedAt
	}
	return ""
}

type ConsolidatedItem struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId          string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	BrandCode           string                 `protobuf:"bytes,3,opt,name=brand_code,json=brandCode,proto3" json:"brand_code,omitempty"`
	PartNumber          string                 `protobuf:"bytes,4,opt,name=part_number,json=partNumber,proto3" json:"part_number,omitempty"`
	PriceType           string                 `protobuf:"bytes,5,opt,name=price_type,json=priceType,proto3" json:"price_type,omitempty"`
	PriceValue          *float64               `protobuf:"fixed64,6,opt,name=price_value,json=priceValue,proto3,oneof" json:"price_value,omitempty"`
	Currency            string                 `protobuf:"bytes,7,opt,name=currency,proto3" json:"currency,omitempty"`
	Page                int32                  `protobuf:"varint,8,opt,name=page,proto3" json:"page,omitempty"`
	AvgConfidence       float64                `protobuf:"fixed64,9,opt,name=avg_confidence,json=avgConfidence,proto3" json:"avg_confidence,omitempty"`
	SourceCount         int32                  `protobuf:"varint,10,opt,name=source_count,json=sourceCount,proto3" json:"source_count,omitempty"`
	ContributingItemIds []string               `protobuf:"bytes,11,rep,name=contributing_item_ids,json=contributingItemIds,proto3" json:"contributing_item_ids,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *ConsolidatedItem) Reset() {
	*x = ConsolidatedItem{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConsolidatedItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConsolidatedItem) ProtoMessage() {}

func (x *ConsolidatedItem) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConsolidatedItem.ProtoReflect.Descriptor instead.
func (*ConsolidatedItem) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{3}
}

func (x *ConsolidatedItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ConsolidatedItem) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ConsolidatedItem) GetBrandCode() string {
	if x != nil {
		return x.BrandCode
	}
	return ""
}

func (x *ConsolidatedItem) GetPartNumber() string {
	if x != nil {
		return x.PartNumber
	}
	return ""
}

func (x *ConsolidatedItem) GetPriceType() string {
	if x != nil {
		return x.PriceType
	}
	return ""
}

func (x *ConsolidatedItem) GetPriceValue() float64 {
	if x != nil && x.PriceValue != nil {
		return *x.PriceValue
	}
	return 0
}

func (x *ConsolidatedItem) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *ConsolidatedItem) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ConsolidatedItem) GetAvgConfidence() float64 {
	if x != nil {
		return x.AvgConfidence
	}
	return 0
}

func (x *ConsolidatedItem) GetSourceCount() int32 {
	if x != nil {
		return x.SourceCount
	}
	return 0
}

func (x *ConsolidatedItem) GetContributingItemIds() []string {
	if x != nil {
		return x.ContributingItemIds
	}
	return nil
}

type RegisterDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterDocumentRequest) Reset() {
	*x = RegisterDocumentRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDocumentRequest) ProtoMessage() {}

func (x *RegisterDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDocumentRequest.ProtoReflect.Descriptor instead.
func (*RegisterDocumentRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{4}
}

func (x *RegisterDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type RegisterDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Deduplicated  bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterDocumentResponse) Reset() {
	*x = RegisterDocumentResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDocumentResponse) ProtoMessage() {}

func (x *RegisterDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDocumentResponse.ProtoReflect.Descriptor instead.
func (*RegisterDocumentResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{5}
}

func (x *RegisterDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *RegisterDocumentResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Passes        []*ExtractionPass      `protobuf:"bytes,2,rep,name=passes,proto3" json:"passes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{7}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetPasses() []*ExtractionPass {
	if x != nil {
		return x.Passes
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{8}
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{9}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{11}
}

type CreatePassRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Method        string                 `protobuf:"bytes,2,opt,name=method,proto3" json:"method,omitempty"`
	Config        *PassConfig            `protobuf:"bytes,3,opt,name=config,proto3" json:"config,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePassRequest) Reset() {
	*x = CreatePassRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePassRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePassRequest) ProtoMessage() {}

func (x *CreatePassRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePassRequest.ProtoReflect.Descriptor instead.
func (*CreatePassRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{12}
}

func (x *CreatePassRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *CreatePassRequest) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *CreatePassRequest) GetConfig() *PassConfig {
	if x != nil {
		return x.Config
	}
	return nil
}

type CreatePassResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pass          *ExtractionPass        `protobuf:"bytes,1,opt,name=pass,proto3" json:"pass,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePassResponse) Reset() {
	*x = CreatePassResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePassResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePassResponse) ProtoMessage() {}

func (x *CreatePassResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePassResponse.ProtoReflect.Descriptor instead.
func (*CreatePassResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{13}
}

func (x *CreatePassResponse) GetPass() *ExtractionPass {
	if x != nil {
		return x.Pass
	}
	return nil
}

type AutoMultiPassRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Config        *PassConfig            `protobuf:"bytes,2,opt,name=config,proto3" json:"config,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AutoMultiPassRequest) Reset() {
	*x = AutoMultiPassRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AutoMultiPassRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AutoMultiPassRequest) ProtoMessage() {}

func (x *AutoMultiPassRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AutoMultiPassRequest.ProtoReflect.Descriptor instead.
func (*AutoMultiPassRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{14}
}

func (x *AutoMultiPassRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *AutoMultiPassRequest) GetConfig() *PassConfig {
	if x != nil {
		return x.Config
	}
	return nil
}

type AutoMultiPassResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Passes        []*ExtractionPass      `protobuf:"bytes,1,rep,name=passes,proto3" json:"passes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AutoMultiPassResponse) Reset() {
	*x = AutoMultiPassResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AutoMultiPassResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AutoMultiPassResponse) ProtoMessage() {}

func (x *AutoMultiPassResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AutoMultiPassResponse.ProtoReflect.Descriptor instead.
func (*AutoMultiPassResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{15}
}

func (x *AutoMultiPassResponse) GetPasses() []*ExtractionPass {
	if x != nil {
		return x.Passes
	}
	return nil
}

type GetPassRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PassId        string                 `protobuf:"bytes,1,opt,name=pass_id,json=passId,proto3" json:"pass_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPassRequest) Reset() {
	*x = GetPassRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPassRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPassRequest) ProtoMessage() {}

func (x *GetPassRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPassRequest.ProtoReflect.Descriptor instead.
func (*GetPassRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{16}
}

func (x *GetPassRequest) GetPassId() string {
	if x != nil {
		return x.PassId
	}
	return ""
}

type GetPassResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pass          *ExtractionPass        `protobuf:"bytes,1,opt,name=pass,proto3" json:"pass,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPassResponse) Reset() {
	*x = GetPassResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPassResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPassResponse) ProtoMessage() {}

func (x *GetPassResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPassResponse.ProtoReflect.Descriptor instead.
func (*GetPassResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{17}
}

func (x *GetPassResponse) GetPass() *ExtractionPass {
	if x != nil {
		return x.Pass
	}
	return nil
}

type ListPassesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPassesRequest) Reset() {
	*x = ListPassesRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPassesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPassesRequest) ProtoMessage() {}

func (x *ListPassesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPassesRequest.ProtoReflect.Descriptor instead.
func (*ListPassesRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{18}
}

func (x *ListPassesRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ListPassesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Passes        []*ExtractionPass      `protobuf:"bytes,1,rep,name=passes,proto3" json:"passes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPassesResponse) Reset() {
	*x = ListPassesResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPassesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPassesResponse) ProtoMessage() {}

func (x *ListPassesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPassesResponse.ProtoReflect.Descriptor instead.
func (*ListPassesResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{19}
}

func (x *ListPassesResponse) GetPasses() []*ExtractionPass {
	if x != nil {
		return x.Passes
	}
	return nil
}

type GetPassStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PassId        string                 `protobuf:"bytes,1,opt,name=pass_id,json=passId,proto3" json:"pass_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPassStatsRequest) Reset() {
	*x = GetPassStatsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPassStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPassStatsRequest) ProtoMessage() {}

func (x *GetPassStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPassStatsRequest.ProtoReflect.Descriptor instead.
func (*GetPassStatsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{20}
}

func (x *GetPassStatsRequest) GetPassId() string {
	if x != nil {
		return x.PassId
	}
	return ""
}

type GetPassStatsResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TotalItems     int32                  `protobuf:"varint,1,opt,name=total_items,json=totalItems,proto3" json:"total_items,omitempty"`
	AvgConfidence  float64                `protobuf:"fixed64,2,opt,name=avg_confidence,json=avgConfidence,proto3" json:"avg_confidence,omitempty"`
	PagesWithItems int32                  `protobuf:"varint,3,opt,name=pages_with_items,json=pagesWithItems,proto3" json:"pages_with_items,omitempty"`
	ItemsPerPage   float64                `protobuf:"fixed64,4,opt,name=items_per_page,json=itemsPerPage,proto3" json:"items_per_page,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetPassStatsResponse) Reset() {
	*x = GetPassStatsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPassStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPassStatsResponse) ProtoMessage() {}

func (x *GetPassStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPassStatsResponse.ProtoReflect.Descriptor instead.
func (*GetPassStatsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{21}
}

func (x *GetPassStatsResponse) GetTotalItems() int32 {
	if x != nil {
		return x.TotalItems
	}
	return 0
}

func (x *GetPassStatsResponse) GetAvgConfidence() float64 {
	if x != nil {
		return x.AvgConfidence
	}
	return 0
}

func (x *GetPassStatsResponse) GetPagesWithItems() int32 {
	if x != nil {
		return x.PagesWithItems
	}
	return 0
}

func (x *GetPassStatsResponse) GetItemsPerPage() float64 {
	if x != nil {
		return x.ItemsPerPage
	}
	return 0
}

type GetDocumentStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentStatsRequest) Reset() {
	*x = GetDocumentStatsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentStatsRequest) ProtoMessage() {}

func (x *GetDocumentStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentStatsRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentStatsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{22}
}

func (x *GetDocumentStatsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentStatsResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	PassCount          int32                  `protobuf:"varint,1,opt,name=pass_count,json=passCount,proto3" json:"pass_count,omitempty"`
	CompletedPasses    int32                  `protobuf:"varint,2,opt,name=completed_passes,json=completedPasses,proto3" json:"completed_passes,omitempty"`
	ConsolidatedItems  int32                  `protobuf:"varint,3,opt,name=consolidated_items,json=consolidatedItems,proto3" json:"consolidated_items,omitempty"`
	LowConfidencePages []int32                `protobuf:"varint,4,rep,packed,name=low_confidence_pages,json=lowConfidencePages,proto3" json:"low_confidence_pages,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GetDocumentStatsResponse) Reset() {
	*x = GetDocumentStatsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentStatsResponse) ProtoMessage() {}

func (x *GetDocumentStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentStatsResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentStatsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{23}
}

func (x *GetDocumentStatsResponse) GetPassCount() int32 {
	if x != nil {
		return x.PassCount
	}
	return 0
}

func (x *GetDocumentStatsResponse) GetCompletedPasses() int32 {
	if x != nil {
		return x.CompletedPasses
	}
	return 0
}

func (x *GetDocumentStatsResponse) GetConsolidatedItems() int32 {
	if x != nil {
		return x.ConsolidatedItems
	}
	return 0
}

func (x *GetDocumentStatsResponse) GetLowConfidencePages() []int32 {
	if x != nil {
		return x.LowConfidencePages
	}
	return nil
}

type ListConsolidatedItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListConsolidatedItemsRequest) Reset() {
	*x = ListConsolidatedItemsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListConsolidatedItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListConsolidatedItemsRequest) ProtoMessage() {}

func (x *ListConsolidatedItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListConsolidatedItemsRequest.ProtoReflect.Descriptor instead.
func (*ListConsolidatedItemsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{24}
}

func (x *ListConsolidatedItemsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ListConsolidatedItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*ConsolidatedItem    `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListConsolidatedItemsResponse) Reset() {
	*x = ListConsolidatedItemsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListConsolidatedItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListConsolidatedItemsResponse) ProtoMessage() {}

func (x *ListConsolidatedItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListConsolidatedItemsResponse.ProtoReflect.Descriptor instead.
func (*ListConsolidatedItemsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{25}
}

func (x *ListConsolidatedItemsResponse) GetItems() []*ConsolidatedItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ExportConsolidatedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"` // "csv" (default) or "xlsx"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportConsolidatedRequest) Reset() {
	*x = ExportConsolidatedRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportConsolidatedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportConsolidatedRequest) ProtoMessage() {}

func (x *ExportConsolidatedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportConsolidatedRequest.ProtoReflect.Descriptor instead.
func (*ExportConsolidatedRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{26}
}

func (x *ExportConsolidatedRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExportConsolidatedRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type ExportConsolidatedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          []byte                 `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Rows          int32                  `protobuf:"varint,2,opt,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportConsolidatedResponse) Reset() {
	*x = ExportConsolidatedResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportConsolidatedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportConsolidatedResponse) ProtoMessage() {}

func (x *ExportConsolidatedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportConsolidatedResponse.ProtoReflect.Descriptor instead.
func (*ExportConsolidatedResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{27}
}

func (x *ExportConsolidatedResponse) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *ExportConsolidatedResponse) GetRows() int32 {
	if x != nil {
		return x.Rows
	}
	return 0
}

var File_catalog_v1_catalog_proto protoreflect.FileDescriptor

const file_catalog_v1_catalog_proto_rawDesc = "" +
	"\n" +
	"\x18catalog/v1/catalog.proto\x12\n" +
	"catalog.v1\"\xc1\x01\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x1f\n" +
	"\vsource_path\x18\x04 \x01(\tR\n" +
	"sourcePath\x12\x1d\n" +
	"\n" +
	"page_count\x18\x05 \x01(\x05R\tpageCount\x12\x1f\n" +
	"\vuploaded_at\x18\x06 \x01(\tR\n" +
	"uploadedAt\"\xc8\x01\n" +
	"\n" +
	"PassConfig\x12\x1d\n" +
	"\n" +
	"start_page\x18\x01 \x01(\x05R\tstartPage\x12\x19\n" +
	"\bend_page\x18\x02 \x01(\x05R\aendPage\x12\x10\n" +
	"\x03dpi\x18\x03 \x01(\x05R\x03dpi\x12%\n" +
	"\x0emin_confidence\x18\x04 \x01(\x01R\rminConfidence\x12\x1b\n" +
	"\tforce_ocr\x18\x05 \x01(\bR\bforceOcr\x12\x14\n" +
	"\x05debug\x18\x06 \x01(\bR\x05debug\x12\x14\n" +
	"\x05pages\x18\a \x03(\x05R\x05pages\"\xb0\x04\n" +
	"\x0eExtractionPass\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vpass_number\x18\x03 \x01(\x05R\n" +
	"passNumber\x12\x16\n" +
	"\x06method\x18\x04 \x01(\tR\x06method\x12.\n" +
	"\x06config\x18\x05 \x01(\v2\x16.catalog.v1.PassConfigR\x06config\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12'\n" +
	"\x0fitems_extracted\x18\a \x01(\x05R\x0eitemsExtracted\x12*\n" +
	"\x0eavg_confidence\x18\b \x01(\x01H\x00R\ravgConfidence\x88\x01\x01\x12,\n" +
	"\x0fprocessing_time\x18\t \x01(\x01H\x01R\x0eprocessingTime\x88\x01\x01\x12(\n" +
	"\rerror_message\x18\n" +
	" \x01(\tH\x02R\ferrorMessage\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\"\n" +
	"\n" +
	"started_at\x18\f \x01(\tH\x03R\tstartedAt\x88\x01\x01\x12$\n" +
	"\vfinished_at\x18\r \x01(\tH\x04R\n" +
	"finishedAt\x88\x01\x01B\x11\n" +
	"\x0f_avg_confidenceB\x12\n" +
	"\x10_processing_timeB\x10\n" +
	"\x0e_error_messageB\r\n" +
	"\v_started_atB\x0e\n" +
	"\f_finished_at\"\x86\x03\n" +
	"\x10ConsolidatedItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"brand_code\x18\x03 \x01(\tR\tbrandCode\x12\x1f\n" +
	"\vpart_number\x18\x04 \x01(\tR\n" +
	"partNumber\x12\x1d\n" +
	"\n" +
	"price_type\x18\x05 \x01(\tR\tpriceType\x12$\n" +
	"\vprice_value\x18\x06 \x01(\x01H\x00R\n" +
	"priceValue\x88\x01\x01\x12\x1a\n" +
	"\bcurrency\x18\a \x01(\tR\bcurrency\x12\x12\n" +
	"\x04page\x18\b \x01(\x05R\x04page\x12%\n" +
	"\x0eavg_confidence\x18\t \x01(\x01R\ravgConfidence\x12!\n" +
	"\fsource_count\x18\n" +
	" \x01(\x05R\vsourceCount\x122\n" +
	"\x15contributing_item_ids\x18\v \x03(\tR\x13contributingItemIdsB\x0e\n" +
	"\f_price_value\"-\n" +
	"\x17RegisterDocumentRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"p\n" +
	"\x18RegisterDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.catalog.v1.DocumentR\bdocument\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"{\n" +
	"\x13GetDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.catalog.v1.DocumentR\bdocument\x122\n" +
	"\x06passes\x18\x02 \x03(\v2\x1a.catalog.v1.ExtractionPassR\x06passes\"\x16\n" +
	"\x14ListDocumentsRequest\"K\n" +
	"\x15ListDocumentsResponse\x122\n" +
	"\tdocuments\x18\x01 \x03(\v2\x14.catalog.v1.DocumentR\tdocuments\"8\n" +
	"\x15DeleteDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x18\n" +
	"\x16DeleteDocumentResponse\"|\n" +
	"\x11CreatePassRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06method\x18\x02 \x01(\tR\x06method\x12.\n" +
	"\x06config\x18\x03 \x01(\v2\x16.catalog.v1.PassConfigR\x06config\"D\n" +
	"\x12CreatePassResponse\x12.\n" +
	"\x04pass\x18\x01 \x01(\v2\x1a.catalog.v1.ExtractionPassR\x04pass\"g\n" +
	"\x14AutoMultiPassRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12.\n" +
	"\x06config\x18\x02 \x01(\v2\x16.catalog.v1.PassConfigR\x06config\"K\n" +
	"\x15AutoMultiPassResponse\x122\n" +
	"\x06passes\x18\x01 \x03(\v2\x1a.catalog.v1.ExtractionPassR\x06passes\")\n" +
	"\x0eGetPassRequest\x12\x17\n" +
	"\apass_id\x18\x01 \x01(\tR\x06passId\"A\n" +
	"\x0fGetPassResponse\x12.\n" +
	"\x04pass\x18\x01 \x01(\v2\x1a.catalog.v1.ExtractionPassR\x04pass\"4\n" +
	"\x11ListPassesRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"H\n" +
	"\x12ListPassesResponse\x122\n" +
	"\x06passes\x18\x01 \x03(\v2\x1a.catalog.v1.ExtractionPassR\x06passes\".\n" +
	"\x13GetPassStatsRequest\x12\x17\n" +
	"\apass_id\x18\x01 \x01(\tR\x06passId\"\xae\x01\n" +
	"\x14GetPassStatsResponse\x12\x1f\n" +
	"\vtotal_items\x18\x01 \x01(\x05R\n" +
	"totalItems\x12%\n" +
	"\x0eavg_confidence\x18\x02 \x01(\x01R\ravgConfidence\x12(\n" +
	"\x10pages_with_items\x18\x03 \x01(\x05R\x0epagesWithItems\x12$\n" +
	"\x0eitems_per_page\x18\x04 \x01(\x01R\fitemsPerPage\":\n" +
	"\x17GetDocumentStatsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xc5\x01\n" +
	"\x18GetDocumentStatsResponse\x12\x1d\n" +
	"\n" +
	"pass_count\x18\x01 \x01(\x05R\tpassCount\x12)\n" +
	"\x10completed_passes\x18\x02 \x01(\x05R\x0fcompletedPasses\x12-\n" +
	"\x12consolidated_items\x18\x03 \x01(\x05R\x11consolidatedItems\x120\n" +
	"\x14low_confidence_pages\x18\x04 \x03(\x05R\x12lowConfidencePages\"?\n" +
	"\x1cListConsolidatedItemsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"S\n" +
	"\x1dListConsolidatedItemsResponse\x122\n" +
	"\x05items\x18\x01 \x03(\v2\x1c.catalog.v1.ConsolidatedItemR\x05items\"T\n" +
	"\x19ExportConsolidatedRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\"D\n" +
	"\x1aExportConsolidatedResponse\x12\x12\n" +
	"\x04data\x18\x01 \x01(\fR\x04data\x12\x12\n" +
	"\x04rows\x18\x02 \x01(\x05R\x04rows2\xa7\b\n" +
	"\x0eCatalogService\x12]\n" +
	"\x10RegisterDocument\x12#.catalog.v1.RegisterDocumentRequest\x1a$.catalog.v1.RegisterDocumentResponse\x12N\n" +
	"\vGetDocument\x12\x1e.catalog.v1.GetDocumentRequest\x1a\x1f.catalog.v1.GetDocumentResponse\x12T\n" +
	"\rListDocuments\x12 .catalog.v1.ListDocumentsRequest\x1a!.catalog.v1.ListDocumentsResponse\x12W\n" +
	"\x0eDeleteDocument\x12!.catalog.v1.DeleteDocumentRequest\x1a\".catalog.v1.DeleteDocumentResponse\x12K\n" +
	"\n" +
	"CreatePass\x12\x1d.catalog.v1.CreatePassRequest\x1a\x1e.catalog.v1.CreatePassResponse\x12T\n" +
	"\rAutoMultiPass\x12 .catalog.v1.AutoMultiPassRequest\x1a!.catalog.v1.AutoMultiPassResponse\x12B\n" +
	"\aGetPass\x12\x1a.catalog.v1.GetPassRequest\x1a\x1b.catalog.v1.GetPassResponse\x12K\n" +
	"\n" +
	"ListPasses\x12\x1d.catalog.v1.ListPassesRequest\x1a\x1e.catalog.v1.ListPassesResponse\x12Q\n" +
	"\fGetPassStats\x12\x1f.catalog.v1.GetPassStatsRequest\x1a .catalog.v1.GetPassStatsResponse\x12]\n" +
	"\x10GetDocumentStats\x12#.catalog.v1.GetDocumentStatsRequest\x1a$.catalog.v1.GetDocumentStatsResponse\x12l\n" +
	"\x15ListConsolidatedItems\x12(.catalog.v1.ListConsolidatedItemsRequest\x1a).catalog.v1.ListConsolidatedItemsResponse\x12c\n" +
	"\x12ExportConsolidated\x12%.catalog.v1.ExportConsolidatedRequest\x1a&.catalog.v1.ExportConsolidatedResponseB@Z>github.com/catalogkit/extractor/gen/proto/catalog/v1;catalogv1b\x06proto3"

var (
	file_catalog_v1_catalog_proto_rawDescOnce sync.Once
	file_catalog_v1_catalog_proto_rawDescData []byte
)

func file_catalog_v1_catalog_proto_rawDescGZIP() []byte {
	file_catalog_v1_catalog_proto_rawDescOnce.Do(func() {
		file_catalog_v1_catalog_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_catalog_v1_catalog_proto_rawDesc), len(file_catalog_v1_catalog_proto_rawDesc)))
	})
	return file_catalog_v1_catalog_proto_rawDescData
}

var file_catalog_v1_catalog_proto_msgTypes = make([]protoimpl.MessageInfo, 28)
var file_catalog_v1_catalog_proto_goTypes = []any{
	(*Document)(nil),                      // 0: catalog.v1.Document
	(*PassConfig)(nil),                    // 1: catalog.v1.PassConfig
	(*ExtractionPass)(nil),                // 2: catalog.v1.ExtractionPass
	(*ConsolidatedItem)(nil),              // 3: catalog.v1.ConsolidatedItem
	(*RegisterDocumentRequest)(nil),       // 4: catalog.v1.RegisterDocumentRequest
	(*RegisterDocumentResponse)(nil),      // 5: catalog.v1.RegisterDocumentResponse
	(*GetDocumentRequest)(nil),            // 6: catalog.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),           // 7: catalog.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),          // 8: catalog.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),         // 9: catalog.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),         // 10: catalog.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),        // 11: catalog.v1.DeleteDocumentResponse
	(*CreatePassRequest)(nil),             // 12: catalog.v1.CreatePassRequest
	(*CreatePassResponse)(nil),            // 13: catalog.v1.CreatePassResponse
	(*AutoMultiPassRequest)(nil),          // 14: catalog.v1.AutoMultiPassRequest
	(*AutoMultiPassResponse)(nil),         // 15: catalog.v1.AutoMultiPassResponse
	(*GetPassRequest)(nil),                // 16: catalog.v1.GetPassRequest
	(*GetPassResponse)(nil),               // 17: catalog.v1.GetPassResponse
	(*ListPassesRequest)(nil),             // 18: catalog.v1.ListPassesRequest
	(*ListPassesResponse)(nil),            // 19: catalog.v1.ListPassesResponse
	(*GetPassStatsRequest)(nil),           // 20: catalog.v1.GetPassStatsRequest
	(*GetPassStatsResponse)(nil),          // 21: catalog.v1.GetPassStatsResponse
	(*GetDocumentStatsRequest)(nil),       // 22: catalog.v1.GetDocumentStatsRequest
	(*GetDocumentStatsResponse)(nil),      // 23: catalog.v1.GetDocumentStatsResponse
	(*ListConsolidatedItemsRequest)(nil),  // 24: catalog.v1.ListConsolidatedItemsRequest
	(*ListConsolidatedItemsResponse)(nil), // 25: catalog.v1.ListConsolidatedItemsResponse
	(*ExportConsolidatedRequest)(nil),     // 26: catalog.v1.ExportConsolidatedRequest
	(*ExportConsolidatedResponse)(nil),    // 27: catalog.v1.ExportConsolidatedResponse
}
var file_catalog_v1_catalog_proto_depIdxs = []int32{
	1,  // 0: catalog.v1.ExtractionPass.config:type_name -> catalog.v1.PassConfig
	0,  // 1: catalog.v1.RegisterDocumentResponse.document:type_name -> catalog.v1.Document
	0,  // 2: catalog.v1.GetDocumentResponse.document:type_name -> catalog.v1.Document
	2,  // 3: catalog.v1.GetDocumentResponse.passes:type_name -> catalog.v1.ExtractionPass
	0,  // 4: catalog.v1.ListDocumentsResponse.documents:type_name -> catalog.v1.Document
	1,  // 5: catalog.v1.CreatePassRequest.config:type_name -> catalog.v1.PassConfig
	2,  // 6: catalog.v1.CreatePassResponse.pass:type_name -> catalog.v1.ExtractionPass
	1,  // 7: catalog.v1.AutoMultiPassRequest.config:type_name -> catalog.v1.PassConfig
	2,  // 8: catalog.v1.AutoMultiPassResponse.passes:type_name -> catalog.v1.ExtractionPass
	2,  // 9: catalog.v1.GetPassResponse.pass:type_name -> catalog.v1.ExtractionPass
	2,  // 10: catalog.v1.ListPassesResponse.passes:type_name -> catalog.v1.ExtractionPass
	3,  // 11: catalog.v1.ListConsolidatedItemsResponse.items:type_name -> catalog.v1.ConsolidatedItem
	4,  // 12: catalog.v1.CatalogService.RegisterDocument:input_type -> catalog.v1.RegisterDocumentRequest
	6,  // 13: catalog.v1.CatalogService.GetDocument:input_type -> catalog.v1.GetDocumentRequest
	8,  // 14: catalog.v1.CatalogService.ListDocuments:input_type -> catalog.v1.ListDocumentsRequest
	10, // 15: catalog.v1.CatalogService.DeleteDocument:input_type -> catalog.v1.DeleteDocumentRequest
	12, // 16: catalog.v1.CatalogService.CreatePass:input_type -> catalog.v1.CreatePassRequest
	14, // 17: catalog.v1.CatalogService.AutoMultiPass:input_type -> catalog.v1.AutoMultiPassRequest
	16, // 18: catalog.v1.CatalogService.GetPass:input_type -> catalog.v1.GetPassRequest
	18, // 19: catalog.v1.CatalogService.ListPasses:input_type -> catalog.v1.ListPassesRequest
	20, // 20: catalog.v1.CatalogService.GetPassStats:input_type -> catalog.v1.GetPassStatsRequest
	22, // 21: catalog.v1.CatalogService.GetDocumentStats:input_type -> catalog.v1.GetDocumentStatsRequest
	24, // 22: catalog.v1.CatalogService.ListConsolidatedItems:input_type -> catalog.v1.ListConsolidatedItemsRequest
	26, // 23: catalog.v1.CatalogService.ExportConsolidated:input_type -> catalog.v1.ExportConsolidatedRequest
	5,  // 24: catalog.v1.CatalogService.RegisterDocument:output_type -> catalog.v1.RegisterDocumentResponse
	7,  // 25: catalog.v1.CatalogService.GetDocument:output_type -> catalog.v1.GetDocumentResponse
	9,  // 26: catalog.v1.CatalogService.ListDocuments:output_type -> catalog.v1.ListDocumentsResponse
	11, // 27: catalog.v1.CatalogService.DeleteDocument:output_type -> catalog.v1.DeleteDocumentResponse
	13, // 28: catalog.v1.CatalogService.CreatePass:output_type -> catalog.v1.CreatePassResponse
	15, // 29: catalog.v1.CatalogService.AutoMultiPass:output_type -> catalog.v1.AutoMultiPassResponse
	17, // 30: catalog.v1.CatalogService.GetPass:output_type -> catalog.v1.GetPassResponse
	19, // 31: catalog.v1.CatalogService.ListPasses:output_type -> catalog.v1.ListPassesResponse
	21, // 32: catalog.v1.CatalogService.GetPassStats:output_type -> catalog.v1.GetPassStatsResponse
	23, // 33: catalog.v1.CatalogService.GetDocumentStats:output_type -> catalog.v1.GetDocumentStatsResponse
	25, // 34: catalog.v1.CatalogService.ListConsolidatedItems:output_type -> catalog.v1.ListConsolidatedItemsResponse
	27, // 35: catalog.v1.CatalogService.ExportConsolidated:output_type -> catalog.v1.ExportConsolidatedResponse
	24, // [24:36] is the sub-list for method output_type
	12, // [12:24] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_catalog_v1_catalog_proto_init() }
func file_catalog_v1_catalog_proto_init() {
	if File_catalog_v1_catalog_proto != nil {
		return
	}
	file_catalog_v1_catalog_proto_msgTypes[2].OneofWrappers = []any{}
	file_catalog_v1_catalog_proto_msgTypes[3].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_catalog_v1_catalog_proto_rawDesc), len(file_catalog_v1_catalog_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   28,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_catalog_v1_catalog_proto_goTypes,
		DependencyIndexes: file_catalog_v1_catalog_proto_depIdxs,
		MessageInfos:      file_catalog_v1_catalog_proto_msgTypes,
	}.Build()
	File_catalog_v1_catalog_proto = out.File
	file_catalog_v1_catalog_proto_goTypes = nil
	file_catalog_v1_catalog_proto_depIdxs = nil
}
