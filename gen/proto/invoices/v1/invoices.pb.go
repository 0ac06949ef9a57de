// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.7
// 	protoc        (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

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

type RecordTable int32

const (
	RecordTable_RECORD_TABLE_UNSPECIFIED RecordTable = 0
	RecordTable_RECORD_TABLE_PURCHASES   RecordTable = 1
	RecordTable_RECORD_TABLE_SALES       RecordTable = 2
)

// Enum value maps for RecordTable.
var (
	RecordTable_name = map[int32]string{
		0: "RECORD_TABLE_UNSPECIFIED",
		1: "RECORD_TABLE_PURCHASES",
		2: "RECORD_TABLE_SALES",
	}
	RecordTable_value = map[string]int32{
		"RECORD_TABLE_UNSPECIFIED": 0,
		"RECORD_TABLE_PURCHASES":   1,
		"RECORD_TABLE_SALES":       2,
	}
)

func (x RecordTable) Enum() *RecordTable {
	p := new(RecordTable)
	*p = x
	return p
}

func (x RecordTable) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (RecordTable) Descriptor() protoreflect.EnumDescriptor {
	return file_invoices_v1_invoices_proto_enumTypes[0].Descriptor()
}

func (RecordTable) Type() protoreflect.EnumType {
	return &file_invoices_v1_invoices_proto_enumTypes[0]
}

func (x RecordTable) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use RecordTable.Descriptor instead.
func (RecordTable) EnumDescriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{0}
}

type IngestFileRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Path  string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	// Queue extraction after registering. Deduplicated files are only queued
	// when force is also set.
	Process       bool `protobuf:"varint,2,opt,name=process,proto3" json:"process,omitempty"`
	Force         bool `protobuf:"varint,3,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{0}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *IngestFileRequest) GetProcess() bool {
	if x != nil {
		return x.Process
	}
	return false
}

func (x *IngestFileRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	Queued         bool                   `protobuf:"varint,8,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{1}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *IngestResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	IncludeHidden bool                   `protobuf:"varint,2,opt,name=include_hidden,json=includeHidden,proto3" json:"include_hidden,omitempty"`
	Process       bool                   `protobuf:"varint,3,opt,name=process,proto3" json:"process,omitempty"`
	Force         bool                   `protobuf:"varint,4,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{2}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetIncludeHidden() bool {
	if x != nil {
		return x.IncludeHidden
	}
	return false
}

func (x *IngestDirectoryRequest) GetProcess() bool {
	if x != nil {
		return x.Process
	}
	return false
}

func (x *IngestDirectoryRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{3}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type PurchaseRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Vendor        string                 `protobuf:"bytes,2,opt,name=vendor,proto3" json:"vendor,omitempty"`
	TxDate        string                 `protobuf:"bytes,3,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"`
	ItemName      string                 `protobuf:"bytes,4,opt,name=item_name,json=itemName,proto3" json:"item_name,omitempty"`
	Quantity      float64                `protobuf:"fixed64,5,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Unit          string                 `protobuf:"bytes,6,opt,name=unit,proto3" json:"unit,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,7,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	Amount        float64                `protobuf:"fixed64,8,opt,name=amount,proto3" json:"amount,omitempty"`
	Category      string                 `protobuf:"bytes,9,opt,name=category,proto3" json:"category,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PurchaseRecord) Reset() {
	*x = PurchaseRecord{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PurchaseRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PurchaseRecord) ProtoMessage() {}

func (x *PurchaseRecord) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PurchaseRecord.ProtoReflect.Descriptor instead.
func (*PurchaseRecord) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{4}
}

func (x *PurchaseRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PurchaseRecord) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *PurchaseRecord) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *PurchaseRecord) GetItemName() string {
	if x != nil {
		return x.ItemName
	}
	return ""
}

func (x *PurchaseRecord) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *PurchaseRecord) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *PurchaseRecord) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *PurchaseRecord) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *PurchaseRecord) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *PurchaseRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *PurchaseRecord) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type SalesRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SaleDate      string                 `protobuf:"bytes,2,opt,name=sale_date,json=saleDate,proto3" json:"sale_date,omitempty"`
	Code          string                 `protobuf:"bytes,3,opt,name=code,proto3" json:"code,omitempty"`
	ItemName      string                 `protobuf:"bytes,4,opt,name=item_name,json=itemName,proto3" json:"item_name,omitempty"`
	Category      string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	Quantity      float64                `protobuf:"fixed64,6,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Price         float64                `protobuf:"fixed64,7,opt,name=price,proto3" json:"price,omitempty"`
	NetTotal      float64                `protobuf:"fixed64,8,opt,name=net_total,json=netTotal,proto3" json:"net_total,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SalesRecord) Reset() {
	*x = SalesRecord{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SalesRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SalesRecord) ProtoMessage() {}

func (x *SalesRecord) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SalesRecord.ProtoReflect.Descriptor instead.
func (*SalesRecord) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{5}
}

func (x *SalesRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SalesRecord) GetSaleDate() string {
	if x != nil {
		return x.SaleDate
	}
	return ""
}

func (x *SalesRecord) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *SalesRecord) GetItemName() string {
	if x != nil {
		return x.ItemName
	}
	return ""
}

func (x *SalesRecord) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *SalesRecord) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *SalesRecord) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *SalesRecord) GetNetTotal() float64 {
	if x != nil {
		return x.NetTotal
	}
	return 0
}

func (x *SalesRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	Vendor        string                 `protobuf:"bytes,3,opt,name=vendor,proto3" json:"vendor,omitempty"`                     // case-insensitive substring, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecordsRequest) Reset() {
	*x = ListRecordsRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecordsRequest) ProtoMessage() {}

func (x *ListRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListRecordsRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{6}
}

func (x *ListRecordsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListRecordsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListRecordsRequest) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

type ListRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*PurchaseRecord      `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecordsResponse) Reset() {
	*x = ListRecordsResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecordsResponse) ProtoMessage() {}

func (x *ListRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListRecordsResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{7}
}

func (x *ListRecordsResponse) GetRecords() []*PurchaseRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type ListSalesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	Item          string                 `protobuf:"bytes,3,opt,name=item,proto3" json:"item,omitempty"` // case-insensitive substring, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSalesRequest) Reset() {
	*x = ListSalesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSalesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSalesRequest) ProtoMessage() {}

func (x *ListSalesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSalesRequest.ProtoReflect.Descriptor instead.
func (*ListSalesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{8}
}

func (x *ListSalesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListSalesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListSalesRequest) GetItem() string {
	if x != nil {
		return x.Item
	}
	return ""
}

type ListSalesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*SalesRecord         `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSalesResponse) Reset() {
	*x = ListSalesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSalesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSalesResponse) ProtoMessage() {}

func (x *ListSalesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSalesResponse.ProtoReflect.Descriptor instead.
func (*ListSalesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{9}
}

func (x *ListSalesResponse) GetRecords() []*SalesRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type GetSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSummaryRequest) Reset() {
	*x = GetSummaryRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummaryRequest) ProtoMessage() {}

func (x *GetSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetSummaryRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{10}
}

type TableSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rows          uint32                 `protobuf:"varint,1,opt,name=rows,proto3" json:"rows,omitempty"`
	MinDate       string                 `protobuf:"bytes,2,opt,name=min_date,json=minDate,proto3" json:"min_date,omitempty"`
	MaxDate       string                 `protobuf:"bytes,3,opt,name=max_date,json=maxDate,proto3" json:"max_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TableSummary) Reset() {
	*x = TableSummary{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TableSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TableSummary) ProtoMessage() {}

func (x *TableSummary) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TableSummary.ProtoReflect.Descriptor instead.
func (*TableSummary) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{11}
}

func (x *TableSummary) GetRows() uint32 {
	if x != nil {
		return x.Rows
	}
	return 0
}

func (x *TableSummary) GetMinDate() string {
	if x != nil {
		return x.MinDate
	}
	return ""
}

func (x *TableSummary) GetMaxDate() string {
	if x != nil {
		return x.MaxDate
	}
	return ""
}

type GetSummaryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Purchases     *TableSummary          `protobuf:"bytes,1,opt,name=purchases,proto3" json:"purchases,omitempty"`
	Sales         *TableSummary          `protobuf:"bytes,2,opt,name=sales,proto3" json:"sales,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSummaryResponse) Reset() {
	*x = GetSummaryResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummaryResponse) ProtoMessage() {}

func (x *GetSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetSummaryResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{12}
}

func (x *GetSummaryResponse) GetPurchases() *TableSummary {
	if x != nil {
		return x.Purchases
	}
	return nil
}

func (x *GetSummaryResponse) GetSales() *TableSummary {
	if x != nil {
		return x.Sales
	}
	return nil
}

type DeleteByDateRangeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Table         RecordTable            `protobuf:"varint,1,opt,name=table,proto3,enum=invoices.v1.RecordTable" json:"table,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // required
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // required
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteByDateRangeRequest) Reset() {
	*x = DeleteByDateRangeRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteByDateRangeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteByDateRangeRequest) ProtoMessage() {}

func (x *DeleteByDateRangeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteByDateRangeRequest.ProtoReflect.Descriptor instead.
func (*DeleteByDateRangeRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{13}
}

func (x *DeleteByDateRangeRequest) GetTable() RecordTable {
	if x != nil {
		return x.Table
	}
	return RecordTable_RECORD_TABLE_UNSPECIFIED
}

func (x *DeleteByDateRangeRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *DeleteByDateRangeRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type DeleteByDateRangeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       uint32                 `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteByDateRangeResponse) Reset() {
	*x = DeleteByDateRangeResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteByDateRangeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteByDateRangeResponse) ProtoMessage() {}

func (x *DeleteByDateRangeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteByDateRangeResponse.ProtoReflect.Descriptor instead.
func (*DeleteByDateRangeResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{14}
}

func (x *DeleteByDateRangeResponse) GetDeleted() uint32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

type ExportReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportRequest) Reset() {
	*x = ExportReportRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportRequest) ProtoMessage() {}

func (x *ExportReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportRequest.ProtoReflect.Descriptor instead.
func (*ExportReportRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{15}
}

func (x *ExportReportRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReportRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportResponse) Reset() {
	*x = ExportReportResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportResponse) ProtoMessage() {}

func (x *ExportReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportResponse.ProtoReflect.Descriptor instead.
func (*ExportReportResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{16}
}

func (x *ExportReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_invoices_v1_invoices_proto protoreflect.FileDescriptor

const file_invoices_v1_invoices_proto_rawDesc = "" +
	"\n" +
	"\x1ainvoices/v1/invoices.proto\x12\vinvoices.v1\"W\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x18\n" +
	"\aprocess\x18\x02 \x01(\bR\aprocess\x12\x14\n" +
	"\x05force\x18\x03 \x01(\bR\x05force\"\x82\x02\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\x12\x16\n" +
	"\x06queued\x18\b \x01(\bR\x06queued\"\x8c\x01\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12%\n" +
	"\x0einclude_hidden\x18\x02 \x01(\bR\rincludeHidden\x12\x18\n" +
	"\aprocess\x18\x03 \x01(\bR\aprocess\x12\x14\n" +
	"\x05force\x18\x04 \x01(\bR\x05force\"\xde\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x125\n" +
	"\aresults\x18\x06 \x03(\v2\x1b.invoices.v1.IngestResponseR\aresults\"\xaf\x02\n" +
	"\x0ePurchaseRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06vendor\x18\x02 \x01(\tR\x06vendor\x12\x17\n" +
	"\atx_date\x18\x03 \x01(\tR\x06txDate\x12\x1b\n" +
	"\titem_name\x18\x04 \x01(\tR\bitemName\x12\x1a\n" +
	"\bquantity\x18\x05 \x01(\x01R\bquantity\x12\x12\n" +
	"\x04unit\x18\x06 \x01(\tR\x04unit\x12\x1d\n" +
	"\n" +
	"unit_price\x18\a \x01(\x01R\tunitPrice\x12\x16\n" +
	"\x06amount\x18\b \x01(\x01R\x06amount\x12\x1a\n" +
	"\bcategory\x18\t \x01(\tR\bcategory\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"\xf5\x01\n" +
	"\vSalesRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tsale_date\x18\x02 \x01(\tR\bsaleDate\x12\x12\n" +
	"\x04code\x18\x03 \x01(\tR\x04code\x12\x1b\n" +
	"\titem_name\x18\x04 \x01(\tR\bitemName\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12\x1a\n" +
	"\bquantity\x18\x06 \x01(\x01R\bquantity\x12\x14\n" +
	"\x05price\x18\a \x01(\x01R\x05price\x12\x1b\n" +
	"\tnet_total\x18\b \x01(\x01R\bnetTotal\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"b\n" +
	"\x12ListRecordsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x16\n" +
	"\x06vendor\x18\x03 \x01(\tR\x06vendor\"L\n" +
	"\x13ListRecordsResponse\x125\n" +
	"\arecords\x18\x01 \x03(\v2\x1b.invoices.v1.PurchaseRecordR\arecords\"\\\n" +
	"\x10ListSalesRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x12\n" +
	"\x04item\x18\x03 \x01(\tR\x04item\"G\n" +
	"\x11ListSalesResponse\x122\n" +
	"\arecords\x18\x01 \x03(\v2\x18.invoices.v1.SalesRecordR\arecords\"\x13\n" +
	"\x11GetSummaryRequest\"X\n" +
	"\fTableSummary\x12\x12\n" +
	"\x04rows\x18\x01 \x01(\rR\x04rows\x12\x19\n" +
	"\bmin_date\x18\x02 \x01(\tR\aminDate\x12\x19\n" +
	"\bmax_date\x18\x03 \x01(\tR\amaxDate\"~\n" +
	"\x12GetSummaryResponse\x127\n" +
	"\tpurchases\x18\x01 \x01(\v2\x19.invoices.v1.TableSummaryR\tpurchases\x12/\n" +
	"\x05sales\x18\x02 \x01(\v2\x19.invoices.v1.TableSummaryR\x05sales\"\x80\x01\n" +
	"\x18DeleteByDateRangeRequest\x12.\n" +
	"\x05table\x18\x01 \x01(\x0e2\x18.invoices.v1.RecordTableR\x05table\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"5\n" +
	"\x19DeleteByDateRangeResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\rR\adeleted\"K\n" +
	"\x13ExportReportRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"*\n" +
	"\x14ExportReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx*_\n" +
	"\vRecordTable\x12\x1c\n" +
	"\x18RECORD_TABLE_UNSPECIFIED\x10\x00\x12\x1a\n" +
	"\x16RECORD_TABLE_PURCHASES\x10\x01\x12\x16\n" +
	"\x12RECORD_TABLE_SALES\x10\x022\xbb\x01\n" +
	"\x10IngestionService\x12I\n" +
	"\n" +
	"IngestFile\x12\x1e.invoices.v1.IngestFileRequest\x1a\x1b.invoices.v1.IngestResponse\x12\\\n" +
	"\x0fIngestDirectory\x12#.invoices.v1.IngestDirectoryRequest\x1a$.invoices.v1.IngestDirectoryResponse2\xe1\x02\n" +
	"\x0eRecordsService\x12P\n" +
	"\vListRecords\x12\x1f.invoices.v1.ListRecordsRequest\x1a .invoices.v1.ListRecordsResponse\x12J\n" +
	"\tListSales\x12\x1d.invoices.v1.ListSalesRequest\x1a\x1e.invoices.v1.ListSalesResponse\x12M\n" +
	"\n" +
	"GetSummary\x12\x1e.invoices.v1.GetSummaryRequest\x1a\x1f.invoices.v1.GetSummaryResponse\x12b\n" +
	"\x11DeleteByDateRange\x12%.invoices.v1.DeleteByDateRangeRequest\x1a&.invoices.v1.DeleteByDateRangeResponse2d\n" +
	"\rExportService\x12S\n" +
	"\fExportReport\x12 .invoices.v1.ExportReportRequest\x1a!.invoices.v1.ExportReportResponseBHZFgithub.com/bistrodata/invoice-tracker/gen/proto/invoices/v1;invoicesv1b\x06proto3"

var (
	file_invoices_v1_invoices_proto_rawDescOnce sync.Once
	file_invoices_v1_invoices_proto_rawDescData []byte
)

func file_invoices_v1_invoices_proto_rawDescGZIP() []byte {
	file_invoices_v1_invoices_proto_rawDescOnce.Do(func() {
		file_invoices_v1_invoices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)))
	})
	return file_invoices_v1_invoices_proto_rawDescData
}

var file_invoices_v1_invoices_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_invoices_v1_invoices_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_invoices_v1_invoices_proto_goTypes = []any{
	(RecordTable)(0),                  // 0: invoices.v1.RecordTable
	(*IngestFileRequest)(nil),         // 1: invoices.v1.IngestFileRequest
	(*IngestResponse)(nil),            // 2: invoices.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),    // 3: invoices.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),   // 4: invoices.v1.IngestDirectoryResponse
	(*PurchaseRecord)(nil),            // 5: invoices.v1.PurchaseRecord
	(*SalesRecord)(nil),               // 6: invoices.v1.SalesRecord
	(*ListRecordsRequest)(nil),        // 7: invoices.v1.ListRecordsRequest
	(*ListRecordsResponse)(nil),       // 8: invoices.v1.ListRecordsResponse
	(*ListSalesRequest)(nil),          // 9: invoices.v1.ListSalesRequest
	(*ListSalesResponse)(nil),         // 10: invoices.v1.ListSalesResponse
	(*GetSummaryRequest)(nil),         // 11: invoices.v1.GetSummaryRequest
	(*TableSummary)(nil),              // 12: invoices.v1.TableSummary
	(*GetSummaryResponse)(nil),        // 13: invoices.v1.GetSummaryResponse
	(*DeleteByDateRangeRequest)(nil),  // 14: invoices.v1.DeleteByDateRangeRequest
	(*DeleteByDateRangeResponse)(nil), // 15: invoices.v1.DeleteByDateRangeResponse
	(*ExportReportRequest)(nil),       // 16: invoices.v1.ExportReportRequest
	(*ExportReportResponse)(nil),      // 17: invoices.v1.ExportReportResponse
}
var file_invoices_v1_invoices_proto_depIdxs = []int32{
	2,  // 0: invoices.v1.IngestDirectoryResponse.results:type_name -> invoices.v1.IngestResponse
	5,  // 1: invoices.v1.ListRecordsResponse.records:type_name -> invoices.v1.PurchaseRecord
	6,  // 2: invoices.v1.ListSalesResponse.records:type_name -> invoices.v1.SalesRecord
	12, // 3: invoices.v1.GetSummaryResponse.purchases:type_name -> invoices.v1.TableSummary
	12, // 4: invoices.v1.GetSummaryResponse.sales:type_name -> invoices.v1.TableSummary
	0,  // 5: invoices.v1.DeleteByDateRangeRequest.table:type_name -> invoices.v1.RecordTable
	1,  // 6: invoices.v1.IngestionService.IngestFile:input_type -> invoices.v1.IngestFileRequest
	3,  // 7: invoices.v1.IngestionService.IngestDirectory:input_type -> invoices.v1.IngestDirectoryRequest
	7,  // 8: invoices.v1.RecordsService.ListRecords:input_type -> invoices.v1.ListRecordsRequest
	9,  // 9: invoices.v1.RecordsService.ListSales:input_type -> invoices.v1.ListSalesRequest
	11, // 10: invoices.v1.RecordsService.GetSummary:input_type -> invoices.v1.GetSummaryRequest
	14, // 11: invoices.v1.RecordsService.DeleteByDateRange:input_type -> invoices.v1.DeleteByDateRangeRequest
	16, // 12: invoices.v1.ExportService.ExportReport:input_type -> invoices.v1.ExportReportRequest
	2,  // 13: invoices.v1.IngestionService.IngestFile:output_type -> invoices.v1.IngestResponse
	4,  // 14: invoices.v1.IngestionService.IngestDirectory:output_type -> invoices.v1.IngestDirectoryResponse
	8,  // 15: invoices.v1.RecordsService.ListRecords:output_type -> invoices.v1.ListRecordsResponse
	10, // 16: invoices.v1.RecordsService.ListSales:output_type -> invoices.v1.ListSalesResponse
	13, // 17: invoices.v1.RecordsService.GetSummary:output_type -> invoices.v1.GetSummaryResponse
	15, // 18: invoices.v1.RecordsService.DeleteByDateRange:output_type -> invoices.v1.DeleteByDateRangeResponse
	17, // 19: invoices.v1.ExportService.ExportReport:output_type -> invoices.v1.ExportReportResponse
	13, // [13:20] is the sub-list for method output_type
	6,  // [6:13] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_invoices_v1_invoices_proto_init() }
func file_invoices_v1_invoices_proto_init() {
	if File_invoices_v1_invoices_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_invoices_v1_invoices_proto_goTypes,
		DependencyIndexes: file_invoices_v1_invoices_proto_depIdxs,
		EnumInfos:         file_invoices_v1_invoices_proto_enumTypes,
		MessageInfos:      file_invoices_v1_invoices_proto_msgTypes,
	}.Build()
	File_invoices_v1_invoices_proto = out.File
	file_invoices_v1_invoices_proto_goTypes = nil
	file_invoices_v1_invoices_proto_depIdxs = nil
}
