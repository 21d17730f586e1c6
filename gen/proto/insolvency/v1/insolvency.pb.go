// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: insolvency/v1/insolvency.proto

package insolvencyv1

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

type ClassifyDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClassifyDocumentRequest) Reset() {
	*x = ClassifyDocumentRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyDocumentRequest) ProtoMessage() {}

func (x *ClassifyDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyDocumentRequest.ProtoReflect.Descriptor instead.
func (*ClassifyDocumentRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{0}
}

func (x *ClassifyDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ClassifyDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Format        string                 `protobuf:"bytes,1,opt,name=format,proto3" json:"format,omitempty"`                        // csv | excel | pdf-text | pdf-scan
	OcrStatus     string                 `protobuf:"bytes,2,opt,name=ocr_status,json=ocrStatus,proto3" json:"ocr_status,omitempty"` // none | ocr_required
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClassifyDocumentResponse) Reset() {
	*x = ClassifyDocumentResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyDocumentResponse) ProtoMessage() {}

func (x *ClassifyDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyDocumentResponse.ProtoReflect.Descriptor instead.
func (*ClassifyDocumentResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{1}
}

func (x *ClassifyDocumentResponse) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ClassifyDocumentResponse) GetOcrStatus() string {
	if x != nil {
		return x.OcrStatus
	}
	return ""
}

type StartOcrRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartOcrRequest) Reset() {
	*x = StartOcrRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartOcrRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartOcrRequest) ProtoMessage() {}

func (x *StartOcrRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartOcrRequest.ProtoReflect.Descriptor instead.
func (*StartOcrRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{2}
}

func (x *StartOcrRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type StartOcrResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartOcrResponse) Reset() {
	*x = StartOcrResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartOcrResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartOcrResponse) ProtoMessage() {}

func (x *StartOcrResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartOcrResponse.ProtoReflect.Descriptor instead.
func (*StartOcrResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{3}
}

type GetOcrStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOcrStatusRequest) Reset() {
	*x = GetOcrStatusRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOcrStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOcrStatusRequest) ProtoMessage() {}

func (x *GetOcrStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOcrStatusRequest.ProtoReflect.Descriptor instead.
func (*GetOcrStatusRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{4}
}

func (x *GetOcrStatusRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetOcrStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"` // none | ocr_required | ocr_running | ocr_done | ocr_failed
	Progress      int32                  `protobuf:"varint,2,opt,name=progress,proto3" json:"progress,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOcrStatusResponse) Reset() {
	*x = GetOcrStatusResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOcrStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOcrStatusResponse) ProtoMessage() {}

func (x *GetOcrStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOcrStatusResponse.ProtoReflect.Descriptor instead.
func (*GetOcrStatusResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{5}
}

func (x *GetOcrStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetOcrStatusResponse) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

type ExtractAndDedupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Profile       string                 `protobuf:"bytes,2,opt,name=profile,proto3" json:"profile,omitempty"`
	Async         bool                   `protobuf:"varint,3,opt,name=async,proto3" json:"async,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractAndDedupRequest) Reset() {
	*x = ExtractAndDedupRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractAndDedupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractAndDedupRequest) ProtoMessage() {}

func (x *ExtractAndDedupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractAndDedupRequest.ProtoReflect.Descriptor instead.
func (*ExtractAndDedupRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{6}
}

func (x *ExtractAndDedupRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractAndDedupRequest) GetProfile() string {
	if x != nil {
		return x.Profile
	}
	return ""
}

func (x *ExtractAndDedupRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type ExtractAndDedupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Format        string                 `protobuf:"bytes,1,opt,name=format,proto3" json:"format,omitempty"`
	Inserted      int32                  `protobuf:"varint,2,opt,name=inserted,proto3" json:"inserted,omitempty"`
	Duplicates    int32                  `protobuf:"varint,3,opt,name=duplicates,proto3" json:"duplicates,omitempty"`
	Skipped       int32                  `protobuf:"varint,4,opt,name=skipped,proto3" json:"skipped,omitempty"`
	Warnings      []string               `protobuf:"bytes,5,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Queued        bool                   `protobuf:"varint,6,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractAndDedupResponse) Reset() {
	*x = ExtractAndDedupResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractAndDedupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractAndDedupResponse) ProtoMessage() {}

func (x *ExtractAndDedupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractAndDedupResponse.ProtoReflect.Descriptor instead.
func (*ExtractAndDedupResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{7}
}

func (x *ExtractAndDedupResponse) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ExtractAndDedupResponse) GetInserted() int32 {
	if x != nil {
		return x.Inserted
	}
	return 0
}

func (x *ExtractAndDedupResponse) GetDuplicates() int32 {
	if x != nil {
		return x.Duplicates
	}
	return 0
}

func (x *ExtractAndDedupResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *ExtractAndDedupResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *ExtractAndDedupResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type Transaction struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CaseId           string                 `protobuf:"bytes,2,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	DocumentId       string                 `protobuf:"bytes,3,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	SourceAccount    string                 `protobuf:"bytes,4,opt,name=source_account,json=sourceAccount,proto3" json:"source_account,omitempty"`
	RecipientAccount string                 `protobuf:"bytes,5,opt,name=recipient_account,json=recipientAccount,proto3" json:"recipient_account,omitempty"`
	RecipientName    string                 `protobuf:"bytes,6,opt,name=recipient_name,json=recipientName,proto3" json:"recipient_name,omitempty"`
	Amount           string                 `protobuf:"bytes,7,opt,name=amount,proto3" json:"amount,omitempty"` // decimal string, two fraction digits
	Currency         string                 `protobuf:"bytes,8,opt,name=currency,proto3" json:"currency,omitempty"`
	Description      string                 `protobuf:"bytes,9,opt,name=description,proto3" json:"description,omitempty"`
	TxDate           string                 `protobuf:"bytes,10,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"` // YYYY-MM-DD
	TxHash           string                 `protobuf:"bytes,11,opt,name=tx_hash,json=txHash,proto3" json:"tx_hash,omitempty"`
	Tags             map[string]string      `protobuf:"bytes,12,rep,name=tags,proto3" json:"tags,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Excluded         bool                   `protobuf:"varint,13,opt,name=excluded,proto3" json:"excluded,omitempty"`
	NoticeId         string                 `protobuf:"bytes,14,opt,name=notice_id,json=noticeId,proto3" json:"notice_id,omitempty"`    // empty until grouped
	CreatedAt        string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{8}
}

func (x *Transaction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Transaction) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

func (x *Transaction) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Transaction) GetSourceAccount() string {
	if x != nil {
		return x.SourceAccount
	}
	return ""
}

func (x *Transaction) GetRecipientAccount() string {
	if x != nil {
		return x.RecipientAccount
	}
	return ""
}

func (x *Transaction) GetRecipientName() string {
	if x != nil {
		return x.RecipientName
	}
	return ""
}

func (x *Transaction) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Transaction) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Transaction) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Transaction) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *Transaction) GetTxHash() string {
	if x != nil {
		return x.TxHash
	}
	return ""
}

func (x *Transaction) GetTags() map[string]string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *Transaction) GetExcluded() bool {
	if x != nil {
		return x.Excluded
	}
	return false
}

func (x *Transaction) GetNoticeId() string {
	if x != nil {
		return x.NoticeId
	}
	return ""
}

func (x *Transaction) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaseId        string                 `protobuf:"bytes,1,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsRequest) Reset() {
	*x = ListTransactionsRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsRequest) ProtoMessage() {}

func (x *ListTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ListTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{9}
}

func (x *ListTransactionsRequest) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

type ListTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transactions  []*Transaction         `protobuf:"bytes,1,rep,name=transactions,proto3" json:"transactions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsResponse) Reset() {
	*x = ListTransactionsResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsResponse) ProtoMessage() {}

func (x *ListTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ListTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{10}
}

func (x *ListTransactionsResponse) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

type UpdateTransactionTagsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TransactionId string                 `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	Tags          map[string]string      `protobuf:"bytes,2,rep,name=tags,proto3" json:"tags,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTransactionTagsRequest) Reset() {
	*x = UpdateTransactionTagsRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTransactionTagsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTransactionTagsRequest) ProtoMessage() {}

func (x *UpdateTransactionTagsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTransactionTagsRequest.ProtoReflect.Descriptor instead.
func (*UpdateTransactionTagsRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateTransactionTagsRequest) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

func (x *UpdateTransactionTagsRequest) GetTags() map[string]string {
	if x != nil {
		return x.Tags
	}
	return nil
}

type UpdateTransactionTagsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transaction   *Transaction           `protobuf:"bytes,1,opt,name=transaction,proto3" json:"transaction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTransactionTagsResponse) Reset() {
	*x = UpdateTransactionTagsResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTransactionTagsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTransactionTagsResponse) ProtoMessage() {}

func (x *UpdateTransactionTagsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTransactionTagsResponse.ProtoReflect.Descriptor instead.
func (*UpdateTransactionTagsResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateTransactionTagsResponse) GetTransaction() *Transaction {
	if x != nil {
		return x.Transaction
	}
	return nil
}

type SetTransactionExcludedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TransactionId string                 `protobuf:"bytes,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	Excluded      bool                   `protobuf:"varint,2,opt,name=excluded,proto3" json:"excluded,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetTransactionExcludedRequest) Reset() {
	*x = SetTransactionExcludedRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTransactionExcludedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTransactionExcludedRequest) ProtoMessage() {}

func (x *SetTransactionExcludedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTransactionExcludedRequest.ProtoReflect.Descriptor instead.
func (*SetTransactionExcludedRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{13}
}

func (x *SetTransactionExcludedRequest) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

func (x *SetTransactionExcludedRequest) GetExcluded() bool {
	if x != nil {
		return x.Excluded
	}
	return false
}

type SetTransactionExcludedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transaction   *Transaction           `protobuf:"bytes,1,opt,name=transaction,proto3" json:"transaction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetTransactionExcludedResponse) Reset() {
	*x = SetTransactionExcludedResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTransactionExcludedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTransactionExcludedResponse) ProtoMessage() {}

func (x *SetTransactionExcludedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTransactionExcludedResponse.ProtoReflect.Descriptor instead.
func (*SetTransactionExcludedResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{14}
}

func (x *SetTransactionExcludedResponse) GetTransaction() *Transaction {
	if x != nil {
		return x.Transaction
	}
	return nil
}

type RegisterProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileJson   []byte                 `protobuf:"bytes,1,opt,name=profile_json,json=profileJson,proto3" json:"profile_json,omitempty"` // mapping profile document, schema-validated
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterProfileRequest) Reset() {
	*x = RegisterProfileRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterProfileRequest) ProtoMessage() {}

func (x *RegisterProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterProfileRequest.ProtoReflect.Descriptor instead.
func (*RegisterProfileRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{15}
}

func (x *RegisterProfileRequest) GetProfileJson() []byte {
	if x != nil {
		return x.ProfileJson
	}
	return nil
}

type RegisterProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterProfileResponse) Reset() {
	*x = RegisterProfileResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterProfileResponse) ProtoMessage() {}

func (x *RegisterProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterProfileResponse.ProtoReflect.Descriptor instead.
func (*RegisterProfileResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{16}
}

func (x *RegisterProfileResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type RegisterDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaseId        string                 `protobuf:"bytes,1,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterDocumentRequest) Reset() {
	*x = RegisterDocumentRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDocumentRequest) ProtoMessage() {}

func (x *RegisterDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[17]
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
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{17}
}

func (x *RegisterDocumentRequest) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

func (x *RegisterDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type RegisterDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"`
	OcrStatus     string                 `protobuf:"bytes,3,opt,name=ocr_status,json=ocrStatus,proto3" json:"ocr_status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterDocumentResponse) Reset() {
	*x = RegisterDocumentResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDocumentResponse) ProtoMessage() {}

func (x *RegisterDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[18]
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
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{18}
}

func (x *RegisterDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *RegisterDocumentResponse) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *RegisterDocumentResponse) GetOcrStatus() string {
	if x != nil {
		return x.OcrStatus
	}
	return ""
}

type ExportTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaseId        string                 `protobuf:"bytes,1,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsRequest) Reset() {
	*x = ExportTransactionsRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsRequest) ProtoMessage() {}

func (x *ExportTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ExportTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{19}
}

func (x *ExportTransactionsRequest) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

type ExportTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsResponse) Reset() {
	*x = ExportTransactionsResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsResponse) ProtoMessage() {}

func (x *ExportTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ExportTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{20}
}

func (x *ExportTransactionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportTransactionsResponse) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type Notice struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CaseId              string                 `protobuf:"bytes,2,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	CounterpartyName    string                 `protobuf:"bytes,3,opt,name=counterparty_name,json=counterpartyName,proto3" json:"counterparty_name,omitempty"`
	CounterpartyAccount string                 `protobuf:"bytes,4,opt,name=counterparty_account,json=counterpartyAccount,proto3" json:"counterparty_account,omitempty"`
	Status              string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"` // GENERATED | ACCEPTED | SENT
	FilePath            string                 `protobuf:"bytes,6,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	Content             string                 `protobuf:"bytes,7,opt,name=content,proto3" json:"content,omitempty"`
	TransactionIds      []string               `protobuf:"bytes,8,rep,name=transaction_ids,json=transactionIds,proto3" json:"transaction_ids,omitempty"`
	CreatedAt           string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt           string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Notice) Reset() {
	*x = Notice{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Notice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Notice) ProtoMessage() {}

func (x *Notice) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Notice.ProtoReflect.Descriptor instead.
func (*Notice) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{21}
}

func (x *Notice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Notice) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

func (x *Notice) GetCounterpartyName() string {
	if x != nil {
		return x.CounterpartyName
	}
	return ""
}

func (x *Notice) GetCounterpartyAccount() string {
	if x != nil {
		return x.CounterpartyAccount
	}
	return ""
}

func (x *Notice) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Notice) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *Notice) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Notice) GetTransactionIds() []string {
	if x != nil {
		return x.TransactionIds
	}
	return nil
}

func (x *Notice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Notice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GenerateNoticesRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	CaseId         string                 `protobuf:"bytes,1,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	TransactionIds []string               `protobuf:"bytes,2,rep,name=transaction_ids,json=transactionIds,proto3" json:"transaction_ids,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GenerateNoticesRequest) Reset() {
	*x = GenerateNoticesRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateNoticesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateNoticesRequest) ProtoMessage() {}

func (x *GenerateNoticesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateNoticesRequest.ProtoReflect.Descriptor instead.
func (*GenerateNoticesRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{22}
}

func (x *GenerateNoticesRequest) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

func (x *GenerateNoticesRequest) GetTransactionIds() []string {
	if x != nil {
		return x.TransactionIds
	}
	return nil
}

type GenerateNoticesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notices       []*Notice              `protobuf:"bytes,1,rep,name=notices,proto3" json:"notices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateNoticesResponse) Reset() {
	*x = GenerateNoticesResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateNoticesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateNoticesResponse) ProtoMessage() {}

func (x *GenerateNoticesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateNoticesResponse.ProtoReflect.Descriptor instead.
func (*GenerateNoticesResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{23}
}

func (x *GenerateNoticesResponse) GetNotices() []*Notice {
	if x != nil {
		return x.Notices
	}
	return nil
}

type AcceptNoticeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NoticeId      string                 `protobuf:"bytes,1,opt,name=notice_id,json=noticeId,proto3" json:"notice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptNoticeRequest) Reset() {
	*x = AcceptNoticeRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptNoticeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptNoticeRequest) ProtoMessage() {}

func (x *AcceptNoticeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptNoticeRequest.ProtoReflect.Descriptor instead.
func (*AcceptNoticeRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{24}
}

func (x *AcceptNoticeRequest) GetNoticeId() string {
	if x != nil {
		return x.NoticeId
	}
	return ""
}

type AcceptNoticeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notice        *Notice                `protobuf:"bytes,1,opt,name=notice,proto3" json:"notice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptNoticeResponse) Reset() {
	*x = AcceptNoticeResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptNoticeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptNoticeResponse) ProtoMessage() {}

func (x *AcceptNoticeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptNoticeResponse.ProtoReflect.Descriptor instead.
func (*AcceptNoticeResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{25}
}

func (x *AcceptNoticeResponse) GetNotice() *Notice {
	if x != nil {
		return x.Notice
	}
	return nil
}

type SendNoticeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NoticeId      string                 `protobuf:"bytes,1,opt,name=notice_id,json=noticeId,proto3" json:"notice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendNoticeRequest) Reset() {
	*x = SendNoticeRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendNoticeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendNoticeRequest) ProtoMessage() {}

func (x *SendNoticeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendNoticeRequest.ProtoReflect.Descriptor instead.
func (*SendNoticeRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{26}
}

func (x *SendNoticeRequest) GetNoticeId() string {
	if x != nil {
		return x.NoticeId
	}
	return ""
}

type SendNoticeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notice        *Notice                `protobuf:"bytes,1,opt,name=notice,proto3" json:"notice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendNoticeResponse) Reset() {
	*x = SendNoticeResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendNoticeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendNoticeResponse) ProtoMessage() {}

func (x *SendNoticeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendNoticeResponse.ProtoReflect.Descriptor instead.
func (*SendNoticeResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{27}
}

func (x *SendNoticeResponse) GetNotice() *Notice {
	if x != nil {
		return x.Notice
	}
	return nil
}

type ListNoticesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaseId        string                 `protobuf:"bytes,1,opt,name=case_id,json=caseId,proto3" json:"case_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNoticesRequest) Reset() {
	*x = ListNoticesRequest{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNoticesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNoticesRequest) ProtoMessage() {}

func (x *ListNoticesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNoticesRequest.ProtoReflect.Descriptor instead.
func (*ListNoticesRequest) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{28}
}

func (x *ListNoticesRequest) GetCaseId() string {
	if x != nil {
		return x.CaseId
	}
	return ""
}

type ListNoticesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notices       []*Notice              `protobuf:"bytes,1,rep,name=notices,proto3" json:"notices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNoticesResponse) Reset() {
	*x = ListNoticesResponse{}
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNoticesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNoticesResponse) ProtoMessage() {}

func (x *ListNoticesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insolvency_v1_insolvency_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNoticesResponse.ProtoReflect.Descriptor instead.
func (*ListNoticesResponse) Descriptor() ([]byte, []int) {
	return file_insolvency_v1_insolvency_proto_rawDescGZIP(), []int{29}
}

func (x *ListNoticesResponse) GetNotices() []*Notice {
	if x != nil {
		return x.Notices
	}
	return nil
}

var File_insolvency_v1_insolvency_proto protoreflect.FileDescriptor

const file_insolvency_v1_insolvency_proto_rawDesc = "" +
	"\n" +
	"\x1einsolvency/v1/insolvency.proto\x12\rinsolvency.v1\":\n" +
	"\x17ClassifyDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"Q\n" +
	"\x18ClassifyDocumentResponse\x12\x16\n" +
	"\x06format\x18\x01 \x01(\tR\x06format\x12\x1d\n" +
	"\n" +
	"ocr_status\x18\x02 \x01(\tR\tocrStatus\"2\n" +
	"\x0fStartOcrRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x12\n" +
	"\x10StartOcrResponse\"6\n" +
	"\x13GetOcrStatusRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"J\n" +
	"\x14GetOcrStatusResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1a\n" +
	"\bprogress\x18\x02 \x01(\x05R\bprogress\"i\n" +
	"\x16ExtractAndDedupRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x18\n" +
	"\aprofile\x18\x02 \x01(\tR\aprofile\x12\x14\n" +
	"\x05async\x18\x03 \x01(\bR\x05async\"\xbb\x01\n" +
	"\x17ExtractAndDedupResponse\x12\x16\n" +
	"\x06format\x18\x01 \x01(\tR\x06format\x12\x1a\n" +
	"\binserted\x18\x02 \x01(\x05R\binserted\x12\x1e\n" +
	"\n" +
	"duplicates\x18\x03 \x01(\x05R\n" +
	"duplicates\x12\x18\n" +
	"\askipped\x18\x04 \x01(\x05R\askipped\x12\x1a\n" +
	"\bwarnings\x18\x05 \x03(\tR\bwarnings\x12\x16\n" +
	"\x06queued\x18\x06 \x01(\bR\x06queued\"\xa5\x04\n" +
	"\vTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\acase_id\x18\x02 \x01(\tR\x06caseId\x12\x1f\n" +
	"\vdocument_id\x18\x03 \x01(\tR\n" +
	"documentId\x12%\n" +
	"\x0esource_account\x18\x04 \x01(\tR\rsourceAccount\x12+\n" +
	"\x11recipient_account\x18\x05 \x01(\tR\x10recipientAccount\x12%\n" +
	"\x0erecipient_name\x18\x06 \x01(\tR\rrecipientName\x12\x16\n" +
	"\x06amount\x18\a \x01(\tR\x06amount\x12\x1a\n" +
	"\bcurrency\x18\b \x01(\tR\bcurrency\x12 \n" +
	"\vdescription\x18\t \x01(\tR\vdescription\x12\x17\n" +
	"\atx_date\x18\n" +
	" \x01(\tR\x06txDate\x12\x17\n" +
	"\atx_hash\x18\v \x01(\tR\x06txHash\x128\n" +
	"\x04tags\x18\f \x03(\v2$.insolvency.v1.Transaction.TagsEntryR\x04tags\x12\x1a\n" +
	"\bexcluded\x18\r \x01(\bR\bexcluded\x12\x1b\n" +
	"\tnotice_id\x18\x0e \x01(\tR\bnoticeId\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x1a7\n" +
	"\tTagsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"2\n" +
	"\x17ListTransactionsRequest\x12\x17\n" +
	"\acase_id\x18\x01 \x01(\tR\x06caseId\"Z\n" +
	"\x18ListTransactionsResponse\x12>\n" +
	"\ftransactions\x18\x01 \x03(\v2\x1a.insolvency.v1.TransactionR\ftransactions\"\xc9\x01\n" +
	"\x1cUpdateTransactionTagsRequest\x12%\n" +
	"\x0etransaction_id\x18\x01 \x01(\tR\rtransactionId\x12I\n" +
	"\x04tags\x18\x02 \x03(\v25.insolvency.v1.UpdateTransactionTagsRequest.TagsEntryR\x04tags\x1a7\n" +
	"\tTagsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"]\n" +
	"\x1dUpdateTransactionTagsResponse\x12<\n" +
	"\vtransaction\x18\x01 \x01(\v2\x1a.insolvency.v1.TransactionR\vtransaction\"b\n" +
	"\x1dSetTransactionExcludedRequest\x12%\n" +
	"\x0etransaction_id\x18\x01 \x01(\tR\rtransactionId\x12\x1a\n" +
	"\bexcluded\x18\x02 \x01(\bR\bexcluded\"^\n" +
	"\x1eSetTransactionExcludedResponse\x12<\n" +
	"\vtransaction\x18\x01 \x01(\v2\x1a.insolvency.v1.TransactionR\vtransaction\";\n" +
	"\x16RegisterProfileRequest\x12!\n" +
	"\fprofile_json\x18\x01 \x01(\fR\vprofileJson\"-\n" +
	"\x17RegisterProfileResponse\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"F\n" +
	"\x17RegisterDocumentRequest\x12\x17\n" +
	"\acase_id\x18\x01 \x01(\tR\x06caseId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"r\n" +
	"\x18RegisterDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\x12\x1d\n" +
	"\n" +
	"ocr_status\x18\x03 \x01(\tR\tocrStatus\"4\n" +
	"\x19ExportTransactionsRequest\x12\x17\n" +
	"\acase_id\x18\x01 \x01(\tR\x06caseId\"F\n" +
	"\x1aExportTransactionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\"\xc7\x02\n" +
	"\x06Notice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\acase_id\x18\x02 \x01(\tR\x06caseId\x12+\n" +
	"\x11counterparty_name\x18\x03 \x01(\tR\x10counterpartyName\x121\n" +
	"\x14counterparty_account\x18\x04 \x01(\tR\x13counterpartyAccount\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1b\n" +
	"\tfile_path\x18\x06 \x01(\tR\bfilePath\x12\x18\n" +
	"\acontent\x18\a \x01(\tR\acontent\x12'\n" +
	"\x0ftransaction_ids\x18\b \x03(\tR\x0etransactionIds\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"Z\n" +
	"\x16GenerateNoticesRequest\x12\x17\n" +
	"\acase_id\x18\x01 \x01(\tR\x06caseId\x12'\n" +
	"\x0ftransaction_ids\x18\x02 \x03(\tR\x0etransactionIds\"J\n" +
	"\x17GenerateNoticesResponse\x12/\n" +
	"\anotices\x18\x01 \x03(\v2\x15.insolvency.v1.NoticeR\anotices\"2\n" +
	"\x13AcceptNoticeRequest\x12\x1b\n" +
	"\tnotice_id\x18\x01 \x01(\tR\bnoticeId\"E\n" +
	"\x14AcceptNoticeResponse\x12-\n" +
	"\x06notice\x18\x01 \x01(\v2\x15.insolvency.v1.NoticeR\x06notice\"0\n" +
	"\x11SendNoticeRequest\x12\x1b\n" +
	"\tnotice_id\x18\x01 \x01(\tR\bnoticeId\"C\n" +
	"\x12SendNoticeResponse\x12-\n" +
	"\x06notice\x18\x01 \x01(\v2\x15.insolvency.v1.NoticeR\x06notice\"-\n" +
	"\x12ListNoticesRequest\x12\x17\n" +
	"\acase_id\x18\x01 \x01(\tR\x06caseId\"F\n" +
	"\x13ListNoticesResponse\x12/\n" +
	"\anotices\x18\x01 \x03(\v2\x15.insolvency.v1.NoticeR\anotices2\x80\b\n" +
	"\x0fPipelineService\x12c\n" +
	"\x10ClassifyDocument\x12&.insolvency.v1.ClassifyDocumentRequest\x1a'.insolvency.v1.ClassifyDocumentResponse\x12K\n" +
	"\bStartOcr\x12\x1e.insolvency.v1.StartOcrRequest\x1a\x1f.insolvency.v1.StartOcrResponse\x12W\n" +
	"\fGetOcrStatus\x12\".insolvency.v1.GetOcrStatusRequest\x1a#.insolvency.v1.GetOcrStatusResponse\x12`\n" +
	"\x0fExtractAndDedup\x12%.insolvency.v1.ExtractAndDedupRequest\x1a&.insolvency.v1.ExtractAndDedupResponse\x12c\n" +
	"\x10ListTransactions\x12&.insolvency.v1.ListTransactionsRequest\x1a'.insolvency.v1.ListTransactionsResponse\x12r\n" +
	"\x15UpdateTransactionTags\x12+.insolvency.v1.UpdateTransactionTagsRequest\x1a,.insolvency.v1.UpdateTransactionTagsResponse\x12u\n" +
	"\x16SetTransactionExcluded\x12,.insolvency.v1.SetTransactionExcludedRequest\x1a-.insolvency.v1.SetTransactionExcludedResponse\x12`\n" +
	"\x0fRegisterProfile\x12%.insolvency.v1.RegisterProfileRequest\x1a&.insolvency.v1.RegisterProfileResponse\x12c\n" +
	"\x10RegisterDocument\x12&.insolvency.v1.RegisterDocumentRequest\x1a'.insolvency.v1.RegisterDocumentResponse\x12i\n" +
	"\x12ExportTransactions\x12(.insolvency.v1.ExportTransactionsRequest\x1a).insolvency.v1.ExportTransactionsResponse2\xf3\x02\n" +
	"\rNoticeService\x12`\n" +
	"\x0fGenerateNotices\x12%.insolvency.v1.GenerateNoticesRequest\x1a&.insolvency.v1.GenerateNoticesResponse\x12W\n" +
	"\fAcceptNotice\x12\".insolvency.v1.AcceptNoticeRequest\x1a#.insolvency.v1.AcceptNoticeResponse\x12Q\n" +
	"\n" +
	"SendNotice\x12 .insolvency.v1.SendNoticeRequest\x1a!.insolvency.v1.SendNoticeResponse\x12T\n" +
	"\vListNotices\x12!.insolvency.v1.ListNoticesRequest\x1a\".insolvency.v1.ListNoticesResponseB[ZYgithub.com/yturchin/insolventz-v5-dashboard-upgraded/gen/proto/insolvency/v1;insolvencyv1b\x06proto3"

var (
	file_insolvency_v1_insolvency_proto_rawDescOnce sync.Once
	file_insolvency_v1_insolvency_proto_rawDescData []byte
)

func file_insolvency_v1_insolvency_proto_rawDescGZIP() []byte {
	file_insolvency_v1_insolvency_proto_rawDescOnce.Do(func() {
		file_insolvency_v1_insolvency_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_insolvency_v1_insolvency_proto_rawDesc), len(file_insolvency_v1_insolvency_proto_rawDesc)))
	})
	return file_insolvency_v1_insolvency_proto_rawDescData
}

var file_insolvency_v1_insolvency_proto_msgTypes = make([]protoimpl.MessageInfo, 32)
var file_insolvency_v1_insolvency_proto_goTypes = []any{
	(*ClassifyDocumentRequest)(nil),        // 0: insolvency.v1.ClassifyDocumentRequest
	(*ClassifyDocumentResponse)(nil),       // 1: insolvency.v1.ClassifyDocumentResponse
	(*StartOcrRequest)(nil),                // 2: insolvency.v1.StartOcrRequest
	(*StartOcrResponse)(nil),               // 3: insolvency.v1.StartOcrResponse
	(*GetOcrStatusRequest)(nil),            // 4: insolvency.v1.GetOcrStatusRequest
	(*GetOcrStatusResponse)(nil),           // 5: insolvency.v1.GetOcrStatusResponse
	(*ExtractAndDedupRequest)(nil),         // 6: insolvency.v1.ExtractAndDedupRequest
	(*ExtractAndDedupResponse)(nil),        // 7: insolvency.v1.ExtractAndDedupResponse
	(*Transaction)(nil),                    // 8: insolvency.v1.Transaction
	(*ListTransactionsRequest)(nil),        // 9: insolvency.v1.ListTransactionsRequest
	(*ListTransactionsResponse)(nil),       // 10: insolvency.v1.ListTransactionsResponse
	(*UpdateTransactionTagsRequest)(nil),   // 11: insolvency.v1.UpdateTransactionTagsRequest
	(*UpdateTransactionTagsResponse)(nil),  // 12: insolvency.v1.UpdateTransactionTagsResponse
	(*SetTransactionExcludedRequest)(nil),  // 13: insolvency.v1.SetTransactionExcludedRequest
	(*SetTransactionExcludedResponse)(nil), // 14: insolvency.v1.SetTransactionExcludedResponse
	(*RegisterProfileRequest)(nil),         // 15: insolvency.v1.RegisterProfileRequest
	(*RegisterProfileResponse)(nil),        // 16: insolvency.v1.RegisterProfileResponse
	(*RegisterDocumentRequest)(nil),        // 17: insolvency.v1.RegisterDocumentRequest
	(*RegisterDocumentResponse)(nil),       // 18: insolvency.v1.RegisterDocumentResponse
	(*ExportTransactionsRequest)(nil),      // 19: insolvency.v1.ExportTransactionsRequest
	(*ExportTransactionsResponse)(nil),     // 20: insolvency.v1.ExportTransactionsResponse
	(*Notice)(nil),                         // 21: insolvency.v1.Notice
	(*GenerateNoticesRequest)(nil),         // 22: insolvency.v1.GenerateNoticesRequest
	(*GenerateNoticesResponse)(nil),        // 23: insolvency.v1.GenerateNoticesResponse
	(*AcceptNoticeRequest)(nil),            // 24: insolvency.v1.AcceptNoticeRequest
	(*AcceptNoticeResponse)(nil),           // 25: insolvency.v1.AcceptNoticeResponse
	(*SendNoticeRequest)(nil),              // 26: insolvency.v1.SendNoticeRequest
	(*SendNoticeResponse)(nil),             // 27: insolvency.v1.SendNoticeResponse
	(*ListNoticesRequest)(nil),             // 28: insolvency.v1.ListNoticesRequest
	(*ListNoticesResponse)(nil),            // 29: insolvency.v1.ListNoticesResponse
	nil,                                    // 30: insolvency.v1.Transaction.TagsEntry
	nil,                                    // 31: insolvency.v1.UpdateTransactionTagsRequest.TagsEntry
}
var file_insolvency_v1_insolvency_proto_depIdxs = []int32{
	30, // 0: insolvency.v1.Transaction.tags:type_name -> insolvency.v1.Transaction.TagsEntry
	8,  // 1: insolvency.v1.ListTransactionsResponse.transactions:type_name -> insolvency.v1.Transaction
	31, // 2: insolvency.v1.UpdateTransactionTagsRequest.tags:type_name -> insolvency.v1.UpdateTransactionTagsRequest.TagsEntry
	8,  // 3: insolvency.v1.UpdateTransactionTagsResponse.transaction:type_name -> insolvency.v1.Transaction
	8,  // 4: insolvency.v1.SetTransactionExcludedResponse.transaction:type_name -> insolvency.v1.Transaction
	21, // 5: insolvency.v1.GenerateNoticesResponse.notices:type_name -> insolvency.v1.Notice
	21, // 6: insolvency.v1.AcceptNoticeResponse.notice:type_name -> insolvency.v1.Notice
	21, // 7: insolvency.v1.SendNoticeResponse.notice:type_name -> insolvency.v1.Notice
	21, // 8: insolvency.v1.ListNoticesResponse.notices:type_name -> insolvency.v1.Notice
	0,  // 9: insolvency.v1.PipelineService.ClassifyDocument:input_type -> insolvency.v1.ClassifyDocumentRequest
	2,  // 10: insolvency.v1.PipelineService.StartOcr:input_type -> insolvency.v1.StartOcrRequest
	4,  // 11: insolvency.v1.PipelineService.GetOcrStatus:input_type -> insolvency.v1.GetOcrStatusRequest
	6,  // 12: insolvency.v1.PipelineService.ExtractAndDedup:input_type -> insolvency.v1.ExtractAndDedupRequest
	9,  // 13: insolvency.v1.PipelineService.ListTransactions:input_type -> insolvency.v1.ListTransactionsRequest
	11, // 14: insolvency.v1.PipelineService.UpdateTransactionTags:input_type -> insolvency.v1.UpdateTransactionTagsRequest
	13, // 15: insolvency.v1.PipelineService.SetTransactionExcluded:input_type -> insolvency.v1.SetTransactionExcludedRequest
	15, // 16: insolvency.v1.PipelineService.RegisterProfile:input_type -> insolvency.v1.RegisterProfileRequest
	17, // 17: insolvency.v1.PipelineService.RegisterDocument:input_type -> insolvency.v1.RegisterDocumentRequest
	19, // 18: insolvency.v1.PipelineService.ExportTransactions:input_type -> insolvency.v1.ExportTransactionsRequest
	22, // 19: insolvency.v1.NoticeService.GenerateNotices:input_type -> insolvency.v1.GenerateNoticesRequest
	24, // 20: insolvency.v1.NoticeService.AcceptNotice:input_type -> insolvency.v1.AcceptNoticeRequest
	26, // 21: insolvency.v1.NoticeService.SendNotice:input_type -> insolvency.v1.SendNoticeRequest
	28, // 22: insolvency.v1.NoticeService.ListNotices:input_type -> insolvency.v1.ListNoticesRequest
	1,  // 23: insolvency.v1.PipelineService.ClassifyDocument:output_type -> insolvency.v1.ClassifyDocumentResponse
	3,  // 24: insolvency.v1.PipelineService.StartOcr:output_type -> insolvency.v1.StartOcrResponse
	5,  // 25: insolvency.v1.PipelineService.GetOcrStatus:output_type -> insolvency.v1.GetOcrStatusResponse
	7,  // 26: insolvency.v1.PipelineService.ExtractAndDedup:output_type -> insolvency.v1.ExtractAndDedupResponse
	10, // 27: insolvency.v1.PipelineService.ListTransactions:output_type -> insolvency.v1.ListTransactionsResponse
	12, // 28: insolvency.v1.PipelineService.UpdateTransactionTags:output_type -> insolvency.v1.UpdateTransactionTagsResponse
	14, // 29: insolvency.v1.PipelineService.SetTransactionExcluded:output_type -> insolvency.v1.SetTransactionExcludedResponse
	16, // 30: insolvency.v1.PipelineService.RegisterProfile:output_type -> insolvency.v1.RegisterProfileResponse
	18, // 31: insolvency.v1.PipelineService.RegisterDocument:output_type -> insolvency.v1.RegisterDocumentResponse
	20, // 32: insolvency.v1.PipelineService.ExportTransactions:output_type -> insolvency.v1.ExportTransactionsResponse
	23, // 33: insolvency.v1.NoticeService.GenerateNotices:output_type -> insolvency.v1.GenerateNoticesResponse
	25, // 34: insolvency.v1.NoticeService.AcceptNotice:output_type -> insolvency.v1.AcceptNoticeResponse
	27, // 35: insolvency.v1.NoticeService.SendNotice:output_type -> insolvency.v1.SendNoticeResponse
	29, // 36: insolvency.v1.NoticeService.ListNotices:output_type -> insolvency.v1.ListNoticesResponse
	23, // [23:37] is the sub-list for method output_type
	9,  // [9:23] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_insolvency_v1_insolvency_proto_init() }
func file_insolvency_v1_insolvency_proto_init() {
	if File_insolvency_v1_insolvency_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_insolvency_v1_insolvency_proto_rawDesc), len(file_insolvency_v1_insolvency_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   32,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_insolvency_v1_insolvency_proto_goTypes,
		DependencyIndexes: file_insolvency_v1_insolvency_proto_depIdxs,
		MessageInfos:      file_insolvency_v1_insolvency_proto_msgTypes,
	}.Build()
	File_insolvency_v1_insolvency_proto = out.File
	file_insolvency_v1_insolvency_proto_goTypes = nil
	file_insolvency_v1_insolvency_proto_depIdxs = nil
}
