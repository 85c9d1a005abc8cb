// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: stok.proto

package pb

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

// Identifiers travel as canonical textual UUIDs in a single-field
// envelope. Unparseable text fails the call with DATA_LOSS, distinct from
// the FAILED_PRECONDITION used for ids that parse but are unknown.
type Uuid struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         string                 `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Uuid) Reset() {
	*x = Uuid{}
	mi := &file_stok_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Uuid) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Uuid) ProtoMessage() {}

func (x *Uuid) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Uuid.ProtoReflect.Descriptor instead.
func (*Uuid) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{0}
}

func (x *Uuid) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type SecId struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            *Uuid                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SecId) Reset() {
	*x = SecId{}
	mi := &file_stok_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SecId) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SecId) ProtoMessage() {}

func (x *SecId) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SecId.ProtoReflect.Descriptor instead.
func (*SecId) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{1}
}

func (x *SecId) GetId() *Uuid {
	if x != nil {
		return x.Id
	}
	return nil
}

type AccId struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            *Uuid                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AccId) Reset() {
	*x = AccId{}
	mi := &file_stok_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AccId) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AccId) ProtoMessage() {}

func (x *AccId) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AccId.ProtoReflect.Descriptor instead.
func (*AccId) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{2}
}

func (x *AccId) GetId() *Uuid {
	if x != nil {
		return x.Id
	}
	return nil
}

type ListSecsReq struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSecsReq) Reset() {
	*x = ListSecsReq{}
	mi := &file_stok_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSecsReq) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSecsReq) ProtoMessage() {}

func (x *ListSecsReq) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSecsReq.ProtoReflect.Descriptor instead.
func (*ListSecsReq) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{3}
}

type SecList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	List          []*SecId               `protobuf:"bytes,1,rep,name=list,proto3" json:"list,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SecList) Reset() {
	*x = SecList{}
	mi := &file_stok_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SecList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SecList) ProtoMessage() {}

func (x *SecList) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SecList.ProtoReflect.Descriptor instead.
func (*SecList) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{4}
}

func (x *SecList) GetList() []*SecId {
	if x != nil {
		return x.List
	}
	return nil
}

type CreateAccReq struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAccReq) Reset() {
	*x = CreateAccReq{}
	mi := &file_stok_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAccReq) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAccReq) ProtoMessage() {}

func (x *CreateAccReq) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAccReq.ProtoReflect.Descriptor instead.
func (*CreateAccReq) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{5}
}

type CreateSecReq struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FoundingShares uint64                 `protobuf:"varint,1,opt,name=founding_shares,json=foundingShares,proto3" json:"founding_shares,omitempty"`
	FoundingPrice  float64                `protobuf:"fixed64,2,opt,name=founding_price,json=foundingPrice,proto3" json:"founding_price,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateSecReq) Reset() {
	*x = CreateSecReq{}
	mi := &file_stok_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSecReq) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSecReq) ProtoMessage() {}

func (x *CreateSecReq) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSecReq.ProtoReflect.Descriptor instead.
func (*CreateSecReq) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{6}
}

func (x *CreateSecReq) GetFoundingShares() uint64 {
	if x != nil {
		return x.FoundingShares
	}
	return 0
}

func (x *CreateSecReq) GetFoundingPrice() float64 {
	if x != nil {
		return x.FoundingPrice
	}
	return 0
}

type CreateSecResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Security      *SecId                 `protobuf:"bytes,1,opt,name=security,proto3" json:"security,omitempty"`
	OwnerAcct     *AccId                 `protobuf:"bytes,2,opt,name=owner_acct,json=ownerAcct,proto3" json:"owner_acct,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSecResponse) Reset() {
	*x = CreateSecResponse{}
	mi := &file_stok_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSecResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSecResponse) ProtoMessage() {}

func (x *CreateSecResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSecResponse.ProtoReflect.Descriptor instead.
func (*CreateSecResponse) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{7}
}

func (x *CreateSecResponse) GetSecurity() *SecId {
	if x != nil {
		return x.Security
	}
	return nil
}

func (x *CreateSecResponse) GetOwnerAcct() *AccId {
	if x != nil {
		return x.OwnerAcct
	}
	return nil
}

type SecValueReq struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sec           *SecId                 `protobuf:"bytes,1,opt,name=sec,proto3" json:"sec,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SecValueReq) Reset() {
	*x = SecValueReq{}
	mi := &file_stok_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SecValueReq) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SecValueReq) ProtoMessage() {}

func (x *SecValueReq) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SecValueReq.ProtoReflect.Descriptor instead.
func (*SecValueReq) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{8}
}

func (x *SecValueReq) GetSec() *SecId {
	if x != nil {
		return x.Sec
	}
	return nil
}

type SecValue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sec           *SecId                 `protobuf:"bytes,1,opt,name=sec,proto3" json:"sec,omitempty"`
	Value         float64                `protobuf:"fixed64,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SecValue) Reset() {
	*x = SecValue{}
	mi := &file_stok_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SecValue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SecValue) ProtoMessage() {}

func (x *SecValue) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SecValue.ProtoReflect.Descriptor instead.
func (*SecValue) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{9}
}

func (x *SecValue) GetSec() *SecId {
	if x != nil {
		return x.Sec
	}
	return nil
}

func (x *SecValue) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

type LowestBidReq struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sec           *SecId                 `protobuf:"bytes,1,opt,name=sec,proto3" json:"sec,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LowestBidReq) Reset() {
	*x = LowestBidReq{}
	mi := &file_stok_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LowestBidReq) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LowestBidReq) ProtoMessage() {}

func (x *LowestBidReq) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LowestBidReq.ProtoReflect.Descriptor instead.
func (*LowestBidReq) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{10}
}

func (x *LowestBidReq) GetSec() *SecId {
	if x != nil {
		return x.Sec
	}
	return nil
}

// price is unset when no bids are queued.
type LowestBid struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Price         *float64               `protobuf:"fixed64,1,opt,name=price,proto3,oneof" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LowestBid) Reset() {
	*x = LowestBid{}
	mi := &file_stok_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LowestBid) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LowestBid) ProtoMessage() {}

func (x *LowestBid) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LowestBid.ProtoReflect.Descriptor instead.
func (*LowestBid) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{11}
}

func (x *LowestBid) GetPrice() float64 {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return 0
}

type HighestAskReq struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sec           *SecId                 `protobuf:"bytes,1,opt,name=sec,proto3" json:"sec,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HighestAskReq) Reset() {
	*x = HighestAskReq{}
	mi := &file_stok_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HighestAskReq) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HighestAskReq) ProtoMessage() {}

func (x *HighestAskReq) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HighestAskReq.ProtoReflect.Descriptor instead.
func (*HighestAskReq) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{12}
}

func (x *HighestAskReq) GetSec() *SecId {
	if x != nil {
		return x.Sec
	}
	return nil
}

// price is unset when no asks are queued.
type HighestAsk struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Price         *float64               `protobuf:"fixed64,1,opt,name=price,proto3,oneof" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HighestAsk) Reset() {
	*x = HighestAsk{}
	mi := &file_stok_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HighestAsk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HighestAsk) ProtoMessage() {}

func (x *HighestAsk) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HighestAsk.ProtoReflect.Descriptor instead.
func (*HighestAsk) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{13}
}

func (x *HighestAsk) GetPrice() float64 {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return 0
}

type MarketCapReq struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sec           *SecId                 `protobuf:"bytes,1,opt,name=sec,proto3" json:"sec,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarketCapReq) Reset() {
	*x = MarketCapReq{}
	mi := &file_stok_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarketCapReq) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarketCapReq) ProtoMessage() {}

func (x *MarketCapReq) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarketCapReq.ProtoReflect.Descriptor instead.
func (*MarketCapReq) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{14}
}

func (x *MarketCapReq) GetSec() *SecId {
	if x != nil {
		return x.Sec
	}
	return nil
}

type MarketCap struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Marketcap     float64                `protobuf:"fixed64,1,opt,name=marketcap,proto3" json:"marketcap,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarketCap) Reset() {
	*x = MarketCap{}
	mi := &file_stok_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarketCap) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarketCap) ProtoMessage() {}

func (x *MarketCap) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarketCap.ProtoReflect.Descriptor instead.
func (*MarketCap) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{15}
}

func (x *MarketCap) GetMarketcap() float64 {
	if x != nil {
		return x.Marketcap
	}
	return 0
}

type Bid struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sec           *SecId                 `protobuf:"bytes,1,opt,name=sec,proto3" json:"sec,omitempty"`
	Acc           *AccId                 `protobuf:"bytes,2,opt,name=acc,proto3" json:"acc,omitempty"`
	Price         float64                `protobuf:"fixed64,3,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Bid) Reset() {
	*x = Bid{}
	mi := &file_stok_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Bid) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Bid) ProtoMessage() {}

func (x *Bid) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Bid.ProtoReflect.Descriptor instead.
func (*Bid) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{16}
}

func (x *Bid) GetSec() *SecId {
	if x != nil {
		return x.Sec
	}
	return nil
}

func (x *Bid) GetAcc() *AccId {
	if x != nil {
		return x.Acc
	}
	return nil
}

func (x *Bid) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type Ask struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sec           *SecId                 `protobuf:"bytes,1,opt,name=sec,proto3" json:"sec,omitempty"`
	Acc           *AccId                 `protobuf:"bytes,2,opt,name=acc,proto3" json:"acc,omitempty"`
	Price         float64                `protobuf:"fixed64,3,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Ask) Reset() {
	*x = Ask{}
	mi := &file_stok_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ask) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ask) ProtoMessage() {}

func (x *Ask) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ask.ProtoReflect.Descriptor instead.
func (*Ask) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{17}
}

func (x *Ask) GetSec() *SecId {
	if x != nil {
		return x.Sec
	}
	return nil
}

func (x *Ask) GetAcc() *AccId {
	if x != nil {
		return x.Acc
	}
	return nil
}

func (x *Ask) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type BidPlaced struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Price         float64                `protobuf:"fixed64,1,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BidPlaced) Reset() {
	*x = BidPlaced{}
	mi := &file_stok_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BidPlaced) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BidPlaced) ProtoMessage() {}

func (x *BidPlaced) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BidPlaced.ProtoReflect.Descriptor instead.
func (*BidPlaced) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{18}
}

func (x *BidPlaced) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type AskPlaced struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Price         float64                `protobuf:"fixed64,1,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AskPlaced) Reset() {
	*x = AskPlaced{}
	mi := &file_stok_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AskPlaced) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AskPlaced) ProtoMessage() {}

func (x *AskPlaced) ProtoReflect() protoreflect.Message {
	mi := &file_stok_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AskPlaced.ProtoReflect.Descriptor instead.
func (*AskPlaced) Descriptor() ([]byte, []int) {
	return file_stok_proto_rawDescGZIP(), []int{19}
}

func (x *AskPlaced) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

var File_stok_proto protoreflect.FileDescriptor

var file_stok_proto_rawDesc = string([]byte{
	0x0a, 0x0a, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x04, 0x73, 0x74,
	0x6f, 0x6b, 0x22, 0x1c, 0x0a, 0x04, 0x55, 0x75, 0x69, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61,
	0x6c, 0x75, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65,
	0x22, 0x23, 0x0a, 0x05, 0x53, 0x65, 0x63, 0x49, 0x64, 0x12, 0x1a, 0x0a, 0x02, 0x69, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0a, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x55, 0x75, 0x69,
	0x64, 0x52, 0x02, 0x69, 0x64, 0x22, 0x23, 0x0a, 0x05, 0x41, 0x63, 0x63, 0x49, 0x64, 0x12, 0x1a,
	0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0a, 0x2e, 0x73, 0x74, 0x6f,
	0x6b, 0x2e, 0x55, 0x75, 0x69, 0x64, 0x52, 0x02, 0x69, 0x64, 0x22, 0x0d, 0x0a, 0x0b, 0x4c, 0x69,
	0x73, 0x74, 0x53, 0x65, 0x63, 0x73, 0x52, 0x65, 0x71, 0x22, 0x2a, 0x0a, 0x07, 0x53, 0x65, 0x63,
	0x4c, 0x69, 0x73, 0x74, 0x12, 0x1f, 0x0a, 0x04, 0x6c, 0x69, 0x73, 0x74, 0x18, 0x01, 0x20, 0x03,
	0x28, 0x0b, 0x32, 0x0b, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x53, 0x65, 0x63, 0x49, 0x64, 0x52,
	0x04, 0x6c, 0x69, 0x73, 0x74, 0x22, 0x0e, 0x0a, 0x0c, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x41,
	0x63, 0x63, 0x52, 0x65, 0x71, 0x22, 0x5e, 0x0a, 0x0c, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x53,
	0x65, 0x63, 0x52, 0x65, 0x71, 0x12, 0x27, 0x0a, 0x0f, 0x66, 0x6f, 0x75, 0x6e, 0x64, 0x69, 0x6e,
	0x67, 0x5f, 0x73, 0x68, 0x61, 0x72, 0x65, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x04, 0x52, 0x0e,
	0x66, 0x6f, 0x75, 0x6e, 0x64, 0x69, 0x6e, 0x67, 0x53, 0x68, 0x61, 0x72, 0x65, 0x73, 0x12, 0x25,
	0x0a, 0x0e, 0x66, 0x6f, 0x75, 0x6e, 0x64, 0x69, 0x6e, 0x67, 0x5f, 0x70, 0x72, 0x69, 0x63, 0x65,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0d, 0x66, 0x6f, 0x75, 0x6e, 0x64, 0x69, 0x6e, 0x67,
	0x50, 0x72, 0x69, 0x63, 0x65, 0x22, 0x68, 0x0a, 0x11, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x53,
	0x65, 0x63, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x27, 0x0a, 0x08, 0x73, 0x65,
	0x63, 0x75, 0x72, 0x69, 0x74, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0b, 0x2e, 0x73,
	0x74, 0x6f, 0x6b, 0x2e, 0x53, 0x65, 0x63, 0x49, 0x64, 0x52, 0x08, 0x73, 0x65, 0x63, 0x75, 0x72,
	0x69, 0x74, 0x79, 0x12, 0x2a, 0x0a, 0x0a, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x5f, 0x61, 0x63, 0x63,
	0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0b, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x41,
	0x63, 0x63, 0x49, 0x64, 0x52, 0x09, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x41, 0x63, 0x63, 0x74, 0x22,
	0x2c, 0x0a, 0x0b, 0x53, 0x65, 0x63, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x52, 0x65, 0x71, 0x12, 0x1d,
	0x0a, 0x03, 0x73, 0x65, 0x63, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0b, 0x2e, 0x73, 0x74,
	0x6f, 0x6b, 0x2e, 0x53, 0x65, 0x63, 0x49, 0x64, 0x52, 0x03, 0x73, 0x65, 0x63, 0x22, 0x3f, 0x0a,
	0x08, 0x53, 0x65, 0x63, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x12, 0x1d, 0x0a, 0x03, 0x73, 0x65, 0x63,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0b, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x53, 0x65,
	0x63, 0x49, 0x64, 0x52, 0x03, 0x73, 0x65, 0x63, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75,
	0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x22, 0x2d,
	0x0a, 0x0c, 0x4c, 0x6f, 0x77, 0x65, 0x73, 0x74, 0x42, 0x69, 0x64, 0x52, 0x65, 0x71, 0x12, 0x1d,
	0x0a, 0x03, 0x73, 0x65, 0x63, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0b, 0x2e, 0x73, 0x74,
	0x6f, 0x6b, 0x2e, 0x53, 0x65, 0x63, 0x49, 0x64, 0x52, 0x03, 0x73, 0x65, 0x63, 0x22, 0x30, 0x0a,
	0x09, 0x4c, 0x6f, 0x77, 0x65, 0x73, 0x74, 0x42, 0x69, 0x64, 0x12, 0x19, 0x0a, 0x05, 0x70, 0x72,
	0x69, 0x63, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x01, 0x48, 0x00, 0x52, 0x05, 0x70, 0x72, 0x69,
	0x63, 0x65, 0x88, 0x01, 0x01, 0x42, 0x08, 0x0a, 0x06, 0x5f, 0x70, 0x72, 0x69, 0x63, 0x65, 0x22,
	0x2e, 0x0a, 0x0d, 0x48, 0x69, 0x67, 0x68, 0x65, 0x73, 0x74, 0x41, 0x73, 0x6b, 0x52, 0x65, 0x71,
	0x12, 0x1d, 0x0a, 0x03, 0x73, 0x65, 0x63, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0b, 0x2e,
	0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x53, 0x65, 0x63, 0x49, 0x64, 0x52, 0x03, 0x73, 0x65, 0x63, 0x22,
	0x31, 0x0a, 0x0a, 0x48, 0x69, 0x67, 0x68, 0x65, 0x73, 0x74, 0x41, 0x73, 0x6b, 0x12, 0x19, 0x0a,
	0x05, 0x70, 0x72, 0x69, 0x63, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x01, 0x48, 0x00, 0x52, 0x05,
	0x70, 0x72, 0x69, 0x63, 0x65, 0x88, 0x01, 0x01, 0x42, 0x08, 0x0a, 0x06, 0x5f, 0x70, 0x72, 0x69,
	0x63, 0x65, 0x22, 0x2d, 0x0a, 0x0c, 0x4d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x43, 0x61, 0x70, 0x52,
	0x65, 0x71, 0x12, 0x1d, 0x0a, 0x03, 0x73, 0x65, 0x63, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x0b, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x53, 0x65, 0x63, 0x49, 0x64, 0x52, 0x03, 0x73, 0x65,
	0x63, 0x22, 0x29, 0x0a, 0x09, 0x4d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x43, 0x61, 0x70, 0x12, 0x1c,
	0x0a, 0x09, 0x6d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x63, 0x61, 0x70, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x01, 0x52, 0x09, 0x6d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x63, 0x61, 0x70, 0x22, 0x59, 0x0a, 0x03,
	0x42, 0x69, 0x64, 0x12, 0x1d, 0x0a, 0x03, 0x73, 0x65, 0x63, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x0b, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x53, 0x65, 0x63, 0x49, 0x64, 0x52, 0x03, 0x73,
	0x65, 0x63, 0x12, 0x1d, 0x0a, 0x03, 0x61, 0x63, 0x63, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x0b, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x41, 0x63, 0x63, 0x49, 0x64, 0x52, 0x03, 0x61, 0x63,
	0x63, 0x12, 0x14, 0x0a, 0x05, 0x70, 0x72, 0x69, 0x63, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x05, 0x70, 0x72, 0x69, 0x63, 0x65, 0x22, 0x59, 0x0a, 0x03, 0x41, 0x73, 0x6b, 0x12, 0x1d,
	0x0a, 0x03, 0x73, 0x65, 0x63, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0b, 0x2e, 0x73, 0x74,
	0x6f, 0x6b, 0x2e, 0x53, 0x65, 0x63, 0x49, 0x64, 0x52, 0x03, 0x73, 0x65, 0x63, 0x12, 0x1d, 0x0a,
	0x03, 0x61, 0x63, 0x63, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0b, 0x2e, 0x73, 0x74, 0x6f,
	0x6b, 0x2e, 0x41, 0x63, 0x63, 0x49, 0x64, 0x52, 0x03, 0x61, 0x63, 0x63, 0x12, 0x14, 0x0a, 0x05,
	0x70, 0x72, 0x69, 0x63, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x05, 0x70, 0x72, 0x69,
	0x63, 0x65, 0x22, 0x21, 0x0a, 0x09, 0x42, 0x69, 0x64, 0x50, 0x6c, 0x61, 0x63, 0x65, 0x64, 0x12,
	0x14, 0x0a, 0x05, 0x70, 0x72, 0x69, 0x63, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x01, 0x52, 0x05,
	0x70, 0x72, 0x69, 0x63, 0x65, 0x22, 0x21, 0x0a, 0x09, 0x41, 0x73, 0x6b, 0x50, 0x6c, 0x61, 0x63,
	0x65, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x70, 0x72, 0x69, 0x63, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x01, 0x52, 0x05, 0x70, 0x72, 0x69, 0x63, 0x65, 0x32, 0xd8, 0x03, 0x0a, 0x06, 0x4d, 0x61, 0x72,
	0x6b, 0x65, 0x74, 0x12, 0x32, 0x0a, 0x0e, 0x4c, 0x69, 0x73, 0x74, 0x53, 0x65, 0x63, 0x75, 0x72,
	0x69, 0x74, 0x69, 0x65, 0x73, 0x12, 0x11, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x4c, 0x69, 0x73,
	0x74, 0x53, 0x65, 0x63, 0x73, 0x52, 0x65, 0x71, 0x1a, 0x0d, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e,
	0x53, 0x65, 0x63, 0x4c, 0x69, 0x73, 0x74, 0x12, 0x30, 0x0a, 0x0d, 0x43, 0x72, 0x65, 0x61, 0x74,
	0x65, 0x41, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x12, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e,
	0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x41, 0x63, 0x63, 0x52, 0x65, 0x71, 0x1a, 0x0b, 0x2e, 0x73,
	0x74, 0x6f, 0x6b, 0x2e, 0x41, 0x63, 0x63, 0x49, 0x64, 0x12, 0x3d, 0x0a, 0x0e, 0x43, 0x72, 0x65,
	0x61, 0x74, 0x65, 0x53, 0x65, 0x63, 0x75, 0x72, 0x69, 0x74, 0x79, 0x12, 0x12, 0x2e, 0x73, 0x74,
	0x6f, 0x6b, 0x2e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x53, 0x65, 0x63, 0x52, 0x65, 0x71, 0x1a,
	0x17, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x53, 0x65, 0x63,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x37, 0x0a, 0x10, 0x52, 0x65, 0x67, 0x69,
	0x73, 0x74, 0x65, 0x72, 0x53, 0x65, 0x63, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x12, 0x11, 0x2e, 0x73,
	0x74, 0x6f, 0x6b, 0x2e, 0x53, 0x65, 0x63, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x52, 0x65, 0x71, 0x1a,
	0x0e, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x53, 0x65, 0x63, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x30,
	0x01, 0x12, 0x33, 0x0a, 0x0c, 0x47, 0x65, 0x74, 0x4c, 0x6f, 0x77, 0x65, 0x73, 0x74, 0x42, 0x69,
	0x64, 0x12, 0x12, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x4c, 0x6f, 0x77, 0x65, 0x73, 0x74, 0x42,
	0x69, 0x64, 0x52, 0x65, 0x71, 0x1a, 0x0f, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x4c, 0x6f, 0x77,
	0x65, 0x73, 0x74, 0x42, 0x69, 0x64, 0x12, 0x36, 0x0a, 0x0d, 0x47, 0x65, 0x74, 0x48, 0x69, 0x67,
	0x68, 0x65, 0x73, 0x74, 0x41, 0x73, 0x6b, 0x12, 0x13, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x48,
	0x69, 0x67, 0x68, 0x65, 0x73, 0x74, 0x41, 0x73, 0x6b, 0x52, 0x65, 0x71, 0x1a, 0x10, 0x2e, 0x73,
	0x74, 0x6f, 0x6b, 0x2e, 0x48, 0x69, 0x67, 0x68, 0x65, 0x73, 0x74, 0x41, 0x73, 0x6b, 0x12, 0x33,
	0x0a, 0x0c, 0x47, 0x65, 0x74, 0x4d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x43, 0x61, 0x70, 0x12, 0x12,
	0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x4d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x43, 0x61, 0x70, 0x52,
	0x65, 0x71, 0x1a, 0x0f, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x4d, 0x61, 0x72, 0x6b, 0x65, 0x74,
	0x43, 0x61, 0x70, 0x12, 0x26, 0x0a, 0x08, 0x50, 0x6c, 0x61, 0x63, 0x65, 0x42, 0x69, 0x64, 0x12,
	0x09, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x42, 0x69, 0x64, 0x1a, 0x0f, 0x2e, 0x73, 0x74, 0x6f,
	0x6b, 0x2e, 0x42, 0x69, 0x64, 0x50, 0x6c, 0x61, 0x63, 0x65, 0x64, 0x12, 0x26, 0x0a, 0x08, 0x50,
	0x6c, 0x61, 0x63, 0x65, 0x41, 0x73, 0x6b, 0x12, 0x09, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x41,
	0x73, 0x6b, 0x1a, 0x0f, 0x2e, 0x73, 0x74, 0x6f, 0x6b, 0x2e, 0x41, 0x73, 0x6b, 0x50, 0x6c, 0x61,
	0x63, 0x65, 0x64, 0x42, 0x0d, 0x5a, 0x0b, 0x73, 0x74, 0x6f, 0x6b, 0x2f, 0x61, 0x70, 0x69, 0x2f,
	0x70, 0x62, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_stok_proto_rawDescOnce sync.Once
	file_stok_proto_rawDescData []byte
)

func file_stok_proto_rawDescGZIP() []byte {
	file_stok_proto_rawDescOnce.Do(func() {
		file_stok_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_stok_proto_rawDesc), len(file_stok_proto_rawDesc)))
	})
	return file_stok_proto_rawDescData
}

var file_stok_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_stok_proto_goTypes = []any{
	(*Uuid)(nil),              // 0: stok.Uuid
	(*SecId)(nil),             // 1: stok.SecId
	(*AccId)(nil),             // 2: stok.AccId
	(*ListSecsReq)(nil),       // 3: stok.ListSecsReq
	(*SecList)(nil),           // 4: stok.SecList
	(*CreateAccReq)(nil),      // 5: stok.CreateAccReq
	(*CreateSecReq)(nil),      // 6: stok.CreateSecReq
	(*CreateSecResponse)(nil), // 7: stok.CreateSecResponse
	(*SecValueReq)(nil),       // 8: stok.SecValueReq
	(*SecValue)(nil),          // 9: stok.SecValue
	(*LowestBidReq)(nil),      // 10: stok.LowestBidReq
	(*LowestBid)(nil),         // 11: stok.LowestBid
	(*HighestAskReq)(nil),     // 12: stok.HighestAskReq
	(*HighestAsk)(nil),        // 13: stok.HighestAsk
	(*MarketCapReq)(nil),      // 14: stok.MarketCapReq
	(*MarketCap)(nil),         // 15: stok.MarketCap
	(*Bid)(nil),               // 16: stok.Bid
	(*Ask)(nil),               // 17: stok.Ask
	(*BidPlaced)(nil),         // 18: stok.BidPlaced
	(*AskPlaced)(nil),         // 19: stok.AskPlaced
}
var file_stok_proto_depIdxs = []int32{
	0,  // 0: stok.SecId.id:type_name -> stok.Uuid
	0,  // 1: stok.AccId.id:type_name -> stok.Uuid
	1,  // 2: stok.SecList.list:type_name -> stok.SecId
	1,  // 3: stok.CreateSecResponse.security:type_name -> stok.SecId
	2,  // 4: stok.CreateSecResponse.owner_acct:type_name -> stok.AccId
	1,  // 5: stok.SecValueReq.sec:type_name -> stok.SecId
	1,  // 6: stok.SecValue.sec:type_name -> stok.SecId
	1,  // 7: stok.LowestBidReq.sec:type_name -> stok.SecId
	1,  // 8: stok.HighestAskReq.sec:type_name -> stok.SecId
	1,  // 9: stok.MarketCapReq.sec:type_name -> stok.SecId
	1,  // 10: stok.Bid.sec:type_name -> stok.SecId
	2,  // 11: stok.Bid.acc:type_name -> stok.AccId
	1,  // 12: stok.Ask.sec:type_name -> stok.SecId
	2,  // 13: stok.Ask.acc:type_name -> stok.AccId
	3,  // 14: stok.Market.ListSecurities:input_type -> stok.ListSecsReq
	5,  // 15: stok.Market.CreateAccount:input_type -> stok.CreateAccReq
	6,  // 16: stok.Market.CreateSecurity:input_type -> stok.CreateSecReq
	8,  // 17: stok.Market.RegisterSecValue:input_type -> stok.SecValueReq
	10, // 18: stok.Market.GetLowestBid:input_type -> stok.LowestBidReq
	12, // 19: stok.Market.GetHighestAsk:input_type -> stok.HighestAskReq
	14, // 20: stok.Market.GetMarketCap:input_type -> stok.MarketCapReq
	16, // 21: stok.Market.PlaceBid:input_type -> stok.Bid
	17, // 22: stok.Market.PlaceAsk:input_type -> stok.Ask
	4,  // 23: stok.Market.ListSecurities:output_type -> stok.SecList
	2,  // 24: stok.Market.CreateAccount:output_type -> stok.AccId
	7,  // 25: stok.Market.CreateSecurity:output_type -> stok.CreateSecResponse
	9,  // 26: stok.Market.RegisterSecValue:output_type -> stok.SecValue
	11, // 27: stok.Market.GetLowestBid:output_type -> stok.LowestBid
	13, // 28: stok.Market.GetHighestAsk:output_type -> stok.HighestAsk
	15, // 29: stok.Market.GetMarketCap:output_type -> stok.MarketCap
	18, // 30: stok.Market.PlaceBid:output_type -> stok.BidPlaced
	19, // 31: stok.Market.PlaceAsk:output_type -> stok.AskPlaced
	23, // [23:32] is the sub-list for method output_type
	14, // [14:23] is the sub-list for method input_type
	14, // [14:14] is the sub-list for extension type_name
	14, // [14:14] is the sub-list for extension extendee
	0,  // [0:14] is the sub-list for field type_name
}

func init() { file_stok_proto_init() }
func file_stok_proto_init() {
	if File_stok_proto != nil {
		return
	}
	file_stok_proto_msgTypes[11].OneofWrappers = []any{}
	file_stok_proto_msgTypes[13].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_stok_proto_rawDesc), len(file_stok_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_stok_proto_goTypes,
		DependencyIndexes: file_stok_proto_depIdxs,
		MessageInfos:      file_stok_proto_msgTypes,
	}.Build()
	File_stok_proto = out.File
	file_stok_proto_goTypes = nil
	file_stok_proto_depIdxs = nil
}
