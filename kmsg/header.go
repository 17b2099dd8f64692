package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// RequestHeaderV0 is the oldest request header: just enough to route
// and correlate a request, no client identification.
//
//	i16 api_key | i16 api_version | i32 correlation_id
type RequestHeaderV0 struct {
	APIKey        int16
	APIVersion    int16
	CorrelationID int32
}

func (v *RequestHeaderV0) AppendTo(dst []byte) []byte { return v.appendTo(dst) }

func (v *RequestHeaderV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.APIKey)
	dst = kbin.AppendInt16(dst, v.APIVersion)
	dst = kbin.AppendInt32(dst, v.CorrelationID)
	return dst
}

func (v *RequestHeaderV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.readFrom(b)
	return b.Complete()
}

func (v *RequestHeaderV0) readFrom(b *kbin.Reader) {
	v.APIKey = b.Int16()
	v.APIVersion = b.Int16()
	v.CorrelationID = b.Int32()
}

// RequestHeaderV1 adds a nullable client id, classic (i16-length)
// encoded even in a flexible-bodied request (ApiVersions in particular
// must be parseable before the broker knows whether the requester
// understands flexible encoding, so the client id never goes compact;
// see RequestHeaderV2 for where flexible actually kicks in).
//
//	RequestHeaderV0 | nullable_string client_id
type RequestHeaderV1 struct {
	APIKey        int16
	APIVersion    int16
	CorrelationID int32
	ClientID      *string
}

func (v *RequestHeaderV1) AppendTo(dst []byte) []byte { return v.appendTo(dst) }

func (v *RequestHeaderV1) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.APIKey)
	dst = kbin.AppendInt16(dst, v.APIVersion)
	dst = kbin.AppendInt32(dst, v.CorrelationID)
	dst = kbin.AppendNullableString(dst, v.ClientID)
	return dst
}

func (v *RequestHeaderV1) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.readFrom(b)
	return b.Complete()
}

func (v *RequestHeaderV1) readFrom(b *kbin.Reader) {
	v.APIKey = b.Int16()
	v.APIVersion = b.Int16()
	v.CorrelationID = b.Int32()
	v.ClientID = b.NullableString()
}

// RequestHeaderV2 is RequestHeaderV1 plus a trailing flexible
// tagged-fields section — the header used by every flexible-bodied
// request. The client id itself stays classic-encoded; only the
// section after it is new.
//
//	RequestHeaderV1 | tagged_fields
type RequestHeaderV2 struct {
	APIKey        int16
	APIVersion    int16
	CorrelationID int32
	ClientID      *string
	UnknownTags   UnknownTags
}

func (v *RequestHeaderV2) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.APIKey)
	dst = kbin.AppendInt16(dst, v.APIVersion)
	dst = kbin.AppendInt32(dst, v.CorrelationID)
	dst = kbin.AppendNullableString(dst, v.ClientID)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *RequestHeaderV2) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.readFrom(b)
	return b.Complete()
}

func (v *RequestHeaderV2) readFrom(b *kbin.Reader) {
	v.APIKey = b.Int16()
	v.APIVersion = b.Int16()
	v.CorrelationID = b.Int32()
	v.ClientID = b.NullableString()
	v.UnknownTags = readUnknownTags(b)
}

// ResponseHeaderV0 is just the correlation id the broker is echoing
// back.
//
//	i32 correlation_id
type ResponseHeaderV0 struct {
	CorrelationID int32
}

func (v *ResponseHeaderV0) AppendTo(dst []byte) []byte { return v.appendTo(dst) }

func (v *ResponseHeaderV0) appendTo(dst []byte) []byte {
	return kbin.AppendInt32(dst, v.CorrelationID)
}

func (v *ResponseHeaderV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.readFrom(b)
	return b.Complete()
}

func (v *ResponseHeaderV0) readFrom(b *kbin.Reader) {
	v.CorrelationID = b.Int32()
}

// ResponseHeaderV1 is ResponseHeaderV0 plus a trailing tagged-fields
// section, used by every response whose request used a flexible header
// — except ApiVersions, which always replies with ResponseHeaderV0;
// see registry.go's responseHeaderVersion.
//
//	ResponseHeaderV0 | tagged_fields
type ResponseHeaderV1 struct {
	CorrelationID int32
	UnknownTags   UnknownTags
}

func (v *ResponseHeaderV1) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.CorrelationID)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ResponseHeaderV1) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.readFrom(b)
	return b.Complete()
}

func (v *ResponseHeaderV1) readFrom(b *kbin.Reader) {
	v.CorrelationID = b.Int32()
	v.UnknownTags = readUnknownTags(b)
}
