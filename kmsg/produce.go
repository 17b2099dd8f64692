package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyProduce is the Kafka protocol API key for Produce.
const APIKeyProduce int16 = 0

// ProduceRequestPartitionV0 carries one partition's record batch. The
// batch itself is opaque bytes: this module is a wire codec for the
// request/response envelope, not a record-batch (de)serializer -- see
// SPEC_FULL.md's Non-goals.
type ProduceRequestPartitionV0 struct {
	Index   int32
	Records []byte
}

func (v *ProduceRequestPartitionV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.Index)
	return appendNullableBytes(dst, v.Records, false)
}

func (v *ProduceRequestPartitionV0) readFrom(b *kbin.Reader) {
	v.Index = b.Int32()
	v.Records = readNullableBytes(b, false)
}

// ProduceRequestTopicV0 carries one topic's partitions.
type ProduceRequestTopicV0 struct {
	Name       string
	Partitions []ProduceRequestPartitionV0
}

func (v *ProduceRequestTopicV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.Name)
	dst, _ = appendArray(dst, v.Partitions, false, false, func(d []byte, p ProduceRequestPartitionV0) []byte {
		return p.appendTo(d)
	})
	return dst
}

func (v *ProduceRequestTopicV0) readFrom(b *kbin.Reader) {
	v.Name = b.String()
	v.Partitions = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) ProduceRequestPartitionV0 {
		var p ProduceRequestPartitionV0
		p.readFrom(b)
		return p
	})
}

// ProduceRequestV0 is the classic-encoded Produce request.
type ProduceRequestV0 struct {
	Acks        int16
	TimeoutMs   int32
	TopicData   []ProduceRequestTopicV0
}

func (*ProduceRequestV0) Key() int16       { return APIKeyProduce }
func (*ProduceRequestV0) Version() int16   { return 0 }
func (*ProduceRequestV0) IsFlexible() bool { return false }

func (v *ProduceRequestV0) Timeout() int32     { return v.TimeoutMs }
func (v *ProduceRequestV0) SetTimeout(ms int32) { v.TimeoutMs = ms }

func (v *ProduceRequestV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.Acks)
	dst = kbin.AppendInt32(dst, v.TimeoutMs)
	dst, _ = appendArray(dst, v.TopicData, false, false, func(d []byte, t ProduceRequestTopicV0) []byte {
		return t.appendTo(d)
	})
	return dst
}

func (v *ProduceRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Acks = b.Int16()
	v.TimeoutMs = b.Int32()
	v.TopicData = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) ProduceRequestTopicV0 {
		var t ProduceRequestTopicV0
		t.readFrom(b)
		return t
	})
	return b.Complete()
}

// ProduceRequestPartitionV9 is ProduceRequestPartitionV0 with compact
// bytes and a per-partition tagged-fields section.
type ProduceRequestPartitionV9 struct {
	Index       int32
	Records     []byte
	UnknownTags UnknownTags
}

func (v *ProduceRequestPartitionV9) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.Index)
	dst = appendNullableBytes(dst, v.Records, true)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ProduceRequestPartitionV9) readFrom(b *kbin.Reader) {
	v.Index = b.Int32()
	v.Records = readNullableBytes(b, true)
	v.UnknownTags = readUnknownTags(b)
}

// ProduceRequestTopicV9 is ProduceRequestTopicV0 with a compact string
// name, compact array, and tagged-fields section.
type ProduceRequestTopicV9 struct {
	Name        string
	Partitions  []ProduceRequestPartitionV9
	UnknownTags UnknownTags
}

func (v *ProduceRequestTopicV9) appendTo(dst []byte) []byte {
	dst = appendString(dst, v.Name, true)
	dst, _ = appendArray(dst, v.Partitions, true, false, func(d []byte, p ProduceRequestPartitionV9) []byte {
		return p.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ProduceRequestTopicV9) readFrom(b *kbin.Reader) {
	v.Name = readString(b, true)
	v.Partitions = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) ProduceRequestPartitionV9 {
		var p ProduceRequestPartitionV9
		p.readFrom(b)
		return p
	})
	v.UnknownTags = readUnknownTags(b)
}

// ProduceRequestV9 is the flexible-encoded Produce request. Kafka never
// put a transactional id directly on this struct before v3, which this
// module does not implement since transactional production is out of
// scope -- see SPEC_FULL.md's Non-goals.
type ProduceRequestV9 struct {
	Acks        int16
	TimeoutMs   int32
	TopicData   []ProduceRequestTopicV9
	UnknownTags UnknownTags
}

func (*ProduceRequestV9) Key() int16       { return APIKeyProduce }
func (*ProduceRequestV9) Version() int16   { return 9 }
func (*ProduceRequestV9) IsFlexible() bool { return true }

func (v *ProduceRequestV9) Timeout() int32      { return v.TimeoutMs }
func (v *ProduceRequestV9) SetTimeout(ms int32) { v.TimeoutMs = ms }

func (v *ProduceRequestV9) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.Acks)
	dst = kbin.AppendInt32(dst, v.TimeoutMs)
	dst, _ = appendArray(dst, v.TopicData, true, false, func(d []byte, t ProduceRequestTopicV9) []byte {
		return t.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ProduceRequestV9) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Acks = b.Int16()
	v.TimeoutMs = b.Int32()
	v.TopicData = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) ProduceRequestTopicV9 {
		var t ProduceRequestTopicV9
		t.readFrom(b)
		return t
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// ProduceResponsePartitionV0 is one partition's ack in a Produce
// response.
type ProduceResponsePartitionV0 struct {
	Index      int32
	ErrorCode  int16
	BaseOffset int64
}

func (v *ProduceResponsePartitionV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.Index)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendInt64(dst, v.BaseOffset)
	return dst
}

func (v *ProduceResponsePartitionV0) readFrom(b *kbin.Reader) {
	v.Index = b.Int32()
	v.ErrorCode = b.Int16()
	v.BaseOffset = b.Int64()
}

// ProduceResponseTopicV0 collects one topic's partition acks.
type ProduceResponseTopicV0 struct {
	Name       string
	Partitions []ProduceResponsePartitionV0
}

func (v *ProduceResponseTopicV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.Name)
	dst, _ = appendArray(dst, v.Partitions, false, false, func(d []byte, p ProduceResponsePartitionV0) []byte {
		return p.appendTo(d)
	})
	return dst
}

func (v *ProduceResponseTopicV0) readFrom(b *kbin.Reader) {
	v.Name = b.String()
	v.Partitions = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) ProduceResponsePartitionV0 {
		var p ProduceResponsePartitionV0
		p.readFrom(b)
		return p
	})
}

// ProduceResponseV0 is the classic-encoded Produce response.
type ProduceResponseV0 struct {
	Responses []ProduceResponseTopicV0
}

func (*ProduceResponseV0) Key() int16       { return APIKeyProduce }
func (*ProduceResponseV0) Version() int16   { return 0 }
func (*ProduceResponseV0) IsFlexible() bool { return false }

func (v *ProduceResponseV0) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Responses, false, false, func(d []byte, t ProduceResponseTopicV0) []byte {
		return t.appendTo(d)
	})
	return dst
}

func (v *ProduceResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Responses = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) ProduceResponseTopicV0 {
		var t ProduceResponseTopicV0
		t.readFrom(b)
		return t
	})
	return b.Complete()
}

// ProduceResponsePartitionV9 is ProduceResponsePartitionV0 plus the
// log-append-time, log-start-offset, and per-partition tagged-fields
// fields added over the API's lifetime.
type ProduceResponsePartitionV9 struct {
	Index           int32
	ErrorCode       int16
	BaseOffset      int64
	LogAppendTimeMs int64
	LogStartOffset  int64
	UnknownTags     UnknownTags
}

func (v *ProduceResponsePartitionV9) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.Index)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendInt64(dst, v.BaseOffset)
	dst = kbin.AppendInt64(dst, v.LogAppendTimeMs)
	dst = kbin.AppendInt64(dst, v.LogStartOffset)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ProduceResponsePartitionV9) readFrom(b *kbin.Reader) {
	v.Index = b.Int32()
	v.ErrorCode = b.Int16()
	v.BaseOffset = b.Int64()
	v.LogAppendTimeMs = b.Int64()
	v.LogStartOffset = b.Int64()
	v.UnknownTags = readUnknownTags(b)
}

// ProduceResponseTopicV9 is ProduceResponseTopicV0 with a compact array
// and tagged-fields section.
type ProduceResponseTopicV9 struct {
	Name        string
	Partitions  []ProduceResponsePartitionV9
	UnknownTags UnknownTags
}

func (v *ProduceResponseTopicV9) appendTo(dst []byte) []byte {
	dst = appendString(dst, v.Name, true)
	dst, _ = appendArray(dst, v.Partitions, true, false, func(d []byte, p ProduceResponsePartitionV9) []byte {
		return p.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ProduceResponseTopicV9) readFrom(b *kbin.Reader) {
	v.Name = readString(b, true)
	v.Partitions = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) ProduceResponsePartitionV9 {
		var p ProduceResponsePartitionV9
		p.readFrom(b)
		return p
	})
	v.UnknownTags = readUnknownTags(b)
}

// ProduceResponseV9 is the flexible-encoded Produce response.
type ProduceResponseV9 struct {
	Responses      []ProduceResponseTopicV9
	ThrottleTimeMs int32
	UnknownTags    UnknownTags
}

func (*ProduceResponseV9) Key() int16       { return APIKeyProduce }
func (*ProduceResponseV9) Version() int16   { return 9 }
func (*ProduceResponseV9) IsFlexible() bool { return true }

func (v *ProduceResponseV9) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *ProduceResponseV9) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *ProduceResponseV9) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Responses, true, false, func(d []byte, t ProduceResponseTopicV9) []byte {
		return t.appendTo(d)
	})
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ProduceResponseV9) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Responses = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) ProduceResponseTopicV9 {
		var t ProduceResponseTopicV9
		t.readFrom(b)
		return t
	})
	v.ThrottleTimeMs = b.Int32()
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
