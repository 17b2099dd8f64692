package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyOffsetFetch is the Kafka protocol API key for OffsetFetch.
const APIKeyOffsetFetch int16 = 9

// OffsetFetchRequestTopicV0 names the partitions of one topic whose
// committed offsets are being fetched.
type OffsetFetchRequestTopicV0 struct {
	Name             string
	PartitionIndexes []int32
}

func (v *OffsetFetchRequestTopicV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.Name, flexible)
	dst, _ = appendArray(dst, v.PartitionIndexes, flexible, false, kbin.AppendInt32)
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *OffsetFetchRequestTopicV0) readFrom(b *kbin.Reader, flexible bool) {
	v.Name = readString(b, flexible)
	v.PartitionIndexes = readArray(b, flexible, false, defaultMaxArrayLen, (*kbin.Reader).Int32)
	if flexible {
		readUnknownTags(b)
	}
}

// OffsetFetchRequestV0 is the classic-encoded OffsetFetch request.
// Topics is non-nullable here: a nil Topics encodes as an empty array.
// The null-array form ("fetch every partition the group has committed")
// is only legal since v2.
type OffsetFetchRequestV0 struct {
	GroupID string
	Topics  []OffsetFetchRequestTopicV0
}

func (*OffsetFetchRequestV0) Key() int16       { return APIKeyOffsetFetch }
func (*OffsetFetchRequestV0) Version() int16   { return 0 }
func (*OffsetFetchRequestV0) IsFlexible() bool { return false }

func (v *OffsetFetchRequestV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.GroupID)
	dst, _ = appendArray(dst, v.Topics, false, false, func(d []byte, t OffsetFetchRequestTopicV0) []byte {
		return t.appendTo(d, false)
	})
	return dst
}

func (v *OffsetFetchRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = b.String()
	v.Topics = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) OffsetFetchRequestTopicV0 {
		var t OffsetFetchRequestTopicV0
		t.readFrom(b, false)
		return t
	})
	return b.Complete()
}

// OffsetFetchRequestV6 is the flexible-encoded OffsetFetch request; its
// Topics array is nullable starting here.
type OffsetFetchRequestV6 struct {
	GroupID     string
	Topics      []OffsetFetchRequestTopicV0
	UnknownTags UnknownTags
}

func (*OffsetFetchRequestV6) Key() int16       { return APIKeyOffsetFetch }
func (*OffsetFetchRequestV6) Version() int16   { return 6 }
func (*OffsetFetchRequestV6) IsFlexible() bool { return true }

func (v *OffsetFetchRequestV6) AppendTo(dst []byte) []byte {
	dst = appendString(dst, v.GroupID, true)
	dst, _ = appendArray(dst, v.Topics, true, true, func(d []byte, t OffsetFetchRequestTopicV0) []byte {
		return t.appendTo(d, true)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *OffsetFetchRequestV6) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = readString(b, true)
	v.Topics = readArray(b, true, true, defaultMaxArrayLen, func(b *kbin.Reader) OffsetFetchRequestTopicV0 {
		var t OffsetFetchRequestTopicV0
		t.readFrom(b, true)
		return t
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// OffsetFetchResponsePartitionV0 is one partition's committed offset.
type OffsetFetchResponsePartitionV0 struct {
	PartitionIndex  int32
	CommittedOffset int64
	Metadata        *string
	ErrorCode       int16
}

func (v *OffsetFetchResponsePartitionV0) appendTo(dst []byte, flexible bool) []byte {
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst = kbin.AppendInt64(dst, v.CommittedOffset)
	dst = appendNullableString(dst, v.Metadata, flexible)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *OffsetFetchResponsePartitionV0) readFrom(b *kbin.Reader, flexible bool) {
	v.PartitionIndex = b.Int32()
	v.CommittedOffset = b.Int64()
	v.Metadata = readNullableString(b, flexible)
	v.ErrorCode = b.Int16()
	if flexible {
		readUnknownTags(b)
	}
}

// OffsetFetchResponseTopicV0 groups one topic's partition answers.
type OffsetFetchResponseTopicV0 struct {
	Name       string
	Partitions []OffsetFetchResponsePartitionV0
}

func (v *OffsetFetchResponseTopicV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.Name, flexible)
	dst, _ = appendArray(dst, v.Partitions, flexible, false, func(d []byte, p OffsetFetchResponsePartitionV0) []byte {
		return p.appendTo(d, flexible)
	})
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *OffsetFetchResponseTopicV0) readFrom(b *kbin.Reader, flexible bool) {
	v.Name = readString(b, flexible)
	v.Partitions = readArray(b, flexible, false, defaultMaxArrayLen, func(b *kbin.Reader) OffsetFetchResponsePartitionV0 {
		var p OffsetFetchResponsePartitionV0
		p.readFrom(b, flexible)
		return p
	})
	if flexible {
		readUnknownTags(b)
	}
}

// OffsetFetchResponseV0 is the classic-encoded OffsetFetch response.
type OffsetFetchResponseV0 struct {
	Topics []OffsetFetchResponseTopicV0
}

func (*OffsetFetchResponseV0) Key() int16       { return APIKeyOffsetFetch }
func (*OffsetFetchResponseV0) Version() int16   { return 0 }
func (*OffsetFetchResponseV0) IsFlexible() bool { return false }

func (v *OffsetFetchResponseV0) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Topics, false, false, func(d []byte, t OffsetFetchResponseTopicV0) []byte {
		return t.appendTo(d, false)
	})
	return dst
}

func (v *OffsetFetchResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Topics = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) OffsetFetchResponseTopicV0 {
		var t OffsetFetchResponseTopicV0
		t.readFrom(b, false)
		return t
	})
	return b.Complete()
}

// OffsetFetchResponseV6 is the flexible-encoded OffsetFetch response.
type OffsetFetchResponseV6 struct {
	ThrottleTimeMs int32
	Topics         []OffsetFetchResponseTopicV0
	ErrorCode      int16
	UnknownTags    UnknownTags
}

func (*OffsetFetchResponseV6) Key() int16       { return APIKeyOffsetFetch }
func (*OffsetFetchResponseV6) Version() int16   { return 6 }
func (*OffsetFetchResponseV6) IsFlexible() bool { return true }

func (v *OffsetFetchResponseV6) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *OffsetFetchResponseV6) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *OffsetFetchResponseV6) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst, _ = appendArray(dst, v.Topics, true, false, func(d []byte, t OffsetFetchResponseTopicV0) []byte {
		return t.appendTo(d, true)
	})
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *OffsetFetchResponseV6) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.Topics = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) OffsetFetchResponseTopicV0 {
		var t OffsetFetchResponseTopicV0
		t.readFrom(b, true)
		return t
	})
	v.ErrorCode = b.Int16()
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
