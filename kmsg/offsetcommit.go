package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyOffsetCommit is the Kafka protocol API key for OffsetCommit.
const APIKeyOffsetCommit int16 = 8

// OffsetCommitRequestPartitionV0 commits one partition's consumed
// offset.
type OffsetCommitRequestPartitionV0 struct {
	PartitionIndex int32
	CommittedOffset int64
	CommittedMetadata *string
}

func (v *OffsetCommitRequestPartitionV0) appendTo(dst []byte, flexible bool) []byte {
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst = kbin.AppendInt64(dst, v.CommittedOffset)
	dst = appendNullableString(dst, v.CommittedMetadata, flexible)
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *OffsetCommitRequestPartitionV0) readFrom(b *kbin.Reader, flexible bool) {
	v.PartitionIndex = b.Int32()
	v.CommittedOffset = b.Int64()
	v.CommittedMetadata = readNullableString(b, flexible)
	if flexible {
		readUnknownTags(b)
	}
}

// OffsetCommitRequestTopicV0 groups one topic's partition commits.
type OffsetCommitRequestTopicV0 struct {
	Name       string
	Partitions []OffsetCommitRequestPartitionV0
}

func (v *OffsetCommitRequestTopicV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.Name, flexible)
	dst, _ = appendArray(dst, v.Partitions, flexible, false, func(d []byte, p OffsetCommitRequestPartitionV0) []byte {
		return p.appendTo(d, flexible)
	})
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *OffsetCommitRequestTopicV0) readFrom(b *kbin.Reader, flexible bool) {
	v.Name = readString(b, flexible)
	v.Partitions = readArray(b, flexible, false, defaultMaxArrayLen, func(b *kbin.Reader) OffsetCommitRequestPartitionV0 {
		var p OffsetCommitRequestPartitionV0
		p.readFrom(b, flexible)
		return p
	})
	if flexible {
		readUnknownTags(b)
	}
}

// OffsetCommitRequestV0 is the classic-encoded OffsetCommit request,
// from the era before group generation/member fencing existed.
type OffsetCommitRequestV0 struct {
	GroupID string
	Topics  []OffsetCommitRequestTopicV0
}

func (*OffsetCommitRequestV0) Key() int16       { return APIKeyOffsetCommit }
func (*OffsetCommitRequestV0) Version() int16   { return 0 }
func (*OffsetCommitRequestV0) IsFlexible() bool { return false }

func (v *OffsetCommitRequestV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.GroupID)
	dst, _ = appendArray(dst, v.Topics, false, false, func(d []byte, t OffsetCommitRequestTopicV0) []byte {
		return t.appendTo(d, false)
	})
	return dst
}

func (v *OffsetCommitRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = b.String()
	v.Topics = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) OffsetCommitRequestTopicV0 {
		var t OffsetCommitRequestTopicV0
		t.readFrom(b, false)
		return t
	})
	return b.Complete()
}

// OffsetCommitRequestV8 is the flexible-encoded OffsetCommit request,
// adding generation fencing for the consumer group protocol.
type OffsetCommitRequestV8 struct {
	GroupID         string
	GenerationID    int32
	MemberID        string
	GroupInstanceID *string
	Topics          []OffsetCommitRequestTopicV0
	UnknownTags     UnknownTags
}

func (*OffsetCommitRequestV8) Key() int16       { return APIKeyOffsetCommit }
func (*OffsetCommitRequestV8) Version() int16   { return 8 }
func (*OffsetCommitRequestV8) IsFlexible() bool { return true }

func (v *OffsetCommitRequestV8) AppendTo(dst []byte) []byte {
	dst = appendString(dst, v.GroupID, true)
	dst = kbin.AppendInt32(dst, v.GenerationID)
	dst = appendString(dst, v.MemberID, true)
	dst = appendNullableString(dst, v.GroupInstanceID, true)
	dst, _ = appendArray(dst, v.Topics, true, false, func(d []byte, t OffsetCommitRequestTopicV0) []byte {
		return t.appendTo(d, true)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *OffsetCommitRequestV8) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = readString(b, true)
	v.GenerationID = b.Int32()
	v.MemberID = readString(b, true)
	v.GroupInstanceID = readNullableString(b, true)
	v.Topics = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) OffsetCommitRequestTopicV0 {
		var t OffsetCommitRequestTopicV0
		t.readFrom(b, true)
		return t
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// OffsetCommitResponsePartitionV0 is the broker's per-partition commit
// result.
type OffsetCommitResponsePartitionV0 struct {
	PartitionIndex int32
	ErrorCode      int16
}

func (v *OffsetCommitResponsePartitionV0) appendTo(dst []byte, flexible bool) []byte {
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *OffsetCommitResponsePartitionV0) readFrom(b *kbin.Reader, flexible bool) {
	v.PartitionIndex = b.Int32()
	v.ErrorCode = b.Int16()
	if flexible {
		readUnknownTags(b)
	}
}

// OffsetCommitResponseTopicV0 groups one topic's partition results.
type OffsetCommitResponseTopicV0 struct {
	Name       string
	Partitions []OffsetCommitResponsePartitionV0
}

func (v *OffsetCommitResponseTopicV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.Name, flexible)
	dst, _ = appendArray(dst, v.Partitions, flexible, false, func(d []byte, p OffsetCommitResponsePartitionV0) []byte {
		return p.appendTo(d, flexible)
	})
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *OffsetCommitResponseTopicV0) readFrom(b *kbin.Reader, flexible bool) {
	v.Name = readString(b, flexible)
	v.Partitions = readArray(b, flexible, false, defaultMaxArrayLen, func(b *kbin.Reader) OffsetCommitResponsePartitionV0 {
		var p OffsetCommitResponsePartitionV0
		p.readFrom(b, flexible)
		return p
	})
	if flexible {
		readUnknownTags(b)
	}
}

// OffsetCommitResponseV0 is the classic-encoded OffsetCommit response.
type OffsetCommitResponseV0 struct {
	Topics []OffsetCommitResponseTopicV0
}

func (*OffsetCommitResponseV0) Key() int16       { return APIKeyOffsetCommit }
func (*OffsetCommitResponseV0) Version() int16   { return 0 }
func (*OffsetCommitResponseV0) IsFlexible() bool { return false }

func (v *OffsetCommitResponseV0) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Topics, false, false, func(d []byte, t OffsetCommitResponseTopicV0) []byte {
		return t.appendTo(d, false)
	})
	return dst
}

func (v *OffsetCommitResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Topics = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) OffsetCommitResponseTopicV0 {
		var t OffsetCommitResponseTopicV0
		t.readFrom(b, false)
		return t
	})
	return b.Complete()
}

// OffsetCommitResponseV8 is the flexible-encoded OffsetCommit response.
type OffsetCommitResponseV8 struct {
	ThrottleTimeMs int32
	Topics         []OffsetCommitResponseTopicV0
	UnknownTags    UnknownTags
}

func (*OffsetCommitResponseV8) Key() int16       { return APIKeyOffsetCommit }
func (*OffsetCommitResponseV8) Version() int16   { return 8 }
func (*OffsetCommitResponseV8) IsFlexible() bool { return true }

func (v *OffsetCommitResponseV8) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *OffsetCommitResponseV8) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *OffsetCommitResponseV8) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst, _ = appendArray(dst, v.Topics, true, false, func(d []byte, t OffsetCommitResponseTopicV0) []byte {
		return t.appendTo(d, true)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *OffsetCommitResponseV8) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.Topics = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) OffsetCommitResponseTopicV0 {
		var t OffsetCommitResponseTopicV0
		t.readFrom(b, true)
		return t
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
