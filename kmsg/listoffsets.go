package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyListOffsets is the Kafka protocol API key for ListOffsets.
const APIKeyListOffsets int16 = 2

// ListOffsetsRequestPartitionV0 asks for the offset nearest Timestamp
// on one partition (-1 = latest, -2 = earliest).
type ListOffsetsRequestPartitionV0 struct {
	PartitionIndex int32
	Timestamp      int64
	MaxNumOffsets  int32
}

func (v *ListOffsetsRequestPartitionV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst = kbin.AppendInt64(dst, v.Timestamp)
	dst = kbin.AppendInt32(dst, v.MaxNumOffsets)
	return dst
}

func (v *ListOffsetsRequestPartitionV0) readFrom(b *kbin.Reader) {
	v.PartitionIndex = b.Int32()
	v.Timestamp = b.Int64()
	v.MaxNumOffsets = b.Int32()
}

// ListOffsetsRequestTopicV0 groups the partitions of one topic being
// queried.
type ListOffsetsRequestTopicV0 struct {
	Name       string
	Partitions []ListOffsetsRequestPartitionV0
}

func (v *ListOffsetsRequestTopicV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.Name)
	dst, _ = appendArray(dst, v.Partitions, false, false, func(d []byte, p ListOffsetsRequestPartitionV0) []byte {
		return p.appendTo(d)
	})
	return dst
}

func (v *ListOffsetsRequestTopicV0) readFrom(b *kbin.Reader) {
	v.Name = b.String()
	v.Partitions = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) ListOffsetsRequestPartitionV0 {
		var p ListOffsetsRequestPartitionV0
		p.readFrom(b)
		return p
	})
}

// ListOffsetsRequestV0 is the classic-encoded ListOffsets request.
// ReplicaID is always -1 for a normal client; see Fetch's Non-goal
// note on replica-only fields.
type ListOffsetsRequestV0 struct {
	ReplicaID int32
	Topics    []ListOffsetsRequestTopicV0
}

func (*ListOffsetsRequestV0) Key() int16       { return APIKeyListOffsets }
func (*ListOffsetsRequestV0) Version() int16   { return 0 }
func (*ListOffsetsRequestV0) IsFlexible() bool { return false }

func (v *ListOffsetsRequestV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ReplicaID)
	dst, _ = appendArray(dst, v.Topics, false, false, func(d []byte, t ListOffsetsRequestTopicV0) []byte {
		return t.appendTo(d)
	})
	return dst
}

func (v *ListOffsetsRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ReplicaID = b.Int32()
	v.Topics = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) ListOffsetsRequestTopicV0 {
		var t ListOffsetsRequestTopicV0
		t.readFrom(b)
		return t
	})
	return b.Complete()
}

// ListOffsetsRequestPartitionV6 drops MaxNumOffsets (each call now
// returns a single offset) and adds the leader-epoch fencing field.
type ListOffsetsRequestPartitionV6 struct {
	PartitionIndex     int32
	CurrentLeaderEpoch int32
	Timestamp          int64
	UnknownTags        UnknownTags
}

func (v *ListOffsetsRequestPartitionV6) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst = kbin.AppendInt32(dst, v.CurrentLeaderEpoch)
	dst = kbin.AppendInt64(dst, v.Timestamp)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ListOffsetsRequestPartitionV6) readFrom(b *kbin.Reader) {
	v.PartitionIndex = b.Int32()
	v.CurrentLeaderEpoch = b.Int32()
	v.Timestamp = b.Int64()
	v.UnknownTags = readUnknownTags(b)
}

// ListOffsetsRequestTopicV6 is the flexible-encoded per-topic group.
type ListOffsetsRequestTopicV6 struct {
	Name        string
	Partitions  []ListOffsetsRequestPartitionV6
	UnknownTags UnknownTags
}

func (v *ListOffsetsRequestTopicV6) appendTo(dst []byte) []byte {
	dst = appendString(dst, v.Name, true)
	dst, _ = appendArray(dst, v.Partitions, true, false, func(d []byte, p ListOffsetsRequestPartitionV6) []byte {
		return p.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ListOffsetsRequestTopicV6) readFrom(b *kbin.Reader) {
	v.Name = readString(b, true)
	v.Partitions = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) ListOffsetsRequestPartitionV6 {
		var p ListOffsetsRequestPartitionV6
		p.readFrom(b)
		return p
	})
	v.UnknownTags = readUnknownTags(b)
}

// ListOffsetsRequestV6 is the flexible-encoded ListOffsets request,
// adding the read-committed isolation level.
type ListOffsetsRequestV6 struct {
	ReplicaID      int32
	IsolationLevel int8
	Topics         []ListOffsetsRequestTopicV6
	UnknownTags    UnknownTags
}

func (*ListOffsetsRequestV6) Key() int16       { return APIKeyListOffsets }
func (*ListOffsetsRequestV6) Version() int16   { return 6 }
func (*ListOffsetsRequestV6) IsFlexible() bool { return true }

func (v *ListOffsetsRequestV6) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ReplicaID)
	dst = kbin.AppendInt8(dst, v.IsolationLevel)
	dst, _ = appendArray(dst, v.Topics, true, false, func(d []byte, t ListOffsetsRequestTopicV6) []byte {
		return t.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ListOffsetsRequestV6) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ReplicaID = b.Int32()
	v.IsolationLevel = b.Int8()
	v.Topics = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) ListOffsetsRequestTopicV6 {
		var t ListOffsetsRequestTopicV6
		t.readFrom(b)
		return t
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// ListOffsetsResponsePartitionV0 is one partition's answer: the
// offsets matching the query, newest first.
type ListOffsetsResponsePartitionV0 struct {
	PartitionIndex int32
	ErrorCode      int16
	OldStyleOffsets []int64
}

func (v *ListOffsetsResponsePartitionV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst, _ = appendArray(dst, v.OldStyleOffsets, false, false, kbin.AppendInt64)
	return dst
}

func (v *ListOffsetsResponsePartitionV0) readFrom(b *kbin.Reader) {
	v.PartitionIndex = b.Int32()
	v.ErrorCode = b.Int16()
	v.OldStyleOffsets = readArray(b, false, false, defaultMaxArrayLen, (*kbin.Reader).Int64)
}

// ListOffsetsResponseTopicV0 groups one topic's partition answers.
type ListOffsetsResponseTopicV0 struct {
	Name       string
	Partitions []ListOffsetsResponsePartitionV0
}

func (v *ListOffsetsResponseTopicV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.Name)
	dst, _ = appendArray(dst, v.Partitions, false, false, func(d []byte, p ListOffsetsResponsePartitionV0) []byte {
		return p.appendTo(d)
	})
	return dst
}

func (v *ListOffsetsResponseTopicV0) readFrom(b *kbin.Reader) {
	v.Name = b.String()
	v.Partitions = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) ListOffsetsResponsePartitionV0 {
		var p ListOffsetsResponsePartitionV0
		p.readFrom(b)
		return p
	})
}

// ListOffsetsResponseV0 is the classic-encoded ListOffsets response.
type ListOffsetsResponseV0 struct {
	Topics []ListOffsetsResponseTopicV0
}

func (*ListOffsetsResponseV0) Key() int16       { return APIKeyListOffsets }
func (*ListOffsetsResponseV0) Version() int16   { return 0 }
func (*ListOffsetsResponseV0) IsFlexible() bool { return false }

func (v *ListOffsetsResponseV0) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Topics, false, false, func(d []byte, t ListOffsetsResponseTopicV0) []byte {
		return t.appendTo(d)
	})
	return dst
}

func (v *ListOffsetsResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Topics = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) ListOffsetsResponseTopicV0 {
		var t ListOffsetsResponseTopicV0
		t.readFrom(b)
		return t
	})
	return b.Complete()
}

// ListOffsetsResponsePartitionV6 is the single-offset form every
// version since v1 uses, plus a timestamp and leader epoch.
type ListOffsetsResponsePartitionV6 struct {
	PartitionIndex int32
	ErrorCode      int16
	Timestamp      int64
	Offset         int64
	LeaderEpoch    int32
	UnknownTags    UnknownTags
}

func (v *ListOffsetsResponsePartitionV6) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendInt64(dst, v.Timestamp)
	dst = kbin.AppendInt64(dst, v.Offset)
	dst = kbin.AppendInt32(dst, v.LeaderEpoch)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ListOffsetsResponsePartitionV6) readFrom(b *kbin.Reader) {
	v.PartitionIndex = b.Int32()
	v.ErrorCode = b.Int16()
	v.Timestamp = b.Int64()
	v.Offset = b.Int64()
	v.LeaderEpoch = b.Int32()
	v.UnknownTags = readUnknownTags(b)
}

// ListOffsetsResponseTopicV6 is the flexible-encoded per-topic group.
type ListOffsetsResponseTopicV6 struct {
	Name        string
	Partitions  []ListOffsetsResponsePartitionV6
	UnknownTags UnknownTags
}

func (v *ListOffsetsResponseTopicV6) appendTo(dst []byte) []byte {
	dst = appendString(dst, v.Name, true)
	dst, _ = appendArray(dst, v.Partitions, true, false, func(d []byte, p ListOffsetsResponsePartitionV6) []byte {
		return p.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ListOffsetsResponseTopicV6) readFrom(b *kbin.Reader) {
	v.Name = readString(b, true)
	v.Partitions = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) ListOffsetsResponsePartitionV6 {
		var p ListOffsetsResponsePartitionV6
		p.readFrom(b)
		return p
	})
	v.UnknownTags = readUnknownTags(b)
}

// ListOffsetsResponseV6 is the flexible-encoded ListOffsets response.
type ListOffsetsResponseV6 struct {
	ThrottleTimeMs int32
	Topics         []ListOffsetsResponseTopicV6
	UnknownTags    UnknownTags
}

func (*ListOffsetsResponseV6) Key() int16       { return APIKeyListOffsets }
func (*ListOffsetsResponseV6) Version() int16   { return 6 }
func (*ListOffsetsResponseV6) IsFlexible() bool { return true }

func (v *ListOffsetsResponseV6) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *ListOffsetsResponseV6) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *ListOffsetsResponseV6) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst, _ = appendArray(dst, v.Topics, true, false, func(d []byte, t ListOffsetsResponseTopicV6) []byte {
		return t.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ListOffsetsResponseV6) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.Topics = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) ListOffsetsResponseTopicV6 {
		var t ListOffsetsResponseTopicV6
		t.readFrom(b)
		return t
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
