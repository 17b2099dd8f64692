package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyFetch is the Kafka protocol API key for Fetch.
const APIKeyFetch int16 = 1

// FetchRequestPartitionV0 asks for records from one partition starting
// at FetchOffset.
type FetchRequestPartitionV0 struct {
	Partition   int32
	FetchOffset int64
	MaxBytes    int32
}

func (v *FetchRequestPartitionV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.Partition)
	dst = kbin.AppendInt64(dst, v.FetchOffset)
	dst = kbin.AppendInt32(dst, v.MaxBytes)
	return dst
}

func (v *FetchRequestPartitionV0) readFrom(b *kbin.Reader) {
	v.Partition = b.Int32()
	v.FetchOffset = b.Int64()
	v.MaxBytes = b.Int32()
}

// FetchRequestTopicV0 groups the partitions being fetched from one
// topic.
type FetchRequestTopicV0 struct {
	Topic      string
	Partitions []FetchRequestPartitionV0
}

func (v *FetchRequestTopicV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.Topic)
	dst, _ = appendArray(dst, v.Partitions, false, false, func(d []byte, p FetchRequestPartitionV0) []byte {
		return p.appendTo(d)
	})
	return dst
}

func (v *FetchRequestTopicV0) readFrom(b *kbin.Reader) {
	v.Topic = b.String()
	v.Partitions = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) FetchRequestPartitionV0 {
		var p FetchRequestPartitionV0
		p.readFrom(b)
		return p
	})
}

// FetchRequestV0 is the classic-encoded Fetch request. ReplicaID is
// always -1 for a normal consumer; this module never plays the broker
// side of inter-broker replication -- see SPEC_FULL.md's Non-goals.
type FetchRequestV0 struct {
	ReplicaID   int32
	MaxWaitMs   int32
	MinBytes    int32
	Topics      []FetchRequestTopicV0
}

func (*FetchRequestV0) Key() int16       { return APIKeyFetch }
func (*FetchRequestV0) Version() int16   { return 0 }
func (*FetchRequestV0) IsFlexible() bool { return false }

func (v *FetchRequestV0) Timeout() int32      { return v.MaxWaitMs }
func (v *FetchRequestV0) SetTimeout(ms int32) { v.MaxWaitMs = ms }

func (v *FetchRequestV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ReplicaID)
	dst = kbin.AppendInt32(dst, v.MaxWaitMs)
	dst = kbin.AppendInt32(dst, v.MinBytes)
	dst, _ = appendArray(dst, v.Topics, false, false, func(d []byte, t FetchRequestTopicV0) []byte {
		return t.appendTo(d)
	})
	return dst
}

func (v *FetchRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ReplicaID = b.Int32()
	v.MaxWaitMs = b.Int32()
	v.MinBytes = b.Int32()
	v.Topics = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) FetchRequestTopicV0 {
		var t FetchRequestTopicV0
		t.readFrom(b)
		return t
	})
	return b.Complete()
}

// FetchRequestPartitionV12 is FetchRequestPartitionV0 plus the fields
// added for incremental fetch sessions and log-truncation detection.
type FetchRequestPartitionV12 struct {
	Partition          int32
	CurrentLeaderEpoch int32
	FetchOffset        int64
	LastFetchedEpoch   int32
	LogStartOffset     int64
	PartitionMaxBytes  int32
	UnknownTags        UnknownTags
}

func (v *FetchRequestPartitionV12) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.Partition)
	dst = kbin.AppendInt32(dst, v.CurrentLeaderEpoch)
	dst = kbin.AppendInt64(dst, v.FetchOffset)
	dst = kbin.AppendInt32(dst, v.LastFetchedEpoch)
	dst = kbin.AppendInt64(dst, v.LogStartOffset)
	dst = kbin.AppendInt32(dst, v.PartitionMaxBytes)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *FetchRequestPartitionV12) readFrom(b *kbin.Reader) {
	v.Partition = b.Int32()
	v.CurrentLeaderEpoch = b.Int32()
	v.FetchOffset = b.Int64()
	v.LastFetchedEpoch = b.Int32()
	v.LogStartOffset = b.Int64()
	v.PartitionMaxBytes = b.Int32()
	v.UnknownTags = readUnknownTags(b)
}

// FetchRequestTopicV12 is FetchRequestTopicV0 addressed by topic id
// instead of name, per Kafka 3.x's flexible Fetch schema.
type FetchRequestTopicV12 struct {
	TopicID     [16]byte
	Partitions  []FetchRequestPartitionV12
	UnknownTags UnknownTags
}

func (v *FetchRequestTopicV12) appendTo(dst []byte) []byte {
	dst = kbin.AppendUuid(dst, v.TopicID)
	dst, _ = appendArray(dst, v.Partitions, true, false, func(d []byte, p FetchRequestPartitionV12) []byte {
		return p.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *FetchRequestTopicV12) readFrom(b *kbin.Reader) {
	v.TopicID = b.Uuid()
	v.Partitions = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) FetchRequestPartitionV12 {
		var p FetchRequestPartitionV12
		p.readFrom(b)
		return p
	})
	v.UnknownTags = readUnknownTags(b)
}

// FetchRequestV12 is the flexible-encoded Fetch request, including the
// incremental-fetch-session fields (SessionID/SessionEpoch) Kafka added
// in v7 and carries forward.
type FetchRequestV12 struct {
	ReplicaID    int32
	MaxWaitMs    int32
	MinBytes     int32
	MaxBytes     int32
	IsolationLevel int8
	SessionID    int32
	SessionEpoch int32
	Topics       []FetchRequestTopicV12
	UnknownTags  UnknownTags
}

func (*FetchRequestV12) Key() int16       { return APIKeyFetch }
func (*FetchRequestV12) Version() int16   { return 12 }
func (*FetchRequestV12) IsFlexible() bool { return true }

func (v *FetchRequestV12) Timeout() int32      { return v.MaxWaitMs }
func (v *FetchRequestV12) SetTimeout(ms int32) { v.MaxWaitMs = ms }

func (v *FetchRequestV12) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ReplicaID)
	dst = kbin.AppendInt32(dst, v.MaxWaitMs)
	dst = kbin.AppendInt32(dst, v.MinBytes)
	dst = kbin.AppendInt32(dst, v.MaxBytes)
	dst = kbin.AppendInt8(dst, v.IsolationLevel)
	dst = kbin.AppendInt32(dst, v.SessionID)
	dst = kbin.AppendInt32(dst, v.SessionEpoch)
	dst, _ = appendArray(dst, v.Topics, true, false, func(d []byte, t FetchRequestTopicV12) []byte {
		return t.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *FetchRequestV12) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ReplicaID = b.Int32()
	v.MaxWaitMs = b.Int32()
	v.MinBytes = b.Int32()
	v.MaxBytes = b.Int32()
	v.IsolationLevel = b.Int8()
	v.SessionID = b.Int32()
	v.SessionEpoch = b.Int32()
	v.Topics = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) FetchRequestTopicV12 {
		var t FetchRequestTopicV12
		t.readFrom(b)
		return t
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// FetchResponsePartitionV0 is one partition's fetched data. As with
// Produce, the record batch itself is opaque bytes.
type FetchResponsePartitionV0 struct {
	PartitionIndex int32
	ErrorCode      int16
	HighWatermark  int64
	Records        []byte
}

func (v *FetchResponsePartitionV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendInt64(dst, v.HighWatermark)
	return appendNullableBytes(dst, v.Records, false)
}

func (v *FetchResponsePartitionV0) readFrom(b *kbin.Reader) {
	v.PartitionIndex = b.Int32()
	v.ErrorCode = b.Int16()
	v.HighWatermark = b.Int64()
	v.Records = readNullableBytes(b, false)
}

// FetchResponseTopicV0 groups one topic's fetched partitions.
type FetchResponseTopicV0 struct {
	Topic      string
	Partitions []FetchResponsePartitionV0
}

func (v *FetchResponseTopicV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.Topic)
	dst, _ = appendArray(dst, v.Partitions, false, false, func(d []byte, p FetchResponsePartitionV0) []byte {
		return p.appendTo(d)
	})
	return dst
}

func (v *FetchResponseTopicV0) readFrom(b *kbin.Reader) {
	v.Topic = b.String()
	v.Partitions = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) FetchResponsePartitionV0 {
		var p FetchResponsePartitionV0
		p.readFrom(b)
		return p
	})
}

// FetchResponseV0 is the classic-encoded Fetch response.
type FetchResponseV0 struct {
	Responses []FetchResponseTopicV0
}

func (*FetchResponseV0) Key() int16       { return APIKeyFetch }
func (*FetchResponseV0) Version() int16   { return 0 }
func (*FetchResponseV0) IsFlexible() bool { return false }

func (v *FetchResponseV0) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Responses, false, false, func(d []byte, t FetchResponseTopicV0) []byte {
		return t.appendTo(d)
	})
	return dst
}

func (v *FetchResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Responses = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) FetchResponseTopicV0 {
		var t FetchResponseTopicV0
		t.readFrom(b)
		return t
	})
	return b.Complete()
}

// FetchResponseAbortedTransactionV12 names one aborted producer epoch
// range a fetching consumer in read_committed mode must skip.
type FetchResponseAbortedTransactionV12 struct {
	ProducerID  int64
	FirstOffset int64
}

func (v *FetchResponseAbortedTransactionV12) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt64(dst, v.ProducerID)
	dst = kbin.AppendInt64(dst, v.FirstOffset)
	return mustAppendTagSection(dst, nil, UnknownTags{})
}

func (v *FetchResponseAbortedTransactionV12) readFrom(b *kbin.Reader) {
	v.ProducerID = b.Int64()
	v.FirstOffset = b.Int64()
	readUnknownTags(b)
}

// FetchResponsePartitionV12 is FetchResponsePartitionV0 plus the
// leader-change and aborted-transaction fields Kafka added for
// exactly-once and replica-fencing support.
type FetchResponsePartitionV12 struct {
	PartitionIndex       int32
	ErrorCode            int16
	HighWatermark        int64
	LastStableOffset     int64
	LogStartOffset       int64
	AbortedTransactions  []FetchResponseAbortedTransactionV12
	PreferredReadReplica int32
	Records              []byte
	UnknownTags          UnknownTags
}

func (v *FetchResponsePartitionV12) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendInt64(dst, v.HighWatermark)
	dst = kbin.AppendInt64(dst, v.LastStableOffset)
	dst = kbin.AppendInt64(dst, v.LogStartOffset)
	dst, _ = appendArray(dst, v.AbortedTransactions, true, true, func(d []byte, a FetchResponseAbortedTransactionV12) []byte {
		return a.appendTo(d)
	})
	dst = kbin.AppendInt32(dst, v.PreferredReadReplica)
	dst = appendNullableBytes(dst, v.Records, true)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *FetchResponsePartitionV12) readFrom(b *kbin.Reader) {
	v.PartitionIndex = b.Int32()
	v.ErrorCode = b.Int16()
	v.HighWatermark = b.Int64()
	v.LastStableOffset = b.Int64()
	v.LogStartOffset = b.Int64()
	v.AbortedTransactions = readArray(b, true, true, defaultMaxArrayLen, func(b *kbin.Reader) FetchResponseAbortedTransactionV12 {
		var a FetchResponseAbortedTransactionV12
		a.readFrom(b)
		return a
	})
	v.PreferredReadReplica = b.Int32()
	v.Records = readNullableBytes(b, true)
	v.UnknownTags = readUnknownTags(b)
}

// FetchResponseTopicV12 addresses its topic by id, matching
// FetchRequestTopicV12.
type FetchResponseTopicV12 struct {
	TopicID     [16]byte
	Partitions  []FetchResponsePartitionV12
	UnknownTags UnknownTags
}

func (v *FetchResponseTopicV12) appendTo(dst []byte) []byte {
	dst = kbin.AppendUuid(dst, v.TopicID)
	dst, _ = appendArray(dst, v.Partitions, true, false, func(d []byte, p FetchResponsePartitionV12) []byte {
		return p.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *FetchResponseTopicV12) readFrom(b *kbin.Reader) {
	v.TopicID = b.Uuid()
	v.Partitions = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) FetchResponsePartitionV12 {
		var p FetchResponsePartitionV12
		p.readFrom(b)
		return p
	})
	v.UnknownTags = readUnknownTags(b)
}

// FetchResponseV12 is the flexible-encoded Fetch response.
type FetchResponseV12 struct {
	ThrottleTimeMs int32
	ErrorCode      int16
	SessionID      int32
	Responses      []FetchResponseTopicV12
	UnknownTags    UnknownTags
}

func (*FetchResponseV12) Key() int16       { return APIKeyFetch }
func (*FetchResponseV12) Version() int16   { return 12 }
func (*FetchResponseV12) IsFlexible() bool { return true }

func (v *FetchResponseV12) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *FetchResponseV12) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *FetchResponseV12) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendInt32(dst, v.SessionID)
	dst, _ = appendArray(dst, v.Responses, true, false, func(d []byte, t FetchResponseTopicV12) []byte {
		return t.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *FetchResponseV12) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.ErrorCode = b.Int16()
	v.SessionID = b.Int32()
	v.Responses = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) FetchResponseTopicV12 {
		var t FetchResponseTopicV12
		t.readFrom(b)
		return t
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
