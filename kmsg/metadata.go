package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyMetadata is the Kafka protocol API key for Metadata.
const APIKeyMetadata int16 = 3

// MetadataRequestV0 asks for metadata about the given topics; a nil
// TopicNames means "all topics the broker knows about" (the classic
// array's null representation, not an empty array).
type MetadataRequestV0 struct {
	TopicNames []string
}

func (*MetadataRequestV0) Key() int16       { return APIKeyMetadata }
func (*MetadataRequestV0) Version() int16   { return 0 }
func (*MetadataRequestV0) IsFlexible() bool { return false }

func (v *MetadataRequestV0) AppendTo(dst []byte) []byte {
	dst, err := appendArray(dst, v.TopicNames, false, true, func(d []byte, s string) []byte {
		return kbin.AppendString(d, s)
	})
	if err != nil {
		panic(err)
	}
	return dst
}

func (v *MetadataRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.TopicNames = readArray(b, false, true, defaultMaxArrayLen, func(b *kbin.Reader) string {
		return b.String()
	})
	return b.Complete()
}

// MetadataRequestTopicV9 names a topic by id, by name, or both — Kafka
// 3.x lets clients address topics by UUID once a topic has been
// described at least once.
type MetadataRequestTopicV9 struct {
	TopicID     [16]byte
	Name        *string
	UnknownTags UnknownTags
}

func (v *MetadataRequestTopicV9) appendTo(dst []byte) []byte {
	dst = kbin.AppendUuid(dst, v.TopicID)
	dst = appendNullableString(dst, v.Name, true)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *MetadataRequestTopicV9) readFrom(b *kbin.Reader) {
	v.TopicID = b.Uuid()
	v.Name = readNullableString(b, true)
	v.UnknownTags = readUnknownTags(b)
}

// MetadataRequestV9 is the flexible Metadata request: topics addressed
// by (id, name), plus the two boolean knobs added over the API's
// lifetime.
type MetadataRequestV9 struct {
	Topics                           []MetadataRequestTopicV9
	AllowAutoTopicCreation           bool
	IncludeTopicAuthorizedOperations bool
	UnknownTags                      UnknownTags
}

func (*MetadataRequestV9) Key() int16       { return APIKeyMetadata }
func (*MetadataRequestV9) Version() int16   { return 9 }
func (*MetadataRequestV9) IsFlexible() bool { return true }

func (v *MetadataRequestV9) AppendTo(dst []byte) []byte {
	dst, err := appendArray(dst, v.Topics, true, true, func(d []byte, t MetadataRequestTopicV9) []byte {
		return t.appendTo(d)
	})
	if err != nil {
		panic(err)
	}
	dst = kbin.AppendBool(dst, v.AllowAutoTopicCreation)
	dst = kbin.AppendBool(dst, v.IncludeTopicAuthorizedOperations)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *MetadataRequestV9) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Topics = readArray(b, true, true, defaultMaxArrayLen, func(b *kbin.Reader) MetadataRequestTopicV9 {
		var t MetadataRequestTopicV9
		t.readFrom(b)
		return t
	})
	v.AllowAutoTopicCreation = b.Bool()
	v.IncludeTopicAuthorizedOperations = b.Bool()
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// MetadataResponseBrokerV0 describes one broker in the cluster.
type MetadataResponseBrokerV0 struct {
	NodeID int32
	Host   string
	Port   int32
}

func (v *MetadataResponseBrokerV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.NodeID)
	dst = kbin.AppendString(dst, v.Host)
	dst = kbin.AppendInt32(dst, v.Port)
	return dst
}

func (v *MetadataResponseBrokerV0) readFrom(b *kbin.Reader) {
	v.NodeID = b.Int32()
	v.Host = b.String()
	v.Port = b.Int32()
}

// MetadataResponsePartitionV0 describes one partition of one topic.
type MetadataResponsePartitionV0 struct {
	ErrorCode      int16
	PartitionIndex int32
	LeaderID       int32
	ReplicaNodes   []int32
	IsrNodes       []int32
}

func (v *MetadataResponsePartitionV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst = kbin.AppendInt32(dst, v.LeaderID)
	dst, _ = appendArray(dst, v.ReplicaNodes, false, false, kbin.AppendInt32)
	dst, _ = appendArray(dst, v.IsrNodes, false, false, kbin.AppendInt32)
	return dst
}

func (v *MetadataResponsePartitionV0) readFrom(b *kbin.Reader) {
	v.ErrorCode = b.Int16()
	v.PartitionIndex = b.Int32()
	v.LeaderID = b.Int32()
	v.ReplicaNodes = readArray(b, false, false, defaultMaxArrayLen, (*kbin.Reader).Int32)
	v.IsrNodes = readArray(b, false, false, defaultMaxArrayLen, (*kbin.Reader).Int32)
}

// MetadataResponseTopicV0 describes one topic and all of its partitions.
type MetadataResponseTopicV0 struct {
	ErrorCode  int16
	Name       string
	Partitions []MetadataResponsePartitionV0
}

func (v *MetadataResponseTopicV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendString(dst, v.Name)
	dst, _ = appendArray(dst, v.Partitions, false, false, func(d []byte, p MetadataResponsePartitionV0) []byte {
		return p.appendTo(d)
	})
	return dst
}

func (v *MetadataResponseTopicV0) readFrom(b *kbin.Reader) {
	v.ErrorCode = b.Int16()
	v.Name = b.String()
	v.Partitions = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) MetadataResponsePartitionV0 {
		var p MetadataResponsePartitionV0
		p.readFrom(b)
		return p
	})
}

// MetadataResponseV0 is the classic-encoded Metadata response.
type MetadataResponseV0 struct {
	Brokers []MetadataResponseBrokerV0
	Topics  []MetadataResponseTopicV0
}

func (*MetadataResponseV0) Key() int16       { return APIKeyMetadata }
func (*MetadataResponseV0) Version() int16   { return 0 }
func (*MetadataResponseV0) IsFlexible() bool { return false }

func (v *MetadataResponseV0) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Brokers, false, false, func(d []byte, bk MetadataResponseBrokerV0) []byte {
		return bk.appendTo(d)
	})
	dst, _ = appendArray(dst, v.Topics, false, false, func(d []byte, t MetadataResponseTopicV0) []byte {
		return t.appendTo(d)
	})
	return dst
}

func (v *MetadataResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Brokers = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) MetadataResponseBrokerV0 {
		var bk MetadataResponseBrokerV0
		bk.readFrom(b)
		return bk
	})
	v.Topics = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) MetadataResponseTopicV0 {
		var t MetadataResponseTopicV0
		t.readFrom(b)
		return t
	})
	return b.Complete()
}

// MetadataResponseBrokerV9 is MetadataResponseBrokerV0 plus an optional
// rack and its own tagged-fields section.
type MetadataResponseBrokerV9 struct {
	NodeID      int32
	Host        string
	Port        int32
	Rack        *string
	UnknownTags UnknownTags
}

func (v *MetadataResponseBrokerV9) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.NodeID)
	dst = appendString(dst, v.Host, true)
	dst = kbin.AppendInt32(dst, v.Port)
	dst = appendNullableString(dst, v.Rack, true)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *MetadataResponseBrokerV9) readFrom(b *kbin.Reader) {
	v.NodeID = b.Int32()
	v.Host = readString(b, true)
	v.Port = b.Int32()
	v.Rack = readNullableString(b, true)
	v.UnknownTags = readUnknownTags(b)
}

// MetadataResponsePartitionV9 is MetadataResponsePartitionV0 with a
// leader epoch, offline replicas, compact arrays, and a tagged-fields
// section.
type MetadataResponsePartitionV9 struct {
	ErrorCode       int16
	PartitionIndex  int32
	LeaderID        int32
	LeaderEpoch     int32
	ReplicaNodes    []int32
	IsrNodes        []int32
	OfflineReplicas []int32
	UnknownTags     UnknownTags
}

func (v *MetadataResponsePartitionV9) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst = kbin.AppendInt32(dst, v.LeaderID)
	dst = kbin.AppendInt32(dst, v.LeaderEpoch)
	dst, _ = appendArray(dst, v.ReplicaNodes, true, false, kbin.AppendInt32)
	dst, _ = appendArray(dst, v.IsrNodes, true, false, kbin.AppendInt32)
	dst, _ = appendArray(dst, v.OfflineReplicas, true, false, kbin.AppendInt32)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *MetadataResponsePartitionV9) readFrom(b *kbin.Reader) {
	v.ErrorCode = b.Int16()
	v.PartitionIndex = b.Int32()
	v.LeaderID = b.Int32()
	v.LeaderEpoch = b.Int32()
	v.ReplicaNodes = readArray(b, true, false, defaultMaxArrayLen, (*kbin.Reader).Int32)
	v.IsrNodes = readArray(b, true, false, defaultMaxArrayLen, (*kbin.Reader).Int32)
	v.OfflineReplicas = readArray(b, true, false, defaultMaxArrayLen, (*kbin.Reader).Int32)
	v.UnknownTags = readUnknownTags(b)
}

// MetadataResponseTopicV9 is MetadataResponseTopicV0 plus a topic UUID,
// an internal-topic flag, authorized operations, and a tagged-fields
// section.
type MetadataResponseTopicV9 struct {
	ErrorCode             int16
	Name                  *string
	TopicID               [16]byte
	IsInternal            bool
	Partitions            []MetadataResponsePartitionV9
	TopicAuthorizedOps    int32
	UnknownTags           UnknownTags
}

func (v *MetadataResponseTopicV9) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = appendNullableString(dst, v.Name, true)
	dst = kbin.AppendUuid(dst, v.TopicID)
	dst = kbin.AppendBool(dst, v.IsInternal)
	dst, _ = appendArray(dst, v.Partitions, true, false, func(d []byte, p MetadataResponsePartitionV9) []byte {
		return p.appendTo(d)
	})
	dst = kbin.AppendInt32(dst, v.TopicAuthorizedOps)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *MetadataResponseTopicV9) readFrom(b *kbin.Reader) {
	v.ErrorCode = b.Int16()
	v.Name = readNullableString(b, true)
	v.TopicID = b.Uuid()
	v.IsInternal = b.Bool()
	v.Partitions = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) MetadataResponsePartitionV9 {
		var p MetadataResponsePartitionV9
		p.readFrom(b)
		return p
	})
	v.TopicAuthorizedOps = b.Int32()
	v.UnknownTags = readUnknownTags(b)
}

// MetadataResponseV9 is the flexible-encoded Metadata response.
type MetadataResponseV9 struct {
	ThrottleTimeMs int32
	Brokers        []MetadataResponseBrokerV9
	ClusterID      *string
	ControllerID   int32
	Topics         []MetadataResponseTopicV9
	UnknownTags    UnknownTags
}

func (*MetadataResponseV9) Key() int16       { return APIKeyMetadata }
func (*MetadataResponseV9) Version() int16   { return 9 }
func (*MetadataResponseV9) IsFlexible() bool { return true }

func (v *MetadataResponseV9) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *MetadataResponseV9) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *MetadataResponseV9) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst, _ = appendArray(dst, v.Brokers, true, false, func(d []byte, bk MetadataResponseBrokerV9) []byte {
		return bk.appendTo(d)
	})
	dst = appendNullableString(dst, v.ClusterID, true)
	dst = kbin.AppendInt32(dst, v.ControllerID)
	dst, _ = appendArray(dst, v.Topics, true, false, func(d []byte, t MetadataResponseTopicV9) []byte {
		return t.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *MetadataResponseV9) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.Brokers = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) MetadataResponseBrokerV9 {
		var bk MetadataResponseBrokerV9
		bk.readFrom(b)
		return bk
	})
	v.ClusterID = readNullableString(b, true)
	v.ControllerID = b.Int32()
	v.Topics = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) MetadataResponseTopicV9 {
		var t MetadataResponseTopicV9
		t.readFrom(b)
		return t
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
