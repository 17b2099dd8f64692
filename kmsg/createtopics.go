package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyCreateTopics is the Kafka protocol API key for CreateTopics.
const APIKeyCreateTopics int16 = 19

// CreateTopicsRequestReplicaAssignmentV0 pins one partition's replica
// set explicitly, bypassing the broker's own placement algorithm.
type CreateTopicsRequestReplicaAssignmentV0 struct {
	PartitionIndex int32
	BrokerIDs      []int32
}

func (v *CreateTopicsRequestReplicaAssignmentV0) appendTo(dst []byte, flexible bool) []byte {
	dst = kbin.AppendInt32(dst, v.PartitionIndex)
	dst, _ = appendArray(dst, v.BrokerIDs, flexible, false, kbin.AppendInt32)
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *CreateTopicsRequestReplicaAssignmentV0) readFrom(b *kbin.Reader, flexible bool) {
	v.PartitionIndex = b.Int32()
	v.BrokerIDs = readArray(b, flexible, false, defaultMaxArrayLen, (*kbin.Reader).Int32)
	if flexible {
		readUnknownTags(b)
	}
}

// CreateTopicsRequestConfigV0 is one key/value topic-config override.
type CreateTopicsRequestConfigV0 struct {
	Name  string
	Value *string
}

func (v *CreateTopicsRequestConfigV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.Name, flexible)
	dst = appendNullableString(dst, v.Value, flexible)
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *CreateTopicsRequestConfigV0) readFrom(b *kbin.Reader, flexible bool) {
	v.Name = readString(b, flexible)
	v.Value = readNullableString(b, flexible)
	if flexible {
		readUnknownTags(b)
	}
}

// CreateTopicsRequestTopicV0 describes one topic to create.
type CreateTopicsRequestTopicV0 struct {
	Name              string
	NumPartitions     int32
	ReplicationFactor int16
	Assignments       []CreateTopicsRequestReplicaAssignmentV0
	Configs           []CreateTopicsRequestConfigV0
	UnknownTags       UnknownTags
}

func (v *CreateTopicsRequestTopicV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.Name, flexible)
	dst = kbin.AppendInt32(dst, v.NumPartitions)
	dst = kbin.AppendInt16(dst, v.ReplicationFactor)
	dst, _ = appendArray(dst, v.Assignments, flexible, false, func(d []byte, a CreateTopicsRequestReplicaAssignmentV0) []byte {
		return a.appendTo(d, flexible)
	})
	dst, _ = appendArray(dst, v.Configs, flexible, false, func(d []byte, c CreateTopicsRequestConfigV0) []byte {
		return c.appendTo(d, flexible)
	})
	if flexible {
		dst = mustAppendTagSection(dst, nil, v.UnknownTags)
	}
	return dst
}

func (v *CreateTopicsRequestTopicV0) readFrom(b *kbin.Reader, flexible bool) {
	v.Name = readString(b, flexible)
	v.NumPartitions = b.Int32()
	v.ReplicationFactor = b.Int16()
	v.Assignments = readArray(b, flexible, false, defaultMaxArrayLen, func(b *kbin.Reader) CreateTopicsRequestReplicaAssignmentV0 {
		var a CreateTopicsRequestReplicaAssignmentV0
		a.readFrom(b, flexible)
		return a
	})
	v.Configs = readArray(b, flexible, false, defaultMaxArrayLen, func(b *kbin.Reader) CreateTopicsRequestConfigV0 {
		var c CreateTopicsRequestConfigV0
		c.readFrom(b, flexible)
		return c
	})
	if flexible {
		v.UnknownTags = readUnknownTags(b)
	}
}

// CreateTopicsRequestV0 is the classic-encoded CreateTopics request.
type CreateTopicsRequestV0 struct {
	Topics    []CreateTopicsRequestTopicV0
	TimeoutMs int32
}

func (*CreateTopicsRequestV0) Key() int16       { return APIKeyCreateTopics }
func (*CreateTopicsRequestV0) Version() int16   { return 0 }
func (*CreateTopicsRequestV0) IsFlexible() bool { return false }

func (v *CreateTopicsRequestV0) Timeout() int32      { return v.TimeoutMs }
func (v *CreateTopicsRequestV0) SetTimeout(ms int32) { v.TimeoutMs = ms }

func (v *CreateTopicsRequestV0) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Topics, false, false, func(d []byte, t CreateTopicsRequestTopicV0) []byte {
		return t.appendTo(d, false)
	})
	dst = kbin.AppendInt32(dst, v.TimeoutMs)
	return dst
}

func (v *CreateTopicsRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Topics = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) CreateTopicsRequestTopicV0 {
		var t CreateTopicsRequestTopicV0
		t.readFrom(b, false)
		return t
	})
	v.TimeoutMs = b.Int32()
	return b.Complete()
}

// CreateTopicsRequestV5 is the flexible-encoded CreateTopics request,
// adding a validate-only dry-run flag.
type CreateTopicsRequestV5 struct {
	Topics      []CreateTopicsRequestTopicV0
	TimeoutMs   int32
	ValidateOnly bool
	UnknownTags UnknownTags
}

func (*CreateTopicsRequestV5) Key() int16       { return APIKeyCreateTopics }
func (*CreateTopicsRequestV5) Version() int16   { return 5 }
func (*CreateTopicsRequestV5) IsFlexible() bool { return true }

func (v *CreateTopicsRequestV5) Timeout() int32      { return v.TimeoutMs }
func (v *CreateTopicsRequestV5) SetTimeout(ms int32) { v.TimeoutMs = ms }

func (v *CreateTopicsRequestV5) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Topics, true, false, func(d []byte, t CreateTopicsRequestTopicV0) []byte {
		return t.appendTo(d, true)
	})
	dst = kbin.AppendInt32(dst, v.TimeoutMs)
	dst = kbin.AppendBool(dst, v.ValidateOnly)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *CreateTopicsRequestV5) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Topics = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) CreateTopicsRequestTopicV0 {
		var t CreateTopicsRequestTopicV0
		t.readFrom(b, true)
		return t
	})
	v.TimeoutMs = b.Int32()
	v.ValidateOnly = b.Bool()
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// CreateTopicsResponseTopicV0 is the broker's per-topic result.
type CreateTopicsResponseTopicV0 struct {
	Name         string
	ErrorCode    int16
	ErrorMessage *string
	UnknownTags  UnknownTags
}

func (v *CreateTopicsResponseTopicV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.Name, flexible)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	if flexible {
		dst = appendNullableString(dst, v.ErrorMessage, true)
		dst = mustAppendTagSection(dst, nil, v.UnknownTags)
	}
	return dst
}

func (v *CreateTopicsResponseTopicV0) readFrom(b *kbin.Reader, flexible bool) {
	v.Name = readString(b, flexible)
	v.ErrorCode = b.Int16()
	if flexible {
		v.ErrorMessage = readNullableString(b, true)
		v.UnknownTags = readUnknownTags(b)
	}
}

// CreateTopicsResponseV0 is the classic-encoded CreateTopics response.
type CreateTopicsResponseV0 struct {
	Topics []CreateTopicsResponseTopicV0
}

func (*CreateTopicsResponseV0) Key() int16       { return APIKeyCreateTopics }
func (*CreateTopicsResponseV0) Version() int16   { return 0 }
func (*CreateTopicsResponseV0) IsFlexible() bool { return false }

func (v *CreateTopicsResponseV0) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Topics, false, false, func(d []byte, t CreateTopicsResponseTopicV0) []byte {
		return t.appendTo(d, false)
	})
	return dst
}

func (v *CreateTopicsResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Topics = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) CreateTopicsResponseTopicV0 {
		var t CreateTopicsResponseTopicV0
		t.readFrom(b, false)
		return t
	})
	return b.Complete()
}

// CreateTopicsResponseV5 is the flexible-encoded CreateTopics response.
type CreateTopicsResponseV5 struct {
	ThrottleTimeMs int32
	Topics         []CreateTopicsResponseTopicV0
	UnknownTags    UnknownTags
}

func (*CreateTopicsResponseV5) Key() int16       { return APIKeyCreateTopics }
func (*CreateTopicsResponseV5) Version() int16   { return 5 }
func (*CreateTopicsResponseV5) IsFlexible() bool { return true }

func (v *CreateTopicsResponseV5) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *CreateTopicsResponseV5) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *CreateTopicsResponseV5) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst, _ = appendArray(dst, v.Topics, true, false, func(d []byte, t CreateTopicsResponseTopicV0) []byte {
		return t.appendTo(d, true)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *CreateTopicsResponseV5) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.Topics = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) CreateTopicsResponseTopicV0 {
		var t CreateTopicsResponseTopicV0
		t.readFrom(b, true)
		return t
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
