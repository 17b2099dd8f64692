package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyDeleteTopics is the Kafka protocol API key for DeleteTopics.
const APIKeyDeleteTopics int16 = 20

// DeleteTopicsRequestV0 names the topics to delete by name.
type DeleteTopicsRequestV0 struct {
	TopicNames []string
	TimeoutMs  int32
}

func (*DeleteTopicsRequestV0) Key() int16       { return APIKeyDeleteTopics }
func (*DeleteTopicsRequestV0) Version() int16   { return 0 }
func (*DeleteTopicsRequestV0) IsFlexible() bool { return false }

func (v *DeleteTopicsRequestV0) Timeout() int32      { return v.TimeoutMs }
func (v *DeleteTopicsRequestV0) SetTimeout(ms int32) { v.TimeoutMs = ms }

func (v *DeleteTopicsRequestV0) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.TopicNames, false, false, kbin.AppendString)
	dst = kbin.AppendInt32(dst, v.TimeoutMs)
	return dst
}

func (v *DeleteTopicsRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.TopicNames = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) string { return b.String() })
	v.TimeoutMs = b.Int32()
	return b.Complete()
}

// DeleteTopicsRequestTopicV4 names one topic to delete by id or by
// name, mirroring MetadataRequestTopicV9's dual addressing.
type DeleteTopicsRequestTopicV4 struct {
	TopicID     [16]byte
	Name        *string
	UnknownTags UnknownTags
}

func (v *DeleteTopicsRequestTopicV4) appendTo(dst []byte) []byte {
	dst = kbin.AppendUuid(dst, v.TopicID)
	dst = appendNullableString(dst, v.Name, true)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *DeleteTopicsRequestTopicV4) readFrom(b *kbin.Reader) {
	v.TopicID = b.Uuid()
	v.Name = readNullableString(b, true)
	v.UnknownTags = readUnknownTags(b)
}

// DeleteTopicsRequestV4 is the flexible-encoded DeleteTopics request.
type DeleteTopicsRequestV4 struct {
	Topics      []DeleteTopicsRequestTopicV4
	TimeoutMs   int32
	UnknownTags UnknownTags
}

func (*DeleteTopicsRequestV4) Key() int16       { return APIKeyDeleteTopics }
func (*DeleteTopicsRequestV4) Version() int16   { return 4 }
func (*DeleteTopicsRequestV4) IsFlexible() bool { return true }

func (v *DeleteTopicsRequestV4) Timeout() int32      { return v.TimeoutMs }
func (v *DeleteTopicsRequestV4) SetTimeout(ms int32) { v.TimeoutMs = ms }

func (v *DeleteTopicsRequestV4) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Topics, true, false, func(d []byte, t DeleteTopicsRequestTopicV4) []byte {
		return t.appendTo(d)
	})
	dst = kbin.AppendInt32(dst, v.TimeoutMs)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *DeleteTopicsRequestV4) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Topics = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) DeleteTopicsRequestTopicV4 {
		var t DeleteTopicsRequestTopicV4
		t.readFrom(b)
		return t
	})
	v.TimeoutMs = b.Int32()
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// DeleteTopicsResponseTopicV0 is the broker's per-topic deletion
// result.
type DeleteTopicsResponseTopicV0 struct {
	Name        string
	TopicID     [16]byte
	ErrorCode   int16
	ErrorMessage *string
	UnknownTags UnknownTags
}

func (v *DeleteTopicsResponseTopicV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.Name, flexible)
	if flexible {
		dst = kbin.AppendUuid(dst, v.TopicID)
	}
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	if flexible {
		dst = appendNullableString(dst, v.ErrorMessage, true)
		dst = mustAppendTagSection(dst, nil, v.UnknownTags)
	}
	return dst
}

func (v *DeleteTopicsResponseTopicV0) readFrom(b *kbin.Reader, flexible bool) {
	v.Name = readString(b, flexible)
	if flexible {
		v.TopicID = b.Uuid()
	}
	v.ErrorCode = b.Int16()
	if flexible {
		v.ErrorMessage = readNullableString(b, true)
		v.UnknownTags = readUnknownTags(b)
	}
}

// DeleteTopicsResponseV0 is the classic-encoded DeleteTopics response.
type DeleteTopicsResponseV0 struct {
	Responses []DeleteTopicsResponseTopicV0
}

func (*DeleteTopicsResponseV0) Key() int16       { return APIKeyDeleteTopics }
func (*DeleteTopicsResponseV0) Version() int16   { return 0 }
func (*DeleteTopicsResponseV0) IsFlexible() bool { return false }

func (v *DeleteTopicsResponseV0) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Responses, false, false, func(d []byte, t DeleteTopicsResponseTopicV0) []byte {
		return t.appendTo(d, false)
	})
	return dst
}

func (v *DeleteTopicsResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Responses = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) DeleteTopicsResponseTopicV0 {
		var t DeleteTopicsResponseTopicV0
		t.readFrom(b, false)
		return t
	})
	return b.Complete()
}

// DeleteTopicsResponseV4 is the flexible-encoded DeleteTopics response.
type DeleteTopicsResponseV4 struct {
	ThrottleTimeMs int32
	Responses      []DeleteTopicsResponseTopicV0
	UnknownTags    UnknownTags
}

func (*DeleteTopicsResponseV4) Key() int16       { return APIKeyDeleteTopics }
func (*DeleteTopicsResponseV4) Version() int16   { return 4 }
func (*DeleteTopicsResponseV4) IsFlexible() bool { return true }

func (v *DeleteTopicsResponseV4) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *DeleteTopicsResponseV4) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *DeleteTopicsResponseV4) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst, _ = appendArray(dst, v.Responses, true, false, func(d []byte, t DeleteTopicsResponseTopicV0) []byte {
		return t.appendTo(d, true)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *DeleteTopicsResponseV4) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.Responses = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) DeleteTopicsResponseTopicV0 {
		var t DeleteTopicsResponseTopicV0
		t.readFrom(b, true)
		return t
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
