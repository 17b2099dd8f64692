package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeySyncGroup is the Kafka protocol API key for SyncGroup.
const APIKeySyncGroup int16 = 14

// SyncGroupRequestAssignmentV0 is the leader's computed assignment for
// one member, opaque bytes from this module's point of view (typically
// a StickyMemberMetadata-style payload).
type SyncGroupRequestAssignmentV0 struct {
	MemberID   string
	Assignment []byte
}

func (v *SyncGroupRequestAssignmentV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.MemberID, flexible)
	dst = appendBytes(dst, v.Assignment, flexible)
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *SyncGroupRequestAssignmentV0) readFrom(b *kbin.Reader, flexible bool) {
	v.MemberID = readString(b, flexible)
	v.Assignment = readBytes(b, flexible)
	if flexible {
		readUnknownTags(b)
	}
}

// SyncGroupRequestV0 is the classic-encoded SyncGroup request: every
// member sends one (with an empty Assignments slice unless it is the
// elected leader).
type SyncGroupRequestV0 struct {
	GroupID      string
	GenerationID int32
	MemberID     string
	Assignments  []SyncGroupRequestAssignmentV0
}

func (*SyncGroupRequestV0) Key() int16       { return APIKeySyncGroup }
func (*SyncGroupRequestV0) Version() int16   { return 0 }
func (*SyncGroupRequestV0) IsFlexible() bool { return false }

func (v *SyncGroupRequestV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.GroupID)
	dst = kbin.AppendInt32(dst, v.GenerationID)
	dst = kbin.AppendString(dst, v.MemberID)
	dst, _ = appendArray(dst, v.Assignments, false, false, func(d []byte, a SyncGroupRequestAssignmentV0) []byte {
		return a.appendTo(d, false)
	})
	return dst
}

func (v *SyncGroupRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = b.String()
	v.GenerationID = b.Int32()
	v.MemberID = b.String()
	v.Assignments = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) SyncGroupRequestAssignmentV0 {
		var a SyncGroupRequestAssignmentV0
		a.readFrom(b, false)
		return a
	})
	return b.Complete()
}

// SyncGroupRequestV4 is the flexible-encoded SyncGroup request, adding
// static membership and an explicit protocol type/name the broker
// validates against what JoinGroup negotiated.
type SyncGroupRequestV4 struct {
	GroupID         string
	GenerationID    int32
	MemberID        string
	GroupInstanceID *string
	ProtocolType    *string
	ProtocolName    *string
	Assignments     []SyncGroupRequestAssignmentV0
	UnknownTags     UnknownTags
}

func (*SyncGroupRequestV4) Key() int16       { return APIKeySyncGroup }
func (*SyncGroupRequestV4) Version() int16   { return 4 }
func (*SyncGroupRequestV4) IsFlexible() bool { return true }

func (v *SyncGroupRequestV4) AppendTo(dst []byte) []byte {
	dst = appendString(dst, v.GroupID, true)
	dst = kbin.AppendInt32(dst, v.GenerationID)
	dst = appendString(dst, v.MemberID, true)
	dst = appendNullableString(dst, v.GroupInstanceID, true)
	dst = appendNullableString(dst, v.ProtocolType, true)
	dst = appendNullableString(dst, v.ProtocolName, true)
	dst, _ = appendArray(dst, v.Assignments, true, false, func(d []byte, a SyncGroupRequestAssignmentV0) []byte {
		return a.appendTo(d, true)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *SyncGroupRequestV4) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = readString(b, true)
	v.GenerationID = b.Int32()
	v.MemberID = readString(b, true)
	v.GroupInstanceID = readNullableString(b, true)
	v.ProtocolType = readNullableString(b, true)
	v.ProtocolName = readNullableString(b, true)
	v.Assignments = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) SyncGroupRequestAssignmentV0 {
		var a SyncGroupRequestAssignmentV0
		a.readFrom(b, true)
		return a
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// SyncGroupResponseV0 hands every member its piece of the computed
// assignment.
type SyncGroupResponseV0 struct {
	ErrorCode  int16
	Assignment []byte
}

func (*SyncGroupResponseV0) Key() int16       { return APIKeySyncGroup }
func (*SyncGroupResponseV0) Version() int16   { return 0 }
func (*SyncGroupResponseV0) IsFlexible() bool { return false }

func (v *SyncGroupResponseV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	return appendBytes(dst, v.Assignment, false)
}

func (v *SyncGroupResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ErrorCode = b.Int16()
	v.Assignment = readBytes(b, false)
	return b.Complete()
}

// SyncGroupResponseV4 is the flexible-encoded SyncGroup response.
type SyncGroupResponseV4 struct {
	ThrottleTimeMs int32
	ErrorCode      int16
	ProtocolType   *string
	ProtocolName   *string
	Assignment     []byte
	UnknownTags    UnknownTags
}

func (*SyncGroupResponseV4) Key() int16       { return APIKeySyncGroup }
func (*SyncGroupResponseV4) Version() int16   { return 4 }
func (*SyncGroupResponseV4) IsFlexible() bool { return true }

func (v *SyncGroupResponseV4) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *SyncGroupResponseV4) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *SyncGroupResponseV4) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = appendNullableString(dst, v.ProtocolType, true)
	dst = appendNullableString(dst, v.ProtocolName, true)
	dst = appendBytes(dst, v.Assignment, true)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *SyncGroupResponseV4) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.ErrorCode = b.Int16()
	v.ProtocolType = readNullableString(b, true)
	v.ProtocolName = readNullableString(b, true)
	v.Assignment = readBytes(b, true)
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
