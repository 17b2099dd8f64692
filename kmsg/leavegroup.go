package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyLeaveGroup is the Kafka protocol API key for LeaveGroup.
const APIKeyLeaveGroup int16 = 13

// LeaveGroupRequestV0 is the classic-encoded LeaveGroup request: a
// single member leaving voluntarily (v3+ generalizes this to a batch,
// see LeaveGroupRequestV4).
type LeaveGroupRequestV0 struct {
	GroupID  string
	MemberID string
}

func (*LeaveGroupRequestV0) Key() int16       { return APIKeyLeaveGroup }
func (*LeaveGroupRequestV0) Version() int16   { return 0 }
func (*LeaveGroupRequestV0) IsFlexible() bool { return false }

func (v *LeaveGroupRequestV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.GroupID)
	dst = kbin.AppendString(dst, v.MemberID)
	return dst
}

func (v *LeaveGroupRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = b.String()
	v.MemberID = b.String()
	return b.Complete()
}

// LeaveGroupRequestMemberV4 is one member in a batch departure.
type LeaveGroupRequestMemberV4 struct {
	MemberID        string
	GroupInstanceID *string
	UnknownTags     UnknownTags
}

func (v *LeaveGroupRequestMemberV4) appendTo(dst []byte) []byte {
	dst = appendString(dst, v.MemberID, true)
	dst = appendNullableString(dst, v.GroupInstanceID, true)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *LeaveGroupRequestMemberV4) readFrom(b *kbin.Reader) {
	v.MemberID = readString(b, true)
	v.GroupInstanceID = readNullableString(b, true)
	v.UnknownTags = readUnknownTags(b)
}

// LeaveGroupRequestV4 is the flexible-encoded LeaveGroup request,
// letting an administrator remove several static members at once.
type LeaveGroupRequestV4 struct {
	GroupID     string
	Members     []LeaveGroupRequestMemberV4
	UnknownTags UnknownTags
}

func (*LeaveGroupRequestV4) Key() int16       { return APIKeyLeaveGroup }
func (*LeaveGroupRequestV4) Version() int16   { return 4 }
func (*LeaveGroupRequestV4) IsFlexible() bool { return true }

func (v *LeaveGroupRequestV4) AppendTo(dst []byte) []byte {
	dst = appendString(dst, v.GroupID, true)
	dst, _ = appendArray(dst, v.Members, true, false, func(d []byte, m LeaveGroupRequestMemberV4) []byte {
		return m.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *LeaveGroupRequestV4) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = readString(b, true)
	v.Members = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) LeaveGroupRequestMemberV4 {
		var m LeaveGroupRequestMemberV4
		m.readFrom(b)
		return m
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// LeaveGroupResponseV0 is the classic-encoded LeaveGroup response.
type LeaveGroupResponseV0 struct {
	ErrorCode int16
}

func (*LeaveGroupResponseV0) Key() int16       { return APIKeyLeaveGroup }
func (*LeaveGroupResponseV0) Version() int16   { return 0 }
func (*LeaveGroupResponseV0) IsFlexible() bool { return false }

func (v *LeaveGroupResponseV0) AppendTo(dst []byte) []byte {
	return kbin.AppendInt16(dst, v.ErrorCode)
}

func (v *LeaveGroupResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ErrorCode = b.Int16()
	return b.Complete()
}

// LeaveGroupResponseMemberV4 is one member's individual departure
// result in a batch LeaveGroup response.
type LeaveGroupResponseMemberV4 struct {
	MemberID        string
	GroupInstanceID *string
	ErrorCode       int16
	UnknownTags     UnknownTags
}

func (v *LeaveGroupResponseMemberV4) appendTo(dst []byte) []byte {
	dst = appendString(dst, v.MemberID, true)
	dst = appendNullableString(dst, v.GroupInstanceID, true)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *LeaveGroupResponseMemberV4) readFrom(b *kbin.Reader) {
	v.MemberID = readString(b, true)
	v.GroupInstanceID = readNullableString(b, true)
	v.ErrorCode = b.Int16()
	v.UnknownTags = readUnknownTags(b)
}

// LeaveGroupResponseV4 is the flexible-encoded LeaveGroup response.
type LeaveGroupResponseV4 struct {
	ThrottleTimeMs int32
	ErrorCode      int16
	Members        []LeaveGroupResponseMemberV4
	UnknownTags    UnknownTags
}

func (*LeaveGroupResponseV4) Key() int16       { return APIKeyLeaveGroup }
func (*LeaveGroupResponseV4) Version() int16   { return 4 }
func (*LeaveGroupResponseV4) IsFlexible() bool { return true }

func (v *LeaveGroupResponseV4) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *LeaveGroupResponseV4) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *LeaveGroupResponseV4) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst, _ = appendArray(dst, v.Members, true, false, func(d []byte, m LeaveGroupResponseMemberV4) []byte {
		return m.appendTo(d)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *LeaveGroupResponseV4) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.ErrorCode = b.Int16()
	v.Members = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) LeaveGroupResponseMemberV4 {
		var m LeaveGroupResponseMemberV4
		m.readFrom(b)
		return m
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
