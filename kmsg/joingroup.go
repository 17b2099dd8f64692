package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyJoinGroup is the Kafka protocol API key for JoinGroup.
const APIKeyJoinGroup int16 = 11

// JoinGroupRequestProtocolV0 is one candidate partition-assignment
// protocol a member offers, along with its serialized metadata (for
// example the StickyMemberMetadata/RangeAssignor payloads).
type JoinGroupRequestProtocolV0 struct {
	Name     string
	Metadata []byte
}

func (v *JoinGroupRequestProtocolV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.Name, flexible)
	dst = appendBytes(dst, v.Metadata, flexible)
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *JoinGroupRequestProtocolV0) readFrom(b *kbin.Reader, flexible bool) {
	v.Name = readString(b, flexible)
	v.Metadata = readBytes(b, flexible)
	if flexible {
		readUnknownTags(b)
	}
}

// JoinGroupRequestV0 is the classic-encoded JoinGroup request, from
// before static group membership (GroupInstanceID) existed.
type JoinGroupRequestV0 struct {
	GroupID        string
	SessionTimeoutMs int32
	MemberID       string
	ProtocolType   string
	Protocols      []JoinGroupRequestProtocolV0
}

func (*JoinGroupRequestV0) Key() int16       { return APIKeyJoinGroup }
func (*JoinGroupRequestV0) Version() int16   { return 0 }
func (*JoinGroupRequestV0) IsFlexible() bool { return false }

func (v *JoinGroupRequestV0) Timeout() int32      { return v.SessionTimeoutMs }
func (v *JoinGroupRequestV0) SetTimeout(ms int32) { v.SessionTimeoutMs = ms }

func (v *JoinGroupRequestV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.GroupID)
	dst = kbin.AppendInt32(dst, v.SessionTimeoutMs)
	dst = kbin.AppendString(dst, v.MemberID)
	dst = kbin.AppendString(dst, v.ProtocolType)
	dst, _ = appendArray(dst, v.Protocols, false, false, func(d []byte, p JoinGroupRequestProtocolV0) []byte {
		return p.appendTo(d, false)
	})
	return dst
}

func (v *JoinGroupRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = b.String()
	v.SessionTimeoutMs = b.Int32()
	v.MemberID = b.String()
	v.ProtocolType = b.String()
	v.Protocols = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) JoinGroupRequestProtocolV0 {
		var p JoinGroupRequestProtocolV0
		p.readFrom(b, false)
		return p
	})
	return b.Complete()
}

// JoinGroupRequestV6 is the flexible-encoded JoinGroup request, adding
// RebalanceTimeoutMs and static membership.
type JoinGroupRequestV6 struct {
	GroupID          string
	SessionTimeoutMs int32
	RebalanceTimeoutMs int32
	MemberID         string
	GroupInstanceID  *string
	ProtocolType     string
	Protocols        []JoinGroupRequestProtocolV0
	UnknownTags      UnknownTags
}

func (*JoinGroupRequestV6) Key() int16       { return APIKeyJoinGroup }
func (*JoinGroupRequestV6) Version() int16   { return 6 }
func (*JoinGroupRequestV6) IsFlexible() bool { return true }

func (v *JoinGroupRequestV6) Timeout() int32      { return v.SessionTimeoutMs }
func (v *JoinGroupRequestV6) SetTimeout(ms int32) { v.SessionTimeoutMs = ms }

func (v *JoinGroupRequestV6) AppendTo(dst []byte) []byte {
	dst = appendString(dst, v.GroupID, true)
	dst = kbin.AppendInt32(dst, v.SessionTimeoutMs)
	dst = kbin.AppendInt32(dst, v.RebalanceTimeoutMs)
	dst = appendString(dst, v.MemberID, true)
	dst = appendNullableString(dst, v.GroupInstanceID, true)
	dst = appendString(dst, v.ProtocolType, true)
	dst, _ = appendArray(dst, v.Protocols, true, false, func(d []byte, p JoinGroupRequestProtocolV0) []byte {
		return p.appendTo(d, true)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *JoinGroupRequestV6) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = readString(b, true)
	v.SessionTimeoutMs = b.Int32()
	v.RebalanceTimeoutMs = b.Int32()
	v.MemberID = readString(b, true)
	v.GroupInstanceID = readNullableString(b, true)
	v.ProtocolType = readString(b, true)
	v.Protocols = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) JoinGroupRequestProtocolV0 {
		var p JoinGroupRequestProtocolV0
		p.readFrom(b, true)
		return p
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// JoinGroupResponseMemberV0 is one group member's chosen-protocol
// metadata, returned only to the elected leader so it can compute the
// assignment.
type JoinGroupResponseMemberV0 struct {
	MemberID string
	Metadata []byte
}

func (v *JoinGroupResponseMemberV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.MemberID, flexible)
	dst = appendBytes(dst, v.Metadata, flexible)
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *JoinGroupResponseMemberV0) readFrom(b *kbin.Reader, flexible bool) {
	v.MemberID = readString(b, flexible)
	v.Metadata = readBytes(b, flexible)
	if flexible {
		readUnknownTags(b)
	}
}

// JoinGroupResponseV0 is the classic-encoded JoinGroup response.
type JoinGroupResponseV0 struct {
	ErrorCode    int16
	GenerationID int32
	ProtocolName string
	LeaderID     string
	MemberID     string
	Members      []JoinGroupResponseMemberV0
}

func (*JoinGroupResponseV0) Key() int16       { return APIKeyJoinGroup }
func (*JoinGroupResponseV0) Version() int16   { return 0 }
func (*JoinGroupResponseV0) IsFlexible() bool { return false }

func (v *JoinGroupResponseV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendInt32(dst, v.GenerationID)
	dst = kbin.AppendString(dst, v.ProtocolName)
	dst = kbin.AppendString(dst, v.LeaderID)
	dst = kbin.AppendString(dst, v.MemberID)
	dst, _ = appendArray(dst, v.Members, false, false, func(d []byte, m JoinGroupResponseMemberV0) []byte {
		return m.appendTo(d, false)
	})
	return dst
}

func (v *JoinGroupResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ErrorCode = b.Int16()
	v.GenerationID = b.Int32()
	v.ProtocolName = b.String()
	v.LeaderID = b.String()
	v.MemberID = b.String()
	v.Members = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) JoinGroupResponseMemberV0 {
		var m JoinGroupResponseMemberV0
		m.readFrom(b, false)
		return m
	})
	return b.Complete()
}

// JoinGroupResponseV6 is the flexible-encoded JoinGroup response.
type JoinGroupResponseV6 struct {
	ThrottleTimeMs int32
	ErrorCode      int16
	GenerationID   int32
	ProtocolType   *string
	ProtocolName   *string
	LeaderID       string
	MemberID       string
	Members        []JoinGroupResponseMemberV0
	UnknownTags    UnknownTags
}

func (*JoinGroupResponseV6) Key() int16       { return APIKeyJoinGroup }
func (*JoinGroupResponseV6) Version() int16   { return 6 }
func (*JoinGroupResponseV6) IsFlexible() bool { return true }

func (v *JoinGroupResponseV6) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *JoinGroupResponseV6) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *JoinGroupResponseV6) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendInt32(dst, v.GenerationID)
	dst = appendNullableString(dst, v.ProtocolType, true)
	dst = appendNullableString(dst, v.ProtocolName, true)
	dst = appendString(dst, v.LeaderID, true)
	dst = appendString(dst, v.MemberID, true)
	dst, _ = appendArray(dst, v.Members, true, false, func(d []byte, m JoinGroupResponseMemberV0) []byte {
		return m.appendTo(d, true)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *JoinGroupResponseV6) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.ErrorCode = b.Int16()
	v.GenerationID = b.Int32()
	v.ProtocolType = readNullableString(b, true)
	v.ProtocolName = readNullableString(b, true)
	v.LeaderID = readString(b, true)
	v.MemberID = readString(b, true)
	v.Members = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) JoinGroupResponseMemberV0 {
		var m JoinGroupResponseMemberV0
		m.readFrom(b, true)
		return m
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
