package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyHeartbeat is the Kafka protocol API key for Heartbeat.
const APIKeyHeartbeat int16 = 12

// HeartbeatRequestV0 tells the group coordinator this member is still
// alive, between JoinGroup/SyncGroup rounds.
type HeartbeatRequestV0 struct {
	GroupID      string
	GenerationID int32
	MemberID     string
}

func (*HeartbeatRequestV0) Key() int16       { return APIKeyHeartbeat }
func (*HeartbeatRequestV0) Version() int16   { return 0 }
func (*HeartbeatRequestV0) IsFlexible() bool { return false }

func (v *HeartbeatRequestV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendString(dst, v.GroupID)
	dst = kbin.AppendInt32(dst, v.GenerationID)
	dst = kbin.AppendString(dst, v.MemberID)
	return dst
}

func (v *HeartbeatRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = b.String()
	v.GenerationID = b.Int32()
	v.MemberID = b.String()
	return b.Complete()
}

// HeartbeatRequestV4 is the flexible-encoded Heartbeat request, adding
// static membership.
type HeartbeatRequestV4 struct {
	GroupID         string
	GenerationID    int32
	MemberID        string
	GroupInstanceID *string
	UnknownTags     UnknownTags
}

func (*HeartbeatRequestV4) Key() int16       { return APIKeyHeartbeat }
func (*HeartbeatRequestV4) Version() int16   { return 4 }
func (*HeartbeatRequestV4) IsFlexible() bool { return true }

func (v *HeartbeatRequestV4) AppendTo(dst []byte) []byte {
	dst = appendString(dst, v.GroupID, true)
	dst = kbin.AppendInt32(dst, v.GenerationID)
	dst = appendString(dst, v.MemberID, true)
	dst = appendNullableString(dst, v.GroupInstanceID, true)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *HeartbeatRequestV4) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.GroupID = readString(b, true)
	v.GenerationID = b.Int32()
	v.MemberID = readString(b, true)
	v.GroupInstanceID = readNullableString(b, true)
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// HeartbeatResponseV0 signals whether the heartbeat was accepted;
// ErrorCode non-zero (REBALANCE_IN_PROGRESS in particular) tells the
// member to rejoin via JoinGroup.
type HeartbeatResponseV0 struct {
	ErrorCode int16
}

func (*HeartbeatResponseV0) Key() int16       { return APIKeyHeartbeat }
func (*HeartbeatResponseV0) Version() int16   { return 0 }
func (*HeartbeatResponseV0) IsFlexible() bool { return false }

func (v *HeartbeatResponseV0) AppendTo(dst []byte) []byte {
	return kbin.AppendInt16(dst, v.ErrorCode)
}

func (v *HeartbeatResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ErrorCode = b.Int16()
	return b.Complete()
}

// HeartbeatResponseV4 is the flexible-encoded Heartbeat response.
type HeartbeatResponseV4 struct {
	ThrottleTimeMs int32
	ErrorCode      int16
	UnknownTags    UnknownTags
}

func (*HeartbeatResponseV4) Key() int16       { return APIKeyHeartbeat }
func (*HeartbeatResponseV4) Version() int16   { return 4 }
func (*HeartbeatResponseV4) IsFlexible() bool { return true }

func (v *HeartbeatResponseV4) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *HeartbeatResponseV4) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *HeartbeatResponseV4) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *HeartbeatResponseV4) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.ErrorCode = b.Int16()
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
