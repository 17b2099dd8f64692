package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyFindCoordinator is the Kafka protocol API key for
// FindCoordinator.
const APIKeyFindCoordinator int16 = 10

// CoordinatorKey identifies what kind of coordinator a FindCoordinator
// request is locating.
type CoordinatorKey int8

const (
	CoordinatorKeyGroup         CoordinatorKey = 0
	CoordinatorKeyTransaction   CoordinatorKey = 1
)

// FindCoordinatorRequestV0 asks for the group coordinator of a single
// consumer group (v0 predates transactional coordinators, so it has
// no key-type field).
type FindCoordinatorRequestV0 struct {
	CoordinatorKey string
}

func (*FindCoordinatorRequestV0) Key() int16        { return APIKeyFindCoordinator }
func (*FindCoordinatorRequestV0) Version() int16    { return 0 }
func (*FindCoordinatorRequestV0) IsFlexible() bool  { return false }

func (v *FindCoordinatorRequestV0) AppendTo(dst []byte) []byte {
	return kbin.AppendString(dst, v.CoordinatorKey)
}

func (v *FindCoordinatorRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.CoordinatorKey = b.String()
	return b.Complete()
}

// FindCoordinatorRequestV3 is the flexible-encoded FindCoordinator
// request, generalized to locate either a group or transaction
// coordinator.
type FindCoordinatorRequestV3 struct {
	CoordinatorKey  string
	CoordinatorType int8
	UnknownTags     UnknownTags
}

func (*FindCoordinatorRequestV3) Key() int16       { return APIKeyFindCoordinator }
func (*FindCoordinatorRequestV3) Version() int16   { return 3 }
func (*FindCoordinatorRequestV3) IsFlexible() bool { return true }

func (v *FindCoordinatorRequestV3) AppendTo(dst []byte) []byte {
	dst = appendString(dst, v.CoordinatorKey, true)
	dst = kbin.AppendInt8(dst, v.CoordinatorType)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *FindCoordinatorRequestV3) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.CoordinatorKey = readString(b, true)
	v.CoordinatorType = b.Int8()
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// FindCoordinatorResponseV0 is the classic-encoded answer: the
// coordinator broker's id, host, and port.
type FindCoordinatorResponseV0 struct {
	ErrorCode int16
	NodeID    int32
	Host      string
	Port      int32
}

func (*FindCoordinatorResponseV0) Key() int16       { return APIKeyFindCoordinator }
func (*FindCoordinatorResponseV0) Version() int16   { return 0 }
func (*FindCoordinatorResponseV0) IsFlexible() bool { return false }

func (v *FindCoordinatorResponseV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendInt32(dst, v.NodeID)
	dst = kbin.AppendString(dst, v.Host)
	dst = kbin.AppendInt32(dst, v.Port)
	return dst
}

func (v *FindCoordinatorResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ErrorCode = b.Int16()
	v.NodeID = b.Int32()
	v.Host = b.String()
	v.Port = b.Int32()
	return b.Complete()
}

// FindCoordinatorResponseV3 is the flexible-encoded answer, adding an
// error message and a throttle value.
type FindCoordinatorResponseV3 struct {
	ThrottleTimeMs int32
	ErrorCode      int16
	ErrorMessage   *string
	NodeID         int32
	Host           string
	Port           int32
	UnknownTags    UnknownTags
}

func (*FindCoordinatorResponseV3) Key() int16       { return APIKeyFindCoordinator }
func (*FindCoordinatorResponseV3) Version() int16   { return 3 }
func (*FindCoordinatorResponseV3) IsFlexible() bool { return true }

func (v *FindCoordinatorResponseV3) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *FindCoordinatorResponseV3) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *FindCoordinatorResponseV3) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = appendNullableString(dst, v.ErrorMessage, true)
	dst = kbin.AppendInt32(dst, v.NodeID)
	dst = appendString(dst, v.Host, true)
	dst = kbin.AppendInt32(dst, v.Port)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *FindCoordinatorResponseV3) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.ErrorCode = b.Int16()
	v.ErrorMessage = readNullableString(b, true)
	v.NodeID = b.Int32()
	v.Host = readString(b, true)
	v.Port = b.Int32()
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
