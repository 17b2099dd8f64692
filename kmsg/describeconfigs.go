package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyDescribeConfigs is the Kafka protocol API key for
// DescribeConfigs.
const APIKeyDescribeConfigs int16 = 32

// ConfigResourceType identifies what kind of entity a config resource
// name refers to.
type ConfigResourceType int8

const (
	ConfigResourceTypeTopic  ConfigResourceType = 2
	ConfigResourceTypeBroker ConfigResourceType = 4
)

// DescribeConfigsRequestResourceV0 asks for a subset (or, if
// ConfigNames is nil, all) of one resource's configuration keys.
type DescribeConfigsRequestResourceV0 struct {
	ResourceType int8
	ResourceName string
	ConfigNames  []string
}

func (v *DescribeConfigsRequestResourceV0) appendTo(dst []byte, flexible bool) []byte {
	dst = kbin.AppendInt8(dst, v.ResourceType)
	dst = appendString(dst, v.ResourceName, flexible)
	dst, _ = appendArray(dst, v.ConfigNames, flexible, true, func(d []byte, s string) []byte {
		return appendString(d, s, flexible)
	})
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *DescribeConfigsRequestResourceV0) readFrom(b *kbin.Reader, flexible bool) {
	v.ResourceType = b.Int8()
	v.ResourceName = readString(b, flexible)
	v.ConfigNames = readArray(b, flexible, true, defaultMaxArrayLen, func(b *kbin.Reader) string {
		return readString(b, flexible)
	})
	if flexible {
		readUnknownTags(b)
	}
}

// DescribeConfigsRequestV0 is the classic-encoded DescribeConfigs
// request.
type DescribeConfigsRequestV0 struct {
	Resources []DescribeConfigsRequestResourceV0
}

func (*DescribeConfigsRequestV0) Key() int16       { return APIKeyDescribeConfigs }
func (*DescribeConfigsRequestV0) Version() int16   { return 0 }
func (*DescribeConfigsRequestV0) IsFlexible() bool { return false }

func (v *DescribeConfigsRequestV0) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Resources, false, false, func(d []byte, r DescribeConfigsRequestResourceV0) []byte {
		return r.appendTo(d, false)
	})
	return dst
}

func (v *DescribeConfigsRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Resources = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) DescribeConfigsRequestResourceV0 {
		var r DescribeConfigsRequestResourceV0
		r.readFrom(b, false)
		return r
	})
	return b.Complete()
}

// DescribeConfigsRequestV4 is the flexible-encoded DescribeConfigs
// request, adding the two boolean knobs controlling how much detail
// the broker includes per entry.
type DescribeConfigsRequestV4 struct {
	Resources                  []DescribeConfigsRequestResourceV0
	IncludeSynonyms             bool
	IncludeDocumentation        bool
	UnknownTags                 UnknownTags
}

func (*DescribeConfigsRequestV4) Key() int16       { return APIKeyDescribeConfigs }
func (*DescribeConfigsRequestV4) Version() int16   { return 4 }
func (*DescribeConfigsRequestV4) IsFlexible() bool { return true }

func (v *DescribeConfigsRequestV4) AppendTo(dst []byte) []byte {
	dst, _ = appendArray(dst, v.Resources, true, false, func(d []byte, r DescribeConfigsRequestResourceV0) []byte {
		return r.appendTo(d, true)
	})
	dst = kbin.AppendBool(dst, v.IncludeSynonyms)
	dst = kbin.AppendBool(dst, v.IncludeDocumentation)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *DescribeConfigsRequestV4) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Resources = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) DescribeConfigsRequestResourceV0 {
		var r DescribeConfigsRequestResourceV0
		r.readFrom(b, true)
		return r
	})
	v.IncludeSynonyms = b.Bool()
	v.IncludeDocumentation = b.Bool()
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// DescribeConfigsResponseEntryV0 is one (key, value) config entry,
// tagged with whether it was explicitly set, and whether reading it
// back requires broker-level describe-configs authorization (a
// sensitive value like a truststore password is marked Sensitive and
// its Value always comes back nil).
type DescribeConfigsResponseEntryV0 struct {
	Name         string
	Value        *string
	ReadOnly     bool
	IsDefault    bool
	Sensitive    bool
}

func (v *DescribeConfigsResponseEntryV0) appendTo(dst []byte, flexible bool) []byte {
	dst = appendString(dst, v.Name, flexible)
	dst = appendNullableString(dst, v.Value, flexible)
	dst = kbin.AppendBool(dst, v.ReadOnly)
	dst = kbin.AppendBool(dst, v.IsDefault)
	dst = kbin.AppendBool(dst, v.Sensitive)
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *DescribeConfigsResponseEntryV0) readFrom(b *kbin.Reader, flexible bool) {
	v.Name = readString(b, flexible)
	v.Value = readNullableString(b, flexible)
	v.ReadOnly = b.Bool()
	v.IsDefault = b.Bool()
	v.Sensitive = b.Bool()
	if flexible {
		readUnknownTags(b)
	}
}

// DescribeConfigsResponseResourceV0 is one resource's full describe
// result.
type DescribeConfigsResponseResourceV0 struct {
	ErrorCode    int16
	ErrorMessage *string
	ResourceType int8
	ResourceName string
	Configs      []DescribeConfigsResponseEntryV0
}

func (v *DescribeConfigsResponseResourceV0) appendTo(dst []byte, flexible bool) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = appendNullableString(dst, v.ErrorMessage, flexible)
	dst = kbin.AppendInt8(dst, v.ResourceType)
	dst = appendString(dst, v.ResourceName, flexible)
	dst, _ = appendArray(dst, v.Configs, flexible, false, func(d []byte, e DescribeConfigsResponseEntryV0) []byte {
		return e.appendTo(d, flexible)
	})
	if flexible {
		dst = mustAppendTagSection(dst, nil, UnknownTags{})
	}
	return dst
}

func (v *DescribeConfigsResponseResourceV0) readFrom(b *kbin.Reader, flexible bool) {
	v.ErrorCode = b.Int16()
	v.ErrorMessage = readNullableString(b, flexible)
	v.ResourceType = b.Int8()
	v.ResourceName = readString(b, flexible)
	v.Configs = readArray(b, flexible, false, defaultMaxArrayLen, func(b *kbin.Reader) DescribeConfigsResponseEntryV0 {
		var e DescribeConfigsResponseEntryV0
		e.readFrom(b, flexible)
		return e
	})
	if flexible {
		readUnknownTags(b)
	}
}

// DescribeConfigsResponseV0 is the classic-encoded DescribeConfigs
// response.
type DescribeConfigsResponseV0 struct {
	ThrottleTimeMs int32
	Resources      []DescribeConfigsResponseResourceV0
}

func (*DescribeConfigsResponseV0) Key() int16       { return APIKeyDescribeConfigs }
func (*DescribeConfigsResponseV0) Version() int16   { return 0 }
func (*DescribeConfigsResponseV0) IsFlexible() bool { return false }

func (v *DescribeConfigsResponseV0) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *DescribeConfigsResponseV0) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *DescribeConfigsResponseV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst, _ = appendArray(dst, v.Resources, false, false, func(d []byte, r DescribeConfigsResponseResourceV0) []byte {
		return r.appendTo(d, false)
	})
	return dst
}

func (v *DescribeConfigsResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.Resources = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) DescribeConfigsResponseResourceV0 {
		var r DescribeConfigsResponseResourceV0
		r.readFrom(b, false)
		return r
	})
	return b.Complete()
}

// DescribeConfigsResponseV4 is the flexible-encoded DescribeConfigs
// response.
type DescribeConfigsResponseV4 struct {
	ThrottleTimeMs int32
	Resources      []DescribeConfigsResponseResourceV0
	UnknownTags    UnknownTags
}

func (*DescribeConfigsResponseV4) Key() int16       { return APIKeyDescribeConfigs }
func (*DescribeConfigsResponseV4) Version() int16   { return 4 }
func (*DescribeConfigsResponseV4) IsFlexible() bool { return true }

func (v *DescribeConfigsResponseV4) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *DescribeConfigsResponseV4) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *DescribeConfigsResponseV4) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	dst, _ = appendArray(dst, v.Resources, true, false, func(d []byte, r DescribeConfigsResponseResourceV0) []byte {
		return r.appendTo(d, true)
	})
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *DescribeConfigsResponseV4) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ThrottleTimeMs = b.Int32()
	v.Resources = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) DescribeConfigsResponseResourceV0 {
		var r DescribeConfigsResponseResourceV0
		r.readFrom(b, true)
		return r
	})
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
