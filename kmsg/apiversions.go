package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeyApiVersions is the Kafka protocol API key for ApiVersions,
// the handshake request every client issues before any other RPC to
// learn which API versions the broker supports.
const APIKeyApiVersions int16 = 18

// ApiVersionsRequestV0 has no fields: it is simply "tell me your
// supported API versions."
type ApiVersionsRequestV0 struct{}

func (*ApiVersionsRequestV0) Key() int16       { return APIKeyApiVersions }
func (*ApiVersionsRequestV0) Version() int16   { return 0 }
func (*ApiVersionsRequestV0) IsFlexible() bool { return false }

func (v *ApiVersionsRequestV0) AppendTo(dst []byte) []byte { return dst }

func (v *ApiVersionsRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	return b.Complete()
}

// ApiVersionsRequestV3 adds the client's own software name/version, so
// brokers can log or gate behavior on client identity — and is
// flexible, per spec's worked example of the exception case: even
// though this body is compact-encoded, its *response* always travels
// under ResponseHeaderV0 (see registry.go).
type ApiVersionsRequestV3 struct {
	ClientSoftwareName    string
	ClientSoftwareVersion string
	UnknownTags           UnknownTags
}

func (*ApiVersionsRequestV3) Key() int16       { return APIKeyApiVersions }
func (*ApiVersionsRequestV3) Version() int16   { return 3 }
func (*ApiVersionsRequestV3) IsFlexible() bool { return true }

func (v *ApiVersionsRequestV3) AppendTo(dst []byte) []byte {
	dst = kbin.AppendCompactString(dst, v.ClientSoftwareName)
	dst = kbin.AppendCompactString(dst, v.ClientSoftwareVersion)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ApiVersionsRequestV3) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ClientSoftwareName = b.CompactString()
	v.ClientSoftwareVersion = b.CompactString()
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}

// ApiVersionsResponseApiKeyV0 is one (key, min, max) entry in an
// ApiVersionsResponseV0's ApiKeys array.
type ApiVersionsResponseApiKeyV0 struct {
	APIKey     int16
	MinVersion int16
	MaxVersion int16
}

func (v *ApiVersionsResponseApiKeyV0) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.APIKey)
	dst = kbin.AppendInt16(dst, v.MinVersion)
	dst = kbin.AppendInt16(dst, v.MaxVersion)
	return dst
}

func (v *ApiVersionsResponseApiKeyV0) readFrom(b *kbin.Reader) {
	v.APIKey = b.Int16()
	v.MinVersion = b.Int16()
	v.MaxVersion = b.Int16()
}

// ApiVersionsResponseV0 tells the client which (key, min, max) triples
// the broker supports.
type ApiVersionsResponseV0 struct {
	ErrorCode int16
	ApiKeys   []ApiVersionsResponseApiKeyV0
}

func (*ApiVersionsResponseV0) Key() int16       { return APIKeyApiVersions }
func (*ApiVersionsResponseV0) Version() int16   { return 0 }
func (*ApiVersionsResponseV0) IsFlexible() bool { return false }

func (v *ApiVersionsResponseV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = kbin.AppendArrayLen(dst, len(v.ApiKeys))
	for i := range v.ApiKeys {
		dst = v.ApiKeys[i].appendTo(dst)
	}
	return dst
}

func (v *ApiVersionsResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ErrorCode = b.Int16()
	v.ApiKeys = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) ApiVersionsResponseApiKeyV0 {
		var e ApiVersionsResponseApiKeyV0
		e.readFrom(b)
		return e
	})
	return b.Complete()
}

// ApiVersionsResponseApiKeyV3 is ApiVersionsResponseApiKeyV0 plus its
// own per-entry tagged-fields section (every nested record in a
// flexible struct gets one, per spec §4.5).
type ApiVersionsResponseApiKeyV3 struct {
	APIKey      int16
	MinVersion  int16
	MaxVersion  int16
	UnknownTags UnknownTags
}

func (v *ApiVersionsResponseApiKeyV3) appendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.APIKey)
	dst = kbin.AppendInt16(dst, v.MinVersion)
	dst = kbin.AppendInt16(dst, v.MaxVersion)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ApiVersionsResponseApiKeyV3) readFrom(b *kbin.Reader) {
	v.APIKey = b.Int16()
	v.MinVersion = b.Int16()
	v.MaxVersion = b.Int16()
	v.UnknownTags = readUnknownTags(b)
}

// ApiVersionsResponseV3 is the flexible-encoded ApiVersionsResponse: it
// adds ThrottleTimeMs (Kafka 2.0 made ApiVersions throttle-aware like
// every other response) and a trailing tagged-fields section, but its
// wire header is still ResponseHeaderV0 — see registry.go.
type ApiVersionsResponseV3 struct {
	ErrorCode      int16
	ApiKeys        []ApiVersionsResponseApiKeyV3
	ThrottleTimeMs int32
	UnknownTags    UnknownTags
}

func (*ApiVersionsResponseV3) Key() int16       { return APIKeyApiVersions }
func (*ApiVersionsResponseV3) Version() int16   { return 3 }
func (*ApiVersionsResponseV3) IsFlexible() bool { return true }

func (v *ApiVersionsResponseV3) Throttle() (int32, bool) { return v.ThrottleTimeMs, true }
func (v *ApiVersionsResponseV3) SetThrottle(ms int32)    { v.ThrottleTimeMs = ms }

func (v *ApiVersionsResponseV3) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst = appendArrayLen(dst, len(v.ApiKeys), true)
	for i := range v.ApiKeys {
		dst = v.ApiKeys[i].appendTo(dst)
	}
	dst = kbin.AppendInt32(dst, v.ThrottleTimeMs)
	return mustAppendTagSection(dst, nil, v.UnknownTags)
}

func (v *ApiVersionsResponseV3) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ErrorCode = b.Int16()
	v.ApiKeys = readArray(b, true, false, defaultMaxArrayLen, func(b *kbin.Reader) ApiVersionsResponseApiKeyV3 {
		var e ApiVersionsResponseApiKeyV3
		e.readFrom(b)
		return e
	})
	v.ThrottleTimeMs = b.Int32()
	v.UnknownTags = readUnknownTags(b)
	return b.Complete()
}
