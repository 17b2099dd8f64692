package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// APIKeySaslHandshake is the Kafka protocol API key for SaslHandshake.
//
// SaslHandshake is never flexible at any version: it is part of the
// bootstrap exchange a client uses before it has negotiated anything
// with the broker (including whether the broker even supports flexible
// versions), so both v0 and v1 stay classic-encoded forever. Don't
// generalize this one the way Metadata/Fetch/etc. pick up compact
// encoding past a threshold version -- there is no flexible SASL
// handshake version. This module implements the handshake negotiation
// envelope only; it does not perform a SASL exchange or carry
// credentials -- see SPEC_FULL.md's Non-goals.
const APIKeySaslHandshake int16 = 17

// SaslHandshakeRequestV0 proposes a SASL mechanism name (e.g. "PLAIN",
// "SCRAM-SHA-256", "GSSAPI").
type SaslHandshakeRequestV0 struct {
	Mechanism string
}

func (*SaslHandshakeRequestV0) Key() int16       { return APIKeySaslHandshake }
func (*SaslHandshakeRequestV0) Version() int16   { return 0 }
func (*SaslHandshakeRequestV0) IsFlexible() bool { return false }

func (v *SaslHandshakeRequestV0) AppendTo(dst []byte) []byte {
	return kbin.AppendString(dst, v.Mechanism)
}

func (v *SaslHandshakeRequestV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Mechanism = b.String()
	return b.Complete()
}

// SaslHandshakeRequestV1 is byte-for-byte identical to V0; v1 only
// changed which mechanisms a conforming broker must support, not the
// wire schema.
type SaslHandshakeRequestV1 struct {
	Mechanism string
}

func (*SaslHandshakeRequestV1) Key() int16       { return APIKeySaslHandshake }
func (*SaslHandshakeRequestV1) Version() int16   { return 1 }
func (*SaslHandshakeRequestV1) IsFlexible() bool { return false }

func (v *SaslHandshakeRequestV1) AppendTo(dst []byte) []byte {
	return kbin.AppendString(dst, v.Mechanism)
}

func (v *SaslHandshakeRequestV1) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.Mechanism = b.String()
	return b.Complete()
}

// SaslHandshakeResponseV0 tells the client whether its proposed
// mechanism was accepted and, if not, which mechanisms the broker does
// support.
type SaslHandshakeResponseV0 struct {
	ErrorCode         int16
	EnabledMechanisms []string
}

func (*SaslHandshakeResponseV0) Key() int16       { return APIKeySaslHandshake }
func (*SaslHandshakeResponseV0) Version() int16   { return 0 }
func (*SaslHandshakeResponseV0) IsFlexible() bool { return false }

func (v *SaslHandshakeResponseV0) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst, _ = appendArray(dst, v.EnabledMechanisms, false, false, kbin.AppendString)
	return dst
}

func (v *SaslHandshakeResponseV0) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ErrorCode = b.Int16()
	v.EnabledMechanisms = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) string { return b.String() })
	return b.Complete()
}

// SaslHandshakeResponseV1 is schema-identical to V0.
type SaslHandshakeResponseV1 struct {
	ErrorCode         int16
	EnabledMechanisms []string
}

func (*SaslHandshakeResponseV1) Key() int16       { return APIKeySaslHandshake }
func (*SaslHandshakeResponseV1) Version() int16   { return 1 }
func (*SaslHandshakeResponseV1) IsFlexible() bool { return false }

func (v *SaslHandshakeResponseV1) AppendTo(dst []byte) []byte {
	dst = kbin.AppendInt16(dst, v.ErrorCode)
	dst, _ = appendArray(dst, v.EnabledMechanisms, false, false, kbin.AppendString)
	return dst
}

func (v *SaslHandshakeResponseV1) ReadFrom(src []byte) error {
	b := kbin.NewReader(src)
	v.ErrorCode = b.Int16()
	v.EnabledMechanisms = readArray(b, false, false, defaultMaxArrayLen, func(b *kbin.Reader) string { return b.String() })
	return b.Complete()
}
