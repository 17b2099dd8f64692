package kmsg

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ivanyu/kafka-protocol/internal/kbin"
	"github.com/ivanyu/kafka-protocol/klog"
	"github.com/ivanyu/kafka-protocol/kmetrics"
)

// maxFrameLen bounds the length prefix accepted by ReadFrame. Kafka
// brokers reject frames above 100 MiB by default; we use the same
// order of magnitude as a sanity bound against a corrupt or hostile
// length prefix driving an unbounded allocation (spec §4.7/§8).
const maxFrameLen = 100 << 20

// FramingOpt configures the optional diagnostics (klog.Logger,
// kmetrics.Hooks) the framing helpers below emit through. Both are
// no-ops when not supplied, mirroring Limits/LimitsOpt's
// functional-option shape in interface.go.
type FramingOpt interface{ apply(*framingConfig) }

type framingConfig struct {
	logger klog.Logger
	hooks  *kmetrics.Hooks
}

type framingOpt struct{ fn func(*framingConfig) }

func (o framingOpt) apply(c *framingConfig) { o.fn(c) }

// WithLogger attaches a klog.Logger the framing helpers log frame
// sizes, API names, and correlation ids through.
func WithLogger(l klog.Logger) FramingOpt {
	return framingOpt{func(c *framingConfig) { c.logger = l }}
}

// WithHooks attaches a *kmetrics.Hooks the framing helpers observe
// encoded/decoded byte counts and decode errors through. A nil Hooks
// is always safe to pass; every Observe* call is then a no-op.
func WithHooks(h *kmetrics.Hooks) FramingOpt {
	return framingOpt{func(c *framingConfig) { c.hooks = h }}
}

func newFramingConfig(opts []FramingOpt) framingConfig {
	c := framingConfig{logger: klog.Nop}
	for _, o := range opts {
		o.apply(&c)
	}
	return c
}

// AppendRequest writes one full wire frame for req — a 4-byte length
// placeholder, the request header for headerVersion, the request body,
// then the real length back-patched over the placeholder — exactly the
// sequence spec §4.7 and scenario 5 describe. The header's APIKey,
// APIVersion, and CorrelationID are taken from hdr as given; callers
// build hdr via NewRequestHeader.
func AppendRequest(dst []byte, hdr Header, req Request, opts ...FramingOpt) []byte {
	cfg := newFramingConfig(opts)
	lenPos := len(dst)
	dst = append(dst, 0, 0, 0, 0)
	payloadStart := len(dst)
	dst = hdr.AppendTo(dst)
	dst = req.AppendTo(dst)
	n := len(dst) - payloadStart
	binary.BigEndian.PutUint32(dst[lenPos:lenPos+4], uint32(n))
	api := APIName(req.Key())
	cfg.logger.Log(klog.LogLevelDebug, "appended request frame", "api", api, "version", req.Version(), "bytes", n)
	cfg.hooks.ObserveEncoded(api, n)
	return dst
}

// NewRequestHeader builds the correct header value for headerVersion (0,
// 1, or 2, as returned by RequestHeaderVersion), panicking on
// any other value since that would be a registry bug, not a caller
// mistake reachable from untrusted input.
func NewRequestHeader(headerVersion, apiKey, apiVersion int16, correlationID int32, clientID *string) Header {
	switch headerVersion {
	case 0:
		return &RequestHeaderV0{APIKey: apiKey, APIVersion: apiVersion, CorrelationID: correlationID}
	case 1:
		return &RequestHeaderV1{APIKey: apiKey, APIVersion: apiVersion, CorrelationID: correlationID, ClientID: clientID}
	case 2:
		return &RequestHeaderV2{APIKey: apiKey, APIVersion: apiVersion, CorrelationID: correlationID, ClientID: clientID}
	default:
		panic(fmt.Sprintf("kmsg: unknown request header version %d", headerVersion))
	}
}

// ReadFrame reads one length-prefixed frame from r: a 4-byte big-endian
// length, then exactly that many bytes, returned as a freshly allocated
// buffer. Per spec §4.7, all subsequent decoding must happen against
// this buffer, never against r directly, so that a malformed body can
// never read past the frame boundary into whatever comes next on the
// wire.
func ReadFrame(r io.Reader, opts ...FramingOpt) ([]byte, error) {
	cfg := newFramingConfig(opts)
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := int32(binary.BigEndian.Uint32(lenBuf[:]))
	if n < 0 {
		cfg.hooks.ObserveDecodeError(KindMalformed.String())
		return nil, &DecodeError{Kind: KindMalformed, FieldPath: "frame.length", Err: fmt.Errorf("negative frame length %d", n)}
	}
	if n > maxFrameLen {
		cfg.hooks.ObserveDecodeError(KindMalformed.String())
		return nil, &DecodeError{Kind: KindMalformed, FieldPath: "frame.length", Err: fmt.Errorf("frame length %d exceeds sanity bound %d", n, maxFrameLen)}
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	cfg.logger.Log(klog.LogLevelDebug, "read frame", "bytes", n)
	cfg.hooks.ObserveDecoded(int(n))
	return buf, nil
}

// AppendRequestFor writes a full wire frame for req, looking up the
// correct request header version from the registry instead of making
// the caller track it. clientID may be nil.
func AppendRequestFor(dst []byte, correlationID int32, clientID *string, req Request, opts ...FramingOpt) []byte {
	hv := RequestHeaderVersion(req.Key(), req.Version())
	hdr := NewRequestHeader(hv, req.Key(), req.Version(), correlationID, clientID)
	return AppendRequest(dst, hdr, req, opts...)
}

// ReadResponseHeader decodes a response header of the given version
// (0 or 1) from the front of a frame buffer previously obtained from
// ReadFrame, returning the header and the remaining, as-yet-undecoded
// bytes (the response body).
func ReadResponseHeader(frame []byte, headerVersion int16, opts ...FramingOpt) (correlationID int32, unknownTags UnknownTags, rest []byte, err error) {
	cfg := newFramingConfig(opts)
	b := kbin.NewReader(frame)
	switch headerVersion {
	case 0:
		var h ResponseHeaderV0
		h.readFrom(b)
		if err := b.Err(); err != nil {
			wrapped := wrapDecodeErr(err, "ResponseHeaderV0", b.Offset())
			cfg.hooks.ObserveDecodeError(wrapped.(*DecodeError).Kind.String())
			return 0, UnknownTags{}, nil, wrapped
		}
		cfg.logger.Log(klog.LogLevelDebug, "read response header", "version", 0, "correlation_id", h.CorrelationID)
		return h.CorrelationID, UnknownTags{}, b.Src, nil
	case 1:
		var h ResponseHeaderV1
		h.readFrom(b)
		if err := b.Err(); err != nil {
			wrapped := wrapDecodeErr(err, "ResponseHeaderV1", b.Offset())
			cfg.hooks.ObserveDecodeError(wrapped.(*DecodeError).Kind.String())
			return 0, UnknownTags{}, nil, wrapped
		}
		cfg.logger.Log(klog.LogLevelDebug, "read response header", "version", 1, "correlation_id", h.CorrelationID)
		return h.CorrelationID, h.UnknownTags, b.Src, nil
	default:
		return 0, UnknownTags{}, nil, fmt.Errorf("kmsg: unknown response header version %d", headerVersion)
	}
}
