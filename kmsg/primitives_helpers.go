package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// The helpers below pick classic vs compact encoding for strings and
// bytes based on a struct's per-version flexible flag (spec §4.5:
// "Encoding mode: if v >= flexible_threshold use compact strings/bytes/
// arrays"). Schema structs call these instead of the raw kbin entry
// points so that the classic/compact choice lives in exactly one place
// per field, not duplicated across every version's ReadFrom/AppendTo.

func readString(b *kbin.Reader, flexible bool) string {
	if flexible {
		return b.CompactString()
	}
	return b.String()
}

func readUnsafeString(b *kbin.Reader, flexible bool) string {
	if flexible {
		return b.UnsafeCompactString()
	}
	return b.UnsafeString()
}

func readNullableString(b *kbin.Reader, flexible bool) *string {
	if flexible {
		return b.CompactNullableString()
	}
	return b.NullableString()
}

func appendString(dst []byte, s string, flexible bool) []byte {
	if flexible {
		return kbin.AppendCompactString(dst, s)
	}
	return kbin.AppendString(dst, s)
}

func appendNullableString(dst []byte, s *string, flexible bool) []byte {
	if flexible {
		return kbin.AppendCompactNullableString(dst, s)
	}
	return kbin.AppendNullableString(dst, s)
}

func readBytes(b *kbin.Reader, flexible bool) []byte {
	if flexible {
		return b.CompactBytes()
	}
	return b.Bytes()
}

func readNullableBytes(b *kbin.Reader, flexible bool) []byte {
	if flexible {
		return b.CompactNullableBytes()
	}
	return b.NullableBytes()
}

func appendBytes(dst, v []byte, flexible bool) []byte {
	if flexible {
		return kbin.AppendCompactBytes(dst, v)
	}
	return kbin.AppendBytes(dst, v)
}

func appendNullableBytes(dst []byte, v []byte, flexible bool) []byte {
	if flexible {
		return kbin.AppendCompactNullableBytes(dst, v)
	}
	return kbin.AppendNullableBytes(dst, v)
}
