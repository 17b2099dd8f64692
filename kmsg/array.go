package kmsg

import "github.com/ivanyu/kafka-protocol/internal/kbin"

// defaultMaxArrayLen is the sanity bound every schema struct decodes
// against (every ReadFrom entry point in this package is a fixed,
// non-configurable decode path; the value equals
// DefaultLimits().MaxArrayLen, and a Limits value does not change it).
const defaultMaxArrayLen = 1 << 24

// readArrayLen reads either a classic i32 array length or a compact
// unsigned-varint-minus-one length, per the flexible flag, returning
// -1 for the null representation. This is the one spot arrays of
// primitive bytes must NOT go through (spec §4.3: "Arrays of primitive
// bytes are encoded by the bytes codec, not by this generic codec").
func readArrayLen(b *kbin.Reader, flexible bool) int32 {
	if flexible {
		return b.CompactArrayLen()
	}
	return b.ArrayLen()
}

// appendArrayLen is the writer counterpart of readArrayLen. n < 0
// writes the null representation.
func appendArrayLen(dst []byte, n int, flexible bool) []byte {
	if flexible {
		return kbin.AppendCompactArrayLen(dst, n)
	}
	return kbin.AppendArrayLen(dst, n)
}

// readArray reads a generic array of T: a length prefix (classic or
// compact per flexible), then that many elements decoded by readElem in
// sequence. nullable controls whether a null length is legal; a null
// length in non-nullable mode fails malformed. Any element error aborts
// the array immediately, per spec §4.3 step 4. The returned slice is nil
// exactly when the wire value was null.
func readArray[T any](b *kbin.Reader, flexible, nullable bool, maxLen int, readElem func(*kbin.Reader) T) []T {
	n := readArrayLen(b, flexible)
	if b.Err() != nil {
		return nil
	}
	if n < 0 {
		if !nullable {
			b.Fail("unexpected null in non-nullable array")
		}
		return nil
	}
	if maxLen > 0 && int(n) > maxLen {
		b.Fail("array length exceeds sanity bound")
		return nil
	}
	out := make([]T, 0, clampCap(int(n)))
	for i := int32(0); i < n; i++ {
		out = append(out, readElem(b))
		if b.Err() != nil {
			return nil
		}
	}
	return out
}

// clampCap avoids pre-allocating an absurd capacity for a length that
// passed the sanity bound check but is still large; real elements will
// grow the slice incrementally past this point if truly present.
func clampCap(n int) int {
	const preallocCap = 4096
	if n > preallocCap {
		return preallocCap
	}
	return n
}

// appendArray is the writer counterpart of readArray: a nil slice writes
// the null representation only when nullable is true. In non-nullable
// mode a nil slice is simply the normal empty-array encoding (length
// 0), exactly as appendBytes treats a nil []byte -- Go's zero value for
// "no elements" is nil, and there is no null representation reachable
// from a non-nullable field to reject it into.
func appendArray[T any](dst []byte, v []T, flexible, nullable bool, appendElem func([]byte, T) []byte) ([]byte, error) {
	if v == nil && nullable {
		return appendArrayLen(dst, -1, flexible), nil
	}
	dst = appendArrayLen(dst, len(v), flexible)
	for _, e := range v {
		dst = appendElem(dst, e)
	}
	return dst, nil
}
