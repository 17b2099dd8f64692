package kbin

import "unsafe"

// unsafeBytesToString performs a zero-copy []byte-to-string conversion.
// It aliases the backing array, so callers must not retain the string
// past the lifetime of the buffer it was sliced from; this is exactly
// the tradeoff the UnsafeReadFrom capability documents at the kmsg
// layer.
func unsafeBytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}
