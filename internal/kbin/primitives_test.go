package kbin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUvarintBoundaries(t *testing.T) {
	cases := []uint32{
		0, 1, 127, 128, 16383, 16384, 2097151, 2097152,
		268435455, 268435456, 1<<32 - 1,
	}
	for _, v := range cases {
		dst := AppendUvarint(nil, v)
		b := NewReader(dst)
		got := b.Uvarint()
		require.NoError(t, b.Complete())
		require.Equal(t, v, got)
	}
}

func TestVarintZigZag(t *testing.T) {
	cases := []int32{0, -1, 1, -2, 2, 1<<31 - 1, -(1 << 31)}
	for _, v := range cases {
		dst := AppendVarint(nil, v)
		b := NewReader(dst)
		got := b.Varint()
		require.NoError(t, b.Complete())
		require.Equal(t, v, got)
	}
}

func TestVarlongZigZag(t *testing.T) {
	cases := []int64{0, -1, 1, 1<<62 - 1, -(1 << 62)}
	for _, v := range cases {
		dst := AppendVarlong(nil, v)
		b := NewReader(dst)
		got := b.Varlong()
		require.NoError(t, b.Complete())
		require.Equal(t, v, got)
	}
}

func TestUvarintOverlongRejected(t *testing.T) {
	// Five continuation bytes all with the high bit set overruns a
	// 32-bit varint's byte budget.
	src := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	b := NewReader(src)
	b.Uvarint()
	require.Error(t, b.Err())
}

func TestStringRoundTrip(t *testing.T) {
	dst := AppendString(nil, "hello, kafka")
	b := NewReader(dst)
	got := b.String()
	require.NoError(t, b.Complete())
	require.Equal(t, "hello, kafka", got)
}

func TestNullableStringNull(t *testing.T) {
	dst := AppendNullableString(nil, nil)
	b := NewReader(dst)
	got := b.NullableString()
	require.NoError(t, b.Complete())
	require.Nil(t, got)
}

func TestNullableStringNonNull(t *testing.T) {
	s := "client-1"
	dst := AppendNullableString(nil, &s)
	b := NewReader(dst)
	got := b.NullableString()
	require.NoError(t, b.Complete())
	require.NotNil(t, got)
	require.Equal(t, s, *got)
}

func TestCompactStringRoundTrip(t *testing.T) {
	dst := AppendCompactString(nil, "compact")
	b := NewReader(dst)
	got := b.CompactString()
	require.NoError(t, b.Complete())
	require.Equal(t, "compact", got)
}

func TestBytesRoundTrip(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	dst := AppendBytes(nil, payload)
	b := NewReader(dst)
	got := b.Bytes()
	require.NoError(t, b.Complete())
	require.Equal(t, payload, got)
}

func TestNullableBytesNull(t *testing.T) {
	dst := AppendNullableBytes(nil, nil)
	b := NewReader(dst)
	got := b.NullableBytes()
	require.NoError(t, b.Complete())
	require.Nil(t, got)
}

func TestCompactBytesEmptyVsNull(t *testing.T) {
	dst := AppendCompactBytes(nil, []byte{})
	b := NewReader(dst)
	got := b.CompactBytes()
	require.NoError(t, b.Complete())
	require.NotNil(t, got)
	require.Len(t, got, 0)

	dst = AppendCompactNullableBytes(nil, nil)
	b = NewReader(dst)
	got2 := b.CompactNullableBytes()
	require.NoError(t, b.Complete())
	require.Nil(t, got2)
}

func TestArrayLenNull(t *testing.T) {
	dst := AppendArrayLen(nil, -1)
	b := NewReader(dst)
	got := b.ArrayLen()
	require.NoError(t, b.Complete())
	require.Equal(t, int32(-1), got)
}

func TestCompactArrayLenRoundTrip(t *testing.T) {
	dst := AppendCompactArrayLen(nil, 3)
	b := NewReader(dst)
	got := b.CompactArrayLen()
	require.NoError(t, b.Complete())
	require.Equal(t, int32(3), got)
}

func TestFixedWidthRoundTrips(t *testing.T) {
	dst := AppendInt8(nil, -7)
	dst = AppendInt16(dst, -1234)
	dst = AppendUint16(dst, 60000)
	dst = AppendInt32(dst, -123456789)
	dst = AppendInt64(dst, -1234567890123)
	dst = AppendFloat64(dst, 3.5)
	dst = AppendFloat32(dst, 1.5)
	dst = AppendBool(dst, true)
	var id [16]byte
	copy(id[:], "0123456789abcdef")
	dst = AppendUuid(dst, id)

	b := NewReader(dst)
	require.Equal(t, int8(-7), b.Int8())
	require.Equal(t, int16(-1234), b.Int16())
	require.Equal(t, uint16(60000), b.Uint16())
	require.Equal(t, int32(-123456789), b.Int32())
	require.Equal(t, int64(-1234567890123), b.Int64())
	require.Equal(t, float64(3.5), b.Float64())
	require.Equal(t, float32(1.5), b.Float32())
	require.Equal(t, true, b.Bool())
	require.Equal(t, id, b.Uuid())
	require.NoError(t, b.Complete())
}

func TestReaderFailsOnTruncatedInput(t *testing.T) {
	b := NewReader([]byte{0, 0})
	b.Int32()
	require.Error(t, b.Err())
	var kerr *Error
	require.ErrorAs(t, b.Err(), &kerr)
	require.Equal(t, KindUnexpectedEOF, kerr.Kind)
}

func TestInvalidUTF8Rejected(t *testing.T) {
	// A lone continuation byte is never valid UTF-8.
	dst := AppendInt16(nil, 1)
	dst = append(dst, 0x80)
	b := NewReader(dst)
	b.String()
	require.Error(t, b.Err())
}
